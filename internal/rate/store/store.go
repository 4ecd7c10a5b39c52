package store

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/bitcoin-sv/bank-wallet/internal/cache"
	"github.com/bitcoin-sv/bank-wallet/internal/coin"
	"github.com/bitcoin-sv/bank-wallet/internal/rate"
)

const latestRatesHash = "latest_rates"

var ErrInvalidRateValue = errors.New("invalid cached rate value")

// CacheStore keeps the latest rates as one cache map keyed by coin and currency.
type CacheStore struct {
	cache cache.Store
}

func NewCacheStore(c cache.Store) *CacheStore {
	return &CacheStore{cache: c}
}

func rateKey(c coin.Coin, currencyCode string) string {
	return fmt.Sprintf("%s:%s", c, currencyCode)
}

func (s *CacheStore) Save(r rate.Rate) error {
	value, err := json.Marshal(r)
	if err != nil {
		return errors.Join(ErrInvalidRateValue, err)
	}

	return s.cache.MapSet(latestRatesHash, rateKey(r.Coin, r.CurrencyCode), value)
}

func (s *CacheStore) Rate(c coin.Coin, currencyCode string) (*rate.Rate, error) {
	value, err := s.cache.MapGet(latestRatesHash, rateKey(c, currencyCode))
	if err != nil {
		if errors.Is(err, cache.ErrCacheNotFound) {
			return nil, errors.Join(rate.ErrRateNotFound, fmt.Errorf("coin: %s, currency: %s", c, currencyCode))
		}
		return nil, err
	}

	var r rate.Rate
	err = json.Unmarshal(value, &r)
	if err != nil {
		return nil, errors.Join(ErrInvalidRateValue, err)
	}

	return &r, nil
}

func (s *CacheStore) ClearRates() error {
	err := s.cache.Del(latestRatesHash)
	if err != nil && !errors.Is(err, cache.ErrCacheNotFound) {
		return err
	}

	return nil
}
