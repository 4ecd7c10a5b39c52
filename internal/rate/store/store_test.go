package store

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitcoin-sv/bank-wallet/internal/cache"
	"github.com/bitcoin-sv/bank-wallet/internal/coin"
	"github.com/bitcoin-sv/bank-wallet/internal/rate"
)

type failingCache struct {
	cache.Store
}

func (failingCache) MapGet(string, string) ([]byte, error) {
	return nil, cache.ErrCacheFailedToGet
}

func (failingCache) Del(...string) error {
	return errors.Join(cache.ErrCacheFailedToDel, errors.New("connection refused"))
}

func TestCacheStore(t *testing.T) {
	t.Run("save and read", func(t *testing.T) {
		// given
		sut := NewCacheStore(cache.NewMemoryStore())
		btc := rate.Rate{Coin: coin.BTC, CurrencyCode: "USD", Value: decimal.RequireFromString("42000.00"), Timestamp: 1700000000}

		// when
		err := sut.Save(btc)
		require.NoError(t, err)

		// then
		actual, err := sut.Rate(coin.BTC, "USD")
		require.NoError(t, err)
		assert.True(t, btc.Value.Equal(actual.Value))
		assert.Equal(t, int64(1700000000), actual.Timestamp)

		_, err = sut.Rate(coin.BCH, "USD")
		require.ErrorIs(t, err, rate.ErrRateNotFound)

		_, err = sut.Rate(coin.BTC, "EUR")
		require.ErrorIs(t, err, rate.ErrRateNotFound)
	})

	t.Run("clear", func(t *testing.T) {
		// given
		sut := NewCacheStore(cache.NewMemoryStore())
		require.NoError(t, sut.Save(rate.Rate{Coin: coin.BTC, CurrencyCode: "USD", Value: decimal.NewFromInt(1)}))
		require.NoError(t, sut.Save(rate.Rate{Coin: coin.BCH, CurrencyCode: "USD", Value: decimal.NewFromInt(2)}))

		// when
		err := sut.ClearRates()

		// then
		require.NoError(t, err)
		_, err = sut.Rate(coin.BTC, "USD")
		require.ErrorIs(t, err, rate.ErrRateNotFound)

		_, err = sut.Rate(coin.BCH, "USD")
		require.ErrorIs(t, err, rate.ErrRateNotFound)

		// clearing an empty store is fine
		require.NoError(t, sut.ClearRates())
	})

	t.Run("cache errors", func(t *testing.T) {
		// given
		sut := NewCacheStore(failingCache{})

		// when
		_, err := sut.Rate(coin.BTC, "USD")

		// then
		require.ErrorIs(t, err, cache.ErrCacheFailedToGet)
		require.NotErrorIs(t, err, rate.ErrRateNotFound)
		require.ErrorIs(t, sut.ClearRates(), cache.ErrCacheFailedToDel)
	})
}
