package rate

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/bitcoin-sv/bank-wallet/internal/coin"
	"github.com/bitcoin-sv/bank-wallet/internal/currency"
	"github.com/bitcoin-sv/bank-wallet/internal/txrecord"
)

var (
	ErrFetchFailed  = errors.New("failed to fetch rate")
	ErrRateNotFound = errors.New("rate not found")
	// ErrRequestRejected marks fetch errors which do not go away on retry, such as a 404 status.
	ErrRequestRejected   = errors.New("rate request rejected")
	ErrInvalidRetryValue = errors.New("invalid retry configuration")
)

// Rate is the value of one coin in a fiat currency at a point in time.
type Rate struct {
	Coin         coin.Coin       `json:"coin"`
	CurrencyCode string          `json:"currencyCode"`
	Value        decimal.Decimal `json:"value"`
	Timestamp    int64           `json:"timestamp"`
}

// Update is emitted for every rate written by the Manager.
// TransactionHash is set when the rate was resolved for a transaction record.
type Update struct {
	Coin            coin.Coin       `json:"coin"`
	CurrencyCode    string          `json:"currencyCode"`
	Value           decimal.Decimal `json:"value"`
	Timestamp       int64           `json:"timestamp"`
	TransactionHash string          `json:"transactionHash,omitempty"`
}

type NetworkClient interface {
	GetLatestRate(ctx context.Context, c coin.Coin, currencyCode string) (Rate, error)
	GetRate(ctx context.Context, c coin.Coin, currencyCode string, date time.Time) (decimal.Decimal, error)
}

// Storage keeps the latest known rate per coin and currency.
type Storage interface {
	Save(rate Rate) error
	Rate(c coin.Coin, currencyCode string) (*Rate, error)
	ClearRates() error
}

// RecordStore gives access to the rates attached to transaction records.
// A record rate is always stored with the currency it was resolved in.
type RecordStore interface {
	NonFilledRecords(ctx context.Context, currencyCode string) ([]txrecord.TransactionRecord, error)
	SetRate(ctx context.Context, c coin.Coin, hash string, currencyCode string, rate decimal.Decimal) error
	ClearRates(ctx context.Context) error
}

type WalletRegistry interface {
	Coins() []coin.Coin
}

type CurrencyContext interface {
	BaseCurrency() currency.Currency
	Subscribe() (<-chan currency.Currency, func())
}
