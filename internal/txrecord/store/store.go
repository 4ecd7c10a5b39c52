package store

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"

	"github.com/bitcoin-sv/bank-wallet/internal/coin"
	"github.com/bitcoin-sv/bank-wallet/internal/txrecord"
)

var ErrNotFound = errors.New("transaction record not found")

// TransactionRecordStore persists transaction records and their resolved rates.
// Upsert keeps an already resolved rate as long as the record timestamp does not change.
// List returns records newest first, starting after fromHash if given.
// NonFilledRecords returns records with a timestamp whose rate is missing or was resolved
// in a currency other than currencyCode.
type TransactionRecordStore interface {
	Upsert(ctx context.Context, records []txrecord.TransactionRecord) error
	Delete(ctx context.Context, c coin.Coin, hashes []string) error
	Get(ctx context.Context, c coin.Coin, hash string) (*txrecord.TransactionRecord, error)
	List(ctx context.Context, c coin.Coin, fromHash *string, limit int) ([]txrecord.TransactionRecord, error)
	NonFilledRecords(ctx context.Context, currencyCode string) ([]txrecord.TransactionRecord, error)
	SetRate(ctx context.Context, c coin.Coin, hash string, currencyCode string, rate decimal.Decimal) error
	ClearRates(ctx context.Context) error
	Close() error
}
