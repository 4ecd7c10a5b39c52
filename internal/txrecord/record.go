package txrecord

import (
	"github.com/shopspring/decimal"

	"github.com/bitcoin-sv/bank-wallet/internal/coin"
)

type TransactionAddress struct {
	Address string `json:"address"`
	Mine    bool   `json:"mine"`
}

// TransactionRecord is the normalized view of a wallet transaction.
// Rate is nil until resolved; RateCurrency names the currency it was resolved in.
type TransactionRecord struct {
	Hash         string               `json:"hash"`
	Coin         coin.Coin            `json:"coin"`
	BlockHeight  *int64               `json:"blockHeight,omitempty"`
	Amount       decimal.Decimal      `json:"amount"`
	Timestamp    int64                `json:"timestamp"`
	From         []TransactionAddress `json:"from"`
	To           []TransactionAddress `json:"to"`
	Rate         *decimal.Decimal     `json:"rate,omitempty"`
	RateCurrency string               `json:"rateCurrency,omitempty"`
}

// Confirmations returns the number of confirmations given the last known block height.
func (r TransactionRecord) Confirmations(lastBlockHeight *int64) int64 {
	if r.BlockHeight == nil || lastBlockHeight == nil || *lastBlockHeight < *r.BlockHeight {
		return 0
	}

	return *lastBlockHeight - *r.BlockHeight + 1
}

// NeedsRate reports whether the record can and should get a historical rate.
// Records without a timestamp are never filled.
func (r TransactionRecord) NeedsRate() bool {
	return r.Rate == nil && r.Timestamp != 0
}

// NeedsRateIn is NeedsRate for a specific currency: a rate resolved in another currency is stale.
func (r TransactionRecord) NeedsRateIn(currencyCode string) bool {
	return r.Timestamp != 0 && (r.Rate == nil || r.RateCurrency != currencyCode)
}

// RateIn returns the rate if it was resolved in currencyCode.
func (r TransactionRecord) RateIn(currencyCode string) *decimal.Decimal {
	if r.Rate == nil || r.RateCurrency != currencyCode {
		return nil
	}

	return r.Rate
}

// Batch is a set of inserted or updated records plus the hashes of deleted ones.
type Batch struct {
	Coin    coin.Coin           `json:"coin"`
	Records []TransactionRecord `json:"records"`
	Deleted []string            `json:"deleted,omitempty"`
}
