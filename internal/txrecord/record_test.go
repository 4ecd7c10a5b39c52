package txrecord

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func ptrTo[T any](v T) *T {
	return &v
}

func TestTransactionRecord_Confirmations(t *testing.T) {
	testCases := []struct {
		name            string
		blockHeight     *int64
		lastBlockHeight *int64
		expected        int64
	}{
		{name: "unconfirmed", blockHeight: nil, lastBlockHeight: ptrTo(int64(100)), expected: 0},
		{name: "unknown chain tip", blockHeight: ptrTo(int64(100)), lastBlockHeight: nil, expected: 0},
		{name: "in last block", blockHeight: ptrTo(int64(100)), lastBlockHeight: ptrTo(int64(100)), expected: 1},
		{name: "six confirmations", blockHeight: ptrTo(int64(95)), lastBlockHeight: ptrTo(int64(100)), expected: 6},
		{name: "tip behind record", blockHeight: ptrTo(int64(101)), lastBlockHeight: ptrTo(int64(100)), expected: 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r := TransactionRecord{BlockHeight: tc.blockHeight}
			assert.Equal(t, tc.expected, r.Confirmations(tc.lastBlockHeight))
		})
	}
}

func TestTransactionRecord_NeedsRate(t *testing.T) {
	assert.True(t, TransactionRecord{Timestamp: 1}.NeedsRate())
	assert.False(t, TransactionRecord{Timestamp: 0}.NeedsRate())
	assert.False(t, TransactionRecord{Timestamp: 1, Rate: ptrTo(decimal.NewFromInt(1))}.NeedsRate())
}

func TestTransactionRecord_NeedsRateIn(t *testing.T) {
	rate := ptrTo(decimal.NewFromInt(38000))

	assert.True(t, TransactionRecord{Timestamp: 1}.NeedsRateIn("USD"))
	assert.False(t, TransactionRecord{Timestamp: 0}.NeedsRateIn("USD"))
	assert.True(t, TransactionRecord{Timestamp: 1, Rate: rate, RateCurrency: "EUR"}.NeedsRateIn("USD"))
	assert.False(t, TransactionRecord{Timestamp: 1, Rate: rate, RateCurrency: "USD"}.NeedsRateIn("USD"))
}

func TestTransactionRecord_RateIn(t *testing.T) {
	rate := ptrTo(decimal.NewFromInt(38000))
	r := TransactionRecord{Timestamp: 1, Rate: rate, RateCurrency: "EUR"}

	assert.Nil(t, r.RateIn("USD"))
	assert.Equal(t, rate, r.RateIn("EUR"))
	assert.Nil(t, TransactionRecord{Timestamp: 1}.RateIn("EUR"))
}
