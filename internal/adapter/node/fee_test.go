package node

import (
	"testing"

	"github.com/ccoveille/go-safecast"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitcoin-sv/bank-wallet/internal/adapter"
)

func TestSatoshisPerKilobyte_ComputeFeeBasedOnSize(t *testing.T) {
	testCases := []struct {
		name        string
		rate        uint64
		size        uint64
		expectedFee int64
	}{
		{name: "one kilobyte", rate: 1000, size: 1000, expectedFee: 1000},
		{name: "proportional", rate: 1000, size: 226, expectedFee: 226},
		{name: "rounded up", rate: 1, size: 1500, expectedFee: 2},
		{name: "minimum one satoshi", rate: 1, size: 100, expectedFee: 1},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			actual := SatoshisPerKilobyte{Satoshis: tc.rate}.ComputeFeeBasedOnSize(tc.size)
			assert.Equal(t, tc.expectedFee, actual)
		})
	}
}

func TestSatoshisPerKilobyte_FeeForInputs(t *testing.T) {
	model := SatoshisPerKilobyte{Satoshis: 1000}

	// when
	fee, err := model.feeForInputs(1)

	// then
	require.NoError(t, err)
	assert.Equal(t, int64(txOverheadSize+p2pkhInputSize+outputsCount*outputSize), fee)

	// when
	_, err = model.feeForInputs(-1)

	// then
	require.ErrorIs(t, err, ErrInvalidTxSize)
	require.ErrorIs(t, err, safecast.ErrConversionIssue)
}

func TestSatoshisPerKilobyte_SelectFee(t *testing.T) {
	model := SatoshisPerKilobyte{Satoshis: 1000}
	oneInputFee := int64(txOverheadSize + p2pkhInputSize + 2*outputSize)
	twoInputsFee := oneInputFee + p2pkhInputSize

	testCases := []struct {
		name          string
		outputs       []int64
		value         int64
		senderPaysFee bool

		expectedFee    int64
		expectedMaxFee int64
	}{
		{
			name:          "largest output covers value and fee",
			outputs:       []int64{1_000, 100_000},
			value:         50_000,
			senderPaysFee: true,
			expectedFee:   oneInputFee,
		},
		{
			name:          "two inputs needed",
			outputs:       []int64{60_000, 50_000},
			value:         100_000,
			senderPaysFee: true,
			expectedFee:   twoInputsFee,
		},
		{
			name:          "receiver pays fee",
			outputs:       []int64{100_000},
			value:         100_000,
			senderPaysFee: false,
			expectedFee:   oneInputFee,
		},
		{
			name:           "balance exact but fee not covered",
			outputs:        []int64{60_000, 40_000},
			value:          100_000,
			senderPaysFee:  true,
			expectedMaxFee: twoInputsFee,
		},
		{
			name:           "no outputs",
			value:          1,
			senderPaysFee:  true,
			expectedMaxFee: int64(txOverheadSize + 2*outputSize),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// when
			fee, err := model.selectFee(tc.outputs, tc.value, tc.senderPaysFee)

			// then
			if tc.expectedMaxFee != 0 {
				var notEnough *adapter.NotEnoughFundsError
				require.ErrorAs(t, err, &notEnough)
				assert.Equal(t, tc.expectedMaxFee, notEnough.MaxFee)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expectedFee, fee)
		})
	}
}
