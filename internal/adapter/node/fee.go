package node

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/ccoveille/go-safecast"

	"github.com/bitcoin-sv/bank-wallet/internal/adapter"
)

const (
	txOverheadSize = 10
	p2pkhInputSize = 148
	outputSize     = 34
	// payment output plus change output
	outputsCount = 2
)

var ErrInvalidTxSize = errors.New("invalid transaction size")

type SatoshisPerKilobyte struct {
	Satoshis uint64
}

func DefaultSatoshisPerKilobyte() SatoshisPerKilobyte {
	return SatoshisPerKilobyte{Satoshis: 1000}
}

// ComputeFeeBasedOnSize is proportional to the size with a minimum of 1 satoshi.
func (s SatoshisPerKilobyte) ComputeFeeBasedOnSize(txSize uint64) int64 {
	fee := float64(txSize) * float64(s.Satoshis) / 1000

	feeRounded := int64(math.Ceil(fee))
	if feeRounded < 1 {
		feeRounded = 1
	}
	return feeRounded
}

func (s SatoshisPerKilobyte) feeForInputs(inputs int) (int64, error) {
	size, err := safecast.ToUint64(txOverheadSize + inputs*p2pkhInputSize + outputsCount*outputSize)
	if err != nil {
		return 0, errors.Join(ErrInvalidTxSize, fmt.Errorf("inputs: %d", inputs), err)
	}

	return s.ComputeFeeBasedOnSize(size), nil
}

// selectFee picks the largest outputs first until value and fee are covered and returns the fee.
// If the sender does not pay the fee, it is subtracted from value.
// When the outputs do not suffice an *adapter.NotEnoughFundsError with the fee of spending all outputs is returned.
func (s SatoshisPerKilobyte) selectFee(outputs []int64, value int64, senderPaysFee bool) (int64, error) {
	sorted := make([]int64, len(outputs))
	copy(sorted, outputs)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] > sorted[j] })

	var total int64
	for i, v := range sorted {
		total += v
		fee, err := s.feeForInputs(i + 1)
		if err != nil {
			return 0, err
		}

		if senderPaysFee && total >= value+fee {
			return fee, nil
		}
		if !senderPaysFee && total >= value && value > fee {
			return fee, nil
		}
	}

	maxFee, err := s.feeForInputs(len(sorted))
	if err != nil {
		return 0, err
	}

	return 0, &adapter.NotEnoughFundsError{MaxFee: maxFee}
}
