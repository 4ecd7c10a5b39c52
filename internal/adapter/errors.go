package adapter

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	ErrStartFailed       = errors.New("failed to start chain synchronization")
	ErrClearFailed       = errors.New("failed to clear chain state")
	ErrValidationFailed  = errors.New("address validation failed")
	ErrSendFailed        = errors.New("failed to send transaction")
	ErrFeeFailed         = errors.New("failed to calculate fee")
	ErrTransactionsFetch = errors.New("failed to fetch transactions")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrInvalidAmount     = errors.New("invalid amount")
	ErrInvalidLimit      = errors.New("limit must be positive")
	ErrClientNil         = errors.New("chain client cannot be nil")
)

// NotEnoughFundsError is returned by a ChainClient when the balance does not cover amount and fee.
// MaxFee is expressed in satoshis.
type NotEnoughFundsError struct {
	MaxFee int64
}

func (e *NotEnoughFundsError) Error() string {
	return fmt.Sprintf("not enough funds, max fee %d", e.MaxFee)
}

// InsufficientFundsError is the adapter level form of NotEnoughFundsError with the fee in coin units.
type InsufficientFundsError struct {
	MaxFee decimal.Decimal
}

func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("insufficient funds: max fee %s", e.MaxFee.String())
}

func (e *InsufficientFundsError) Is(target error) bool {
	return target == ErrInsufficientFunds
}
