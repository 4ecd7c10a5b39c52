package adapter

import (
	"context"
)

// ChainClient is the chain library wrapped by an Adapter. Amounts are in satoshis.
// Events are delivered on the channel returned by Events, which is closed when the client stops.
type ChainClient interface {
	Start(ctx context.Context) error
	Stop()
	Clear(ctx context.Context) error
	Send(ctx context.Context, address string, value int64) error
	Fee(ctx context.Context, value int64, address *string, senderPaysFee bool) (int64, error)
	ValidateAddress(ctx context.Context, address string) error
	ReceiveAddress(ctx context.Context) (string, error)
	Balance() int64
	LastBlockInfo() *BlockInfo
	Transactions(ctx context.Context, fromHash *string, limit int) ([]TransactionInfo, error)
	Events() <-chan Event
	DebugInfo() string
}

type BlockInfo struct {
	Hash      string
	Height    int64
	Timestamp int64
}

type AddressInfo struct {
	Address string
	Mine    bool
}

type TransactionInfo struct {
	Hash        string
	BlockHeight *int64
	Amount      int64
	Timestamp   int64
	From        []AddressInfo
	To          []AddressInfo
}

// Event is one of TransactionsUpdated, BalanceUpdated, LastBlockInfoUpdated and KitStateUpdated.
type Event interface {
	isEvent()
}

type TransactionsUpdated struct {
	Inserted []TransactionInfo
	Updated  []TransactionInfo
	Deleted  []string
}

type BalanceUpdated struct {
	Balance int64
}

type LastBlockInfoUpdated struct {
	Info BlockInfo
}

type KitStateUpdated struct {
	State State
}

func (TransactionsUpdated) isEvent()  {}
func (BalanceUpdated) isEvent()       {}
func (LastBlockInfoUpdated) isEvent() {}
func (KitStateUpdated) isEvent()      {}
