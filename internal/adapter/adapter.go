package adapter

/* Adapter */
/*

The Adapter wraps a ChainClient and presents a stable, deduplicated view of its events.

Key components:
- state machine: kit state reports are folded into a State by Apply. The state change stream only fires
  when the variant changes, while every syncing report is streamed on the progress stream
- transaction stream: inserted and updated transactions of a TransactionsUpdated event are normalized into
  records and published as one batch, deleted transactions only by hash
- balance and last block streams: payload-free signals, consumers re-read Balance or LastBlockHeight

All events are consumed by a single goroutine, so state mutation and notification delivery are serialized.

*/

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/bitcoin-sv/bank-wallet/internal/broadcast"
	"github.com/bitcoin-sv/bank-wallet/internal/coin"
	"github.com/bitcoin-sv/bank-wallet/internal/txrecord"
)

const (
	confirmationsThreshold   = 6
	notificationsBufferSize  = 100
	defaultTransactionsLimit = 20
)

type Adapter struct {
	coin   coin.Coin
	client ChainClient
	logger *slog.Logger
	stats  *Stats

	stateMu sync.RWMutex
	state   State

	progress         *broadcast.Broadcaster[float64]
	stateUpdated     *broadcast.Broadcaster[State]
	balanceUpdated   *broadcast.Broadcaster[struct{}]
	lastBlockUpdated *broadcast.Broadcaster[struct{}]
	transactions     *broadcast.Broadcaster[txrecord.Batch]

	ctx       context.Context
	cancelAll context.CancelFunc
	wg        sync.WaitGroup
	stopOnce  sync.Once
}

type Option func(a *Adapter)

func WithLogger(l *slog.Logger) Option {
	return func(a *Adapter) {
		a.logger = l
	}
}

func WithStats(s *Stats) Option {
	return func(a *Adapter) {
		a.stats = s
	}
}

// New creates an adapter in state Syncing(0) and starts consuming the events of the client.
func New(c coin.Coin, client ChainClient, opts ...Option) (*Adapter, error) {
	if client == nil {
		return nil, ErrClientNil
	}

	a := &Adapter{
		coin:             c,
		client:           client,
		logger:           slog.Default(),
		state:            Syncing(0),
		progress:         broadcast.New[float64](notificationsBufferSize),
		stateUpdated:     broadcast.New[State](notificationsBufferSize),
		balanceUpdated:   broadcast.New[struct{}](notificationsBufferSize),
		lastBlockUpdated: broadcast.New[struct{}](notificationsBufferSize),
		transactions:     broadcast.New[txrecord.Batch](notificationsBufferSize),
	}

	for _, opt := range opts {
		opt(a)
	}

	a.logger = a.logger.With(slog.String("module", "adapter"), slog.String("coin", c.String()))
	a.ctx, a.cancelAll = context.WithCancel(context.Background())
	a.stats.setState(c, a.state)

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		a.consumeEvents()
	}()

	return a, nil
}

func (a *Adapter) consumeEvents() {
	events := a.client.Events()
	for {
		select {
		case <-a.ctx.Done():
			return
		case ev, ok := <-events:
			if !ok {
				a.logger.Info("Chain client event stream closed")
				return
			}
			a.handleEvent(ev)
		}
	}
}

func (a *Adapter) handleEvent(ev Event) {
	switch e := ev.(type) {
	case TransactionsUpdated:
		a.onTransactionsUpdated(e)
	case BalanceUpdated:
		a.balanceUpdated.Publish(a.ctx, struct{}{})
	case LastBlockInfoUpdated:
		a.lastBlockUpdated.Publish(a.ctx, struct{}{})
	case KitStateUpdated:
		a.onKitStateUpdated(e.State)
	default:
		a.logger.Warn("Unknown chain client event", slog.String("type", fmt.Sprintf("%T", ev)))
	}
}

func (a *Adapter) onTransactionsUpdated(e TransactionsUpdated) {
	records := make([]txrecord.TransactionRecord, 0, len(e.Inserted)+len(e.Updated))
	for _, info := range e.Inserted {
		records = append(records, a.transactionRecord(info))
	}
	for _, info := range e.Updated {
		records = append(records, a.transactionRecord(info))
	}

	a.transactions.Publish(a.ctx, txrecord.Batch{Coin: a.coin, Records: records, Deleted: e.Deleted})
}

func (a *Adapter) onKitStateUpdated(reported State) {
	a.stateMu.Lock()
	t := Apply(a.state, reported)
	a.state = t.Next
	a.stateMu.Unlock()

	if t.Progress != nil {
		a.progress.Publish(a.ctx, *t.Progress)
	}

	if t.StateChanged {
		a.logger.Info("Adapter state changed", slog.String("state", t.Next.String()))
		a.stats.setState(a.coin, t.Next)
		a.stateUpdated.Publish(a.ctx, t.Next)
		return
	}

	if t.Progress != nil {
		a.stats.setState(a.coin, t.Next)
	}
}

func (a *Adapter) transactionRecord(info TransactionInfo) txrecord.TransactionRecord {
	return txrecord.TransactionRecord{
		Hash:        info.Hash,
		Coin:        a.coin,
		BlockHeight: info.BlockHeight,
		Amount:      coin.FromSmallestUnit(info.Amount),
		Timestamp:   info.Timestamp,
		From:        addresses(info.From),
		To:          addresses(info.To),
	}
}

func addresses(infos []AddressInfo) []txrecord.TransactionAddress {
	result := make([]txrecord.TransactionAddress, len(infos))
	for i, info := range infos {
		result[i] = txrecord.TransactionAddress{Address: info.Address, Mine: info.Mine}
	}

	return result
}

func (a *Adapter) Coin() coin.Coin {
	return a.coin
}

func (a *Adapter) Decimal() int {
	return coin.Decimal
}

func (a *Adapter) ConfirmationsThreshold() int {
	return confirmationsThreshold
}

// Refreshable is false, the chain client keeps itself in sync.
func (a *Adapter) Refreshable() bool {
	return false
}

func (a *Adapter) DebugInfo() string {
	return a.client.DebugInfo()
}

func (a *Adapter) State() State {
	a.stateMu.RLock()
	defer a.stateMu.RUnlock()

	return a.state
}

func (a *Adapter) Balance() decimal.Decimal {
	return coin.FromSmallestUnit(a.client.Balance())
}

func (a *Adapter) LastBlockHeight() *int64 {
	info := a.client.LastBlockInfo()
	if info == nil {
		return nil
	}

	height := info.Height
	return &height
}

func (a *Adapter) ReceiveAddress(ctx context.Context) (string, error) {
	return a.client.ReceiveAddress(ctx)
}

func (a *Adapter) Start(ctx context.Context) error {
	err := a.client.Start(ctx)
	if err != nil {
		return errors.Join(ErrStartFailed, err)
	}

	return nil
}

// Clear irreversibly wipes the local chain state.
func (a *Adapter) Clear(ctx context.Context) error {
	err := a.client.Clear(ctx)
	if err != nil {
		return errors.Join(ErrClearFailed, err)
	}

	return nil
}

// Stop ends event consumption and closes all notification streams.
func (a *Adapter) Stop() {
	a.stopOnce.Do(func() {
		a.cancelAll()
		a.wg.Wait()
		a.client.Stop()

		a.progress.Close()
		a.stateUpdated.Close()
		a.balanceUpdated.Close()
		a.lastBlockUpdated.Close()
		a.transactions.Close()
	})
}

func (a *Adapter) Send(ctx context.Context, address string, amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return errors.Join(ErrInvalidAmount, fmt.Errorf("amount: %s", amount.String()))
	}

	units, err := coin.ToSmallestUnit(amount)
	if err != nil {
		return errors.Join(ErrInvalidAmount, err)
	}

	err = a.client.Send(ctx, address, units)
	if err != nil {
		return mapChainError(ErrSendFailed, err)
	}

	a.logger.Info("Transaction sent", slog.String("address", address), slog.String("amount", amount.String()))

	return nil
}

func (a *Adapter) Fee(ctx context.Context, amount decimal.Decimal, address *string, senderPaysFee bool) (decimal.Decimal, error) {
	if amount.IsNegative() {
		return decimal.Zero, errors.Join(ErrInvalidAmount, fmt.Errorf("amount: %s", amount.String()))
	}

	units, err := coin.ToSmallestUnit(amount)
	if err != nil {
		return decimal.Zero, errors.Join(ErrInvalidAmount, err)
	}

	fee, err := a.client.Fee(ctx, units, address, senderPaysFee)
	if err != nil {
		return decimal.Zero, mapChainError(ErrFeeFailed, err)
	}

	return coin.FromSmallestUnit(fee), nil
}

func mapChainError(wrap error, err error) error {
	var notEnough *NotEnoughFundsError
	if errors.As(err, &notEnough) {
		return &InsufficientFundsError{MaxFee: coin.FromSmallestUnit(notEnough.MaxFee)}
	}

	return errors.Join(wrap, err)
}

func (a *Adapter) ValidateAddress(ctx context.Context, address string) error {
	err := a.client.ValidateAddress(ctx, address)
	if err != nil {
		return errors.Join(ErrValidationFailed, err)
	}

	return nil
}

// Transactions returns at most limit records, newest first, starting after fromHash if given.
func (a *Adapter) Transactions(ctx context.Context, fromHash *string, limit int) ([]txrecord.TransactionRecord, error) {
	if limit < 0 {
		return nil, ErrInvalidLimit
	}
	if limit == 0 {
		limit = defaultTransactionsLimit
	}

	infos, err := a.client.Transactions(ctx, fromHash, limit)
	if err != nil {
		return nil, errors.Join(ErrTransactionsFetch, err)
	}

	if len(infos) > limit {
		infos = infos[:limit]
	}

	records := make([]txrecord.TransactionRecord, len(infos))
	for i, info := range infos {
		records[i] = a.transactionRecord(info)
	}

	return records, nil
}

func (a *Adapter) SubscribeProgress() (<-chan float64, func()) {
	return a.progress.Subscribe()
}

func (a *Adapter) SubscribeState() (<-chan State, func()) {
	return a.stateUpdated.Subscribe()
}

func (a *Adapter) SubscribeBalance() (<-chan struct{}, func()) {
	return a.balanceUpdated.Subscribe()
}

func (a *Adapter) SubscribeLastBlock() (<-chan struct{}, func()) {
	return a.lastBlockUpdated.Subscribe()
}

func (a *Adapter) SubscribeTransactions() (<-chan txrecord.Batch, func()) {
	return a.transactions.Subscribe()
}
