package node

/* Node chain client */
/*

Client implements adapter.ChainClient on top of the wallet JSON-RPC interface of a full node.

The node keeps the chain and the wallet in sync by itself. The client polls it periodically and turns
differences between two polls into chain client events:
- KitStateUpdated: syncing with the verification progress during initial block download, synced afterwards,
  not synced while the node cannot be reached
- LastBlockInfoUpdated: the best block changed
- BalanceUpdated: the wallet balance changed
- TransactionsUpdated: wallet transactions appeared, changed their confirmation or disappeared

Only the newest page of listtransactions is polled. A known transaction missing from a full page has slid out
of it and is not reported as deleted, unless it is newer than the oldest transaction still on the page.
Conflicted and abandoned transactions are reported as deleted.

The senders of a new transaction are resolved from the outputs its inputs spend. Outputs of foreign
transactions can only be resolved by a node running with -txindex.

*/

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/shopspring/decimal"

	"github.com/bitcoin-sv/bank-wallet/internal/adapter"
	"github.com/bitcoin-sv/bank-wallet/internal/coin"
)

const (
	pollIntervalDefault         = 10 * time.Second
	eventsBufferSize            = 100
	listTransactionsPageSize    = 1000
	syncedVerificationThreshold = 0.9999
	startRetries                = 3
)

var (
	ErrAlreadyStarted  = errors.New("client already started")
	ErrNetworkMismatch = errors.New("node runs on a different network")
	ErrInvalidAddress  = errors.New("invalid address")
	ErrInvalidResponse = errors.New("invalid node response")
)

type Client struct {
	rpc          *RPCClient
	logger       *slog.Logger
	pollInterval time.Duration
	feeModel     SatoshisPerKilobyte
	startBackoff time.Duration
	network      coin.Network
	pageSize     int

	events chan adapter.Event

	mu             sync.RWMutex
	started        bool
	balance        int64
	lastBlock      *adapter.BlockInfo
	known          map[string]adapter.TransactionInfo
	mine           map[string]bool
	receiveAddress string

	ctx       context.Context
	cancelAll context.CancelFunc
	wg        sync.WaitGroup
	stopOnce  sync.Once
}

type Option func(c *Client)

func WithLogger(l *slog.Logger) Option {
	return func(c *Client) {
		c.logger = l
	}
}

func WithPollInterval(d time.Duration) Option {
	return func(c *Client) {
		c.pollInterval = d
	}
}

func WithFeeModel(m SatoshisPerKilobyte) Option {
	return func(c *Client) {
		c.feeModel = m
	}
}

// WithNetwork makes Start fail if the node does not run on the given network.
func WithNetwork(n coin.Network) Option {
	return func(c *Client) {
		c.network = n
	}
}

// WithPageSize sets the number of listtransactions entries requested at once.
func WithPageSize(n int) Option {
	return func(c *Client) {
		c.pageSize = n
	}
}

func WithStartBackoff(d time.Duration) Option {
	return func(c *Client) {
		c.startBackoff = d
	}
}

func New(rpc *RPCClient, opts ...Option) *Client {
	c := &Client{
		rpc:          rpc,
		logger:       slog.Default(),
		pollInterval: pollIntervalDefault,
		feeModel:     DefaultSatoshisPerKilobyte(),
		startBackoff: time.Second,
		pageSize:     listTransactionsPageSize,
		events:       make(chan adapter.Event, eventsBufferSize),
		known:        make(map[string]adapter.TransactionInfo),
		mine:         make(map[string]bool),
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.pageSize <= 0 {
		c.pageSize = listTransactionsPageSize
	}

	c.logger = c.logger.With(slog.String("module", "node-client"))
	c.ctx, c.cancelAll = context.WithCancel(context.Background())

	return c
}

func (c *Client) Events() <-chan adapter.Event {
	return c.events
}

// Start checks that the node is reachable and starts polling it.
func (c *Client) Start(ctx context.Context) error {
	c.mu.Lock()
	if c.started {
		c.mu.Unlock()
		return ErrAlreadyStarted
	}
	c.started = true
	c.mu.Unlock()

	policy := backoff.WithContext(backoff.WithMaxRetries(backoff.NewConstantBackOff(c.startBackoff), startRetries), ctx)
	info, err := backoff.RetryNotifyWithData(func() (blockchainInfo, error) {
		return call[blockchainInfo](ctx, c.rpc, "getblockchaininfo")
	}, policy, func(err error, next time.Duration) {
		c.logger.Warn("Node not reachable", slog.String("next try", next.String()), slog.String("err", err.Error()))
	})
	if err == nil && c.network != "" && info.Chain != chainName(c.network) {
		err = errors.Join(ErrNetworkMismatch, fmt.Errorf("expected: %s, node: %s", chainName(c.network), info.Chain))
	}
	if err != nil {
		c.mu.Lock()
		c.started = false
		c.mu.Unlock()
		return err
	}

	c.wg.Add(1)
	go func() {
		defer c.wg.Done()

		ticker := time.NewTicker(c.pollInterval)
		defer ticker.Stop()

		c.poll(c.ctx)
		for {
			select {
			case <-c.ctx.Done():
				return
			case <-ticker.C:
				c.poll(c.ctx)
			}
		}
	}()

	return nil
}

func chainName(n coin.Network) string {
	if n == coin.TestNet {
		return "test"
	}
	return "main"
}

func (c *Client) Stop() {
	c.stopOnce.Do(func() {
		c.cancelAll()
		c.wg.Wait()
		close(c.events)
	})
}

// Clear drops everything the client learned from the node. The next poll reports the wallet from scratch.
func (c *Client) Clear(_ context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.balance = 0
	c.lastBlock = nil
	c.known = make(map[string]adapter.TransactionInfo)
	c.mine = make(map[string]bool)
	c.receiveAddress = ""

	return nil
}

func (c *Client) emit(ctx context.Context, ev adapter.Event) {
	select {
	case c.events <- ev:
	case <-ctx.Done():
	}
}

func (c *Client) poll(ctx context.Context) {
	info, err := call[blockchainInfo](ctx, c.rpc, "getblockchaininfo")
	if err != nil {
		if ctx.Err() != nil {
			return
		}
		c.logger.Warn("Failed to get blockchain info", slog.String("err", err.Error()))
		c.emit(ctx, adapter.KitStateUpdated{State: adapter.NotSynced()})
		return
	}

	if info.InitialBlockDownload || info.VerificationProgress < syncedVerificationThreshold {
		c.emit(ctx, adapter.KitStateUpdated{State: adapter.Syncing(info.VerificationProgress)})
	} else {
		c.emit(ctx, adapter.KitStateUpdated{State: adapter.Synced()})
	}

	c.pollLastBlock(ctx, info)
	c.pollBalance(ctx)
	c.pollTransactions(ctx)
}

func (c *Client) pollLastBlock(ctx context.Context, info blockchainInfo) {
	block := adapter.BlockInfo{Hash: info.BestBlockHash, Height: info.Blocks, Timestamp: info.MedianTime}

	c.mu.Lock()
	changed := c.lastBlock == nil || c.lastBlock.Hash != block.Hash
	c.lastBlock = &block
	c.mu.Unlock()

	if changed {
		c.emit(ctx, adapter.LastBlockInfoUpdated{Info: block})
	}
}

func (c *Client) pollBalance(ctx context.Context) {
	value, err := call[decimal.Decimal](ctx, c.rpc, "getbalance")
	if err != nil {
		c.logger.Warn("Failed to get balance", slog.String("err", err.Error()))
		return
	}

	balance, err := coin.ToSmallestUnit(value)
	if err != nil {
		c.logger.Warn("Invalid balance", slog.String("err", err.Error()))
		return
	}

	c.mu.Lock()
	changed := c.balance != balance
	c.balance = balance
	c.mu.Unlock()

	if changed {
		c.emit(ctx, adapter.BalanceUpdated{Balance: balance})
	}
}

func (c *Client) pollTransactions(ctx context.Context) {
	entries, err := c.listTransactionsPage(ctx, 0)
	if err != nil {
		c.logger.Warn("Failed to list transactions", slog.String("err", err.Error()))
		return
	}

	set := newTransactionSet()
	err = set.add(entries)
	if err != nil {
		c.logger.Warn("Invalid transactions", slog.String("err", err.Error()))
		return
	}

	current := set.transactions()
	pageFull := len(entries) >= c.pageSize
	var oldest int64
	if len(current) > 0 {
		oldest = current[len(current)-1].Timestamp
	}

	var event adapter.TransactionsUpdated

	c.mu.Lock()
	currentHashes := make(map[string]adapter.TransactionInfo, len(current))
	for _, tx := range current {
		previous, found := c.known[tx.Hash]
		if found {
			tx.From = previous.From
		}

		switch {
		case !found:
			event.Inserted = append(event.Inserted, tx)
		case !sameBlock(previous.BlockHeight, tx.BlockHeight):
			event.Updated = append(event.Updated, tx)
		}
		currentHashes[tx.Hash] = tx
	}

	for hash, tx := range c.known {
		if _, found := currentHashes[hash]; found {
			continue
		}
		if set.isDropped(hash) || !pageFull || tx.Timestamp > oldest {
			event.Deleted = append(event.Deleted, hash)
		}
	}
	c.known = currentHashes
	c.mu.Unlock()

	if len(event.Inserted)+len(event.Updated)+len(event.Deleted) == 0 {
		return
	}

	for i := range event.Inserted {
		event.Inserted[i].From = c.resolveFrom(ctx, event.Inserted[i].Hash)
	}
	c.rememberFrom(event.Inserted)

	sort.Strings(event.Deleted)
	c.emit(ctx, event)
}

func (c *Client) rememberFrom(txs []adapter.TransactionInfo) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, tx := range txs {
		known, found := c.known[tx.Hash]
		if !found {
			continue
		}
		known.From = tx.From
		c.known[tx.Hash] = known
	}
}

func sameBlock(a, b *int64) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	return *a == *b
}

// listTransactionsPage returns up to pageSize entries after skipping the skip newest ones.
// Within a page the node orders entries oldest first.
func (c *Client) listTransactionsPage(ctx context.Context, skip int) ([]listTransactionsEntry, error) {
	return call[[]listTransactionsEntry](ctx, c.rpc, "listtransactions", "*", c.pageSize, skip, true)
}

// transactionSet aggregates listtransactions entries, which come one per address, into transactions.
type transactionSet struct {
	byHash  map[string]*adapter.TransactionInfo
	dropped map[string]struct{}
}

func newTransactionSet() *transactionSet {
	return &transactionSet{
		byHash:  make(map[string]*adapter.TransactionInfo),
		dropped: make(map[string]struct{}),
	}
}

func (s *transactionSet) add(entries []listTransactionsEntry) error {
	for _, e := range entries {
		if e.Confirmations < 0 || e.Abandoned {
			s.dropped[e.TxID] = struct{}{}
		}

		amount, err := coin.ToSmallestUnit(e.Amount)
		if err != nil {
			return errors.Join(ErrInvalidResponse, err)
		}
		if e.Fee != nil && e.Category == "send" {
			fee, err := coin.ToSmallestUnit(*e.Fee)
			if err != nil {
				return errors.Join(ErrInvalidResponse, err)
			}
			amount += fee
		}

		tx, found := s.byHash[e.TxID]
		if !found {
			tx = &adapter.TransactionInfo{Hash: e.TxID, Timestamp: e.Time}
			if e.Confirmations > 0 && e.BlockHeight != nil {
				height := *e.BlockHeight
				tx.BlockHeight = &height
			}
			s.byHash[e.TxID] = tx
		}

		tx.Amount += amount
		if e.Address != "" {
			tx.To = append(tx.To, adapter.AddressInfo{Address: e.Address, Mine: e.Category == "receive"})
		}
	}

	return nil
}

func (s *transactionSet) isDropped(hash string) bool {
	_, found := s.dropped[hash]
	return found
}

// transactions returns the transactions which are neither conflicted nor abandoned, newest first.
func (s *transactionSet) transactions() []adapter.TransactionInfo {
	result := make([]adapter.TransactionInfo, 0, len(s.byHash))
	for hash, tx := range s.byHash {
		if s.isDropped(hash) {
			continue
		}
		result = append(result, *tx)
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].Timestamp != result[j].Timestamp {
			return result[i].Timestamp > result[j].Timestamp
		}
		return result[i].Hash > result[j].Hash
	})

	return result
}

// Transactions pages through listtransactions until limit transactions after fromHash are complete.
func (c *Client) Transactions(ctx context.Context, fromHash *string, limit int) ([]adapter.TransactionInfo, error) {
	set := newTransactionSet()

	for skip := 0; ; skip += c.pageSize {
		entries, err := c.listTransactionsPage(ctx, skip)
		if err != nil {
			return nil, err
		}

		err = set.add(entries)
		if err != nil {
			return nil, err
		}

		all := set.transactions()
		lastPage := len(entries) < c.pageSize

		start := cursorStart(all, fromHash)
		if start < 0 {
			if lastPage {
				return []adapter.TransactionInfo{}, nil
			}
			continue
		}

		// the oldest transaction of a page may continue on the next one
		if len(all)-start > limit || lastPage {
			end := min(start+limit, len(all))
			return c.withFrom(ctx, all[start:end]), nil
		}
	}
}

// cursorStart returns the index after fromHash, or -1 if fromHash was not found.
func cursorStart(txs []adapter.TransactionInfo, fromHash *string) int {
	if fromHash == nil {
		return 0
	}

	for i, tx := range txs {
		if tx.Hash == *fromHash {
			return i + 1
		}
	}

	return -1
}

func (c *Client) withFrom(ctx context.Context, txs []adapter.TransactionInfo) []adapter.TransactionInfo {
	result := make([]adapter.TransactionInfo, 0, len(txs))
	for _, tx := range txs {
		c.mu.RLock()
		known, found := c.known[tx.Hash]
		c.mu.RUnlock()

		if found && known.From != nil {
			tx.From = known.From
		} else {
			tx.From = c.resolveFrom(ctx, tx.Hash)
		}
		result = append(result, tx)
	}

	return result
}

// resolveFrom returns the addresses whose outputs the transaction spends.
// Inputs which cannot be resolved are left out.
func (c *Client) resolveFrom(ctx context.Context, hash string) []adapter.AddressInfo {
	tx, err := c.walletTransaction(ctx, hash)
	if err != nil {
		c.logger.Warn("Failed to get transaction inputs", slog.String("hash", hash), slog.String("err", err.Error()))
		return nil
	}

	var from []adapter.AddressInfo
	seen := make(map[string]struct{})
	for _, in := range tx.Vin {
		if in.TxID == "" {
			continue
		}

		address, err := c.prevoutAddress(ctx, in)
		if err != nil {
			c.logger.Debug("Input address not resolved", slog.String("hash", hash), slog.String("input", in.TxID), slog.String("err", err.Error()))
			continue
		}
		if _, found := seen[address]; found || address == "" {
			continue
		}
		seen[address] = struct{}{}

		from = append(from, adapter.AddressInfo{Address: address, Mine: c.isMine(ctx, address)})
	}

	return from
}

func (c *Client) walletTransaction(ctx context.Context, hash string) (decodedTransaction, error) {
	wtx, err := call[walletTransaction](ctx, c.rpc, "gettransaction", hash, true)
	if err != nil {
		return decodedTransaction{}, err
	}

	return call[decodedTransaction](ctx, c.rpc, "decoderawtransaction", wtx.Hex)
}

func (c *Client) prevoutAddress(ctx context.Context, in txInput) (string, error) {
	prev, err := c.walletTransaction(ctx, in.TxID)
	if err != nil {
		var rpcErr *RPCError
		if !errors.As(err, &rpcErr) || rpcErr.Code != rpcErrCodeInvalidTxID {
			return "", err
		}

		prev, err = call[decodedTransaction](ctx, c.rpc, "getrawtransaction", in.TxID, true)
		if err != nil {
			return "", err
		}
	}

	for _, out := range prev.Vout {
		if out.N == in.Vout {
			return out.address(), nil
		}
	}

	return "", errors.Join(ErrInvalidResponse, fmt.Errorf("output not found: %s:%d", in.TxID, in.Vout))
}

func (c *Client) isMine(ctx context.Context, address string) bool {
	c.mu.RLock()
	mine, found := c.mine[address]
	c.mu.RUnlock()

	if found {
		return mine
	}

	info, err := call[addressInfo](ctx, c.rpc, "getaddressinfo", address)
	if err != nil {
		c.logger.Warn("Failed to get address info", slog.String("address", address), slog.String("err", err.Error()))
		return false
	}

	c.mu.Lock()
	c.mine[address] = info.IsMine
	c.mu.Unlock()

	return info.IsMine
}

func (c *Client) Balance() int64 {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.balance
}

func (c *Client) LastBlockInfo() *adapter.BlockInfo {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.lastBlock == nil {
		return nil
	}
	block := *c.lastBlock
	return &block
}

func (c *Client) ReceiveAddress(ctx context.Context) (string, error) {
	c.mu.RLock()
	address := c.receiveAddress
	c.mu.RUnlock()

	if address != "" {
		return address, nil
	}

	address, err := call[string](ctx, c.rpc, "getnewaddress")
	if err != nil {
		return "", err
	}

	c.mu.Lock()
	c.receiveAddress = address
	c.mu.Unlock()

	return address, nil
}

func (c *Client) ValidateAddress(ctx context.Context, address string) error {
	result, err := call[validateAddressResult](ctx, c.rpc, "validateaddress", address)
	if err != nil {
		return err
	}

	if !result.IsValid {
		return errors.Join(ErrInvalidAddress, fmt.Errorf("address: %s", address))
	}

	return nil
}

func (c *Client) spendableOutputs(ctx context.Context) ([]int64, error) {
	utxos, err := call[[]unspent](ctx, c.rpc, "listunspent")
	if err != nil {
		return nil, err
	}

	values := make([]int64, 0, len(utxos))
	for _, u := range utxos {
		if !u.Spendable {
			continue
		}
		v, err := coin.ToSmallestUnit(u.Amount)
		if err != nil {
			return nil, errors.Join(ErrInvalidResponse, err)
		}
		values = append(values, v)
	}

	return values, nil
}

func (c *Client) Fee(ctx context.Context, value int64, _ *string, senderPaysFee bool) (int64, error) {
	outputs, err := c.spendableOutputs(ctx)
	if err != nil {
		return 0, err
	}

	return c.feeModel.selectFee(outputs, value, senderPaysFee)
}

func (c *Client) Send(ctx context.Context, address string, value int64) error {
	err := c.ValidateAddress(ctx, address)
	if err != nil {
		return err
	}

	outputs, err := c.spendableOutputs(ctx)
	if err != nil {
		return err
	}

	// fails early with the max fee the wallet could pay
	_, err = c.feeModel.selectFee(outputs, value, true)
	if err != nil {
		return err
	}

	amount := coin.FromSmallestUnit(value).StringFixed(coin.Decimal)
	txID, err := call[string](ctx, c.rpc, "sendtoaddress", address, json.Number(amount))
	if err != nil {
		var rpcErr *RPCError
		if errors.As(err, &rpcErr) && (rpcErr.Code == rpcErrCodeInsufficientFunds || rpcErr.Code == rpcErrCodeWalletError) {
			maxFee, feeErr := c.feeModel.feeForInputs(len(outputs))
			if feeErr != nil {
				return errors.Join(err, feeErr)
			}
			return &adapter.NotEnoughFundsError{MaxFee: maxFee}
		}
		return err
	}

	c.logger.Info("Transaction sent", slog.String("hash", txID))

	return nil
}

func (c *Client) DebugInfo() string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	height := int64(-1)
	if c.lastBlock != nil {
		height = c.lastBlock.Height
	}

	return fmt.Sprintf("height: %d, balance: %d, transactions: %d", height, c.balance, len(c.known))
}
