package rate

/* Rate Manager */
/*

The Manager keeps the latest rate of every held coin current and resolves historical rates for transaction
records that have none.

Key components:
- event loop: a single goroutine owns the base currency and the currency epoch. Refresh and fill requests,
  currency changes and fetch results are all handled there, so writes into the rate storage and the record
  store as well as update notifications are serialized
- fetch workers: every fetch runs in its own goroutine, bounded by a semaphore and retried with exponential
  backoff. Workers only report results back to the event loop, they never write
- currency epoch: incremented on every base currency change. A result carries the epoch it was requested in
  and is discarded when the epoch has moved on, so no rate of a previous currency is written after a change

On a currency change the event loop refreshes the latest rates, clears all stored rates and requests a fill
before it handles anything else.

*/

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"
	"golang.org/x/sync/semaphore"

	"github.com/bitcoin-sv/bank-wallet/internal/broadcast"
	"github.com/bitcoin-sv/bank-wallet/internal/coin"
	"github.com/bitcoin-sv/bank-wallet/internal/currency"
)

const (
	maxConcurrentFetchesDefault = 10
	resultsBufferSize           = 100
	updatesBufferSize           = 100
	retryInitialIntervalDefault = 500 * time.Millisecond
	retryMaxIntervalDefault     = 10 * time.Second
	retryMaxRetriesDefault      = 3
)

type RetryConfig struct {
	InitialInterval time.Duration
	MaxInterval     time.Duration
	MaxRetries      uint64
}

type recordKey struct {
	coin coin.Coin
	hash string
}

type fetchResult struct {
	epoch        uint64
	coin         coin.Coin
	currencyCode string
	hash         string
	value        Rate
	err          error
}

type Manager struct {
	logger     *slog.Logger
	network    NetworkClient
	storage    Storage
	records    RecordStore
	wallets    WalletRegistry
	currencies CurrencyContext
	stats      *Stats

	retry           RetryConfig
	refreshInterval time.Duration
	fetchSem        *semaphore.Weighted
	maxConcurrent   int64

	refreshRequests chan struct{}
	fillRequests    chan struct{}
	results         chan fetchResult
	updates         *broadcast.Broadcaster[Update]

	// owned by the event loop
	epoch    uint64
	currency currency.Currency
	inFlight map[recordKey]struct{}

	ctx         context.Context
	cancelAll   context.CancelFunc
	wg          sync.WaitGroup
	fetchWg     sync.WaitGroup
	startOnce   sync.Once
	stopOnce    sync.Once
	unsubscribe func()
}

type Option func(m *Manager)

func WithLogger(l *slog.Logger) Option {
	return func(m *Manager) {
		m.logger = l
	}
}

func WithStats(s *Stats) Option {
	return func(m *Manager) {
		m.stats = s
	}
}

func WithRetry(r RetryConfig) Option {
	return func(m *Manager) {
		m.retry = r
	}
}

// WithRefreshInterval refreshes the latest rates periodically. Zero disables periodic refreshes.
func WithRefreshInterval(d time.Duration) Option {
	return func(m *Manager) {
		m.refreshInterval = d
	}
}

func WithMaxConcurrentFetches(n int64) Option {
	return func(m *Manager) {
		m.maxConcurrent = n
	}
}

func NewManager(network NetworkClient, storage Storage, records RecordStore, wallets WalletRegistry, currencies CurrencyContext, opts ...Option) (*Manager, error) {
	m := &Manager{
		logger:     slog.Default(),
		network:    network,
		storage:    storage,
		records:    records,
		wallets:    wallets,
		currencies: currencies,
		retry: RetryConfig{
			InitialInterval: retryInitialIntervalDefault,
			MaxInterval:     retryMaxIntervalDefault,
			MaxRetries:      retryMaxRetriesDefault,
		},
		maxConcurrent:   maxConcurrentFetchesDefault,
		refreshRequests: make(chan struct{}, 1),
		fillRequests:    make(chan struct{}, 1),
		results:         make(chan fetchResult, resultsBufferSize),
		updates:         broadcast.New[Update](updatesBufferSize),
		inFlight:        make(map[recordKey]struct{}),
	}

	for _, opt := range opts {
		opt(m)
	}

	if m.retry.InitialInterval <= 0 || m.retry.MaxInterval < m.retry.InitialInterval {
		return nil, errors.Join(ErrInvalidRetryValue, fmt.Errorf("initial interval: %s, max interval: %s", m.retry.InitialInterval, m.retry.MaxInterval))
	}

	if m.maxConcurrent <= 0 {
		m.maxConcurrent = maxConcurrentFetchesDefault
	}

	m.logger = m.logger.With(slog.String("module", "rate-manager"))
	m.fetchSem = semaphore.NewWeighted(m.maxConcurrent)
	m.currency = currencies.BaseCurrency()
	m.ctx, m.cancelAll = context.WithCancel(context.Background())

	return m, nil
}

// Start subscribes to base currency changes and starts the event loop.
func (m *Manager) Start() {
	m.startOnce.Do(func() {
		changes, unsubscribe := m.currencies.Subscribe()
		m.unsubscribe = unsubscribe

		m.wg.Add(1)
		go func() {
			defer m.wg.Done()
			m.run(changes)
		}()
	})
}

func (m *Manager) run(changes <-chan currency.Currency) {
	var tick <-chan time.Time
	if m.refreshInterval > 0 {
		ticker := time.NewTicker(m.refreshInterval)
		defer ticker.Stop()
		tick = ticker.C
	}

	for {
		select {
		case <-m.ctx.Done():
			return
		case c, ok := <-changes:
			if !ok {
				changes = nil
				continue
			}
			m.onCurrencyChanged(c)
		case <-m.refreshRequests:
			m.refreshRates()
		case <-m.fillRequests:
			m.fillTransactionRates()
		case <-tick:
			m.refreshRates()
		case res := <-m.results:
			m.onResult(res)
		}
	}
}

// Rate returns the latest known rate or nil if it was never fetched.
func (m *Manager) Rate(c coin.Coin, currencyCode string) *Rate {
	r, err := m.storage.Rate(c, currencyCode)
	if err != nil {
		if !errors.Is(err, ErrRateNotFound) {
			m.logger.Warn("Failed to read rate", slog.String("coin", c.String()), slog.String("currency", currencyCode), slog.String("err", err.Error()))
		}
		return nil
	}

	return r
}

// RefreshRates requests a fetch of the latest rate of every wallet coin. It does not block.
func (m *Manager) RefreshRates() {
	request(m.refreshRequests)
}

// FillTransactionRates requests historical rates for all records without one. It does not block.
func (m *Manager) FillTransactionRates() {
	request(m.fillRequests)
}

// request coalesces requests which are not handled yet.
func request(ch chan struct{}) {
	select {
	case ch <- struct{}{}:
	default:
	}
}

// Subscribe returns a stream of written rates. Subscribers have to drain the stream.
func (m *Manager) Subscribe() (<-chan Update, func()) {
	return m.updates.Subscribe()
}

func (m *Manager) onCurrencyChanged(c currency.Currency) {
	if c.Code == m.currency.Code {
		return
	}

	m.logger.Info("Base currency changed", slog.String("from", m.currency.Code), slog.String("to", c.Code))

	m.epoch++
	m.currency = c
	m.inFlight = make(map[recordKey]struct{})

	m.refreshRates()

	err := m.storage.ClearRates()
	if err != nil {
		m.logger.Error("Failed to clear latest rates", slog.String("err", err.Error()))
	}

	err = m.records.ClearRates(m.ctx)
	if err != nil {
		m.logger.Error("Failed to clear transaction rates", slog.String("err", err.Error()))
	}

	m.fillTransactionRates()
}

func (m *Manager) refreshRates() {
	epoch := m.epoch
	currencyCode := m.currency.Code

	for _, c := range m.wallets.Coins() {
		c := c
		m.fetch(func(ctx context.Context) fetchResult {
			r, err := m.network.GetLatestRate(ctx, c, currencyCode)
			return fetchResult{epoch: epoch, coin: c, currencyCode: currencyCode, value: r, err: err}
		})
	}
}

func (m *Manager) fillTransactionRates() {
	epoch := m.epoch
	currencyCode := m.currency.Code

	records, err := m.records.NonFilledRecords(m.ctx, currencyCode)
	if err != nil {
		m.logger.Error("Failed to get records without rate", slog.String("err", err.Error()))
		return
	}

	for _, r := range records {
		if !r.NeedsRateIn(currencyCode) {
			continue
		}

		key := recordKey{coin: r.Coin, hash: r.Hash}
		if _, found := m.inFlight[key]; found {
			continue
		}
		m.inFlight[key] = struct{}{}

		c := r.Coin
		hash := r.Hash
		timestamp := r.Timestamp
		m.fetch(func(ctx context.Context) fetchResult {
			value, err := m.network.GetRate(ctx, c, currencyCode, time.Unix(timestamp, 0).UTC())
			return fetchResult{
				epoch:        epoch,
				coin:         c,
				currencyCode: currencyCode,
				hash:         hash,
				value:        Rate{Coin: c, CurrencyCode: currencyCode, Value: value, Timestamp: timestamp},
				err:          err,
			}
		})
	}
}

// fetch runs op in a worker with retries and hands its result to the event loop.
func (m *Manager) fetch(op func(ctx context.Context) fetchResult) {
	m.fetchWg.Add(1)
	go func() {
		defer m.fetchWg.Done()

		err := m.fetchSem.Acquire(m.ctx, 1)
		if err != nil {
			return
		}
		m.stats.fetchStarted()
		defer func() {
			m.stats.fetchDone()
			m.fetchSem.Release(1)
		}()

		policy := backoff.NewExponentialBackOff()
		policy.InitialInterval = m.retry.InitialInterval
		policy.MaxInterval = m.retry.MaxInterval
		policy.MaxElapsedTime = 0

		var res fetchResult
		_ = backoff.Retry(func() error {
			res = op(m.ctx)
			if errors.Is(res.err, ErrRequestRejected) {
				return backoff.Permanent(res.err)
			}
			return res.err
		}, backoff.WithContext(backoff.WithMaxRetries(policy, m.retry.MaxRetries), m.ctx))

		select {
		case m.results <- res:
		case <-m.ctx.Done():
		}
	}()
}

func (m *Manager) onResult(res fetchResult) {
	kind := kindLatest
	if res.hash != "" {
		kind = kindHistorical
	}

	if res.epoch != m.epoch {
		m.stats.fetched(kind, resultStale)
		m.logger.Debug("Discarding stale rate",
			slog.String("coin", res.coin.String()),
			slog.String("currency", res.currencyCode),
			slog.String("hash", res.hash),
		)
		return
	}

	if res.hash != "" {
		delete(m.inFlight, recordKey{coin: res.coin, hash: res.hash})
	}

	if res.err != nil {
		m.stats.fetched(kind, resultFailed)
		m.logger.Warn("Failed to fetch rate",
			slog.String("coin", res.coin.String()),
			slog.String("currency", res.currencyCode),
			slog.String("hash", res.hash),
			slog.String("err", errors.Join(ErrFetchFailed, res.err).Error()),
		)
		return
	}

	if res.hash == "" {
		r := res.value
		r.Coin = res.coin
		r.CurrencyCode = res.currencyCode

		err := m.storage.Save(r)
		if err != nil {
			m.logger.Error("Failed to save rate", slog.String("coin", res.coin.String()), slog.String("err", err.Error()))
			return
		}
	} else {
		err := m.records.SetRate(m.ctx, res.coin, res.hash, res.currencyCode, res.value.Value)
		if err != nil {
			m.logger.Error("Failed to set transaction rate", slog.String("hash", res.hash), slog.String("err", err.Error()))
			return
		}
	}

	m.stats.fetched(kind, resultSuccess)
	m.updates.Publish(m.ctx, Update{
		Coin:            res.coin,
		CurrencyCode:    res.currencyCode,
		Value:           res.value.Value,
		Timestamp:       res.value.Timestamp,
		TransactionHash: res.hash,
	})
}

// Shutdown cancels all outstanding fetches and stops the event loop.
func (m *Manager) Shutdown() {
	m.stopOnce.Do(func() {
		m.cancelAll()
		m.wg.Wait()
		m.fetchWg.Wait()
		if m.unsubscribe != nil {
			m.unsubscribe()
		}
		m.updates.Close()
	})
}
