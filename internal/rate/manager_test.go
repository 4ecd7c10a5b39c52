package rate_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitcoin-sv/bank-wallet/internal/cache"
	"github.com/bitcoin-sv/bank-wallet/internal/coin"
	"github.com/bitcoin-sv/bank-wallet/internal/currency"
	"github.com/bitcoin-sv/bank-wallet/internal/logger"
	"github.com/bitcoin-sv/bank-wallet/internal/rate"
	"github.com/bitcoin-sv/bank-wallet/internal/rate/mocks"
	ratestore "github.com/bitcoin-sv/bank-wallet/internal/rate/store"
	"github.com/bitcoin-sv/bank-wallet/internal/txrecord"
	"github.com/bitcoin-sv/bank-wallet/internal/txrecord/store/memorystore"
)

var (
	usd = currency.Currency{Code: "USD", Symbol: "$", Decimal: 2}
	eur = currency.Currency{Code: "EUR", Symbol: "€", Decimal: 2}

	fastRetry = rate.RetryConfig{InitialInterval: time.Millisecond, MaxInterval: time.Millisecond, MaxRetries: 1}
)

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func fixedCurrency(c currency.Currency) *mocks.CurrencyContextMock {
	return &mocks.CurrencyContextMock{
		BaseCurrencyFunc: func() currency.Currency { return c },
		SubscribeFunc: func() (<-chan currency.Currency, func()) {
			return make(chan currency.Currency), func() {}
		},
	}
}

func walletsOf(coins ...coin.Coin) *mocks.WalletRegistryMock {
	return &mocks.WalletRegistryMock{
		CoinsFunc: func() []coin.Coin { return coins },
	}
}

func receiveUpdate(t *testing.T, updates <-chan rate.Update) rate.Update {
	t.Helper()

	select {
	case u := <-updates:
		return u
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for rate update")
		return rate.Update{}
	}
}

func requireNoUpdate(t *testing.T, updates <-chan rate.Update) {
	t.Helper()

	select {
	case u := <-updates:
		t.Fatalf("unexpected rate update: %+v", u)
	case <-time.After(100 * time.Millisecond):
	}
}

func TestNewManager(t *testing.T) {
	// when
	_, err := rate.NewManager(&mocks.NetworkClientMock{}, &mocks.StorageMock{}, &mocks.RecordStoreMock{}, walletsOf(), fixedCurrency(usd),
		rate.WithRetry(rate.RetryConfig{InitialInterval: time.Second, MaxInterval: time.Millisecond}),
	)

	// then
	require.ErrorIs(t, err, rate.ErrInvalidRetryValue)
}

func TestManagerRefreshRates(t *testing.T) {
	// given
	network := &mocks.NetworkClientMock{
		GetLatestRateFunc: func(_ context.Context, c coin.Coin, currencyCode string) (rate.Rate, error) {
			if c == coin.BCH {
				return rate.Rate{}, errors.New("service unavailable")
			}
			return rate.Rate{Coin: c, CurrencyCode: currencyCode, Value: decimal.RequireFromString("42000.00"), Timestamp: 1700000000}, nil
		},
	}
	storage := ratestore.NewCacheStore(cache.NewMemoryStore())
	require.NoError(t, storage.Save(rate.Rate{Coin: coin.BTC, CurrencyCode: "EUR", Value: decimal.RequireFromString("38000.00"), Timestamp: 1699990000}))
	require.NoError(t, storage.Save(rate.Rate{Coin: coin.BCH, CurrencyCode: "USD", Value: decimal.RequireFromString("230.10"), Timestamp: 1699990000}))

	sut, err := rate.NewManager(network, storage, memorystore.New(), walletsOf(coin.BTC, coin.BCH), fixedCurrency(usd),
		rate.WithLogger(logger.Discard()),
		rate.WithRetry(fastRetry),
	)
	require.NoError(t, err)
	defer sut.Shutdown()

	updates, unsubscribe := sut.Subscribe()
	defer unsubscribe()
	sut.Start()

	// when
	sut.RefreshRates()

	// then
	update := receiveUpdate(t, updates)
	assert.Equal(t, coin.BTC, update.Coin)
	assert.Equal(t, "USD", update.CurrencyCode)
	assert.Empty(t, update.TransactionHash)

	require.Eventually(t, func() bool {
		return len(network.GetLatestRateCalls()) == 3
	}, time.Second, 10*time.Millisecond)
	requireNoUpdate(t, updates)

	btc := sut.Rate(coin.BTC, "USD")
	require.NotNil(t, btc)
	assert.True(t, decimal.RequireFromString("42000.00").Equal(btc.Value))

	// a failed fetch keeps the previous entry of the same currency
	bch := sut.Rate(coin.BCH, "USD")
	require.NotNil(t, bch)
	assert.True(t, decimal.RequireFromString("230.10").Equal(bch.Value))
	assert.Equal(t, int64(1699990000), bch.Timestamp)

	// entries of other currencies are untouched by a refresh
	btcEUR := sut.Rate(coin.BTC, "EUR")
	require.NotNil(t, btcEUR)
	assert.True(t, decimal.RequireFromString("38000.00").Equal(btcEUR.Value))
}

func TestManagerRefreshRatesWithoutPreviousEntry(t *testing.T) {
	// given
	network := &mocks.NetworkClientMock{
		GetLatestRateFunc: func(_ context.Context, c coin.Coin, currencyCode string) (rate.Rate, error) {
			if c == coin.BCH {
				return rate.Rate{}, errors.New("service unavailable")
			}
			return rate.Rate{Coin: c, CurrencyCode: currencyCode, Value: decimal.RequireFromString("42000.00"), Timestamp: 1700000000}, nil
		},
	}

	sut, err := rate.NewManager(network, ratestore.NewCacheStore(cache.NewMemoryStore()), memorystore.New(), walletsOf(coin.BTC, coin.BCH), fixedCurrency(usd),
		rate.WithLogger(logger.Discard()),
		rate.WithRetry(fastRetry),
	)
	require.NoError(t, err)
	defer sut.Shutdown()

	updates, unsubscribe := sut.Subscribe()
	defer unsubscribe()
	sut.Start()

	// when
	sut.RefreshRates()

	// then
	assert.Equal(t, coin.BTC, receiveUpdate(t, updates).Coin)
	require.Eventually(t, func() bool {
		return len(network.GetLatestRateCalls()) == 3
	}, time.Second, 10*time.Millisecond)
	requireNoUpdate(t, updates)
	assert.Nil(t, sut.Rate(coin.BCH, "USD"))
}

func TestManagerFillTransactionRates(t *testing.T) {
	// given
	ctx := context.Background()
	records := memorystore.New()
	require.NoError(t, records.Upsert(ctx, []txrecord.TransactionRecord{
		{Hash: "with-timestamp", Coin: coin.BTC, Amount: decimal.NewFromInt(1), Timestamp: 1700000000},
		{Hash: "without-timestamp", Coin: coin.BTC, Amount: decimal.NewFromInt(1), Timestamp: 0},
	}))

	network := &mocks.NetworkClientMock{
		GetRateFunc: func(_ context.Context, _ coin.Coin, _ string, _ time.Time) (decimal.Decimal, error) {
			return decimal.RequireFromString("36500.5"), nil
		},
	}

	sut, err := rate.NewManager(network, &mocks.StorageMock{}, records, walletsOf(coin.BTC), fixedCurrency(usd),
		rate.WithLogger(logger.Discard()),
		rate.WithRetry(fastRetry),
	)
	require.NoError(t, err)
	defer sut.Shutdown()

	updates, unsubscribe := sut.Subscribe()
	defer unsubscribe()
	sut.Start()

	// when
	sut.FillTransactionRates()

	// then
	update := receiveUpdate(t, updates)
	assert.Equal(t, "with-timestamp", update.TransactionHash)

	calls := network.GetRateCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, time.Unix(1700000000, 0).UTC(), calls[0].Date)
	assert.Equal(t, "USD", calls[0].CurrencyCode)

	record, err := records.Get(ctx, coin.BTC, "with-timestamp")
	require.NoError(t, err)
	require.NotNil(t, record.Rate)
	assert.Equal(t, "36500.5", record.Rate.String())
	assert.Equal(t, "USD", record.RateCurrency)

	// when
	sut.FillTransactionRates()
	time.Sleep(20 * time.Millisecond)
	sut.FillTransactionRates()

	// then
	require.Never(t, func() bool {
		return len(network.GetRateCalls()) > 1
	}, 200*time.Millisecond, 10*time.Millisecond)

	record, err = records.Get(ctx, coin.BTC, "without-timestamp")
	require.NoError(t, err)
	assert.Nil(t, record.Rate)
}

func TestManagerCurrencyChange(t *testing.T) {
	// given
	ctx := context.Background()
	records := memorystore.New()
	require.NoError(t, records.Upsert(ctx, []txrecord.TransactionRecord{
		{Hash: "tx", Coin: coin.BTC, Amount: decimal.NewFromInt(1), Timestamp: 1700000000},
	}))

	currencies, err := currency.NewManager(logger.Discard(), []currency.Currency{usd, eur}, "USD")
	require.NoError(t, err)
	defer currencies.Close()

	release := make(chan struct{})
	network := &mocks.NetworkClientMock{
		GetLatestRateFunc: func(_ context.Context, c coin.Coin, currencyCode string) (rate.Rate, error) {
			return rate.Rate{Coin: c, CurrencyCode: currencyCode, Value: decimal.NewFromInt(39000), Timestamp: 1700000100}, nil
		},
		GetRateFunc: func(ctx context.Context, _ coin.Coin, currencyCode string, _ time.Time) (decimal.Decimal, error) {
			if currencyCode == "USD" {
				select {
				case <-release:
				case <-ctx.Done():
					return decimal.Zero, ctx.Err()
				}
				return decimal.NewFromInt(42000), nil
			}
			return decimal.NewFromInt(38000), nil
		},
	}

	logs := &syncBuffer{}
	sut, err := rate.NewManager(network, ratestore.NewCacheStore(cache.NewMemoryStore()), records, walletsOf(coin.BTC), currencies,
		rate.WithLogger(slog.New(slog.NewTextHandler(logs, &slog.HandlerOptions{Level: slog.LevelDebug}))),
		rate.WithRetry(fastRetry),
	)
	require.NoError(t, err)
	defer sut.Shutdown()

	updates, unsubscribe := sut.Subscribe()
	defer unsubscribe()
	sut.Start()

	sut.FillTransactionRates()
	require.Eventually(t, func() bool {
		return len(network.GetRateCalls()) == 1
	}, time.Second, 10*time.Millisecond)

	// when
	require.NoError(t, currencies.SetBaseCurrency("EUR"))

	// then
	var filled rate.Update
	for filled.TransactionHash == "" {
		u := receiveUpdate(t, updates)
		assert.Equal(t, "EUR", u.CurrencyCode)
		if u.TransactionHash != "" {
			filled = u
		}
	}
	assert.Equal(t, "tx", filled.TransactionHash)

	// when
	close(release)

	// then
	require.Eventually(t, func() bool {
		return strings.Contains(logs.String(), "Discarding stale rate")
	}, time.Second, 10*time.Millisecond)

	record, err := records.Get(ctx, coin.BTC, "tx")
	require.NoError(t, err)
	require.NotNil(t, record.Rate)
	assert.Equal(t, "38000", record.Rate.String())
	assert.Equal(t, "EUR", record.RateCurrency)

	assert.Nil(t, sut.Rate(coin.BTC, "USD"))
	eurRate := sut.Rate(coin.BTC, "EUR")
	require.NotNil(t, eurRate)
	assert.Equal(t, "39000", eurRate.Value.String())
}

func TestManagerRefillsRatesOfPreviousCurrencyAfterRestart(t *testing.T) {
	// given
	ctx := context.Background()
	records := memorystore.New()
	require.NoError(t, records.Upsert(ctx, []txrecord.TransactionRecord{
		{Hash: "tx", Coin: coin.BTC, Amount: decimal.NewFromInt(1), Timestamp: 1700000000},
	}))

	network := &mocks.NetworkClientMock{
		GetRateFunc: func(_ context.Context, _ coin.Coin, currencyCode string, _ time.Time) (decimal.Decimal, error) {
			if currencyCode == "EUR" {
				return decimal.NewFromInt(38000), nil
			}
			return decimal.NewFromInt(42000), nil
		},
	}

	first, err := rate.NewManager(network, &mocks.StorageMock{}, records, walletsOf(coin.BTC), fixedCurrency(eur),
		rate.WithLogger(logger.Discard()),
		rate.WithRetry(fastRetry),
	)
	require.NoError(t, err)

	updates, unsubscribe := first.Subscribe()
	first.Start()
	first.FillTransactionRates()
	assert.Equal(t, "EUR", receiveUpdate(t, updates).CurrencyCode)
	unsubscribe()
	first.Shutdown()

	// when
	second, err := rate.NewManager(network, &mocks.StorageMock{}, records, walletsOf(coin.BTC), fixedCurrency(usd),
		rate.WithLogger(logger.Discard()),
		rate.WithRetry(fastRetry),
	)
	require.NoError(t, err)
	defer second.Shutdown()

	updates, unsubscribe = second.Subscribe()
	defer unsubscribe()
	second.Start()
	second.FillTransactionRates()

	// then
	update := receiveUpdate(t, updates)
	assert.Equal(t, "USD", update.CurrencyCode)
	assert.Equal(t, "tx", update.TransactionHash)

	calls := network.GetRateCalls()
	require.Len(t, calls, 2)
	assert.Equal(t, "EUR", calls[0].CurrencyCode)
	assert.Equal(t, "USD", calls[1].CurrencyCode)

	record, err := records.Get(ctx, coin.BTC, "tx")
	require.NoError(t, err)
	require.NotNil(t, record.Rate)
	assert.Equal(t, "42000", record.Rate.String())
	assert.Equal(t, "USD", record.RateCurrency)
}

func TestManagerDoesNotRetryRejectedRequests(t *testing.T) {
	// given
	network := &mocks.NetworkClientMock{
		GetLatestRateFunc: func(_ context.Context, c coin.Coin, _ string) (rate.Rate, error) {
			if c == coin.BCH {
				return rate.Rate{}, errors.Join(rate.ErrRequestRejected, errors.New("status: 404 Not Found"))
			}
			return rate.Rate{}, errors.New("status: 503 Service Unavailable")
		},
	}

	sut, err := rate.NewManager(network, ratestore.NewCacheStore(cache.NewMemoryStore()), memorystore.New(), walletsOf(coin.BTC, coin.BCH), fixedCurrency(usd),
		rate.WithLogger(logger.Discard()),
		rate.WithRetry(rate.RetryConfig{InitialInterval: time.Millisecond, MaxInterval: time.Millisecond, MaxRetries: 3}),
	)
	require.NoError(t, err)
	defer sut.Shutdown()
	sut.Start()

	// when
	sut.RefreshRates()

	// then
	require.Eventually(t, func() bool {
		return len(network.GetLatestRateCalls()) == 5
	}, time.Second, 10*time.Millisecond)
	require.Never(t, func() bool {
		return len(network.GetLatestRateCalls()) > 5
	}, 100*time.Millisecond, 10*time.Millisecond)

	bchCalls := 0
	for _, call := range network.GetLatestRateCalls() {
		if call.C == coin.BCH {
			bchCalls++
		}
	}
	assert.Equal(t, 1, bchCalls)
}

func TestManagerShutdownCancelsFetches(t *testing.T) {
	// given
	network := &mocks.NetworkClientMock{
		GetLatestRateFunc: func(ctx context.Context, _ coin.Coin, _ string) (rate.Rate, error) {
			<-ctx.Done()
			return rate.Rate{}, ctx.Err()
		},
	}

	sut, err := rate.NewManager(network, &mocks.StorageMock{}, &mocks.RecordStoreMock{}, walletsOf(coin.BTC, coin.BCH), fixedCurrency(usd),
		rate.WithLogger(logger.Discard()),
		rate.WithRetry(fastRetry),
		rate.WithMaxConcurrentFetches(1),
	)
	require.NoError(t, err)
	sut.Start()
	sut.RefreshRates()

	require.Eventually(t, func() bool {
		return len(network.GetLatestRateCalls()) == 1
	}, time.Second, 10*time.Millisecond)

	// when
	done := make(chan struct{})
	go func() {
		sut.Shutdown()
		close(done)
	}()

	// then
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("shutdown did not cancel outstanding fetches")
	}
	assert.Len(t, network.GetLatestRateCalls(), 1)
}

func TestManagerPeriodicRefresh(t *testing.T) {
	// given
	network := &mocks.NetworkClientMock{
		GetLatestRateFunc: func(_ context.Context, c coin.Coin, currencyCode string) (rate.Rate, error) {
			return rate.Rate{Coin: c, CurrencyCode: currencyCode, Value: decimal.NewFromInt(1)}, nil
		},
	}

	sut, err := rate.NewManager(network, ratestore.NewCacheStore(cache.NewMemoryStore()), memorystore.New(), walletsOf(coin.BTC), fixedCurrency(usd),
		rate.WithLogger(logger.Discard()),
		rate.WithRetry(fastRetry),
		rate.WithRefreshInterval(20*time.Millisecond),
	)
	require.NoError(t, err)
	defer sut.Shutdown()

	updates, unsubscribe := sut.Subscribe()
	defer unsubscribe()

	// when
	sut.Start()

	// then
	receiveUpdate(t, updates)
	receiveUpdate(t, updates)
}
