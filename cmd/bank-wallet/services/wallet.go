package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/bitcoin-sv/bank-wallet/config"
	"github.com/bitcoin-sv/bank-wallet/internal/adapter"
	"github.com/bitcoin-sv/bank-wallet/internal/api"
	"github.com/bitcoin-sv/bank-wallet/internal/cache"
	"github.com/bitcoin-sv/bank-wallet/internal/currency"
	"github.com/bitcoin-sv/bank-wallet/internal/mq"
	"github.com/bitcoin-sv/bank-wallet/internal/rate"
	"github.com/bitcoin-sv/bank-wallet/internal/rate/network"
	ratestore "github.com/bitcoin-sv/bank-wallet/internal/rate/store"
	"github.com/bitcoin-sv/bank-wallet/internal/txinfo"
	"github.com/bitcoin-sv/bank-wallet/internal/txrecord"
	"github.com/bitcoin-sv/bank-wallet/internal/txrecord/store"
	"github.com/bitcoin-sv/bank-wallet/internal/txrecord/store/memorystore"
	"github.com/bitcoin-sv/bank-wallet/internal/txrecord/store/postgresql"
	"github.com/bitcoin-sv/bank-wallet/internal/wallet"
)

// StartWallet wires all wallet components and starts them. The returned function stops them in reverse order.
func StartWallet(ctx context.Context, logger *slog.Logger, cfg *config.WalletConfig) (func(), error) {
	logger = logger.With(slog.String("service", "wallet"))
	logger.Info("Starting")

	var (
		shutdownFns []func()
		err         error
	)

	stopFn := func() {
		logger.Info("Shutting down wallet")
		for i := len(shutdownFns) - 1; i >= 0; i-- {
			shutdownFns[i]()
		}
		logger.Info("Shutdown complete")
	}

	cacheStore, err := cache.NewCacheStore(ctx, cfg.Cache)
	if err != nil {
		return nil, fmt.Errorf("failed to create cache store: %v", err)
	}

	recordStore, err := newRecordStore(cfg.Db)
	if err != nil {
		return nil, err
	}
	shutdownFns = append(shutdownFns, func() {
		closeErr := recordStore.Close()
		if closeErr != nil {
			logger.Error("Failed to close record store", slog.String("err", closeErr.Error()))
		}
	})

	currencies := make([]currency.Currency, 0, len(cfg.Currencies))
	for _, c := range cfg.Currencies {
		currencies = append(currencies, currency.Currency{Code: c.Code, Symbol: c.Symbol, Decimal: c.Decimal})
	}

	currencyManager, err := currency.NewManager(logger, currencies, cfg.BaseCurrency)
	if err != nil {
		stopFn()
		return nil, fmt.Errorf("failed to create currency manager: %v", err)
	}
	shutdownFns = append(shutdownFns, currencyManager.Close)

	var (
		adapterStats *adapter.Stats
		rateStats    *rate.Stats
	)
	if cfg.Prometheus.IsEnabled() {
		adapterStats, err = adapter.NewStats()
		if err != nil {
			stopFn()
			return nil, err
		}
		shutdownFns = append(shutdownFns, adapterStats.Unregister)

		rateStats, err = rate.NewStats()
		if err != nil {
			stopFn()
			return nil, err
		}
		shutdownFns = append(shutdownFns, rateStats.Unregister)
	}

	var publisher *mq.Publisher
	if cfg.MessageQueue != nil && cfg.MessageQueue.Enabled {
		conn, connErr := mq.NewConnection(cfg.MessageQueue.URL, logger)
		if connErr != nil {
			stopFn()
			return nil, connErr
		}
		publisher = mq.NewPublisher(conn, logger)
		shutdownFns = append(shutdownFns, publisher.Shutdown)
	}

	rateClient, err := network.New(cfg.Rates.APIURL, network.WithLogger(logger), network.WithTimeout(cfg.Rates.Timeout))
	if err != nil {
		stopFn()
		return nil, fmt.Errorf("failed to create rate network client: %v", err)
	}

	registry := wallet.NewRegistry(logger)
	for _, chainCfg := range cfg.Wallets {
		a, adapterErr := wallet.NewAdapter(logger, chainCfg, adapter.WithStats(adapterStats))
		if adapterErr != nil {
			stopFn()
			return nil, fmt.Errorf("failed to create %s wallet: %v", chainCfg.Coin, adapterErr)
		}

		err = registry.Add(a)
		if err != nil {
			a.Stop()
			stopFn()
			return nil, err
		}
	}

	rateOpts := []rate.Option{
		rate.WithLogger(logger),
		rate.WithStats(rateStats),
		rate.WithRefreshInterval(cfg.Rates.RefreshInterval),
		rate.WithMaxConcurrentFetches(cfg.Rates.MaxConcurrentFetches),
	}
	if cfg.Rates.Retry != nil {
		rateOpts = append(rateOpts, rate.WithRetry(rate.RetryConfig{
			InitialInterval: cfg.Rates.Retry.InitialInterval,
			MaxInterval:     cfg.Rates.Retry.MaxInterval,
			MaxRetries:      cfg.Rates.Retry.MaxRetries,
		}))
	}

	rateManager, err := rate.NewManager(rateClient, ratestore.NewCacheStore(cacheStore), recordStore, registry, currencyManager, rateOpts...)
	if err != nil {
		registry.Stop()
		stopFn()
		return nil, fmt.Errorf("failed to create rate manager: %v", err)
	}

	var syncerOpts []txrecord.SyncerOption
	if publisher != nil {
		syncerOpts = append(syncerOpts, txrecord.WithBatchPublisher(publisher))
	}
	syncer := txrecord.NewSyncer(logger, recordStore, rateManager, syncerOpts...)

	for _, a := range registry.Adapters() {
		batches, _ := a.SubscribeTransactions()
		syncer.Watch(batches)

		if publisher != nil {
			states, _ := a.SubscribeState()
			publisher.ForwardStates(a.Coin(), states)
		}
	}

	if publisher != nil {
		updates, _ := rateManager.Subscribe()
		publisher.ForwardRates(updates)
	}

	// the syncer and the rate manager stop after the adapters, which close the batch and state streams
	shutdownFns = append(shutdownFns, rateManager.Shutdown, syncer.Shutdown, registry.Stop)

	rateManager.Start()
	rateManager.RefreshRates()

	err = registry.Start(ctx)
	if err != nil {
		stopFn()
		return nil, err
	}

	handler := api.NewHandler(logger, currencyManager, rateManager, registry, txinfo.NewMapper(nil), api.WithRecordReader(recordStore))
	server := api.NewServer(logger, cfg.API.Address, handler)
	server.Start()
	shutdownFns = append(shutdownFns, server.Shutdown)

	return stopFn, nil
}

func newRecordStore(cfg *config.DbConfig) (store.TransactionRecordStore, error) {
	switch cfg.Mode {
	case config.DbModeInMemory:
		return memorystore.New(), nil
	case config.DbModePostgres:
		pg, err := postgresql.New(cfg.Postgres.DSN(), cfg.Postgres.MaxIdleConns, cfg.Postgres.MaxOpenConns)
		if err != nil {
			return nil, fmt.Errorf("failed to create postgres record store: %v", err)
		}

		err = pg.MigrateUp()
		if err != nil {
			_ = pg.Close()
			return nil, err
		}

		return pg, nil
	}

	return nil, errors.Join(config.ErrConfigUnknownDbMode, fmt.Errorf("mode: %s", cfg.Mode))
}
