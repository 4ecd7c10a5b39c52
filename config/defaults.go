package config

import (
	"time"
)

func getDefaultWalletConfig() *WalletConfig {
	return &WalletConfig{
		LogLevel:     "DEBUG",
		LogFormat:    "text",
		ProfilerAddr: "",
		Prometheus:   getDefaultPrometheusConfig(),
		BaseCurrency: "USD",
		Currencies:   getDefaultCurrencies(),
		Wallets:      getDefaultWallets(),
		Rates:        getDefaultRatesConfig(),
		Cache:        getDefaultCacheConfig(),
		Db:           getDefaultDbConfig(),
		MessageQueue: getDefaultMessageQueueConfig(),
		API:          getDefaultAPIConfig(),
	}
}

func getDefaultPrometheusConfig() *PrometheusConfig {
	return &PrometheusConfig{
		Enabled:  false,
		Endpoint: "/metrics",
		Addr:     ":2112",
	}
}

func getDefaultCurrencies() []*CurrencyConfig {
	return []*CurrencyConfig{
		{Code: "USD", Symbol: "$", Decimal: 2},
		{Code: "EUR", Symbol: "€", Decimal: 2},
		{Code: "RUB", Symbol: "₽", Decimal: 2},
	}
}

func getDefaultWallets() []*ChainConfig {
	return []*ChainConfig{
		{
			Coin:         "BTC",
			Network:      "testnet",
			RPC:          &RPCConfig{Host: "localhost", Port: 18332, User: "bitcoin", Password: "bitcoin"},
			PollInterval: 10 * time.Second,
			FeePerKb:     1000,
		},
	}
}

func getDefaultRatesConfig() *RatesConfig {
	return &RatesConfig{
		APIURL:               "https://ipfs.io/ipns/QmXTJZBMMRmBbPun6HFt3tmb3tfYF2usLPxFoacL7G5uMX/xrates",
		Timeout:              10 * time.Second,
		RefreshInterval:      3 * time.Minute,
		MaxConcurrentFetches: 10,
		Retry: &RetryConfig{
			InitialInterval: 500 * time.Millisecond,
			MaxInterval:     10 * time.Second,
			MaxRetries:      3,
		},
	}
}

func getDefaultCacheConfig() *CacheConfig {
	return &CacheConfig{
		Engine: FreeCache,
		Freecache: &FreeCacheConfig{
			Size: 10 * 1024 * 1024, // 10MB
		},
		Redis: &RedisConfig{
			Addr:     "localhost:6379",
			Password: "",
			DB:       1,
		},
	}
}

func getDefaultDbConfig() *DbConfig {
	return &DbConfig{
		Mode: DbModePostgres,
		Postgres: &PostgresConfig{
			Host:         "localhost",
			Port:         5432,
			Name:         "wallet",
			User:         "wallet",
			Password:     "wallet",
			MaxIdleConns: 10,
			MaxOpenConns: 80,
			SslMode:      "disable",
		},
	}
}

func getDefaultMessageQueueConfig() *MessageQueueConfig {
	return &MessageQueueConfig{
		Enabled: false,
		URL:     "nats://localhost:4222",
	}
}

func getDefaultAPIConfig() *APIConfig {
	return &APIConfig{
		Address: "localhost:9190",
	}
}
