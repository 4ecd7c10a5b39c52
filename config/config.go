package config

import (
	"time"
)

const (
	FreeCache = "freecache"
	Redis     = "redis"
	InMemory  = "in-memory"

	DbModePostgres = "postgres"
	DbModeInMemory = "in-memory"
)

type WalletConfig struct {
	LogLevel     string              `json:"logLevel" mapstructure:"logLevel"`
	LogFormat    string              `json:"logFormat" mapstructure:"logFormat"`
	ProfilerAddr string              `json:"profilerAddr" mapstructure:"profilerAddr"`
	Prometheus   *PrometheusConfig   `json:"prometheus" mapstructure:"prometheus"`
	BaseCurrency string              `json:"baseCurrency" mapstructure:"baseCurrency"`
	Currencies   []*CurrencyConfig   `json:"currencies" mapstructure:"currencies"`
	Wallets      []*ChainConfig      `json:"wallets" mapstructure:"wallets"`
	Rates        *RatesConfig        `json:"rates" mapstructure:"rates"`
	Cache        *CacheConfig        `json:"cache" mapstructure:"cache"`
	Db           *DbConfig           `json:"db" mapstructure:"db"`
	MessageQueue *MessageQueueConfig `json:"messageQueue" mapstructure:"messageQueue"`
	API          *APIConfig          `json:"api" mapstructure:"api"`
}

type PrometheusConfig struct {
	Endpoint string `json:"endpoint" mapstructure:"endpoint"`
	Addr     string `json:"addr" mapstructure:"addr"`
	Enabled  bool   `json:"enabled" mapstructure:"enabled"`
}

type CurrencyConfig struct {
	Code    string `json:"code" mapstructure:"code"`
	Symbol  string `json:"symbol" mapstructure:"symbol"`
	Decimal int    `json:"decimal" mapstructure:"decimal"`
}

type ChainConfig struct {
	Coin         string        `json:"coin" mapstructure:"coin"`
	Network      string        `json:"network" mapstructure:"network"`
	RPC          *RPCConfig    `json:"rpc" mapstructure:"rpc"`
	PollInterval time.Duration `json:"pollInterval" mapstructure:"pollInterval"`
	FeePerKb     uint64        `json:"feePerKb" mapstructure:"feePerKb"`
}

type RPCConfig struct {
	Host     string `json:"host" mapstructure:"host"`
	Port     int    `json:"port" mapstructure:"port"`
	User     string `json:"user" mapstructure:"user"`
	Password string `json:"password" mapstructure:"password"`
}

type RatesConfig struct {
	APIURL               string        `json:"apiUrl" mapstructure:"apiUrl"`
	Timeout              time.Duration `json:"timeout" mapstructure:"timeout"`
	RefreshInterval      time.Duration `json:"refreshInterval" mapstructure:"refreshInterval"`
	MaxConcurrentFetches int64         `json:"maxConcurrentFetches" mapstructure:"maxConcurrentFetches"`
	Retry                *RetryConfig  `json:"retry" mapstructure:"retry"`
}

type RetryConfig struct {
	InitialInterval time.Duration `json:"initialInterval" mapstructure:"initialInterval"`
	MaxInterval     time.Duration `json:"maxInterval" mapstructure:"maxInterval"`
	MaxRetries      uint64        `json:"maxRetries" mapstructure:"maxRetries"`
}

type CacheConfig struct {
	Engine    string           `json:"engine" mapstructure:"engine"`
	Freecache *FreeCacheConfig `json:"freecache" mapstructure:"freecache"`
	Redis     *RedisConfig     `json:"redis" mapstructure:"redis"`
}

type FreeCacheConfig struct {
	Size int `json:"size" mapstructure:"size"`
}

type RedisConfig struct {
	Addr     string `json:"addr" mapstructure:"addr"`
	Password string `json:"password" mapstructure:"password"`
	DB       int    `json:"db" mapstructure:"db"`
}

type DbConfig struct {
	Mode     string          `json:"mode" mapstructure:"mode"`
	Postgres *PostgresConfig `json:"postgres" mapstructure:"postgres"`
}

type PostgresConfig struct {
	Host         string `json:"host" mapstructure:"host"`
	Port         int    `json:"port" mapstructure:"port"`
	Name         string `json:"name" mapstructure:"name"`
	User         string `json:"user" mapstructure:"user"`
	Password     string `json:"password" mapstructure:"password"`
	MaxIdleConns int    `json:"maxIdleConns" mapstructure:"maxIdleConns"`
	MaxOpenConns int    `json:"maxOpenConns" mapstructure:"maxOpenConns"`
	SslMode      string `json:"sslMode" mapstructure:"sslMode"`
}

type MessageQueueConfig struct {
	Enabled bool   `json:"enabled" mapstructure:"enabled"`
	URL     string `json:"url" mapstructure:"url"`
}

type APIConfig struct {
	Address string `json:"address" mapstructure:"address"`
}
