package api

import (
	"context"

	"github.com/bitcoin-sv/bank-wallet/internal/adapter"
	"github.com/bitcoin-sv/bank-wallet/internal/coin"
	"github.com/bitcoin-sv/bank-wallet/internal/currency"
	"github.com/bitcoin-sv/bank-wallet/internal/rate"
	"github.com/bitcoin-sv/bank-wallet/internal/txrecord"
)

type CurrencyContext interface {
	BaseCurrency() currency.Currency
	Currencies() []currency.Currency
	SetBaseCurrency(code string) error
}

type RateProvider interface {
	Rate(c coin.Coin, currencyCode string) *rate.Rate
}

type WalletRegistry interface {
	Coins() []coin.Coin
	Adapter(c coin.Coin) (*adapter.Adapter, error)
}

type RecordReader interface {
	Get(ctx context.Context, c coin.Coin, hash string) (*txrecord.TransactionRecord, error)
}

type TitleMapper interface {
	Map(address string) string
}
