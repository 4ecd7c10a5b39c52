package api

import (
	"github.com/shopspring/decimal"

	"github.com/bitcoin-sv/bank-wallet/internal/coin"
	"github.com/bitcoin-sv/bank-wallet/internal/currency"
	"github.com/bitcoin-sv/bank-wallet/internal/txrecord"
)

type ErrorResponse struct {
	Error  string           `json:"error"`
	MaxFee *decimal.Decimal `json:"maxFee,omitempty"`
}

type CurrencyRequest struct {
	Code string `json:"code"`
}

type CurrencyResponse struct {
	Base       currency.Currency   `json:"base"`
	Currencies []currency.Currency `json:"currencies"`
}

type WalletResponse struct {
	Coin                   coin.Coin       `json:"coin"`
	State                  string          `json:"state"`
	Progress               float64         `json:"progress"`
	Balance                decimal.Decimal `json:"balance"`
	LastBlockHeight        *int64          `json:"lastBlockHeight,omitempty"`
	ConfirmationsThreshold int             `json:"confirmationsThreshold"`
	Decimal                int             `json:"decimal"`
}

type AddressResponse struct {
	Address string `json:"address"`
}

type AddressTitle struct {
	Address string `json:"address"`
	Mine    bool   `json:"mine"`
	Title   string `json:"title"`
}

type TransactionResponse struct {
	txrecord.TransactionRecord
	Confirmations int64          `json:"confirmations"`
	From          []AddressTitle `json:"from"`
	To            []AddressTitle `json:"to"`
}

type FeeRequest struct {
	Amount        decimal.Decimal `json:"amount"`
	Address       *string         `json:"address,omitempty"`
	SenderPaysFee bool            `json:"senderPaysFee"`
}

type FeeResponse struct {
	Fee decimal.Decimal `json:"fee"`
}

type SendRequest struct {
	Amount  decimal.Decimal `json:"amount"`
	Address string          `json:"address"`
}

type SendResponse struct {
	Address string          `json:"address"`
	Amount  decimal.Decimal `json:"amount"`
}

type ValidateRequest struct {
	Address string `json:"address"`
}
