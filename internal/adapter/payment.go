package adapter

import (
	"net/url"
	"strings"

	"github.com/shopspring/decimal"
)

type PaymentRequestAddress struct {
	Address string           `json:"address"`
	Amount  *decimal.Decimal `json:"amount,omitempty"`
}

// ParsePaymentAddress parses a BIP21 style payment URI like "bitcoin:<address>?amount=0.1".
// Input without the coin scheme is returned as the address.
func (a *Adapter) ParsePaymentAddress(paymentAddress string) PaymentRequestAddress {
	paymentAddress = strings.TrimSpace(paymentAddress)

	scheme, rest, found := strings.Cut(paymentAddress, ":")
	if !found || !strings.EqualFold(scheme, a.coin.URIScheme()) {
		return PaymentRequestAddress{Address: paymentAddress}
	}

	address, rawQuery, _ := strings.Cut(rest, "?")
	result := PaymentRequestAddress{Address: strings.TrimPrefix(address, "//")}

	params, err := url.ParseQuery(rawQuery)
	if err != nil {
		return result
	}

	amount, err := decimal.NewFromString(params.Get("amount"))
	if err == nil && amount.IsPositive() {
		result.Amount = &amount
	}

	return result
}
