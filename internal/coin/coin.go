package coin

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Decimal is the number of fractional digits of the smallest unit for all supported coins.
const Decimal = 8

var (
	ErrUnknownCoin     = errors.New("unknown coin")
	ErrAmountOverflow  = errors.New("amount does not fit into smallest unit")
	ErrUnknownNetwork  = errors.New("unknown network")
	unitsPerCoin       = decimal.New(1, Decimal)
	supportedCoinCodes = []Coin{BTC, BCH}
)

type Coin string

const (
	BTC Coin = "BTC"
	BCH Coin = "BCH"
)

type Network string

const (
	MainNet Network = "mainnet"
	TestNet Network = "testnet"
)

func (c Coin) String() string {
	return string(c)
}

// URIScheme is the payment URI scheme used for the coin.
func (c Coin) URIScheme() string {
	switch c {
	case BCH:
		return "bitcoincash"
	default:
		return "bitcoin"
	}
}

func Parse(code string) (Coin, error) {
	c := Coin(strings.ToUpper(strings.TrimSpace(code)))
	for _, supported := range supportedCoinCodes {
		if c == supported {
			return c, nil
		}
	}

	return "", errors.Join(ErrUnknownCoin, fmt.Errorf("coin: %s", code))
}

func ParseNetwork(network string) (Network, error) {
	switch Network(network) {
	case MainNet, TestNet:
		return Network(network), nil
	}

	return "", errors.Join(ErrUnknownNetwork, fmt.Errorf("network: %s", network))
}

// ToSmallestUnit converts a user facing amount into satoshis.
// Rounding is half away from zero, so 0.000000005 becomes 1 and -0.000000005 becomes -1.
func ToSmallestUnit(amount decimal.Decimal) (int64, error) {
	scaled := amount.Mul(unitsPerCoin).Round(0)
	if !scaled.BigInt().IsInt64() {
		return 0, errors.Join(ErrAmountOverflow, fmt.Errorf("amount: %s", amount.String()))
	}

	return scaled.IntPart(), nil
}

// FromSmallestUnit converts satoshis back into a user facing amount.
func FromSmallestUnit(units int64) decimal.Decimal {
	return decimal.New(units, -Decimal)
}
