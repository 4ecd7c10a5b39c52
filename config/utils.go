package config

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrConfigUnknownNetwork  = errors.New("unknown network")
	ErrConfigUnknownCurrency = errors.New("base currency is not configured")
	ErrConfigNoWallets       = errors.New("no wallets configured")
	ErrConfigDuplicateCoin   = errors.New("coin configured more than once")
	ErrConfigUnknownDbMode   = errors.New("unknown db mode")
)

func (p *PrometheusConfig) IsEnabled() bool {
	return p != nil && p.Enabled && p.Addr != "" && p.Endpoint != ""
}

func (p *PostgresConfig) DSN() string {
	return fmt.Sprintf("user=%s password=%s dbname=%s host=%s port=%d sslmode=%s",
		p.User, p.Password, p.Name, p.Host, p.Port, p.SslMode)
}

func (c *WalletConfig) Validate() error {
	found := false
	for _, cur := range c.Currencies {
		if strings.EqualFold(cur.Code, c.BaseCurrency) {
			found = true
			break
		}
	}
	if !found {
		return errors.Join(ErrConfigUnknownCurrency, fmt.Errorf("base currency: %s", c.BaseCurrency))
	}

	if len(c.Wallets) == 0 {
		return ErrConfigNoWallets
	}

	coins := make(map[string]struct{}, len(c.Wallets))
	for _, w := range c.Wallets {
		code := strings.ToUpper(w.Coin)
		if _, exists := coins[code]; exists {
			return errors.Join(ErrConfigDuplicateCoin, fmt.Errorf("coin: %s", w.Coin))
		}
		coins[code] = struct{}{}

		switch w.Network {
		case "mainnet", "testnet":
		default:
			return errors.Join(ErrConfigUnknownNetwork, fmt.Errorf("coin: %s, network: %s", w.Coin, w.Network))
		}
	}

	if c.Db != nil {
		switch c.Db.Mode {
		case DbModePostgres, DbModeInMemory:
		default:
			return errors.Join(ErrConfigUnknownDbMode, fmt.Errorf("mode: %s", c.Db.Mode))
		}
	}

	return nil
}
