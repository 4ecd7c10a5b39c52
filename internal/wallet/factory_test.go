package wallet_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitcoin-sv/bank-wallet/config"
	"github.com/bitcoin-sv/bank-wallet/internal/coin"
	"github.com/bitcoin-sv/bank-wallet/internal/logger"
	"github.com/bitcoin-sv/bank-wallet/internal/wallet"
)

func TestNewAdapter(t *testing.T) {
	rpc := &config.RPCConfig{Host: "localhost", Port: 18332, User: "bitcoin", Password: "bitcoin"}

	testCases := []struct {
		name          string
		cfg           *config.ChainConfig
		expectedError error
	}{
		{
			name: "bitcoin testnet",
			cfg:  &config.ChainConfig{Coin: "btc", Network: "testnet", RPC: rpc, FeePerKb: 2000},
		},
		{
			name:          "unknown coin",
			cfg:           &config.ChainConfig{Coin: "DOGE", Network: "mainnet", RPC: rpc},
			expectedError: coin.ErrUnknownCoin,
		},
		{
			name:          "unknown network",
			cfg:           &config.ChainConfig{Coin: "BTC", Network: "regtest", RPC: rpc},
			expectedError: coin.ErrUnknownNetwork,
		},
		{
			name:          "missing rpc",
			cfg:           &config.ChainConfig{Coin: "BCH", Network: "mainnet"},
			expectedError: wallet.ErrMissingRPCConfig,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// when
			a, err := wallet.NewAdapter(logger.Discard(), tc.cfg)

			// then
			if tc.expectedError != nil {
				require.ErrorIs(t, err, tc.expectedError)
				return
			}
			require.NoError(t, err)
			defer a.Stop()
			assert.Equal(t, coin.BTC, a.Coin())
		})
	}
}
