package wallet

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/bitcoin-sv/bank-wallet/config"
	"github.com/bitcoin-sv/bank-wallet/internal/adapter"
	"github.com/bitcoin-sv/bank-wallet/internal/adapter/node"
	"github.com/bitcoin-sv/bank-wallet/internal/coin"
)

var ErrMissingRPCConfig = errors.New("rpc config is required")

// NewAdapter builds the node client described by cfg and wraps it into an adapter.
func NewAdapter(logger *slog.Logger, cfg *config.ChainConfig, opts ...adapter.Option) (*adapter.Adapter, error) {
	c, err := coin.Parse(cfg.Coin)
	if err != nil {
		return nil, err
	}

	network, err := coin.ParseNetwork(cfg.Network)
	if err != nil {
		return nil, err
	}

	if cfg.RPC == nil {
		return nil, errors.Join(ErrMissingRPCConfig, fmt.Errorf("coin: %s", c))
	}

	clientOpts := []node.Option{
		node.WithLogger(logger),
		node.WithNetwork(network),
	}
	if cfg.PollInterval > 0 {
		clientOpts = append(clientOpts, node.WithPollInterval(cfg.PollInterval))
	}
	if cfg.FeePerKb > 0 {
		clientOpts = append(clientOpts, node.WithFeeModel(node.SatoshisPerKilobyte{Satoshis: cfg.FeePerKb}))
	}

	rpc := node.NewRPCClient(cfg.RPC.Host, cfg.RPC.Port, cfg.RPC.User, cfg.RPC.Password)
	client := node.New(rpc, clientOpts...)

	return adapter.New(c, client, append([]adapter.Option{adapter.WithLogger(logger)}, opts...)...)
}
