package wallet

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/bitcoin-sv/bank-wallet/internal/adapter"
	"github.com/bitcoin-sv/bank-wallet/internal/coin"
)

var (
	ErrWalletNotFound  = errors.New("wallet not found")
	ErrDuplicateWallet = errors.New("wallet already registered")
)

// Registry holds the active wallets, one adapter per coin.
type Registry struct {
	logger *slog.Logger

	mu       sync.RWMutex
	adapters map[coin.Coin]*adapter.Adapter
}

func NewRegistry(logger *slog.Logger) *Registry {
	return &Registry{
		logger:   logger.With(slog.String("module", "wallet-registry")),
		adapters: make(map[coin.Coin]*adapter.Adapter),
	}
}

func (r *Registry) Add(a *adapter.Adapter) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, found := r.adapters[a.Coin()]; found {
		return errors.Join(ErrDuplicateWallet, fmt.Errorf("coin: %s", a.Coin()))
	}

	r.adapters[a.Coin()] = a
	return nil
}

// Coins returns the coins of all active wallets in a stable order.
func (r *Registry) Coins() []coin.Coin {
	r.mu.RLock()
	defer r.mu.RUnlock()

	coins := make([]coin.Coin, 0, len(r.adapters))
	for c := range r.adapters {
		coins = append(coins, c)
	}
	sort.Slice(coins, func(i, j int) bool { return coins[i] < coins[j] })

	return coins
}

func (r *Registry) Adapter(c coin.Coin) (*adapter.Adapter, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, found := r.adapters[c]
	if !found {
		return nil, errors.Join(ErrWalletNotFound, fmt.Errorf("coin: %s", c))
	}

	return a, nil
}

func (r *Registry) Adapters() []*adapter.Adapter {
	coins := r.Coins()

	r.mu.RLock()
	defer r.mu.RUnlock()

	adapters := make([]*adapter.Adapter, 0, len(coins))
	for _, c := range coins {
		adapters = append(adapters, r.adapters[c])
	}

	return adapters
}

// Start starts synchronization of all wallets in parallel. The first failure is returned.
func (r *Registry) Start(ctx context.Context) error {
	g, gCtx := errgroup.WithContext(ctx)

	for _, a := range r.Adapters() {
		a := a
		g.Go(func() error {
			err := a.Start(gCtx)
			if err != nil {
				return fmt.Errorf("wallet %s: %w", a.Coin(), err)
			}

			r.logger.Info("Wallet started", slog.String("coin", a.Coin().String()))
			return nil
		})
	}

	return g.Wait()
}

func (r *Registry) Stop() {
	for _, a := range r.Adapters() {
		a.Stop()
	}
}
