package adapter

import (
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/bitcoin-sv/bank-wallet/internal/coin"
)

var ErrFailedToRegisterStats = errors.New("failed to register stats collector")

type Stats struct {
	syncProgress *prometheus.GaugeVec
	state        *prometheus.GaugeVec
}

func NewStats() (*Stats, error) {
	s := &Stats{
		syncProgress: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "bank_wallet_adapter_sync_progress",
			Help: "Sync progress of the chain adapter between 0 and 1",
		}, []string{"coin"}),
		state: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "bank_wallet_adapter_state",
			Help: "Current state of the chain adapter: 0 syncing, 1 synced, 2 not synced",
		}, []string{"coin"}),
	}

	for _, c := range []prometheus.Collector{s.syncProgress, s.state} {
		err := prometheus.Register(c)
		if err != nil {
			return nil, errors.Join(ErrFailedToRegisterStats, fmt.Errorf("adapter: %w", err))
		}
	}

	return s, nil
}

func (s *Stats) setState(c coin.Coin, state State) {
	if s == nil {
		return
	}

	s.state.WithLabelValues(c.String()).Set(float64(state.Kind))

	switch state.Kind {
	case StateSynced:
		s.syncProgress.WithLabelValues(c.String()).Set(1)
	case StateSyncing:
		s.syncProgress.WithLabelValues(c.String()).Set(state.Progress)
	}
}

func (s *Stats) Unregister() {
	if s == nil {
		return
	}

	_ = prometheus.Unregister(s.syncProgress)
	_ = prometheus.Unregister(s.state)
}
