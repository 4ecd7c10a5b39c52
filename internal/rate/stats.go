package rate

import (
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	kindLatest     = "latest"
	kindHistorical = "historical"

	resultSuccess = "success"
	resultFailed  = "failed"
	resultStale   = "stale"
)

var ErrFailedToRegisterStats = errors.New("failed to register stats collector")

type Stats struct {
	fetches  *prometheus.CounterVec
	inFlight prometheus.Gauge
}

func NewStats() (*Stats, error) {
	s := &Stats{
		fetches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "bank_wallet_rate_fetches_total",
			Help: "Number of finished rate fetches by kind and result",
		}, []string{"kind", "result"}),
		inFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "bank_wallet_rate_fetches_in_flight",
			Help: "Number of rate fetches currently running",
		}),
	}

	for _, c := range []prometheus.Collector{s.fetches, s.inFlight} {
		err := prometheus.Register(c)
		if err != nil {
			return nil, errors.Join(ErrFailedToRegisterStats, fmt.Errorf("rate: %w", err))
		}
	}

	return s, nil
}

func (s *Stats) fetched(kind, result string) {
	if s == nil {
		return
	}
	s.fetches.WithLabelValues(kind, result).Inc()
}

func (s *Stats) fetchStarted() {
	if s == nil {
		return
	}
	s.inFlight.Inc()
}

func (s *Stats) fetchDone() {
	if s == nil {
		return
	}
	s.inFlight.Dec()
}

func (s *Stats) Unregister() {
	if s == nil {
		return
	}

	_ = prometheus.Unregister(s.fetches)
	_ = prometheus.Unregister(s.inFlight)
}
