package currency

/* Currency Manager */
/*

Holds the base currency selected by the user and broadcasts every change to its subscribers.

Subscribers receive changes on a buffered channel of size one. A subscriber that falls behind only
ever sees the latest base currency: a pending value is replaced rather than queued, so publishing never blocks.

*/

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
)

var (
	ErrUnknownCurrency = errors.New("unknown currency")
	ErrNoCurrencies    = errors.New("no currencies configured")
)

type Currency struct {
	Code    string `json:"code"`
	Symbol  string `json:"symbol"`
	Decimal int    `json:"decimal"`
}

type Manager struct {
	logger *slog.Logger

	mu          sync.RWMutex
	currencies  []Currency
	base        Currency
	subscribers map[uint64]chan Currency
	nextID      uint64
	closed      bool
}

func NewManager(logger *slog.Logger, currencies []Currency, baseCode string) (*Manager, error) {
	if len(currencies) == 0 {
		return nil, ErrNoCurrencies
	}

	m := &Manager{
		logger:      logger.With(slog.String("module", "currency")),
		currencies:  currencies,
		subscribers: make(map[uint64]chan Currency),
	}

	base, found := m.find(baseCode)
	if !found {
		return nil, errors.Join(ErrUnknownCurrency, fmt.Errorf("base currency: %s", baseCode))
	}
	m.base = base

	return m, nil
}

func (m *Manager) find(code string) (Currency, bool) {
	for _, c := range m.currencies {
		if strings.EqualFold(c.Code, code) {
			return c, true
		}
	}

	return Currency{}, false
}

func (m *Manager) BaseCurrency() Currency {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.base
}

func (m *Manager) Currencies() []Currency {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make([]Currency, len(m.currencies))
	copy(result, m.currencies)

	return result
}

// SetBaseCurrency switches the base currency. Subscribers are notified only if the currency actually changed.
func (m *Manager) SetBaseCurrency(code string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	c, found := m.find(code)
	if !found {
		return errors.Join(ErrUnknownCurrency, fmt.Errorf("currency: %s", code))
	}

	if c.Code == m.base.Code {
		return nil
	}

	m.base = c
	m.logger.Info("Base currency changed", slog.String("currency", c.Code))

	for _, ch := range m.subscribers {
		publishLatest(ch, c)
	}

	return nil
}

func publishLatest(ch chan Currency, c Currency) {
	for {
		select {
		case ch <- c:
			return
		default:
		}

		// drop the stale pending value
		select {
		case <-ch:
		default:
		}
	}
}

// Subscribe returns a channel of base currency changes and the function removing the subscription.
func (m *Manager) Subscribe() (<-chan Currency, func()) {
	m.mu.Lock()
	defer m.mu.Unlock()

	ch := make(chan Currency, 1)
	if m.closed {
		close(ch)
		return ch, func() {}
	}

	id := m.nextID
	m.nextID++
	m.subscribers[id] = ch

	var once sync.Once
	unsubscribe := func() {
		once.Do(func() {
			m.mu.Lock()
			defer m.mu.Unlock()

			if sub, ok := m.subscribers[id]; ok {
				delete(m.subscribers, id)
				close(sub)
			}
		})
	}

	return ch, unsubscribe
}

// Close closes all subscription channels.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.closed = true
	for id, ch := range m.subscribers {
		delete(m.subscribers, id)
		close(ch)
	}
}
