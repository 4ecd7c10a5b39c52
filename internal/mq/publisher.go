package mq

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/bitcoin-sv/bank-wallet/internal/adapter"
	"github.com/bitcoin-sv/bank-wallet/internal/coin"
	"github.com/bitcoin-sv/bank-wallet/internal/rate"
	"github.com/bitcoin-sv/bank-wallet/internal/txrecord"
)

const (
	RatesUpdatedSubject        = "wallet.rates.updated"
	TransactionsUpdatedSubject = "wallet.transactions.updated"
	StateUpdatedSubject        = "wallet.state.updated"
)

var (
	ErrFailedToPublish = errors.New("failed to publish")
	ErrFailedToMarshal = errors.New("failed to marshal message")
)

type StateMessage struct {
	Coin     coin.Coin `json:"coin"`
	State    string    `json:"state"`
	Progress float64   `json:"progress"`
}

// Publisher sends change notifications of the wallet as JSON messages.
type Publisher struct {
	nc     NatsConnection
	logger *slog.Logger

	wg           sync.WaitGroup
	shutdownOnce sync.Once
}

func NewPublisher(nc NatsConnection, logger *slog.Logger) *Publisher {
	return &Publisher{
		nc:     nc,
		logger: logger.With(slog.String("module", "mq-publisher")),
	}
}

func (p *Publisher) publish(subject string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return errors.Join(ErrFailedToMarshal, fmt.Errorf("subject: %s", subject), err)
	}

	err = p.nc.Publish(subject, data)
	if err != nil {
		return errors.Join(ErrFailedToPublish, fmt.Errorf("subject: %s", subject), err)
	}

	return nil
}

func (p *Publisher) PublishTransactions(_ context.Context, batch txrecord.Batch) error {
	return p.publish(TransactionsUpdatedSubject, batch)
}

func (p *Publisher) PublishRate(update rate.Update) error {
	return p.publish(RatesUpdatedSubject, update)
}

func (p *Publisher) PublishState(c coin.Coin, state adapter.State) error {
	return p.publish(StateUpdatedSubject, StateMessage{Coin: c, State: state.Kind.String(), Progress: state.Progress})
}

// ForwardRates publishes every update until the channel is closed.
func (p *Publisher) ForwardRates(updates <-chan rate.Update) {
	p.wg.Add(1)
	go func() {
		defer p.wg.Done()

		for update := range updates {
			err := p.PublishRate(update)
			if err != nil {
				p.logger.Warn("Failed to publish rate update", slog.String("coin", update.Coin.String()), slog.String("err", err.Error()))
			}
		}
	}()
}

// ForwardStates publishes every state change of the coin until the channel is closed.
func (p *Publisher) ForwardStates(c coin.Coin, states <-chan adapter.State) {
	p.wg.Add(1)
	go func() {
		defer p.wg.Done()

		for state := range states {
			err := p.PublishState(c, state)
			if err != nil {
				p.logger.Warn("Failed to publish state update", slog.String("coin", c.String()), slog.String("err", err.Error()))
			}
		}
	}()
}

// Shutdown waits for the forwarders, whose channels must be closed by then, and drains the connection.
func (p *Publisher) Shutdown() {
	p.shutdownOnce.Do(func() {
		p.wg.Wait()

		err := p.nc.Drain()
		if err != nil {
			p.logger.Error("Failed to drain nats connection", slog.String("err", err.Error()))
		}
	})
}
