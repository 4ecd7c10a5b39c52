package mq

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/nats-io/nats.go"
)

var ErrFailedToConnect = errors.New("failed to connect to nats server")

// NatsConnection is the part of *nats.Conn used by the publisher.
type NatsConnection interface {
	Publish(subj string, data []byte) error
	Drain() error
}

func NewConnection(natsURL string, logger *slog.Logger) (*nats.Conn, error) {
	hostname, err := os.Hostname()
	if err != nil {
		return nil, err
	}

	opts := []nats.Option{
		nats.Name(hostname),
		nats.ErrorHandler(func(_ *nats.Conn, _ *nats.Subscription, err error) {
			logger.Error("Connection error", slog.String("err", err.Error()))
		}),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			if err != nil {
				logger.Error("Client disconnected", slog.String("err", err.Error()))
			}
		}),
		nats.ReconnectHandler(func(_ *nats.Conn) {
			logger.Info("Client reconnected")
		}),
		nats.ClosedHandler(func(_ *nats.Conn) {
			logger.Info("Client closed")
		}),
		nats.RetryOnFailedConnect(true),
		nats.PingInterval(2 * time.Minute),
		nats.MaxPingsOutstanding(2),
		nats.MaxReconnects(60),
		nats.ReconnectWait(2 * time.Second),
	}

	nc, err := nats.Connect(natsURL, opts...)
	if err != nil {
		return nil, errors.Join(ErrFailedToConnect, fmt.Errorf("url: %s", natsURL), err)
	}

	return nc, nil
}
