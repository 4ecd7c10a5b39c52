package txrecord

import (
	"context"
	"log/slog"
	"sync"

	"github.com/bitcoin-sv/bank-wallet/internal/coin"
)

type RecordWriter interface {
	Upsert(ctx context.Context, records []TransactionRecord) error
	Delete(ctx context.Context, c coin.Coin, hashes []string) error
}

type RateFiller interface {
	FillTransactionRates()
}

type BatchPublisher interface {
	PublishTransactions(ctx context.Context, batch Batch) error
}

// Syncer persists transaction batches coming from chain adapters and requests
// historical rates for the new records.
type Syncer struct {
	logger    *slog.Logger
	store     RecordWriter
	filler    RateFiller
	publisher BatchPublisher

	ctx       context.Context
	cancelAll context.CancelFunc
	wg        sync.WaitGroup
}

type SyncerOption func(s *Syncer)

func WithBatchPublisher(p BatchPublisher) SyncerOption {
	return func(s *Syncer) {
		s.publisher = p
	}
}

func NewSyncer(logger *slog.Logger, store RecordWriter, filler RateFiller, opts ...SyncerOption) *Syncer {
	s := &Syncer{
		logger: logger.With(slog.String("module", "record-syncer")),
		store:  store,
		filler: filler,
	}

	for _, opt := range opts {
		opt(s)
	}

	s.ctx, s.cancelAll = context.WithCancel(context.Background())

	return s
}

// Watch consumes batches until the channel is closed or the syncer shuts down.
func (s *Syncer) Watch(batches <-chan Batch) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()

		for {
			select {
			case <-s.ctx.Done():
				return
			case batch, ok := <-batches:
				if !ok {
					return
				}
				s.handle(batch)
			}
		}
	}()
}

func (s *Syncer) handle(batch Batch) {
	err := s.store.Upsert(s.ctx, batch.Records)
	if err != nil {
		s.logger.Error("Failed to store transaction records", slog.String("coin", batch.Coin.String()), slog.String("err", err.Error()))
		return
	}

	err = s.store.Delete(s.ctx, batch.Coin, batch.Deleted)
	if err != nil {
		s.logger.Error("Failed to delete transaction records", slog.String("coin", batch.Coin.String()), slog.String("err", err.Error()))
	}

	s.logger.Debug("Transaction records synced",
		slog.String("coin", batch.Coin.String()),
		slog.Int("records", len(batch.Records)),
		slog.Int("deleted", len(batch.Deleted)),
	)

	if s.publisher != nil {
		err = s.publisher.PublishTransactions(s.ctx, batch)
		if err != nil {
			s.logger.Warn("Failed to publish transaction batch", slog.String("err", err.Error()))
		}
	}

	for _, r := range batch.Records {
		if r.NeedsRate() {
			s.filler.FillTransactionRates()
			return
		}
	}
}

func (s *Syncer) Shutdown() {
	s.cancelAll()
	s.wg.Wait()
}
