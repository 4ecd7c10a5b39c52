package memorystore

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/bitcoin-sv/bank-wallet/internal/coin"
	"github.com/bitcoin-sv/bank-wallet/internal/txrecord"
	"github.com/bitcoin-sv/bank-wallet/internal/txrecord/store"
)

type key struct {
	coin coin.Coin
	hash string
}

// MemoryStore keeps transaction records in process memory.
type MemoryStore struct {
	mu      sync.RWMutex
	records map[key]txrecord.TransactionRecord
}

func New() *MemoryStore {
	return &MemoryStore{records: make(map[key]txrecord.TransactionRecord)}
}

func (m *MemoryStore) Upsert(_ context.Context, records []txrecord.TransactionRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, r := range records {
		k := key{coin: r.Coin, hash: r.Hash}
		existing, found := m.records[k]
		if found && r.Rate == nil && existing.Timestamp == r.Timestamp {
			r.Rate = existing.Rate
			r.RateCurrency = existing.RateCurrency
		}
		m.records[k] = copyRecord(r)
	}

	return nil
}

func (m *MemoryStore) Delete(_ context.Context, c coin.Coin, hashes []string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, h := range hashes {
		delete(m.records, key{coin: c, hash: h})
	}

	return nil
}

func (m *MemoryStore) Get(_ context.Context, c coin.Coin, hash string) (*txrecord.TransactionRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	r, found := m.records[key{coin: c, hash: hash}]
	if !found {
		return nil, errors.Join(store.ErrNotFound, fmt.Errorf("hash: %s", hash))
	}

	r = copyRecord(r)
	return &r, nil
}

func (m *MemoryStore) List(_ context.Context, c coin.Coin, fromHash *string, limit int) ([]txrecord.TransactionRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	records := make([]txrecord.TransactionRecord, 0)
	for k, r := range m.records {
		if k.coin == c {
			records = append(records, copyRecord(r))
		}
	}

	sort.Slice(records, func(i, j int) bool {
		if records[i].Timestamp != records[j].Timestamp {
			return records[i].Timestamp > records[j].Timestamp
		}
		return records[i].Hash > records[j].Hash
	})

	start := 0
	if fromHash != nil {
		start = len(records)
		for i, r := range records {
			if r.Hash == *fromHash {
				start = i + 1
				break
			}
		}
	}

	end := len(records)
	if limit > 0 {
		end = min(start+limit, end)
	}

	return records[start:end], nil
}

func (m *MemoryStore) NonFilledRecords(_ context.Context, currencyCode string) ([]txrecord.TransactionRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	records := make([]txrecord.TransactionRecord, 0)
	for _, r := range m.records {
		if r.NeedsRateIn(currencyCode) {
			records = append(records, copyRecord(r))
		}
	}

	sort.Slice(records, func(i, j int) bool {
		return records[i].Hash < records[j].Hash
	})

	return records, nil
}

func (m *MemoryStore) SetRate(_ context.Context, c coin.Coin, hash string, currencyCode string, rate decimal.Decimal) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	k := key{coin: c, hash: hash}
	r, found := m.records[k]
	if !found {
		return errors.Join(store.ErrNotFound, fmt.Errorf("hash: %s", hash))
	}

	r.Rate = &rate
	r.RateCurrency = currencyCode
	m.records[k] = r

	return nil
}

func (m *MemoryStore) ClearRates(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for k, r := range m.records {
		r.Rate = nil
		r.RateCurrency = ""
		m.records[k] = r
	}

	return nil
}

func (m *MemoryStore) Close() error {
	return nil
}

func copyRecord(r txrecord.TransactionRecord) txrecord.TransactionRecord {
	if r.BlockHeight != nil {
		height := *r.BlockHeight
		r.BlockHeight = &height
	}
	if r.Rate != nil {
		rate := *r.Rate
		r.Rate = &rate
	}
	r.From = append([]txrecord.TransactionAddress(nil), r.From...)
	r.To = append([]txrecord.TransactionAddress(nil), r.To...)

	return r
}
