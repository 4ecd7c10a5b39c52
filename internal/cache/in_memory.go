package cache

import (
	"sync"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

const cleanupInterval = time.Minute

// MemoryStore keeps values in process memory. Plain values honour their TTL, a zero TTL never expires.
type MemoryStore struct {
	data *gocache.Cache

	mapMu sync.RWMutex
	maps  map[string]map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		data: gocache.New(gocache.NoExpiration, cleanupInterval),
		maps: make(map[string]map[string][]byte),
	}
}

// Get retrieves a value by key. It returns an error if the key does not exist.
func (s *MemoryStore) Get(key string) ([]byte, error) {
	value, found := s.data.Get(key)
	if !found {
		return nil, ErrCacheNotFound
	}

	bytes, ok := value.([]byte)
	if !ok {
		return nil, ErrCacheFailedToGet
	}

	return bytes, nil
}

// Set stores a key-value pair.
func (s *MemoryStore) Set(key string, value []byte, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = gocache.NoExpiration
	}
	s.data.Set(key, value, ttl)
	return nil
}

// Del removes keys and maps from the store.
func (s *MemoryStore) Del(keys ...string) error {
	s.mapMu.Lock()
	defer s.mapMu.Unlock()

	deleted := false
	for _, key := range keys {
		if _, found := s.data.Get(key); found {
			s.data.Delete(key)
			deleted = true
		}
		if _, found := s.maps[key]; found {
			delete(s.maps, key)
			deleted = true
		}
	}

	if !deleted {
		return ErrCacheNotFound
	}
	return nil
}

func (s *MemoryStore) MapGet(hash string, key string) ([]byte, error) {
	s.mapMu.RLock()
	defer s.mapMu.RUnlock()

	value, found := s.maps[hash][key]
	if !found {
		return nil, ErrCacheNotFound
	}
	return value, nil
}

func (s *MemoryStore) MapGetAll(hash string) (map[string][]byte, error) {
	s.mapMu.RLock()
	defer s.mapMu.RUnlock()

	m, found := s.maps[hash]
	if !found {
		return nil, ErrCacheNotFound
	}

	result := make(map[string][]byte, len(m))
	for k, v := range m {
		result[k] = v
	}
	return result, nil
}

func (s *MemoryStore) MapSet(hash string, key string, value []byte) error {
	s.mapMu.Lock()
	defer s.mapMu.Unlock()

	m, found := s.maps[hash]
	if !found {
		m = make(map[string][]byte)
		s.maps[hash] = m
	}
	m[key] = value
	return nil
}

func (s *MemoryStore) MapDel(hash string, keys ...string) error {
	s.mapMu.Lock()
	defer s.mapMu.Unlock()

	m, found := s.maps[hash]
	if !found {
		return ErrCacheNotFound
	}

	for _, key := range keys {
		delete(m, key)
	}
	if len(m) == 0 {
		delete(s.maps, hash)
	}
	return nil
}

func (s *MemoryStore) MapLen(hash string) (int64, error) {
	s.mapMu.RLock()
	defer s.mapMu.RUnlock()

	return int64(len(s.maps[hash])), nil
}
