package cache

import (
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/ccoveille/go-safecast"
	"github.com/coocood/freecache"
)

// FreecacheStore is an implementation of Store using freecache.
// Map values are kept as one encoded entry per hash.
type FreecacheStore struct {
	cache *freecache.Cache
	mapMu sync.Mutex
}

// NewFreecacheStore initializes a FreecacheStore.
func NewFreecacheStore(c *freecache.Cache) *FreecacheStore {
	return &FreecacheStore{
		cache: c,
	}
}

// Get retrieves a value by key.
func (f *FreecacheStore) Get(key string) ([]byte, error) {
	value, err := f.cache.Get([]byte(key))
	if err != nil {
		if errors.Is(err, freecache.ErrNotFound) {
			return nil, ErrCacheNotFound
		}
		return nil, errors.Join(ErrCacheFailedToGet, err)
	}
	return value, nil
}

// Set stores a value with a TTL in whole seconds. A zero TTL never expires.
func (f *FreecacheStore) Set(key string, value []byte, ttl time.Duration) error {
	// freecache keeps expiry as uint32 seconds
	expireSeconds, err := safecast.ToUint32(ttl / time.Second)
	if err != nil {
		return errors.Join(ErrCacheFailedToSet, err)
	}

	err = f.cache.Set([]byte(key), value, int(expireSeconds))
	if err != nil {
		return errors.Join(ErrCacheFailedToSet, err)
	}
	return nil
}

// Del removes values by key.
func (f *FreecacheStore) Del(keys ...string) error {
	deleted := false
	for _, key := range keys {
		if f.cache.Del([]byte(key)) {
			deleted = true
		}
	}

	if !deleted {
		return ErrCacheNotFound
	}
	return nil
}

func (f *FreecacheStore) loadMap(hash string) (map[string][]byte, error) {
	raw, err := f.Get(hash)
	if err != nil {
		return nil, err
	}

	m := make(map[string][]byte)
	err = json.Unmarshal(raw, &m)
	if err != nil {
		return nil, errors.Join(ErrCacheFailedToGet, err)
	}
	return m, nil
}

func (f *FreecacheStore) storeMap(hash string, m map[string][]byte) error {
	if len(m) == 0 {
		f.cache.Del([]byte(hash))
		return nil
	}

	raw, err := json.Marshal(m)
	if err != nil {
		return errors.Join(ErrCacheFailedToEncode, err)
	}
	return f.Set(hash, raw, 0)
}

func (f *FreecacheStore) MapGet(hash string, key string) ([]byte, error) {
	f.mapMu.Lock()
	defer f.mapMu.Unlock()

	m, err := f.loadMap(hash)
	if err != nil {
		return nil, err
	}

	value, found := m[key]
	if !found {
		return nil, ErrCacheNotFound
	}
	return value, nil
}

func (f *FreecacheStore) MapGetAll(hash string) (map[string][]byte, error) {
	f.mapMu.Lock()
	defer f.mapMu.Unlock()

	return f.loadMap(hash)
}

func (f *FreecacheStore) MapSet(hash string, key string, value []byte) error {
	f.mapMu.Lock()
	defer f.mapMu.Unlock()

	m, err := f.loadMap(hash)
	if err != nil {
		if !errors.Is(err, ErrCacheNotFound) {
			return err
		}
		m = make(map[string][]byte)
	}

	m[key] = value
	return f.storeMap(hash, m)
}

func (f *FreecacheStore) MapDel(hash string, keys ...string) error {
	f.mapMu.Lock()
	defer f.mapMu.Unlock()

	m, err := f.loadMap(hash)
	if err != nil {
		return err
	}

	for _, key := range keys {
		delete(m, key)
	}
	return f.storeMap(hash, m)
}

func (f *FreecacheStore) MapLen(hash string) (int64, error) {
	f.mapMu.Lock()
	defer f.mapMu.Unlock()

	m, err := f.loadMap(hash)
	if err != nil {
		if errors.Is(err, ErrCacheNotFound) {
			return 0, nil
		}
		return 0, err
	}
	return int64(len(m)), nil
}
