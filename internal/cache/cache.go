package cache

import (
	"errors"
	"time"
)

var (
	ErrCacheNotFound         = errors.New("key not found in cache")
	ErrCacheFailedToSet      = errors.New("failed to set value in cache")
	ErrCacheFailedToDel      = errors.New("failed to delete value from cache")
	ErrCacheFailedToGet      = errors.New("failed to get value from cache")
	ErrCacheFailedToGetCount = errors.New("failed to get count from cache")
	ErrCacheFailedToEncode   = errors.New("failed to encode cache map")
)

// Store is a key/value cache with additional map (hash) values.
type Store interface {
	Get(key string) ([]byte, error)
	Set(key string, value []byte, ttl time.Duration) error
	Del(keys ...string) error

	MapGet(hash string, key string) ([]byte, error)
	MapGetAll(hash string) (map[string][]byte, error)
	MapSet(hash string, key string, value []byte) error
	MapDel(hash string, keys ...string) error
	MapLen(hash string) (int64, error)
}
