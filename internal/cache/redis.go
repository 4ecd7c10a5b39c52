package cache

import (
	"context"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"
)

// RedisStore is an implementation of Store using Redis.
type RedisStore struct {
	client redis.UniversalClient
	ctx    context.Context
}

// NewRedisStore initializes a RedisStore.
func NewRedisStore(ctx context.Context, c redis.UniversalClient) *RedisStore {
	return &RedisStore{
		client: c,
		ctx:    ctx,
	}
}

// Get retrieves a value by key.
func (r *RedisStore) Get(key string) ([]byte, error) {
	result, err := r.client.Get(r.ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrCacheNotFound
	} else if err != nil {
		return nil, errors.Join(ErrCacheFailedToGet, err)
	}
	return result, nil
}

// Set stores a value with a TTL.
func (r *RedisStore) Set(key string, value []byte, ttl time.Duration) error {
	err := r.client.Set(r.ctx, key, value, ttl).Err()
	if err != nil {
		return errors.Join(ErrCacheFailedToSet, err)
	}
	return nil
}

// Del removes values by key.
func (r *RedisStore) Del(keys ...string) error {
	result, err := r.client.Del(r.ctx, keys...).Result()
	if err != nil {
		return errors.Join(ErrCacheFailedToDel, err)
	}
	if result == 0 {
		return ErrCacheNotFound
	}
	return nil
}

func (r *RedisStore) MapGet(hash string, key string) ([]byte, error) {
	result, err := r.client.HGet(r.ctx, hash, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrCacheNotFound
	} else if err != nil {
		return nil, errors.Join(ErrCacheFailedToGet, err)
	}
	return result, nil
}

func (r *RedisStore) MapGetAll(hash string) (map[string][]byte, error) {
	values, err := r.client.HGetAll(r.ctx, hash).Result()
	if err != nil {
		return nil, errors.Join(ErrCacheFailedToGet, err)
	}
	if len(values) == 0 {
		return nil, ErrCacheNotFound
	}

	result := make(map[string][]byte, len(values))
	for k, v := range values {
		result[k] = []byte(v)
	}
	return result, nil
}

func (r *RedisStore) MapSet(hash string, key string, value []byte) error {
	err := r.client.HSet(r.ctx, hash, key, value).Err()
	if err != nil {
		return errors.Join(ErrCacheFailedToSet, err)
	}
	return nil
}

func (r *RedisStore) MapDel(hash string, keys ...string) error {
	result, err := r.client.HDel(r.ctx, hash, keys...).Result()
	if err != nil {
		return errors.Join(ErrCacheFailedToDel, err)
	}
	if result == 0 {
		return ErrCacheNotFound
	}
	return nil
}

func (r *RedisStore) MapLen(hash string) (int64, error) {
	count, err := r.client.HLen(r.ctx, hash).Result()
	if err != nil {
		return 0, errors.Join(ErrCacheFailedToGetCount, err)
	}
	return count, nil
}
