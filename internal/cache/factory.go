package cache

import (
	"context"
	"errors"
	"fmt"

	"github.com/coocood/freecache"
	"github.com/go-redis/redis/v8"

	"github.com/bitcoin-sv/bank-wallet/config"
)

var ErrCacheUnknownType = errors.New("unknown cache type")

// NewCacheStore creates a new cache Store based on the provided configuration.
func NewCacheStore(ctx context.Context, cacheConfig *config.CacheConfig) (Store, error) {
	switch cacheConfig.Engine {
	case config.FreeCache:
		return NewFreecacheStore(freecache.NewCache(cacheConfig.Freecache.Size)), nil
	case config.Redis:
		c := redis.NewClient(&redis.Options{
			Addr:     cacheConfig.Redis.Addr,
			Password: cacheConfig.Redis.Password,
			DB:       cacheConfig.Redis.DB,
		})
		return NewRedisStore(ctx, c), nil
	case config.InMemory:
		return NewMemoryStore(), nil
	default:
		return nil, errors.Join(ErrCacheUnknownType, fmt.Errorf("engine: %s", cacheConfig.Engine))
	}
}
