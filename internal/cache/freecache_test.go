package cache_test

import (
	"testing"
	"time"

	"github.com/ccoveille/go-safecast"
	"github.com/coocood/freecache"
	"github.com/stretchr/testify/require"

	"github.com/bitcoin-sv/bank-wallet/internal/cache"
)

func TestFreecacheStore(t *testing.T) {
	store := cache.NewFreecacheStore(freecache.NewCache(10 * 1024 * 1024))

	key := "example"
	value := []byte("hello world")
	ttl := 1 * time.Second

	// Test Set
	err := store.Set(key, value, ttl)
	require.NoError(t, err, "expected no error on Set")

	// Test Get
	retrievedValue, err := store.Get(key)
	require.NoError(t, err, "expected no error on Get")
	require.Equal(t, value, retrievedValue, "expected retrieved value to match set value")

	// Test Get after TTL expiry
	time.Sleep(ttl + 1*time.Second)
	retrievedValue, err = store.Get(key)
	require.ErrorIs(t, err, cache.ErrCacheNotFound, "expected error on Get after TTL expiry")
	require.Nil(t, retrievedValue, "expected nil value on Get after TTL expiry")

	// Test Delete
	err = store.Set(key, value, ttl)
	require.NoError(t, err, "expected no error on Set before Delete")

	err = store.Del(key)
	require.NoError(t, err, "expected no error on Delete")

	retrievedValue, err = store.Get(key)
	require.ErrorIs(t, err, cache.ErrCacheNotFound, "expected error on Get after Delete")
	require.Nil(t, retrievedValue, "expected nil value on Get after Delete")

	// Test Delete non-existent key
	err = store.Del("nonexistent")
	require.ErrorIs(t, err, cache.ErrCacheNotFound, "expected error on Delete for non-existent key")
}

func TestFreecacheStoreInvalidTTL(t *testing.T) {
	store := cache.NewFreecacheStore(freecache.NewCache(1024 * 1024))

	tt := []struct {
		name string
		ttl  time.Duration
	}{
		{name: "negative", ttl: -time.Second},
		{name: "beyond uint32 seconds", ttl: 200 * 365 * 24 * time.Hour},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			// when
			err := store.Set("key", []byte("value"), tc.ttl)

			// then
			require.ErrorIs(t, err, cache.ErrCacheFailedToSet)
			require.ErrorIs(t, err, safecast.ErrConversionIssue)

			_, err = store.Get("key")
			require.ErrorIs(t, err, cache.ErrCacheNotFound)
		})
	}
}

func TestFreecacheStoreMap(t *testing.T) {
	// given
	store := cache.NewFreecacheStore(freecache.NewCache(10 * 1024 * 1024))

	// when
	err := store.MapSet("rates", "BTC:USD", []byte("42000"))
	require.NoError(t, err)
	err = store.MapSet("rates", "BCH:USD", []byte("450"))
	require.NoError(t, err)

	// then
	value, err := store.MapGet("rates", "BTC:USD")
	require.NoError(t, err)
	require.Equal(t, []byte("42000"), value)

	count, err := store.MapLen("rates")
	require.NoError(t, err)
	require.Equal(t, int64(2), count)

	all, err := store.MapGetAll("rates")
	require.NoError(t, err)
	require.Equal(t, map[string][]byte{"BTC:USD": []byte("42000"), "BCH:USD": []byte("450")}, all)

	// when
	err = store.MapDel("rates", "BTC:USD", "BCH:USD")
	require.NoError(t, err)

	// then
	_, err = store.MapGet("rates", "BTC:USD")
	require.ErrorIs(t, err, cache.ErrCacheNotFound)
	count, err = store.MapLen("rates")
	require.NoError(t, err)
	require.Zero(t, count)
	_, err = store.MapGetAll("rates")
	require.ErrorIs(t, err, cache.ErrCacheNotFound)
}
