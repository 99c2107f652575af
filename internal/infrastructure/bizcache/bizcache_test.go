package bizcache_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"cardwise/internal/domain/entity"
	"cardwise/internal/domain/value"
	"cardwise/internal/infrastructure/bizcache"
)

func newTestCache(t *testing.T) *bizcache.Cache {
	t.Helper()

	address := os.Getenv("TEST_REDIS_ADDRESS")
	if address == "" {
		t.Skip("TEST_REDIS_ADDRESS is not set")
	}

	client := redis.NewClient(&redis.Options{Addr: address}) //nolint:exhaustruct
	t.Cleanup(func() { _ = client.Close() })

	require.NoError(t, client.Ping(context.Background()).Err())

	return bizcache.New(client, time.Minute)
}

func TestCacheRoundTrip(t *testing.T) {
	rq := require.New(t)
	cache := newTestCache(t)
	ctx := context.Background()

	business := &entity.Business{
		ID:            "biz-cache-1",
		Name:          "Corner Cafe",
		Category:      "coffee",
		Coordinates:   &value.Coordinates{Lat: 40.71, Lng: -74.0},
		ProviderTypes: []string{"cafe"},
	}

	cache.Set(ctx, business)

	cached, ok := cache.Get(ctx, "biz-cache-1")
	rq.True(ok)
	rq.Equal(business, cached)
}

func TestCacheMiss(t *testing.T) {
	rq := require.New(t)
	cache := newTestCache(t)

	cached, ok := cache.Get(context.Background(), "never-stored")
	rq.False(ok)
	rq.Nil(cached)
}

func TestCacheBrokenConnectionDegrades(t *testing.T) {
	rq := require.New(t)

	client := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1"}) //nolint:exhaustruct
	t.Cleanup(func() { _ = client.Close() })

	cache := bizcache.New(client, time.Minute)
	ctx := context.Background()

	// Neither call may error or panic: a broken cache only degrades.
	cache.Set(ctx, &entity.Business{ID: "biz-1", Name: "x"})

	cached, ok := cache.Get(ctx, "biz-1")
	rq.False(ok)
	rq.Nil(cached)
}
