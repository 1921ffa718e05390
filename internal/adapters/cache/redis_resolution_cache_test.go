package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"freight-quote-service/internal/domain"
)

func newRedisCache(t *testing.T, ttl time.Duration) (*RedisResolutionCache, *miniredis.Miniredis) {
	t.Helper()

	srv := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: srv.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewRedisResolutionCache(client, ttl), srv
}

func TestRedisCacheRoundTrip(t *testing.T) {
	cache, _ := newRedisCache(t, 0)
	ctx := context.Background()

	want := domain.DestinationResolution{
		Municipality: "Porto Alegre",
		UF:           "RS",
		Location:     domain.Coordinate{Lat: -30.0346, Lon: -51.2177},
		IBGECode:     4314902,
	}

	require.NoError(t, cache.Put(ctx, "90000000", want))

	got, ok, err := cache.Get(ctx, "90000000")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, want, got)
}

func TestRedisCacheMiss(t *testing.T) {
	cache, _ := newRedisCache(t, 0)

	_, ok, err := cache.Get(context.Background(), "00000000")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRedisCacheExpiry(t *testing.T) {
	cache, srv := newRedisCache(t, time.Minute)
	ctx := context.Background()

	require.NoError(t, cache.Put(ctx, "90000000", domain.DestinationResolution{
		Municipality: "Porto Alegre",
		UF:           "RS",
	}))

	srv.FastForward(2 * time.Minute)

	_, ok, err := cache.Get(ctx, "90000000")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRedisCacheRejectsEmptyKey(t *testing.T) {
	cache, _ := newRedisCache(t, 0)
	assert.Error(t, cache.Put(context.Background(), "", domain.DestinationResolution{}))
}

func TestRedisCacheCapitalFallbackEntry(t *testing.T) {
	// Fallback resolutions have no administrative code; zero must survive
	// the round trip.
	cache, _ := newRedisCache(t, 0)
	ctx := context.Background()

	require.NoError(t, cache.Put(ctx, "99999000", domain.DestinationResolution{
		Municipality: "Porto Alegre",
		UF:           "RS",
		Location:     domain.Coordinate{Lat: -30.0346, Lon: -51.2177},
	}))

	got, ok, err := cache.Get(ctx, "99999000")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Zero(t, got.IBGECode)
}
