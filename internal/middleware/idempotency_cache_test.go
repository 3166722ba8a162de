package middleware

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIdempotencyCache_Get(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name          string
		key           string
		setup         func(*idempotencyCache)
		expectedFound bool
	}{
		{
			name:          "missing key",
			key:           "missing",
			setup:         func(*idempotencyCache) {},
			expectedFound: false,
		},
		{
			name: "fresh entry",
			key:  "fresh",
			setup: func(c *idempotencyCache) {
				c.Set(ctx, "fresh", &CachedResponse{StatusCode: 201})
			},
			expectedFound: true,
		},
		{
			name: "expired entry",
			key:  "stale",
			setup: func(c *idempotencyCache) {
				c.mu.Lock()
				c.items["stale"] = &CachedResponse{StatusCode: 201, Timestamp: time.Now().Add(-time.Hour)}
				c.mu.Unlock()
			},
			expectedFound: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cache := newIdempotencyCache(time.Minute, 0)
			tt.setup(cache)
			resp, found := cache.Get(ctx, tt.key)

			assert.Equal(t, tt.expectedFound, found)
			if tt.expectedFound {
				assert.Equal(t, 201, resp.StatusCode)
			}
		})
	}
}

func TestIdempotencyCache_ExpiredEntryIsDropped(t *testing.T) {
	cache := newIdempotencyCache(time.Minute, 0)
	cache.mu.Lock()
	cache.items["stale"] = &CachedResponse{Timestamp: time.Now().Add(-time.Hour)}
	cache.mu.Unlock()

	_, found := cache.Get(context.Background(), "stale")
	assert.False(t, found)
	assert.Zero(t, cache.Len())
}

func TestIdempotencyCache_Set(t *testing.T) {
	ctx := context.Background()
	cache := newIdempotencyCache(time.Minute, 0)

	resp := &CachedResponse{
		StatusCode: 201,
		Headers:    map[string]string{"Location": "/api/orders/o-1"},
		Body:       []byte(`{"data":{"order_id":"o-1"}}`),
	}
	cache.Set(ctx, "k", resp)

	retrieved, found := cache.Get(ctx, "k")
	require.True(t, found)
	assert.Equal(t, resp.StatusCode, retrieved.StatusCode)
	assert.Equal(t, resp.Headers, retrieved.Headers)
	assert.False(t, retrieved.Timestamp.IsZero())
}

func TestIdempotencyCache_Bounded(t *testing.T) {
	ctx := context.Background()

	t.Run("sweeps expired entries before evicting", func(t *testing.T) {
		cache := newIdempotencyCache(time.Minute, 2)
		cache.mu.Lock()
		cache.items["old"] = &CachedResponse{Timestamp: time.Now().Add(-time.Hour)}
		cache.items["live"] = &CachedResponse{Timestamp: time.Now()}
		cache.mu.Unlock()

		cache.Set(ctx, "new", &CachedResponse{StatusCode: 201})

		assert.Equal(t, 2, cache.Len())
		_, found := cache.Get(ctx, "live")
		assert.True(t, found)
	})

	t.Run("evicts the oldest live entry", func(t *testing.T) {
		cache := newIdempotencyCache(time.Hour, 2)
		cache.mu.Lock()
		cache.items["first"] = &CachedResponse{Timestamp: time.Now().Add(-2 * time.Minute)}
		cache.items["second"] = &CachedResponse{Timestamp: time.Now().Add(-time.Minute)}
		cache.mu.Unlock()

		cache.Set(ctx, "third", &CachedResponse{StatusCode: 201})

		assert.Equal(t, 2, cache.Len())
		_, found := cache.Get(ctx, "first")
		assert.False(t, found)
		_, found = cache.Get(ctx, "third")
		assert.True(t, found)
	})

	t.Run("overwriting a key does not evict", func(t *testing.T) {
		cache := newIdempotencyCache(time.Hour, 1)
		cache.Set(ctx, "k", &CachedResponse{StatusCode: 200})
		cache.Set(ctx, "k", &CachedResponse{StatusCode: 201})

		resp, found := cache.Get(ctx, "k")
		require.True(t, found)
		assert.Equal(t, 201, resp.StatusCode)
	})
}
