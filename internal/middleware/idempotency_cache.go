package middleware

import (
	"context"
	"sync"
	"time"
)

const maxIdempotencyEntries = 10000

// idempotencyCache keeps replayable responses in process memory. Expired
// entries are swept when the cache fills up; if it is still full, the
// oldest entry is evicted.
type idempotencyCache struct {
	mu      sync.Mutex
	items   map[string]*CachedResponse
	ttl     time.Duration
	maxSize int
}

func newIdempotencyCache(ttl time.Duration, maxSize int) *idempotencyCache {
	if maxSize <= 0 {
		maxSize = maxIdempotencyEntries
	}
	return &idempotencyCache{
		items:   make(map[string]*CachedResponse),
		ttl:     ttl,
		maxSize: maxSize,
	}
}

// Get returns the response stored under key unless it has expired.
func (c *idempotencyCache) Get(_ context.Context, key string) (*CachedResponse, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	resp, ok := c.items[key]
	if !ok {
		return nil, false
	}
	if time.Since(resp.Timestamp) > c.ttl {
		delete(c.items, key)
		return nil, false
	}
	return resp, true
}

// Set stores resp under key, stamping it with the current time.
func (c *idempotencyCache) Set(_ context.Context, key string, resp *CachedResponse) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.items[key]; !exists && len(c.items) >= c.maxSize {
		c.sweep()
		if len(c.items) >= c.maxSize {
			c.evictOldest()
		}
	}
	resp.Timestamp = time.Now()
	c.items[key] = resp
}

// Len reports the number of stored responses, expired ones included.
func (c *idempotencyCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

func (c *idempotencyCache) sweep() {
	now := time.Now()
	for key, resp := range c.items {
		if now.Sub(resp.Timestamp) > c.ttl {
			delete(c.items, key)
		}
	}
}

func (c *idempotencyCache) evictOldest() {
	var (
		oldestKey string
		oldest    time.Time
	)
	for key, resp := range c.items {
		if oldestKey == "" || resp.Timestamp.Before(oldest) {
			oldestKey, oldest = key, resp.Timestamp
		}
	}
	delete(c.items, oldestKey)
}
