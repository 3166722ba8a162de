package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/guttosm/dispatch-service/internal/logger"
)

const idempotencyKeyPrefix = "dispatch:idempotency:"

// RedisIdempotencyStore shares replayable responses between service replicas.
type RedisIdempotencyStore struct {
	client redis.UniversalClient
	ttl    time.Duration
}

// NewRedisIdempotencyStore creates a Redis-backed idempotency store.
func NewRedisIdempotencyStore(client redis.UniversalClient, ttl time.Duration) *RedisIdempotencyStore {
	if ttl <= 0 {
		ttl = IdempotencyKeyTTL
	}
	return &RedisIdempotencyStore{client: client, ttl: ttl}
}

// Get returns the stored response. Lookup failures are treated as a miss.
func (s *RedisIdempotencyStore) Get(ctx context.Context, key string) (*CachedResponse, bool) {
	raw, err := s.client.Get(ctx, idempotencyKeyPrefix+key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			log := logger.Logger()
			log.Warn().Err(err).Msg("Idempotency lookup failed")
		}
		return nil, false
	}

	var resp CachedResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		log := logger.Logger()
		log.Warn().Err(err).Msg("Discarding unreadable idempotency record")
		return nil, false
	}
	return &resp, true
}

// Set stores resp for the configured TTL.
func (s *RedisIdempotencyStore) Set(ctx context.Context, key string, resp *CachedResponse) {
	resp.Timestamp = time.Now()
	raw, err := json.Marshal(resp)
	if err != nil {
		log := logger.Logger()
		log.Warn().Err(err).Msg("Failed to encode idempotency record")
		return
	}
	if err := s.client.Set(ctx, idempotencyKeyPrefix+key, raw, s.ttl).Err(); err != nil {
		log := logger.Logger()
		log.Warn().Err(err).Msg("Failed to store idempotency record")
	}
}
