package app

import (
	"context"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/guttosm/dispatch-service/config"
	"github.com/guttosm/dispatch-service/internal/middleware"
	"github.com/guttosm/dispatch-service/internal/repository"
)

// RedisComponents holds the Redis-backed collaborators.
type RedisComponents struct {
	Client      *redis.Client
	Locker      *repository.VehicleLocker
	Drafts      repository.DraftMirror
	Idempotency middleware.IdempotencyStore
}

// InitializeRedis connects to Redis. Returns nil if Redis is disabled or
// unreachable; drafts then fall back to MongoDB or memory, confirmation
// relies on the order store's conditional insert alone and idempotent
// replays stay per replica.
func InitializeRedis(cfg config.RedisConfig) *RedisComponents {
	if !cfg.Enabled {
		return nil
	}

	client, err := repository.NewRedisClient(context.Background(), repository.RedisConfig{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err != nil {
		log.Error().Err(err).Msg("Failed to connect to Redis - continuing without it")
		return nil
	}

	log.Info().Str("addr", cfg.Addr).Msg("Connected to Redis")

	return &RedisComponents{
		Client:      client,
		Locker:      repository.NewVehicleLocker(client, cfg.VehicleLockTTL),
		Drafts:      repository.NewRedisDraftMirror(client, cfg.DraftTTL),
		Idempotency: middleware.NewRedisIdempotencyStore(client, cfg.IdempotencyTTL),
	}
}

// Close releases the Redis connection pool.
func (r *RedisComponents) Close() {
	if r == nil || r.Client == nil {
		return
	}
	if err := r.Client.Close(); err != nil {
		log.Warn().Err(err).Msg("Failed to close Redis client")
	}
}
