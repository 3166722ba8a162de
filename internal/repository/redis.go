package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bsm/redislock"
	"github.com/redis/go-redis/v9"
)

// ErrVehicleLocked is returned when another replica is confirming an order for the vehicle.
var ErrVehicleLocked = errors.New("vehicle is locked by another confirmation")

const vehicleLockPrefix = "dispatch:vehicle-lock:"

// RedisConfig holds the Redis connection settings.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// NewRedisClient connects to Redis and verifies the connection.
func NewRedisClient(ctx context.Context, cfg RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping %s: %w", cfg.Addr, err)
	}
	return client, nil
}

// VehicleLocker serialises confirmations per vehicle across replicas.
type VehicleLocker struct {
	locker *redislock.Client
	ttl    time.Duration
}

// NewVehicleLocker creates a locker whose locks expire after ttl.
func NewVehicleLocker(client *redis.Client, ttl time.Duration) *VehicleLocker {
	return &VehicleLocker{
		locker: redislock.New(client),
		ttl:    ttl,
	}
}

// Lock obtains the vehicle's lock without waiting. The returned function releases it.
func (l *VehicleLocker) Lock(ctx context.Context, vehicleID string) (func(context.Context) error, error) {
	lock, err := l.locker.Obtain(ctx, vehicleLockPrefix+vehicleID, l.ttl, nil)
	if errors.Is(err, redislock.ErrNotObtained) {
		return nil, ErrVehicleLocked
	}
	if err != nil {
		return nil, err
	}
	return func(ctx context.Context) error {
		err := lock.Release(ctx)
		if errors.Is(err, redislock.ErrLockNotHeld) {
			return nil
		}
		return err
	}, nil
}

// RedisHealthCheck pings Redis.
func RedisHealthCheck(ctx context.Context, client *redis.Client) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return client.Ping(ctx).Err()
}
