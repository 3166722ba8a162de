//go:build integration

// Package testutil starts the MongoDB and Redis containers used by integration tests.
package testutil

import (
	"context"
	"fmt"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/mongodb"
	"github.com/testcontainers/testcontainers-go/wait"
)

// Container is a started test container and the address clients connect to.
type Container struct {
	Container testcontainers.Container
	// URI is a mongodb:// connection string for MongoDB and host:port for Redis.
	URI string
}

// SetupMongoDB starts a MongoDB container.
func SetupMongoDB(ctx context.Context) (*Container, error) {
	mongoContainer, err := mongodb.Run(ctx, "mongo:7.0")
	if err != nil {
		return nil, fmt.Errorf("failed to start MongoDB container: %w", err)
	}

	uri, err := mongoContainer.ConnectionString(ctx)
	if err != nil {
		_ = mongoContainer.Terminate(ctx)
		return nil, fmt.Errorf("failed to get connection string: %w", err)
	}

	return &Container{Container: mongoContainer, URI: uri}, nil
}

// SetupRedis starts a Redis container.
func SetupRedis(ctx context.Context) (*Container, error) {
	redisContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForLog("Ready to accept connections"),
		},
		Started: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to start Redis container: %w", err)
	}

	endpoint, err := redisContainer.Endpoint(ctx, "")
	if err != nil {
		_ = redisContainer.Terminate(ctx)
		return nil, fmt.Errorf("failed to get Redis endpoint: %w", err)
	}

	return &Container{Container: redisContainer, URI: endpoint}, nil
}

// Cleanup terminates the container.
func (c *Container) Cleanup(ctx context.Context) error {
	if c.Container != nil {
		if err := c.Container.Terminate(ctx); err != nil {
			return fmt.Errorf("failed to terminate container: %w", err)
		}
	}
	return nil
}
