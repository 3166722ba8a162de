//go:build integration

package repository

import (
	"context"
	"os"
	"testing"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/dispatch-service/internal/testutil"
)

// TestMain shares one MongoDB and one Redis container across the package.
func TestMain(m *testing.M) {
	os.Exit(testutil.SetupTestMainWithContainers(context.Background(), m))
}

// setupTestDBFromSharedContainer connects to a database unique to the test.
func setupTestDBFromSharedContainer(t *testing.T) *MongoDB {
	db, err := NewMongoDB(testutil.GetSharedContainerURI(), testutil.SanitizeDBName(t.Name()))
	require.NoError(t, err)
	return db
}

func setupRedisFromSharedContainer(t *testing.T) *redis.Client {
	client, err := NewRedisClient(context.Background(), RedisConfig{Addr: testutil.GetSharedRedisAddr()})
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = client.Close()
	})
	return client
}
