//go:build integration

package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMongoDB_Integration(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	db := setupTestDBFromSharedContainer(t)
	defer func() {
		require.NoError(t, db.Close(ctx))
	}()

	t.Run("collections are wired", func(t *testing.T) {
		assert.NotNil(t, db.StockItems)
		assert.NotNil(t, db.Vehicles)
		assert.NotNil(t, db.Orders)
		assert.NotNil(t, db.Drafts)
		assert.NotNil(t, db.AuditLogs)
	})

	t.Run("health check", func(t *testing.T) {
		assert.NoError(t, db.HealthCheck(ctx))
	})

	t.Run("audit TTL can be reset", func(t *testing.T) {
		assert.NoError(t, db.SetAuditTTL(ctx, 30))
		assert.NoError(t, db.SetAuditTTL(ctx, 60))
	})

	t.Run("draft TTL", func(t *testing.T) {
		assert.NoError(t, db.SetDraftTTL(ctx, 24*time.Hour))
		assert.NoError(t, db.SetDraftTTL(ctx, 0))
	})
}
