//go:build integration

package app

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/dispatch-service/config"
	"github.com/guttosm/dispatch-service/internal/domain/model"
)

func integrationDatabaseConfig(t *testing.T) config.DatabaseConfig {
	return config.DatabaseConfig{
		URI:                            getSharedContainerURI(),
		DatabaseName:                   sanitizeDBNameForApp(t.Name()),
		AuditTTL:                       30 * 24 * time.Hour,
		Enabled:                        true,
		CircuitBreakerFailureThreshold: 5,
		CircuitBreakerSuccessThreshold: 2,
		CircuitBreakerTimeout:          30 * time.Second,
	}
}

func TestInitializeDatabase_Integration(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("creates repositories and breakers", func(t *testing.T) {
		t.Parallel()
		components := InitializeDatabase(integrationDatabaseConfig(t), time.Hour)
		require.NotNil(t, components)
		t.Cleanup(func() { components.Close(context.Background()) })

		assert.NotNil(t, components.Catalog)
		assert.NotNil(t, components.CatalogWriter)
		assert.NotNil(t, components.Orders)
		assert.NotNil(t, components.Audit)
		assert.NotNil(t, components.Drafts)
		require.Len(t, components.Breakers, 4)
		for name, cb := range components.Breakers {
			stats := cb.GetStats()
			assert.Equal(t, "closed", stats.State, name)
			assert.True(t, stats.IsHealthy, name)
		}
		assert.NoError(t, components.DB.HealthCheck(ctx))
	})

	t.Run("catalog writes are visible through the breaker", func(t *testing.T) {
		t.Parallel()
		components := InitializeDatabase(integrationDatabaseConfig(t), time.Hour)
		require.NotNil(t, components)
		t.Cleanup(func() { components.Close(context.Background()) })

		require.NoError(t, components.CatalogWriter.UpsertStockItem(ctx, model.StockItem{
			SKU: "A1", UnitWeight: 10, UnitVolume: 0.5, UnitValue: decimal.NewFromInt(100),
		}))
		require.NoError(t, components.CatalogWriter.UpsertVehicle(ctx, model.Vehicle{
			VehicleID: "T-1", WeightCapacity: 1000, VolumeCapacity: 10,
		}))

		items, err := components.Catalog.ListStockItems(ctx)
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.True(t, decimal.NewFromInt(100).Equal(items[0].UnitValue))

		vehicles, err := components.Catalog.ListVehicles(ctx)
		require.NoError(t, err)
		assert.Len(t, vehicles, 1)
	})

	t.Run("domain errors do not trip the breaker", func(t *testing.T) {
		t.Parallel()
		cfg := integrationDatabaseConfig(t)
		cfg.CircuitBreakerFailureThreshold = 1
		components := InitializeDatabase(cfg, time.Hour)
		require.NotNil(t, components)
		t.Cleanup(func() { components.Close(context.Background()) })

		for range 3 {
			_, err := components.Orders.Get(ctx, "missing")
			assert.Error(t, err)
		}
		assert.Equal(t, "closed", components.Breakers["mongodb_orders"].GetStats().State)
	})
}
