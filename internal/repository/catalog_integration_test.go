//go:build integration

package repository

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/dispatch-service/internal/domain/model"
)

func TestCatalogRepository_Integration(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	db := setupTestDBFromSharedContainer(t)
	defer func() {
		require.NoError(t, db.Close(ctx))
	}()
	repo := NewCatalogRepository(db)

	require.NoError(t, repo.UpsertStockItem(ctx, model.StockItem{SKU: "B2", Description: "rim", UnitWeight: 5, UnitVolume: 0.1, UnitValue: decimal.RequireFromString("10.50")}))
	require.NoError(t, repo.UpsertStockItem(ctx, model.StockItem{SKU: "A1", Description: "tire", UnitWeight: 10, UnitVolume: 0.5, UnitValue: decimal.NewFromInt(100)}))
	require.NoError(t, repo.UpsertVehicle(ctx, model.Vehicle{
		VehicleID:      "T-1",
		WeightCapacity: 1000,
		VolumeCapacity: 10,
		Details:        model.VehicleDetails{Model: "Hino 300", Plates: "ABC-123", AssignedTo: "Luis"},
	}))

	t.Run("stock items sorted by sku", func(t *testing.T) {
		items, err := repo.ListStockItems(ctx)
		require.NoError(t, err)
		require.Len(t, items, 2)
		assert.Equal(t, "A1", items[0].SKU)
		assert.True(t, items[1].UnitValue.Equal(decimal.RequireFromString("10.5")))
	})

	t.Run("upsert replaces", func(t *testing.T) {
		require.NoError(t, repo.UpsertStockItem(ctx, model.StockItem{SKU: "A1", Description: "tire v2", UnitWeight: 11}))
		items, err := repo.ListStockItems(ctx)
		require.NoError(t, err)
		require.Len(t, items, 2)
		assert.Equal(t, "tire v2", items[0].Description)
	})

	t.Run("vehicles keep details", func(t *testing.T) {
		vehicles, err := repo.ListVehicles(ctx)
		require.NoError(t, err)
		require.Len(t, vehicles, 1)
		assert.Equal(t, "ABC-123", vehicles[0].Details.Plates)
		assert.InDelta(t, 1000.0, vehicles[0].WeightCapacity, 1e-9)
	})
}
