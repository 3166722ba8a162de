//go:build !integration

package repository

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/dispatch-service/internal/domain/model"
)

func memoryOrder(id, vehicleID string) model.Order {
	return model.NewOrder(id, vehicleID, []model.LineItem{
		{SKU: "A1", UnitWeight: 10, UnitVolume: 0.5, UnitValue: decimal.NewFromInt(100), Quantity: 2},
		{SKU: "B2", UnitWeight: 25, UnitVolume: 1.25, UnitValue: decimal.NewFromInt(40), Quantity: 1},
	})
}

func TestMemoryOrdersRepository_Append(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryOrdersRepository()

	id, err := repo.Append(ctx, memoryOrder("o-1", "T-1"))
	require.NoError(t, err)
	assert.Equal(t, "o-1", id)

	t.Run("same id is idempotent", func(t *testing.T) {
		id, err := repo.Append(ctx, memoryOrder("o-1", "T-1"))
		require.NoError(t, err)
		assert.Equal(t, "o-1", id)
		open, _ := repo.ListOpen(ctx)
		assert.Len(t, open, 1)
	})

	t.Run("second order for the vehicle is rejected", func(t *testing.T) {
		_, err := repo.Append(ctx, memoryOrder("o-2", "T-1"))
		assert.ErrorIs(t, err, model.ErrVehicleAssigned)
	})

	t.Run("removing frees the vehicle", func(t *testing.T) {
		require.NoError(t, repo.Remove(ctx, "o-1"))
		_, err := repo.Append(ctx, memoryOrder("o-2", "T-1"))
		assert.NoError(t, err)
	})
}

func TestMemoryOrdersRepository_Quantities(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryOrdersRepository()
	_, err := repo.Append(ctx, memoryOrder("o-1", "T-1"))
	require.NoError(t, err)

	updated, err := repo.AdjustItemQuantity(ctx, "o-1", 0, 5)
	require.NoError(t, err)
	assert.Equal(t, 5, updated.Items[0].Quantity)
	assert.Equal(t, 75.0, updated.TotalWeight)
	assert.Equal(t, 3.75, updated.TotalVolume)
	assert.True(t, decimal.NewFromInt(540).Equal(updated.TotalValue))
	assert.Equal(t, 2, updated.Version)

	stepped, err := repo.StepItemQuantity(ctx, "o-1", 1, -1)
	require.NoError(t, err)
	assert.Equal(t, 1, stepped.Items[1].Quantity)
	assert.Equal(t, 2, stepped.Version, "step below one leaves the order unchanged")

	_, err = repo.AdjustItemQuantity(ctx, "o-1", 9, 1)
	assert.ErrorIs(t, err, model.ErrLineItemIndex)

	_, err = repo.StepItemQuantity(ctx, "missing", 0, 1)
	assert.ErrorIs(t, err, model.ErrOrderNotFound)

	assert.ErrorIs(t, repo.Remove(ctx, "missing"), model.ErrOrderNotFound)
}

func TestMemoryCatalogRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryCatalogRepository()
	require.NoError(t, repo.UpsertStockItem(ctx, model.StockItem{SKU: "B2"}))
	require.NoError(t, repo.UpsertStockItem(ctx, model.StockItem{SKU: "A1"}))
	require.NoError(t, repo.UpsertVehicle(ctx, model.Vehicle{VehicleID: " T-1 ", WeightCapacity: 1000}))

	items, err := repo.ListStockItems(ctx)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "A1", items[0].SKU)

	vehicles, err := repo.ListVehicles(ctx)
	require.NoError(t, err)
	require.Len(t, vehicles, 1)
	assert.Equal(t, "T-1", vehicles[0].VehicleID)
}
