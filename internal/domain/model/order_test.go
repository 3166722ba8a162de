package model

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOrder_DerivesTotals(t *testing.T) {
	items := []LineItem{NewLineItem(tire("A1", 10, 0.5, 100), 2)}
	o := NewOrder("o-1", "T-1", items)

	assert.Equal(t, "o-1", o.ID)
	assert.Equal(t, "T-1", o.VehicleID)
	assert.Equal(t, 1, o.Version)
	assert.InDelta(t, 20.0, o.TotalWeight, 1e-9)
	assert.InDelta(t, 1.0, o.TotalVolume, 1e-9)
	assert.True(t, o.TotalValue.Equal(decimal.NewFromInt(200)))
	assert.False(t, o.CreatedAt.IsZero())

	items[0].Quantity = 50
	assert.Equal(t, 2, o.Items[0].Quantity, "order items are frozen copies")
}

func TestOrder_WithQuantity(t *testing.T) {
	o := NewOrder("o-1", "T-1", []LineItem{
		NewLineItem(tire("A1", 10, 0.5, 100), 2),
		NewLineItem(tire("B2", 5, 0.1, 10), 1),
	})

	t.Run("recomputes all totals", func(t *testing.T) {
		got, ok := o.WithQuantity(1, 3)
		require.True(t, ok)
		assert.Equal(t, 3, got.Items[1].Quantity)
		assert.InDelta(t, 35.0, got.TotalWeight, 1e-9)
		assert.InDelta(t, 1.3, got.TotalVolume, 1e-9)
		assert.True(t, got.TotalValue.Equal(decimal.NewFromInt(230)))
		assert.Equal(t, 1, o.Items[1].Quantity, "receiver untouched")
	})

	t.Run("rejects out of range index", func(t *testing.T) {
		_, ok := o.WithQuantity(5, 3)
		assert.False(t, ok)
		_, ok = o.WithQuantity(-1, 3)
		assert.False(t, ok)
	})

	t.Run("rejects quantity below one", func(t *testing.T) {
		_, ok := o.WithQuantity(0, 0)
		assert.False(t, ok)
	})
}

func TestComposition_IsEmpty(t *testing.T) {
	assert.True(t, EmptyComposition().IsEmpty())
	assert.False(t, Composition{VehicleID: "T-1"}.IsEmpty())
	assert.False(t, Composition{Items: []LineItem{{SKU: "A1", Quantity: 1}}}.IsEmpty())
	assert.False(t, Composition{Pending: LineItem{SKU: "A1"}}.IsEmpty())
}

func TestCatalog_Lookup(t *testing.T) {
	c := NewCatalog(
		[]StockItem{tire("A1", 10, 0.5, 100)},
		[]Vehicle{{VehicleID: "T-1", WeightCapacity: 1000, VolumeCapacity: 10}},
	)

	it, ok := c.StockItem("A1")
	require.True(t, ok)
	assert.Equal(t, "tire A1", it.Description)

	_, ok = c.StockItem("ZZ")
	assert.False(t, ok)

	v, ok := c.Vehicle("T-1")
	require.True(t, ok)
	assert.InDelta(t, 1000.0, v.WeightCapacity, 1e-9)

	var nilCatalog *Catalog
	_, ok = nilCatalog.StockItem("A1")
	assert.False(t, ok)
	assert.Empty(t, nilCatalog.Vehicles())
}
