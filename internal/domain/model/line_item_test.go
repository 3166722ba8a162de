package model

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func tire(sku string, weight, volume float64, value int64) StockItem {
	return StockItem{
		SKU:         sku,
		Description: "tire " + sku,
		UnitWeight:  weight,
		UnitVolume:  volume,
		UnitValue:   decimal.NewFromInt(value),
	}
}

func TestNewLineItem(t *testing.T) {
	item := tire("A1", 10, 0.5, 100)
	line := NewLineItem(item, 3)

	assert.Equal(t, "A1", line.SKU)
	assert.Equal(t, "tire A1", line.Description)
	assert.Equal(t, 3, line.Quantity)
	assert.InDelta(t, 30.0, line.Weight(), 1e-9)
	assert.InDelta(t, 1.5, line.Volume(), 1e-9)
	assert.True(t, line.Value().Equal(decimal.NewFromInt(300)))
}

func TestLineItem_SnapshotIsIndependentOfCatalog(t *testing.T) {
	item := tire("A1", 10, 0.5, 100)
	line := NewLineItem(item, 1)

	item.UnitWeight = 99
	item.UnitValue = decimal.NewFromInt(1)

	assert.InDelta(t, 10.0, line.UnitWeight, 1e-9)
	assert.True(t, line.UnitValue.Equal(decimal.NewFromInt(100)))
}

func TestSumTotals(t *testing.T) {
	tests := []struct {
		name       string
		items      []LineItem
		wantWeight float64
		wantVolume float64
		wantValue  int64
	}{
		{
			name:      "no items",
			items:     nil,
			wantValue: 0,
		},
		{
			name:       "single item",
			items:      []LineItem{NewLineItem(tire("A1", 10, 0.5, 100), 2)},
			wantWeight: 20,
			wantVolume: 1,
			wantValue:  200,
		},
		{
			name: "same sku twice is summed per row",
			items: []LineItem{
				NewLineItem(tire("A1", 10, 0.5, 100), 2),
				NewLineItem(tire("A1", 10, 0.5, 100), 1),
				NewLineItem(tire("B2", 25, 1.25, 40), 4),
			},
			wantWeight: 130,
			wantVolume: 6.5,
			wantValue:  460,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SumTotals(tt.items)
			assert.InDelta(t, tt.wantWeight, got.Weight, 1e-9)
			assert.InDelta(t, tt.wantVolume, got.Volume, 1e-9)
			assert.True(t, got.Value.Equal(decimal.NewFromInt(tt.wantValue)), "value %s", got.Value)
		})
	}
}
