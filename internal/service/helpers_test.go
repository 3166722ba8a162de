package service_test

import (
	"context"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/guttosm/dispatch-service/internal/composition"
	"github.com/guttosm/dispatch-service/internal/domain/model"
)

func testStockItems() []model.StockItem {
	return []model.StockItem{
		{SKU: "A1", Description: "205/55R16", UnitWeight: 10, UnitVolume: 0.5, UnitValue: decimal.NewFromInt(100)},
		{SKU: "B2", Description: "315/80R22.5", UnitWeight: 25, UnitVolume: 1.25, UnitValue: decimal.NewFromInt(40)},
	}
}

func testVehicles() []model.Vehicle {
	return []model.Vehicle{
		{VehicleID: "T-1", WeightCapacity: 1000, VolumeCapacity: 10, Details: model.VehicleDetails{Plates: "ABC-123", Model: "Actros"}},
		{VehicleID: "T-2", WeightCapacity: 1000, VolumeCapacity: 10},
	}
}

func testView(open ...model.Order) *composition.View {
	v := composition.NewView()
	v.Apply(composition.Snapshot{
		Seq:        1,
		Catalog:    model.NewCatalog(testStockItems(), testVehicles()),
		OpenOrders: open,
	})
	return v
}

type fakeLocker struct {
	mu       sync.Mutex
	err      error
	locked   []string
	released int
}

func (f *fakeLocker) Lock(_ context.Context, vehicleID string) (func(context.Context) error, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	f.locked = append(f.locked, vehicleID)
	return func(context.Context) error {
		f.mu.Lock()
		defer f.mu.Unlock()
		f.released++
		return nil
	}, nil
}
