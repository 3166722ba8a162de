package composition

import (
	"context"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/guttosm/dispatch-service/internal/domain/model"
)

func stockItem(sku string, weight, volume float64, value int64) model.StockItem {
	return model.StockItem{
		SKU:         sku,
		Description: "tire " + sku,
		UnitWeight:  weight,
		UnitVolume:  volume,
		UnitValue:   decimal.NewFromInt(value),
	}
}

func testCatalog() *model.Catalog {
	return model.NewCatalog(
		[]model.StockItem{
			stockItem("A1", 10, 0.5, 100),
			stockItem("B2", 25, 1.25, 40),
		},
		[]model.Vehicle{
			{VehicleID: "T-1", WeightCapacity: 1000, VolumeCapacity: 10, Details: model.VehicleDetails{Plates: "ABC-123"}},
			{VehicleID: "T-2", WeightCapacity: 1000, VolumeCapacity: 10},
			{VehicleID: "TINY", WeightCapacity: 15, VolumeCapacity: 10},
		},
	)
}

func testView(open ...model.Order) *View {
	v := NewView()
	v.Apply(Snapshot{Seq: 1, Catalog: testCatalog(), OpenOrders: open})
	return v
}

type fakeStore struct {
	mu      sync.Mutex
	orders  []model.Order
	err     error
	appends int
}

func (f *fakeStore) Append(_ context.Context, order model.Order) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.appends++
	if f.err != nil {
		return "", f.err
	}
	for _, o := range f.orders {
		if o.ID == order.ID {
			return o.ID, nil
		}
		if o.VehicleID == order.VehicleID {
			return "", model.ErrVehicleAssigned
		}
	}
	f.orders = append(f.orders, order)
	return order.ID, nil
}

type recordingPublisher struct {
	published []model.Composition
}

func (r *recordingPublisher) Publish(_ string, c model.Composition) {
	r.published = append(r.published, c)
}
