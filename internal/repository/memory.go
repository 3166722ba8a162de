package repository

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/guttosm/dispatch-service/internal/domain/model"
)

// MemoryCatalogRepository is the catalog used when MongoDB is disabled.
type MemoryCatalogRepository struct {
	mu       sync.RWMutex
	items    map[string]model.StockItem
	vehicles map[string]model.Vehicle
}

// NewMemoryCatalogRepository creates an empty in-memory catalog.
func NewMemoryCatalogRepository() *MemoryCatalogRepository {
	return &MemoryCatalogRepository{
		items:    make(map[string]model.StockItem),
		vehicles: make(map[string]model.Vehicle),
	}
}

func (r *MemoryCatalogRepository) ListStockItems(_ context.Context) ([]model.StockItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]model.StockItem, 0, len(r.items))
	for _, item := range r.items {
		out = append(out, item)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SKU < out[j].SKU })
	return out, nil
}

func (r *MemoryCatalogRepository) ListVehicles(_ context.Context) ([]model.Vehicle, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]model.Vehicle, 0, len(r.vehicles))
	for _, v := range r.vehicles {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].VehicleID < out[j].VehicleID })
	return out, nil
}

func (r *MemoryCatalogRepository) UpsertStockItem(_ context.Context, item model.StockItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[item.SKU] = item
	return nil
}

func (r *MemoryCatalogRepository) UpsertVehicle(_ context.Context, v model.Vehicle) error {
	v.VehicleID = strings.TrimSpace(v.VehicleID)
	r.mu.Lock()
	defer r.mu.Unlock()
	r.vehicles[v.VehicleID] = v
	return nil
}

// MemoryOrdersRepository keeps open orders in process. It enforces the same
// one-open-order-per-vehicle rule as the MongoDB store.
type MemoryOrdersRepository struct {
	mu     sync.Mutex
	orders map[string]model.Order
}

// NewMemoryOrdersRepository creates an empty in-memory order store.
func NewMemoryOrdersRepository() *MemoryOrdersRepository {
	return &MemoryOrdersRepository{orders: make(map[string]model.Order)}
}

func (r *MemoryOrdersRepository) ListOpen(_ context.Context) ([]model.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]model.Order, 0, len(r.orders))
	for _, o := range r.orders {
		out = append(out, cloneOrder(o))
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

func (r *MemoryOrdersRepository) Get(_ context.Context, id string) (model.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	o, ok := r.orders[id]
	if !ok {
		return model.Order{}, model.ErrOrderNotFound
	}
	return cloneOrder(o), nil
}

func (r *MemoryOrdersRepository) Append(_ context.Context, order model.Order) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if existing, ok := r.orders[order.ID]; ok {
		if existing.VehicleID == order.VehicleID {
			return existing.ID, nil
		}
		return "", model.ErrVehicleAssigned
	}
	for _, o := range r.orders {
		if o.VehicleID == order.VehicleID {
			return "", model.ErrVehicleAssigned
		}
	}
	r.orders[order.ID] = cloneOrder(order)
	return order.ID, nil
}

func (r *MemoryOrdersRepository) AdjustItemQuantity(_ context.Context, id string, index, quantity int) (model.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	current, ok := r.orders[id]
	if !ok {
		return model.Order{}, model.ErrOrderNotFound
	}
	next, ok := current.WithQuantity(index, quantity)
	if !ok {
		return model.Order{}, model.ErrLineItemIndex
	}
	return r.store(current, next), nil
}

func (r *MemoryOrdersRepository) StepItemQuantity(_ context.Context, id string, index, delta int) (model.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	current, ok := r.orders[id]
	if !ok {
		return model.Order{}, model.ErrOrderNotFound
	}
	if index < 0 || index >= len(current.Items) {
		return model.Order{}, model.ErrLineItemIndex
	}
	quantity := current.Items[index].Quantity + delta
	if quantity < 1 || delta == 0 {
		return cloneOrder(current), nil
	}
	next, _ := current.WithQuantity(index, quantity)
	return r.store(current, next), nil
}

func (r *MemoryOrdersRepository) store(current, next model.Order) model.Order {
	next.Version = current.Version + 1
	next.UpdatedAt = time.Now().UTC()
	r.orders[next.ID] = next
	return cloneOrder(next)
}

func (r *MemoryOrdersRepository) Remove(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.orders[id]; !ok {
		return model.ErrOrderNotFound
	}
	delete(r.orders, id)
	return nil
}

func cloneOrder(o model.Order) model.Order {
	o.Items = model.CloneLineItems(o.Items)
	return o
}
