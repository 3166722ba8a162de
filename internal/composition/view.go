package composition

import (
	"iter"
	"sync/atomic"
	"time"

	"github.com/guttosm/dispatch-service/internal/domain/model"
)

// Snapshot is one read of the external catalog and open order list.
type Snapshot struct {
	Seq        uint64
	Catalog    *model.Catalog
	OpenOrders []model.Order
	TakenAt    time.Time
}

// View holds the latest read-only snapshot shared by every session.
// Compositions are never touched when a snapshot is applied.
type View struct {
	current atomic.Pointer[Snapshot]
}

// NewView returns a view over an empty catalog and no open orders.
func NewView() *View {
	v := &View{}
	v.current.Store(&Snapshot{Catalog: model.NewCatalog(nil, nil)})
	return v
}

// Apply replaces the view with s unless a newer snapshot is already applied.
// Applying the same snapshot twice is a no-op in effect.
func (v *View) Apply(s Snapshot) bool {
	if s.Catalog == nil {
		s.Catalog = model.NewCatalog(nil, nil)
	}
	s.OpenOrders = cloneOrders(s.OpenOrders)
	for {
		cur := v.current.Load()
		if s.Seq < cur.Seq {
			return false
		}
		if v.current.CompareAndSwap(cur, &s) {
			return true
		}
	}
}

// Follow applies every snapshot produced by seq until it ends and returns
// how many were applied.
func (v *View) Follow(seq iter.Seq[Snapshot]) int {
	applied := 0
	for s := range seq {
		if v.Apply(s) {
			applied++
		}
	}
	return applied
}

// Current returns the snapshot in effect.
func (v *View) Current() *Snapshot {
	return v.current.Load()
}

// Catalog returns the catalog of the current snapshot.
func (v *View) Catalog() *model.Catalog {
	return v.current.Load().Catalog
}

// OpenOrders returns a copy of the current open order list.
func (v *View) OpenOrders() []model.Order {
	return cloneOrders(v.current.Load().OpenOrders)
}

// AddOpenOrder writes a freshly appended order through to the view.
func (v *View) AddOpenOrder(o model.Order) {
	v.updateOrders(func(orders []model.Order) []model.Order {
		for i := range orders {
			if orders[i].ID == o.ID {
				orders[i] = o
				return orders
			}
		}
		return append(orders, o)
	})
}

// RemoveOpenOrder drops an order from the view after cancellation.
func (v *View) RemoveOpenOrder(orderID string) {
	v.updateOrders(func(orders []model.Order) []model.Order {
		out := orders[:0]
		for _, o := range orders {
			if o.ID != orderID {
				out = append(out, o)
			}
		}
		return out
	})
}

func (v *View) updateOrders(fn func([]model.Order) []model.Order) {
	for {
		cur := v.current.Load()
		next := *cur
		next.OpenOrders = fn(cloneOrders(cur.OpenOrders))
		if v.current.CompareAndSwap(cur, &next) {
			return
		}
	}
}

func cloneOrders(orders []model.Order) []model.Order {
	out := make([]model.Order, len(orders))
	copy(out, orders)
	return out
}
