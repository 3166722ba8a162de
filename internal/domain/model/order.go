package model

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var (
	// ErrOrderNotFound is returned when an order id does not exist.
	ErrOrderNotFound = errors.New("order not found")
	// ErrVehicleAssigned is returned when another open order already holds the vehicle.
	ErrVehicleAssigned = errors.New("vehicle already assigned to an open order")
	// ErrVersionConflict is returned when an order changed between read and write.
	ErrVersionConflict = errors.New("order was modified concurrently")
	// ErrLineItemIndex is returned for an item index outside the item list.
	ErrLineItemIndex = errors.New("line item index out of range")
)

// Order is a confirmed shipment. Items are frozen; only a single line's
// quantity can change afterwards.
//
// @Description Confirmed shipment order
type Order struct {
	ID          string          `json:"order_id" example:"0b6f9f1e-6a6c-4d8a-9a43-5b8f3f6a1c2d"`
	VehicleID   string          `json:"vehicle_id" example:"T-1"`
	Items       []LineItem      `json:"items"`
	TotalWeight float64         `json:"total_weight" example:"20"`
	TotalVolume float64         `json:"total_volume" example:"1"`
	TotalValue  decimal.Decimal `json:"total_value" swaggertype:"string" example:"200"`
	Version     int             `json:"version" example:"1"`
	CreatedBy   string          `json:"created_by,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// NewOrder freezes items into an order and derives its totals.
func NewOrder(id, vehicleID string, items []LineItem) Order {
	now := time.Now().UTC()
	o := Order{
		ID:        id,
		VehicleID: vehicleID,
		Items:     CloneLineItems(items),
		Version:   1,
		CreatedAt: now,
		UpdatedAt: now,
	}
	o.Recompute()
	return o
}

// Recompute derives all three totals from the items.
func (o *Order) Recompute() {
	t := SumTotals(o.Items)
	o.TotalWeight = t.Weight
	o.TotalVolume = t.Volume
	o.TotalValue = t.Value
}

// Totals returns the order totals as a Totals value.
func (o Order) Totals() Totals {
	return Totals{Weight: o.TotalWeight, Volume: o.TotalVolume, Value: o.TotalValue}
}

// WithQuantity returns a copy of the order with item index set to quantity and
// totals recomputed. The receiver is not modified.
func (o Order) WithQuantity(index, quantity int) (Order, bool) {
	if index < 0 || index >= len(o.Items) || quantity < 1 {
		return o, false
	}
	out := o
	out.Items = CloneLineItems(o.Items)
	out.Items[index].Quantity = quantity
	out.Recompute()
	return out, true
}
