package model

import "strings"

// Composition is the in-progress shipment owned by one operator session.
//
// @Description Draft shipment being assembled by an operator
type Composition struct {
	VehicleID string     `json:"vehicle_id"`
	Items     []LineItem `json:"items"`
	Pending   LineItem   `json:"pending"`
}

// EmptyPending is the pending row an operator starts from.
func EmptyPending() LineItem {
	return LineItem{Quantity: 1}
}

// EmptyComposition returns the composition every session starts with.
func EmptyComposition() Composition {
	return Composition{
		Items:   []LineItem{},
		Pending: EmptyPending(),
	}
}

// IsEmpty reports whether there is nothing worth mirroring.
func (c Composition) IsEmpty() bool {
	return strings.TrimSpace(c.VehicleID) == "" && len(c.Items) == 0 && c.Pending.SKU == ""
}

// Clone returns a deep copy.
func (c Composition) Clone() Composition {
	out := c
	out.Items = CloneLineItems(c.Items)
	return out
}
