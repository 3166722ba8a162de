package composition

import "github.com/guttosm/dispatch-service/internal/domain/model"

// Ledger is the ordered list of line items of a composition.
// Totals are never stored; Aggregate reduces the rows on every call.
type Ledger struct {
	items []model.LineItem
}

// NewLedger creates a ledger holding a copy of items.
func NewLedger(items []model.LineItem) *Ledger {
	return &Ledger{items: model.CloneLineItems(items)}
}

// Add appends item as a new row. Rows with the same sku are not merged.
func (l *Ledger) Add(item model.LineItem) {
	if item.Quantity < 1 {
		item.Quantity = 1
	}
	l.items = append(l.items, item)
}

// Increment raises the quantity of row i by one.
func (l *Ledger) Increment(i int) error {
	if !l.valid(i) {
		return ErrLineItemIndex
	}
	l.items[i].Quantity++
	return nil
}

// Decrement lowers the quantity of row i by one. At quantity 1 it does nothing.
func (l *Ledger) Decrement(i int) error {
	if !l.valid(i) {
		return ErrLineItemIndex
	}
	if l.items[i].Quantity > 1 {
		l.items[i].Quantity--
	}
	return nil
}

// Remove deletes row i regardless of its quantity.
func (l *Ledger) Remove(i int) error {
	if !l.valid(i) {
		return ErrLineItemIndex
	}
	l.items = append(l.items[:i], l.items[i+1:]...)
	return nil
}

// Len returns the number of rows.
func (l *Ledger) Len() int {
	return len(l.items)
}

// Items returns a copy of the rows.
func (l *Ledger) Items() []model.LineItem {
	return model.CloneLineItems(l.items)
}

// Aggregate sums weight, volume and value over the current rows.
func (l *Ledger) Aggregate() model.Totals {
	return model.SumTotals(l.items)
}

// Reset drops every row.
func (l *Ledger) Reset() {
	l.items = l.items[:0:0]
}

func (l *Ledger) valid(i int) bool {
	return i >= 0 && i < len(l.items)
}
