package composition

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/guttosm/dispatch-service/internal/domain/model"
)

// State is derived from the composition on every read.
type State string

const (
	StateEmpty          State = "empty"
	StateBuilding       State = "building"
	StateReadyToConfirm State = "ready_to_confirm"
)

// OrderAppender persists a confirmed order. Appending the same order id twice
// must not create a second order.
type OrderAppender interface {
	Append(ctx context.Context, order model.Order) (string, error)
}

// Publisher receives the composition after every mutation.
type Publisher interface {
	Publish(sessionID string, c model.Composition)
}

// Option configures a Session.
type Option func(*Session)

// WithStrictCapacity makes exceeded capacity block confirmation.
func WithStrictCapacity(strict bool) Option {
	return func(s *Session) {
		s.strict = strict
	}
}

// WithPublisher mirrors the composition through p after each mutation.
func WithPublisher(p Publisher) Option {
	return func(s *Session) {
		s.publisher = p
	}
}

// WithOrderIDs replaces the order id generator.
func WithOrderIDs(next func() string) Option {
	return func(s *Session) {
		s.newOrderID = next
	}
}

// Session is one operator's composition workflow. It is not safe for
// concurrent use; callers serialise access per session.
type Session struct {
	id        string
	view      *View
	vehicleID string
	ledger    *Ledger
	pending   model.LineItem

	strict     bool
	publisher  Publisher
	newOrderID func() string

	// reused across confirm retries until the composition changes
	confirmID string
}

// NewSession starts an empty session reading catalog and open orders from view.
func NewSession(id string, view *View, opts ...Option) *Session {
	s := &Session{
		id:         id,
		view:       view,
		ledger:     NewLedger(nil),
		pending:    model.EmptyPending(),
		newOrderID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Restore loads a mirrored composition into the session without publishing it.
func (s *Session) Restore(c model.Composition) {
	s.vehicleID = strings.TrimSpace(c.VehicleID)
	s.ledger = NewLedger(c.Items)
	s.pending = c.Pending
	if s.pending.Quantity < 1 {
		s.pending.Quantity = 1
	}
	s.confirmID = ""
}

// ID returns the session identity.
func (s *Session) ID() string {
	return s.id
}

// SelectVehicle binds the composition to a vehicle id. An empty id clears it.
func (s *Session) SelectVehicle(vehicleID string) {
	s.vehicleID = strings.TrimSpace(vehicleID)
	s.changed()
}

// SetPending edits the row being prepared. A known sku fills in its catalog
// snapshot; an unknown one keeps only the sku until it is added.
func (s *Session) SetPending(sku string, quantity int) {
	sku = strings.TrimSpace(sku)
	if quantity < 1 {
		quantity = 1
	}
	if item, ok := s.view.Catalog().StockItem(sku); ok {
		s.pending = model.NewLineItem(item, quantity)
	} else {
		s.pending = model.LineItem{SKU: sku, Quantity: quantity}
	}
	s.changed()
}

// AddItem appends a row for sku taken from the current catalog.
func (s *Session) AddItem(sku string, quantity int) error {
	if err := s.add(sku, quantity); err != nil {
		return err
	}
	s.changed()
	return nil
}

// AddPending appends the pending row and resets it.
func (s *Session) AddPending() error {
	if err := s.add(s.pending.SKU, s.pending.Quantity); err != nil {
		return err
	}
	s.pending = model.EmptyPending()
	s.changed()
	return nil
}

func (s *Session) add(sku string, quantity int) error {
	sku = strings.TrimSpace(sku)
	item, ok := s.view.Catalog().StockItem(sku)
	if !ok {
		return &ReferenceError{SKU: sku}
	}
	s.ledger.Add(model.NewLineItem(item, quantity))
	return nil
}

// Increment raises the quantity of row i by one.
func (s *Session) Increment(i int) error {
	return s.mutate(s.ledger.Increment, i)
}

// Decrement lowers the quantity of row i by one, never below one.
func (s *Session) Decrement(i int) error {
	return s.mutate(s.ledger.Decrement, i)
}

// Remove deletes row i.
func (s *Session) Remove(i int) error {
	return s.mutate(s.ledger.Remove, i)
}

func (s *Session) mutate(op func(int) error, i int) error {
	if err := op(i); err != nil {
		return err
	}
	s.changed()
	return nil
}

// VehicleID returns the selected vehicle id.
func (s *Session) VehicleID() string {
	return s.vehicleID
}

// Vehicle returns the selected vehicle when the catalog knows it.
func (s *Session) Vehicle() (model.Vehicle, bool) {
	if s.vehicleID == "" {
		return model.Vehicle{}, false
	}
	return s.view.Catalog().Vehicle(s.vehicleID)
}

// VehicleAvailable reports whether the selected vehicle is free of open orders.
func (s *Session) VehicleAvailable() bool {
	return IsAvailable(s.vehicleID, s.view.Current().OpenOrders)
}

// Totals aggregates the current rows.
func (s *Session) Totals() model.Totals {
	return s.ledger.Aggregate()
}

// Capacity evaluates the rows against the selected vehicle. It returns false
// when no known vehicle is selected.
func (s *Session) Capacity() (CapacityReport, bool) {
	v, ok := s.Vehicle()
	if !ok {
		return CapacityReport{}, false
	}
	return EvaluateVehicle(v, s.ledger.Aggregate()), true
}

// State derives the workflow state from the current composition.
func (s *Session) State() State {
	if s.vehicleID == "" && s.ledger.Len() == 0 {
		return StateEmpty
	}
	if s.blocker() != "" {
		return StateBuilding
	}
	return StateReadyToConfirm
}

func (s *Session) blocker() Reason {
	switch {
	case s.vehicleID == "":
		return ReasonMissingVehicle
	case s.ledger.Len() == 0:
		return ReasonNoItems
	case !s.VehicleAvailable():
		return ReasonVehicleUnavailable
	}
	if s.strict {
		report, ok := s.Capacity()
		if !ok || report.Exceeded() {
			return ReasonCapacityExceeded
		}
	}
	return ""
}

// Composition returns a copy of the in-progress composition.
func (s *Session) Composition() model.Composition {
	return model.Composition{
		VehicleID: s.vehicleID,
		Items:     s.ledger.Items(),
		Pending:   s.pending,
	}
}

// Confirm freezes the composition into an order and hands it to store.
// On success the session is reset to empty. On failure nothing changes;
// a retry after a store failure reuses the same order id.
func (s *Session) Confirm(ctx context.Context, store OrderAppender) (model.Order, error) {
	if reason := s.blocker(); reason != "" {
		return model.Order{}, &ValidationError{Reason: reason}
	}
	if s.confirmID == "" {
		s.confirmID = s.newOrderID()
	}

	order := model.NewOrder(s.confirmID, s.vehicleID, s.ledger.Items())
	order.CreatedBy = s.id
	id, err := store.Append(ctx, order)
	if err != nil {
		if errors.Is(err, model.ErrVehicleAssigned) {
			return model.Order{}, &ValidationError{Reason: ReasonVehicleUnavailable}
		}
		return model.Order{}, NewCollaboratorError("append order", err)
	}
	if id != "" {
		order.ID = id
	}

	s.view.AddOpenOrder(order)
	s.reset()
	return order, nil
}

// Discard abandons the composition.
func (s *Session) Discard() {
	s.reset()
}

func (s *Session) reset() {
	s.vehicleID = ""
	s.ledger.Reset()
	s.pending = model.EmptyPending()
	s.confirmID = ""
	s.publish()
}

func (s *Session) changed() {
	s.confirmID = ""
	s.publish()
}

func (s *Session) publish() {
	if s.publisher != nil {
		s.publisher.Publish(s.id, s.Composition())
	}
}
