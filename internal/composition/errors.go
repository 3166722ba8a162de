package composition

import (
	"errors"
	"fmt"

	"github.com/guttosm/dispatch-service/internal/domain/model"
)

var (
	// ErrNotReady is wrapped by validation errors raised when the composition
	// lacks a vehicle or items.
	ErrNotReady = errors.New("composition is not ready to confirm")
	// ErrVehicleUnavailable is wrapped when the selected vehicle is on another open order.
	ErrVehicleUnavailable = errors.New("vehicle is assigned to another open order")
	// ErrCapacityExceeded is wrapped when strict capacity mode rejects a confirm.
	ErrCapacityExceeded = errors.New("composition exceeds vehicle capacity")
	// ErrUnknownSKU is wrapped by ReferenceError.
	ErrUnknownSKU = errors.New("sku not found in catalog")
	// ErrLineItemIndex is returned for an index outside the item list.
	ErrLineItemIndex = model.ErrLineItemIndex
	// ErrCollaboratorUnavailable is wrapped by CollaboratorError.
	ErrCollaboratorUnavailable = errors.New("collaborator unavailable")
)

// Reason identifies why a composition failed validation.
type Reason string

const (
	ReasonMissingVehicle     Reason = "missing_vehicle"
	ReasonNoItems            Reason = "no_items"
	ReasonVehicleUnavailable Reason = "vehicle_unavailable"
	ReasonCapacityExceeded   Reason = "capacity_exceeded"
)

// ValidationError is returned when confirm is attempted outside ReadyToConfirm.
// The session is left untouched.
type ValidationError struct {
	Reason Reason
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %s", e.Reason)
}

func (e *ValidationError) Unwrap() error {
	switch e.Reason {
	case ReasonVehicleUnavailable:
		return ErrVehicleUnavailable
	case ReasonCapacityExceeded:
		return ErrCapacityExceeded
	default:
		return ErrNotReady
	}
}

// ReferenceError is returned when an item references a sku the catalog does not know.
type ReferenceError struct {
	SKU string
}

func (e *ReferenceError) Error() string {
	return fmt.Sprintf("sku %q not found in catalog", e.SKU)
}

func (e *ReferenceError) Unwrap() error {
	return ErrUnknownSKU
}

// CollaboratorError wraps a failed call to an external store.
type CollaboratorError struct {
	Op  string
	Err error
}

func (e *CollaboratorError) Error() string {
	return fmt.Sprintf("%s: %v: %v", e.Op, ErrCollaboratorUnavailable, e.Err)
}

func (e *CollaboratorError) Unwrap() []error {
	return []error{ErrCollaboratorUnavailable, e.Err}
}

// NewCollaboratorError wraps err, or returns nil when err is nil.
func NewCollaboratorError(op string, err error) error {
	if err == nil {
		return nil
	}
	return &CollaboratorError{Op: op, Err: err}
}
