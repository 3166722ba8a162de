// Package dto defines Data Transfer Objects for HTTP request and response handling.
//
// DTOs are used to decouple the HTTP layer from the domain model,
// providing validation and serialization for API communication.
package dto

// ValidationError represents a field validation error.
type ValidationError struct {
	Field   string
	Message string
}

var (
	// ErrInvalidQuantity is returned when quantity is negative.
	ErrInvalidQuantity = &ValidationError{
		Field:   "quantity",
		Message: "must be a positive integer",
	}
	// ErrInvalidStep is returned when a quantity step is zero.
	ErrInvalidStep = &ValidationError{
		Field:   "delta",
		Message: "must not be zero",
	}
)

// Error returns the error message for ValidationError.
func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// SelectVehicleRequest binds a composition to a vehicle. An empty id clears
// the selection.
//
// @Description Vehicle selection for a composition
// @Example {"vehicle_id": "T-1"}
type SelectVehicleRequest struct {
	VehicleID string `json:"vehicle_id" example:"T-1"`
} // @name SelectVehicleRequest

// PendingItemRequest edits the row being prepared.
//
// @Description Pending row edit. A known sku fills in description, weight, volume and value.
// @Example {"sku": "A1", "quantity": 4}
type PendingItemRequest struct {
	SKU      string `json:"sku" example:"A1"`
	Quantity int    `json:"quantity" example:"4" minimum:"0"`
} // @name PendingItemRequest

// Validate performs custom validation on the request.
func (r *PendingItemRequest) Validate() error {
	if r.Quantity < 0 {
		return ErrInvalidQuantity
	}
	return nil
}

// AddItemRequest appends a row. When SKU is empty the pending row is added.
// A zero quantity counts as one.
//
// @Description Row to append to a composition
// @Example {"sku": "A1", "quantity": 2}
// @Example {}
type AddItemRequest struct {
	SKU      string `json:"sku" example:"A1"`
	Quantity int    `json:"quantity" example:"2" minimum:"0"`
} // @name AddItemRequest

// Validate performs custom validation on the request.
func (r *AddItemRequest) Validate() error {
	if r.Quantity < 0 {
		return ErrInvalidQuantity
	}
	return nil
}

// AdjustQuantityRequest sets a confirmed order line to a new quantity, or
// moves it by Delta when Quantity is zero.
//
// @Description Quantity change for one line of a confirmed order
// @Example {"quantity": 5}
// @Example {"delta": -1}
type AdjustQuantityRequest struct {
	Quantity int `json:"quantity,omitempty" example:"5" minimum:"0"`
	Delta    int `json:"delta,omitempty" example:"-1"`
} // @name AdjustQuantityRequest

// Validate performs custom validation on the request.
func (r *AdjustQuantityRequest) Validate() error {
	if r.Quantity < 0 {
		return ErrInvalidQuantity
	}
	if r.Quantity == 0 && r.Delta == 0 {
		return ErrInvalidStep
	}
	return nil
}

// IsStep reports whether the request moves the quantity instead of setting it.
func (r *AdjustQuantityRequest) IsStep() bool {
	return r.Quantity == 0
}
