package dto

import (
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"github.com/guttosm/dispatch-service/internal/domain/model"
)

const (
	// ErrCodeInvalidRequest indicates an invalid request.
	ErrCodeInvalidRequest = "invalid_request"
	// ErrCodeInternal indicates an internal server error.
	ErrCodeInternal = "internal_error"
	// ErrCodeUnauthorized indicates missing or invalid authentication.
	ErrCodeUnauthorized = "unauthorized"
	// ErrCodeNotFound indicates a resource was not found.
	ErrCodeNotFound = "not_found"
	// ErrCodeRateLimit indicates rate limit exceeded.
	ErrCodeRateLimit = "rate_limit_exceeded"
	// ErrCodeConflict indicates a conflict with current state.
	ErrCodeConflict = "conflict"
	// ErrCodeTimeout indicates a request timeout.
	ErrCodeTimeout = "timeout"
	// ErrCodeValidation indicates the composition is not ready for the operation.
	ErrCodeValidation = "validation_failed"
	// ErrCodeUnavailable indicates a backing store is unavailable.
	ErrCodeUnavailable = "service_unavailable"
)

// SuccessResponse wraps successful API responses with metadata.
// @Description Successful API response wrapper
type SuccessResponse struct {
	// Data contains the actual response data
	Data interface{} `json:"data" swaggertype:"object"`
	// RequestID is the unique request identifier
	RequestID string `json:"request_id,omitempty" example:"550e8400-e29b-41d4-a716-446655440000"`
	// Timestamp is when the response was generated
	Timestamp time.Time `json:"timestamp" example:"2025-01-28T10:00:00Z"`
} // @name SuccessResponse

// ErrorResponse represents a standardized error response for the API.
// @Description Standardized error response
type ErrorResponse struct {
	Error   string `json:"error" example:"validation_failed"`
	Message string `json:"message,omitempty" example:"Select a vehicle before confirming"`
	// Details contains additional error details (optional)
	Details   map[string]string `json:"details,omitempty"`
	RequestID string            `json:"request_id,omitempty" example:"550e8400-e29b-41d4-a716-446655440000"`
	Timestamp time.Time         `json:"timestamp" example:"2025-01-28T10:00:00Z"`
	TraceID   string            `json:"trace_id,omitempty" example:"trace-123"`
} // @name ErrorResponse

// NewError creates a new ErrorResponse with the given code and message.
func NewError(code, message string) ErrorResponse {
	return ErrorResponse{
		Error:     code,
		Message:   message,
		Timestamp: time.Now(),
	}
}

// WithRequestID adds a request ID to the error response.
func (e ErrorResponse) WithRequestID(requestID string) ErrorResponse {
	e.RequestID = requestID
	return e
}

// ErrCodeFromStatus returns the appropriate error code for an HTTP status.
func ErrCodeFromStatus(status int) string {
	switch status {
	case http.StatusBadRequest:
		return ErrCodeInvalidRequest
	case http.StatusUnauthorized:
		return ErrCodeUnauthorized
	case http.StatusNotFound:
		return ErrCodeNotFound
	case http.StatusConflict:
		return ErrCodeConflict
	case http.StatusUnprocessableEntity:
		return ErrCodeValidation
	case http.StatusTooManyRequests:
		return ErrCodeRateLimit
	case http.StatusServiceUnavailable:
		return ErrCodeUnavailable
	case http.StatusGatewayTimeout, http.StatusRequestTimeout:
		return ErrCodeTimeout
	default:
		return ErrCodeInternal
	}
}

// LineItemResponse is a composition or order row with its line totals.
// @Description Line item with per-line totals
type LineItemResponse struct {
	model.LineItem
	LineWeight float64         `json:"line_weight" example:"20"`
	LineVolume float64         `json:"line_volume" example:"1"`
	LineValue  decimal.Decimal `json:"line_value" swaggertype:"string" example:"200"`
} // @name LineItemResponse

// TotalsResponse aggregates weight, volume and value.
// @Description Aggregated totals
type TotalsResponse struct {
	Weight float64         `json:"weight" example:"20"`
	Volume float64         `json:"volume" example:"1"`
	Value  decimal.Decimal `json:"value" swaggertype:"string" example:"200"`
} // @name TotalsResponse

// CapacityResponse is the utilisation of the selected vehicle.
// @Description Capacity utilisation with a translated alert
type CapacityResponse struct {
	WeightPct int    `json:"weight_pct" example:"2"`
	VolumePct int    `json:"volume_pct" example:"10"`
	Status    string `json:"status" example:"fits" enums:"fits,weight_exceeded,volume_exceeded,both_exceeded"`
	Alert     string `json:"alert,omitempty" example:"Overweight!"`
} // @name CapacityResponse

// WarningResponse is a non-fatal condition the operator should know about.
// @Description Non-fatal warning
type WarningResponse struct {
	Code    string `json:"code" example:"draft_sync_failed"`
	Message string `json:"message" example:"Your draft could not be saved, changes are kept in memory"`
} // @name WarningResponse

// CompositionResponse is an operator's composition as shown by the API.
// @Description Composition session view
type CompositionResponse struct {
	SessionID        string             `json:"session_id" example:"dock-3"`
	State            string             `json:"state" example:"ready_to_confirm" enums:"empty,building,ready_to_confirm"`
	VehicleID        string             `json:"vehicle_id" example:"T-1"`
	Vehicle          *model.Vehicle     `json:"vehicle,omitempty"`
	VehicleKnown     bool               `json:"vehicle_known" example:"true"`
	VehicleAvailable bool               `json:"vehicle_available" example:"true"`
	HeldByOrder      string             `json:"held_by_order,omitempty"`
	Items            []LineItemResponse `json:"items"`
	Pending          model.LineItem     `json:"pending"`
	Totals           TotalsResponse     `json:"totals"`
	Capacity         *CapacityResponse  `json:"capacity,omitempty"`
	Warnings         []WarningResponse  `json:"warnings,omitempty"`
} // @name CompositionResponse

// VehicleResponse is a catalog vehicle with its assignment state.
// @Description Vehicle with availability
type VehicleResponse struct {
	model.Vehicle
	Available   bool   `json:"available" example:"true"`
	HeldByOrder string `json:"held_by_order,omitempty"`
} // @name VehicleResponse

// OrderListResponse lists open orders.
// @Description Open orders
type OrderListResponse struct {
	Orders []model.Order `json:"orders"`
	Count  int           `json:"count" example:"1"`
} // @name OrderListResponse

// AuditListResponse lists audit entries.
// @Description Audit trail page
type AuditListResponse struct {
	Entries []model.AuditEntry `json:"entries"`
	Total   int64              `json:"total" example:"12"`
} // @name AuditListResponse
