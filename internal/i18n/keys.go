// Package i18n provides internationalization support for the dispatch service.
package i18n

// Error message translation keys.
const (
	// ErrKeyInvalidRequest indicates an invalid request.
	ErrKeyInvalidRequest = "error.invalid_request"
	// ErrKeyInvalidRequestBody indicates an invalid request body.
	ErrKeyInvalidRequestBody = "error.invalid_request_body"
	// ErrKeyInternalError indicates an internal server error.
	ErrKeyInternalError = "error.internal_error"
	// ErrKeyUnauthorized indicates missing or invalid authentication.
	ErrKeyUnauthorized = "error.unauthorized"
	// ErrKeyAPIKeyRequired indicates that an API key is required.
	ErrKeyAPIKeyRequired = "error.api_key_required"
	// ErrKeyInvalidAPIKey indicates an invalid API key.
	ErrKeyInvalidAPIKey = "error.invalid_api_key"
	// ErrKeyNotFound indicates a resource was not found.
	ErrKeyNotFound = "error.not_found"
	// ErrKeyRateLimitExceeded indicates rate limit exceeded.
	ErrKeyRateLimitExceeded = "error.rate_limit_exceeded"
	// ErrKeyConflict indicates a conflict with current state.
	ErrKeyConflict = "error.conflict"
	// ErrKeyTimeout indicates a request timeout.
	ErrKeyTimeout = "error.timeout"

	ErrKeyInvalidSessionID   = "error.invalid_session_id"
	ErrKeyInvalidItemIndex   = "error.invalid_item_index"
	ErrKeyInvalidQuantity    = "error.invalid_quantity"
	ErrKeyUnknownSKU         = "error.unknown_sku"
	ErrKeyOrderNotFound      = "error.order_not_found"
	ErrKeyOrderConflict      = "error.order_conflict"
	ErrKeyStoreUnavailable   = "error.store_unavailable"
	ErrKeyMissingVehicle     = "error.composition.missing_vehicle"
	ErrKeyNoItems            = "error.composition.no_items"
	ErrKeyVehicleUnavailable = "error.composition.vehicle_unavailable"
	ErrKeyCapacityExceeded   = "error.composition.capacity_exceeded"
)

// Capacity alert keys.
const (
	AlertKeyTruckFull         = "alert.truck_full"
	AlertKeyOverweight        = "alert.overweight"
	AlertKeyFullAndOverweight = "alert.full_and_overweight"
)

// Warning keys attached to composition views.
const (
	WarningKeyDraftRestoreFailed = "warning.draft_restore_failed"
	WarningKeyDraftSyncFailed    = "warning.draft_sync_failed"
)
