package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/guttosm/dispatch-service/internal/circuitbreaker"
	"github.com/guttosm/dispatch-service/internal/composition"
	"github.com/guttosm/dispatch-service/internal/domain/dto"
	"github.com/guttosm/dispatch-service/internal/domain/model"
	"github.com/guttosm/dispatch-service/internal/i18n"
	"github.com/guttosm/dispatch-service/internal/service"
)

// errorStatus maps an error returned by the services onto an HTTP status and
// a translation key.
func errorStatus(err error) (int, string) {
	var validation *composition.ValidationError
	var invalid *dto.ValidationError

	switch {
	case errors.As(err, &validation):
		return validationStatus(validation.Reason)
	case errors.As(err, &invalid):
		if invalid == dto.ErrInvalidQuantity {
			return http.StatusBadRequest, i18n.ErrKeyInvalidQuantity
		}
		return http.StatusBadRequest, i18n.ErrKeyInvalidRequest
	case errors.Is(err, composition.ErrUnknownSKU):
		return http.StatusNotFound, i18n.ErrKeyUnknownSKU
	case errors.Is(err, model.ErrOrderNotFound):
		return http.StatusNotFound, i18n.ErrKeyOrderNotFound
	case errors.Is(err, composition.ErrLineItemIndex):
		return http.StatusBadRequest, i18n.ErrKeyInvalidItemIndex
	case errors.Is(err, service.ErrInvalidQuantity):
		return http.StatusBadRequest, i18n.ErrKeyInvalidQuantity
	case errors.Is(err, service.ErrInvalidSessionID):
		return http.StatusBadRequest, i18n.ErrKeyInvalidSessionID
	case errors.Is(err, model.ErrVersionConflict):
		return http.StatusConflict, i18n.ErrKeyOrderConflict
	case errors.Is(err, model.ErrVehicleAssigned):
		return http.StatusConflict, i18n.ErrKeyVehicleUnavailable
	case errors.Is(err, composition.ErrCollaboratorUnavailable),
		errors.Is(err, circuitbreaker.ErrCircuitOpen),
		errors.Is(err, service.ErrRepositoryNotConfigured):
		return http.StatusServiceUnavailable, i18n.ErrKeyStoreUnavailable
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, i18n.ErrKeyTimeout
	default:
		return http.StatusInternalServerError, i18n.ErrKeyInternalError
	}
}

func validationStatus(reason composition.Reason) (int, string) {
	switch reason {
	case composition.ReasonMissingVehicle:
		return http.StatusUnprocessableEntity, i18n.ErrKeyMissingVehicle
	case composition.ReasonNoItems:
		return http.StatusUnprocessableEntity, i18n.ErrKeyNoItems
	case composition.ReasonVehicleUnavailable:
		return http.StatusConflict, i18n.ErrKeyVehicleUnavailable
	case composition.ReasonCapacityExceeded:
		return http.StatusUnprocessableEntity, i18n.ErrKeyCapacityExceeded
	default:
		return http.StatusUnprocessableEntity, i18n.ErrKeyInvalidRequest
	}
}

// errorDetails exposes the machine-readable part of domain errors.
func errorDetails(err error) map[string]string {
	var validation *composition.ValidationError
	if errors.As(err, &validation) {
		return map[string]string{"reason": string(validation.Reason)}
	}
	var reference *composition.ReferenceError
	if errors.As(err, &reference) {
		return map[string]string{"sku": reference.SKU}
	}
	var invalid *dto.ValidationError
	if errors.As(err, &invalid) {
		return map[string]string{"field": invalid.Field}
	}
	return nil
}
