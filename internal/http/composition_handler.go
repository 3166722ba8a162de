package http

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/dispatch-service/internal/domain/dto"
	"github.com/guttosm/dispatch-service/internal/i18n"
	"github.com/guttosm/dispatch-service/internal/middleware"
	"github.com/guttosm/dispatch-service/internal/service"
)

// CompositionHandler provides HTTP handlers for operator composition sessions.
type CompositionHandler struct {
	compositions service.CompositionService
	auditor      middleware.Auditor
}

// NewCompositionHandler creates a new CompositionHandler instance.
func NewCompositionHandler(compositions service.CompositionService, auditor middleware.Auditor) *CompositionHandler {
	return &CompositionHandler{compositions: compositions, auditor: auditor}
}

func (h *CompositionHandler) respond(c *gin.Context, view service.SessionView, err error) {
	builder := NewResponseBuilder(c)
	if err != nil {
		builder.Fail(err)
		return
	}
	builder.SuccessOK(compositionResponse(view, builder.Locale()))
}

// GetComposition handles GET /api/compositions/:session requests.
//
// @Summary      Get composition
// @Description  Returns the operator's composition: state, selected vehicle, items, pending row, totals, capacity utilisation and warnings. A session that does not exist yet is created empty, restoring a saved draft when one exists.
// @Tags         Compositions
// @Produce      json
// @Param        session path string true "Operator session id"
// @Param        Accept-Language header string false "Locale for alerts and messages (en, es, pt)"
// @Success      200 {object} dto.SuccessResponse{data=dto.CompositionResponse} "Composition"
// @Failure      400 {object} dto.ErrorResponse "Invalid session id"
// @Failure      429 {object} dto.ErrorResponse "Too many requests - rate limit exceeded"
// @Security     ApiKeyAuth
// @Router       /api/compositions/{session} [get]
func (h *CompositionHandler) GetComposition(c *gin.Context) {
	view, err := h.compositions.View(c.Request.Context(), c.Param(middleware.SessionParam))
	h.respond(c, view, err)
}

// SelectVehicle handles PUT /api/compositions/:session/vehicle requests.
//
// @Summary      Select vehicle
// @Description  Binds the composition to a vehicle. An unknown vehicle id is accepted; the view then reports it as not known and no capacity is computed. An empty id clears the selection.
// @Tags         Compositions
// @Accept       json
// @Produce      json
// @Param        session path string true "Operator session id"
// @Param        request body dto.SelectVehicleRequest true "Vehicle selection"
// @Success      200 {object} dto.SuccessResponse{data=dto.CompositionResponse} "Composition"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Security     ApiKeyAuth
// @Router       /api/compositions/{session}/vehicle [put]
func (h *CompositionHandler) SelectVehicle(c *gin.Context) {
	req, err := BuildRequestAndValidate[dto.SelectVehicleRequest](c)
	if err != nil {
		rejectRequest(c, err)
		return
	}
	view, err := h.compositions.SelectVehicle(c.Request.Context(), c.Param(middleware.SessionParam), req.VehicleID)
	h.respond(c, view, err)
}

// SetPending handles PUT /api/compositions/:session/pending requests.
//
// @Summary      Edit pending item
// @Description  Edits the row being prepared. A known sku fills description, weight, volume and value from the catalog; an unknown sku keeps the previous snapshot until it is added.
// @Tags         Compositions
// @Accept       json
// @Produce      json
// @Param        session path string true "Operator session id"
// @Param        request body dto.PendingItemRequest true "Pending row"
// @Success      200 {object} dto.SuccessResponse{data=dto.CompositionResponse} "Composition"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Security     ApiKeyAuth
// @Router       /api/compositions/{session}/pending [put]
func (h *CompositionHandler) SetPending(c *gin.Context) {
	req, err := BuildRequestAndValidate[dto.PendingItemRequest](c)
	if err != nil {
		rejectRequest(c, err)
		return
	}
	view, err := h.compositions.SetPending(c.Request.Context(), c.Param(middleware.SessionParam), req.SKU, req.Quantity)
	h.respond(c, view, err)
}

// AddItem handles POST /api/compositions/:session/items requests.
//
// @Summary      Add item
// @Description  Appends a row to the composition. With an empty body sku the pending row is added and reset. The sku must exist in the catalog.
// @Tags         Compositions
// @Accept       json
// @Produce      json
// @Param        session path string true "Operator session id"
// @Param        Idempotency-Key header string false "Idempotency key for request deduplication"
// @Param        request body dto.AddItemRequest true "Row to add"
// @Success      200 {object} dto.SuccessResponse{data=dto.CompositionResponse} "Composition"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      404 {object} dto.ErrorResponse "Unknown sku"
// @Security     ApiKeyAuth
// @Router       /api/compositions/{session}/items [post]
func (h *CompositionHandler) AddItem(c *gin.Context) {
	req, err := BuildRequestAndValidate[dto.AddItemRequest](c)
	if err != nil {
		rejectRequest(c, err)
		return
	}
	view, err := h.compositions.AddItem(c.Request.Context(), c.Param(middleware.SessionParam), req.SKU, req.Quantity)
	h.respond(c, view, err)
}

// IncrementItem handles POST /api/compositions/:session/items/:index/increment requests.
//
// @Summary      Increment item
// @Description  Adds one unit to the row at index.
// @Tags         Compositions
// @Produce      json
// @Param        session path string true "Operator session id"
// @Param        index path int true "Zero-based row index"
// @Success      200 {object} dto.SuccessResponse{data=dto.CompositionResponse} "Composition"
// @Failure      400 {object} dto.ErrorResponse "No item at that position"
// @Security     ApiKeyAuth
// @Router       /api/compositions/{session}/items/{index}/increment [post]
func (h *CompositionHandler) IncrementItem(c *gin.Context) {
	h.withIndex(c, h.compositions.IncrementItem)
}

// DecrementItem handles POST /api/compositions/:session/items/:index/decrement requests.
//
// @Summary      Decrement item
// @Description  Removes one unit from the row at index. A row at quantity 1 is left unchanged.
// @Tags         Compositions
// @Produce      json
// @Param        session path string true "Operator session id"
// @Param        index path int true "Zero-based row index"
// @Success      200 {object} dto.SuccessResponse{data=dto.CompositionResponse} "Composition"
// @Failure      400 {object} dto.ErrorResponse "No item at that position"
// @Security     ApiKeyAuth
// @Router       /api/compositions/{session}/items/{index}/decrement [post]
func (h *CompositionHandler) DecrementItem(c *gin.Context) {
	h.withIndex(c, h.compositions.DecrementItem)
}

// RemoveItem handles DELETE /api/compositions/:session/items/:index requests.
//
// @Summary      Remove item
// @Description  Deletes the row at index. Later rows shift down by one.
// @Tags         Compositions
// @Produce      json
// @Param        session path string true "Operator session id"
// @Param        index path int true "Zero-based row index"
// @Success      200 {object} dto.SuccessResponse{data=dto.CompositionResponse} "Composition"
// @Failure      400 {object} dto.ErrorResponse "No item at that position"
// @Security     ApiKeyAuth
// @Router       /api/compositions/{session}/items/{index} [delete]
func (h *CompositionHandler) RemoveItem(c *gin.Context) {
	h.withIndex(c, h.compositions.RemoveItem)
}

type indexOperation func(ctx context.Context, sessionID string, index int) (service.SessionView, error)

func (h *CompositionHandler) withIndex(c *gin.Context, op indexOperation) {
	index, ok := indexParam(c)
	if !ok {
		NewResponseBuilder(c).Error(http.StatusBadRequest, i18n.ErrKeyInvalidItemIndex, nil)
		return
	}
	view, err := op(c.Request.Context(), c.Param(middleware.SessionParam), index)
	h.respond(c, view, err)
}

// Confirm handles POST /api/compositions/:session/confirm requests.
//
// @Summary      Confirm composition
// @Description  Freezes the composition into an order assigned to the selected vehicle. Requires a vehicle, at least one item and the vehicle not being on another open order. On success the composition is cleared. Retrying a confirm that failed on storage reuses the same order id; send an Idempotency-Key to replay a successful response.
// @Tags         Compositions
// @Produce      json
// @Param        session path string true "Operator session id"
// @Param        Idempotency-Key header string false "Idempotency key for request deduplication"
// @Success      201 {object} dto.SuccessResponse{data=model.Order} "Confirmed order"
// @Failure      409 {object} dto.ErrorResponse "Vehicle already assigned to an open order"
// @Failure      422 {object} dto.ErrorResponse "Composition not ready: missing vehicle or items"
// @Failure      503 {object} dto.ErrorResponse "Order store unavailable, composition kept"
// @Security     ApiKeyAuth
// @Router       /api/compositions/{session}/confirm [post]
func (h *CompositionHandler) Confirm(c *gin.Context) {
	builder := NewResponseBuilder(c)
	sessionID := c.Param(middleware.SessionParam)

	order, err := h.compositions.Confirm(c.Request.Context(), sessionID)
	if err != nil {
		middleware.AuditLogError(h.auditor, c, service.AuditActionConfirm, "Order confirmation failed", err, map[string]interface{}{
			middleware.AuditFieldSession: sessionID,
		})
		builder.Fail(err)
		return
	}

	middleware.AuditLog(h.auditor, c, service.AuditActionConfirm, "Order confirmed", map[string]interface{}{
		middleware.AuditFieldSession: sessionID,
		middleware.AuditFieldOrder:   order.ID,
		middleware.AuditFieldVehicle: order.VehicleID,
		"items":                      len(order.Items),
		"total_weight":               order.TotalWeight,
		"total_volume":               order.TotalVolume,
		"total_value":                order.TotalValue.String(),
	})
	builder.SuccessCreated(order)
}

// Discard handles DELETE /api/compositions/:session requests.
//
// @Summary      Discard composition
// @Description  Abandons the composition and its saved draft.
// @Tags         Compositions
// @Param        session path string true "Operator session id"
// @Success      204 "Discarded"
// @Failure      400 {object} dto.ErrorResponse "Invalid session id"
// @Security     ApiKeyAuth
// @Router       /api/compositions/{session} [delete]
func (h *CompositionHandler) Discard(c *gin.Context) {
	builder := NewResponseBuilder(c)
	sessionID := c.Param(middleware.SessionParam)

	if err := h.compositions.Discard(c.Request.Context(), sessionID); err != nil {
		builder.Fail(err)
		return
	}

	middleware.AuditLog(h.auditor, c, service.AuditActionDiscard, "Composition discarded", map[string]interface{}{
		middleware.AuditFieldSession: sessionID,
	})
	builder.NoContent()
}
