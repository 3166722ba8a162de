package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/dispatch-service/internal/domain/dto"
	"github.com/guttosm/dispatch-service/internal/domain/model"
	"github.com/guttosm/dispatch-service/internal/i18n"
	"github.com/guttosm/dispatch-service/internal/middleware"
	"github.com/guttosm/dispatch-service/internal/service"
)

// OrderHandler provides HTTP handlers for confirmed orders.
type OrderHandler struct {
	orders  service.OrderService
	auditor middleware.Auditor
}

// NewOrderHandler creates a new OrderHandler instance.
func NewOrderHandler(orders service.OrderService, auditor middleware.Auditor) *OrderHandler {
	return &OrderHandler{orders: orders, auditor: auditor}
}

// ListOrders handles GET /api/orders requests.
//
// @Summary      List open orders
// @Description  Returns every open order. Each holds its vehicle until cancelled.
// @Tags         Orders
// @Produce      json
// @Success      200 {object} dto.SuccessResponse{data=dto.OrderListResponse} "Open orders"
// @Failure      503 {object} dto.ErrorResponse "Order store unavailable"
// @Security     ApiKeyAuth
// @Router       /api/orders [get]
func (h *OrderHandler) ListOrders(c *gin.Context) {
	builder := NewResponseBuilder(c)

	orders, err := h.orders.List(c.Request.Context())
	if err != nil {
		builder.Fail(err)
		return
	}
	if orders == nil {
		orders = []model.Order{}
	}
	builder.SuccessOK(dto.OrderListResponse{Orders: orders, Count: len(orders)})
}

// GetOrder handles GET /api/orders/:id requests.
//
// @Summary      Get order
// @Description  Returns one open order.
// @Tags         Orders
// @Produce      json
// @Param        id path string true "Order id"
// @Success      200 {object} dto.SuccessResponse{data=model.Order} "Order"
// @Failure      404 {object} dto.ErrorResponse "Order not found"
// @Failure      503 {object} dto.ErrorResponse "Order store unavailable"
// @Security     ApiKeyAuth
// @Router       /api/orders/{id} [get]
func (h *OrderHandler) GetOrder(c *gin.Context) {
	builder := NewResponseBuilder(c)

	order, err := h.orders.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		builder.Fail(err)
		return
	}
	builder.SuccessOK(order)
}

// AdjustItem handles PATCH /api/orders/:id/items/:index requests.
//
// @Summary      Adjust order line quantity
// @Description  Sets the quantity of one line of an open order, or steps it by delta when no quantity is given. Stepping below 1 leaves the line unchanged. Totals are recomputed. Concurrent edits are detected by version and retried.
// @Tags         Orders
// @Accept       json
// @Produce      json
// @Param        id path string true "Order id"
// @Param        index path int true "Zero-based line index"
// @Param        Idempotency-Key header string false "Idempotency key for request deduplication"
// @Param        request body dto.AdjustQuantityRequest true "New quantity or step"
// @Success      200 {object} dto.SuccessResponse{data=model.Order} "Updated order"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid quantity or index"
// @Failure      404 {object} dto.ErrorResponse "Order not found"
// @Failure      409 {object} dto.ErrorResponse "Order changed concurrently"
// @Failure      503 {object} dto.ErrorResponse "Order store unavailable"
// @Security     ApiKeyAuth
// @Router       /api/orders/{id}/items/{index} [patch]
func (h *OrderHandler) AdjustItem(c *gin.Context) {
	builder := NewResponseBuilder(c)

	index, ok := indexParam(c)
	if !ok {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidItemIndex, nil)
		return
	}
	req, err := BuildRequestAndValidate[dto.AdjustQuantityRequest](c)
	if err != nil {
		rejectRequest(c, err)
		return
	}

	id := c.Param("id")
	action := service.AuditActionAdjustQuantity
	fields := map[string]interface{}{middleware.AuditFieldOrder: id, "index": index}

	var order model.Order
	if req.IsStep() {
		action = service.AuditActionStepQuantity
		fields["delta"] = req.Delta
		order, err = h.orders.StepItemQuantity(c.Request.Context(), id, index, req.Delta)
	} else {
		fields["quantity"] = req.Quantity
		order, err = h.orders.AdjustItemQuantity(c.Request.Context(), id, index, req.Quantity)
	}
	if err != nil {
		builder.Fail(err)
		return
	}

	fields[middleware.AuditFieldVehicle] = order.VehicleID
	fields["version"] = order.Version
	middleware.AuditLog(h.auditor, c, action, "Order quantity changed", fields)
	builder.SuccessOK(order)
}

// CancelOrder handles DELETE /api/orders/:id requests.
//
// @Summary      Cancel order
// @Description  Removes the order and releases its vehicle.
// @Tags         Orders
// @Param        id path string true "Order id"
// @Success      204 "Cancelled"
// @Failure      404 {object} dto.ErrorResponse "Order not found"
// @Failure      503 {object} dto.ErrorResponse "Order store unavailable"
// @Security     ApiKeyAuth
// @Router       /api/orders/{id} [delete]
func (h *OrderHandler) CancelOrder(c *gin.Context) {
	builder := NewResponseBuilder(c)
	id := c.Param("id")

	if err := h.orders.Cancel(c.Request.Context(), id); err != nil {
		builder.Fail(err)
		return
	}

	middleware.AuditLog(h.auditor, c, service.AuditActionCancel, "Order cancelled", map[string]interface{}{
		middleware.AuditFieldOrder: id,
	})
	builder.NoContent()
}
