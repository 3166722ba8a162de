package http

import (
	"github.com/gin-gonic/gin"

	"github.com/guttosm/dispatch-service/internal/middleware"
	"github.com/guttosm/dispatch-service/internal/service"
)

// OrderRoutes handles confirmed order route registration.
type OrderRoutes struct {
	handler *OrderHandler
}

// NewOrderRoutes creates a new OrderRoutes instance.
func NewOrderRoutes(orders service.OrderService, auditor middleware.Auditor) *OrderRoutes {
	return &OrderRoutes{handler: NewOrderHandler(orders, auditor)}
}

// RegisterRoutes registers order routes.
func (r *OrderRoutes) RegisterRoutes(rg *gin.RouterGroup, _ *RouterConfig) {
	orders := rg.Group("/orders")
	orders.GET("", r.handler.ListOrders)
	orders.GET("/:id", r.handler.GetOrder)
	orders.PATCH("/:id/items/:index", r.handler.AdjustItem)
	orders.DELETE("/:id", r.handler.CancelOrder)
}

// CatalogRoutes handles catalog route registration.
type CatalogRoutes struct {
	handler *CatalogHandler
}

// NewCatalogRoutes creates a new CatalogRoutes instance.
func NewCatalogRoutes(catalog service.CatalogService) *CatalogRoutes {
	return &CatalogRoutes{handler: NewCatalogHandler(catalog)}
}

// RegisterRoutes registers catalog routes.
func (r *CatalogRoutes) RegisterRoutes(rg *gin.RouterGroup, _ *RouterConfig) {
	rg.GET("/catalog/stock-items", r.handler.ListStockItems)
	rg.GET("/catalog/vehicles", r.handler.ListVehicles)
}

// AuditRoutes handles audit trail route registration.
type AuditRoutes struct {
	handler *AuditHandler
}

// NewAuditRoutes creates a new AuditRoutes instance.
func NewAuditRoutes(audit service.AuditService) *AuditRoutes {
	return &AuditRoutes{handler: NewAuditHandler(audit)}
}

// RegisterRoutes registers audit routes.
func (r *AuditRoutes) RegisterRoutes(rg *gin.RouterGroup, _ *RouterConfig) {
	rg.GET("/audit", r.handler.ListAudit)
}
