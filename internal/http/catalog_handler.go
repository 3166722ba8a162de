package http

import (
	"github.com/gin-gonic/gin"

	"github.com/guttosm/dispatch-service/internal/service"
)

// CatalogHandler serves the read-only catalog.
type CatalogHandler struct {
	catalog service.CatalogService
}

// NewCatalogHandler creates a new CatalogHandler instance.
func NewCatalogHandler(catalog service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

// ListStockItems handles GET /api/catalog/stock-items requests.
//
// @Summary      List stock items
// @Description  Returns the stock items of the latest catalog snapshot.
// @Tags         Catalog
// @Produce      json
// @Success      200 {object} dto.SuccessResponse{data=[]model.StockItem} "Stock items"
// @Security     ApiKeyAuth
// @Router       /api/catalog/stock-items [get]
func (h *CatalogHandler) ListStockItems(c *gin.Context) {
	NewResponseBuilder(c).SuccessOK(h.catalog.StockItems())
}

// ListVehicles handles GET /api/catalog/vehicles requests.
//
// @Summary      List vehicles
// @Description  Returns the vehicles of the latest catalog snapshot with the open order holding each one, if any.
// @Tags         Catalog
// @Produce      json
// @Success      200 {object} dto.SuccessResponse{data=[]dto.VehicleResponse} "Vehicles"
// @Security     ApiKeyAuth
// @Router       /api/catalog/vehicles [get]
func (h *CatalogHandler) ListVehicles(c *gin.Context) {
	NewResponseBuilder(c).SuccessOK(vehicleResponses(h.catalog.Vehicles()))
}
