// Package service contains the business logic of the dispatch service.
package service

import (
	"github.com/guttosm/dispatch-service/internal/composition"
	"github.com/guttosm/dispatch-service/internal/domain/model"
)

// VehicleStatus is a catalog vehicle together with its assignment state.
type VehicleStatus struct {
	Vehicle   model.Vehicle
	Available bool
	HeldBy    string
}

// CatalogService answers catalog reads from the shared snapshot.
type CatalogService interface {
	StockItems() []model.StockItem
	Vehicles() []VehicleStatus
}

// CatalogServiceImpl implements CatalogService.
type CatalogServiceImpl struct {
	view *composition.View
}

// NewCatalogService creates a catalog service reading from view.
func NewCatalogService(view *composition.View) CatalogService {
	return &CatalogServiceImpl{view: view}
}

func (s *CatalogServiceImpl) StockItems() []model.StockItem {
	return s.view.Catalog().StockItems()
}

func (s *CatalogServiceImpl) Vehicles() []VehicleStatus {
	snap := s.view.Current()
	vehicles := snap.Catalog.Vehicles()
	out := make([]VehicleStatus, len(vehicles))
	for i, v := range vehicles {
		out[i] = VehicleStatus{Vehicle: v, Available: true}
		if holder, held := composition.HolderOf(v.VehicleID, snap.OpenOrders); held {
			out[i].Available = false
			out[i].HeldBy = holder.ID
		}
	}
	return out
}
