package composition

import (
	"strings"

	"github.com/guttosm/dispatch-service/internal/domain/model"
)

// IsAvailable reports whether no open order holds vehicleID.
// Identifiers are compared after trimming surrounding whitespace.
func IsAvailable(vehicleID string, openOrders []model.Order) bool {
	id := strings.TrimSpace(vehicleID)
	for _, o := range openOrders {
		if strings.TrimSpace(o.VehicleID) == id {
			return false
		}
	}
	return true
}

// HolderOf returns the open order holding vehicleID, if any.
func HolderOf(vehicleID string, openOrders []model.Order) (model.Order, bool) {
	id := strings.TrimSpace(vehicleID)
	for _, o := range openOrders {
		if strings.TrimSpace(o.VehicleID) == id {
			return o, true
		}
	}
	return model.Order{}, false
}
