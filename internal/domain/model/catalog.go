// Package model defines the core domain entities for the dispatch service.
package model

import "github.com/shopspring/decimal"

// StockItem is a stock keeping unit known to the catalog.
//
// @Description Catalog entry for a stock keeping unit
type StockItem struct {
	SKU         string          `json:"sku" example:"A1"`
	Description string          `json:"description" example:"205/55R16 all-season"`
	UnitWeight  float64         `json:"unit_weight" example:"10"`
	UnitVolume  float64         `json:"unit_volume" example:"0.5"`
	UnitValue   decimal.Decimal `json:"unit_value" swaggertype:"string" example:"100"`
}

// Vehicle is a fleet unit that can be assigned to a shipment.
//
// @Description Fleet vehicle with its declared capacity
type Vehicle struct {
	VehicleID      string         `json:"vehicle_id" example:"T-1"`
	WeightCapacity float64        `json:"weight_capacity" example:"1000"`
	VolumeCapacity float64        `json:"volume_capacity" example:"10"`
	Details        VehicleDetails `json:"details"`
}

// VehicleDetails holds fleet metadata the engine never interprets.
type VehicleDetails struct {
	Unit       string `json:"unit,omitempty" bson:"unit,omitempty"`
	Model      string `json:"model,omitempty" bson:"model,omitempty"`
	Plates     string `json:"plates,omitempty" bson:"plates,omitempty"`
	Location   string `json:"location,omitempty" bson:"location,omitempty"`
	AssignedTo string `json:"assigned_to,omitempty" bson:"assigned_to,omitempty"`
}

// Catalog is a read-only snapshot of stock items and vehicles indexed by id.
type Catalog struct {
	items    map[string]StockItem
	vehicles map[string]Vehicle
	itemList []StockItem
	fleet    []Vehicle
}

// NewCatalog indexes the given items and vehicles. Later duplicates win.
func NewCatalog(items []StockItem, vehicles []Vehicle) *Catalog {
	c := &Catalog{
		items:    make(map[string]StockItem, len(items)),
		vehicles: make(map[string]Vehicle, len(vehicles)),
		itemList: make([]StockItem, len(items)),
		fleet:    make([]Vehicle, len(vehicles)),
	}
	copy(c.itemList, items)
	copy(c.fleet, vehicles)
	for _, it := range items {
		c.items[it.SKU] = it
	}
	for _, v := range vehicles {
		c.vehicles[v.VehicleID] = v
	}
	return c
}

// StockItem looks up a sku.
func (c *Catalog) StockItem(sku string) (StockItem, bool) {
	if c == nil {
		return StockItem{}, false
	}
	it, ok := c.items[sku]
	return it, ok
}

// Vehicle looks up a vehicle id.
func (c *Catalog) Vehicle(id string) (Vehicle, bool) {
	if c == nil {
		return Vehicle{}, false
	}
	v, ok := c.vehicles[id]
	return v, ok
}

// StockItems returns a copy of the catalog's stock items in source order.
func (c *Catalog) StockItems() []StockItem {
	if c == nil {
		return []StockItem{}
	}
	out := make([]StockItem, len(c.itemList))
	copy(out, c.itemList)
	return out
}

// Vehicles returns a copy of the catalog's vehicles in source order.
func (c *Catalog) Vehicles() []Vehicle {
	if c == nil {
		return []Vehicle{}
	}
	out := make([]Vehicle, len(c.fleet))
	copy(out, c.fleet)
	return out
}
