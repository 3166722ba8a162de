package model

import "github.com/shopspring/decimal"

// LineItem is one (sku, quantity) row of a composition or order.
// Description and unit figures are copied from the catalog when the row is
// created so later catalog edits do not alter it.
//
// @Description Shipment line item with a frozen catalog snapshot
type LineItem struct {
	SKU         string          `json:"sku" example:"A1"`
	Description string          `json:"description"`
	UnitWeight  float64         `json:"unit_weight" example:"10"`
	UnitVolume  float64         `json:"unit_volume" example:"0.5"`
	UnitValue   decimal.Decimal `json:"unit_value" swaggertype:"string" example:"100"`
	Quantity    int             `json:"quantity" example:"2"`
}

// NewLineItem snapshots a stock item into a row with the given quantity.
func NewLineItem(item StockItem, quantity int) LineItem {
	return LineItem{
		SKU:         item.SKU,
		Description: item.Description,
		UnitWeight:  item.UnitWeight,
		UnitVolume:  item.UnitVolume,
		UnitValue:   item.UnitValue,
		Quantity:    quantity,
	}
}

// Weight returns unit weight times quantity.
func (l LineItem) Weight() float64 {
	return l.UnitWeight * float64(l.Quantity)
}

// Volume returns unit volume times quantity.
func (l LineItem) Volume() float64 {
	return l.UnitVolume * float64(l.Quantity)
}

// Value returns unit value times quantity.
func (l LineItem) Value() decimal.Decimal {
	return l.UnitValue.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// CloneLineItems returns an independent copy of items.
func CloneLineItems(items []LineItem) []LineItem {
	out := make([]LineItem, len(items))
	copy(out, items)
	return out
}
