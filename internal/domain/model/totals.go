package model

import "github.com/shopspring/decimal"

// Totals is the aggregate weight, volume and value of a set of line items.
//
// @Description Aggregated shipment figures
type Totals struct {
	Weight float64         `json:"weight" example:"20"`
	Volume float64         `json:"volume" example:"1"`
	Value  decimal.Decimal `json:"value" swaggertype:"string" example:"200"`
}

// SumTotals reduces items from scratch. It is the only way totals are produced.
func SumTotals(items []LineItem) Totals {
	t := Totals{Value: decimal.Zero}
	for _, it := range items {
		t.Weight += it.Weight()
		t.Volume += it.Volume()
		t.Value = t.Value.Add(it.Value())
	}
	return t
}
