package repository

import (
	"time"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/guttosm/dispatch-service/internal/domain/model"
)

// lineItemDocument is the stored form of a line item snapshot.
type lineItemDocument struct {
	SKU         string               `bson:"sku"`
	Description string               `bson:"description"`
	UnitWeight  float64              `bson:"unit_weight"`
	UnitVolume  float64              `bson:"unit_volume"`
	UnitValue   primitive.Decimal128 `bson:"unit_value"`
	Quantity    int                  `bson:"quantity"`
}

func newLineItemDocuments(items []model.LineItem) []lineItemDocument {
	docs := make([]lineItemDocument, len(items))
	for i, it := range items {
		docs[i] = lineItemDocument{
			SKU:         it.SKU,
			Description: it.Description,
			UnitWeight:  it.UnitWeight,
			UnitVolume:  it.UnitVolume,
			UnitValue:   toDecimal128(it.UnitValue),
			Quantity:    it.Quantity,
		}
	}
	return docs
}

func lineItemsFromDocuments(docs []lineItemDocument) []model.LineItem {
	items := make([]model.LineItem, len(docs))
	for i, d := range docs {
		items[i] = model.LineItem{
			SKU:         d.SKU,
			Description: d.Description,
			UnitWeight:  d.UnitWeight,
			UnitVolume:  d.UnitVolume,
			UnitValue:   fromDecimal128(d.UnitValue),
			Quantity:    d.Quantity,
		}
	}
	return items
}

// orderDocument maps an order to the orders collection.
type orderDocument struct {
	ID          string               `bson:"_id"`
	VehicleID   string               `bson:"vehicle_id"`
	Items       []lineItemDocument   `bson:"items"`
	TotalWeight float64              `bson:"total_weight"`
	TotalVolume float64              `bson:"total_volume"`
	TotalValue  primitive.Decimal128 `bson:"total_value"`
	Version     int                  `bson:"version"`
	CreatedBy   string               `bson:"created_by,omitempty"`
	CreatedAt   time.Time            `bson:"created_at"`
	UpdatedAt   time.Time            `bson:"updated_at"`
}

func newOrderDocument(o model.Order) orderDocument {
	return orderDocument{
		ID:          o.ID,
		VehicleID:   o.VehicleID,
		Items:       newLineItemDocuments(o.Items),
		TotalWeight: o.TotalWeight,
		TotalVolume: o.TotalVolume,
		TotalValue:  toDecimal128(o.TotalValue),
		Version:     o.Version,
		CreatedBy:   o.CreatedBy,
		CreatedAt:   o.CreatedAt,
		UpdatedAt:   o.UpdatedAt,
	}
}

func (d orderDocument) toModel() model.Order {
	return model.Order{
		ID:          d.ID,
		VehicleID:   d.VehicleID,
		Items:       lineItemsFromDocuments(d.Items),
		TotalWeight: d.TotalWeight,
		TotalVolume: d.TotalVolume,
		TotalValue:  fromDecimal128(d.TotalValue),
		Version:     d.Version,
		CreatedBy:   d.CreatedBy,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

// draftDocument maps a mirrored composition to the drafts collection.
type draftDocument struct {
	SessionID string             `bson:"_id"`
	VehicleID string             `bson:"vehicle_id"`
	Items     []lineItemDocument `bson:"items"`
	Pending   lineItemDocument   `bson:"pending"`
	UpdatedAt time.Time          `bson:"updated_at"`
}

func newDraftDocument(sessionID string, c model.Composition) draftDocument {
	pending := newLineItemDocuments([]model.LineItem{c.Pending})
	return draftDocument{
		SessionID: sessionID,
		VehicleID: c.VehicleID,
		Items:     newLineItemDocuments(c.Items),
		Pending:   pending[0],
		UpdatedAt: time.Now().UTC(),
	}
}

func (d draftDocument) toModel() model.Composition {
	return model.Composition{
		VehicleID: d.VehicleID,
		Items:     lineItemsFromDocuments(d.Items),
		Pending:   lineItemsFromDocuments([]lineItemDocument{d.Pending})[0],
	}
}

// toDecimal128 converts through the decimal string form. Values outside the
// Decimal128 range are stored as zero.
func toDecimal128(d decimal.Decimal) primitive.Decimal128 {
	v, err := primitive.ParseDecimal128(d.String())
	if err != nil {
		return primitive.NewDecimal128(0, 0)
	}
	return v
}

func fromDecimal128(v primitive.Decimal128) decimal.Decimal {
	d, err := decimal.NewFromString(v.String())
	if err != nil {
		return decimal.Zero
	}
	return d
}
