package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/guttosm/dispatch-service/internal/domain/model"
)

type stockItemDocument struct {
	SKU         string               `bson:"_id"`
	Description string               `bson:"description"`
	UnitWeight  float64              `bson:"unit_weight"`
	UnitVolume  float64              `bson:"unit_volume"`
	UnitValue   primitive.Decimal128 `bson:"unit_value"`
	UpdatedAt   time.Time            `bson:"updated_at"`
}

type vehicleDocument struct {
	ID             string               `bson:"_id"`
	WeightCapacity float64              `bson:"weight_capacity"`
	VolumeCapacity float64              `bson:"volume_capacity"`
	Details        model.VehicleDetails `bson:"details"`
	UpdatedAt      time.Time            `bson:"updated_at"`
}

// CatalogRepository reads stock items and vehicles. The upsert methods exist
// for seeding; catalog maintenance happens outside this service.
type CatalogRepository struct {
	items    *mongo.Collection
	vehicles *mongo.Collection
}

// NewCatalogRepository creates a new catalog repository.
func NewCatalogRepository(db *MongoDB) *CatalogRepository {
	return &CatalogRepository{
		items:    db.StockItems,
		vehicles: db.Vehicles,
	}
}

// ListStockItems returns every stock item ordered by sku.
func (r *CatalogRepository) ListStockItems(ctx context.Context) ([]model.StockItem, error) {
	cursor, err := r.items.Find(ctx, bson.M{}, options.Find().SetSort(bson.M{"_id": 1}))
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var docs []stockItemDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	items := make([]model.StockItem, len(docs))
	for i, d := range docs {
		items[i] = model.StockItem{
			SKU:         d.SKU,
			Description: d.Description,
			UnitWeight:  d.UnitWeight,
			UnitVolume:  d.UnitVolume,
			UnitValue:   fromDecimal128(d.UnitValue),
		}
	}
	return items, nil
}

// ListVehicles returns every vehicle ordered by id.
func (r *CatalogRepository) ListVehicles(ctx context.Context) ([]model.Vehicle, error) {
	cursor, err := r.vehicles.Find(ctx, bson.M{}, options.Find().SetSort(bson.M{"_id": 1}))
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var docs []vehicleDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	vehicles := make([]model.Vehicle, len(docs))
	for i, d := range docs {
		vehicles[i] = model.Vehicle{
			VehicleID:      d.ID,
			WeightCapacity: d.WeightCapacity,
			VolumeCapacity: d.VolumeCapacity,
			Details:        d.Details,
		}
	}
	return vehicles, nil
}

// UpsertStockItem inserts or replaces a stock item keyed by sku.
func (r *CatalogRepository) UpsertStockItem(ctx context.Context, item model.StockItem) error {
	doc := stockItemDocument{
		SKU:         item.SKU,
		Description: item.Description,
		UnitWeight:  item.UnitWeight,
		UnitVolume:  item.UnitVolume,
		UnitValue:   toDecimal128(item.UnitValue),
		UpdatedAt:   time.Now().UTC(),
	}
	_, err := r.items.ReplaceOne(ctx, bson.M{"_id": item.SKU}, doc, options.Replace().SetUpsert(true))
	return err
}

// UpsertVehicle inserts or replaces a vehicle keyed by id.
func (r *CatalogRepository) UpsertVehicle(ctx context.Context, v model.Vehicle) error {
	doc := vehicleDocument{
		ID:             v.VehicleID,
		WeightCapacity: v.WeightCapacity,
		VolumeCapacity: v.VolumeCapacity,
		Details:        v.Details,
		UpdatedAt:      time.Now().UTC(),
	}
	_, err := r.vehicles.ReplaceOne(ctx, bson.M{"_id": v.VehicleID}, doc, options.Replace().SetUpsert(true))
	return err
}
