package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/guttosm/dispatch-service/internal/domain/model"
)

const defaultAdjustRetries = 3

// OrdersRepository stores confirmed orders. Every stored order is open.
type OrdersRepository struct {
	collection    *mongo.Collection
	adjustRetries int
}

// NewOrdersRepository creates a new orders repository.
func NewOrdersRepository(db *MongoDB) *OrdersRepository {
	return &OrdersRepository{
		collection:    db.Orders,
		adjustRetries: defaultAdjustRetries,
	}
}

// ListOpen returns all open orders, oldest first.
func (r *OrdersRepository) ListOpen(ctx context.Context) ([]model.Order, error) {
	cursor, err := r.collection.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var docs []orderDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	orders := make([]model.Order, len(docs))
	for i, d := range docs {
		orders[i] = d.toModel()
	}
	return orders, nil
}

// Get returns one order.
func (r *OrdersRepository) Get(ctx context.Context, id string) (model.Order, error) {
	var doc orderDocument
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return model.Order{}, model.ErrOrderNotFound
	}
	if err != nil {
		return model.Order{}, err
	}
	return doc.toModel(), nil
}

// Append inserts the order. The unique vehicle index rejects a second open
// order for the same vehicle with model.ErrVehicleAssigned. Re-appending an
// order id that already exists succeeds without writing.
func (r *OrdersRepository) Append(ctx context.Context, order model.Order) (string, error) {
	_, err := r.collection.InsertOne(ctx, newOrderDocument(order))
	if err == nil {
		return order.ID, nil
	}
	if !mongo.IsDuplicateKeyError(err) {
		return "", err
	}

	existing, getErr := r.Get(ctx, order.ID)
	return resolveDuplicate(order, existing, getErr)
}

// resolveDuplicate decides a duplicate-key insert from the lookup of the
// order's own id. Only a missing or different order means the vehicle is
// taken; a failed lookup is returned as is.
func resolveDuplicate(order, existing model.Order, getErr error) (string, error) {
	switch {
	case getErr == nil && existing.VehicleID == order.VehicleID:
		return existing.ID, nil
	case getErr == nil, errors.Is(getErr, model.ErrOrderNotFound):
		return "", model.ErrVehicleAssigned
	default:
		return "", fmt.Errorf("look up order %s after duplicate key: %w", order.ID, getErr)
	}
}

// AdjustItemQuantity sets one line's quantity and rewrites all three totals
// in the same conditional update. Concurrent edits are retried.
func (r *OrdersRepository) AdjustItemQuantity(ctx context.Context, id string, index, quantity int) (model.Order, error) {
	return r.update(ctx, id, func(current model.Order) (model.Order, bool, error) {
		next, ok := current.WithQuantity(index, quantity)
		if !ok {
			return model.Order{}, false, model.ErrLineItemIndex
		}
		return next, true, nil
	})
}

// StepItemQuantity adds delta to one line's quantity. A step that would take
// the quantity below one leaves the order unchanged.
func (r *OrdersRepository) StepItemQuantity(ctx context.Context, id string, index, delta int) (model.Order, error) {
	return r.update(ctx, id, func(current model.Order) (model.Order, bool, error) {
		if index < 0 || index >= len(current.Items) {
			return model.Order{}, false, model.ErrLineItemIndex
		}
		quantity := current.Items[index].Quantity + delta
		if quantity < 1 || delta == 0 {
			return current, false, nil
		}
		next, _ := current.WithQuantity(index, quantity)
		return next, true, nil
	})
}

// update applies fn to the stored order under optimistic locking on version.
func (r *OrdersRepository) update(ctx context.Context, id string, fn func(model.Order) (model.Order, bool, error)) (model.Order, error) {
	var lastErr error
	for attempt := 0; attempt < r.adjustRetries; attempt++ {
		current, err := r.Get(ctx, id)
		if err != nil {
			return model.Order{}, err
		}

		next, changed, err := fn(current)
		if err != nil {
			return model.Order{}, err
		}
		if !changed {
			return current, nil
		}
		next.Version = current.Version + 1
		next.UpdatedAt = time.Now().UTC()

		lastErr = r.replace(ctx, next, current.Version)
		if lastErr == nil {
			return next, nil
		}
		if !errors.Is(lastErr, model.ErrVersionConflict) {
			return model.Order{}, lastErr
		}
	}
	return model.Order{}, lastErr
}

func (r *OrdersRepository) replace(ctx context.Context, order model.Order, expectedVersion int) error {
	doc := newOrderDocument(order)
	res, err := r.collection.UpdateOne(ctx,
		bson.M{"_id": order.ID, "version": expectedVersion},
		bson.M{"$set": bson.M{
			"items":        doc.Items,
			"total_weight": doc.TotalWeight,
			"total_volume": doc.TotalVolume,
			"total_value":  doc.TotalValue,
			"version":      doc.Version,
			"updated_at":   doc.UpdatedAt,
		}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return model.ErrVersionConflict
	}
	return nil
}

// Remove deletes an order, freeing its vehicle.
func (r *OrdersRepository) Remove(ctx context.Context, id string) error {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return model.ErrOrderNotFound
	}
	return nil
}
