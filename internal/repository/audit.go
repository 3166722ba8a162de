package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// AuditDocument is an audit entry as stored in MongoDB.
type AuditDocument struct {
	ID         primitive.ObjectID     `bson:"_id,omitempty" json:"id"`
	Timestamp  time.Time              `bson:"timestamp" json:"timestamp"`
	Level      string                 `bson:"level" json:"level"`
	Message    string                 `bson:"message" json:"message"`
	RequestID  string                 `bson:"request_id,omitempty" json:"request_id,omitempty"`
	SessionID  string                 `bson:"session_id,omitempty" json:"session_id,omitempty"`
	OrderID    string                 `bson:"order_id,omitempty" json:"order_id,omitempty"`
	VehicleID  string                 `bson:"vehicle_id,omitempty" json:"vehicle_id,omitempty"`
	ActionType string                 `bson:"action_type" json:"action_type"`
	Error      string                 `bson:"error,omitempty" json:"error,omitempty"`
	Fields     map[string]interface{} `bson:"fields,omitempty" json:"fields,omitempty"`
}

// AuditQueryOptions filters audit queries.
type AuditQueryOptions struct {
	OrderID    string
	SessionID  string
	ActionType string
	StartTime  *time.Time
	EndTime    *time.Time
	Limit      int
	Skip       int
}

// AuditRepository stores audit entries.
type AuditRepository struct {
	collection *mongo.Collection
}

// NewAuditRepository creates a new audit repository.
func NewAuditRepository(db *MongoDB) *AuditRepository {
	return &AuditRepository{
		collection: db.AuditLogs,
	}
}

// Create inserts one entry.
func (r *AuditRepository) Create(ctx context.Context, entry *AuditDocument) error {
	prepareAudit(entry)
	_, err := r.collection.InsertOne(ctx, entry)
	return err
}

// CreateMany inserts entries in bulk.
func (r *AuditRepository) CreateMany(ctx context.Context, entries []*AuditDocument) error {
	if len(entries) == 0 {
		return nil
	}

	docs := make([]interface{}, len(entries))
	for i, entry := range entries {
		prepareAudit(entry)
		docs[i] = entry
	}

	_, err := r.collection.InsertMany(ctx, docs)
	return err
}

func prepareAudit(entry *AuditDocument) {
	if entry.ID.IsZero() {
		entry.ID = primitive.NewObjectID()
	}
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now()
	}
}

// Query returns entries matching opts, newest first.
func (r *AuditRepository) Query(ctx context.Context, opts AuditQueryOptions) ([]*AuditDocument, error) {
	findOptions := options.Find().SetSort(bson.M{"timestamp": -1})
	if opts.Limit > 0 {
		findOptions.SetLimit(int64(opts.Limit))
	}
	if opts.Skip > 0 {
		findOptions.SetSkip(int64(opts.Skip))
	}

	cursor, err := r.collection.Find(ctx, auditFilter(opts), findOptions)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var entries []*AuditDocument
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, err
	}

	return entries, nil
}

// Count returns the number of entries matching opts.
func (r *AuditRepository) Count(ctx context.Context, opts AuditQueryOptions) (int64, error) {
	return r.collection.CountDocuments(ctx, auditFilter(opts))
}

func auditFilter(opts AuditQueryOptions) bson.M {
	filter := bson.M{}

	if opts.OrderID != "" {
		filter["order_id"] = opts.OrderID
	}
	if opts.SessionID != "" {
		filter["session_id"] = opts.SessionID
	}
	if opts.ActionType != "" {
		filter["action_type"] = opts.ActionType
	}
	if opts.StartTime != nil || opts.EndTime != nil {
		timeFilter := bson.M{}
		if opts.StartTime != nil {
			timeFilter["$gte"] = *opts.StartTime
		}
		if opts.EndTime != nil {
			timeFilter["$lte"] = *opts.EndTime
		}
		filter["timestamp"] = timeFilter
	}
	return filter
}
