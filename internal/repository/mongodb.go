// Package repository provides the MongoDB and Redis backed stores of the dispatch service.
package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoConfig holds MongoDB connection pool configuration.
type MongoConfig struct {
	// MaxPoolSize is the maximum number of connections in the pool.
	MaxPoolSize uint64
	// MinPoolSize is the minimum number of connections to keep in the pool.
	MinPoolSize uint64
	// MaxConnIdleTime is how long a connection can remain idle before being closed.
	MaxConnIdleTime time.Duration
	// ConnectTimeout is the timeout for establishing a connection.
	ConnectTimeout time.Duration
	// ServerSelectionTimeout is how long to wait for server selection.
	ServerSelectionTimeout time.Duration
	// SocketTimeout is the timeout for socket read/write operations.
	SocketTimeout time.Duration
	// EnableCompression enables wire protocol compression.
	EnableCompression bool
}

// DefaultMongoConfig returns production-optimized MongoDB configuration.
func DefaultMongoConfig() MongoConfig {
	return MongoConfig{
		MaxPoolSize:            50,
		MinPoolSize:            10,
		MaxConnIdleTime:        10 * time.Minute,
		ConnectTimeout:         10 * time.Second,
		ServerSelectionTimeout: 5 * time.Second,
		SocketTimeout:          30 * time.Second,
		EnableCompression:      true,
	}
}

// MongoDB provides MongoDB client and database access.
type MongoDB struct {
	Client     *mongo.Client
	Database   *mongo.Database
	StockItems *mongo.Collection
	Vehicles   *mongo.Collection
	Orders     *mongo.Collection
	Drafts     *mongo.Collection
	AuditLogs  *mongo.Collection
}

// NewMongoDB creates a new MongoDB connection with default configuration.
func NewMongoDB(uri, databaseName string) (*MongoDB, error) {
	return NewMongoDBWithConfig(uri, databaseName, DefaultMongoConfig())
}

// NewMongoDBWithConfig creates a new MongoDB connection with custom configuration.
func NewMongoDBWithConfig(uri, databaseName string, cfg MongoConfig) (*MongoDB, error) {
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ConnectTimeout)
	defer cancel()

	clientOptions := options.Client().
		ApplyURI(uri).
		SetMaxPoolSize(cfg.MaxPoolSize).
		SetMinPoolSize(cfg.MinPoolSize).
		SetMaxConnIdleTime(cfg.MaxConnIdleTime).
		SetConnectTimeout(cfg.ConnectTimeout).
		SetServerSelectionTimeout(cfg.ServerSelectionTimeout).
		SetSocketTimeout(cfg.SocketTimeout)

	if cfg.EnableCompression {
		clientOptions.SetCompressors([]string{"zstd", "snappy", "zlib"})
	}

	clientOptions.SetRetryWrites(true)
	clientOptions.SetRetryReads(true)

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, err
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, err
	}

	db := client.Database(databaseName)
	mongoDB := &MongoDB{
		Client:     client,
		Database:   db,
		StockItems: db.Collection("stock_items"),
		Vehicles:   db.Collection("vehicles"),
		Orders:     db.Collection("orders"),
		Drafts:     db.Collection("drafts"),
		AuditLogs:  db.Collection("audit_logs"),
	}

	if err := mongoDB.createIndexes(ctx); err != nil {
		return nil, err
	}

	return mongoDB, nil
}

// createIndexes creates necessary indexes for collections.
func (m *MongoDB) createIndexes(ctx context.Context) error {
	// Every stored order is open; cancellation deletes. The unique index makes
	// the insert itself the availability check for the vehicle.
	vehicleIndex := mongo.IndexModel{
		Keys:    bson.D{{Key: "vehicle_id", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("vehicle_id_unique"),
	}
	if _, err := m.Orders.Indexes().CreateOne(ctx, vehicleIndex); err != nil {
		return err
	}

	createdIndex := mongo.IndexModel{
		Keys: bson.D{{Key: "created_at", Value: 1}},
	}
	_, _ = m.Orders.Indexes().CreateOne(ctx, createdIndex)

	draftUpdatedIndex := mongo.IndexModel{
		Keys: bson.D{{Key: "updated_at", Value: 1}},
	}
	_, _ = m.Drafts.Indexes().CreateOne(ctx, draftUpdatedIndex)

	// Audit TTL index is managed by SetAuditTTL
	auditOrderIndex := mongo.IndexModel{
		Keys: bson.D{{Key: "order_id", Value: 1}, {Key: "timestamp", Value: -1}},
	}
	_, _ = m.AuditLogs.Indexes().CreateOne(ctx, auditOrderIndex)

	auditSessionIndex := mongo.IndexModel{
		Keys: bson.D{{Key: "session_id", Value: 1}},
	}
	_, _ = m.AuditLogs.Indexes().CreateOne(ctx, auditSessionIndex)

	return nil
}

// SetAuditTTL replaces the TTL index on the audit collection.
func (m *MongoDB) SetAuditTTL(ctx context.Context, ttlDays int) error {
	_, _ = m.AuditLogs.Indexes().DropOne(ctx, "timestamp_1")

	ttlSeconds := int32(ttlDays * 24 * 60 * 60)
	ttlIndex := mongo.IndexModel{
		Keys:    bson.D{{Key: "timestamp", Value: 1}},
		Options: options.Index().SetExpireAfterSeconds(ttlSeconds),
	}
	_, err := m.AuditLogs.Indexes().CreateOne(ctx, ttlIndex)
	if err != nil && mongo.IsDuplicateKeyError(err) {
		return nil
	}
	return err
}

// SetDraftTTL expires mirrored drafts that have not been touched for ttl.
func (m *MongoDB) SetDraftTTL(ctx context.Context, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	_, _ = m.Drafts.Indexes().DropOne(ctx, "updated_at_1")
	ttlIndex := mongo.IndexModel{
		Keys:    bson.D{{Key: "updated_at", Value: 1}},
		Options: options.Index().SetExpireAfterSeconds(int32(ttl.Seconds())),
	}
	_, err := m.Drafts.Indexes().CreateOne(ctx, ttlIndex)
	return err
}

// Close closes the MongoDB connection.
func (m *MongoDB) Close(ctx context.Context) error {
	return m.Client.Disconnect(ctx)
}

// HealthCheck verifies the MongoDB connection is healthy.
func (m *MongoDB) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return m.Client.Ping(ctx, nil)
}
