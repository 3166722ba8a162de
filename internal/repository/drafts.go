package repository

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/guttosm/dispatch-service/internal/domain/model"
)

const draftKeyPrefix = "dispatch:draft:"

// MongoDraftMirror keeps one draft document per session.
type MongoDraftMirror struct {
	collection *mongo.Collection
}

// NewMongoDraftMirror creates a draft mirror over the drafts collection.
func NewMongoDraftMirror(db *MongoDB) *MongoDraftMirror {
	return &MongoDraftMirror{collection: db.Drafts}
}

// Save upserts the session's draft.
func (m *MongoDraftMirror) Save(ctx context.Context, sessionID string, c model.Composition) error {
	doc := newDraftDocument(sessionID, c)
	_, err := m.collection.ReplaceOne(ctx, bson.M{"_id": sessionID}, doc, options.Replace().SetUpsert(true))
	return err
}

// Load returns the session's draft, if one was saved.
func (m *MongoDraftMirror) Load(ctx context.Context, sessionID string) (model.Composition, bool, error) {
	var doc draftDocument
	err := m.collection.FindOne(ctx, bson.M{"_id": sessionID}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return model.Composition{}, false, nil
	}
	if err != nil {
		return model.Composition{}, false, err
	}
	return doc.toModel(), true, nil
}

// Delete removes the session's draft.
func (m *MongoDraftMirror) Delete(ctx context.Context, sessionID string) error {
	_, err := m.collection.DeleteOne(ctx, bson.M{"_id": sessionID})
	return err
}

// redisDraft is the JSON value stored per session key.
type redisDraft struct {
	Composition model.Composition `json:"composition"`
	SavedAt     time.Time         `json:"saved_at"`
}

// RedisDraftMirror stores drafts as JSON values that expire after ttl.
type RedisDraftMirror struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisDraftMirror creates a draft mirror on Redis. A zero ttl keeps drafts forever.
func NewRedisDraftMirror(client *redis.Client, ttl time.Duration) *RedisDraftMirror {
	return &RedisDraftMirror{client: client, ttl: ttl}
}

// Save writes the session's draft and refreshes its expiry.
func (m *RedisDraftMirror) Save(ctx context.Context, sessionID string, c model.Composition) error {
	data, err := json.Marshal(redisDraft{Composition: c, SavedAt: time.Now().UTC()})
	if err != nil {
		return err
	}
	return m.client.Set(ctx, draftKeyPrefix+sessionID, data, m.ttl).Err()
}

// Load returns the session's draft, if one is stored.
func (m *RedisDraftMirror) Load(ctx context.Context, sessionID string) (model.Composition, bool, error) {
	data, err := m.client.Get(ctx, draftKeyPrefix+sessionID).Bytes()
	if errors.Is(err, redis.Nil) {
		return model.Composition{}, false, nil
	}
	if err != nil {
		return model.Composition{}, false, err
	}

	var d redisDraft
	if err := json.Unmarshal(data, &d); err != nil {
		return model.Composition{}, false, err
	}
	return d.Composition, true, nil
}

// Delete removes the session's draft.
func (m *RedisDraftMirror) Delete(ctx context.Context, sessionID string) error {
	return m.client.Del(ctx, draftKeyPrefix+sessionID).Err()
}

// MemoryDraftMirror keeps drafts in process memory. Used when no store is configured.
type MemoryDraftMirror struct {
	mu     sync.RWMutex
	drafts map[string]model.Composition
}

// NewMemoryDraftMirror creates an empty in-memory mirror.
func NewMemoryDraftMirror() *MemoryDraftMirror {
	return &MemoryDraftMirror{drafts: make(map[string]model.Composition)}
}

func (m *MemoryDraftMirror) Save(_ context.Context, sessionID string, c model.Composition) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.drafts[sessionID] = c.Clone()
	return nil
}

func (m *MemoryDraftMirror) Load(_ context.Context, sessionID string) (model.Composition, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	c, ok := m.drafts[sessionID]
	if !ok {
		return model.Composition{}, false, nil
	}
	return c.Clone(), true, nil
}

func (m *MemoryDraftMirror) Delete(_ context.Context, sessionID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.drafts, sessionID)
	return nil
}
