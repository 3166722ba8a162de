package service

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/guttosm/dispatch-service/internal/domain/model"
	"github.com/guttosm/dispatch-service/internal/logger"
	"github.com/guttosm/dispatch-service/internal/repository"
)

// Audit action types.
const (
	AuditActionConfirm        = "confirm"
	AuditActionAdjustQuantity = "adjust_quantity"
	AuditActionStepQuantity   = "step_quantity"
	AuditActionCancel         = "cancel"
	AuditActionDiscard        = "discard"
)

// AuditService defines the interface for audit trail operations.
type AuditService interface {
	// Record stores a single audit entry.
	Record(ctx context.Context, entry *model.AuditEntry) error

	// Query retrieves audit entries matching q, newest first.
	Query(ctx context.Context, q model.AuditQuery) ([]model.AuditEntry, error)

	// Count returns how many audit entries match q.
	Count(ctx context.Context, q model.AuditQuery) (int64, error)
}

// AuditServiceImpl implements the AuditService interface.
type AuditServiceImpl struct {
	repo repository.AuditRepositoryInterface
}

// NewAuditService creates a new audit service implementation.
func NewAuditService(repo repository.AuditRepositoryInterface) AuditService {
	return &AuditServiceImpl{repo: repo}
}

func (s *AuditServiceImpl) Record(ctx context.Context, entry *model.AuditEntry) error {
	if s.repo == nil {
		return ErrRepositoryNotConfigured
	}
	return s.repo.Create(ctx, toAuditDocument(entry))
}

func (s *AuditServiceImpl) Query(ctx context.Context, q model.AuditQuery) ([]model.AuditEntry, error) {
	if s.repo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	docs, err := s.repo.Query(ctx, toAuditOptions(q))
	if err != nil {
		return nil, err
	}
	entries := make([]model.AuditEntry, len(docs))
	for i, doc := range docs {
		entries[i] = fromAuditDocument(doc)
	}
	return entries, nil
}

func (s *AuditServiceImpl) Count(ctx context.Context, q model.AuditQuery) (int64, error) {
	if s.repo == nil {
		return 0, ErrRepositoryNotConfigured
	}
	return s.repo.Count(ctx, toAuditOptions(q))
}

func toAuditOptions(q model.AuditQuery) repository.AuditQueryOptions {
	return repository.AuditQueryOptions{
		OrderID:    q.OrderID,
		SessionID:  q.SessionID,
		ActionType: q.ActionType,
		StartTime:  q.StartTime,
		EndTime:    q.EndTime,
		Limit:      q.Limit,
	}
}

func toAuditDocument(entry *model.AuditEntry) *repository.AuditDocument {
	doc := &repository.AuditDocument{
		Timestamp:  entry.Timestamp,
		Level:      entry.Level,
		Message:    entry.Message,
		RequestID:  entry.RequestID,
		SessionID:  entry.SessionID,
		OrderID:    entry.OrderID,
		VehicleID:  entry.VehicleID,
		ActionType: entry.ActionType,
		Error:      entry.Error,
		Fields:     entry.Fields,
	}
	if id, err := primitive.ObjectIDFromHex(entry.ID); err == nil {
		doc.ID = id
	}
	if doc.Timestamp.IsZero() {
		doc.Timestamp = time.Now().UTC()
	}
	return doc
}

func fromAuditDocument(doc *repository.AuditDocument) model.AuditEntry {
	return model.AuditEntry{
		ID:         doc.ID.Hex(),
		Timestamp:  doc.Timestamp,
		Level:      doc.Level,
		Message:    doc.Message,
		RequestID:  doc.RequestID,
		SessionID:  doc.SessionID,
		OrderID:    doc.OrderID,
		VehicleID:  doc.VehicleID,
		ActionType: doc.ActionType,
		Error:      doc.Error,
		Fields:     doc.Fields,
	}
}

// AsyncAuditorConfig holds configuration for the async auditor.
type AsyncAuditorConfig struct {
	// BufferSize is the size of the entry channel buffer.
	BufferSize int
	// NumWorkers is the number of worker goroutines writing entries.
	NumWorkers int
	// WriteTimeout is the timeout for writing one entry.
	WriteTimeout time.Duration
}

// DefaultAsyncAuditorConfig returns sensible defaults for the async auditor.
func DefaultAsyncAuditorConfig() AsyncAuditorConfig {
	return AsyncAuditorConfig{
		BufferSize:   1000,
		NumWorkers:   2,
		WriteTimeout: 5 * time.Second,
	}
}

// AsyncAuditor writes audit entries from a bounded worker pool so request
// handlers never wait on the audit store.
type AsyncAuditor struct {
	service      AuditService
	entryCh      chan *model.AuditEntry
	wg           sync.WaitGroup
	stopCh       chan struct{}
	stopOnce     sync.Once
	stopped      atomic.Bool
	writeTimeout time.Duration

	enqueued atomic.Int64
	dropped  atomic.Int64
	written  atomic.Int64
	errors   atomic.Int64
}

// NewAsyncAuditor starts the worker pool. It returns nil when service is nil.
func NewAsyncAuditor(service AuditService, cfg AsyncAuditorConfig) *AsyncAuditor {
	if service == nil {
		return nil
	}
	defaults := DefaultAsyncAuditorConfig()
	if cfg.BufferSize <= 0 {
		cfg.BufferSize = defaults.BufferSize
	}
	if cfg.NumWorkers <= 0 {
		cfg.NumWorkers = defaults.NumWorkers
	}
	if cfg.WriteTimeout <= 0 {
		cfg.WriteTimeout = defaults.WriteTimeout
	}

	a := &AsyncAuditor{
		service:      service,
		entryCh:      make(chan *model.AuditEntry, cfg.BufferSize),
		stopCh:       make(chan struct{}),
		writeTimeout: cfg.WriteTimeout,
	}
	for i := 0; i < cfg.NumWorkers; i++ {
		a.wg.Add(1)
		go a.worker()
	}
	return a
}

func (a *AsyncAuditor) worker() {
	defer a.wg.Done()

	for {
		select {
		case entry := <-a.entryCh:
			a.write(entry)
		case <-a.stopCh:
			for {
				select {
				case entry := <-a.entryCh:
					a.write(entry)
				default:
					return
				}
			}
		}
	}
}

func (a *AsyncAuditor) write(entry *model.AuditEntry) {
	ctx, cancel := context.WithTimeout(context.Background(), a.writeTimeout)
	defer cancel()

	if err := a.service.Record(ctx, entry); err != nil {
		a.errors.Add(1)
		log := logger.Logger()
		log.Warn().Err(err).Str("action_type", entry.ActionType).Msg("Failed to write audit entry")
		return
	}
	a.written.Add(1)
}

// Record enqueues entry. It returns false when the buffer is full or the
// auditor has stopped.
func (a *AsyncAuditor) Record(entry *model.AuditEntry) bool {
	if a == nil || a.stopped.Load() {
		return false
	}
	select {
	case a.entryCh <- entry:
		a.enqueued.Add(1)
		return true
	default:
		a.dropped.Add(1)
		return false
	}
}

// Stop drains pending entries and waits for the workers to exit.
func (a *AsyncAuditor) Stop() {
	if a == nil {
		return
	}
	a.stopOnce.Do(func() {
		a.stopped.Store(true)
		close(a.stopCh)
		a.wg.Wait()
	})
}

// Stats returns current auditor counters.
func (a *AsyncAuditor) Stats() (enqueued, dropped, written, errors int64) {
	return a.enqueued.Load(), a.dropped.Load(), a.written.Load(), a.errors.Load()
}
