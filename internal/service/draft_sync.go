package service

import (
	"context"
	"errors"
	"hash/fnv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/guttosm/dispatch-service/internal/domain/model"
	"github.com/guttosm/dispatch-service/internal/logger"
	"github.com/guttosm/dispatch-service/internal/metrics"
	"github.com/guttosm/dispatch-service/internal/repository"
)

// DraftSyncerConfig holds configuration for the draft syncer.
type DraftSyncerConfig struct {
	// Workers is the number of worker goroutines. Each owns one queue.
	Workers int
	// BufferSize is the capacity of each worker's queue.
	BufferSize int
	// WriteTimeout bounds a single mirror call.
	WriteTimeout time.Duration
}

// DefaultDraftSyncerConfig returns sensible defaults for the draft syncer.
func DefaultDraftSyncerConfig() DraftSyncerConfig {
	return DraftSyncerConfig{
		Workers:      4,
		BufferSize:   256,
		WriteTimeout: 3 * time.Second,
	}
}

// ErrDraftQueueFull is recorded as a session's last error when its draft
// could not be queued for mirroring.
var ErrDraftQueueFull = errors.New("draft sync queue full")

// DraftSyncStats is a point-in-time view of the syncer counters.
type DraftSyncStats struct {
	Enqueued  int64
	Coalesced int64
	Dropped   int64
	Written   int64
	Errors    int64
}

// pendingDraft is the newest composition published for a session that the
// mirror has not confirmed yet.
type pendingDraft struct {
	composition model.Composition
	gen         uint64
	queued      bool
}

// DraftSyncer writes compositions to a DraftMirror off the request path.
// Publishes for one session coalesce into a single pending slot, so the
// mirror always ends up with the latest composition. Until that write lands
// Load answers from the slot.
type DraftSyncer struct {
	mirror       repository.DraftMirror
	queues       []chan string
	wg           sync.WaitGroup
	stopCh       chan struct{}
	stopOnce     sync.Once
	writeTimeout time.Duration

	mu       sync.Mutex
	stopped  bool
	pending  map[string]*pendingDraft
	failures map[string]error

	enqueued  atomic.Int64
	coalesced atomic.Int64
	dropped   atomic.Int64
	written   atomic.Int64
	errors    atomic.Int64
}

// NewDraftSyncer starts the worker pool.
func NewDraftSyncer(mirror repository.DraftMirror, cfg DraftSyncerConfig) *DraftSyncer {
	defaults := DefaultDraftSyncerConfig()
	if cfg.Workers <= 0 {
		cfg.Workers = defaults.Workers
	}
	if cfg.BufferSize <= 0 {
		cfg.BufferSize = defaults.BufferSize
	}
	if cfg.WriteTimeout <= 0 {
		cfg.WriteTimeout = defaults.WriteTimeout
	}

	d := &DraftSyncer{
		mirror:       mirror,
		queues:       make([]chan string, cfg.Workers),
		stopCh:       make(chan struct{}),
		writeTimeout: cfg.WriteTimeout,
		pending:      make(map[string]*pendingDraft),
		failures:     make(map[string]error),
	}
	for i := range d.queues {
		d.queues[i] = make(chan string, cfg.BufferSize)
		d.wg.Add(1)
		go d.worker(d.queues[i])
	}
	return d
}

func (d *DraftSyncer) worker(queue chan string) {
	defer d.wg.Done()

	for {
		select {
		case sessionID := <-queue:
			d.write(sessionID)
		case <-d.stopCh:
			for {
				select {
				case sessionID := <-queue:
					d.write(sessionID)
				default:
					return
				}
			}
		}
	}
}

func (d *DraftSyncer) write(sessionID string) {
	d.mu.Lock()
	slot, ok := d.pending[sessionID]
	if !ok {
		d.mu.Unlock()
		return
	}
	slot.queued = false
	c, gen := slot.composition, slot.gen
	d.mu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), d.writeTimeout)
	defer cancel()

	var err error
	if c.IsEmpty() {
		err = d.mirror.Delete(ctx, sessionID)
	} else {
		err = d.mirror.Save(ctx, sessionID, c)
	}

	d.mu.Lock()
	if err != nil {
		d.failures[sessionID] = err
	} else {
		delete(d.failures, sessionID)
		// a failed write keeps the slot so Load still sees the latest draft
		if cur, ok := d.pending[sessionID]; ok && cur == slot && cur.gen == gen {
			delete(d.pending, sessionID)
		}
	}
	d.mu.Unlock()
	d.reportDepth()

	if err != nil {
		d.errors.Add(1)
		metrics.RecordDraftSync("error")
		log := logger.Logger()
		log.Warn().Err(err).Str("session_id", sessionID).Msg("Failed to mirror composition draft")
		return
	}
	d.written.Add(1)
	metrics.RecordDraftSync("success")
}

// Publish queues the composition for mirroring. An empty composition removes
// the session's draft. A publish replaces any draft of the same session that
// is still waiting to be written. When the session cannot be queued the
// draft is kept for Load and the failure is reported through LastError.
func (d *DraftSyncer) Publish(sessionID string, c model.Composition) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		d.dropped.Add(1)
		metrics.RecordDraftSync("dropped")
		return
	}

	slot, ok := d.pending[sessionID]
	if !ok {
		slot = &pendingDraft{}
		d.pending[sessionID] = slot
	}
	slot.composition = c.Clone()
	slot.gen++

	if slot.queued {
		d.enqueued.Add(1)
		d.coalesced.Add(1)
		metrics.RecordDraftSync("coalesced")
		return
	}

	select {
	case d.queueFor(sessionID) <- sessionID:
		slot.queued = true
		d.enqueued.Add(1)
		d.reportDepth()
	default:
		d.failures[sessionID] = ErrDraftQueueFull
		d.dropped.Add(1)
		metrics.RecordDraftSync("dropped")
		log := logger.Logger()
		log.Warn().Str("session_id", sessionID).Msg("Draft sync queue full, draft not mirrored")
	}
}

// Load returns the session's latest draft: the one waiting to be written
// when there is one, the mirrored draft otherwise.
func (d *DraftSyncer) Load(ctx context.Context, sessionID string) (model.Composition, bool, error) {
	d.mu.Lock()
	if slot, ok := d.pending[sessionID]; ok {
		c := slot.composition.Clone()
		d.mu.Unlock()
		if c.IsEmpty() {
			return model.Composition{}, false, nil
		}
		return c, true, nil
	}
	d.mu.Unlock()
	return d.mirror.Load(ctx, sessionID)
}

// LastError returns the error of the session's most recent failed write, or
// nil once a later write succeeded.
func (d *DraftSyncer) LastError(sessionID string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.failures[sessionID]
}

// Stop drains the queues and waits for the workers to exit.
func (d *DraftSyncer) Stop() {
	d.stopOnce.Do(func() {
		d.mu.Lock()
		d.stopped = true
		d.mu.Unlock()
		close(d.stopCh)
		d.wg.Wait()
		d.reportDepth()
	})
}

// Stats returns current syncer counters.
func (d *DraftSyncer) Stats() DraftSyncStats {
	return DraftSyncStats{
		Enqueued:  d.enqueued.Load(),
		Coalesced: d.coalesced.Load(),
		Dropped:   d.dropped.Load(),
		Written:   d.written.Load(),
		Errors:    d.errors.Load(),
	}
}

func (d *DraftSyncer) queueFor(sessionID string) chan string {
	h := fnv.New32a()
	_, _ = h.Write([]byte(sessionID))
	return d.queues[h.Sum32()%uint32(len(d.queues))]
}

func (d *DraftSyncer) reportDepth() {
	depth := 0
	for _, q := range d.queues {
		depth += len(q)
	}
	metrics.SetDraftQueueDepth(depth)
}
