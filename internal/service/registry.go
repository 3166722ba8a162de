package service

import (
	"container/list"
	"hash/fnv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/guttosm/dispatch-service/internal/composition"
	"github.com/guttosm/dispatch-service/internal/metrics"
)

// RegistryConfig sizes the in-memory session registry.
type RegistryConfig struct {
	// Capacity is the total number of sessions kept in memory.
	Capacity int
	// IdleTTL evicts sessions not touched for this long. Zero keeps them.
	IdleTTL time.Duration
	// Shards is rounded up to a power of two.
	Shards int
	// SweepInterval is how often idle sessions are evicted.
	SweepInterval time.Duration
}

// DefaultRegistryConfig returns sensible defaults for the session registry.
func DefaultRegistryConfig() RegistryConfig {
	return RegistryConfig{
		Capacity:      10000,
		IdleTTL:       2 * time.Hour,
		Shards:        16,
		SweepInterval: time.Minute,
	}
}

// sessionEntry owns one session. mu serialises every operation on it.
type sessionEntry struct {
	mu       sync.Mutex
	session  *composition.Session
	restored bool
	warnings []string

	// guarded by the shard lock
	key      string
	lastUsed time.Time
	elem     *list.Element
}

type registryShard struct {
	mu       sync.Mutex
	capacity int
	entries  map[string]*sessionEntry
	lru      *list.List
}

// SessionRegistry keeps live sessions in memory, spread over shards to keep
// lock contention low. Evicted sessions are restored from their draft on
// next use.
type SessionRegistry struct {
	shards     []*registryShard
	shardMask  uint32
	idleTTL    time.Duration
	newSession func(id string) *composition.Session

	size      atomic.Int64
	evictions atomic.Int64
	stopCh    chan struct{}
	stopOnce  sync.Once
}

// NewSessionRegistry creates a registry that builds sessions with newSession.
func NewSessionRegistry(cfg RegistryConfig, newSession func(id string) *composition.Session) *SessionRegistry {
	defaults := DefaultRegistryConfig()
	if cfg.Shards <= 0 {
		cfg.Shards = defaults.Shards
	}
	if cfg.Capacity <= 0 {
		cfg.Capacity = defaults.Capacity
	}
	n := 1
	for n < cfg.Shards {
		n *= 2
	}

	perShard := cfg.Capacity / n
	if perShard < 1 {
		perShard = 1
	}

	r := &SessionRegistry{
		shards:     make([]*registryShard, n),
		shardMask:  uint32(n - 1),
		idleTTL:    cfg.IdleTTL,
		newSession: newSession,
		stopCh:     make(chan struct{}),
	}
	for i := range r.shards {
		r.shards[i] = &registryShard{
			capacity: perShard,
			entries:  make(map[string]*sessionEntry, perShard),
			lru:      list.New(),
		}
	}
	if cfg.IdleTTL > 0 && cfg.SweepInterval > 0 {
		go r.sweepLoop(cfg.SweepInterval)
	}
	return r
}

func (r *SessionRegistry) shardFor(id string) *registryShard {
	h := fnv.New32a()
	_, _ = h.Write([]byte(id))
	return r.shards[h.Sum32()&r.shardMask]
}

// acquire returns the entry for id, creating it when absent. The caller
// locks entry.mu before touching the session.
func (r *SessionRegistry) acquire(id string) *sessionEntry {
	shard := r.shardFor(id)
	shard.mu.Lock()
	defer shard.mu.Unlock()

	if entry, ok := shard.entries[id]; ok {
		entry.lastUsed = time.Now()
		shard.lru.MoveToFront(entry.elem)
		return entry
	}

	entry := &sessionEntry{
		key:      id,
		session:  r.newSession(id),
		lastUsed: time.Now(),
	}
	entry.elem = shard.lru.PushFront(entry)
	shard.entries[id] = entry
	r.size.Add(1)

	if len(shard.entries) > shard.capacity {
		if oldest := shard.lru.Back(); oldest != nil && oldest != entry.elem {
			r.evict(shard, oldest.Value.(*sessionEntry))
		}
	}
	metrics.SetActiveSessions(r.Len())
	return entry
}

func (r *SessionRegistry) evict(shard *registryShard, entry *sessionEntry) {
	delete(shard.entries, entry.key)
	shard.lru.Remove(entry.elem)
	r.size.Add(-1)
	r.evictions.Add(1)
}

// Sweep evicts sessions idle since before now minus the idle TTL and returns
// how many were removed.
func (r *SessionRegistry) Sweep(now time.Time) int {
	if r.idleTTL <= 0 {
		return 0
	}
	cutoff := now.Add(-r.idleTTL)
	removed := 0
	for _, shard := range r.shards {
		shard.mu.Lock()
		for e := shard.lru.Back(); e != nil; {
			entry := e.Value.(*sessionEntry)
			if !entry.lastUsed.Before(cutoff) {
				break
			}
			prev := e.Prev()
			r.evict(shard, entry)
			removed++
			e = prev
		}
		shard.mu.Unlock()
	}
	if removed > 0 {
		metrics.SetActiveSessions(r.Len())
	}
	return removed
}

func (r *SessionRegistry) sweepLoop(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case t := <-ticker.C:
			r.Sweep(t)
		case <-r.stopCh:
			return
		}
	}
}

// Len returns the number of sessions in memory.
func (r *SessionRegistry) Len() int {
	return int(r.size.Load())
}

// Evictions returns how many sessions have been evicted.
func (r *SessionRegistry) Evictions() int64 {
	return r.evictions.Load()
}

// Stop ends the background sweep.
func (r *SessionRegistry) Stop() {
	r.stopOnce.Do(func() {
		close(r.stopCh)
	})
}
