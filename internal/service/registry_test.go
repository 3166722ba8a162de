package service

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/guttosm/dispatch-service/internal/composition"
)

func newTestRegistry(cfg RegistryConfig) (*SessionRegistry, *int) {
	created := 0
	view := composition.NewView()
	r := NewSessionRegistry(cfg, func(id string) *composition.Session {
		created++
		return composition.NewSession(id, view)
	})
	return r, &created
}

func TestSessionRegistry_AcquireReusesEntry(t *testing.T) {
	r, created := newTestRegistry(RegistryConfig{Capacity: 16, Shards: 4})
	defer r.Stop()

	first := r.acquire("op-1")
	second := r.acquire("op-1")

	assert.Same(t, first, second)
	assert.Equal(t, 1, *created)
	assert.Equal(t, 1, r.Len())
	assert.Equal(t, "op-1", first.session.ID())
}

func TestSessionRegistry_EvictsLeastRecentlyUsed(t *testing.T) {
	r, _ := newTestRegistry(RegistryConfig{Capacity: 2, Shards: 1})
	defer r.Stop()

	op1 := r.acquire("op-1")
	r.acquire("op-2")
	r.acquire("op-1")
	r.acquire("op-3")

	assert.Equal(t, 2, r.Len())
	assert.Equal(t, int64(1), r.Evictions())
	assert.Same(t, op1, r.acquire("op-1"), "recently used session survives")
}

func TestSessionRegistry_Sweep(t *testing.T) {
	r, _ := newTestRegistry(RegistryConfig{Capacity: 64, Shards: 4, IdleTTL: time.Minute})
	defer r.Stop()

	for i := 0; i < 10; i++ {
		r.acquire(fmt.Sprintf("op-%d", i))
	}

	assert.Zero(t, r.Sweep(time.Now()))
	assert.Equal(t, 10, r.Sweep(time.Now().Add(2*time.Minute)))
	assert.Zero(t, r.Len())
}

func TestSessionRegistry_SweepDisabled(t *testing.T) {
	r, _ := newTestRegistry(RegistryConfig{Capacity: 8})
	defer r.Stop()

	r.acquire("op-1")
	assert.Zero(t, r.Sweep(time.Now().Add(24*time.Hour)))
}
