package service_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/dispatch-service/internal/domain/model"
	"github.com/guttosm/dispatch-service/internal/mocks"
	"github.com/guttosm/dispatch-service/internal/repository"
	"github.com/guttosm/dispatch-service/internal/service"
)

func draftWithQuantity(q int) model.Composition {
	return model.Composition{
		VehicleID: "T-1",
		Items:     []model.LineItem{{SKU: "A1", Quantity: q}},
		Pending:   model.EmptyPending(),
	}
}

func TestDraftSyncer_KeepsPublishOrderPerSession(t *testing.T) {
	mirror := repository.NewMemoryDraftMirror()
	syncer := service.NewDraftSyncer(mirror, service.DraftSyncerConfig{Workers: 4, BufferSize: 512})

	for q := 1; q <= 100; q++ {
		for s := 0; s < 3; s++ {
			syncer.Publish(fmt.Sprintf("op-%d", s), draftWithQuantity(q))
		}
	}
	syncer.Stop()

	for s := 0; s < 3; s++ {
		draft, found, err := mirror.Load(context.Background(), fmt.Sprintf("op-%d", s))
		require.NoError(t, err)
		require.True(t, found)
		assert.Equal(t, 100, draft.Items[0].Quantity)
	}
	stats := syncer.Stats()
	assert.Equal(t, int64(300), stats.Enqueued)
	assert.Equal(t, int64(300), stats.Written+stats.Coalesced)
	assert.Zero(t, stats.Dropped)
	assert.Zero(t, stats.Errors)
}

func TestDraftSyncer_EmptyCompositionDeletes(t *testing.T) {
	mirror := repository.NewMemoryDraftMirror()
	syncer := service.NewDraftSyncer(mirror, service.DefaultDraftSyncerConfig())

	syncer.Publish("op-1", draftWithQuantity(2))
	syncer.Publish("op-1", model.EmptyComposition())
	syncer.Stop()

	_, found, err := mirror.Load(context.Background(), "op-1")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestDraftSyncer_LastError(t *testing.T) {
	mirror := new(mocks.MockDraftMirror)
	mirror.On("Save", mock.Anything, "op-1", mock.Anything).Return(errors.New("redis down")).Once()
	mirror.On("Save", mock.Anything, "op-1", mock.Anything).Return(nil).Once()

	syncer := service.NewDraftSyncer(mirror, service.DraftSyncerConfig{Workers: 1, BufferSize: 8})
	defer syncer.Stop()

	syncer.Publish("op-1", draftWithQuantity(1))
	require.Eventually(t, func() bool {
		return syncer.LastError("op-1") != nil
	}, time.Second, 5*time.Millisecond)

	syncer.Publish("op-1", draftWithQuantity(2))
	require.Eventually(t, func() bool {
		return syncer.LastError("op-1") == nil
	}, time.Second, 5*time.Millisecond)

	assert.Equal(t, int64(1), syncer.Stats().Errors)
}

// blockingMirror holds every write until release is closed.
func blockingMirror(release <-chan struct{}, started chan<- string) *mocks.MockDraftMirror {
	mirror := new(mocks.MockDraftMirror)
	hold := func(args mock.Arguments) {
		started <- args.String(1)
		<-release
	}
	mirror.On("Save", mock.Anything, mock.Anything, mock.Anything).Run(hold).Return(nil)
	mirror.On("Delete", mock.Anything, mock.Anything).Run(hold).Return(nil)
	mirror.On("Load", mock.Anything, mock.Anything).Return(model.Composition{}, false, nil)
	return mirror
}

func waitForWrite(t *testing.T, started <-chan string) {
	t.Helper()
	select {
	case <-started:
	case <-time.After(time.Second):
		t.Fatal("worker never picked up the draft")
	}
}

func TestDraftSyncer_LatestDraftWins(t *testing.T) {
	release := make(chan struct{})
	started := make(chan string, 4)
	mirror := blockingMirror(release, started)
	syncer := service.NewDraftSyncer(mirror, service.DraftSyncerConfig{Workers: 1, BufferSize: 1})

	// first is being written, the next two share the session's queued slot
	syncer.Publish("op-1", draftWithQuantity(1))
	waitForWrite(t, started)
	syncer.Publish("op-1", draftWithQuantity(2))
	syncer.Publish("op-1", draftWithQuantity(3))

	draft, found, err := syncer.Load(context.Background(), "op-1")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, 3, draft.Items[0].Quantity)

	close(release)
	syncer.Stop()

	mirror.AssertCalled(t, "Save", mock.Anything, "op-1", draftWithQuantity(1))
	mirror.AssertNotCalled(t, "Save", mock.Anything, "op-1", draftWithQuantity(2))
	mirror.AssertCalled(t, "Save", mock.Anything, "op-1", draftWithQuantity(3))
	mirror.AssertNotCalled(t, "Load", mock.Anything, mock.Anything)

	stats := syncer.Stats()
	assert.Equal(t, int64(3), stats.Enqueued)
	assert.Equal(t, int64(1), stats.Coalesced)
	assert.Equal(t, int64(2), stats.Written)
	assert.Zero(t, stats.Dropped)
	assert.NoError(t, syncer.LastError("op-1"))
}

func TestDraftSyncer_LoadSeesUnwrittenDelete(t *testing.T) {
	release := make(chan struct{})
	started := make(chan string, 4)
	mirror := blockingMirror(release, started)
	syncer := service.NewDraftSyncer(mirror, service.DraftSyncerConfig{Workers: 1, BufferSize: 4})
	defer func() {
		close(release)
		syncer.Stop()
	}()

	syncer.Publish("op-1", draftWithQuantity(2))
	waitForWrite(t, started)
	syncer.Publish("op-1", model.EmptyComposition())

	_, found, err := syncer.Load(context.Background(), "op-1")
	require.NoError(t, err)
	assert.False(t, found)
	mirror.AssertNotCalled(t, "Load", mock.Anything, mock.Anything)
}

func TestDraftSyncer_QueueFullIsReported(t *testing.T) {
	release := make(chan struct{})
	started := make(chan string, 4)
	mirror := blockingMirror(release, started)
	syncer := service.NewDraftSyncer(mirror, service.DraftSyncerConfig{Workers: 1, BufferSize: 1})

	// op-1 occupies the worker, op-2 fills the only queue slot
	syncer.Publish("op-1", draftWithQuantity(1))
	waitForWrite(t, started)
	syncer.Publish("op-2", draftWithQuantity(1))
	syncer.Publish("op-3", draftWithQuantity(7))

	assert.ErrorIs(t, syncer.LastError("op-3"), service.ErrDraftQueueFull)
	assert.Equal(t, int64(1), syncer.Stats().Dropped)

	draft, found, err := syncer.Load(context.Background(), "op-3")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, 7, draft.Items[0].Quantity)

	close(release)
	syncer.Stop()
	assert.NoError(t, syncer.LastError("op-2"))
}

func TestDraftSyncer_PublishAfterStop(t *testing.T) {
	mirror := repository.NewMemoryDraftMirror()
	syncer := service.NewDraftSyncer(mirror, service.DefaultDraftSyncerConfig())
	syncer.Stop()
	syncer.Stop()

	syncer.Publish("op-1", draftWithQuantity(1))
	assert.Equal(t, int64(1), syncer.Stats().Dropped)

	_, found, err := syncer.Load(context.Background(), "op-1")
	require.NoError(t, err)
	assert.False(t, found)
}
