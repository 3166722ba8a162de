//go:build integration

package repository

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/dispatch-service/internal/domain/model"
)

func TestVehicleLocker_Integration(t *testing.T) {
	ctx := context.Background()
	client := setupRedisFromSharedContainer(t)
	locker := NewVehicleLocker(client, 5*time.Second)

	var (
		wg       sync.WaitGroup
		obtained atomic.Int32
		releases = make(chan func(context.Context) error, 10)
	)
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			release, err := locker.Lock(ctx, "T-race")
			if err == nil {
				obtained.Add(1)
				releases <- release
				return
			}
			assert.ErrorIs(t, err, ErrVehicleLocked)
		}()
	}
	wg.Wait()
	close(releases)

	assert.Equal(t, int32(1), obtained.Load())
	for release := range releases {
		require.NoError(t, release(ctx))
	}
}

func TestRedisDraftMirror_Integration(t *testing.T) {
	ctx := context.Background()
	client := setupRedisFromSharedContainer(t)
	mirror := NewRedisDraftMirror(client, time.Minute)

	c := model.Composition{VehicleID: "T-9", Items: []model.LineItem{{SKU: "A1", Quantity: 3}}}
	require.NoError(t, mirror.Save(ctx, t.Name(), c))

	got, found, err := mirror.Load(ctx, t.Name())
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, 3, got.Items[0].Quantity)

	ttl, err := client.TTL(ctx, draftKeyPrefix+t.Name()).Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, 50*time.Second)
}
