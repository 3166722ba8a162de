//go:build integration

package testutil

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync"
	"testing"
	"time"
)

var (
	sharedMu    sync.RWMutex
	sharedMongo *Container
	sharedRedis *Container
)

// SetupTestMainWithMongoDB starts one MongoDB container for the whole package.
//
//	func TestMain(m *testing.M) {
//		os.Exit(testutil.SetupTestMainWithMongoDB(context.Background(), m))
//	}
func SetupTestMainWithMongoDB(ctx context.Context, m *testing.M) int {
	return setupTestMain(ctx, m, false)
}

// SetupTestMainWithContainers starts MongoDB and Redis for the whole package.
func SetupTestMainWithContainers(ctx context.Context, m *testing.M) int {
	return setupTestMain(ctx, m, true)
}

func setupTestMain(ctx context.Context, m *testing.M, withRedis bool) int {
	mongoC, err := SetupMongoDB(ctx)
	if err != nil {
		panic(err)
	}
	var redisC *Container
	if withRedis {
		if redisC, err = SetupRedis(ctx); err != nil {
			_ = mongoC.Cleanup(ctx)
			panic(err)
		}
	}

	sharedMu.Lock()
	sharedMongo, sharedRedis = mongoC, redisC
	sharedMu.Unlock()

	code := m.Run()

	for _, c := range []*Container{mongoC, redisC} {
		if c == nil {
			continue
		}
		if err := c.Cleanup(ctx); err != nil {
			// Docker reaps the container eventually
			_, _ = fmt.Fprintf(os.Stderr, "Warning: failed to cleanup container: %v\n", err)
		}
	}
	return code
}

// GetSharedContainerURI returns the MongoDB URI of the shared container.
func GetSharedContainerURI() string {
	sharedMu.RLock()
	defer sharedMu.RUnlock()
	if sharedMongo == nil {
		panic("shared MongoDB container not initialized - call SetupTestMainWithMongoDB from TestMain")
	}
	return sharedMongo.URI
}

// GetSharedRedisAddr returns host:port of the shared Redis container.
func GetSharedRedisAddr() string {
	sharedMu.RLock()
	defer sharedMu.RUnlock()
	if sharedRedis == nil {
		panic("shared Redis container not initialized - call SetupTestMainWithContainers from TestMain")
	}
	return sharedRedis.URI
}

// SanitizeDBName turns a test name into a unique database name.
func SanitizeDBName(testName string) string {
	sanitized := strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', '.', ' ', '"', '$':
			return '_'
		}
		return r
	}, testName)

	if len(sanitized) > 50 {
		sanitized = sanitized[:50]
	}
	return fmt.Sprintf("%s_%d", sanitized, time.Now().UnixNano()%1000000)
}
