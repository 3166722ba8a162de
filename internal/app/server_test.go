//go:build !integration

package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestNewServer(t *testing.T) {
	tests := []struct {
		name           string
		requestTimeout time.Duration
		wantWrite      time.Duration
	}{
		{name: "default write timeout", requestTimeout: 10 * time.Second, wantWrite: 15 * time.Second},
		{name: "write timeout follows long request timeout", requestTimeout: 30 * time.Second, wantWrite: 35 * time.Second},
		{name: "no request timeout", requestTimeout: 0, wantWrite: 15 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := NewServer(okHandler(), "8080", tt.requestTimeout)

			require.NotNil(t, server)
			require.NotNil(t, server.httpServer)
			assert.Equal(t, ":8080", server.httpServer.Addr)
			assert.Equal(t, 15*time.Second, server.httpServer.ReadTimeout)
			assert.Equal(t, 5*time.Second, server.httpServer.ReadHeaderTimeout)
			assert.Equal(t, tt.wantWrite, server.httpServer.WriteTimeout)
			assert.Equal(t, 60*time.Second, server.httpServer.IdleTimeout)
			assert.Equal(t, 10*time.Second, server.shutdownTimeout)
		})
	}
}

func TestServer_Shutdown(t *testing.T) {
	server := NewServer(okHandler(), "8080", 10*time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), 1*time.Second)
	defer cancel()

	go func() {
		time.Sleep(100 * time.Millisecond)
		_ = server.httpServer.Shutdown(ctx)
	}()

	err := server.Shutdown()
	assert.NoError(t, err)
}

func TestServer_OnShutdown(t *testing.T) {
	server := NewServer(okHandler(), "8080", 10*time.Second)

	var calls []string
	server.OnShutdown(func() { calls = append(calls, "services") })
	server.OnShutdown(func() { calls = append(calls, "stores") })

	require.NoError(t, server.Shutdown())
	assert.Equal(t, []string{"services", "stores"}, calls)

	// hooks run once
	require.NoError(t, server.Shutdown())
	assert.Len(t, calls, 2)
}

func TestServer_Run(t *testing.T) {
	handler := okHandler()
	server := NewServer(handler, "0", 10*time.Second)

	stopped := make(chan struct{})
	server.OnShutdown(func() { close(stopped) })

	errChan := make(chan error, 1)
	go func() {
		errChan <- server.Run()
	}()

	time.Sleep(100 * time.Millisecond)

	req := httptest.NewRequest(http.MethodGet, "http://localhost:0/", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	proc, _ := os.FindProcess(os.Getpid())
	_ = proc.Signal(syscall.SIGTERM)

	select {
	case err := <-errChan:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Server did not shutdown in time")
	}

	select {
	case <-stopped:
	default:
		t.Fatal("shutdown hook did not run")
	}
}

func TestServer_Run_WithError(t *testing.T) {
	server := NewServer(okHandler(), "invalid-port", 10*time.Second)

	hookRan := make(chan struct{})
	server.OnShutdown(func() { close(hookRan) })

	errChan := make(chan error, 1)
	go func() {
		errChan <- server.Run()
	}()

	select {
	case err := <-errChan:
		assert.Error(t, err)
		<-hookRan
	case <-time.After(1 * time.Second):
		proc, _ := os.FindProcess(os.Getpid())
		_ = proc.Signal(syscall.SIGTERM)
		time.Sleep(100 * time.Millisecond)
	}
}
