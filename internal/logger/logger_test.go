//go:build !integration

package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit(t *testing.T) {
	tests := []struct {
		name      string
		level     string
		pretty    bool
		wantLevel zerolog.Level
	}{
		{name: "debug level", level: "debug", wantLevel: zerolog.DebugLevel},
		{name: "info level", level: "info", wantLevel: zerolog.InfoLevel},
		{name: "warn level", level: "warn", wantLevel: zerolog.WarnLevel},
		{name: "error level", level: "error", wantLevel: zerolog.ErrorLevel},
		{name: "empty level defaults to info", level: "", wantLevel: zerolog.InfoLevel},
		{name: "invalid level defaults to info", level: "invalid", wantLevel: zerolog.InfoLevel},
		{name: "pretty output", level: "info", pretty: true, wantLevel: zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			Init(tt.level, tt.pretty)
			assert.Equal(t, tt.wantLevel, zerolog.GlobalLevel())
			assert.NotNil(t, Logger())
		})
	}
	Init("info", false)
}

func captureGlobal(t *testing.T) *bytes.Buffer {
	t.Helper()
	original := log.Logger
	t.Cleanup(func() { log.Logger = original })

	var buf bytes.Buffer
	log.Logger = zerolog.New(&buf).With().Str("service", ServiceName).Logger()
	return &buf
}

func TestFromContext(t *testing.T) {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	t.Run("request logger carries the request id", func(t *testing.T) {
		buf := captureGlobal(t)
		ctx := WithRequestID(context.Background(), "req-42")

		FromContext(ctx).Info().Msg("hello")

		var line map[string]interface{}
		require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
		assert.Equal(t, "req-42", line["request_id"])
		assert.Equal(t, ServiceName, line["service"])
		assert.Equal(t, "hello", line["message"])
	})

	t.Run("falls back to the global logger", func(t *testing.T) {
		buf := captureGlobal(t)

		FromContext(context.Background()).Info().Msg("plain")

		var line map[string]interface{}
		require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
		assert.NotContains(t, line, "request_id")
	})

	t.Run("nil context", func(t *testing.T) {
		//nolint:staticcheck // exercising the nil guard
		assert.NotNil(t, FromContext(nil))
	})
}
