package logging

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStructuredLogger(t *testing.T) {
	t.Run("creates JSON logger with proper configuration", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewStructuredLogger(&buf, slog.LevelInfo)

		logger.Info("test message",
			slog.String("component", "test"),
			slog.Int("count", 42))

		output := buf.String()

		assert.Contains(t, output, `"level":"INFO"`)
		assert.Contains(t, output, `"msg":"test message"`)
		assert.Contains(t, output, `"component":"test"`)
		assert.Contains(t, output, `"count":42`)
		assert.Contains(t, output, `"time":`)
	})

	t.Run("respects log level configuration", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewStructuredLogger(&buf, slog.LevelWarn)

		logger.Debug("debug message")
		logger.Info("info message")
		logger.Warn("warning message")

		output := buf.String()
		assert.NotContains(t, output, "debug message")
		assert.NotContains(t, output, "info message")
		assert.Contains(t, output, "warning message")
	})
}

func TestLogError(t *testing.T) {
	var buf bytes.Buffer
	logger := NewStructuredLogger(&buf, slog.LevelInfo)

	LogError(logger, "route query failed", errors.New("no path found"),
		slog.String("component", "router"))

	output := buf.String()
	assert.Contains(t, output, `"msg":"route query failed"`)
	assert.Contains(t, output, `"error":"no path found"`)
	assert.Contains(t, output, `"component":"router"`)

	// A nil logger must not panic.
	LogError(nil, "ignored", errors.New("ignored"))
}

func TestLogOperationSkipsZeroDurations(t *testing.T) {
	var buf bytes.Buffer
	logger := NewStructuredLogger(&buf, slog.LevelInfo)

	LogOperation(logger, "network_loaded",
		slog.Duration("duration", 0),
		slog.Int("locations", 12))

	output := buf.String()
	assert.Contains(t, output, `"msg":"network_loaded"`)
	assert.Contains(t, output, `"locations":12`)
	assert.NotContains(t, output, `"duration"`)
}

func TestLoggerContextRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	logger := NewStructuredLogger(&buf, slog.LevelInfo)

	ctx := WithLogger(context.Background(), logger)
	assert.Same(t, logger, FromContext(ctx))

	// Without a stored logger, FromContext falls back to the default.
	assert.NotNil(t, FromContext(context.Background()))
}
