package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"log/slog"

	"github.com/dmitrymomot/circuitcheck/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("creates JSON logger", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf))
		require.NotNil(t, log)
		log.Info("hello")
		var entry map[string]any
		err := json.Unmarshal(buf.Bytes(), &entry)
		require.NoError(t, err)
		assert.Equal(t, "INFO", entry["level"])
		assert.Equal(t, "hello", entry["msg"])
	})

	t.Run("text format", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(
			logger.WithOutput(buf),
			logger.WithFormat(logger.FormatText),
			logger.WithLevel(slog.LevelWarn),
		)
		log.Info("dropped")
		log.Warn("hello")
		out := buf.String()
		assert.Contains(t, out, "level=WARN")
		assert.Contains(t, out, "hello")
		assert.NotContains(t, out, "dropped")
	})

	t.Run("includes default attributes", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(
			logger.WithOutput(buf),
			logger.WithAttr(slog.String("svc", "test")),
		)
		log.Info("msg")
		var entry map[string]any
		err := json.Unmarshal(buf.Bytes(), &entry)
		require.NoError(t, err)
		assert.Equal(t, "test", entry["svc"])
	})

	t.Run("extracts from context", func(t *testing.T) {
		buf := &bytes.Buffer{}
		type key string
		ctxKey := key("id")
		log := logger.New(
			logger.WithOutput(buf),
			logger.WithContextExtractors(func(ctx context.Context) (slog.Attr, bool) {
				if v := ctx.Value(ctxKey); v != nil {
					return slog.String("id", v.(string)), true
				}
				return slog.Attr{}, false
			}),
		)
		ctx := context.WithValue(context.Background(), ctxKey, "42")
		log.InfoContext(ctx, "context msg")
		var entry map[string]any
		err := json.Unmarshal(buf.Bytes(), &entry)
		require.NoError(t, err)
		assert.Equal(t, "42", entry["id"])
	})
}

func TestSetAsDefault(t *testing.T) {
	buf := &bytes.Buffer{}
	log := logger.New(logger.WithOutput(buf))
	logger.SetAsDefault(log)
	slog.Info("default")
	var entry map[string]any
	err := json.Unmarshal(buf.Bytes(), &entry)
	require.NoError(t, err)
	assert.Equal(t, "default", entry["msg"])
}

func TestWithFormatPanics(t *testing.T) {
	assert.Panics(t, func() {
		logger.New(logger.WithFormat(logger.Format("xml")))
	})
}

func TestWithConfig(t *testing.T) {
	t.Run("debug text", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(
			logger.WithConfig(logger.Config{Level: "debug", Format: "TEXT"}),
			logger.WithOutput(buf),
		)
		log.Debug("rule skipped", logger.RuleID("voltage_drop"))
		out := buf.String()
		assert.Contains(t, out, "level=DEBUG")
		assert.Contains(t, out, "rule_id=voltage_drop")
	})

	t.Run("warn json filters info", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(
			logger.WithConfig(logger.Config{Level: "warn", Format: "json"}),
			logger.WithOutput(buf),
		)
		log.Info("dropped")
		assert.Empty(t, buf.String())
		log.Warn("kept")
		var entry map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		assert.Equal(t, "kept", entry["msg"])
	})

	t.Run("context value", func(t *testing.T) {
		type runKey struct{}
		buf := &bytes.Buffer{}
		log := logger.New(
			logger.WithConfig(logger.Config{Level: "info", Format: "json"}),
			logger.WithOutput(buf),
			logger.WithContextValue("run_id", runKey{}),
		)
		log.InfoContext(context.WithValue(context.Background(), runKey{}, "r-1"), "batch validated")
		var entry map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		assert.Equal(t, "r-1", entry["run_id"])
	})

	t.Run("invalid level panics", func(t *testing.T) {
		assert.Panics(t, func() {
			logger.New(logger.WithConfig(logger.Config{Level: "loud", Format: "json"}))
		})
	})
}

func TestConfig_Validate(t *testing.T) {
	assert.NoError(t, logger.Config{Level: "debug", Format: " JSON "}.Validate())
	assert.NoError(t, logger.Config{Level: "", Format: "text"}.Validate())
	assert.Error(t, logger.Config{Level: "loud", Format: "text"}.Validate())
	assert.Error(t, logger.Config{Level: "info", Format: "xml"}.Validate())
	assert.Error(t, logger.Config{Level: "info"}.Validate(), "empty format")
}

func TestParseLevel(t *testing.T) {
	l, err := logger.ParseLevel("")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelInfo, l)

	l, err = logger.ParseLevel("error")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelError, l)

	_, err = logger.ParseLevel("verbose")
	assert.Error(t, err)
}

func TestDiscard(t *testing.T) {
	log := logger.Discard()
	require.NotNil(t, log)
	assert.False(t, log.Enabled(context.Background(), slog.LevelError))
}
