package logger_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/xraph/dashub/internal/logger"
)

// TestNoopLogger ensures the noop logger implements the interface and never panics.
func TestNoopLogger(t *testing.T) {
	noopLog := logger.NewNoopLogger()

	var _ logger.Logger = noopLog

	noopLog.Debug("debug message")
	noopLog.Info("info message", logger.String("k", "v"))
	noopLog.Warn("warn message")
	noopLog.Error("error message", logger.Err(errors.New("boom")))

	named := noopLog.Named("test").With(logger.Int("n", 1))
	assert.NotNil(t, named)
	assert.NoError(t, noopLog.Sync())
}

func TestWithContextAddsRequestID(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	log := logger.NewFromZap(zap.New(core))

	ctx := logger.WithRequestID(context.Background(), "req-123")
	log.WithContext(ctx).Info("rendered sidebar", logger.Duration("took", time.Millisecond))

	require.Equal(t, 1, logs.Len())
	fields := logs.All()[0].ContextMap()
	assert.Equal(t, "req-123", fields["request_id"])
	assert.Equal(t, "rendered sidebar", logs.All()[0].Message)
}

func TestWithContextWithoutRequestID(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	log := logger.NewFromZap(zap.New(core))

	log.WithContext(context.Background()).Warn("no id")

	require.Equal(t, 1, logs.Len())
	_, ok := logs.All()[0].ContextMap()["request_id"]
	assert.False(t, ok)
}

func TestLoggerFromContext(t *testing.T) {
	log := logger.NewNoopLogger().Named("ctx")
	ctx := logger.WithLogger(context.Background(), log)

	assert.Equal(t, log, logger.FromContext(ctx))
	assert.NotNil(t, logger.FromContext(context.Background()))
}

func TestParseLevel(t *testing.T) {
	tests := map[string]zapcore.Level{
		"debug":   zapcore.DebugLevel,
		"WARNING": zapcore.WarnLevel,
		"error":   zapcore.ErrorLevel,
		"":        zapcore.InfoLevel,
		"chatty":  zapcore.InfoLevel,
	}

	for in, want := range tests {
		assert.Equal(t, want, logger.ParseLevel(in), in)
	}
}

func TestNewLoggerProduction(t *testing.T) {
	log := logger.NewLogger(logger.LoggingConfig{Level: "warn", Format: "json"})
	require.NotNil(t, log)
	log.Info("suppressed")
}
