package logger_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"plazausers/pkg/logger"
)

func TestNewLogger(t *testing.T) {
	tests := []struct {
		name    string
		env     logger.Environment
		level   string
		wantErr bool
	}{
		{name: "development default level", env: logger.Development},
		{name: "production with info", env: logger.Production, level: "info"},
		{name: "development with debug", env: logger.Development, level: "debug"},
		{name: "unknown level", env: logger.Production, level: "verbose", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log, err := logger.NewLogger(tt.env, tt.level)
			if tt.wantErr {
				require.Error(t, err)
				assert.Nil(t, log)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, log)
		})
	}
}

func TestLoggerAddsContextFields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	log := logger.NewFromZap(zap.New(core))

	ctx := logger.NewRequestIDContext(context.Background(), "req-42")
	log.Info(ctx, "with request id", zap.String("method", "Login"))
	log.Warn(context.Background(), "without request id")

	entries := logs.All()
	require.Len(t, entries, 2)

	assert.Equal(t, "req-42", entries[0].ContextMap()[logger.RequestID])
	assert.Equal(t, "Login", entries[0].ContextMap()["method"])
	_, ok := entries[1].ContextMap()[logger.RequestID]
	assert.False(t, ok)
}

func TestWith(t *testing.T) {
	log, err := logger.NewLogger(logger.Development, "debug")
	require.NoError(t, err)

	child := log.With(zap.String("key", "value"))
	assert.NotSame(t, log, child)

	assert.Same(t, log, log.WithRequestID(context.Background()))
	assert.NotSame(t, log, log.WithRequestID(logger.NewRequestIDContext(context.Background(), "id")))
}

func TestContextLogger(t *testing.T) {
	log, err := logger.NewLogger(logger.Development, "debug")
	require.NoError(t, err)

	t.Run("found in context", func(t *testing.T) {
		ctx := logger.NewContext(context.Background(), log)
		got, err := logger.FromContext(ctx)
		require.NoError(t, err)
		assert.Same(t, log, got)
		assert.Same(t, log, logger.Log(ctx))
	})

	t.Run("missing in context", func(t *testing.T) {
		got, err := logger.FromContext(context.Background())
		require.ErrorIs(t, err, logger.ErrLoggerNotFound)
		assert.Nil(t, got)
	})

	t.Run("global logger used when context is empty", func(t *testing.T) {
		logger.SetGlobalLogger(log)
		t.Cleanup(func() { logger.SetGlobalLogger(nil) })

		assert.Same(t, log, logger.Log(context.Background()))
	})

	t.Run("fallback logger never nil", func(t *testing.T) {
		assert.NotNil(t, logger.Log(context.Background()))
	})
}

func TestRequestID(t *testing.T) {
	ctx := logger.NewRequestIDContext(context.Background(), "")
	id, ok := logger.GetRequestID(ctx)
	require.True(t, ok)
	assert.Len(t, id, 36)

	_, ok = logger.GetRequestID(context.Background())
	assert.False(t, ok)

	assert.NotEqual(t, logger.GenerateRequestID(), logger.GenerateRequestID())
}
