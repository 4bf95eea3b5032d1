package logger

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tradepost/market-api/internal/config"
)

func TestContextLogger(t *testing.T) {
	t.Parallel()

	base := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("round_trips_through_context", func(t *testing.T) {
		t.Parallel()

		ctx := WithContext(context.Background(), base)
		assert.Same(t, base, FromContext(ctx))
	})

	t.Run("missing_logger_falls_back_to_process_default", func(t *testing.T) {
		t.Parallel()

		assert.Same(t, slog.Default(), FromContext(context.Background()))
	})

	t.Run("fallback_used_when_context_is_bare", func(t *testing.T) {
		t.Parallel()

		fallback := slog.New(slog.NewTextHandler(io.Discard, nil))

		got := FromContextOrDefault(context.Background(), fallback)
		assert.Same(t, fallback, got)

		got = FromContextOrDefault(WithContext(context.Background(), base), fallback)
		assert.Same(t, base, got)
	})
}

func TestSetupLevels(t *testing.T) {
	tests := []struct {
		name     string
		logLevel string
		want     slog.Level
	}{
		{name: "debug", logLevel: "debug", want: slog.LevelDebug},
		{name: "info", logLevel: "info", want: slog.LevelInfo},
		{name: "warn", logLevel: "warn", want: slog.LevelWarn},
		{name: "error", logLevel: "error", want: slog.LevelError},
		{name: "mixed_case", logLevel: "DeBuG", want: slog.LevelDebug},
		{name: "unknown_falls_back_to_info", logLevel: "verbose", want: slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log, err := Setup(config.ServerConfig{Port: 3000, LogLevel: tt.logLevel, Env: "production"})
			assert.NoError(t, err)
			assert.True(t, log.Enabled(context.Background(), tt.want))
			if tt.want != slog.LevelDebug {
				assert.False(t, log.Enabled(context.Background(), tt.want-1))
			}
		})
	}
}
