package config

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger_HandlerByEnvironment(t *testing.T) {
	prod := NewLogger(&Config{Environment: "production", LogLevel: "info"})
	_, ok := prod.Handler().(*slog.JSONHandler)
	require.True(t, ok, "production should use the JSON handler")

	dev := NewLogger(&Config{Environment: "development", LogLevel: "info"})
	_, ok = dev.Handler().(*slog.TextHandler)
	require.True(t, ok, "development should use the text handler")
}

func TestNewLogger_Levels(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		level        string
		debugEnabled bool
		warnEnabled  bool
	}{
		{"debug", true, true},
		{"info", false, true},
		{"warn", false, true},
		{"error", false, false},
		{"verbose", false, true}, // unknown falls back to info
	}
	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			logger := NewLogger(&Config{Environment: "development", LogLevel: tt.level})
			assert.Equal(t, tt.debugEnabled, logger.Handler().Enabled(ctx, slog.LevelDebug))
			assert.Equal(t, tt.warnEnabled, logger.Handler().Enabled(ctx, slog.LevelWarn))
		})
	}
}
