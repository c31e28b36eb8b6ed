package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zapcore"

	"github.com/gcaponi/S4all-BOT/internal/infrastructure/config"
)

func TestNewLogger(t *testing.T) {
	t.Run("creates json logger", func(t *testing.T) {
		log, err := NewLogger(&config.LogConfig{Level: "info", Format: "json"})

		assert.NoError(t, err)
		assert.NotNil(t, log)
		log.Info("test message")
	})

	t.Run("creates console logger", func(t *testing.T) {
		log, err := NewLogger(&config.LogConfig{Level: "debug", Format: "console"})

		assert.NoError(t, err)
		assert.NotNil(t, log)
	})

	t.Run("falls back to info on invalid level", func(t *testing.T) {
		log, err := NewLogger(&config.LogConfig{Level: "shouting", Format: "json"})

		assert.NoError(t, err)
		assert.NotNil(t, log)
		assert.False(t, log.Core().Enabled(zapcore.DebugLevel))
	})
}
