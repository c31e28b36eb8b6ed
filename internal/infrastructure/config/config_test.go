package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	t.Run("loads default configuration", func(t *testing.T) {
		cfg, err := Load()

		assert.NoError(t, err)
		assert.NotNil(t, cfg)

		// Check server defaults
		assert.Equal(t, "0.0.0.0", cfg.Server.Host)
		assert.Equal(t, 8080, cfg.Server.Port)
		assert.Equal(t, "debug", cfg.Server.Mode)

		// Check database defaults
		assert.Equal(t, "localhost", cfg.Database.Host)
		assert.Equal(t, 5432, cfg.Database.Port)
		assert.Equal(t, "intent", cfg.Database.User)
		assert.Equal(t, "intent", cfg.Database.DBName)
		assert.Equal(t, "disable", cfg.Database.SSLMode)

		// Check redis defaults
		assert.Equal(t, "localhost", cfg.Redis.Host)
		assert.Equal(t, 6379, cfg.Redis.Port)
		assert.Equal(t, "", cfg.Redis.Password)
		assert.Equal(t, 0, cfg.Redis.DB)

		// Check log defaults
		assert.Equal(t, "info", cfg.Log.Level)
		assert.Equal(t, "json", cfg.Log.Format)

		// Check vocabulary defaults
		assert.Equal(t, VocabularySourceDatabase, cfg.Vocabulary.Source)
		assert.Equal(t, "vocabulary.yaml", cfg.Vocabulary.File)
	})

	t.Run("reads from environment variables", func(t *testing.T) {
		os.Setenv("INTENT_SERVER_PORT", "9090")
		os.Setenv("INTENT_DATABASE_HOST", "db.example.com")
		os.Setenv("INTENT_LOG_LEVEL", "debug")
		os.Setenv("INTENT_VOCABULARY_SOURCE", "file")
		defer func() {
			os.Unsetenv("INTENT_SERVER_PORT")
			os.Unsetenv("INTENT_DATABASE_HOST")
			os.Unsetenv("INTENT_LOG_LEVEL")
			os.Unsetenv("INTENT_VOCABULARY_SOURCE")
		}()

		cfg, err := Load()

		assert.NoError(t, err)
		assert.Equal(t, 9090, cfg.Server.Port)
		assert.Equal(t, "db.example.com", cfg.Database.Host)
		assert.Equal(t, "debug", cfg.Log.Level)
		assert.Equal(t, VocabularySourceFile, cfg.Vocabulary.Source)
	})

	t.Run("rejects unknown vocabulary source", func(t *testing.T) {
		os.Setenv("INTENT_VOCABULARY_SOURCE", "carrier-pigeon")
		defer os.Unsetenv("INTENT_VOCABULARY_SOURCE")

		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("falls back on malformed numbers", func(t *testing.T) {
		os.Setenv("INTENT_SERVER_PORT", "not-a-number")
		defer os.Unsetenv("INTENT_SERVER_PORT")

		cfg, err := Load()
		assert.NoError(t, err)
		assert.Equal(t, 8080, cfg.Server.Port)
	})
}
