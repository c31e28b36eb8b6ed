package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds the full service configuration, loaded from environment
// variables with sensible defaults
type Config struct {
	Server     ServerConfig
	Database   DatabaseConfig
	Redis      RedisConfig
	Log        LogConfig
	Vocabulary VocabularyConfig
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Host string
	Port int
	Mode string
}

// DatabaseConfig holds PostgreSQL settings
type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// RedisConfig holds Redis settings
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// LogConfig holds logging settings
type LogConfig struct {
	Level  string
	Format string
}

// VocabularySource selects where the reference vocabulary is loaded from
const (
	VocabularySourceDatabase = "database"
	VocabularySourceFile     = "file"
)

// VocabularyConfig holds reference vocabulary settings
type VocabularyConfig struct {
	Source string
	File   string
}

// Load reads the configuration from INTENT_* environment variables,
// falling back to defaults suited to local development
func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Host: getEnv("INTENT_SERVER_HOST", "0.0.0.0"),
			Port: getEnvInt("INTENT_SERVER_PORT", 8080),
			Mode: getEnv("INTENT_SERVER_MODE", "debug"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("INTENT_DATABASE_HOST", "localhost"),
			Port:     getEnvInt("INTENT_DATABASE_PORT", 5432),
			User:     getEnv("INTENT_DATABASE_USER", "intent"),
			Password: getEnv("INTENT_DATABASE_PASSWORD", "intent"),
			DBName:   getEnv("INTENT_DATABASE_NAME", "intent"),
			SSLMode:  getEnv("INTENT_DATABASE_SSLMODE", "disable"),
		},
		Redis: RedisConfig{
			Host:     getEnv("INTENT_REDIS_HOST", "localhost"),
			Port:     getEnvInt("INTENT_REDIS_PORT", 6379),
			Password: getEnv("INTENT_REDIS_PASSWORD", ""),
			DB:       getEnvInt("INTENT_REDIS_DB", 0),
		},
		Log: LogConfig{
			Level:  getEnv("INTENT_LOG_LEVEL", "info"),
			Format: getEnv("INTENT_LOG_FORMAT", "json"),
		},
		Vocabulary: VocabularyConfig{
			Source: getEnv("INTENT_VOCABULARY_SOURCE", VocabularySourceDatabase),
			File:   getEnv("INTENT_VOCABULARY_FILE", "vocabulary.yaml"),
		},
	}

	if cfg.Vocabulary.Source != VocabularySourceDatabase && cfg.Vocabulary.Source != VocabularySourceFile {
		return nil, fmt.Errorf("invalid vocabulary source %q", cfg.Vocabulary.Source)
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
