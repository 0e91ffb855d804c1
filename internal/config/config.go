package config

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// namespace is the prefix for every environment variable.
const namespace = "TASKMANAGER"

// Config holds all configuration options for the task manager service
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Auth     AuthConfig
	Log      LogConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Addr            string        `envconfig:"HTTP_ADDR" default:":8080"`
	ShutdownTimeout time.Duration `envconfig:"HTTP_SHUTDOWN_TIMEOUT" default:"10s"`
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	Path string `envconfig:"DB_PATH" default:"taskmanager.db"`
}

// AuthConfig holds identity provider configuration
type AuthConfig struct {
	TokenTTL time.Duration `envconfig:"TOKEN_TTL" default:"1h"`
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string `envconfig:"LOG_LEVEL" default:"info"`
	Format string `envconfig:"LOG_FORMAT" default:"text"`
}

// Load reads the configuration from the environment, applying defaults
// for everything unset
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(namespace, &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return &cfg, nil
}

// SlogLevel converts the configured level string to a slog level,
// defaulting to info on anything unparseable
func (l LogConfig) SlogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(l.Level)); err != nil {
		return slog.LevelInfo
	}
	return level
}
