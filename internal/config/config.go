package config

import (
	"errors"
	"io/fs"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds runtime configuration for the CLI.
type Config struct {
	APIKey   string
	Provider string
	StartGG  StartGGConfig
	Retry    RetryConfig
	Logging  LoggingConfig
	Metrics  MetricsConfig
}

// LoggingConfig controls logger construction.
type LoggingConfig struct {
	Level  string
	Format string
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		APIKey:   strings.TrimSpace(envOrDefault(envAPIKey, "")),
		Provider: strings.ToLower(envOrDefault(envProvider, defaultProvider)),
		StartGG:  loadStartGG(),
		Retry:    loadRetry(),
		Logging: LoggingConfig{
			Level:  envOrDefault(envLogLevel, defaultLogLevel),
			Format: envOrDefault(envLogFormat, defaultLogFormat),
		},
		Metrics: loadMetrics(),
	}
}

// LoadDotEnv exports the variables of a .env file into the process
// environment without overriding variables already set. A missing file is
// not an error.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, p := range paths {
		if err := godotenv.Load(p); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return err
		}
	}
	return nil
}
