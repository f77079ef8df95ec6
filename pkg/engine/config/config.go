// Package config loads runtime settings from the environment.
package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"
)

// Config holds the settings a session starts with
type Config struct {
	// Environment selects the log format: "production" logs JSON
	Environment string `env:"ESCAPE_ENV" envDefault:"development"`
	LogLevel    string `env:"ESCAPE_LOG_LEVEL" envDefault:"warn"`
	// LogFile receives the logs; stderr when empty
	LogFile  string `env:"ESCAPE_LOG_FILE"`
	Language string `env:"ESCAPE_LANG" envDefault:"en"`
	NoColor  bool   `env:"ESCAPE_NO_COLOR"`
	// Wrap is the message width in columns; 0 follows the terminal
	Wrap int `env:"ESCAPE_WRAP" envDefault:"0"`
}

// Load reads the configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// Level returns the configured log level
func (c *Config) Level() slog.Level {
	return ParseLogLevel(c.LogLevel)
}

// ParseLogLevel maps a level name to a slog level, warn when unknown
func ParseLogLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}
