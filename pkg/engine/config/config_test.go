package config

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "en", cfg.Language)
	assert.Equal(t, slog.LevelWarn, cfg.Level())
	assert.False(t, cfg.NoColor)
	assert.Zero(t, cfg.Wrap)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("ESCAPE_ENV", "production")
	t.Setenv("ESCAPE_LOG_LEVEL", "debug")
	t.Setenv("ESCAPE_NO_COLOR", "true")
	t.Setenv("ESCAPE_WRAP", "60")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "production", cfg.Environment)
	assert.Equal(t, slog.LevelDebug, cfg.Level())
	assert.True(t, cfg.NoColor)
	assert.Equal(t, 60, cfg.Wrap)
}

func TestLoad_BadValue(t *testing.T) {
	t.Setenv("ESCAPE_WRAP", "wide")
	_, err := Load()
	assert.ErrorContains(t, err, "parse env")
}

func TestParseLogLevel(t *testing.T) {
	assert.Equal(t, slog.LevelInfo, ParseLogLevel(" INFO "))
	assert.Equal(t, slog.LevelError, ParseLogLevel("error"))
	assert.Equal(t, slog.LevelWarn, ParseLogLevel("warning"))
	assert.Equal(t, slog.LevelWarn, ParseLogLevel("loud"))
}
