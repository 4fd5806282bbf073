package config_test

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cricket-predictor/internal/config"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DB_PATH", "")
	t.Setenv("SERVER_PORT", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("FEED_URL", "")

	cfg, err := config.Load(zerolog.Nop())
	require.NoError(t, err)

	assert.Equal(t, "cricket.db", cfg.DBPath)
	assert.Equal(t, "5000", cfg.ServerPort)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Empty(t, cfg.FeedURL)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("DB_PATH", "/tmp/other.db")
	t.Setenv("SERVER_PORT", "8080")
	t.Setenv("FEED_URL", "https://feed.example.com")

	cfg, err := config.Load(zerolog.Nop())
	require.NoError(t, err)

	assert.Equal(t, "/tmp/other.db", cfg.DBPath)
	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, "https://feed.example.com", cfg.FeedURL)
}
