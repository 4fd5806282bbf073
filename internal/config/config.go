package config

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"go.uber.org/fx"
)

type Config struct {
	DBPath     string
	ServerPort string
	LogLevel   string

	// FeedURL points at an external live-score provider. When empty the
	// live-score endpoint serves the built-in fixture instead.
	FeedURL    string
	FeedAPIKey string
}

func Load(logger zerolog.Logger) (*Config, error) {
	if err := godotenv.Load(); err != nil {
		logger.Debug().Msg(".env file not found, using environment variables or defaults")
	}

	cfg := &Config{
		DBPath:     getEnv("DB_PATH", "cricket.db"),
		ServerPort: getEnv("SERVER_PORT", "5000"),
		LogLevel:   getEnv("LOG_LEVEL", "info"),
		FeedURL:    getEnv("FEED_URL", ""),
		FeedAPIKey: getEnv("FEED_API_KEY", ""),
	}

	logger.Info().
		Str("db_path", cfg.DBPath).
		Str("server_port", cfg.ServerPort).
		Str("log_level", cfg.LogLevel).
		Bool("feed_configured", cfg.FeedURL != "").
		Msg("configuration loaded")

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

var Module = fx.Provide(Load)
