package config

import (
	"fmt"
	"os"

	"kingdom-tracker/internal/stats"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"go.uber.org/fx"
)

type Config struct {
	HubAPIKey  string
	HubBaseURL string
	DBPath     string
	ServerPort string
	LogLevel   string

	Scoring stats.ScoringConfig
}

func Load(logger zerolog.Logger) (*Config, error) {
	if err := godotenv.Load(); err != nil {
		logger.Debug().Msg(".env file not found, using environment variables or defaults")
	}

	cfg := &Config{
		HubAPIKey:  getEnv("HUB_API_KEY", ""),
		HubBaseURL: getEnv("HUB_BASE_URL", "https://hub.kingdomtracker.gg"),
		DBPath:     getEnv("DB_PATH", "kingdoms.db"),
		ServerPort: getEnv("SERVER_PORT", "8080"),
		LogLevel:   getEnv("LOG_LEVEL", "info"),
		Scoring:    stats.DefaultScoringConfig(),
	}

	if cfg.HubAPIKey == "" {
		return nil, fmt.Errorf("HUB_API_KEY is required")
	}

	// A broken scoring config would misclassify every kingdom at query
	// time; refuse to start instead.
	if err := cfg.Scoring.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scoring config: %w", err)
	}

	logger.Info().
		Str("hub_base_url", cfg.HubBaseURL).
		Str("db_path", cfg.DBPath).
		Str("server_port", cfg.ServerPort).
		Str("log_level", cfg.LogLevel).
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
