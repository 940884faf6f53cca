// Package config loads runtime settings from environment variables,
// applying development defaults for anything unset.
package config

import (
	"os"
	"time"

	"github.com/nfournier/cinelog/internal/catalog"
	"github.com/nfournier/cinelog/internal/session"
)

// Config holds runtime settings for the cinelog server.
type Config struct {
	// Addr is the HTTP bind address.
	Addr string

	// DBPath is the SQLite database file.
	DBPath string

	// TMDBAPIKey authenticates catalog requests.
	TMDBAPIKey string

	// TMDBBaseURL is the catalog endpoint.
	TMDBBaseURL string

	// Language is the fixed locale tag sent with every catalog query.
	Language string

	// SessionTTL is the fixed session validity window.
	SessionTTL time.Duration

	// SweepInterval is how often the expiry watcher runs.
	SweepInterval time.Duration
}

// Load builds a Config from the environment.
func Load() *Config {
	return &Config{
		Addr:          getEnv("CINELOG_ADDR", ":8080"),
		DBPath:        getEnv("CINELOG_DB_PATH", "./data/cinelog.db"),
		TMDBAPIKey:    getEnv("TMDB_API_KEY", ""),
		TMDBBaseURL:   getEnv("TMDB_BASE_URL", catalog.DefaultBaseURL),
		Language:      getEnv("TMDB_LANGUAGE", catalog.DefaultLanguage),
		SessionTTL:    getDuration("CINELOG_SESSION_TTL", session.DefaultTTL),
		SweepInterval: getDuration("CINELOG_SWEEP_INTERVAL", session.DefaultSweepInterval),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}
