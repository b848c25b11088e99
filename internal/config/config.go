package config

import (
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config carries the process-level settings every handler needs. It is
// loaded once in main and passed down explicitly instead of living in
// package globals.
type Config struct {
	Port              string
	AdminPassword     string
	AdminPasswordHash string
	SessionSecret     string
	SessionTTL        time.Duration
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		slog.Warn("Failed to load .env file", "error", err)
	}

	cfg := &Config{
		Port:              getEnv("PORT", "3000"),
		AdminPassword:     getEnv("ADMIN_PASSWORD", "venom1"), // Use this only for development
		AdminPasswordHash: os.Getenv("ADMIN_PASSWORD_HASH"),
		SessionSecret:     getEnv("SESSION_SECRET", "duka-secret-key-123"),
		SessionTTL:        24 * time.Hour,
	}

	if ttl := os.Getenv("SESSION_TTL"); ttl != "" {
		parsed, err := time.ParseDuration(ttl)
		if err != nil {
			slog.Warn("Invalid SESSION_TTL, keeping default", "value", ttl, "error", err)
		} else {
			cfg.SessionTTL = parsed
		}
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
