package config

import (
	"log"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application.
type Config struct {
	Addr          string
	AppEnv        string
	SiteConfig    string
	SessionSecret string
	SnippetTTL    time.Duration
	// SnippetMax caps the live snippet renderers kept for attach requests.
	SnippetMax    int
}

const devSessionSecret = "curlysite-development-session-secret"

// New loads configuration from environment variables.
func New() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}
	return FromEnv(os.Getenv)
}

// FromEnv builds the configuration from a lookup function.
func FromEnv(getenv func(string) string) *Config {
	cfg := &Config{
		Addr:          ":" + orDefault(getenv("PORT"), "8080"),
		AppEnv:        orDefault(getenv("APP_ENV"), "development"),
		SiteConfig:    getenv("SITE_CONFIG"),
		SessionSecret: getenv("SESSION_SECRET"),
		SnippetTTL:    30 * time.Minute,
		SnippetMax:    10000,
	}

	if raw := getenv("SNIPPET_TTL"); raw != "" {
		ttl, err := time.ParseDuration(raw)
		if err != nil || ttl <= 0 {
			slog.Warn("Ignoring invalid SNIPPET_TTL", "value", raw)
		} else {
			cfg.SnippetTTL = ttl
		}
	}

	if raw := getenv("SNIPPET_MAX"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			slog.Warn("Ignoring invalid SNIPPET_MAX", "value", raw)
		} else {
			cfg.SnippetMax = n
		}
	}

	if cfg.SessionSecret == "" {
		if cfg.IsProduction() {
			log.Fatal("Required environment variable SESSION_SECRET is not set.")
		}
		cfg.SessionSecret = devSessionSecret
	}
	return cfg
}

// IsProduction reports whether the app runs with APP_ENV=production.
func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
