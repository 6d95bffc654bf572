package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"
)

// Config holds all application configuration
type Config struct {
	// Server configuration
	Port            int           `envconfig:"PORT" default:"8080"`
	ReadTimeout     time.Duration `envconfig:"READ_TIMEOUT" default:"15s"`
	WriteTimeout    time.Duration `envconfig:"WRITE_TIMEOUT" default:"15s"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"10s"`
	GinMode         string        `envconfig:"GIN_MODE" default:"release"`

	// Database configuration
	DatabaseURL      string `envconfig:"POSTGRES_DB_URL"`
	DatabaseMaxConns int32  `envconfig:"POSTGRES_MAX_CONNS" default:"10"`

	// Logging configuration
	LogFormat string `envconfig:"LOG_FORMAT" default:"json"` // "json" or "pretty"
	LogLevel  string `envconfig:"LOG_LEVEL" default:"info"`

	// Dashboard configuration
	ItemsPerPage int `envconfig:"ITEMS_PER_PAGE" default:"6"`

	// Observability configuration
	SentryDSN              string  `envconfig:"SENTRY_DSN"`
	SentryTracesSampleRate float64 `envconfig:"SENTRY_TRACES_SAMPLE_RATE" default:"0"`
	EnableMetrics          bool    `envconfig:"ENABLE_METRICS" default:"true"`
}

// LoadConfig loads the application configuration from environment variables
func LoadConfig() (*Config, error) {
	loadDotEnv()

	cfg := &Config{}
	if err := envconfig.Process("", cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment variables: %w", err)
	}

	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// loadDotEnv loads a .env file from the project root or the current directory
func loadDotEnv() {
	execPath, err := os.Executable()
	if err != nil {
		log.Warn().Err(err).Msg("could not determine executable path")
	}

	// Determine project root directory
	projectRoot := filepath.Dir(filepath.Dir(filepath.Dir(execPath)))
	envPath := filepath.Join(projectRoot, ".env")

	if err := godotenv.Load(envPath); err != nil {
		// Try loading from current directory as fallback
		if err := godotenv.Load(); err != nil {
			log.Info().Msg("no .env file found, using environment variables")
		} else {
			log.Info().Msg("loaded environment variables from current directory .env file")
		}
	} else {
		log.Info().Str("path", envPath).Msg("loaded environment variables")
	}
}

// validateConfig rejects invalid values and logs warnings for missing optional ones
func validateConfig(cfg *Config) error {
	if cfg.ItemsPerPage < 1 {
		return fmt.Errorf("ITEMS_PER_PAGE must be greater than 0, got %d", cfg.ItemsPerPage)
	}

	if cfg.Port < 1 || cfg.Port > 65535 {
		return fmt.Errorf("PORT must be between 1 and 65535, got %d", cfg.Port)
	}

	cfg.LogFormat = strings.ToLower(cfg.LogFormat)
	if cfg.LogFormat != "json" && cfg.LogFormat != "pretty" {
		return fmt.Errorf("LOG_FORMAT must be json or pretty, got %q", cfg.LogFormat)
	}

	if cfg.DatabaseURL == "" {
		log.Warn().Msg("no POSTGRES_DB_URL provided, the dashboard cannot load invoices")
	}

	if cfg.SentryDSN == "" {
		log.Debug().Msg("no SENTRY_DSN provided, error reporting disabled")
	}

	return nil
}

// Addr returns the listen address for the HTTP server
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}
