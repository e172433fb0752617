package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/Conceptual-Machines/pitchkit/pkg/note"
)

const (
	defaultMaxBatchSize = 256
	maxAllowedBatchSize = 4096
)

// Config holds the application configuration
type Config struct {
	// Environment
	Environment string
	Port        string

	// Observability
	SentryDSN         string // Sentry DSN for error tracking
	CloudWatchEnabled bool   // Push custom metrics to CloudWatch (production only)

	// Conversion defaults
	DefaultTuning string // Tuning used when a request does not name one
	MaxBatchSize  int    // Upper bound on inputs per batch conversion

	// CORS
	AllowedOrigin string
}

func Load() *Config {
	return &Config{
		Environment:       getEnv("ENVIRONMENT", "development"),
		Port:              getEnv("PORT", "8080"),
		SentryDSN:         getEnv("SENTRY_DSN", ""),
		CloudWatchEnabled: getEnv("CLOUDWATCH_ENABLED", "false") == "true",
		DefaultTuning:     getEnv("DEFAULT_TUNING", note.EqualTemperament.String()),
		MaxBatchSize:      getEnvInt("MAX_BATCH_SIZE", defaultMaxBatchSize),
		AllowedOrigin:     getEnv("CORS_ALLOWED_ORIGIN", "*"),
	}
}

// Validate checks values that cannot be defaulted silently.
func (c *Config) Validate() error {
	if _, err := note.ParseTuning(c.DefaultTuning); err != nil {
		return fmt.Errorf("DEFAULT_TUNING: %w", err)
	}
	if c.MaxBatchSize < 1 || c.MaxBatchSize > maxAllowedBatchSize {
		return fmt.Errorf("MAX_BATCH_SIZE must be between 1 and %d, got %d", maxAllowedBatchSize, c.MaxBatchSize)
	}
	return nil
}

// Tuning returns the configured default tuning. Call Validate first.
func (c *Config) Tuning() note.Tuning {
	t, err := note.ParseTuning(c.DefaultTuning)
	if err != nil {
		return note.EqualTemperament
	}
	return t
}

// IsProduction returns true when running in the production environment
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		// Out-of-range sentinel, rejected by Validate.
		return -1
	}
	return n
}
