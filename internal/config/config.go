// Package config provides application configuration management.
// It loads settings from environment variables and provides defaults for
// server mode, dialogue behavior, and rate limiting.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	// Server Configuration
	Port            string
	LogLevel        string
	ShutdownTimeout time.Duration

	// Metrics Authentication
	MetricsUsername string // Username for /metrics endpoint Basic Auth (default: "prometheus")
	MetricsPassword string // Password for /metrics endpoint Basic Auth (empty = no auth)

	// Error Reporting (optional)
	SentryToken       string
	SentryHost        string
	SentryEnvironment string

	// Bot Configuration (embedded)
	Bot BotConfig
}

// BotConfig holds dialogue-specific configuration.
// The divergences observed between historical handler rewrites (escalation
// thresholds, live-agent trigger phrases, menu wording) live here as knobs
// instead of code forks.
type BotConfig struct {
	// FuzzyThreshold is the minimum weighted-ratio similarity score
	// (0-100) for a message token to be canonicalized to an intent
	// keyword (default: 80).
	FuzzyThreshold int

	// EscalationThreshold is the fallback attempt count at which the bot
	// unconditionally offers a live agent (default: 3).
	EscalationThreshold int

	// LiveAgentPhrases are literal substrings (matched case-insensitively
	// against the raw message, not canonicalized) that immediately route
	// to a live agent.
	LiveAgentPhrases []string

	// MaxHistory caps the per-user conversation history (default: 50).
	MaxHistory int

	// MaxMessageLength rejects oversized chat payloads (default: 1000).
	MaxMessageLength int

	// MinMessageInterval is the minimum time between two accepted
	// messages from the same user (default: 2s).
	MinMessageInterval time.Duration

	// RateLimitCleanupPeriod controls how often idle rate limit entries
	// are evicted (default: 5m).
	RateLimitCleanupPeriod time.Duration
}

// Load reads configuration from environment variables
// It attempts to load .env file first, then reads from env vars
func Load() (*Config, error) {
	// Try to load .env file (ignore error if file doesn't exist)
	_ = godotenv.Load()

	cfg := &Config{
		// Server Configuration
		Port:            getEnv("PORT", "5000"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		ShutdownTimeout: getDurationEnv("SHUTDOWN_TIMEOUT", 30*time.Second),

		// Metrics Authentication
		MetricsUsername: getEnv("METRICS_USERNAME", "prometheus"),
		MetricsPassword: getEnv("METRICS_PASSWORD", ""),

		// Error Reporting
		SentryToken:       getEnv("SENTRY_TOKEN", ""),
		SentryHost:        getEnv("SENTRY_HOST", ""),
		SentryEnvironment: getEnv("SENTRY_ENVIRONMENT", "production"),

		// Bot Configuration
		Bot: BotConfig{
			FuzzyThreshold:         getIntEnv("FUZZY_THRESHOLD", 80),
			EscalationThreshold:    getIntEnv("ESCALATION_THRESHOLD", 3),
			LiveAgentPhrases:       getListEnv("LIVE_AGENT_PHRASES", []string{"live chat", "support"}),
			MaxHistory:             getIntEnv("MAX_CHAT_HISTORY", 50),
			MaxMessageLength:       getIntEnv("MAX_MESSAGE_LENGTH", 1000),
			MinMessageInterval:     getDurationEnv("MIN_MESSAGE_INTERVAL", 2*time.Second),
			RateLimitCleanupPeriod: getDurationEnv("RATE_LIMIT_CLEANUP_PERIOD", 5*time.Minute),
		},
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate checks if required configuration values are set
func (c *Config) Validate() error {
	var errs []error

	if c.Port == "" {
		errs = append(errs, errors.New("PORT is required"))
	}
	if c.SentryToken != "" && c.SentryHost == "" {
		errs = append(errs, errors.New("SENTRY_HOST is required when SENTRY_TOKEN is set"))
	}
	if err := c.Bot.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("bot config: %w", err))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}

// Validate checks bot configuration bounds
func (c *BotConfig) Validate() error {
	var errs []error

	if c.FuzzyThreshold < 0 || c.FuzzyThreshold > 100 {
		errs = append(errs, fmt.Errorf("FUZZY_THRESHOLD must be in [0,100], got %d", c.FuzzyThreshold))
	}
	if c.EscalationThreshold < 1 {
		errs = append(errs, fmt.Errorf("ESCALATION_THRESHOLD must be at least 1, got %d", c.EscalationThreshold))
	}
	if c.MaxHistory < 0 {
		errs = append(errs, fmt.Errorf("MAX_CHAT_HISTORY cannot be negative, got %d", c.MaxHistory))
	}
	if c.MaxMessageLength <= 0 {
		errs = append(errs, fmt.Errorf("MAX_MESSAGE_LENGTH must be positive, got %d", c.MaxMessageLength))
	}
	if c.MinMessageInterval < 0 {
		errs = append(errs, fmt.Errorf("MIN_MESSAGE_INTERVAL cannot be negative, got %v", c.MinMessageInterval))
	}
	if c.RateLimitCleanupPeriod <= 0 {
		errs = append(errs, fmt.Errorf("RATE_LIMIT_CLEANUP_PERIOD must be positive, got %v", c.RateLimitCleanupPeriod))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}

// getEnv retrieves environment variable with fallback to default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getIntEnv retrieves integer environment variable with fallback to default value
func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getDurationEnv retrieves duration environment variable with fallback to default value
func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// getListEnv retrieves a comma-separated list environment variable with
// fallback to default value. Empty items are dropped.
func getListEnv(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parts := strings.Split(value, ",")
	items := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			items = append(items, p)
		}
	}
	if len(items) == 0 {
		return defaultValue
	}
	return items
}
