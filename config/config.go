package config

import (
	"strings"
)

// AppConfig is the main application configuration struct that composes
// domain-specific configuration from separate files.
//
// Configuration is loaded from environment variables using the
// github.com/caarlos0/env library. See individual domain config
// files for details on available environment variables:
//   - api.go: Backend API configuration
//   - auth.go: Google sign-in configuration
//   - session.go: Session storage configuration
type AppConfig struct {
	// API is the backend REST API configuration.
	API APIConfig

	// Google is the Google identity configuration.
	Google GoogleConfig `envPrefix:"GOOGLE_"`

	// Session is the session storage configuration.
	Session SessionConfig

	// Redis holds the Redis connection settings used when the session
	// backend is "redis".
	Redis RedisConfig `envPrefix:"REDIS_"`

	// LogLevel sets the slog level: debug, info, warn, error.
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

// Sanitize applies guardrails to configuration values loaded from env.
// This should be called after loading configuration from environment variables.
func (c *AppConfig) Sanitize() {
	c.API.Sanitize()
	c.Session.Sanitize()
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		c.LogLevel = "info"
	}
}
