package config

import (
	"strings"
	"time"
)

// APIConfig contains backend REST API configuration.
type APIConfig struct {
	// BaseURL is the API base every endpoint path is resolved against.
	BaseURL string `env:"API_BASE_URL" envDefault:"http://localhost:8000/api"`

	// Timeout bounds each HTTP request to the backend.
	Timeout time.Duration `env:"API_TIMEOUT" envDefault:"30s"`
}

// Sanitize applies guardrails to API configuration values.
func (a *APIConfig) Sanitize() {
	a.BaseURL = strings.TrimRight(strings.TrimSpace(a.BaseURL), "/")
	if a.BaseURL == "" {
		a.BaseURL = "http://localhost:8000/api"
	}
	if a.Timeout <= 0 {
		a.Timeout = 30 * time.Second
	}
}
