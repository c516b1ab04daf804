package config

import (
	"fmt"
	"strings"
	"time"
)

// SessionBackend selects where serialized sessions are persisted.
type SessionBackend string

const (
	// SessionBackendFile stores sessions in local files (default).
	SessionBackendFile SessionBackend = "file"
	// SessionBackendRedis stores sessions in Redis, for shared workstations.
	SessionBackendRedis SessionBackend = "redis"
)

// UnmarshalText implements encoding.TextUnmarshaler for SessionBackend.
func (b *SessionBackend) UnmarshalText(text []byte) error {
	v := strings.ToLower(string(text))
	switch v {
	case "file", "redis":
		*b = SessionBackend(v)
		return nil
	default:
		return fmt.Errorf("invalid SessionBackend: %q (valid options: file, redis)", v)
	}
}

// SessionConfig groups session persistence configuration.
type SessionConfig struct {
	// Backend determines which session vault implementation to use.
	Backend SessionBackend `env:"SESSION_BACKEND" envDefault:"file"`

	// Dir overrides the directory holding the durable session file.
	// Defaults to the user config dir when empty.
	Dir string `env:"SESSION_DIR" envDefault:""`

	// DurableTTL bounds how long a remembered session lives in the Redis
	// backend. Mirrors the backend's extended refresh lifetime.
	DurableTTL time.Duration `env:"SESSION_DURABLE_TTL" envDefault:"720h"`

	// ScopedTTL bounds how long an unremembered session lives in the Redis
	// backend.
	ScopedTTL time.Duration `env:"SESSION_SCOPED_TTL" envDefault:"12h"`
}

// Sanitize applies guardrails to session configuration values.
func (s *SessionConfig) Sanitize() {
	if s.Backend == "" {
		s.Backend = SessionBackendFile
	}
	if s.DurableTTL <= 0 {
		s.DurableTTL = 720 * time.Hour
	}
	if s.ScopedTTL <= 0 {
		s.ScopedTTL = 12 * time.Hour
	}
}

// RedisConfig contains Redis connection settings for the redis session vault.
type RedisConfig struct {
	Addr     string `env:"ADDR"     envDefault:"localhost:6379"`
	Password string `env:"PASSWORD" envDefault:""`
	DB       int    `env:"DB"       envDefault:"0"`
}
