package config

import (
	"fmt"
	"strings"
	"time"
)

// SessionBackend represents the storage backend for the session store.
type SessionBackend string

const (
	// SessionBackendFile stores credentials in a local JSON file.
	SessionBackendFile SessionBackend = "file"
	// SessionBackendRedis stores credentials in Redis, for hosts where
	// several console processes share one operator session.
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

// RedisConfig contains Redis connection configuration for the redis
// session backend.
type RedisConfig struct {
	Addr     string `env:"ADDR"     envDefault:"localhost:6379"`
	Password string `env:"PASSWORD" envDefault:""`
	DB       int    `env:"DB"       envDefault:"0"`
}

// SessionConfig groups all session-store configuration.
type SessionConfig struct {
	// Backend determines where the session record is persisted.
	Backend SessionBackend `env:"SESSION_BACKEND" envDefault:"file"`

	// CredentialsFile is the path of the file backend's record. Empty
	// means "<user config dir>/customer-admin/credentials.json",
	// resolved at bootstrap.
	CredentialsFile string `env:"SESSION_CREDENTIALS_FILE" envDefault:""`

	// TTL is the fixed client-side expiry applied at login.
	TTL time.Duration `env:"SESSION_TTL" envDefault:"24h"`

	// RedisKey names the record when Backend is redis.
	RedisKey string `env:"SESSION_REDIS_KEY" envDefault:"session:current"`

	// Redis connection settings (used when Backend is redis).
	Redis RedisConfig `envPrefix:"SESSION_REDIS_"`
}

// Sanitize applies guardrails to session configuration values.
func (s *SessionConfig) Sanitize() {
	if s.Backend == "" {
		s.Backend = SessionBackendFile
	}
	if s.TTL <= 0 {
		s.TTL = 24 * time.Hour
	}
	if s.RedisKey == "" {
		s.RedisKey = "session:current"
	}
}
