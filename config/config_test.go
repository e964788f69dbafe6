package config

import (
	"testing"
	"time"

	env "github.com/caarlos0/env/v11"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDefaults(t *testing.T) {
	var cfg AppConfig
	require.NoError(t, env.Parse(&cfg))
	cfg.Sanitize()

	assert.False(t, cfg.IsDev)
	assert.Equal(t, "http://localhost:8080", cfg.API.BaseURL)
	assert.Equal(t, time.Duration(0), cfg.API.Timeout)
	assert.Equal(t, SessionBackendFile, cfg.Session.Backend)
	assert.Equal(t, 24*time.Hour, cfg.Session.TTL)
	assert.Equal(t, "session:current", cfg.Session.RedisKey)
	assert.Equal(t, "localhost:6379", cfg.Session.Redis.Addr)
}

func TestParseFromEnvironment(t *testing.T) {
	t.Setenv("DEV", "true")
	t.Setenv("API_BASE_URL", "https://backend.internal:9443")
	t.Setenv("API_TIMEOUT", "15s")
	t.Setenv("SESSION_BACKEND", "redis")
	t.Setenv("SESSION_TTL", "8h")
	t.Setenv("SESSION_REDIS_KEY", "session:kiosk-3")
	t.Setenv("SESSION_REDIS_ADDR", "redis.internal:6380")
	t.Setenv("SESSION_REDIS_DB", "4")

	var cfg AppConfig
	require.NoError(t, env.Parse(&cfg))
	cfg.Sanitize()

	assert.True(t, cfg.IsDev)
	assert.Equal(t, "https://backend.internal:9443", cfg.API.BaseURL)
	assert.Equal(t, 15*time.Second, cfg.API.Timeout)
	assert.Equal(t, SessionBackendRedis, cfg.Session.Backend)
	assert.Equal(t, 8*time.Hour, cfg.Session.TTL)
	assert.Equal(t, "session:kiosk-3", cfg.Session.RedisKey)
	assert.Equal(t, "redis.internal:6380", cfg.Session.Redis.Addr)
	assert.Equal(t, 4, cfg.Session.Redis.DB)
}

func TestSessionBackendUnmarshalText(t *testing.T) {
	tests := []struct {
		input       string
		expected    SessionBackend
		expectError bool
	}{
		{"file", SessionBackendFile, false},
		{"redis", SessionBackendRedis, false},
		{"REDIS", SessionBackendRedis, false},
		{"postgres", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			var b SessionBackend
			err := b.UnmarshalText([]byte(tt.input))
			if tt.expectError {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "valid options: file, redis")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, b)
		})
	}
}

func TestParseRejectsInvalidBackend(t *testing.T) {
	t.Setenv("SESSION_BACKEND", "postgres")

	var cfg AppConfig
	err := env.Parse(&cfg)
	require.Error(t, err)
}

func TestSanitizeGuardrails(t *testing.T) {
	cfg := AppConfig{
		API:     APIConfig{Timeout: -5 * time.Second},
		Session: SessionConfig{TTL: -time.Hour},
	}
	cfg.Sanitize()

	assert.Equal(t, time.Duration(0), cfg.API.Timeout)
	assert.Equal(t, 24*time.Hour, cfg.Session.TTL)
	assert.Equal(t, SessionBackendFile, cfg.Session.Backend)
	assert.Equal(t, "session:current", cfg.Session.RedisKey)
}
