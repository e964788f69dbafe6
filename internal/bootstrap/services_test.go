package bootstrap

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/criseulises/customer-admin-go/config"
	"github.com/criseulises/customer-admin-go/internal/adapters/credfile"
	redisadapter "github.com/criseulises/customer-admin-go/internal/adapters/redis"
	"github.com/criseulises/customer-admin-go/internal/testutil"
)

func TestBuildSessionStoreFileBackend(t *testing.T) {
	store, err := BuildSessionStore(config.SessionConfig{
		Backend:         config.SessionBackendFile,
		CredentialsFile: testutil.TempCredentialsPath(t),
	}, nil)
	require.NoError(t, err)
	assert.IsType(t, &credfile.SessionStore{}, store)
}

func TestBuildSessionStoreRedisBackend(t *testing.T) {
	store, err := BuildSessionStore(config.SessionConfig{
		Backend:  config.SessionBackendRedis,
		RedisKey: "session:test",
		Redis:    config.RedisConfig{Addr: "localhost:6379"},
	}, nil)
	require.NoError(t, err)
	assert.IsType(t, &redisadapter.SessionStore{}, store)
}

func TestBuildSessionStoreUnknownBackend(t *testing.T) {
	_, err := BuildSessionStore(config.SessionConfig{Backend: "postgres"}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown session backend")
}

func TestBuildServicesWiresEverything(t *testing.T) {
	cfg := config.AppConfig{
		API: config.APIConfig{
			BaseURL: "http://localhost:8080",
			Timeout: 5 * time.Second,
		},
		Session: config.SessionConfig{
			Backend:         config.SessionBackendFile,
			CredentialsFile: testutil.TempCredentialsPath(t),
			TTL:             24 * time.Hour,
		},
	}

	services, err := BuildServices(cfg, InitLogger())
	require.NoError(t, err)
	assert.NotNil(t, services.Sessions)
	assert.NotNil(t, services.Auth)
	assert.NotNil(t, services.Customers)
	assert.NotNil(t, services.Users)
	assert.NotNil(t, services.Guard)
}

func TestBuildServicesRejectsBadBaseURL(t *testing.T) {
	cfg := config.AppConfig{
		API: config.APIConfig{BaseURL: "not-a-url"},
		Session: config.SessionConfig{
			Backend:         config.SessionBackendFile,
			CredentialsFile: testutil.TempCredentialsPath(t),
		},
	}

	_, err := BuildServices(cfg, nil)
	require.Error(t, err)
}
