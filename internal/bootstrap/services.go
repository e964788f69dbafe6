package bootstrap

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/redis/go-redis/v9"

	"github.com/criseulises/customer-admin-go/config"
	"github.com/criseulises/customer-admin-go/internal/adapters/credfile"
	redisadapter "github.com/criseulises/customer-admin-go/internal/adapters/redis"
	"github.com/criseulises/customer-admin-go/internal/ports"
	"github.com/criseulises/customer-admin-go/internal/rest"
	"github.com/criseulises/customer-admin-go/internal/service"
)

// ServiceContainer holds the wired application services.
type ServiceContainer struct {
	Sessions  ports.SessionStore
	Auth      *service.AuthService
	Customers *service.CustomerService
	Users     *service.UserService
	Guard     *service.Guard
}

// BuildSessionStore creates the session store selected by configuration.
func BuildSessionStore(cfg config.SessionConfig, logger *slog.Logger) (ports.SessionStore, error) {
	switch cfg.Backend {
	case config.SessionBackendRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		return redisadapter.NewSessionStoreWithKey(client, cfg.RedisKey), nil

	case config.SessionBackendFile:
		path := cfg.CredentialsFile
		if path == "" {
			dir, err := os.UserConfigDir()
			if err != nil {
				return nil, fmt.Errorf("resolve credentials path: %w", err)
			}
			path = filepath.Join(dir, "customer-admin", "credentials.json")
		}
		if logger != nil {
			logger.Debug("using file session store", "path", path)
		}
		return credfile.NewSessionStore(path), nil

	default:
		return nil, fmt.Errorf("unknown session backend %q", cfg.Backend)
	}
}

// BuildServices wires the session store, API client and domain services.
func BuildServices(cfg config.AppConfig, logger *slog.Logger) (*ServiceContainer, error) {
	sessions, err := BuildSessionStore(cfg.Session, logger)
	if err != nil {
		return nil, err
	}

	client, err := rest.NewClient(rest.ClientOptions{
		BaseURL:  cfg.API.BaseURL,
		Sessions: sessions,
	})
	if err != nil {
		return nil, fmt.Errorf("build API client: %w", err)
	}
	if cfg.API.Timeout > 0 {
		client.SetTimeout(cfg.API.Timeout)
	}

	return &ServiceContainer{
		Sessions: sessions,
		Auth: service.NewAuthService(service.AuthServiceOptions{
			API:      client,
			Sessions: sessions,
			TTL:      cfg.Session.TTL,
		}),
		Customers: service.NewCustomerService(service.CustomerServiceOptions{API: client}),
		Users:     service.NewUserService(service.UserServiceOptions{API: client}),
		Guard:     service.NewGuard(service.GuardOptions{Sessions: sessions}),
	}, nil
}
