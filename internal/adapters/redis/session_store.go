package redis

// Package redis provides a Redis-backed session store for deployments where
// several console processes share one operator session (e.g. a kiosk host).
// TTL semantics are handled automatically based on session ExpiresAt.

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	domainauth "github.com/criseulises/customer-admin-go/internal/domain/auth"
	"github.com/criseulises/customer-admin-go/internal/ports"
)

const defaultKey = "session:current"

// SessionStore stores the single current session under one key.
type SessionStore struct {
	client redis.UniversalClient
	key    string
}

// NewSessionStore creates a new Redis-based session store.
func NewSessionStore(client redis.UniversalClient) *SessionStore {
	return &SessionStore{client: client, key: defaultKey}
}

// NewSessionStoreWithKey creates a Redis session store with a custom key,
// allowing several named operator profiles to coexist.
func NewSessionStoreWithKey(client redis.UniversalClient, key string) *SessionStore {
	return &SessionStore{client: client, key: key}
}

func (s *SessionStore) Save(ctx context.Context, sess domainauth.Session) error {
	if !sess.Valid() {
		return errors.New("session must carry both token and profile")
	}

	data, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}

	ttl := time.Until(sess.ExpiresAt)
	if ttl <= 0 {
		// Session is already expired, don't save it
		return errors.New("session is expired")
	}

	return s.client.Set(ctx, s.key, data, ttl).Err()
}

func (s *SessionStore) Current(ctx context.Context) (domainauth.Session, error) {
	data, err := s.client.Get(ctx, s.key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return domainauth.Session{}, ports.ErrNoSession
		}
		return domainauth.Session{}, fmt.Errorf("redis get: %w", err)
	}

	var sess domainauth.Session
	if unmarshalErr := json.Unmarshal([]byte(data), &sess); unmarshalErr != nil {
		// A corrupt record degrades to "no session" rather than erroring.
		return domainauth.Session{}, ports.ErrNoSession
	}

	// Double-check expiration (Redis TTL should handle this, but be defensive)
	if sess.Expired(time.Now()) {
		if deleteErr := s.Clear(ctx); deleteErr != nil {
			return domainauth.Session{}, fmt.Errorf("cleanup expired session: %w", deleteErr)
		}
		return domainauth.Session{}, ports.ErrNoSession
	}

	return sess, nil
}

func (s *SessionStore) Clear(ctx context.Context) error {
	return s.client.Del(ctx, s.key).Err()
}
