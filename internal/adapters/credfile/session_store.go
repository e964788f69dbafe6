package credfile

// Package credfile provides a file-backed session store: the durable
// client-side cache of the operator's credentials across process runs.

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"time"

	domainauth "github.com/criseulises/customer-admin-go/internal/domain/auth"
	"github.com/criseulises/customer-admin-go/internal/ports"
)

// SessionStore persists the current session as a JSON file with 0600
// permissions. Writes are atomic (temp file + rename) so a crash mid-save
// never leaves a half-written record. A record that cannot be decoded
// degrades to "no session": it must never surface as an error of its own.
type SessionStore struct {
	path string
	now  func() time.Time
}

// NewSessionStore creates a file-backed session store at the given path.
func NewSessionStore(path string) *SessionStore {
	return &SessionStore{path: path, now: time.Now}
}

// NewSessionStoreWithClock creates a store with a custom clock for tests.
func NewSessionStoreWithClock(path string, now func() time.Time) *SessionStore {
	return &SessionStore{path: path, now: now}
}

func (s *SessionStore) Save(_ context.Context, sess domainauth.Session) error {
	if !sess.Valid() {
		return errors.New("session must carry both token and profile")
	}
	if !sess.ExpiresAt.After(s.now()) {
		return errors.New("session is expired")
	}

	data, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}

	dir := filepath.Dir(s.path)
	if mkErr := os.MkdirAll(dir, 0o700); mkErr != nil {
		return fmt.Errorf("create credentials dir: %w", mkErr)
	}

	tmp, err := os.CreateTemp(dir, ".credentials-*")
	if err != nil {
		return fmt.Errorf("create temp credentials file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if chErr := tmp.Chmod(0o600); chErr != nil {
		tmp.Close()
		return fmt.Errorf("chmod credentials file: %w", chErr)
	}
	if _, wErr := tmp.Write(data); wErr != nil {
		tmp.Close()
		return fmt.Errorf("write credentials file: %w", wErr)
	}
	if cErr := tmp.Close(); cErr != nil {
		return fmt.Errorf("close credentials file: %w", cErr)
	}

	if rnErr := os.Rename(tmpName, s.path); rnErr != nil {
		return fmt.Errorf("store credentials file: %w", rnErr)
	}
	return nil
}

func (s *SessionStore) Current(ctx context.Context) (domainauth.Session, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return domainauth.Session{}, ports.ErrNoSession
		}
		return domainauth.Session{}, fmt.Errorf("read credentials file: %w", err)
	}

	sess, ok := decodeSession(raw)
	if !ok || !sess.Valid() {
		return domainauth.Session{}, ports.ErrNoSession
	}

	// Expiry is time-boxed independent of server-side invalidation.
	if sess.Expired(s.now()) {
		if clearErr := s.Clear(ctx); clearErr != nil {
			return domainauth.Session{}, fmt.Errorf("cleanup expired session: %w", clearErr)
		}
		return domainauth.Session{}, ports.ErrNoSession
	}

	return sess, nil
}

func (s *SessionStore) Clear(_ context.Context) error {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove credentials file: %w", err)
	}
	return nil
}

// decodeSession attempts a raw parse first, matching what Save writes, then
// a URL-decoded parse for records migrated from percent-encoded cookie
// storage. The order matters: unescaping a raw record would rewrite tokens
// that contain percent-escapes or plus signs. Unrecoverable input reports
// !ok rather than an error.
func decodeSession(raw []byte) (domainauth.Session, bool) {
	var sess domainauth.Session
	if err := json.Unmarshal(raw, &sess); err == nil {
		return sess, true
	}

	unescaped, err := url.QueryUnescape(string(raw))
	if err != nil {
		return domainauth.Session{}, false
	}
	if err := json.Unmarshal([]byte(unescaped), &sess); err != nil {
		return domainauth.Session{}, false
	}
	return sess, true
}
