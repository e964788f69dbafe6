package auth

// Package auth contains simple hand-written test doubles for auth ports.
// These are lightweight and suitable for unit tests without codegen.

import (
	"context"
	"errors"
	"time"

	domainauth "github.com/criseulises/customer-admin-go/internal/domain/auth"
	"github.com/criseulises/customer-admin-go/internal/ports"
)

// Ensure compile-time conformance to ports.
var _ ports.SessionStore = (*MemorySessionStore)(nil)

// MemorySessionStore is an in-memory single-slot session store for unit tests.
type MemorySessionStore struct {
	// Now overrides the clock used for expiry checks. Defaults to time.Now.
	Now func() time.Time

	sess domainauth.Session
	set  bool

	// Call counters for assertion in tests.
	SaveCalls  int
	ClearCalls int
}

// NewMemorySessionStore creates a new in-memory session store.
func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{}
}

func (m *MemorySessionStore) now() time.Time {
	if m.Now != nil {
		return m.Now()
	}
	return time.Now()
}

func (m *MemorySessionStore) Save(_ context.Context, sess domainauth.Session) error {
	m.SaveCalls++
	if !sess.Valid() {
		return errors.New("session token cannot be empty")
	}
	m.sess = sess
	m.set = true
	return nil
}

func (m *MemorySessionStore) Current(_ context.Context) (domainauth.Session, error) {
	if !m.set {
		return domainauth.Session{}, ports.ErrNoSession
	}
	if m.sess.Expired(m.now()) {
		m.sess = domainauth.Session{}
		m.set = false
		return domainauth.Session{}, ports.ErrNoSession
	}
	return m.sess, nil
}

func (m *MemorySessionStore) Clear(_ context.Context) error {
	m.ClearCalls++
	m.sess = domainauth.Session{}
	m.set = false
	return nil
}
