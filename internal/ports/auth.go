package ports

// Package ports defines interfaces (hexagonal ports) for session and
// API-access behavior. Implementations live in internal/adapters and
// internal/rest; orchestration in internal/service.

import (
	"context"

	domainauth "github.com/criseulises/customer-admin-go/internal/domain/auth"
)

// ErrNoSession is returned when no usable session is stored: the store is
// empty, the record expired, or the record could not be decoded. A corrupt
// record intentionally degrades to this error rather than surfacing one of
// its own.
type noSessionError struct{}

func (noSessionError) Error() string { return "no session" }

var ErrNoSession error = noSessionError{}

// SessionStore persists and retrieves the single current operator session.
// Token and profile are one record: Save sets both, Clear removes both.
type SessionStore interface {
	// Save persists the session until its ExpiresAt.
	Save(ctx context.Context, sess domainauth.Session) error

	// Current returns the stored session, or ErrNoSession when absent,
	// expired, or unreadable.
	Current(ctx context.Context) (domainauth.Session, error)

	// Clear removes the stored session. Clearing an empty store is a no-op.
	Clear(ctx context.Context) error
}
