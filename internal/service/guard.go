package service

import (
	"context"
	"errors"
	"fmt"

	domainauth "github.com/criseulises/customer-admin-go/internal/domain/auth"
	"github.com/criseulises/customer-admin-go/internal/ports"
)

// GuardState is the resolution state of one authorization check.
type GuardState string

const (
	// GuardUnresolved means the session has not been checked yet.
	GuardUnresolved GuardState = "unresolved"
	// GuardDenied means the visitor may not load the view.
	GuardDenied GuardState = "denied"
	// GuardGranted means the view may proceed to load its own data.
	GuardGranted GuardState = "granted"
)

// LoginPath is where unauthenticated visitors are sent.
const LoginPath = "/login"

// GuardDecision is the outcome of resolving a session against a view's
// required role set. Denied decisions carry a redirect target: login when
// the visitor is unknown, the visitor's own home view when they are known
// but not entitled.
type GuardDecision struct {
	State    GuardState
	Redirect string
	Session  *domainauth.Session
}

// Granted reports whether the view may load.
func (d GuardDecision) Granted() bool { return d.State == GuardGranted }

// GuardOptions groups dependencies for Guard.
type GuardOptions struct {
	Sessions ports.SessionStore
}

// Guard gates views by role. Every call resolves the session afresh; a
// decision is never cached across views.
type Guard struct {
	sessions ports.SessionStore
}

// NewGuard constructs a new Guard.
func NewGuard(opts GuardOptions) *Guard {
	return &Guard{sessions: opts.Sessions}
}

// Authorize resolves the current session against the required role set.
// An empty set admits any authenticated visitor.
func (g *Guard) Authorize(ctx context.Context, required ...domainauth.Role) (GuardDecision, error) {
	decision := GuardDecision{State: GuardUnresolved}

	sess, err := g.sessions.Current(ctx)
	if err != nil {
		if errors.Is(err, ports.ErrNoSession) {
			decision.State = GuardDenied
			decision.Redirect = LoginPath
			return decision, nil
		}
		return decision, fmt.Errorf("resolve session: %w", err)
	}

	if !sess.HasRole(required...) {
		// The visitor is known, just not entitled: send them home, not to login.
		decision.State = GuardDenied
		decision.Redirect = sess.Role().HomePath()
		decision.Session = &sess
		return decision, nil
	}

	decision.State = GuardGranted
	decision.Session = &sess
	return decision, nil
}
