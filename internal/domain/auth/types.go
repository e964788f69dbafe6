package auth

// Package auth contains domain-level types for authentication and sessions.
// It is pure and free of transport/adapter concerns.

import (
	"strings"
	"time"

	"github.com/criseulises/customer-admin-go/internal/domain/model"
)

// Role represents an application's authorization role.
// Keep string form for easy persistence and wire transfer.
// Valid values are defined as constants below.
type Role string

const (
	RoleSuperAdmin Role = "SUPERADMIN"
	RoleAdmin      Role = "ADMIN"
)

// Valid reports whether the role is supported.
func (r Role) Valid() bool {
	switch r {
	case RoleSuperAdmin, RoleAdmin:
		return true
	default:
		return false
	}
}

// ParseRole normalizes a role string and reports whether it is supported.
func ParseRole(value string) (Role, bool) {
	role := Role(strings.ToUpper(strings.TrimSpace(value)))
	if role.Valid() {
		return role, true
	}
	return "", false
}

// HomePath returns the view a visitor with this role is sent to when a
// guard denies them a page they are authenticated for but not entitled to.
func (r Role) HomePath() string {
	if r == RoleSuperAdmin {
		return "/admin/dashboard"
	}
	return "/dashboard"
}

// Session is the client-side record persisted for an authenticated operator.
// Token is the opaque bearer credential issued by the backend at login; the
// profile is cached alongside it so callers can resolve "who is logged in"
// without a round trip. Token and profile live and die together: a record
// missing either is treated as not authenticated.
type Session struct {
	Token     string     `json:"token"`
	User      model.User `json:"user"`
	ExpiresAt time.Time  `json:"expires_at"`
}

// Valid reports whether the session carries both credential artifacts.
func (s Session) Valid() bool { return s.Token != "" && s.User.ID != 0 }

// Expired reports whether the session has passed its expiry at the given instant.
func (s Session) Expired(now time.Time) bool { return now.After(s.ExpiresAt) }

// Role returns the session profile's role in its typed form.
func (s Session) Role() Role { return Role(s.User.Role) }

// HasRole reports whether the session's role is in the required set.
// An empty set means any authenticated session qualifies.
func (s Session) HasRole(required ...Role) bool {
	if len(required) == 0 {
		return true
	}
	for _, r := range required {
		if s.Role() == r {
			return true
		}
	}
	return false
}
