//revive:disable-next-line:var-naming // legacy package name widely used across the project
package model

import (
	"strings"
	"time"

	apperrors "github.com/criseulises/customer-admin-go/internal/errors"
)

// User represents an administrator account managed through the backend.
// It is structurally identical to the profile cached in a session, but a
// User record is always "someone SUPERADMIN manages", never "myself".
type User struct {
	ID        int64      `json:"id"`
	Email     string     `json:"email"`
	FirstName string     `json:"firstName"`
	LastName  string     `json:"lastName"`
	FullName  string     `json:"fullName"`
	Role      string     `json:"role"`
	Active    bool       `json:"active"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

// CreateUserRequest represents parameters to create an administrator account.
type CreateUserRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Role      string `json:"role"`
}

// Validate checks required fields before the request is sent.
func (r *CreateUserRequest) Validate() error {
	if strings.TrimSpace(r.FirstName) == "" {
		return apperrors.ValidationField("firstName", "first name is required")
	}
	if strings.TrimSpace(r.LastName) == "" {
		return apperrors.ValidationField("lastName", "last name is required")
	}
	if strings.TrimSpace(r.Email) == "" {
		return apperrors.ValidationField("email", "email is required")
	}
	if r.Password == "" {
		return apperrors.ValidationField("password", "password is required")
	}
	if strings.TrimSpace(r.Role) == "" {
		return apperrors.ValidationField("role", "role is required")
	}
	return nil
}

// Normalize trims whitespace and upcases the role.
func (r *CreateUserRequest) Normalize() {
	r.FirstName = strings.TrimSpace(r.FirstName)
	r.LastName = strings.TrimSpace(r.LastName)
	r.Email = strings.TrimSpace(r.Email)
	r.Role = strings.ToUpper(strings.TrimSpace(r.Role))
}

// UpdateUserRequest represents parameters to update an administrator account.
// Password is optional: nil leaves the stored password unchanged.
type UpdateUserRequest struct {
	FirstName string  `json:"firstName"`
	LastName  string  `json:"lastName"`
	Email     string  `json:"email"`
	Password  *string `json:"password,omitempty"`
}

// Validate checks required fields before the request is sent.
func (r *UpdateUserRequest) Validate() error {
	if strings.TrimSpace(r.FirstName) == "" {
		return apperrors.ValidationField("firstName", "first name is required")
	}
	if strings.TrimSpace(r.LastName) == "" {
		return apperrors.ValidationField("lastName", "last name is required")
	}
	if strings.TrimSpace(r.Email) == "" {
		return apperrors.ValidationField("email", "email is required")
	}
	if r.Password != nil && *r.Password == "" {
		return apperrors.ValidationField("password", "password cannot be empty; omit it to keep the current one")
	}
	return nil
}
