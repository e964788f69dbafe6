package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/criseulises/customer-admin-go/internal/domain/model"
)

func TestParseRole(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Role
		ok    bool
	}{
		{"superadmin exact", "SUPERADMIN", RoleSuperAdmin, true},
		{"admin lowercase", "admin", RoleAdmin, true},
		{"whitespace", "  superadmin  ", RoleSuperAdmin, true},
		{"unknown", "OPERATOR", "", false},
		{"empty", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseRole(tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRoleHomePath(t *testing.T) {
	assert.Equal(t, "/admin/dashboard", RoleSuperAdmin.HomePath())
	assert.Equal(t, "/dashboard", RoleAdmin.HomePath())
}

func TestSessionValid(t *testing.T) {
	sess := Session{
		Token:     "tok",
		User:      model.User{ID: 1, Role: string(RoleAdmin)},
		ExpiresAt: time.Now().Add(time.Hour),
	}
	assert.True(t, sess.Valid())

	noToken := sess
	noToken.Token = ""
	assert.False(t, noToken.Valid())

	noUser := sess
	noUser.User = model.User{}
	assert.False(t, noUser.Valid())
}

func TestSessionExpired(t *testing.T) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	sess := Session{ExpiresAt: now.Add(time.Minute)}

	assert.False(t, sess.Expired(now))
	assert.True(t, sess.Expired(now.Add(2*time.Minute)))
}

func TestSessionHasRole(t *testing.T) {
	admin := Session{User: model.User{ID: 1, Role: string(RoleAdmin)}}

	assert.True(t, admin.HasRole(), "empty set admits any session")
	assert.True(t, admin.HasRole(RoleAdmin))
	assert.True(t, admin.HasRole(RoleSuperAdmin, RoleAdmin))
	assert.False(t, admin.HasRole(RoleSuperAdmin))
}
