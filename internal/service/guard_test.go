package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainauth "github.com/criseulises/customer-admin-go/internal/domain/auth"
	mockauth "github.com/criseulises/customer-admin-go/internal/mocks/auth"
	"github.com/criseulises/customer-admin-go/internal/testutil"
)

func guardWithSession(t *testing.T, role domainauth.Role) (*Guard, *mockauth.MemorySessionStore) {
	t.Helper()
	store := mockauth.NewMemorySessionStore()
	sess := testutil.NewSession().
		WithRole(role).
		WithExpiresAt(time.Now().Add(time.Hour)).
		Build()
	require.NoError(t, store.Save(context.Background(), sess))
	return NewGuard(GuardOptions{Sessions: store}), store
}

func TestGuardDeniesUnknownVisitorToLogin(t *testing.T) {
	guard := NewGuard(GuardOptions{Sessions: mockauth.NewMemorySessionStore()})

	decision, err := guard.Authorize(context.Background(), domainauth.RoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, GuardDenied, decision.State)
	assert.Equal(t, LoginPath, decision.Redirect)
	assert.Nil(t, decision.Session)
	assert.False(t, decision.Granted())
}

func TestGuardGrantsMatchingRole(t *testing.T) {
	guard, _ := guardWithSession(t, domainauth.RoleSuperAdmin)

	decision, err := guard.Authorize(context.Background(), domainauth.RoleSuperAdmin)
	require.NoError(t, err)
	assert.True(t, decision.Granted())
	require.NotNil(t, decision.Session)
	assert.Equal(t, domainauth.RoleSuperAdmin, decision.Session.Role())
}

func TestGuardEmptyRoleSetAdmitsAnyAuthenticated(t *testing.T) {
	guard, _ := guardWithSession(t, domainauth.RoleAdmin)

	decision, err := guard.Authorize(context.Background())
	require.NoError(t, err)
	assert.True(t, decision.Granted())
}

func TestGuardSendsKnownVisitorHomeNotToLogin(t *testing.T) {
	guard, _ := guardWithSession(t, domainauth.RoleAdmin)

	decision, err := guard.Authorize(context.Background(), domainauth.RoleSuperAdmin)
	require.NoError(t, err)
	assert.Equal(t, GuardDenied, decision.State)
	assert.Equal(t, "/dashboard", decision.Redirect)
	require.NotNil(t, decision.Session, "denied-but-known carries the session")
}

func TestGuardExpiredSessionReadsAsUnknown(t *testing.T) {
	store := mockauth.NewMemorySessionStore()
	store.Now = testutil.FixedTimeFunc(testutil.TestTime())
	sess := testutil.NewSession().
		WithExpiresAt(testutil.TestTime().Add(time.Minute)).
		Build()
	require.NoError(t, store.Save(context.Background(), sess))
	store.Now = testutil.FixedTimeFunc(testutil.TestTime().Add(time.Hour))

	guard := NewGuard(GuardOptions{Sessions: store})
	decision, err := guard.Authorize(context.Background(), domainauth.RoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, GuardDenied, decision.State)
	assert.Equal(t, LoginPath, decision.Redirect)
}

func TestGuardResolvesAfresh(t *testing.T) {
	guard, store := guardWithSession(t, domainauth.RoleAdmin)
	ctx := context.Background()

	decision, err := guard.Authorize(ctx)
	require.NoError(t, err)
	assert.True(t, decision.Granted())

	require.NoError(t, store.Clear(ctx))

	decision, err = guard.Authorize(ctx)
	require.NoError(t, err)
	assert.Equal(t, GuardDenied, decision.State, "a cleared session is seen on the next check")
}
