package guard_test

import (
	"testing"

	"github.com/jrsteele09/tollway-portal/auth"
	"github.com/jrsteele09/tollway-portal/guard"
	"github.com/jrsteele09/tollway-portal/identity"
	"github.com/stretchr/testify/require"
)

func stateWith(role identity.Role) auth.State {
	return auth.State{Identity: &identity.Identity{Email: "a@b.com", Token: "tok", Role: role}}
}

func TestAuthenticated(t *testing.T) {
	require.Equal(t, guard.Allow, guard.Authenticated(stateWith(identity.RoleUser)))
	require.Equal(t, guard.Allow, guard.Authenticated(stateWith(identity.RoleAdmin)))
	require.Equal(t, guard.Redirect, guard.Authenticated(auth.State{}))
}

func TestAdmin(t *testing.T) {
	require.Equal(t, guard.Allow, guard.Admin(stateWith(identity.RoleAdmin)))

	// Wrong role and no identity are indistinguishable to the caller
	userDecision := guard.Admin(stateWith(identity.RoleUser))
	anonDecision := guard.Admin(auth.State{})
	require.Equal(t, guard.Redirect, userDecision)
	require.Equal(t, userDecision, anonDecision)
}

func TestGuards_WithholdWhileLoading(t *testing.T) {
	loading := stateWith(identity.RoleAdmin)
	loading.Loading = true

	for name, policy := range map[string]guard.Policy{"authenticated": guard.Authenticated, "admin": guard.Admin} {
		t.Run(name, func(t *testing.T) {
			require.Equal(t, guard.Pending, policy(loading))
			require.Equal(t, guard.Pending, policy(auth.State{Loading: true}))
		})
	}
}
