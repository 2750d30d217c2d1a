package login

import (
	"context"
	"fmt"
	"time"

	"github.com/jrsteele09/tollway-portal/identity"
	"github.com/jrsteele09/tollway-portal/internal/errors"
)

// AdminToken is the placeholder credential handed to every admin sign-in
const AdminToken = "dummy-admin-token"

// DefaultAdminDelay mimics a round trip to a backend that does not exist yet
const DefaultAdminDelay = 800 * time.Millisecond

// AdminAuthenticator signs in any email as admin after a fixed delay.
// Nothing is verified: the role is asserted by the login form.
// TODO: replace with verification against a server issued token once the backend exposes an admin login.
type AdminAuthenticator struct {
	Enabled bool
	Delay   time.Duration
}

func NewAdminAuthenticator(enabled bool, delay time.Duration) *AdminAuthenticator {
	return &AdminAuthenticator{Enabled: enabled, Delay: delay}
}

func (a *AdminAuthenticator) Authenticate(ctx context.Context, email string) (identity.Identity, error) {
	if !a.Enabled {
		return identity.Identity{}, newError(MsgAdminDisabled, errors.ErrAdminLoginDisabled)
	}

	if a.Delay > 0 {
		timer := time.NewTimer(a.Delay)
		defer timer.Stop()
		select {
		case <-timer.C:
		case <-ctx.Done():
			return identity.Identity{}, newError(MsgLoginFailed, fmt.Errorf("[login AdminAuthenticate] %w", ctx.Err()))
		}
	}

	return identity.Identity{
		Email: email,
		Token: AdminToken,
		Role:  identity.RoleAdmin,
	}, nil
}
