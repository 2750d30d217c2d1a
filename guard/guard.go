// Package guard decides whether a navigation may render a protected view.
// Both policies are pure functions of the auth state and withhold a decision while the
// session is still being rehydrated.
package guard

import "github.com/jrsteele09/tollway-portal/auth"

// LoginPath is where refused navigations are sent
const LoginPath = "/login"

type Decision int

const (
	Pending  Decision = iota // Session still loading, render a neutral placeholder
	Allow                    // Render the requested view
	Redirect                 // Replace the navigation with LoginPath
)

func (d Decision) String() string {
	switch d {
	case Allow:
		return "allow"
	case Redirect:
		return "redirect"
	default:
		return "pending"
	}
}

// Policy is a guard decision function
type Policy func(state auth.State) Decision

// Authenticated allows any signed-in identity
func Authenticated(state auth.State) Decision {
	if state.Loading {
		return Pending
	}
	if state.Identity == nil {
		return Redirect
	}
	return Allow
}

// Admin allows only identities with the admin role. Being signed out and holding the wrong
// role are refused the same way.
func Admin(state auth.State) Decision {
	if state.Loading {
		return Pending
	}
	if state.Identity == nil || !state.Identity.IsAdmin() {
		return Redirect
	}
	return Allow
}
