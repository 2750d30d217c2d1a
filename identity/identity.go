package identity

import (
	"fmt"
	"strings"

	"github.com/jrsteele09/tollway-portal/internal/errors"
)

// Role is the role asserted for a signed-in identity
type Role string

const (
	RoleUser  Role = "user"  // Regular portal user
	RoleAdmin Role = "admin" // Administrator, may open the admin dashboard
)

// Valid reports whether r is one of the known roles
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}

// ParseRole maps a form or payload value onto a Role. Unknown values return an error.
func ParseRole(value string) (Role, error) {
	r := Role(strings.ToLower(strings.TrimSpace(value)))
	if !r.Valid() {
		return "", fmt.Errorf("[identity ParseRole] %q: %w", value, errors.ErrInvalidRole)
	}
	return r, nil
}

// Identity is the signed-in user or admin as held by the portal
type Identity struct {
	Email string `json:"email"`
	Token string `json:"token"` // Opaque bearer credential, never parsed unless verification is enabled
	Role  Role   `json:"role"`
}

// Record is the persisted part of an Identity. The token is stored separately.
type Record struct {
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

func (i Identity) IsAdmin() bool {
	return i.Role == RoleAdmin
}

func (i Identity) IsUser() bool {
	return i.Role == RoleUser
}

// Record returns the identity without its token
func (i Identity) Record() Record {
	return Record{Email: i.Email, Role: i.Role}
}

// Validate rejects identities that lack a token or carry an unknown role
func (i Identity) Validate() error {
	if strings.TrimSpace(i.Token) == "" {
		return errors.Wrapf(errors.ErrMissingToken, "[identity Validate] %s", i.Email)
	}
	if !i.Role.Valid() {
		return errors.Wrapf(errors.ErrInvalidRole, "[identity Validate] role %q", i.Role)
	}
	return nil
}

// FromRecord joins a persisted record with its token
func FromRecord(rec Record, token string) Identity {
	return Identity{Email: rec.Email, Token: token, Role: rec.Role}
}
