package devlogin

import (
	"fmt"
	"strings"

	"github.com/jrsteele09/tollway-portal/identity"
	"github.com/jrsteele09/tollway-portal/users"
)

// Seed creates users from a comma separated list of email:password:role entries.
// The role may be omitted and defaults to user.
func Seed(repo users.UserRepo, entries string) (int, error) {
	count := 0
	for _, entry := range strings.Split(entries, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}

		parts := strings.SplitN(entry, ":", 3)
		if len(parts) < 2 || parts[0] == "" || parts[1] == "" {
			return count, fmt.Errorf("[devlogin Seed] malformed entry %q", entry)
		}

		role := identity.RoleUser
		if len(parts) == 3 {
			r, err := identity.ParseRole(parts[2])
			if err != nil {
				return count, fmt.Errorf("[devlogin Seed] entry %q: %w", parts[0], err)
			}
			role = r
		}

		hash, err := users.HashPassword(parts[1])
		if err != nil {
			return count, fmt.Errorf("[devlogin Seed] hash password: %w", err)
		}
		if err := repo.Upsert(&users.User{Email: parts[0], PasswordHash: hash, Role: role}); err != nil {
			return count, fmt.Errorf("[devlogin Seed] upsert %q: %w", parts[0], err)
		}
		count++
	}
	return count, nil
}
