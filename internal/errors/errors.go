package errors

import (
	"errors"
	"fmt"
)

// Common error types for the portal
var (
	// Identity errors
	ErrInvalidIdentity = errors.New("invalid identity")
	ErrInvalidRole     = errors.New("invalid role")
	ErrMissingToken    = errors.New("missing token")

	// Login errors
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrLoginUnavailable     = errors.New("login endpoint unavailable")
	ErrLoginRejected        = errors.New("login rejected")
	ErrAdminLoginDisabled   = errors.New("admin login disabled")
	ErrSubmissionInProgress = errors.New("submission in progress")
	ErrRoleMismatch         = errors.New("token role does not match asserted role")

	// Token errors
	ErrInvalidToken = errors.New("invalid token")

	// Session errors
	ErrCorruptSession = errors.New("corrupt session data")

	// General errors
	ErrNotFound = errors.New("not found")
)

// Wrapf wraps an error with context using fmt.Errorf
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf(format+": %w", append(args, err)...)
}

// Is reports whether any error in err's chain matches target
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
