package login

import (
	"fmt"

	"github.com/jrsteele09/tollway-portal/internal/errors"
)

// Messages shown on the login form
const (
	MsgLoginFailed       = "Login failed"
	MsgAdminDisabled     = "Admin login is disabled"
	MsgInProgress        = "A login is already in progress"
	MsgMissingFields     = "Email and password are required"
	MsgTooManyAttempts   = "Too many login attempts, please wait a moment"
	MsgSessionUnwritable = "Could not save your session, please try again"
)

// Error is a failed submission. Message is safe to show to the user; Err is the cause.
type Error struct {
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func newError(message string, err error) *Error {
	return &Error{Message: message, Err: err}
}

// UserMessage returns the message to display for err
func UserMessage(err error) string {
	var le *Error
	if errors.As(err, &le) && le.Message != "" {
		return le.Message
	}
	return MsgLoginFailed
}
