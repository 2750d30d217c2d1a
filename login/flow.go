package login

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/jrsteele09/tollway-portal/auth"
	"github.com/jrsteele09/tollway-portal/identity"
	"github.com/jrsteele09/tollway-portal/internal/errors"
	"github.com/rs/zerolog/log"
)

// Navigation targets after a successful sign-in
const (
	UserTarget  = "/dashboard"
	AdminTarget = "/admin/dashboard"
)

// State of the submission of one browser session
type State int

const (
	Idle State = iota
	Submitting
)

func (s State) String() string {
	if s == Submitting {
		return "submitting"
	}
	return "idle"
}

// Submission is one press of the login button. Role comes from the form's role selector.
type Submission struct {
	Role     identity.Role
	Email    string
	Password string
}

// Result of a successful submission
type Result struct {
	Identity identity.Identity
	Target   string
}

// UserAuthenticator exchanges user credentials for an identity
type UserAuthenticator interface {
	Login(ctx context.Context, email, password string) (identity.Identity, error)
}

// RoleVerifier checks that a bearer token really carries the asserted role
type RoleVerifier interface {
	VerifyRole(rawToken string, asserted identity.Role) error
}

// Flow runs login submissions: idle -> submitting -> (success | failure -> idle).
// Only one submission per browser session may be in flight.
type Flow struct {
	admin    *AdminAuthenticator
	users    UserAuthenticator
	verifier RoleVerifier

	mu       sync.Mutex
	inFlight map[string]struct{}
}

// NewFlow builds a flow. verifier may be nil, in which case user tokens are not inspected.
func NewFlow(admin *AdminAuthenticator, users UserAuthenticator, verifier RoleVerifier) *Flow {
	return &Flow{
		admin:    admin,
		users:    users,
		verifier: verifier,
		inFlight: make(map[string]struct{}),
	}
}

// State reports whether a submission is running for the browser session
func (f *Flow) State(sessionID string) State {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.inFlight[sessionID]; ok {
		return Submitting
	}
	return Idle
}

func (f *Flow) begin(sessionID string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.inFlight[sessionID]; ok {
		return false
	}
	f.inFlight[sessionID] = struct{}{}
	return true
}

func (f *Flow) end(sessionID string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.inFlight, sessionID)
}

// Submit authenticates the submission and, on success, signs the identity into authCtx.
// On failure authCtx is left untouched and the returned error carries the message to show.
func (f *Flow) Submit(ctx context.Context, authCtx *auth.Context, sub Submission) (Result, error) {
	sessionID := authCtx.SessionID()
	if !f.begin(sessionID) {
		return Result{}, newError(MsgInProgress, errors.ErrSubmissionInProgress)
	}
	defer f.end(sessionID)

	email := strings.TrimSpace(sub.Email)
	if email == "" || sub.Password == "" {
		return Result{}, newError(MsgMissingFields, errors.ErrInvalidCredentials)
	}

	var (
		id     identity.Identity
		target string
		err    error
	)
	switch sub.Role {
	case identity.RoleAdmin:
		id, err = f.admin.Authenticate(ctx, email)
		target = AdminTarget
	case identity.RoleUser, "":
		id, err = f.loginUser(ctx, email, sub.Password)
		target = UserTarget
	default:
		err = newError(MsgLoginFailed, errors.Wrapf(errors.ErrInvalidRole, "[login Submit] role %q", sub.Role))
	}
	if err != nil {
		log.Info().Err(err).Str("email", email).Str("role", string(sub.Role)).Msg("Login failed")
		return Result{}, err
	}

	if err := authCtx.Login(ctx, id); err != nil {
		log.Err(err).Str("email", email).Msg("Failed to persist identity")
		return Result{}, newError(MsgSessionUnwritable, err)
	}

	log.Info().Str("email", id.Email).Str("role", string(id.Role)).Msg("Login succeeded")
	return Result{Identity: id, Target: target}, nil
}

func (f *Flow) loginUser(ctx context.Context, email, password string) (identity.Identity, error) {
	id, err := f.users.Login(ctx, email, password)
	if err != nil {
		return identity.Identity{}, err
	}

	if f.verifier != nil {
		if err := f.verifier.VerifyRole(id.Token, id.Role); err != nil {
			return identity.Identity{}, newError(MsgLoginFailed, fmt.Errorf("[login Submit] %w", err))
		}
	}
	return id, nil
}
