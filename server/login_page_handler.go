package server

import (
	"context"
	"net/http"
	"strings"

	"github.com/jrsteele09/tollway-portal/auth"
	"github.com/jrsteele09/tollway-portal/identity"
	"github.com/jrsteele09/tollway-portal/internal/errors"
	"github.com/jrsteele09/tollway-portal/login"
	"github.com/rs/zerolog/log"
)

// LoginPageUIHandler displays the login page (GET /login). ?role=admin selects the admin tab.
func (s *Server) LoginPageUIHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		data := s.pageData(r, pageLogin)
		data.Form = LoginForm{
			Role:  formRole(r.URL.Query().Get("role")),
			Email: r.URL.Query().Get("email"),
		}
		if authCtx, ok := auth.FromContext(r.Context()); ok {
			data.Form.Submitting = s.flow.State(authCtx.SessionID()) == login.Submitting
		}
		s.renderPage(w, r, http.StatusOK, pageLogin, data)
	}
}

// LoginSubmissionHandler processes the login form submission (POST /login)
func (s *Server) LoginSubmissionHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		authCtx, ok := auth.FromContext(r.Context())
		if !ok {
			s.renderPending(w, r)
			return
		}

		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form data", http.StatusBadRequest)
			return
		}

		form := LoginForm{
			Role:  formRole(r.FormValue("role")),
			Email: strings.TrimSpace(r.FormValue("email")),
		}

		if !s.limiter.Allow(clientIP(r)) {
			form.Error = login.MsgTooManyAttempts
			s.renderLoginForm(w, r, http.StatusTooManyRequests, form)
			return
		}

		// The submission outlives the browser: leaving the page does not abort it
		ctx := context.WithoutCancel(r.Context())
		result, err := s.flow.Submit(ctx, authCtx, login.Submission{
			Role:     form.Role,
			Email:    form.Email,
			Password: r.FormValue("password"),
		})
		if err != nil {
			form.Error = login.UserMessage(err)
			s.renderLoginForm(w, r, loginErrorStatus(err), form)
			return
		}

		redirectSuccess(w, r, result.Target)
	}
}

// LogoutHandler clears the identity from memory and the session store
func (s *Server) LogoutHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if authCtx, ok := auth.FromContext(r.Context()); ok {
			if err := authCtx.Logout(r.Context()); err != nil {
				log.Err(err).Str("session_id", authCtx.SessionID()).Msg("Failed to clear session")
				http.Error(w, "Failed to log out", http.StatusInternalServerError)
				return
			}
		}
		redirectSuccess(w, r, RouteHome)
	}
}

func (s *Server) renderLoginForm(w http.ResponseWriter, r *http.Request, status int, form LoginForm) {
	data := s.pageData(r, pageLogin)
	data.Form = form
	s.renderPage(w, r, status, pageLogin, data)
}

// formRole maps the role selector onto a role, defaulting to user
func formRole(value string) identity.Role {
	role, err := identity.ParseRole(value)
	if err != nil {
		return identity.RoleUser
	}
	return role
}

func loginErrorStatus(err error) int {
	switch {
	case errors.Is(err, errors.ErrSubmissionInProgress):
		return http.StatusConflict
	case errors.Is(err, errors.ErrLoginUnavailable):
		return http.StatusBadGateway
	case errors.Is(err, errors.ErrAdminLoginDisabled):
		return http.StatusForbidden
	case errors.Is(err, errors.ErrInvalidCredentials):
		return http.StatusBadRequest
	case errors.Is(err, errors.ErrLoginRejected), errors.Is(err, errors.ErrInvalidIdentity), errors.Is(err, errors.ErrRoleMismatch):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}
