package server

import (
	"net/http"

	"github.com/jrsteele09/tollway-portal/auth"
	"github.com/jrsteele09/tollway-portal/guard"
	"github.com/rs/zerolog/log"
)

// SessionMiddleware makes sure the browser has a session cookie, then attaches an auth context
// rehydrated from the session store to the request
func (s *Server) SessionMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessionID, isNew := sessionIDFromRequest(r)
		if isNew {
			s.SetSessionCookie(w, sessionID, r)
		}

		authCtx := auth.New(s.store, sessionID)
		authCtx.Rehydrate(r.Context())

		next(w, r.WithContext(auth.WithContext(r.Context(), authCtx)))
	}
}

// RequireAuthenticated is middleware for pages any signed-in identity may open
func (s *Server) RequireAuthenticated() func(http.HandlerFunc) http.HandlerFunc {
	return s.requirePolicy(guard.Authenticated)
}

// RequireAdmin is middleware for admin-only pages
func (s *Server) RequireAdmin() func(http.HandlerFunc) http.HandlerFunc {
	return s.requirePolicy(guard.Admin)
}

func (s *Server) requirePolicy(policy guard.Policy) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			switch policy(authState(r)) {
			case guard.Allow:
				next(w, r)
			case guard.Redirect:
				redirectSuccess(w, r, guard.LoginPath)
			default:
				s.renderPending(w, r)
			}
		}
	}
}

// authState returns the state of the request's auth context. A request that never passed the
// session middleware is treated as still loading.
func authState(r *http.Request) auth.State {
	authCtx, ok := auth.FromContext(r.Context())
	if !ok {
		return auth.State{Loading: true}
	}
	return authCtx.State()
}

func (s *Server) renderPending(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Retry-After", "1")
	if err := s.pages.render(w, http.StatusServiceUnavailable, pageLoading, s.pageData(r, pageLoading)); err != nil {
		log.Err(err).Str("path", r.URL.Path).Msg("Failed to render placeholder")
	}
}
