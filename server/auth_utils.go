package server

import (
	"net/http"
	"time"

	"github.com/google/uuid"
)

const (
	// sessionCookieName holds the browser session id the session store is keyed by
	sessionCookieName = "session_id"
	// sessionCookieMaxAge keeps the cookie across browser restarts
	sessionCookieMaxAge = 30 * 24 * time.Hour
)

// sessionIDFromRequest returns the session id of the browser or a new one.
// isNew reports whether the cookie has to be set.
func sessionIDFromRequest(r *http.Request) (sessionID string, isNew bool) {
	cookie, err := r.Cookie(sessionCookieName)
	if err == nil {
		if id, err := uuid.Parse(cookie.Value); err == nil {
			return id.String(), false
		}
	}
	return uuid.New().String(), true
}

func (s *Server) SetSessionCookie(w http.ResponseWriter, sessionID string, r *http.Request) {
	maxAge := sessionCookieMaxAge
	if ttl := s.config.GetSessionTTL(); ttl > 0 {
		maxAge = ttl
	}

	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    sessionID,
		Path:     "/",
		HttpOnly: true,
		Secure:   getScheme(r) == "https",
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(maxAge.Seconds()),
	})
}

// redirectSuccess helper for htmx-aware redirects. A 303 replaces the navigation, so the
// refused or submitted page is not left in the browser history.
func redirectSuccess(w http.ResponseWriter, r *http.Request, path string) {
	if isHTMXRequest(r) {
		w.Header().Set("HX-Redirect", path)
		w.WriteHeader(http.StatusNoContent) // 204 - no content, just redirect instruction
		return
	}
	http.Redirect(w, r, path, http.StatusSeeOther)
}

// isHTMXRequest checks if the request was initiated by HTMX
func isHTMXRequest(r *http.Request) bool {
	return r.Header.Get("HX-Request") == "true"
}
