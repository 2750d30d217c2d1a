package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/jrsteele09/tollway-portal/identity"
	"github.com/jrsteele09/tollway-portal/layout"
	"github.com/rs/zerolog/log"
)

const contentTypeHTML = "text/html; charset=utf-8"

// PageData is the template model shared by every page
type PageData struct {
	AppName  string
	Title    string
	Path     string
	Year     int
	Layout   layout.Visibility
	Identity *identity.Identity // Nil when signed out or while the session is loading
	IsAdmin  bool
	IsUser   bool
	Form     LoginForm
}

// LoginForm is the state of the login form between submissions
type LoginForm struct {
	Role       identity.Role
	Email      string
	Error      string
	Submitting bool
}

func (f LoginForm) IsAdminRole() bool {
	return f.Role == identity.RoleAdmin
}

func (s *Server) pageData(r *http.Request, name pageName) PageData {
	data := PageData{
		AppName: s.config.GetAppName(),
		Title:   pageDefs[name].title,
		Path:    r.URL.Path,
		Year:    time.Now().Year(),
		Layout:  layout.For(r.URL.Path),
	}

	state := authState(r)
	if !state.Loading {
		data.Identity = state.Identity
		data.IsAdmin = state.IsAdmin()
		data.IsUser = state.IsUser()
	}
	return data
}

func (s *Server) renderPage(w http.ResponseWriter, r *http.Request, status int, name pageName, data PageData) {
	if err := s.pages.render(w, status, name, data); err != nil {
		log.Err(err).Str("path", r.URL.Path).Msg("Failed to render page")
	}
}

// HomeHandler shows the hero to visitors and sends signed-in identities to their dashboard
func (s *Server) HomeHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		state := authState(r)
		if state.Loading {
			s.renderPending(w, r)
			return
		}
		if state.Identity != nil {
			redirectSuccess(w, r, RouteDashboard)
			return
		}
		s.renderPage(w, r, http.StatusOK, pageHome, s.pageData(r, pageHome))
	}
}

// PageHandler renders a page that needs nothing beyond the shared page data
func (s *Server) PageHandler(name pageName) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.renderPage(w, r, http.StatusOK, name, s.pageData(r, name))
	}
}

func (s *Server) AdminDashboardHandler() http.HandlerFunc {
	return s.PageHandler(pageAdminDashboard)
}

// FallbackHandler replaces navigation to unknown paths with the home page
func (s *Server) FallbackHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, RouteHome, http.StatusSeeOther)
	}
}

func (s *Server) HealthHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	}
}
