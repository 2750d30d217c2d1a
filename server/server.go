package server

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/jrsteele09/tollway-portal/internal/config"
	"github.com/jrsteele09/tollway-portal/login"
	"github.com/jrsteele09/tollway-portal/sessions"
	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"
)

type Server struct {
	env     string // Environment (e.g., "DEV", "PROD")
	mux     *http.ServeMux
	routes  []string
	config  config.Config
	store   *sessions.Store
	flow    *login.Flow
	limiter *RateLimiter
	pages   *pageRenderer
}

func New(cfg config.Config, store *sessions.Store, flow *login.Flow) (*Server, error) {
	pages, err := newPageRenderer()
	if err != nil {
		return nil, fmt.Errorf("[Server New] failed to parse templates: %w", err)
	}

	perMinute := cfg.GetLoginRatePerMinute()
	if perMinute <= 0 {
		perMinute = 1
	}

	s := &Server{
		env:     cfg.GetEnv(),
		mux:     http.NewServeMux(),
		config:  cfg,
		store:   store,
		flow:    flow,
		limiter: NewRateLimiter(rate.Limit(float64(perMinute)/60), cfg.GetLoginRateBurst()),
		pages:   pages,
	}

	s.initRoutes()
	s.logRoutes()

	return s, nil
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

// Close releases background resources
func (s *Server) Close() {
	s.limiter.Close()
}

func (s *Server) RegisterRouteHandler(pattern string, handler http.Handler) {
	s.routes = append(s.routes, pattern)
	s.mux.Handle(pattern, handler)
}

func (s *Server) RegisterRouteFunc(pattern string, handler func(http.ResponseWriter, *http.Request)) {
	s.routes = append(s.routes, pattern)
	s.mux.HandleFunc(pattern, handler)
}

func (s *Server) logRoutes() {
	if s.env != "DEV" {
		return // Skip logging in non-development environments
	}
	for _, route := range s.routes {
		parts := strings.SplitN(route, " ", 2)

		if len(parts) > 1 {
			logRoute(parts[0], parts[1])
		} else {
			logRoute("", parts[0])
		}
	}
}

func logRoute(method, path string) {
	log.Info().Msgf("[%-19s] %s", colouredMethod(method), path)
}

func colouredMethod(method string) string {
	paddedMethod := fmt.Sprintf(" %-7s", method)
	if color, ok := methodColors[method]; ok {
		return color + paddedMethod + ResetColor
	}
	return Gray + paddedMethod + ResetColor
}

// Helper function to determine the scheme (http/https)
func getScheme(r *http.Request) string {
	if r.TLS != nil {
		return "https"
	}
	if scheme := r.Header.Get("X-Forwarded-Proto"); scheme != "" {
		return scheme
	}
	return "http"
}
