package server

import (
	"net/http"
	"strings"
)

func (s *Server) initRoutes() {
	html := func(h http.HandlerFunc, mw ...func(http.HandlerFunc) http.HandlerFunc) http.HandlerFunc {
		return ChainMiddleware(h, s.HTMLMiddleWare(mw...)...)
	}

	// PUBLIC
	s.RegisterRouteFunc("GET /{$}", html(s.HomeHandler()))
	s.RegisterRouteFunc("GET "+RouteFeatures, html(s.PageHandler(pageFeatures)))
	s.RegisterRouteFunc("GET "+RouteContact, html(s.PageHandler(pageContact)))
	s.RegisterRouteFunc("GET "+RouteLearnMore, html(s.PageHandler(pageLearnMore)))
	s.RegisterRouteFunc("GET "+RouteAnalytics, html(s.PageHandler(pageAnalytics)))

	// SIGNED-IN USERS
	s.RegisterRouteFunc("GET "+RouteVehicles, html(s.PageHandler(pageVehicles), s.RequireAuthenticated()))
	s.RegisterRouteFunc("GET "+RouteFines, html(s.PageHandler(pageFines), s.RequireAuthenticated()))
	s.RegisterRouteFunc("GET "+RouteToll, html(s.PageHandler(pageToll), s.RequireAuthenticated()))
	s.RegisterRouteFunc("GET "+RouteTransactions, html(s.PageHandler(pageTransactions), s.RequireAuthenticated()))
	s.RegisterRouteFunc("GET "+RouteDashboard, html(s.PageHandler(pageDashboard), s.RequireAuthenticated()))

	// ADMINS
	s.RegisterRouteFunc("GET "+RouteAdminDashboard, html(s.AdminDashboardHandler(), s.RequireAdmin()))

	// LOGIN
	s.RegisterRouteFunc("GET "+RouteLogin, html(s.LoginPageUIHandler()))
	s.RegisterRouteFunc("POST "+RouteLogin, html(s.LoginSubmissionHandler()))
	s.RegisterRouteFunc("GET "+RouteRegister, html(s.PageHandler(pageRegister)))
	s.RegisterRouteFunc("POST "+RouteLogout, html(s.LogoutHandler()))

	// API
	s.RegisterRouteHandler("GET "+RouteHealth, ChainMiddleware(s.HealthHandler(), s.APIMiddleware()...))

	s.RegisterRouteHandler("GET "+RouteStaticCSS, ChainMiddleware(s.serveFileHandler(), s.CacheMiddleware))

	// Anything else goes back to the home page
	s.RegisterRouteFunc("/", ChainMiddleware(s.FallbackHandler(), s.LoggingMiddleware))
}

func (s *Server) serveFileHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filePath := strings.TrimPrefix(r.URL.Path, "/")
		if filePath == "" {
			http.Error(w, "404 - Page Not Found", http.StatusNotFound)
			return
		}
		if err := StreamFile(w, r, filePath); err != nil {
			logError(r.Method, filePath, err.Error())
			http.Error(w, "404 - Page Not Found", http.StatusNotFound)
			return
		}
	}
}

func logError(method, path, error string) {
	logRoute(method, path+" "+Red+error+ResetColor)
}
