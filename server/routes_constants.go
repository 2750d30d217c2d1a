package server

// Route path constants
// All application routes are defined here to ensure consistency and prevent typos
const (
	// Public
	RouteHome      = "/"
	RouteFeatures  = "/features"
	RouteContact   = "/contact"
	RouteLearnMore = "/LearnMore"
	RouteAnalytics = "/analytics"

	// Signed-in users
	RouteVehicles     = "/features/vehicles"
	RouteFines        = "/features/fines"
	RouteToll         = "/features/toll"
	RouteTransactions = "/features/transactions"
	RouteDashboard    = "/dashboard"

	// Admins
	RouteAdminDashboard = "/admin/dashboard"

	// Auth
	RouteLogin    = "/login"
	RouteRegister = "/register"
	RouteLogout   = "/logout"

	// API
	RouteHealth = "/healthz"

	// Static Asset Routes (patterns)
	RouteStaticCSS = "/css/{file}"
)
