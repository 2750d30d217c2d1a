package layout

// Visibility says which page chrome surrounds the view at a path
type Visibility struct {
	ShowNavbar bool
	ShowFooter bool
	Hero       bool // The hero page renders edge to edge without padding
}

var (
	noNavbar = map[string]struct{}{"/login": {}, "/register": {}}
	noFooter = map[string]struct{}{"/login": {}, "/register": {}, "/": {}}
)

// For returns the chrome for the exact request path
func For(path string) Visibility {
	_, hideNavbar := noNavbar[path]
	_, hideFooter := noFooter[path]
	return Visibility{
		ShowNavbar: !hideNavbar,
		ShowFooter: !hideFooter,
		Hero:       path == "/",
	}
}
