package server

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"path"
)

//go:embed templates
var templateFiles embed.FS

func TemplateFilesFS() fs.FS {
	subFS, err := fs.Sub(templateFiles, "templates")
	if err != nil {
		panic("Failed to create templates sub filesystem: " + err.Error())
	}
	return subFS
}

type pageName string

const (
	pageHome           pageName = "home"
	pageFeatures       pageName = "features"
	pageContact        pageName = "contact"
	pageLearnMore      pageName = "learn_more"
	pageAnalytics      pageName = "analytics"
	pageVehicles       pageName = "vehicles"
	pageFines          pageName = "fines"
	pageToll           pageName = "toll"
	pageTransactions   pageName = "transactions"
	pageDashboard      pageName = "dashboard"
	pageAdminDashboard pageName = "admin_dashboard"
	pageLogin          pageName = "login"
	pageRegister       pageName = "register"
	pageLoading        pageName = "loading"
)

type pageDef struct {
	title      string
	standalone bool // Rendered without the shared layout
}

var pageDefs = map[pageName]pageDef{
	pageHome:           {title: "Home"},
	pageFeatures:       {title: "Features"},
	pageContact:        {title: "Contact"},
	pageLearnMore:      {title: "Learn More"},
	pageAnalytics:      {title: "Analytics"},
	pageVehicles:       {title: "Vehicles"},
	pageFines:          {title: "Fines"},
	pageToll:           {title: "Toll"},
	pageTransactions:   {title: "Transactions"},
	pageDashboard:      {title: "Dashboard"},
	pageAdminDashboard: {title: "Admin Dashboard", standalone: true},
	pageLogin:          {title: "Login"},
	pageRegister:       {title: "Register"},
	pageLoading:        {title: "Loading"},
}

type pageRenderer struct {
	templates map[pageName]*template.Template
}

// newPageRenderer parses every page once at startup
func newPageRenderer() (*pageRenderer, error) {
	p := &pageRenderer{templates: make(map[pageName]*template.Template, len(pageDefs))}
	fsys := TemplateFilesFS()

	for name, def := range pageDefs {
		files := []string{"layout.html", "pages/" + string(name) + ".html"}
		if def.standalone {
			files = files[1:]
		}
		t, err := template.New(path.Base(files[0])).ParseFS(fsys, files...)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", name, err)
		}
		p.templates[name] = t
	}
	return p, nil
}

// render executes into a buffer first so a template error never leaves a half written page
func (p *pageRenderer) render(w http.ResponseWriter, status int, name pageName, data any) error {
	t, ok := p.templates[name]
	if !ok {
		return fmt.Errorf("unknown page %q", name)
	}

	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		http.Error(w, "Failed to render page", http.StatusInternalServerError)
		return fmt.Errorf("execute %s: %w", name, err)
	}

	w.Header().Set("Content-Type", contentTypeHTML)
	w.WriteHeader(status)
	_, err := buf.WriteTo(w)
	return err
}
