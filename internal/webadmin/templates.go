// ABOUTME: Template rendering for dashboard pages inside the shell layout
// ABOUTME: Loads templates from the embedded filesystem and fills the shell data

package webadmin

import (
	"context"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"strings"
	"time"

	"github.com/K25anjali/local-Konnect/internal/nav"
	"github.com/K25anjali/local-Konnect/internal/resources"
	"github.com/K25anjali/local-Konnect/internal/routes"
	"github.com/K25anjali/local-Konnect/internal/session"
)

// shellData is what the layout needs around every page
type shellData struct {
	Title      string
	NavbarText string
	Location   string
	Sidebar    template.HTML
	Navbar     template.HTML
	CSRFToken  string
	Toast      *toast
}

type pageData struct {
	Shell shellData
	Page  any
}

var templateFuncs = template.FuncMap{
	"permitted": func(r resources.Role, p string) bool { return r.HasPermission(p) },
	"amount": func(v int64) string { return fmt.Sprintf("₹%d", v) },
	"date": func(t time.Time) string {
		if t.IsZero() {
			return ""
		}
		return t.Format("2006-01-02")
	},
	"filter": func(name, placeholder, current string, options []string) filterSelect {
		return filterSelect{Name: name, Placeholder: placeholder, Current: current, Options: options}
	},
}

// filterSelect feeds the shared "filter" template
type filterSelect struct {
	Name        string
	Placeholder string
	Current     string
	Options     []string
}

// parseTemplates builds one template set per page, each sharing its area's layout
func parseTemplates() (map[string]*template.Template, error) {
	pages, err := fs.Glob(templateFS, "templates/pages/*.html")
	if err != nil {
		return nil, err
	}

	out := make(map[string]*template.Template, len(pages))
	for _, page := range pages {
		name := strings.TrimSuffix(strings.TrimPrefix(page, "templates/pages/"), ".html")
		layout := "templates/base.html"
		if strings.HasPrefix(name, "auth_") {
			layout = "templates/auth.html"
		}
		tmpl, err := template.New("base").Funcs(templateFuncs).ParseFS(templateFS, layout, page)
		if err != nil {
			return nil, fmt.Errorf("parsing %s: %w", page, err)
		}
		out[name] = tmpl
	}
	return out, nil
}

// render writes page name inside the shell for the current location
func (a *Admin) render(w http.ResponseWriter, r *http.Request, name string, page any) {
	a.renderStatus(w, r, http.StatusOK, name, page)
}

func (a *Admin) renderStatus(w http.ResponseWriter, r *http.Request, status int, name string, page any) {
	a.renderShell(w, r, status, name, page, nil)
}

// renderShell renders a page with an explicit toast. A nil toast falls back
// to the pending flash message.
func (a *Admin) renderShell(w http.ResponseWriter, r *http.Request, status int, name string, page any, t *toast) {
	tmpl, ok := a.templates[name]
	if !ok {
		a.logger.Error("unknown template", "template", name)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	location := pageLocation(r)
	shell := shellData{
		Title:      routes.Title(a.tree, location),
		NavbarText: routes.NavbarText(a.tree, location),
		Location:   location,
		CSRFToken:  getCSRFToken(r),
		Toast:      takeFlash(w, r),
	}
	if t != nil {
		shell.Toast = t
	}
	if getSession(r).Present() {
		shell.Sidebar = renderNode(a.logger, sidebar(a.sidebarItems(r), shell.CSRFToken, location))
		shell.Navbar = renderNode(a.logger, navbar(shell.Title, shell.NavbarText, shell.CSRFToken))
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := tmpl.ExecuteTemplate(w, "base", pageData{Shell: shell, Page: page}); err != nil {
		a.logger.Error("failed to render template", "template", name, "error", err)
	}
}

// sidebarItems builds the admin sidebar for the request's shell
func (a *Admin) sidebarItems(r *http.Request) []nav.Item {
	return nav.Build(a.tree.InArea(session.AdminArea), pageLocation(r), a.expansion(r))
}

// atPage marks a form action's response as rendering the page at address
func atPage(r *http.Request, address string) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), locationContextKey, address))
}

// pageLocation returns the address the shell renders for
func pageLocation(r *http.Request) string {
	if loc, ok := r.Context().Value(locationContextKey).(string); ok {
		return loc
	}
	return r.URL.Path
}

// handleNotFound renders the fallback page for addresses outside the route table
func (a *Admin) handleNotFound(w http.ResponseWriter, r *http.Request) {
	a.renderStatus(w, r, http.StatusNotFound, "not_found", nil)
}
