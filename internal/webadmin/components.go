// ABOUTME: Shell components rendered with gomponents: sidebar links, groups and the navbar
// ABOUTME: Group headers are toggle forms that work with and without htmx

package webadmin

import (
	"html/template"
	"log/slog"
	"strings"

	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/html"

	"github.com/K25anjali/local-Konnect/internal/nav"
)

const brandName = "Local Konnect"

// sidebar renders the admin navigation for one shell.
func sidebar(items []nav.Item, csrfToken, location string) g.Node {
	return html.Aside(
		html.ID("sidebar"),
		html.Class("sidebar"),
		html.Div(html.Class("sidebar-brand"), g.Text(brandName)),
		html.Nav(
			html.Ul(
				html.Class("sidebar-links"),
				g.Map(items, func(it nav.Item) g.Node { return sidebarItem(it, csrfToken, location) }),
			),
		),
	)
}

func sidebarItem(it nav.Item, csrfToken, location string) g.Node {
	if it.Kind == nav.ItemGroup {
		return sidebarGroup(it, csrfToken, location)
	}
	return html.Li(
		html.Class(itemClass("sidebar-link", it.Active, it.Secondary)),
		html.A(
			html.Href(it.Href),
			g.If(it.Active, g.Attr("aria-current", "page")),
			icon(it.Icon),
			html.Span(g.Text(it.Label)),
		),
	)
}

// sidebarGroup renders a collapsible section. The toggle posts the group key
// and swaps the whole sidebar when htmx is present.
func sidebarGroup(it nav.Item, csrfToken, location string) g.Node {
	chevron := "chevron-right"
	if it.Expanded {
		chevron = "chevron-down"
	}

	return html.Li(
		html.Class(itemClass("sidebar-group", it.Active, false)),
		html.Form(
			html.Method("post"),
			html.Action("/admin/nav/toggle"),
			g.Attr("hx-post", "/admin/nav/toggle"),
			g.Attr("hx-target", "#sidebar"),
			g.Attr("hx-swap", "outerHTML"),
			html.Input(html.Type("hidden"), html.Name("csrf_token"), html.Value(csrfToken)),
			html.Input(html.Type("hidden"), html.Name("key"), html.Value(string(it.Key))),
			html.Input(html.Type("hidden"), html.Name("return_to"), html.Value(location)),
			html.Button(
				html.Type("submit"),
				html.Class("sidebar-group-toggle"),
				g.Attr("aria-expanded", boolAttr(it.Expanded)),
				icon(it.Icon),
				html.Span(html.Class("sidebar-group-name"), g.Text(it.Label)),
				icon(chevron),
			),
		),
		g.If(it.Expanded && len(it.Children) > 0,
			html.Ul(
				html.Class("sidebar-children"),
				g.Map(it.Children, func(c nav.Item) g.Node { return sidebarItem(c, csrfToken, location) }),
			),
		),
	)
}

// navbar renders the page title bar with the sign-out action.
func navbar(title, message, csrfToken string) g.Node {
	return html.Header(
		html.Class("navbar"),
		html.Div(
			html.Class("navbar-title"),
			html.Span(html.Class("navbar-brand-text"), g.Text(title)),
			g.If(message != "", html.Span(html.Class("navbar-message"), g.Text(message))),
		),
		html.Form(
			html.Method("post"),
			html.Action("/admin/sign-out"),
			html.Input(html.Type("hidden"), html.Name("csrf_token"), html.Value(csrfToken)),
			html.Button(html.Type("submit"), html.Class("btn btn-link"), g.Text("Sign out")),
		),
	)
}

func icon(name string) g.Node {
	if name == "" {
		return nil
	}
	return html.Span(html.Class("icon icon-"+name), g.Attr("aria-hidden", "true"))
}

func itemClass(base string, active, secondary bool) string {
	classes := []string{base}
	if active {
		classes = append(classes, "active")
	}
	if secondary {
		classes = append(classes, "secondary")
	}
	return strings.Join(classes, " ")
}

func boolAttr(b bool) string {
	if b {
		return "true"
	}
	return "false"
}

// renderNode renders a component for embedding in an html/template layout.
func renderNode(logger *slog.Logger, n g.Node) template.HTML {
	var b strings.Builder
	if err := n.Render(&b); err != nil {
		logger.Error("failed to render component", "error", err)
		return ""
	}
	return template.HTML(b.String())
}
