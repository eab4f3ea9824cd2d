// ABOUTME: The dashboard route tree: every page, its address, icon and navbar text
// ABOUTME: Both the mux and the sidebar are derived from this single tree

package webadmin

import (
	"net/http"

	"github.com/K25anjali/local-Konnect/internal/routes"
	"github.com/K25anjali/local-Konnect/internal/session"
)

// Routes returns the dashboard route tree.
func (a *Admin) Routes() routes.Tree {
	admin := session.AdminArea
	return routes.Tree{
		routes.Leaf{Name: "Dashboard", BasePath: admin, Path: "/default", Icon: "home",
			Page: http.HandlerFunc(a.handleDashboard)},
		routes.Leaf{Name: "Team", BasePath: admin, Path: "/team", Icon: "groups", Secondary: true,
			Page: http.HandlerFunc(a.handleTeam)},
		routes.Leaf{Name: "Roles & Permissions", BasePath: admin, Path: "/roles", Icon: "admin-panel",
			Page: http.HandlerFunc(a.handleRoles)},
		routes.Group{Name: "Our Application", BasePath: admin, Icon: "apps", Children: []routes.Entry{
			routes.Leaf{Name: "Categories", Path: "/categories", Icon: "category",
				Page: http.HandlerFunc(a.handleCategories)},
			routes.Leaf{Name: "Bookings", Path: "/bookings", Icon: "event",
				Page: http.HandlerFunc(a.handleBookings)},
			routes.Leaf{Name: "Invoices", Path: "/invoices", Icon: "receipt",
				Page: http.HandlerFunc(a.handleInvoices)},
			routes.Leaf{Name: "Completed Tasks", Path: "/completed-tasks", Icon: "task",
				Page: http.HandlerFunc(a.handleTasks)},
			routes.Leaf{Name: "Community", Path: "/community", Icon: "forum",
				Page: http.HandlerFunc(a.handleCommunity)},
			routes.Leaf{Name: "Reviews", Path: "/reviews", Icon: "star"},
		}},
		routes.Leaf{Name: "FAQs", BasePath: admin, Path: "/faqs", Icon: "help",
			Page: http.HandlerFunc(a.handleFAQs)},
		routes.Leaf{Name: "Profile", BasePath: admin, Path: "/profile", Icon: "person",
			NavbarText: "Manage your account details", Page: http.HandlerFunc(a.handleProfile)},
		routes.Leaf{Name: "Sign In", BasePath: session.AuthArea, Path: "/sign-in", Icon: "lock",
			Page: http.HandlerFunc(a.handleSignInPage)},
	}
}
