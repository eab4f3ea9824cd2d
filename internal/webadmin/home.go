// ABOUTME: Dashboard home and profile pages
// ABOUTME: The home page shows backend counters; the profile page edits the signed-in user

package webadmin

import (
	"net/http"
	"strings"

	"github.com/K25anjali/local-Konnect/internal/resources"
)

const profileAddress = "/admin/profile"

// statCard is one counter on the dashboard home page.
type statCard struct {
	Label string
	Value int
	Href  string
}

func (a *Admin) handleDashboard(w http.ResponseWriter, r *http.Request) {
	stats, err := a.services(r).Reports.Stats(r.Context())
	var t *toast
	if err != nil {
		var done bool
		if t, done = a.fetchFailed(w, r, "Failed to fetch statistics", err); done {
			return
		}
		stats = &resources.Stats{}
	}

	cards := []statCard{
		{Label: "Users", Value: stats.Users},
		{Label: "Team members", Value: stats.Team, Href: teamAddress},
		{Label: "Roles", Value: stats.Roles, Href: rolesAddress},
		{Label: "Categories", Value: stats.Categories, Href: categoriesAddress},
		{Label: "Bookings", Value: stats.Bookings, Href: "/admin/bookings"},
		{Label: "Completed tasks", Value: stats.Tasks, Href: "/admin/completed-tasks"},
		{Label: "Invoices", Value: stats.Invoices, Href: "/admin/invoices"},
		{Label: "Community", Value: stats.Members, Href: communityAddress},
	}
	a.renderShell(w, r, http.StatusOK, "dashboard", cards, t)
}

type profileData struct {
	Profile *resources.Profile
	Editing bool
	Form    resources.ProfileForm
	Errors  resources.FieldErrors
}

func (a *Admin) handleProfile(w http.ResponseWriter, r *http.Request) {
	a.renderProfile(w, r, http.StatusOK, nil)
}

func (a *Admin) renderProfile(w http.ResponseWriter, r *http.Request, status int, edit *profileData) {
	profile, err := a.services(r).Profile.Get(r.Context())
	var t *toast
	if err != nil {
		var done bool
		if t, done = a.fetchFailed(w, r, "Failed to fetch profile", err); done {
			return
		}
	}

	data := profileData{Profile: profile}
	if edit != nil {
		data.Editing, data.Form, data.Errors = true, edit.Form, edit.Errors
	} else if profile != nil {
		data.Editing = r.URL.Query().Get("edit") != ""
		data.Form = resources.ProfileForm{
			FullName:     profile.FullName,
			Phone:        profile.Phone,
			Organization: profile.Organization,
			Location:     profile.Location,
		}
	}
	a.renderShell(w, r, status, "profile", data, t)
}

func (a *Admin) handleProfileSave(w http.ResponseWriter, r *http.Request) {
	form := resources.ProfileForm{
		FullName:     strings.TrimSpace(r.FormValue("fullName")),
		Phone:        strings.TrimSpace(r.FormValue("phone")),
		Organization: strings.TrimSpace(r.FormValue("organization")),
		Location:     strings.TrimSpace(r.FormValue("location")),
	}

	if errs := resources.Validate(form); errs != nil {
		a.renderProfile(w, atPage(r, profileAddress), http.StatusBadRequest, &profileData{Form: form, Errors: errs})
		return
	}

	if _, err := a.services(r).Profile.Update(r.Context(), form); err != nil {
		a.actionFailed(w, r, "Failed to update profile", profileAddress, err)
		return
	}
	a.actionDone(w, r, profileAddress, "Profile updated.")
}
