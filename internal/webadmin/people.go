// ABOUTME: Roles & Permissions and Team pages with their create, edit and delete actions
// ABOUTME: Invalid forms re-render the page with the modal open and field errors

package webadmin

import (
	"net/http"
	"strings"

	"github.com/K25anjali/local-Konnect/internal/resources"
)

const (
	rolesAddress = "/admin/roles"
	teamAddress  = "/admin/team"
)

type roleModal struct {
	Open   bool
	ID     string
	Form   resources.RoleForm
	Errors resources.FieldErrors
}

type rolesData struct {
	Roles       []resources.Role
	Permissions []string
	Modal       roleModal
}

func (a *Admin) handleRoles(w http.ResponseWriter, r *http.Request) {
	a.renderRoles(w, r, http.StatusOK, roleModal{Open: r.URL.Query().Get("new") != ""})
}

func (a *Admin) renderRoles(w http.ResponseWriter, r *http.Request, status int, modal roleModal) {
	data := rolesData{Permissions: resources.Permissions, Modal: modal}

	roles, err := a.services(r).Roles.List(r.Context())
	var t *toast
	if err != nil {
		var done bool
		if t, done = a.fetchFailed(w, r, "Failed to fetch roles", err); done {
			return
		}
	}
	data.Roles = roles

	if id := r.URL.Query().Get("edit"); id != "" && !modal.Open {
		for _, role := range roles {
			if role.ID == id {
				data.Modal = roleModal{Open: true, ID: id, Form: resources.RoleForm{
					Title:       role.Title,
					Description: role.Description,
					Permissions: role.Permissions,
				}}
			}
		}
	}

	a.renderShell(w, r, status, "roles", data, t)
}

// handleRoleSave creates a role, or updates one when the path carries an ID
func (a *Admin) handleRoleSave(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	form := resources.RoleForm{
		Title:       strings.TrimSpace(r.FormValue("title")),
		Description: strings.TrimSpace(r.FormValue("description")),
		Permissions: r.Form["userPermissions"],
	}

	if errs := resources.Validate(form); errs != nil {
		a.renderRoles(w, atPage(r, rolesAddress), http.StatusBadRequest, roleModal{Open: true, ID: id, Form: form, Errors: errs})
		return
	}

	roles := a.services(r).Roles
	if id != "" {
		if _, err := roles.Update(r.Context(), id, form); err != nil {
			a.actionFailed(w, r, "Operation failed", rolesAddress, err)
			return
		}
		a.actionDone(w, r, rolesAddress, "Role updated.")
		return
	}

	if _, err := roles.Create(r.Context(), form); err != nil {
		a.actionFailed(w, r, "Operation failed", rolesAddress, err)
		return
	}
	a.actionDone(w, r, rolesAddress, "Role created.")
}

func (a *Admin) handleRoleDelete(w http.ResponseWriter, r *http.Request) {
	if err := a.services(r).Roles.Delete(r.Context(), r.PathValue("id")); err != nil {
		a.actionFailed(w, r, "Failed to delete role", rolesAddress, err)
		return
	}
	a.actionDone(w, r, rolesAddress, "Role deleted")
}

type teamModal struct {
	Open    bool
	Preview bool
	ID      string
	Form    resources.TeamForm
	Errors  resources.FieldErrors
}

type teamData struct {
	Members []resources.TeamMember
	Roles   []resources.Role
	Modal   teamModal
}

func (a *Admin) handleTeam(w http.ResponseWriter, r *http.Request) {
	a.renderTeam(w, r, http.StatusOK, teamModal{Open: r.URL.Query().Get("new") != ""})
}

func (a *Admin) renderTeam(w http.ResponseWriter, r *http.Request, status int, modal teamModal) {
	svc := a.services(r)
	data := teamData{Modal: modal}

	var t *toast
	members, err := svc.Team.List(r.Context())
	if err != nil {
		var done bool
		if t, done = a.fetchFailed(w, r, "Failed to fetch teamMembers", err); done {
			return
		}
	}
	data.Members = members

	// The role picker is optional; a failure only empties it
	roles, err := svc.Roles.List(r.Context())
	if err != nil {
		a.logger.Warn("failed to fetch roles for team form", "error", err)
	}
	data.Roles = roles

	q := r.URL.Query()
	id, preview := q.Get("edit"), false
	if p := q.Get("preview"); p != "" {
		id, preview = p, true
	}
	if id != "" && !modal.Open {
		for _, m := range members {
			if m.ID == id {
				data.Modal = teamModal{Open: true, Preview: preview, ID: id, Form: resources.TeamForm{
					FullName: m.FullName,
					Email:    m.Email,
					Phone:    m.Phone,
					Role:     m.Role,
				}}
			}
		}
	}

	a.renderShell(w, r, status, "team", data, t)
}

func (a *Admin) handleTeamSave(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	form := resources.TeamForm{
		FullName: strings.TrimSpace(r.FormValue("fullName")),
		Email:    strings.TrimSpace(r.FormValue("email")),
		Phone:    strings.TrimSpace(r.FormValue("phone")),
		Role:     r.FormValue("role"),
	}

	if errs := resources.Validate(form); errs != nil {
		a.renderTeam(w, atPage(r, teamAddress), http.StatusBadRequest, teamModal{Open: true, ID: id, Form: form, Errors: errs})
		return
	}

	team := a.services(r).Team
	if id != "" {
		if _, err := team.Update(r.Context(), id, form); err != nil {
			a.actionFailed(w, r, "Operation failed", teamAddress, err)
			return
		}
		a.actionDone(w, r, teamAddress, "Team member updated.")
		return
	}

	if _, err := team.Create(r.Context(), form); err != nil {
		a.actionFailed(w, r, "Operation failed", teamAddress, err)
		return
	}
	a.actionDone(w, r, teamAddress, "Team member created.")
}

func (a *Admin) handleTeamDelete(w http.ResponseWriter, r *http.Request) {
	if err := a.services(r).Team.Delete(r.Context(), r.PathValue("id")); err != nil {
		a.actionFailed(w, r, "Failed to delete team member", teamAddress, err)
		return
	}
	a.actionDone(w, r, teamAddress, "Team member deleted")
}
