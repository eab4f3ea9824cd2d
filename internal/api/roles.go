// ABOUTME: Role and team endpoints
// ABOUTME: Envelopes are {roles}/{role} and {users}/{user}

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/K25anjali/local-Konnect/internal/resources"
	"github.com/K25anjali/local-Konnect/internal/store"
)

func (s *Server) handleListRoles(w http.ResponseWriter, r *http.Request) {
	roles, err := s.store.ListRoles(r.Context())
	if err != nil {
		s.writeStoreError(w, err, "roles")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"roles": nonNil(roles)})
}

func (s *Server) handleCreateRole(w http.ResponseWriter, r *http.Request) {
	var form resources.RoleForm
	if !decodeJSON(w, r, &form) {
		return
	}
	if rejectInvalid(w, resources.Validate(form), "title", "description", "userPermissions") {
		return
	}

	role := &store.Role{Title: form.Title, Description: form.Description, Permissions: form.Permissions}
	if err := s.store.CreateRole(r.Context(), role); err != nil {
		s.writeStoreError(w, err, "role")
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"role": role})
}

func (s *Server) handleUpdateRole(w http.ResponseWriter, r *http.Request) {
	var form resources.RoleForm
	if !decodeJSON(w, r, &form) {
		return
	}
	if rejectInvalid(w, resources.Validate(form), "title", "description", "userPermissions") {
		return
	}

	role := &store.Role{ID: chi.URLParam(r, "id"), Title: form.Title, Description: form.Description, Permissions: form.Permissions}
	if err := s.store.UpdateRole(r.Context(), role); err != nil {
		s.writeStoreError(w, err, "role")
		return
	}
	updated, err := s.store.GetRole(r.Context(), role.ID)
	if err != nil {
		s.writeStoreError(w, err, "role")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"role": updated})
}

func (s *Server) handleDeleteRole(w http.ResponseWriter, r *http.Request) {
	if err := s.store.DeleteRole(r.Context(), chi.URLParam(r, "id")); err != nil {
		s.writeStoreError(w, err, "role")
		return
	}
	writeMessage(w, http.StatusOK, "Role deleted")
}

func (s *Server) handleListTeam(w http.ResponseWriter, r *http.Request) {
	members, err := s.store.ListTeamMembers(r.Context())
	if err != nil {
		s.writeStoreError(w, err, "team")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"users": nonNil(members)})
}

func (s *Server) handleCreateTeamMember(w http.ResponseWriter, r *http.Request) {
	var form resources.TeamForm
	if !decodeJSON(w, r, &form) {
		return
	}
	if rejectInvalid(w, resources.Validate(form), "fullName", "email", "phone", "role") {
		return
	}

	m := &store.TeamMember{FullName: form.FullName, Email: form.Email, Phone: form.Phone, Role: form.Role}
	if err := s.store.CreateTeamMember(r.Context(), m); err != nil {
		s.writeStoreError(w, err, "team member")
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"user": m})
}

func (s *Server) handleUpdateTeamMember(w http.ResponseWriter, r *http.Request) {
	var form resources.TeamForm
	if !decodeJSON(w, r, &form) {
		return
	}
	if rejectInvalid(w, resources.Validate(form), "fullName", "email", "phone", "role") {
		return
	}

	m := &store.TeamMember{ID: chi.URLParam(r, "id"), FullName: form.FullName, Email: form.Email, Phone: form.Phone, Role: form.Role}
	if err := s.store.UpdateTeamMember(r.Context(), m); err != nil {
		s.writeStoreError(w, err, "team member")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"user": m})
}

func (s *Server) handleDeleteTeamMember(w http.ResponseWriter, r *http.Request) {
	if err := s.store.DeleteTeamMember(r.Context(), chi.URLParam(r, "id")); err != nil {
		s.writeStoreError(w, err, "team member")
		return
	}
	writeMessage(w, http.StatusOK, "Team member deleted")
}
