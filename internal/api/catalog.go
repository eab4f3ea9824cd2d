// ABOUTME: Category, report and community endpoints
// ABOUTME: Reports are read-only; categories support full CRUD

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/K25anjali/local-Konnect/internal/resources"
	"github.com/K25anjali/local-Konnect/internal/store"
)

func (s *Server) handleListCategories(w http.ResponseWriter, r *http.Request) {
	cats, err := s.store.ListCategories(r.Context())
	if err != nil {
		s.writeStoreError(w, err, "categories")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"categories": nonNil(cats)})
}

func (s *Server) handleCreateCategory(w http.ResponseWriter, r *http.Request) {
	var form resources.CategoryForm
	if !decodeJSON(w, r, &form) {
		return
	}
	if form.Status == "" {
		form.Status = string(store.CategoryActive)
	}
	if rejectInvalid(w, resources.Validate(form), "name", "status") {
		return
	}

	c := &store.Category{Name: form.Name, Status: store.CategoryStatus(form.Status)}
	if err := s.store.CreateCategory(r.Context(), c); err != nil {
		s.writeStoreError(w, err, "category")
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"category": c})
}

func (s *Server) handleUpdateCategory(w http.ResponseWriter, r *http.Request) {
	var form resources.CategoryForm
	if !decodeJSON(w, r, &form) {
		return
	}
	if rejectInvalid(w, resources.Validate(form), "name", "status") {
		return
	}

	c := &store.Category{ID: chi.URLParam(r, "id"), Name: form.Name, Status: store.CategoryStatus(form.Status)}
	if err := s.store.UpdateCategory(r.Context(), c); err != nil {
		s.writeStoreError(w, err, "category")
		return
	}
	updated, err := s.store.GetCategory(r.Context(), c.ID)
	if err != nil {
		s.writeStoreError(w, err, "category")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"category": updated})
}

func (s *Server) handleDeleteCategory(w http.ResponseWriter, r *http.Request) {
	if err := s.store.DeleteCategory(r.Context(), chi.URLParam(r, "id")); err != nil {
		s.writeStoreError(w, err, "category")
		return
	}
	writeMessage(w, http.StatusOK, "Category deleted")
}

func (s *Server) handleListBookings(w http.ResponseWriter, r *http.Request) {
	rows, err := s.store.ListBookings(r.Context())
	if err != nil {
		s.writeStoreError(w, err, "bookings")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"bookings": nonNil(rows)})
}

func (s *Server) handleListTasks(w http.ResponseWriter, r *http.Request) {
	rows, err := s.store.ListTasks(r.Context())
	if err != nil {
		s.writeStoreError(w, err, "tasks")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"tasks": nonNil(rows)})
}

func (s *Server) handleListInvoices(w http.ResponseWriter, r *http.Request) {
	rows, err := s.store.ListInvoices(r.Context())
	if err != nil {
		s.writeStoreError(w, err, "invoices")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"invoices": nonNil(rows)})
}

func (s *Server) handleListMembers(w http.ResponseWriter, r *http.Request) {
	rows, err := s.store.ListMembers(r.Context())
	if err != nil {
		s.writeStoreError(w, err, "community")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"members": nonNil(rows)})
}

func (s *Server) handleDeleteMember(w http.ResponseWriter, r *http.Request) {
	if err := s.store.DeleteMember(r.Context(), chi.URLParam(r, "id")); err != nil {
		s.writeStoreError(w, err, "member")
		return
	}
	writeMessage(w, http.StatusOK, "Member deleted")
}
