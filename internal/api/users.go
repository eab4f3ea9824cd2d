// ABOUTME: Sign-in and profile endpoints
// ABOUTME: Login exchanges email and password for a bearer token

package api

import (
	"errors"
	"net/http"

	"github.com/K25anjali/local-Konnect/internal/auth"
	"github.com/K25anjali/local-Konnect/internal/resources"
	"github.com/K25anjali/local-Konnect/internal/store"
)

const invalidCredentials = "Invalid email or password"

type loginResponse struct {
	Token string      `json:"token"`
	User  *store.User `json:"user"`
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var form resources.SignInForm
	if !decodeJSON(w, r, &form) {
		return
	}
	if rejectInvalid(w, resources.Validate(form), "email", "password") {
		return
	}

	user, err := s.store.GetUserByEmail(r.Context(), form.Email)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			s.writeStoreError(w, err, "user")
			return
		}
		_ = auth.CheckPassword("", form.Password)
		writeMessage(w, http.StatusUnauthorized, invalidCredentials)
		return
	}

	if err := auth.CheckPassword(user.PasswordHash, form.Password); err != nil {
		writeMessage(w, http.StatusUnauthorized, invalidCredentials)
		return
	}

	token, err := s.issuer.Generate(user.ID, s.cfg.TokenTTL)
	if err != nil {
		s.logger.Error("failed to generate token", "error", err)
		writeMessage(w, http.StatusInternalServerError, "internal server error")
		return
	}

	s.logger.Info("user signed in", "user_id", user.ID)
	writeJSON(w, http.StatusOK, loginResponse{Token: token, User: user})
}

func (s *Server) handleGetMe(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"user": auth.UserFromContext(r.Context())})
}

func (s *Server) handleUpdateMe(w http.ResponseWriter, r *http.Request) {
	var form resources.ProfileForm
	if !decodeJSON(w, r, &form) {
		return
	}
	if rejectInvalid(w, resources.Validate(form), "fullName") {
		return
	}

	current := auth.UserFromContext(r.Context())
	updated := *current
	updated.FullName = form.FullName
	updated.Phone = form.Phone
	updated.Organization = form.Organization
	updated.Location = form.Location

	if err := s.store.UpdateUserProfile(r.Context(), &updated); err != nil {
		s.writeStoreError(w, err, "user")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"user": &updated})
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	st, err := s.store.Stats(r.Context())
	if err != nil {
		s.writeStoreError(w, err, "stats")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"stats": st})
}
