// ABOUTME: JSON response helpers and store error mapping
// ABOUTME: Errors are always {"message": "..."}

package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/K25anjali/local-Konnect/internal/resources"
	"github.com/K25anjali/local-Konnect/internal/store"
)

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeMessage(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"message": msg})
}

// decodeJSON reads the request body into v. It writes a 400 and returns
// false on malformed input.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}

// rejectInvalid writes a 400 with the first message of errs, preferring the
// order of fields. It returns true when the request was rejected.
func rejectInvalid(w http.ResponseWriter, errs resources.FieldErrors, fields ...string) bool {
	if len(errs) == 0 {
		return false
	}
	writeMessage(w, http.StatusBadRequest, errs.First(fields...))
	return true
}

// writeStoreError maps store sentinels to HTTP statuses.
func (s *Server) writeStoreError(w http.ResponseWriter, err error, what string) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		writeMessage(w, http.StatusNotFound, what+" not found")
	case errors.Is(err, store.ErrEmailExists):
		writeMessage(w, http.StatusConflict, "email already exists")
	case errors.Is(err, store.ErrInvalidStatus):
		writeMessage(w, http.StatusBadRequest, err.Error())
	default:
		s.logger.Error("store operation failed", "what", what, "error", err)
		writeMessage(w, http.StatusInternalServerError, "internal server error")
	}
}

// nonNil keeps empty listings encoded as [] rather than null.
func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
