package api

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/xync/xync/internal/store"
)

// ErrorResponse is the standard JSON error body.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// writeError writes a JSON error response with the given HTTP status code.
func writeError(w http.ResponseWriter, status int, message, code string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(ErrorResponse{Error: message, Code: code})
}

// writeJSON writes a JSON response with the given HTTP status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeStoreError maps store sentinel errors onto transport outcomes.
// Anything unrecognized is logged and reported as a generic internal error.
func writeStoreError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		writeError(w, http.StatusNotFound, "not found", "NOT_FOUND")
	case errors.Is(err, store.ErrDuplicateName):
		writeError(w, http.StatusConflict, "name already exists", "CONFLICT")
	case errors.Is(err, store.ErrEmailTaken):
		writeError(w, http.StatusConflict, "email already registered", "CONFLICT")
	case errors.Is(err, store.ErrOwnParent):
		writeError(w, http.StatusBadRequest, "category cannot be its own parent", "VALIDATION_ERROR")
	default:
		log.Printf("api: store error: %v", err)
		writeError(w, http.StatusInternalServerError, "internal error", "INTERNAL_ERROR")
	}
}
