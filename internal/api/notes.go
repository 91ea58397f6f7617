package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/xync/xync/internal/auth"
	"github.com/xync/xync/internal/store"
)

// notesAPIHandler provides REST handlers for note management.
type notesAPIHandler struct {
	notes *store.NoteStore
}

func registerNoteRoutes(r chi.Router, notes *store.NoteStore) {
	h := &notesAPIHandler{notes: notes}
	r.Get("/notes", h.List)
	r.Post("/notes", h.Create)
	r.Get("/notes/{id}", h.Get)
	r.Put("/notes/{id}", h.Update)
	r.Delete("/notes/{id}", h.Delete)
}

// List returns the caller's notes, most recently updated first.
// GET /api/notes
//
// @Summary      List notes
// @Tags         Notes
// @Produce      json
// @Success      200  {object}  NoteListResponse
// @Failure      401  {object}  ErrorResponse
// @Security     BearerToken
// @Router       /notes [get]
func (h *notesAPIHandler) List(w http.ResponseWriter, r *http.Request) {
	ident := auth.IdentityFromContext(r.Context())
	if ident == nil {
		writeError(w, http.StatusUnauthorized, "unauthorized", "UNAUTHORIZED")
		return
	}

	notes, err := h.notes.List(r.Context(), ident.UserID)
	if err != nil {
		writeStoreError(w, err)
		return
	}

	resp := NoteListResponse{Notes: make([]NoteResponse, 0, len(notes))}
	for _, n := range notes {
		resp.Notes = append(resp.Notes, toNoteResponse(n))
	}
	writeJSON(w, http.StatusOK, resp)
}

// Create creates a note owned by the caller.
// POST /api/notes
//
// @Summary      Create a note
// @Tags         Notes
// @Accept       json
// @Produce      json
// @Param        body  body      CreateNoteRequest  true  "Note to create"
// @Success      201   {object}  NoteResponse
// @Failure      400   {object}  ErrorResponse
// @Failure      401   {object}  ErrorResponse
// @Security     BearerToken
// @Router       /notes [post]
func (h *notesAPIHandler) Create(w http.ResponseWriter, r *http.Request) {
	ident := auth.IdentityFromContext(r.Context())
	if ident == nil {
		writeError(w, http.StatusUnauthorized, "unauthorized", "UNAUTHORIZED")
		return
	}

	var req CreateNoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", "BAD_REQUEST")
		return
	}
	if req.Title == "" {
		writeError(w, http.StatusBadRequest, "title is required", "VALIDATION_ERROR")
		return
	}

	note, err := h.notes.Create(r.Context(), ident.UserID, req.Title, req.Content)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toNoteResponse(note))
}

// Get returns a single note. Foreign-owned ids read as not found.
// GET /api/notes/{id}
//
// @Summary      Get a note
// @Tags         Notes
// @Produce      json
// @Param        id   path      string  true  "Note ID"
// @Success      200  {object}  NoteResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Security     BearerToken
// @Router       /notes/{id} [get]
func (h *notesAPIHandler) Get(w http.ResponseWriter, r *http.Request) {
	ident := auth.IdentityFromContext(r.Context())
	if ident == nil {
		writeError(w, http.StatusUnauthorized, "unauthorized", "UNAUTHORIZED")
		return
	}

	note, err := h.notes.Get(r.Context(), ident.UserID, chi.URLParam(r, "id"))
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toNoteResponse(note))
}

// Update applies a partial update to a note.
// PUT /api/notes/{id}
//
// @Summary      Update a note
// @Tags         Notes
// @Accept       json
// @Produce      json
// @Param        id    path      string             true  "Note ID"
// @Param        body  body      UpdateNoteRequest  true  "Fields to update"
// @Success      200   {object}  NoteResponse
// @Failure      401   {object}  ErrorResponse
// @Failure      404   {object}  ErrorResponse
// @Security     BearerToken
// @Router       /notes/{id} [put]
func (h *notesAPIHandler) Update(w http.ResponseWriter, r *http.Request) {
	ident := auth.IdentityFromContext(r.Context())
	if ident == nil {
		writeError(w, http.StatusUnauthorized, "unauthorized", "UNAUTHORIZED")
		return
	}

	var req UpdateNoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", "BAD_REQUEST")
		return
	}

	note, err := h.notes.Update(r.Context(), ident.UserID, chi.URLParam(r, "id"), req.Title, req.Content)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toNoteResponse(note))
}

// Delete removes a note.
// DELETE /api/notes/{id}
//
// @Summary      Delete a note
// @Tags         Notes
// @Param        id  path  string  true  "Note ID"
// @Success      204
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Security     BearerToken
// @Router       /notes/{id} [delete]
func (h *notesAPIHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ident := auth.IdentityFromContext(r.Context())
	if ident == nil {
		writeError(w, http.StatusUnauthorized, "unauthorized", "UNAUTHORIZED")
		return
	}

	if err := h.notes.Delete(r.Context(), ident.UserID, chi.URLParam(r, "id")); err != nil {
		writeStoreError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
