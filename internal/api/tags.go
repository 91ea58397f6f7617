package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/xync/xync/internal/auth"
	"github.com/xync/xync/internal/store"
)

// tagsAPIHandler provides REST handlers for tag management.
type tagsAPIHandler struct {
	tags *store.TagStore
}

func registerTagRoutes(r chi.Router, tags *store.TagStore) {
	h := &tagsAPIHandler{tags: tags}
	r.Get("/tags", h.List)
	r.Post("/tags", h.Create)
	r.Get("/tags/{id}", h.Get)
	r.Put("/tags/{id}", h.Update)
	r.Delete("/tags/{id}", h.Delete)
}

// List returns the caller's tags ordered by name.
// GET /api/tags
//
// @Summary      List tags
// @Tags         Tags
// @Produce      json
// @Success      200  {object}  TagListResponse
// @Failure      401  {object}  ErrorResponse
// @Security     BearerToken
// @Router       /tags [get]
func (h *tagsAPIHandler) List(w http.ResponseWriter, r *http.Request) {
	ident := auth.IdentityFromContext(r.Context())
	if ident == nil {
		writeError(w, http.StatusUnauthorized, "unauthorized", "UNAUTHORIZED")
		return
	}

	tags, err := h.tags.List(r.Context(), ident.UserID)
	if err != nil {
		writeStoreError(w, err)
		return
	}

	resp := TagListResponse{Tags: make([]TagResponse, 0, len(tags))}
	for _, t := range tags {
		resp.Tags = append(resp.Tags, toTagResponse(t))
	}
	writeJSON(w, http.StatusOK, resp)
}

// Create creates a tag owned by the caller. Names are unique per owner;
// the same name under a different owner is fine.
// POST /api/tags
//
// @Summary      Create a tag
// @Tags         Tags
// @Accept       json
// @Produce      json
// @Param        body  body      CreateTagRequest  true  "Tag to create"
// @Success      201   {object}  TagResponse
// @Failure      400   {object}  ErrorResponse
// @Failure      401   {object}  ErrorResponse
// @Failure      409   {object}  ErrorResponse
// @Security     BearerToken
// @Router       /tags [post]
func (h *tagsAPIHandler) Create(w http.ResponseWriter, r *http.Request) {
	ident := auth.IdentityFromContext(r.Context())
	if ident == nil {
		writeError(w, http.StatusUnauthorized, "unauthorized", "UNAUTHORIZED")
		return
	}

	var req CreateTagRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", "BAD_REQUEST")
		return
	}
	if req.Name == "" {
		writeError(w, http.StatusBadRequest, "name is required", "VALIDATION_ERROR")
		return
	}

	tag, err := h.tags.Create(r.Context(), ident.UserID, req.Name, req.Color)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toTagResponse(tag))
}

// Get returns a single tag. Foreign-owned ids read as not found.
// GET /api/tags/{id}
//
// @Summary      Get a tag
// @Tags         Tags
// @Produce      json
// @Param        id   path      string  true  "Tag ID"
// @Success      200  {object}  TagResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Security     BearerToken
// @Router       /tags/{id} [get]
func (h *tagsAPIHandler) Get(w http.ResponseWriter, r *http.Request) {
	ident := auth.IdentityFromContext(r.Context())
	if ident == nil {
		writeError(w, http.StatusUnauthorized, "unauthorized", "UNAUTHORIZED")
		return
	}

	tag, err := h.tags.Get(r.Context(), ident.UserID, chi.URLParam(r, "id"))
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toTagResponse(tag))
}

// Update applies a partial update to a tag.
// PUT /api/tags/{id}
//
// @Summary      Update a tag
// @Tags         Tags
// @Accept       json
// @Produce      json
// @Param        id    path      string            true  "Tag ID"
// @Param        body  body      UpdateTagRequest  true  "Fields to update"
// @Success      200   {object}  TagResponse
// @Failure      401   {object}  ErrorResponse
// @Failure      404   {object}  ErrorResponse
// @Failure      409   {object}  ErrorResponse
// @Security     BearerToken
// @Router       /tags/{id} [put]
func (h *tagsAPIHandler) Update(w http.ResponseWriter, r *http.Request) {
	ident := auth.IdentityFromContext(r.Context())
	if ident == nil {
		writeError(w, http.StatusUnauthorized, "unauthorized", "UNAUTHORIZED")
		return
	}

	var req UpdateTagRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", "BAD_REQUEST")
		return
	}

	tag, err := h.tags.Update(r.Context(), ident.UserID, chi.URLParam(r, "id"), req.Name, req.Color)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toTagResponse(tag))
}

// Delete removes a tag.
// DELETE /api/tags/{id}
//
// @Summary      Delete a tag
// @Tags         Tags
// @Param        id  path  string  true  "Tag ID"
// @Success      204
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Security     BearerToken
// @Router       /tags/{id} [delete]
func (h *tagsAPIHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ident := auth.IdentityFromContext(r.Context())
	if ident == nil {
		writeError(w, http.StatusUnauthorized, "unauthorized", "UNAUTHORIZED")
		return
	}

	if err := h.tags.Delete(r.Context(), ident.UserID, chi.URLParam(r, "id")); err != nil {
		writeStoreError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
