package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/xync/xync/internal/auth"
	"github.com/xync/xync/internal/store"
)

// bookmarksAPIHandler provides REST handlers for bookmark management.
type bookmarksAPIHandler struct {
	bookmarks *store.BookmarkStore
}

func registerBookmarkRoutes(r chi.Router, bookmarks *store.BookmarkStore) {
	h := &bookmarksAPIHandler{bookmarks: bookmarks}
	r.Get("/bookmarks", h.List)
	r.Post("/bookmarks", h.Create)
	r.Get("/bookmarks/{id}", h.Get)
	r.Put("/bookmarks/{id}", h.Update)
	r.Delete("/bookmarks/{id}", h.Delete)
}

// List returns the caller's bookmarks, newest first.
// GET /api/bookmarks
//
// @Summary      List bookmarks
// @Tags         Bookmarks
// @Produce      json
// @Success      200  {object}  BookmarkListResponse
// @Failure      401  {object}  ErrorResponse
// @Security     BearerToken
// @Router       /bookmarks [get]
func (h *bookmarksAPIHandler) List(w http.ResponseWriter, r *http.Request) {
	ident := auth.IdentityFromContext(r.Context())
	if ident == nil {
		writeError(w, http.StatusUnauthorized, "unauthorized", "UNAUTHORIZED")
		return
	}

	bookmarks, err := h.bookmarks.List(r.Context(), ident.UserID)
	if err != nil {
		writeStoreError(w, err)
		return
	}

	resp := BookmarkListResponse{Bookmarks: make([]BookmarkResponse, 0, len(bookmarks))}
	for _, b := range bookmarks {
		resp.Bookmarks = append(resp.Bookmarks, toBookmarkResponse(b))
	}
	writeJSON(w, http.StatusOK, resp)
}

// Create creates a bookmark owned by the caller.
// POST /api/bookmarks
//
// @Summary      Create a bookmark
// @Tags         Bookmarks
// @Accept       json
// @Produce      json
// @Param        body  body      CreateBookmarkRequest  true  "Bookmark to create"
// @Success      201   {object}  BookmarkResponse
// @Failure      400   {object}  ErrorResponse
// @Failure      401   {object}  ErrorResponse
// @Security     BearerToken
// @Router       /bookmarks [post]
func (h *bookmarksAPIHandler) Create(w http.ResponseWriter, r *http.Request) {
	ident := auth.IdentityFromContext(r.Context())
	if ident == nil {
		writeError(w, http.StatusUnauthorized, "unauthorized", "UNAUTHORIZED")
		return
	}

	var req CreateBookmarkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", "BAD_REQUEST")
		return
	}
	if req.URL == "" {
		writeError(w, http.StatusBadRequest, "url is required", "VALIDATION_ERROR")
		return
	}
	if req.Title == "" {
		writeError(w, http.StatusBadRequest, "title is required", "VALIDATION_ERROR")
		return
	}

	bookmark, err := h.bookmarks.Create(r.Context(), ident.UserID, req.URL, req.Title, req.Description, req.CategoryID, req.TagIDs)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toBookmarkResponse(bookmark))
}

// Get returns a single bookmark. Foreign-owned ids read as not found.
// GET /api/bookmarks/{id}
//
// @Summary      Get a bookmark
// @Tags         Bookmarks
// @Produce      json
// @Param        id   path      string  true  "Bookmark ID"
// @Success      200  {object}  BookmarkResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Security     BearerToken
// @Router       /bookmarks/{id} [get]
func (h *bookmarksAPIHandler) Get(w http.ResponseWriter, r *http.Request) {
	ident := auth.IdentityFromContext(r.Context())
	if ident == nil {
		writeError(w, http.StatusUnauthorized, "unauthorized", "UNAUTHORIZED")
		return
	}

	bookmark, err := h.bookmarks.Get(r.Context(), ident.UserID, chi.URLParam(r, "id"))
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toBookmarkResponse(bookmark))
}

// Update applies a partial update to a bookmark.
// PUT /api/bookmarks/{id}
//
// @Summary      Update a bookmark
// @Tags         Bookmarks
// @Accept       json
// @Produce      json
// @Param        id    path      string                 true  "Bookmark ID"
// @Param        body  body      UpdateBookmarkRequest  true  "Fields to update"
// @Success      200   {object}  BookmarkResponse
// @Failure      401   {object}  ErrorResponse
// @Failure      404   {object}  ErrorResponse
// @Security     BearerToken
// @Router       /bookmarks/{id} [put]
func (h *bookmarksAPIHandler) Update(w http.ResponseWriter, r *http.Request) {
	ident := auth.IdentityFromContext(r.Context())
	if ident == nil {
		writeError(w, http.StatusUnauthorized, "unauthorized", "UNAUTHORIZED")
		return
	}

	var req UpdateBookmarkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", "BAD_REQUEST")
		return
	}

	bookmark, err := h.bookmarks.Update(r.Context(), ident.UserID, chi.URLParam(r, "id"), req.URL, req.Title, req.Description, req.CategoryID, req.TagIDs)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toBookmarkResponse(bookmark))
}

// Delete removes a bookmark.
// DELETE /api/bookmarks/{id}
//
// @Summary      Delete a bookmark
// @Tags         Bookmarks
// @Param        id  path  string  true  "Bookmark ID"
// @Success      204
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Security     BearerToken
// @Router       /bookmarks/{id} [delete]
func (h *bookmarksAPIHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ident := auth.IdentityFromContext(r.Context())
	if ident == nil {
		writeError(w, http.StatusUnauthorized, "unauthorized", "UNAUTHORIZED")
		return
	}

	if err := h.bookmarks.Delete(r.Context(), ident.UserID, chi.URLParam(r, "id")); err != nil {
		writeStoreError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
