package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/xync/xync/internal/auth"
	"github.com/xync/xync/internal/preview"
)

// previewAPIHandler exposes the best-effort bookmark preview fetcher.
type previewAPIHandler struct {
	fetcher *preview.Fetcher
}

func registerPreviewRoutes(r chi.Router, fetcher *preview.Fetcher) {
	h := &previewAPIHandler{fetcher: fetcher}
	r.Post("/bookmarks/preview", h.Fetch)
}

// Fetch scrapes page metadata for a URL the caller is about to bookmark.
// Always returns 200; unreachable pages yield empty fields.
// POST /api/bookmarks/preview
//
// @Summary      Fetch a bookmark preview
// @Tags         Bookmarks
// @Accept       json
// @Produce      json
// @Param        body  body      PreviewRequest  true  "URL to preview"
// @Success      200   {object}  PreviewResponse
// @Failure      400   {object}  ErrorResponse
// @Failure      401   {object}  ErrorResponse
// @Security     BearerToken
// @Router       /bookmarks/preview [post]
func (h *previewAPIHandler) Fetch(w http.ResponseWriter, r *http.Request) {
	ident := auth.IdentityFromContext(r.Context())
	if ident == nil {
		writeError(w, http.StatusUnauthorized, "unauthorized", "UNAUTHORIZED")
		return
	}

	var req PreviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", "BAD_REQUEST")
		return
	}
	if req.URL == "" {
		writeError(w, http.StatusBadRequest, "url is required", "VALIDATION_ERROR")
		return
	}

	p := h.fetcher.Fetch(r.Context(), req.URL)
	writeJSON(w, http.StatusOK, PreviewResponse{
		Title:       p.Title,
		Description: p.Description,
		Image:       p.Image,
		Favicon:     p.Favicon,
	})
}
