package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/xync/xync/internal/auth"
	"github.com/xync/xync/internal/store"
)

// categoriesAPIHandler provides REST handlers for category management.
type categoriesAPIHandler struct {
	categories *store.CategoryStore
}

func registerCategoryRoutes(r chi.Router, categories *store.CategoryStore) {
	h := &categoriesAPIHandler{categories: categories}
	r.Get("/categories", h.List)
	r.Post("/categories", h.Create)
	r.Get("/categories/{id}", h.Get)
	r.Put("/categories/{id}", h.Update)
	r.Delete("/categories/{id}", h.Delete)
}

// List returns the caller's categories ordered by name.
// GET /api/categories
//
// @Summary      List categories
// @Tags         Categories
// @Produce      json
// @Success      200  {object}  CategoryListResponse
// @Failure      401  {object}  ErrorResponse
// @Security     BearerToken
// @Router       /categories [get]
func (h *categoriesAPIHandler) List(w http.ResponseWriter, r *http.Request) {
	ident := auth.IdentityFromContext(r.Context())
	if ident == nil {
		writeError(w, http.StatusUnauthorized, "unauthorized", "UNAUTHORIZED")
		return
	}

	categories, err := h.categories.List(r.Context(), ident.UserID)
	if err != nil {
		writeStoreError(w, err)
		return
	}

	resp := CategoryListResponse{Categories: make([]CategoryResponse, 0, len(categories))}
	for _, c := range categories {
		resp.Categories = append(resp.Categories, toCategoryResponse(c))
	}
	writeJSON(w, http.StatusOK, resp)
}

// Create creates a category owned by the caller. A supplied parent must be
// an existing category of the same owner.
// POST /api/categories
//
// @Summary      Create a category
// @Tags         Categories
// @Accept       json
// @Produce      json
// @Param        body  body      CreateCategoryRequest  true  "Category to create"
// @Success      201   {object}  CategoryResponse
// @Failure      400   {object}  ErrorResponse
// @Failure      401   {object}  ErrorResponse
// @Failure      409   {object}  ErrorResponse
// @Security     BearerToken
// @Router       /categories [post]
func (h *categoriesAPIHandler) Create(w http.ResponseWriter, r *http.Request) {
	ident := auth.IdentityFromContext(r.Context())
	if ident == nil {
		writeError(w, http.StatusUnauthorized, "unauthorized", "UNAUTHORIZED")
		return
	}

	var req CreateCategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", "BAD_REQUEST")
		return
	}
	if req.Name == "" {
		writeError(w, http.StatusBadRequest, "name is required", "VALIDATION_ERROR")
		return
	}

	category, err := h.categories.Create(r.Context(), ident.UserID, req.Name, req.Description, req.ParentID)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toCategoryResponse(category))
}

// Get returns a single category. Foreign-owned ids read as not found.
// GET /api/categories/{id}
//
// @Summary      Get a category
// @Tags         Categories
// @Produce      json
// @Param        id   path      string  true  "Category ID"
// @Success      200  {object}  CategoryResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Security     BearerToken
// @Router       /categories/{id} [get]
func (h *categoriesAPIHandler) Get(w http.ResponseWriter, r *http.Request) {
	ident := auth.IdentityFromContext(r.Context())
	if ident == nil {
		writeError(w, http.StatusUnauthorized, "unauthorized", "UNAUTHORIZED")
		return
	}

	category, err := h.categories.Get(r.Context(), ident.UserID, chi.URLParam(r, "id"))
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toCategoryResponse(category))
}

// Update applies a partial update to a category. Setting the category as
// its own parent is rejected as a validation error.
// PUT /api/categories/{id}
//
// @Summary      Update a category
// @Tags         Categories
// @Accept       json
// @Produce      json
// @Param        id    path      string                 true  "Category ID"
// @Param        body  body      UpdateCategoryRequest  true  "Fields to update"
// @Success      200   {object}  CategoryResponse
// @Failure      400   {object}  ErrorResponse
// @Failure      401   {object}  ErrorResponse
// @Failure      404   {object}  ErrorResponse
// @Failure      409   {object}  ErrorResponse
// @Security     BearerToken
// @Router       /categories/{id} [put]
func (h *categoriesAPIHandler) Update(w http.ResponseWriter, r *http.Request) {
	ident := auth.IdentityFromContext(r.Context())
	if ident == nil {
		writeError(w, http.StatusUnauthorized, "unauthorized", "UNAUTHORIZED")
		return
	}

	var req UpdateCategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", "BAD_REQUEST")
		return
	}

	category, err := h.categories.Update(r.Context(), ident.UserID, chi.URLParam(r, "id"), req.Name, req.Description, req.ParentID)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toCategoryResponse(category))
}

// Delete removes a category.
// DELETE /api/categories/{id}
//
// @Summary      Delete a category
// @Tags         Categories
// @Param        id  path  string  true  "Category ID"
// @Success      204
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Security     BearerToken
// @Router       /categories/{id} [delete]
func (h *categoriesAPIHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ident := auth.IdentityFromContext(r.Context())
	if ident == nil {
		writeError(w, http.StatusUnauthorized, "unauthorized", "UNAUTHORIZED")
		return
	}

	if err := h.categories.Delete(r.Context(), ident.UserID, chi.URLParam(r, "id")); err != nil {
		writeStoreError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
