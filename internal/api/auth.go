package api

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"net/mail"

	"github.com/go-chi/chi/v5"
	"github.com/xync/xync/internal/auth"
	"github.com/xync/xync/internal/metrics"
	"github.com/xync/xync/internal/store"
)

// authAPIHandler provides registration, login, and current-user endpoints.
type authAPIHandler struct {
	users  *store.UserStore
	tokens *auth.TokenManager
}

func registerPublicAuthRoutes(r chi.Router, users *store.UserStore, tokens *auth.TokenManager) {
	h := &authAPIHandler{users: users, tokens: tokens}
	r.Post("/auth/register", h.Register)
	r.Post("/auth/login", h.Login)
}

func registerAuthedAuthRoutes(r chi.Router, users *store.UserStore, tokens *auth.TokenManager) {
	h := &authAPIHandler{users: users, tokens: tokens}
	r.Get("/auth/me", h.Me)
}

// Register creates a new user account and returns a bearer token for it.
// POST /api/auth/register
//
// @Summary      Register
// @Description  Creates a user account and returns a bearer token.
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        body  body      RegisterRequest  true  "Account to create"
// @Success      201   {object}  AuthResponse
// @Failure      400   {object}  ErrorResponse
// @Failure      409   {object}  ErrorResponse
// @Router       /auth/register [post]
func (h *authAPIHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", "BAD_REQUEST")
		return
	}

	if _, err := mail.ParseAddress(req.Email); err != nil {
		writeError(w, http.StatusBadRequest, "invalid email format", "VALIDATION_ERROR")
		return
	}
	if len(req.Password) < 8 {
		writeError(w, http.StatusBadRequest, "password must be at least 8 characters", "VALIDATION_ERROR")
		return
	}
	if req.Name == "" {
		writeError(w, http.StatusBadRequest, "name is required", "VALIDATION_ERROR")
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		log.Printf("api: hash password: %v", err)
		writeError(w, http.StatusInternalServerError, "internal error", "INTERNAL_ERROR")
		return
	}

	user, err := h.users.Create(r.Context(), req.Email, hash, req.Name)
	if err != nil {
		writeStoreError(w, err)
		return
	}

	token, err := h.tokens.Issue(user.ID, user.Email)
	if err != nil {
		log.Printf("api: issue token: %v", err)
		writeError(w, http.StatusInternalServerError, "internal error", "INTERNAL_ERROR")
		return
	}

	metrics.RegistrationsTotal.Inc()
	writeJSON(w, http.StatusCreated, AuthResponse{Token: token, User: toUserResponse(user)})
}

// Login verifies credentials and returns a fresh bearer token.
// POST /api/auth/login
//
// @Summary      Log in
// @Description  Verifies email and password and returns a bearer token.
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        body  body      LoginRequest  true  "Credentials"
// @Success      200   {object}  AuthResponse
// @Failure      400   {object}  ErrorResponse
// @Failure      401   {object}  ErrorResponse
// @Router       /auth/login [post]
func (h *authAPIHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", "BAD_REQUEST")
		return
	}
	if req.Email == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "email and password are required", "VALIDATION_ERROR")
		return
	}

	user, err := h.users.GetByEmail(r.Context(), req.Email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			metrics.LoginsTotal.WithLabelValues("failure").Inc()
			writeError(w, http.StatusUnauthorized, "invalid credentials", "INVALID_CREDENTIALS")
			return
		}
		writeStoreError(w, err)
		return
	}

	ok, err := auth.VerifyPassword(req.Password, user.PasswordHash)
	if err != nil {
		// A corrupted stored hash is an internal fault, not a mistyped
		// password. Log it; the response stays generic.
		log.Printf("api: verify password for %s: %v", user.ID, err)
		writeError(w, http.StatusInternalServerError, "internal error", "INTERNAL_ERROR")
		return
	}
	if !ok {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		writeError(w, http.StatusUnauthorized, "invalid credentials", "INVALID_CREDENTIALS")
		return
	}

	token, err := h.tokens.Issue(user.ID, user.Email)
	if err != nil {
		log.Printf("api: issue token: %v", err)
		writeError(w, http.StatusInternalServerError, "internal error", "INTERNAL_ERROR")
		return
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	writeJSON(w, http.StatusOK, AuthResponse{Token: token, User: toUserResponse(user)})
}

// Me returns the authenticated user's account.
// GET /api/auth/me
//
// @Summary      Current user
// @Tags         Auth
// @Produce      json
// @Success      200  {object}  UserResponse
// @Failure      401  {object}  ErrorResponse
// @Security     BearerToken
// @Router       /auth/me [get]
func (h *authAPIHandler) Me(w http.ResponseWriter, r *http.Request) {
	ident := auth.IdentityFromContext(r.Context())
	if ident == nil {
		writeError(w, http.StatusUnauthorized, "unauthorized", "UNAUTHORIZED")
		return
	}

	user, err := h.users.GetByID(r.Context(), ident.UserID)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toUserResponse(user))
}
