package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/xync/xync/internal/metrics"
)

type contextKey string

// identityContextKey is the context key under which the authenticated
// Identity is stored for the remainder of request processing.
const identityContextKey contextKey = "xync.identity"

// Middleware authenticates requests via Bearer token. It is applied
// per route group; public endpoints (register, login, health) skip it.
type Middleware struct {
	tokens *TokenManager
}

func NewMiddleware(tokens *TokenManager) *Middleware {
	return &Middleware{tokens: tokens}
}

// ExtractIdentity resolves an Authorization header value to an identity.
// Missing header, missing "Bearer " prefix, and token verification failures
// all return ErrInvalidToken so callers cannot distinguish why auth failed.
func (m *Middleware) ExtractIdentity(header string) (*Identity, error) {
	token, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || token == "" {
		return nil, ErrInvalidToken
	}
	return m.tokens.Verify(token)
}

// RequireAuth is an http.Handler middleware that authenticates the request
// and injects the resulting Identity into the request context.
// Any failure returns 401 with {"error": "unauthorized"}.
func (m *Middleware) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ident, err := m.ExtractIdentity(r.Header.Get("Authorization"))
		if err != nil {
			metrics.AuthRejectionsTotal.Inc()
			writeUnauthorized(w)
			return
		}
		ctx := context.WithValue(r.Context(), identityContextKey, ident)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// IdentityFromContext returns the authenticated identity, or nil when the
// request did not pass through RequireAuth.
func IdentityFromContext(ctx context.Context) *Identity {
	ident, _ := ctx.Value(identityContextKey).(*Identity)
	return ident
}

// writeUnauthorized writes a 401 JSON response.
func writeUnauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]string{"error": "unauthorized", "code": "UNAUTHORIZED"})
}
