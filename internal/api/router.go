package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "github.com/xync/xync/docs/swagger"
	"github.com/xync/xync/internal/auth"
	"github.com/xync/xync/internal/preview"
	"github.com/xync/xync/internal/store"
)

// Deps holds all dependencies required to build the router.
type Deps struct {
	DB         *sqlx.DB
	Auth       *auth.Middleware
	Tokens     *auth.TokenManager
	Users      *store.UserStore
	Bookmarks  *store.BookmarkStore
	Notes      *store.NoteStore
	Tags       *store.TagStore
	Categories *store.CategoryStore
	Preview    *preview.Fetcher
}

// NewRouter assembles the full chi router. Registration, login, health
// probes, metrics, and swagger are public; everything under /api besides
// the auth endpoints requires a bearer token.
func NewRouter(deps Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RealIP)

	registerHealthRoutes(r, deps.DB)
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/*", httpSwagger.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Use(jsonContentType)

		registerPublicAuthRoutes(r, deps.Users, deps.Tokens)

		r.Group(func(r chi.Router) {
			r.Use(deps.Auth.RequireAuth)

			registerAuthedAuthRoutes(r, deps.Users, deps.Tokens)
			registerBookmarkRoutes(r, deps.Bookmarks)
			registerPreviewRoutes(r, deps.Preview)
			registerNoteRoutes(r, deps.Notes)
			registerTagRoutes(r, deps.Tags)
			registerCategoryRoutes(r, deps.Categories)
		})
	})

	return r
}

// jsonContentType is a middleware that sets Content-Type: application/json on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		next.ServeHTTP(w, r)
	})
}
