package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/xync/xync/internal/api"
	"github.com/xync/xync/internal/auth"
	"github.com/xync/xync/internal/preview"
	"github.com/xync/xync/internal/store"
	"github.com/xync/xync/internal/testutil"
)

type testEnv struct {
	router     http.Handler
	tokens     *auth.TokenManager
	users      *store.UserStore
	bookmarks  *store.BookmarkStore
	notes      *store.NoteStore
	tags       *store.TagStore
	categories *store.CategoryStore
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	conn := testutil.NewTestDB(t)
	tokens := auth.NewTokenManager("test-secret", time.Hour)
	tags := store.NewTagStore(conn)

	env := &testEnv{
		tokens:     tokens,
		users:      store.NewUserStore(conn),
		bookmarks:  store.NewBookmarkStore(conn, tags),
		notes:      store.NewNoteStore(conn),
		tags:       tags,
		categories: store.NewCategoryStore(conn),
	}
	env.router = api.NewRouter(api.Deps{
		DB:         conn,
		Auth:       auth.NewMiddleware(tokens),
		Tokens:     tokens,
		Users:      env.users,
		Bookmarks:  env.bookmarks,
		Notes:      env.notes,
		Tags:       env.tags,
		Categories: env.categories,
		Preview:    preview.NewFetcher(),
	})
	return env
}

// seedUser creates a user directly in the store and issues a token for it.
// The stored hash is a placeholder; tests exercising the login path go
// through the register endpoint instead.
func (env *testEnv) seedUser(t *testing.T, email string) (*store.User, string) {
	t.Helper()

	u, err := env.users.Create(context.Background(), email, "unverifiable-hash", "Test User")
	if err != nil {
		t.Fatalf("seed user: %v", err)
	}
	token, err := env.tokens.Issue(u.ID, u.Email)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	return u, token
}

// do performs a request against the router. A non-empty token is sent as a
// bearer credential; a non-nil body is JSON-encoded.
func (env *testEnv) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode request body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.NewDecoder(rec.Body).Decode(&v); err != nil {
		t.Fatalf("decode response body: %v", err)
	}
	return v
}

func wantStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Fatalf("status = %d, want %d; body: %s", rec.Code, want, rec.Body.String())
	}
}

func wantCode(t *testing.T, rec *httptest.ResponseRecorder, want string) {
	t.Helper()
	errResp := decodeBody[api.ErrorResponse](t, rec)
	if errResp.Code != want {
		t.Errorf("error code = %q, want %q", errResp.Code, want)
	}
}
