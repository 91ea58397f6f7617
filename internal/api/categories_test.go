package api_test

import (
	"net/http"
	"testing"

	"github.com/xync/xync/internal/api"
)

func TestCategories_CRUD(t *testing.T) {
	env := newTestEnv(t)
	_, token := env.seedUser(t, "alice@example.com")

	rec := env.do(t, "POST", "/api/categories", token, api.CreateCategoryRequest{Name: "tech"})
	wantStatus(t, rec, http.StatusCreated)
	parent := decodeBody[api.CategoryResponse](t, rec)

	desc := "go articles"
	rec = env.do(t, "POST", "/api/categories", token, api.CreateCategoryRequest{
		Name:        "golang",
		Description: &desc,
		ParentID:    &parent.ID,
	})
	wantStatus(t, rec, http.StatusCreated)
	child := decodeBody[api.CategoryResponse](t, rec)
	if child.ParentID != parent.ID {
		t.Errorf("parent_id = %q, want %q", child.ParentID, parent.ID)
	}

	rec = env.do(t, "GET", "/api/categories", token, nil)
	wantStatus(t, rec, http.StatusOK)
	list := decodeBody[api.CategoryListResponse](t, rec)
	if len(list.Categories) != 2 {
		t.Fatalf("len(categories) = %d, want 2", len(list.Categories))
	}

	name := "technology"
	rec = env.do(t, "PUT", "/api/categories/"+parent.ID, token, api.UpdateCategoryRequest{Name: &name})
	wantStatus(t, rec, http.StatusOK)
	updated := decodeBody[api.CategoryResponse](t, rec)
	if updated.Name != "technology" {
		t.Errorf("name = %q, want %q", updated.Name, "technology")
	}

	rec = env.do(t, "DELETE", "/api/categories/"+parent.ID, token, nil)
	wantStatus(t, rec, http.StatusNoContent)

	// The child survives with its parent link cleared.
	rec = env.do(t, "GET", "/api/categories/"+child.ID, token, nil)
	wantStatus(t, rec, http.StatusOK)
	orphan := decodeBody[api.CategoryResponse](t, rec)
	if orphan.ParentID != "" {
		t.Errorf("parent_id = %q, want empty after parent delete", orphan.ParentID)
	}
}

func TestCategories_SelfParent(t *testing.T) {
	env := newTestEnv(t)
	_, token := env.seedUser(t, "alice@example.com")

	rec := env.do(t, "POST", "/api/categories", token, api.CreateCategoryRequest{Name: "tech"})
	wantStatus(t, rec, http.StatusCreated)
	created := decodeBody[api.CategoryResponse](t, rec)

	rec = env.do(t, "PUT", "/api/categories/"+created.ID, token, api.UpdateCategoryRequest{ParentID: &created.ID})
	wantStatus(t, rec, http.StatusBadRequest)
	wantCode(t, rec, "VALIDATION_ERROR")
}

func TestCategories_ForeignParent(t *testing.T) {
	env := newTestEnv(t)
	_, aliceToken := env.seedUser(t, "alice@example.com")
	_, bobToken := env.seedUser(t, "bob@example.com")

	rec := env.do(t, "POST", "/api/categories", aliceToken, api.CreateCategoryRequest{Name: "tech"})
	wantStatus(t, rec, http.StatusCreated)
	parent := decodeBody[api.CategoryResponse](t, rec)

	// Bob cannot parent his category under Alice's.
	rec = env.do(t, "POST", "/api/categories", bobToken, api.CreateCategoryRequest{
		Name:     "golang",
		ParentID: &parent.ID,
	})
	wantStatus(t, rec, http.StatusNotFound)
	wantCode(t, rec, "NOT_FOUND")
}

func TestCategories_DuplicateName(t *testing.T) {
	env := newTestEnv(t)
	_, token := env.seedUser(t, "alice@example.com")

	rec := env.do(t, "POST", "/api/categories", token, api.CreateCategoryRequest{Name: "tech"})
	wantStatus(t, rec, http.StatusCreated)

	rec = env.do(t, "POST", "/api/categories", token, api.CreateCategoryRequest{Name: "tech"})
	wantStatus(t, rec, http.StatusConflict)
	wantCode(t, rec, "CONFLICT")
}
