package api_test

import (
	"net/http"
	"testing"

	"github.com/xync/xync/internal/api"
)

func TestTags_CRUD(t *testing.T) {
	env := newTestEnv(t)
	_, token := env.seedUser(t, "alice@example.com")

	color := "#ff0000"
	rec := env.do(t, "POST", "/api/tags", token, api.CreateTagRequest{Name: "reading", Color: &color})
	wantStatus(t, rec, http.StatusCreated)
	created := decodeBody[api.TagResponse](t, rec)
	if created.Name != "reading" || created.Color != "#ff0000" {
		t.Errorf("created = %+v, want reading/#ff0000", created)
	}

	rec = env.do(t, "GET", "/api/tags/"+created.ID, token, nil)
	wantStatus(t, rec, http.StatusOK)

	rec = env.do(t, "GET", "/api/tags", token, nil)
	wantStatus(t, rec, http.StatusOK)
	list := decodeBody[api.TagListResponse](t, rec)
	if len(list.Tags) != 1 {
		t.Fatalf("len(tags) = %d, want 1", len(list.Tags))
	}

	name := "books"
	rec = env.do(t, "PUT", "/api/tags/"+created.ID, token, api.UpdateTagRequest{Name: &name})
	wantStatus(t, rec, http.StatusOK)
	updated := decodeBody[api.TagResponse](t, rec)
	if updated.Name != "books" {
		t.Errorf("name = %q, want %q", updated.Name, "books")
	}
	if updated.Color != "#ff0000" {
		t.Errorf("color = %q, want preserved %q", updated.Color, "#ff0000")
	}

	rec = env.do(t, "DELETE", "/api/tags/"+created.ID, token, nil)
	wantStatus(t, rec, http.StatusNoContent)
}

func TestTags_DuplicateName(t *testing.T) {
	env := newTestEnv(t)
	_, aliceToken := env.seedUser(t, "alice@example.com")
	_, bobToken := env.seedUser(t, "bob@example.com")

	rec := env.do(t, "POST", "/api/tags", aliceToken, api.CreateTagRequest{Name: "reading"})
	wantStatus(t, rec, http.StatusCreated)

	// Same owner, same name: conflict.
	rec = env.do(t, "POST", "/api/tags", aliceToken, api.CreateTagRequest{Name: "reading"})
	wantStatus(t, rec, http.StatusConflict)
	wantCode(t, rec, "CONFLICT")

	// Different owner, same name: fine.
	rec = env.do(t, "POST", "/api/tags", bobToken, api.CreateTagRequest{Name: "reading"})
	wantStatus(t, rec, http.StatusCreated)
}

func TestTags_CrossOwnerReadsAsNotFound(t *testing.T) {
	env := newTestEnv(t)
	_, aliceToken := env.seedUser(t, "alice@example.com")
	_, bobToken := env.seedUser(t, "bob@example.com")

	rec := env.do(t, "POST", "/api/tags", aliceToken, api.CreateTagRequest{Name: "reading"})
	wantStatus(t, rec, http.StatusCreated)
	created := decodeBody[api.TagResponse](t, rec)

	rec = env.do(t, "GET", "/api/tags/"+created.ID, bobToken, nil)
	wantStatus(t, rec, http.StatusNotFound)
	wantCode(t, rec, "NOT_FOUND")

	// Bob's listing does not leak Alice's tag.
	rec = env.do(t, "GET", "/api/tags", bobToken, nil)
	wantStatus(t, rec, http.StatusOK)
	list := decodeBody[api.TagListResponse](t, rec)
	if len(list.Tags) != 0 {
		t.Errorf("len(tags) = %d, want 0", len(list.Tags))
	}
}
