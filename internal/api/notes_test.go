package api_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/xync/xync/internal/api"
)

func TestNotes_CRUD(t *testing.T) {
	env := newTestEnv(t)
	_, token := env.seedUser(t, "alice@example.com")

	rec := env.do(t, "POST", "/api/notes", token, api.CreateNoteRequest{
		Title:   "Ideas",
		Content: "write more Go",
	})
	wantStatus(t, rec, http.StatusCreated)
	created := decodeBody[api.NoteResponse](t, rec)

	rec = env.do(t, "GET", "/api/notes/"+created.ID, token, nil)
	wantStatus(t, rec, http.StatusOK)

	rec = env.do(t, "GET", "/api/notes", token, nil)
	wantStatus(t, rec, http.StatusOK)
	list := decodeBody[api.NoteListResponse](t, rec)
	if len(list.Notes) != 1 {
		t.Fatalf("len(notes) = %d, want 1", len(list.Notes))
	}

	// Partial update: only the content changes.
	content := "write even more Go"
	rec = env.do(t, "PUT", "/api/notes/"+created.ID, token, api.UpdateNoteRequest{Content: &content})
	wantStatus(t, rec, http.StatusOK)
	updated := decodeBody[api.NoteResponse](t, rec)
	if updated.Title != "Ideas" {
		t.Errorf("title = %q, want preserved %q", updated.Title, "Ideas")
	}
	if updated.Content != content {
		t.Errorf("content = %q, want %q", updated.Content, content)
	}

	rec = env.do(t, "DELETE", "/api/notes/"+created.ID, token, nil)
	wantStatus(t, rec, http.StatusNoContent)

	rec = env.do(t, "GET", "/api/notes/"+created.ID, token, nil)
	wantStatus(t, rec, http.StatusNotFound)
}

func TestNotes_CrossOwnerReadsAsNotFound(t *testing.T) {
	env := newTestEnv(t)
	alice, _ := env.seedUser(t, "alice@example.com")
	_, bobToken := env.seedUser(t, "bob@example.com")

	n, err := env.notes.Create(context.Background(), alice.ID, "Secret", "do not read")
	if err != nil {
		t.Fatalf("create note: %v", err)
	}

	title := "stolen"
	for _, tc := range []struct {
		method string
		body   any
	}{
		{"GET", nil},
		{"PUT", api.UpdateNoteRequest{Title: &title}},
		{"DELETE", nil},
	} {
		rec := env.do(t, tc.method, "/api/notes/"+n.ID, bobToken, tc.body)
		wantStatus(t, rec, http.StatusNotFound)
		wantCode(t, rec, "NOT_FOUND")
	}
}
