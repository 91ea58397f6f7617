package store_test

import (
	"context"
	"errors"
	"testing"

	"github.com/xync/xync/internal/store"
	"github.com/xync/xync/internal/testutil"
)

func newNoteTestEnv(t *testing.T) (*store.NoteStore, *store.UserStore) {
	t.Helper()
	db := testutil.NewTestDB(t)
	return store.NewNoteStore(db), store.NewUserStore(db)
}

func TestNoteStore_CreateAndGet(t *testing.T) {
	ns, us := newNoteTestEnv(t)
	ctx := context.Background()
	u := seedStoreUser(t, us, "alice@example.com")

	n, err := ns.Create(ctx, u.ID, "Ideas", "write more Go")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := ns.Get(ctx, u.ID, n.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Title != "Ideas" || got.Content != "write more Go" {
		t.Errorf("note = %+v, want Ideas/write more Go", got)
	}
}

func TestNoteStore_OwnershipScoping(t *testing.T) {
	ns, us := newNoteTestEnv(t)
	ctx := context.Background()
	alice := seedStoreUser(t, us, "alice@example.com")
	bob := seedStoreUser(t, us, "bob@example.com")

	n, err := ns.Create(ctx, alice.ID, "Secret", "do not read")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if _, err := ns.Get(ctx, bob.ID, n.ID); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("Get error = %v, want ErrNotFound", err)
	}
	title := "stolen"
	if _, err := ns.Update(ctx, bob.ID, n.ID, &title, nil); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("Update error = %v, want ErrNotFound", err)
	}
	if err := ns.Delete(ctx, bob.ID, n.ID); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("Delete error = %v, want ErrNotFound", err)
	}
}

func TestNoteStore_Update_Partial(t *testing.T) {
	ns, us := newNoteTestEnv(t)
	ctx := context.Background()
	u := seedStoreUser(t, us, "alice@example.com")

	n, err := ns.Create(ctx, u.ID, "Ideas", "write more Go")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	content := "write even more Go"
	updated, err := ns.Update(ctx, u.ID, n.ID, nil, &content)
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Title != "Ideas" {
		t.Errorf("title = %q, want preserved %q", updated.Title, "Ideas")
	}
	if updated.Content != content {
		t.Errorf("content = %q, want %q", updated.Content, content)
	}
	if updated.UpdatedAt.Before(n.UpdatedAt) {
		t.Error("expected updated_at to advance")
	}
}

func TestNoteStore_Delete(t *testing.T) {
	ns, us := newNoteTestEnv(t)
	ctx := context.Background()
	u := seedStoreUser(t, us, "alice@example.com")

	n, err := ns.Create(ctx, u.ID, "Ideas", "write more Go")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := ns.Delete(ctx, u.ID, n.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := ns.Get(ctx, u.ID, n.ID); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("Get after delete error = %v, want ErrNotFound", err)
	}
}
