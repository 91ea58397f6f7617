package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// Bookmark represents a row in the bookmarks table.
type Bookmark struct {
	ID          string         `db:"id"`
	UserID      string         `db:"user_id"`
	URL         string         `db:"url"`
	Title       string         `db:"title"`
	Description sql.NullString `db:"description"`
	CategoryID  sql.NullString `db:"category_id"`
	CreatedAt   time.Time      `db:"created_at"`
	UpdatedAt   time.Time      `db:"updated_at"`
}

type BookmarkStore struct {
	db   *sqlx.DB
	tags *TagStore
}

func NewBookmarkStore(db *sqlx.DB, tags *TagStore) *BookmarkStore {
	return &BookmarkStore{db: db, tags: tags}
}

func (s *BookmarkStore) q(query string) string { return s.db.Rebind(query) }

// Create inserts a bookmark owned by userID and assigns the given tags.
// Tag ids must resolve to tags owned by the same user.
func (s *BookmarkStore) Create(ctx context.Context, userID, url, title string, description, categoryID *string, tagIDs []string) (*Bookmark, error) {
	b := &Bookmark{
		ID:        uuid.New().String(),
		UserID:    userID,
		URL:       url,
		Title:     title,
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}
	if description != nil {
		b.Description = sql.NullString{String: *description, Valid: true}
	}
	if categoryID != nil {
		b.CategoryID = sql.NullString{String: *categoryID, Valid: true}
	}
	_, err := s.db.ExecContext(ctx, s.q(`
		INSERT INTO bookmarks (id, user_id, url, title, description, category_id, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`), b.ID, b.UserID, b.URL, b.Title, b.Description, b.CategoryID, b.CreatedAt, b.UpdatedAt)
	if err != nil {
		return nil, err
	}

	if tagIDs != nil {
		if err := s.SetTags(ctx, userID, b.ID, tagIDs); err != nil {
			return nil, err
		}
	}
	return b, nil
}

// Get returns the bookmark matching id and owned by userID, or ErrNotFound.
func (s *BookmarkStore) Get(ctx context.Context, userID, id string) (*Bookmark, error) {
	var b Bookmark
	err := s.db.GetContext(ctx, &b, s.q(`
		SELECT * FROM bookmarks WHERE id = ? AND user_id = ?
	`), id, userID)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// List returns all bookmarks owned by userID, newest first.
func (s *BookmarkStore) List(ctx context.Context, userID string) ([]*Bookmark, error) {
	bookmarks := []*Bookmark{}
	err := s.db.SelectContext(ctx, &bookmarks, s.q(`
		SELECT * FROM bookmarks WHERE user_id = ? ORDER BY created_at DESC
	`), userID)
	if err != nil {
		return nil, err
	}
	return bookmarks, nil
}

// Update applies a partial update: nil fields preserve stored values.
// A non-nil tagIDs replaces the bookmark's tag set.
func (s *BookmarkStore) Update(ctx context.Context, userID, id string, url, title, description, categoryID *string, tagIDs []string) (*Bookmark, error) {
	if _, err := s.Get(ctx, userID, id); err != nil {
		return nil, err
	}

	_, err := s.db.ExecContext(ctx, s.q(`
		UPDATE bookmarks
		SET url = COALESCE(?, url),
		    title = COALESCE(?, title),
		    description = COALESCE(?, description),
		    category_id = COALESCE(?, category_id),
		    updated_at = ?
		WHERE id = ? AND user_id = ?
	`), url, title, description, categoryID, time.Now().UTC(), id, userID)
	if err != nil {
		return nil, err
	}

	if tagIDs != nil {
		if err := s.SetTags(ctx, userID, id, tagIDs); err != nil {
			return nil, err
		}
	}
	return s.Get(ctx, userID, id)
}

// Delete removes the bookmark. Returns ErrNotFound for absent or
// foreign-owned ids. Tag links are removed by the schema's cascade.
func (s *BookmarkStore) Delete(ctx context.Context, userID, id string) error {
	res, err := s.db.ExecContext(ctx, s.q(`
		DELETE FROM bookmarks WHERE id = ? AND user_id = ?
	`), id, userID)
	if err != nil {
		return err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}

// SetTags replaces the bookmark's tag set. Every tag id is resolved with an
// ownership-checked lookup first, so a caller cannot link tags it does not own.
func (s *BookmarkStore) SetTags(ctx context.Context, userID, bookmarkID string, tagIDs []string) error {
	for _, tagID := range tagIDs {
		if _, err := s.tags.Get(ctx, userID, tagID); err != nil {
			return err
		}
	}

	_, err := s.db.ExecContext(ctx, s.q(`
		DELETE FROM bookmark_tags WHERE bookmark_id = ?
	`), bookmarkID)
	if err != nil {
		return err
	}
	for _, tagID := range tagIDs {
		_, err := s.db.ExecContext(ctx, s.q(`
			INSERT INTO bookmark_tags (bookmark_id, tag_id) VALUES (?, ?)
		`), bookmarkID, tagID)
		if err != nil {
			if isUniqueConstraintError(err) {
				continue // duplicate id in the input set
			}
			return err
		}
	}
	return nil
}

// ListTags returns the tags assigned to a bookmark, ordered by name.
func (s *BookmarkStore) ListTags(ctx context.Context, userID, bookmarkID string) ([]*Tag, error) {
	if _, err := s.Get(ctx, userID, bookmarkID); err != nil {
		return nil, err
	}
	tags := []*Tag{}
	err := s.db.SelectContext(ctx, &tags, s.q(`
		SELECT t.* FROM tags t
		INNER JOIN bookmark_tags bt ON bt.tag_id = t.id
		WHERE bt.bookmark_id = ?
		ORDER BY t.name ASC
	`), bookmarkID)
	if err != nil {
		return nil, err
	}
	return tags, nil
}
