package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// Tag represents a row in the tags table. Names are unique per owner,
// not globally.
type Tag struct {
	ID        string         `db:"id"`
	UserID    string         `db:"user_id"`
	Name      string         `db:"name"`
	Color     sql.NullString `db:"color"`
	CreatedAt time.Time      `db:"created_at"`
}

type TagStore struct {
	db *sqlx.DB
}

func NewTagStore(db *sqlx.DB) *TagStore {
	return &TagStore{db: db}
}

func (s *TagStore) q(query string) string { return s.db.Rebind(query) }

// Create inserts a tag owned by userID. Returns ErrDuplicateName if the
// owner already has a tag with this name.
func (s *TagStore) Create(ctx context.Context, userID, name string, color *string) (*Tag, error) {
	var count int
	err := s.db.GetContext(ctx, &count, s.q(`
		SELECT COUNT(*) FROM tags WHERE user_id = ? AND name = ?
	`), userID, name)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrDuplicateName
	}

	t := &Tag{
		ID:        uuid.New().String(),
		UserID:    userID,
		Name:      name,
		CreatedAt: time.Now().UTC(),
	}
	if color != nil {
		t.Color = sql.NullString{String: *color, Valid: true}
	}
	_, err = s.db.ExecContext(ctx, s.q(`
		INSERT INTO tags (id, user_id, name, color, created_at)
		VALUES (?, ?, ?, ?, ?)
	`), t.ID, t.UserID, t.Name, t.Color, t.CreatedAt)
	if err != nil {
		// The UNIQUE(user_id, name) constraint closes the pre-check race.
		if isUniqueConstraintError(err) {
			return nil, ErrDuplicateName
		}
		return nil, err
	}
	return t, nil
}

// Get returns the tag matching id and owned by userID, or ErrNotFound.
func (s *TagStore) Get(ctx context.Context, userID, id string) (*Tag, error) {
	var t Tag
	err := s.db.GetContext(ctx, &t, s.q(`
		SELECT * FROM tags WHERE id = ? AND user_id = ?
	`), id, userID)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// List returns all tags owned by userID, ordered by name.
func (s *TagStore) List(ctx context.Context, userID string) ([]*Tag, error) {
	tags := []*Tag{}
	err := s.db.SelectContext(ctx, &tags, s.q(`
		SELECT * FROM tags WHERE user_id = ? ORDER BY name ASC
	`), userID)
	if err != nil {
		return nil, err
	}
	return tags, nil
}

// Update applies a partial update: nil fields preserve stored values.
func (s *TagStore) Update(ctx context.Context, userID, id string, name, color *string) (*Tag, error) {
	if _, err := s.Get(ctx, userID, id); err != nil {
		return nil, err
	}

	_, err := s.db.ExecContext(ctx, s.q(`
		UPDATE tags
		SET name = COALESCE(?, name),
		    color = COALESCE(?, color)
		WHERE id = ? AND user_id = ?
	`), name, color, id, userID)
	if err != nil {
		if isUniqueConstraintError(err) {
			return nil, ErrDuplicateName
		}
		return nil, err
	}
	return s.Get(ctx, userID, id)
}

// Delete removes the tag. Returns ErrNotFound for absent or foreign-owned ids.
func (s *TagStore) Delete(ctx context.Context, userID, id string) error {
	res, err := s.db.ExecContext(ctx, s.q(`
		DELETE FROM tags WHERE id = ? AND user_id = ?
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
