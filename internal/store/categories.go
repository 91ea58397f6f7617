package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// Category represents a row in the categories table. Categories form a
// per-owner hierarchy via parent_id; names are unique per owner.
type Category struct {
	ID          string         `db:"id"`
	UserID      string         `db:"user_id"`
	Name        string         `db:"name"`
	Description sql.NullString `db:"description"`
	ParentID    sql.NullString `db:"parent_id"`
	CreatedAt   time.Time      `db:"created_at"`
}

type CategoryStore struct {
	db *sqlx.DB
}

func NewCategoryStore(db *sqlx.DB) *CategoryStore {
	return &CategoryStore{db: db}
}

func (s *CategoryStore) q(query string) string { return s.db.Rebind(query) }

// Create inserts a category owned by userID. A supplied parent must exist
// and be owned by the same user; a parent equal to the new category's own
// id is rejected with ErrOwnParent.
func (s *CategoryStore) Create(ctx context.Context, userID, name string, description, parentID *string) (*Category, error) {
	var count int
	err := s.db.GetContext(ctx, &count, s.q(`
		SELECT COUNT(*) FROM categories WHERE user_id = ? AND name = ?
	`), userID, name)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrDuplicateName
	}

	id := uuid.New().String()
	if parentID != nil {
		if *parentID == id {
			return nil, ErrOwnParent
		}
		if _, err := s.Get(ctx, userID, *parentID); err != nil {
			return nil, err
		}
	}

	c := &Category{
		ID:        id,
		UserID:    userID,
		Name:      name,
		CreatedAt: time.Now().UTC(),
	}
	if description != nil {
		c.Description = sql.NullString{String: *description, Valid: true}
	}
	if parentID != nil {
		c.ParentID = sql.NullString{String: *parentID, Valid: true}
	}
	_, err = s.db.ExecContext(ctx, s.q(`
		INSERT INTO categories (id, user_id, name, description, parent_id, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`), c.ID, c.UserID, c.Name, c.Description, c.ParentID, c.CreatedAt)
	if err != nil {
		if isUniqueConstraintError(err) {
			return nil, ErrDuplicateName
		}
		return nil, err
	}
	return c, nil
}

// Get returns the category matching id and owned by userID, or ErrNotFound.
func (s *CategoryStore) Get(ctx context.Context, userID, id string) (*Category, error) {
	var c Category
	err := s.db.GetContext(ctx, &c, s.q(`
		SELECT * FROM categories WHERE id = ? AND user_id = ?
	`), id, userID)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// List returns all categories owned by userID, ordered by name.
func (s *CategoryStore) List(ctx context.Context, userID string) ([]*Category, error) {
	categories := []*Category{}
	err := s.db.SelectContext(ctx, &categories, s.q(`
		SELECT * FROM categories WHERE user_id = ? ORDER BY name ASC
	`), userID)
	if err != nil {
		return nil, err
	}
	return categories, nil
}

// Update applies a partial update: nil fields preserve stored values.
// A supplied parent must not be the category itself and must resolve via
// an ownership-checked lookup. Only the direct self-parent case is
// rejected; deeper cycles are not detected.
func (s *CategoryStore) Update(ctx context.Context, userID, id string, name, description, parentID *string) (*Category, error) {
	if _, err := s.Get(ctx, userID, id); err != nil {
		return nil, err
	}

	if parentID != nil {
		if *parentID == id {
			return nil, ErrOwnParent
		}
		if _, err := s.Get(ctx, userID, *parentID); err != nil {
			return nil, err
		}
	}

	_, err := s.db.ExecContext(ctx, s.q(`
		UPDATE categories
		SET name = COALESCE(?, name),
		    description = COALESCE(?, description),
		    parent_id = COALESCE(?, parent_id)
		WHERE id = ? AND user_id = ?
	`), name, description, parentID, id, userID)
	if err != nil {
		if isUniqueConstraintError(err) {
			return nil, ErrDuplicateName
		}
		return nil, err
	}
	return s.Get(ctx, userID, id)
}

// Delete removes the category. Returns ErrNotFound for absent or
// foreign-owned ids. Children keep existing with parent_id cleared by
// the schema's ON DELETE SET NULL.
func (s *CategoryStore) Delete(ctx context.Context, userID, id string) error {
	res, err := s.db.ExecContext(ctx, s.q(`
		DELETE FROM categories WHERE id = ? AND user_id = ?
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
