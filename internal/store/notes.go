package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// Note represents a row in the notes table.
type Note struct {
	ID        string    `db:"id"`
	UserID    string    `db:"user_id"`
	Title     string    `db:"title"`
	Content   string    `db:"content"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

type NoteStore struct {
	db *sqlx.DB
}

func NewNoteStore(db *sqlx.DB) *NoteStore {
	return &NoteStore{db: db}
}

func (s *NoteStore) q(query string) string { return s.db.Rebind(query) }

// Create inserts a note owned by userID.
func (s *NoteStore) Create(ctx context.Context, userID, title, content string) (*Note, error) {
	n := &Note{
		ID:        uuid.New().String(),
		UserID:    userID,
		Title:     title,
		Content:   content,
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}
	_, err := s.db.ExecContext(ctx, s.q(`
		INSERT INTO notes (id, user_id, title, content, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`), n.ID, n.UserID, n.Title, n.Content, n.CreatedAt, n.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return n, nil
}

// Get returns the note matching id and owned by userID, or ErrNotFound.
func (s *NoteStore) Get(ctx context.Context, userID, id string) (*Note, error) {
	var n Note
	err := s.db.GetContext(ctx, &n, s.q(`
		SELECT * FROM notes WHERE id = ? AND user_id = ?
	`), id, userID)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &n, nil
}

// List returns all notes owned by userID, most recently updated first.
func (s *NoteStore) List(ctx context.Context, userID string) ([]*Note, error) {
	notes := []*Note{}
	err := s.db.SelectContext(ctx, &notes, s.q(`
		SELECT * FROM notes WHERE user_id = ? ORDER BY updated_at DESC
	`), userID)
	if err != nil {
		return nil, err
	}
	return notes, nil
}

// Update applies a partial update: nil fields preserve stored values.
func (s *NoteStore) Update(ctx context.Context, userID, id string, title, content *string) (*Note, error) {
	if _, err := s.Get(ctx, userID, id); err != nil {
		return nil, err
	}

	_, err := s.db.ExecContext(ctx, s.q(`
		UPDATE notes
		SET title = COALESCE(?, title),
		    content = COALESCE(?, content),
		    updated_at = ?
		WHERE id = ? AND user_id = ?
	`), title, content, time.Now().UTC(), id, userID)
	if err != nil {
		return nil, err
	}
	return s.Get(ctx, userID, id)
}

// Delete removes the note. Returns ErrNotFound for absent or foreign-owned ids.
func (s *NoteStore) Delete(ctx context.Context, userID, id string) error {
	res, err := s.db.ExecContext(ctx, s.q(`
		DELETE FROM notes WHERE id = ? AND user_id = ?
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
