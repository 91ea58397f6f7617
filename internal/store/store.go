package store

import (
	"errors"
	"strings"
)

var (
	// ErrNotFound is returned when a requested entity does not exist or is
	// owned by a different user. The two cases are deliberately
	// indistinguishable so ownership cannot be probed through error codes.
	ErrNotFound = errors.New("not found")

	// ErrEmailTaken is returned when registering an email that already exists.
	ErrEmailTaken = errors.New("email already registered")

	// ErrDuplicateName is returned when a name collides within its owner's
	// uniqueness scope (tags, categories).
	ErrDuplicateName = errors.New("name already exists")

	// ErrOwnParent is returned when a category references itself as parent.
	ErrOwnParent = errors.New("category cannot be its own parent")
)

// isUniqueConstraintError checks whether err indicates a unique constraint violation.
// Works across SQLite, PostgreSQL, and MySQL.
func isUniqueConstraintError(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique constraint") || // SQLite & PostgreSQL
		strings.Contains(msg, "duplicate key") || // PostgreSQL
		strings.Contains(msg, "duplicate entry") // MySQL
}
