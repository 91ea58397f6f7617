package api

import (
	"database/sql"
	"time"

	"github.com/xync/xync/internal/store"
)

// --- Auth types ---

// RegisterRequest is the request body for POST /api/auth/register.
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

// LoginRequest is the request body for POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserResponse is the JSON representation of a user. The password hash
// never leaves the system boundary.
type UserResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// AuthResponse is returned by register and login: a bearer token plus the
// identity it asserts.
type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

func toUserResponse(u *store.User) UserResponse {
	return UserResponse{ID: u.ID, Email: u.Email, Name: u.Name, CreatedAt: u.CreatedAt}
}

// --- Bookmark types ---

// CreateBookmarkRequest is the request body for POST /api/bookmarks.
type CreateBookmarkRequest struct {
	URL         string   `json:"url"`
	Title       string   `json:"title"`
	Description *string  `json:"description,omitempty"`
	CategoryID  *string  `json:"category_id,omitempty"`
	TagIDs      []string `json:"tag_ids,omitempty"`
}

// UpdateBookmarkRequest is the request body for PUT /api/bookmarks/{id}.
// Every field is optional; absent fields preserve stored values.
type UpdateBookmarkRequest struct {
	URL         *string  `json:"url,omitempty"`
	Title       *string  `json:"title,omitempty"`
	Description *string  `json:"description,omitempty"`
	CategoryID  *string  `json:"category_id,omitempty"`
	TagIDs      []string `json:"tag_ids,omitempty"`
}

// BookmarkResponse is the JSON representation of a bookmark.
type BookmarkResponse struct {
	ID          string    `json:"id"`
	URL         string    `json:"url"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	CategoryID  string    `json:"category_id,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// BookmarkListResponse is the response for GET /api/bookmarks.
type BookmarkListResponse struct {
	Bookmarks []BookmarkResponse `json:"bookmarks"`
}

func toBookmarkResponse(b *store.Bookmark) BookmarkResponse {
	return BookmarkResponse{
		ID:          b.ID,
		URL:         b.URL,
		Title:       b.Title,
		Description: nullStr(b.Description),
		CategoryID:  nullStr(b.CategoryID),
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
}

// --- Note types ---

// CreateNoteRequest is the request body for POST /api/notes.
type CreateNoteRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// UpdateNoteRequest is the request body for PUT /api/notes/{id}.
type UpdateNoteRequest struct {
	Title   *string `json:"title,omitempty"`
	Content *string `json:"content,omitempty"`
}

// NoteResponse is the JSON representation of a note.
type NoteResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NoteListResponse is the response for GET /api/notes.
type NoteListResponse struct {
	Notes []NoteResponse `json:"notes"`
}

func toNoteResponse(n *store.Note) NoteResponse {
	return NoteResponse{ID: n.ID, Title: n.Title, Content: n.Content, CreatedAt: n.CreatedAt, UpdatedAt: n.UpdatedAt}
}

// --- Tag types ---

// CreateTagRequest is the request body for POST /api/tags.
type CreateTagRequest struct {
	Name  string  `json:"name"`
	Color *string `json:"color,omitempty"`
}

// UpdateTagRequest is the request body for PUT /api/tags/{id}.
type UpdateTagRequest struct {
	Name  *string `json:"name,omitempty"`
	Color *string `json:"color,omitempty"`
}

// TagResponse is the JSON representation of a tag.
type TagResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Color     string    `json:"color,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// TagListResponse is the response for GET /api/tags.
type TagListResponse struct {
	Tags []TagResponse `json:"tags"`
}

func toTagResponse(t *store.Tag) TagResponse {
	return TagResponse{ID: t.ID, Name: t.Name, Color: nullStr(t.Color), CreatedAt: t.CreatedAt}
}

// --- Category types ---

// CreateCategoryRequest is the request body for POST /api/categories.
type CreateCategoryRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	ParentID    *string `json:"parent_id,omitempty"`
}

// UpdateCategoryRequest is the request body for PUT /api/categories/{id}.
type UpdateCategoryRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	ParentID    *string `json:"parent_id,omitempty"`
}

// CategoryResponse is the JSON representation of a category.
type CategoryResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	ParentID    string    `json:"parent_id,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// CategoryListResponse is the response for GET /api/categories.
type CategoryListResponse struct {
	Categories []CategoryResponse `json:"categories"`
}

func toCategoryResponse(c *store.Category) CategoryResponse {
	return CategoryResponse{
		ID:          c.ID,
		Name:        c.Name,
		Description: nullStr(c.Description),
		ParentID:    nullStr(c.ParentID),
		CreatedAt:   c.CreatedAt,
	}
}

// --- Preview types ---

// PreviewRequest is the request body for POST /api/bookmarks/preview.
type PreviewRequest struct {
	URL string `json:"url"`
}

// PreviewResponse carries best-effort page metadata; fields may be empty.
type PreviewResponse struct {
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	Image       string `json:"image,omitempty"`
	Favicon     string `json:"favicon,omitempty"`
}

func nullStr(s sql.NullString) string {
	if s.Valid {
		return s.String
	}
	return ""
}
