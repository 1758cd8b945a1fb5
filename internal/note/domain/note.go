// Package domain contains the core entities for personal notes.
package domain

import (
	"time"

	"github.com/google/uuid"

	apperrors "github.com/allisson/notes/internal/errors"
)

// ErrNoteNotFound is returned when a note does not exist or belongs to
// another user. Both cases are indistinguishable to the caller.
var ErrNoteNotFound = apperrors.Wrap(apperrors.ErrNotFound, "note not found")

// Note represents a personal note owned by a single user.
type Note struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateNoteInput contains the data needed to create a note.
type CreateNoteInput struct {
	Title   string
	Content string
}

// UpdateNoteInput contains a partial update for a note. Nil fields are left
// unchanged.
type UpdateNoteInput struct {
	Title   *string
	Content *string
}
