// Package usecase defines business logic interfaces for note operations.
package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/allisson/notes/internal/note/domain"
)

// NoteRepository defines persistence operations for notes.
// Implementations must support transaction-aware operations via context propagation.
type NoteRepository interface {
	// Create stores a new note in the repository.
	Create(ctx context.Context, note *domain.Note) error

	// GetByID retrieves a note owned by the given user.
	// Returns ErrNoteNotFound if the note does not exist or belongs to
	// another user.
	GetByID(ctx context.Context, id, userID uuid.UUID) (*domain.Note, error)

	// ListByUser retrieves all notes owned by the given user, newest first.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Note, error)

	// Update persists the note's title and content. Returns ErrNoteNotFound
	// if the note does not exist or belongs to another user.
	Update(ctx context.Context, note *domain.Note) error

	// Delete removes a note. Returns ErrNoteNotFound if the note does not
	// exist or belongs to another user.
	Delete(ctx context.Context, id, userID uuid.UUID) error
}

// NoteUseCase defines business logic operations for personal notes. Every
// operation is scoped to the authenticated user.
type NoteUseCase interface {
	// CreateNote creates a new note owned by the user.
	CreateNote(ctx context.Context, userID uuid.UUID, input *domain.CreateNoteInput) (*domain.Note, error)

	// ListNotes returns all notes owned by the user, newest first.
	ListNotes(ctx context.Context, userID uuid.UUID) ([]*domain.Note, error)

	// GetNote returns a single note owned by the user.
	GetNote(ctx context.Context, noteID, userID uuid.UUID) (*domain.Note, error)

	// UpdateNote applies a partial update to a note owned by the user and
	// returns the updated note.
	UpdateNote(ctx context.Context, noteID, userID uuid.UUID, input *domain.UpdateNoteInput) (*domain.Note, error)

	// DeleteNote removes a note owned by the user.
	DeleteNote(ctx context.Context, noteID, userID uuid.UUID) error
}
