package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/allisson/notes/internal/note/domain"
)

// noteUseCase implements NoteUseCase for managing personal notes.
type noteUseCase struct {
	noteRepo NoteRepository
}

// CreateNote creates a new note owned by the user.
func (n *noteUseCase) CreateNote(
	ctx context.Context,
	userID uuid.UUID,
	input *domain.CreateNoteInput,
) (*domain.Note, error) {
	now := time.Now().UTC()
	note := &domain.Note{
		ID:        uuid.Must(uuid.NewV7()),
		UserID:    userID,
		Title:     input.Title,
		Content:   input.Content,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := n.noteRepo.Create(ctx, note); err != nil {
		return nil, err
	}

	return note, nil
}

// ListNotes returns all notes owned by the user, newest first.
func (n *noteUseCase) ListNotes(ctx context.Context, userID uuid.UUID) ([]*domain.Note, error) {
	return n.noteRepo.ListByUser(ctx, userID)
}

// GetNote returns a single note owned by the user.
func (n *noteUseCase) GetNote(ctx context.Context, noteID, userID uuid.UUID) (*domain.Note, error) {
	return n.noteRepo.GetByID(ctx, noteID, userID)
}

// UpdateNote applies a partial update to a note owned by the user. Nil input
// fields keep the note's current values.
func (n *noteUseCase) UpdateNote(
	ctx context.Context,
	noteID, userID uuid.UUID,
	input *domain.UpdateNoteInput,
) (*domain.Note, error) {
	note, err := n.noteRepo.GetByID(ctx, noteID, userID)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		note.Title = *input.Title
	}
	if input.Content != nil {
		note.Content = *input.Content
	}
	note.UpdatedAt = time.Now().UTC()

	if err := n.noteRepo.Update(ctx, note); err != nil {
		return nil, err
	}

	return note, nil
}

// DeleteNote removes a note owned by the user.
func (n *noteUseCase) DeleteNote(ctx context.Context, noteID, userID uuid.UUID) error {
	return n.noteRepo.Delete(ctx, noteID, userID)
}

// NewNoteUseCase creates a new NoteUseCase with the provided dependencies.
func NewNoteUseCase(noteRepo NoteRepository) NoteUseCase {
	return &noteUseCase{
		noteRepo: noteRepo,
	}
}
