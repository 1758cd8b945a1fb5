package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/allisson/notes/internal/metrics"
	"github.com/allisson/notes/internal/note/domain"
)

// noteUseCaseWithMetrics decorates NoteUseCase with metrics instrumentation.
type noteUseCaseWithMetrics struct {
	next    NoteUseCase
	metrics metrics.BusinessMetrics
}

// NewNoteUseCaseWithMetrics wraps a NoteUseCase with metrics recording.
func NewNoteUseCaseWithMetrics(useCase NoteUseCase, m metrics.BusinessMetrics) NoteUseCase {
	return &noteUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// CreateNote records metrics for note creation operations.
func (n *noteUseCaseWithMetrics) CreateNote(
	ctx context.Context,
	userID uuid.UUID,
	input *domain.CreateNoteInput,
) (*domain.Note, error) {
	start := time.Now()
	note, err := n.next.CreateNote(ctx, userID, input)

	status := "success"
	if err != nil {
		status = "error"
	}

	n.metrics.RecordOperation(ctx, "notes", "note_create", status)
	n.metrics.RecordDuration(ctx, "notes", "note_create", time.Since(start), status)

	return note, err
}

// ListNotes records metrics for note listing operations.
func (n *noteUseCaseWithMetrics) ListNotes(ctx context.Context, userID uuid.UUID) ([]*domain.Note, error) {
	start := time.Now()
	notes, err := n.next.ListNotes(ctx, userID)

	status := "success"
	if err != nil {
		status = "error"
	}

	n.metrics.RecordOperation(ctx, "notes", "note_list", status)
	n.metrics.RecordDuration(ctx, "notes", "note_list", time.Since(start), status)

	return notes, err
}

// GetNote records metrics for note retrieval operations.
func (n *noteUseCaseWithMetrics) GetNote(ctx context.Context, noteID, userID uuid.UUID) (*domain.Note, error) {
	start := time.Now()
	note, err := n.next.GetNote(ctx, noteID, userID)

	status := "success"
	if err != nil {
		status = "error"
	}

	n.metrics.RecordOperation(ctx, "notes", "note_get", status)
	n.metrics.RecordDuration(ctx, "notes", "note_get", time.Since(start), status)

	return note, err
}

// UpdateNote records metrics for note update operations.
func (n *noteUseCaseWithMetrics) UpdateNote(
	ctx context.Context,
	noteID, userID uuid.UUID,
	input *domain.UpdateNoteInput,
) (*domain.Note, error) {
	start := time.Now()
	note, err := n.next.UpdateNote(ctx, noteID, userID, input)

	status := "success"
	if err != nil {
		status = "error"
	}

	n.metrics.RecordOperation(ctx, "notes", "note_update", status)
	n.metrics.RecordDuration(ctx, "notes", "note_update", time.Since(start), status)

	return note, err
}

// DeleteNote records metrics for note deletion operations.
func (n *noteUseCaseWithMetrics) DeleteNote(ctx context.Context, noteID, userID uuid.UUID) error {
	start := time.Now()
	err := n.next.DeleteNote(ctx, noteID, userID)

	status := "success"
	if err != nil {
		status = "error"
	}

	n.metrics.RecordOperation(ctx, "notes", "note_delete", status)
	n.metrics.RecordDuration(ctx, "notes", "note_delete", time.Since(start), status)

	return err
}
