package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"github.com/allisson/notes/internal/database"
	"github.com/allisson/notes/internal/note/domain"

	apperrors "github.com/allisson/notes/internal/errors"
)

// MySQLNoteRepository handles note persistence for MySQL.
//
// Every query is scoped by user_id, so a note that belongs to another user is
// indistinguishable from a note that does not exist.
type MySQLNoteRepository struct {
	db *sql.DB
}

// NewMySQLNoteRepository creates a new MySQLNoteRepository
func NewMySQLNoteRepository(db *sql.DB) *MySQLNoteRepository {
	return &MySQLNoteRepository{
		db: db,
	}
}

// Create inserts a new note
func (r *MySQLNoteRepository) Create(ctx context.Context, note *domain.Note) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO notes (id, user_id, title, content, created_at, updated_at)
			  VALUES (?, ?, ?, ?, NOW(), NOW())`

	_, err := querier.ExecContext(ctx, query, note.ID, note.UserID, note.Title, note.Content)
	if err != nil {
		return apperrors.Wrap(err, "failed to create note")
	}
	return nil
}

// GetByID retrieves a note by ID for the given user
func (r *MySQLNoteRepository) GetByID(ctx context.Context, id, userID uuid.UUID) (*domain.Note, error) {
	var note domain.Note
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, user_id, title, content, created_at, updated_at
			  FROM notes WHERE id = ? AND user_id = ?`

	err := querier.QueryRowContext(ctx, query, id, userID).Scan(
		&note.ID, &note.UserID, &note.Title, &note.Content, &note.CreatedAt, &note.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNoteNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get note by id")
	}

	return &note, nil
}

// ListByUser retrieves all notes owned by the given user, newest first
func (r *MySQLNoteRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Note, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, user_id, title, content, created_at, updated_at
			  FROM notes WHERE user_id = ? ORDER BY created_at DESC`

	rows, err := querier.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list notes")
	}
	defer func() { _ = rows.Close() }()

	notes := []*domain.Note{}
	for rows.Next() {
		var note domain.Note
		if err := rows.Scan(
			&note.ID, &note.UserID, &note.Title, &note.Content, &note.CreatedAt, &note.UpdatedAt,
		); err != nil {
			return nil, apperrors.Wrap(err, "failed to scan note")
		}
		notes = append(notes, &note)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate notes")
	}

	return notes, nil
}

// Update persists the note's title and content. Returns ErrNoteNotFound if
// the note does not exist or belongs to another user.
func (r *MySQLNoteRepository) Update(ctx context.Context, note *domain.Note) error {
	querier := database.GetTx(ctx, r.db)

	query := `UPDATE notes SET title = ?, content = ?, updated_at = NOW()
			  WHERE id = ? AND user_id = ?`

	result, err := querier.ExecContext(ctx, query, note.Title, note.Content, note.ID, note.UserID)
	if err != nil {
		return apperrors.Wrap(err, "failed to update note")
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to check updated note")
	}
	if affected == 0 {
		return domain.ErrNoteNotFound
	}

	return nil
}

// Delete removes a note. Returns ErrNoteNotFound if the note does not exist
// or belongs to another user.
func (r *MySQLNoteRepository) Delete(ctx context.Context, id, userID uuid.UUID) error {
	querier := database.GetTx(ctx, r.db)

	query := `DELETE FROM notes WHERE id = ? AND user_id = ?`

	result, err := querier.ExecContext(ctx, query, id, userID)
	if err != nil {
		return apperrors.Wrap(err, "failed to delete note")
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to check deleted note")
	}
	if affected == 0 {
		return domain.ErrNoteNotFound
	}

	return nil
}
