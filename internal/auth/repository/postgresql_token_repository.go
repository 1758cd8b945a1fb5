// Package repository provides data persistence implementations for the token allow list.
package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	authDomain "github.com/allisson/notes/internal/auth/domain"
	"github.com/allisson/notes/internal/database"
	apperrors "github.com/allisson/notes/internal/errors"
)

// PostgreSQLTokenRepository implements the token allow list for PostgreSQL.
// Uses native UUID types with transaction support via database.GetTx().
type PostgreSQLTokenRepository struct {
	db *sql.DB
}

// Create inserts a new token record into the allow list. Uses transaction support
// via database.GetTx(). Returns an error if database insertion fails.
func (p *PostgreSQLTokenRepository) Create(ctx context.Context, token *authDomain.Token) error {
	querier := database.GetTx(ctx, p.db)

	query := `INSERT INTO tokens (id, user_id, fingerprint, expires_at, revoked, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := querier.ExecContext(
		ctx,
		query,
		token.ID,
		token.UserID,
		token.Fingerprint,
		token.ExpiresAt,
		token.Revoked,
		token.CreatedAt,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to create token")
	}
	return nil
}

// Revoke marks the token with the given ID as revoked. Revoking an unknown or
// already revoked ID affects zero rows and returns nil.
func (p *PostgreSQLTokenRepository) Revoke(ctx context.Context, tokenID uuid.UUID) error {
	querier := database.GetTx(ctx, p.db)

	query := `UPDATE tokens SET revoked = TRUE WHERE id = $1`

	_, err := querier.ExecContext(ctx, query, tokenID)
	if err != nil {
		return apperrors.Wrap(err, "failed to revoke token")
	}

	return nil
}

// IsAllowed reports whether a token with the given fingerprint exists, has not
// been revoked, and has not expired.
func (p *PostgreSQLTokenRepository) IsAllowed(ctx context.Context, fingerprint string) (bool, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT EXISTS (SELECT 1 FROM tokens WHERE fingerprint = $1 AND revoked = FALSE AND expires_at > $2)`

	var allowed bool
	if err := querier.QueryRowContext(ctx, query, fingerprint, time.Now().UTC()).Scan(&allowed); err != nil {
		return false, apperrors.Wrap(err, "failed to check token fingerprint")
	}

	return allowed, nil
}

// DeleteExpired removes token records whose expiration time is strictly before
// the given instant. Returns the number of rows deleted.
func (p *PostgreSQLTokenRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	querier := database.GetTx(ctx, p.db)

	query := `DELETE FROM tokens WHERE expires_at < $1`

	result, err := querier.ExecContext(ctx, query, now)
	if err != nil {
		return 0, apperrors.Wrap(err, "failed to delete expired tokens")
	}

	count, err := result.RowsAffected()
	if err != nil {
		return 0, apperrors.Wrap(err, "failed to count deleted tokens")
	}

	return count, nil
}

// NewPostgreSQLTokenRepository creates a new PostgreSQL token repository.
func NewPostgreSQLTokenRepository(db *sql.DB) *PostgreSQLTokenRepository {
	return &PostgreSQLTokenRepository{db: db}
}
