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

// MySQLTokenRepository implements the token allow list for MySQL.
// Uses transaction support via database.GetTx().
type MySQLTokenRepository struct {
	db *sql.DB
}

// Create inserts a new token record into the allow list.
func (m *MySQLTokenRepository) Create(ctx context.Context, token *authDomain.Token) error {
	querier := database.GetTx(ctx, m.db)

	query := `INSERT INTO tokens (id, user_id, fingerprint, expires_at, revoked, created_at)
			  VALUES (?, ?, ?, ?, ?, ?)`

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
func (m *MySQLTokenRepository) Revoke(ctx context.Context, tokenID uuid.UUID) error {
	querier := database.GetTx(ctx, m.db)

	query := `UPDATE tokens SET revoked = TRUE WHERE id = ?`

	_, err := querier.ExecContext(ctx, query, tokenID)
	if err != nil {
		return apperrors.Wrap(err, "failed to revoke token")
	}

	return nil
}

// IsAllowed reports whether a token with the given fingerprint exists, has not
// been revoked, and has not expired.
func (m *MySQLTokenRepository) IsAllowed(ctx context.Context, fingerprint string) (bool, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT EXISTS (SELECT 1 FROM tokens WHERE fingerprint = ? AND revoked = FALSE AND expires_at > ?)`

	var allowed bool
	if err := querier.QueryRowContext(ctx, query, fingerprint, time.Now().UTC()).Scan(&allowed); err != nil {
		return false, apperrors.Wrap(err, "failed to check token fingerprint")
	}

	return allowed, nil
}

// DeleteExpired removes token records whose expiration time is strictly before
// the given instant. Returns the number of rows deleted.
func (m *MySQLTokenRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	querier := database.GetTx(ctx, m.db)

	query := `DELETE FROM tokens WHERE expires_at < ?`

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

// NewMySQLTokenRepository creates a new MySQL token repository.
func NewMySQLTokenRepository(db *sql.DB) *MySQLTokenRepository {
	return &MySQLTokenRepository{db: db}
}
