// Package service provides technical services for authentication operations.
//
// This package implements RS256 access token signing and verification backed
// by a server-side allow list, plus Argon2id password hashing for user
// credentials.
package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	authDomain "github.com/allisson/notes/internal/auth/domain"
)

// TokenRepository defines persistence operations for the token allow list.
// Implementations must support transaction-aware operations via context propagation.
type TokenRepository interface {
	// Create stores a new token record in the allow list.
	Create(ctx context.Context, token *authDomain.Token) error

	// Revoke marks the token with the given ID as revoked. Revoking an
	// unknown or already revoked ID is a no-op, so revocation never leaks
	// whether a token exists.
	Revoke(ctx context.Context, tokenID uuid.UUID) error

	// IsAllowed reports whether a token with the given fingerprint exists
	// in the allow list, has not been revoked, and has not expired
	// store-side.
	IsAllowed(ctx context.Context, fingerprint string) (bool, error)

	// DeleteExpired removes all token records whose expiration time is
	// strictly before the given instant. Returns the number of rows deleted.
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

// TokenManager defines operations for the access token lifecycle.
//
// Tokens are RS256-signed JWTs backed by a server-side allow list keyed by
// the fingerprint of the token's signing input. A token is only accepted if
// its signature verifies, it has not expired, and its fingerprint is present
// and not revoked in the allow list.
type TokenManager interface {
	// Issue signs a new access token for the user and records its fingerprint
	// in the allow list. The record is persisted before the token is returned,
	// so a returned token is always immediately verifiable.
	Issue(ctx context.Context, userID uuid.UUID) (*authDomain.LoginOutput, error)

	// Verify validates an access token and returns its claims.
	//
	// Validation order matters: signature and expiration are checked first,
	// then the allow list. Returns ErrTokenExpired for expired tokens,
	// ErrTokenInvalid for malformed or badly signed tokens, and
	// ErrTokenNotAllowed when the fingerprint is missing or revoked.
	Verify(ctx context.Context, plainToken string) (*authDomain.AccessClaims, error)

	// Revoke marks the token with the given ID as revoked in the allow list.
	// Revoking an already revoked or unknown ID is a no-op.
	Revoke(ctx context.Context, tokenID uuid.UUID) error

	// CleanupExpired removes allow list records for tokens that have already
	// expired. Returns the number of records removed.
	CleanupExpired(ctx context.Context) (int64, error)
}

// PasswordService defines operations for user password hashing and validation.
// Implementations must use industry-standard hashing algorithms (e.g., argon2).
type PasswordService interface {
	// HashPassword hashes a plain text password for storage.
	HashPassword(plainPassword string) (hashedPassword string, err error)

	// ComparePassword compares a plain text password against a stored hash.
	// Returns true if the password matches the hash, false otherwise.
	// This is constant-time to prevent timing attacks.
	ComparePassword(plainPassword string, hashedPassword string) bool
}
