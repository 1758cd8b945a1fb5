// Package domain defines core entities for authentication and token management.
package domain

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenTypeAccess is the token type tag embedded in access token claims.
const TokenTypeAccess = "access"

// Token is the server-side record of an issued access token.
// Fingerprint is the SHA-256 hex digest of the token's signing input
// (the header and claims segments of the serialized JWT). The signature
// segment is excluded, so the fingerprint is stable for a given payload.
type Token struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Fingerprint string
	ExpiresAt   time.Time
	Revoked     bool
	CreatedAt   time.Time
}

// AccessClaims are the JWT claims carried by an access token.
type AccessClaims struct {
	UserID    uuid.UUID `json:"user_id"`
	TokenType string    `json:"type"`
	jwt.RegisteredClaims
}
