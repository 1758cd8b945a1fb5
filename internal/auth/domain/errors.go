package domain

import (
	"github.com/allisson/notes/internal/errors"
)

// Authentication and token validation errors.
var (
	// ErrTokenExpired indicates the access token's expiration time has passed.
	ErrTokenExpired = errors.Wrap(errors.ErrUnauthorized, "token expired")

	// ErrTokenInvalid indicates the access token is malformed or its signature
	// does not verify against the configured public key.
	ErrTokenInvalid = errors.Wrap(errors.ErrUnauthorized, "token invalid")

	// ErrTokenNotAllowed indicates the token is well-formed and signed but its
	// fingerprint is missing from the allow list or has been revoked.
	ErrTokenNotAllowed = errors.Wrap(errors.ErrUnauthorized, "token not allowed")

	// ErrInvalidCredentials indicates the email or password did not match.
	// Used for both unknown emails and wrong passwords to prevent enumeration.
	ErrInvalidCredentials = errors.Wrap(errors.ErrUnauthorized, "invalid credentials")
)
