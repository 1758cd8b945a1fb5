package domain

import (
	"time"

	"github.com/google/uuid"
)

// RegisterInput contains the data needed to register a new user.
type RegisterInput struct {
	Email    string
	Password string
}

// RegisterOutput contains the result of a successful registration: the new
// user plus a freshly issued access token.
type RegisterOutput struct {
	UserID      uuid.UUID
	Email       string
	AccessToken string
	ExpiresAt   time.Time
}

// LoginInput contains the credentials for a login attempt.
type LoginInput struct {
	Email    string
	Password string
}

// LoginOutput contains the access token issued on successful login.
// The plain token is only returned once.
type LoginOutput struct {
	AccessToken string
	ExpiresAt   time.Time
}
