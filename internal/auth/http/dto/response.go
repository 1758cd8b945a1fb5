package dto

import (
	"time"

	"github.com/google/uuid"
)

// RegisterResponse contains the result of a successful registration. The new
// account is immediately authenticated with the returned token.
type RegisterResponse struct {
	ID          uuid.UUID `json:"id"`
	Email       string    `json:"email"`
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// LoginResponse contains the access token issued on successful login.
type LoginResponse struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	ExpiresAt   time.Time `json:"expires_at"`
}
