// Package usecase defines business logic interfaces for authentication operations.
package usecase

import (
	"context"

	"github.com/google/uuid"

	authDomain "github.com/allisson/notes/internal/auth/domain"
	userDomain "github.com/allisson/notes/internal/user/domain"
)

// UserRepository defines persistence operations for user accounts.
// Implementations must support transaction-aware operations via context propagation.
type UserRepository interface {
	// Create stores a new user in the repository.
	// Returns ErrEmailAlreadyInUse if the email is taken.
	Create(ctx context.Context, user *userDomain.User) error

	// GetByID retrieves a user by ID. Returns ErrUserNotFound if not found.
	GetByID(ctx context.Context, id uuid.UUID) (*userDomain.User, error)

	// GetByEmail retrieves a user by email. Returns ErrUserNotFound if not found.
	GetByEmail(ctx context.Context, email string) (*userDomain.User, error)
}

// AuthUseCase defines business logic operations for registration, login, and
// token-based authentication.
type AuthUseCase interface {
	// Register creates a new user account with an Argon2id-hashed password and
	// issues its first access token.
	// Returns ErrEmailAlreadyInUse if the email is already registered.
	Register(ctx context.Context, input *authDomain.RegisterInput) (*authDomain.RegisterOutput, error)

	// Login verifies the credentials and issues a new access token.
	//
	// Returns ErrInvalidCredentials for both unknown emails and wrong passwords
	// to prevent account enumeration. The plain token is only returned once.
	Login(ctx context.Context, input *authDomain.LoginInput) (*authDomain.LoginOutput, error)

	// AuthenticateToken validates an access token and returns the user it was
	// issued to. Token validation errors (expired, invalid, revoked) are
	// propagated from the token manager.
	AuthenticateToken(ctx context.Context, plainToken string) (*userDomain.User, error)

	// Logout verifies the access token and revokes it. The token must still be
	// valid: expired, tampered, or already revoked tokens cannot be logged out.
	Logout(ctx context.Context, plainToken string) error
}
