package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	authDomain "github.com/allisson/notes/internal/auth/domain"
	authService "github.com/allisson/notes/internal/auth/service"
	userDomain "github.com/allisson/notes/internal/user/domain"
)

// authUseCase implements AuthUseCase for managing user authentication.
type authUseCase struct {
	userRepo        UserRepository
	passwordService authService.PasswordService
	tokenManager    authService.TokenManager
}

// Register creates a new user account and issues its first access token, so a
// freshly registered client is authenticated without a separate login call.
//
// The password is hashed with Argon2id before storage; the plain password is
// never persisted. Returns ErrEmailAlreadyInUse if the email is taken.
func (a *authUseCase) Register(
	ctx context.Context,
	input *authDomain.RegisterInput,
) (*authDomain.RegisterOutput, error) {
	hashedPassword, err := a.passwordService.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	user := &userDomain.User{
		ID:        uuid.Must(uuid.NewV7()),
		Email:     input.Email,
		Password:  hashedPassword,
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}

	if err := a.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	token, err := a.tokenManager.Issue(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	return &authDomain.RegisterOutput{
		UserID:      user.ID,
		Email:       user.Email,
		AccessToken: token.AccessToken,
		ExpiresAt:   token.ExpiresAt,
	}, nil
}

// Login verifies the credentials and issues a new access token.
//
// Security Notes:
//   - Returns ErrInvalidCredentials for both unknown emails and wrong
//     passwords to prevent account enumeration
//   - The issued token's fingerprint is recorded in the allow list before
//     the token is returned
func (a *authUseCase) Login(
	ctx context.Context,
	input *authDomain.LoginInput,
) (*authDomain.LoginOutput, error) {
	user, err := a.userRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		// If user not found, return generic error to prevent enumeration
		if errors.Is(err, userDomain.ErrUserNotFound) {
			return nil, authDomain.ErrInvalidCredentials
		}
		return nil, err
	}

	if !a.passwordService.ComparePassword(input.Password, user.Password) {
		return nil, authDomain.ErrInvalidCredentials
	}

	return a.tokenManager.Issue(ctx, user.ID)
}

// AuthenticateToken validates an access token and returns the associated user.
//
// The token manager checks signature, expiration, and the allow list. A valid
// token whose user no longer exists yields ErrUserNotFound.
func (a *authUseCase) AuthenticateToken(
	ctx context.Context,
	plainToken string,
) (*userDomain.User, error) {
	claims, err := a.tokenManager.Verify(ctx, plainToken)
	if err != nil {
		return nil, err
	}

	return a.userRepo.GetByID(ctx, claims.UserID)
}

// Logout verifies the access token and revokes it using the token ID embedded
// in its claims. The token must still be valid: an expired, tampered, or
// already revoked token cannot be logged out.
func (a *authUseCase) Logout(ctx context.Context, plainToken string) error {
	claims, err := a.tokenManager.Verify(ctx, plainToken)
	if err != nil {
		return err
	}

	tokenID, err := uuid.Parse(claims.ID)
	if err != nil {
		return authDomain.ErrTokenInvalid
	}

	return a.tokenManager.Revoke(ctx, tokenID)
}

// NewAuthUseCase creates a new AuthUseCase with the provided dependencies.
func NewAuthUseCase(
	userRepo UserRepository,
	passwordService authService.PasswordService,
	tokenManager authService.TokenManager,
) AuthUseCase {
	return &authUseCase{
		userRepo:        userRepo,
		passwordService: passwordService,
		tokenManager:    tokenManager,
	}
}
