package app

import (
	"fmt"
	"sync"

	authRepository "github.com/allisson/notes/internal/auth/repository"
	authService "github.com/allisson/notes/internal/auth/service"
	authUsecase "github.com/allisson/notes/internal/auth/usecase"
	userRepository "github.com/allisson/notes/internal/user/repository"
)

// authComponents holds the lazily-initialized auth dependencies.
type authComponents struct {
	userRepo        authUsecase.UserRepository
	tokenRepo       authService.TokenRepository
	passwordService authService.PasswordService
	tokenManager    authService.TokenManager
	useCase         authUsecase.AuthUseCase

	userRepoInit        sync.Once
	tokenRepoInit       sync.Once
	passwordServiceInit sync.Once
	tokenManagerInit    sync.Once
	useCaseInit         sync.Once
}

// UserRepository returns the user repository instance.
func (c *Container) UserRepository() (authUsecase.UserRepository, error) {
	var err error
	c.authComponents.userRepoInit.Do(func() {
		c.authComponents.userRepo, err = c.initUserRepository()
		if err != nil {
			c.initErrors["userRepo"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["userRepo"]; exists {
		return nil, storedErr
	}
	return c.authComponents.userRepo, nil
}

// TokenRepository returns the token repository instance.
func (c *Container) TokenRepository() (authService.TokenRepository, error) {
	var err error
	c.authComponents.tokenRepoInit.Do(func() {
		c.authComponents.tokenRepo, err = c.initTokenRepository()
		if err != nil {
			c.initErrors["tokenRepo"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["tokenRepo"]; exists {
		return nil, storedErr
	}
	return c.authComponents.tokenRepo, nil
}

// PasswordService returns the password hashing service.
func (c *Container) PasswordService() authService.PasswordService {
	c.authComponents.passwordServiceInit.Do(func() {
		c.authComponents.passwordService = authService.NewPasswordService()
	})
	return c.authComponents.passwordService
}

// TokenManager returns the token manager instance.
func (c *Container) TokenManager() (authService.TokenManager, error) {
	var err error
	c.authComponents.tokenManagerInit.Do(func() {
		c.authComponents.tokenManager, err = c.initTokenManager()
		if err != nil {
			c.initErrors["tokenManager"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["tokenManager"]; exists {
		return nil, storedErr
	}
	return c.authComponents.tokenManager, nil
}

// AuthUseCase returns the auth use case instance.
func (c *Container) AuthUseCase() (authUsecase.AuthUseCase, error) {
	var err error
	c.authComponents.useCaseInit.Do(func() {
		c.authComponents.useCase, err = c.initAuthUseCase()
		if err != nil {
			c.initErrors["authUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["authUseCase"]; exists {
		return nil, storedErr
	}
	return c.authComponents.useCase, nil
}

// initUserRepository creates the user repository instance.
func (c *Container) initUserRepository() (authUsecase.UserRepository, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for user repository: %w", err)
	}

	// Select the appropriate repository based on the database driver
	switch c.config.DBDriver {
	case "mysql":
		return userRepository.NewMySQLUserRepository(db), nil
	case "postgres":
		return userRepository.NewPostgreSQLUserRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}
}

// initTokenRepository creates the token repository instance.
func (c *Container) initTokenRepository() (authService.TokenRepository, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for token repository: %w", err)
	}

	// Select the appropriate repository based on the database driver
	switch c.config.DBDriver {
	case "mysql":
		return authRepository.NewMySQLTokenRepository(db), nil
	case "postgres":
		return authRepository.NewPostgreSQLTokenRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}
}

// initTokenManager creates the token manager from the configured RSA key pair.
func (c *Container) initTokenManager() (authService.TokenManager, error) {
	tokenRepo, err := c.TokenRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get token repository for token manager: %w", err)
	}

	tokenManager, err := authService.NewTokenManager(
		c.config.JWTPrivateKey,
		c.config.JWTPublicKey,
		c.config.JWTIssuer,
		c.config.AuthTokenExpiration,
		tokenRepo,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create token manager: %w", err)
	}

	return tokenManager, nil
}

// initAuthUseCase creates the auth use case with all its dependencies.
func (c *Container) initAuthUseCase() (authUsecase.AuthUseCase, error) {
	userRepo, err := c.UserRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get user repository for auth use case: %w", err)
	}

	tokenManager, err := c.TokenManager()
	if err != nil {
		return nil, fmt.Errorf("failed to get token manager for auth use case: %w", err)
	}

	businessMetrics, err := c.BusinessMetrics()
	if err != nil {
		return nil, fmt.Errorf("failed to get business metrics for auth use case: %w", err)
	}

	useCase := authUsecase.NewAuthUseCase(userRepo, c.PasswordService(), tokenManager)
	return authUsecase.NewAuthUseCaseWithMetrics(useCase, businessMetrics), nil
}
