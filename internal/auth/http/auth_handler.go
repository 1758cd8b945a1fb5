package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	authDomain "github.com/allisson/notes/internal/auth/domain"
	"github.com/allisson/notes/internal/auth/http/dto"
	authUseCase "github.com/allisson/notes/internal/auth/usecase"
	apperrors "github.com/allisson/notes/internal/errors"
	"github.com/allisson/notes/internal/httputil"
	customValidation "github.com/allisson/notes/internal/validation"
)

// AuthHandler handles HTTP requests for registration, login, and logout.
type AuthHandler struct {
	authUseCase authUseCase.AuthUseCase
	logger      *slog.Logger
}

// NewAuthHandler creates a new auth handler with required dependencies.
func NewAuthHandler(
	authUseCase authUseCase.AuthUseCase,
	logger *slog.Logger,
) *AuthHandler {
	return &AuthHandler{
		authUseCase: authUseCase,
		logger:      logger,
	}
}

// RegisterHandler creates a new user account and issues its first access token.
// POST /v1/auth/register - No authentication required.
// Returns 201 Created with the new user's ID, email, and token.
func (h *AuthHandler) RegisterHandler(c *gin.Context) {
	var req dto.RegisterRequest

	// Parse and bind JSON
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	// Validate request
	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	// Call use case
	output, err := h.authUseCase.Register(c.Request.Context(), &authDomain.RegisterInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	response := dto.RegisterResponse{
		ID:          output.UserID,
		Email:       output.Email,
		AccessToken: output.AccessToken,
		TokenType:   "bearer",
		ExpiresAt:   output.ExpiresAt,
	}

	c.JSON(http.StatusCreated, response)
}

// LoginHandler verifies credentials and issues an access token.
// POST /v1/auth/login - No authentication required (this is the authentication endpoint).
// Returns 200 OK with the token and expiration time.
func (h *AuthHandler) LoginHandler(c *gin.Context) {
	var req dto.LoginRequest

	// Parse and bind JSON
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	// Validate request
	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	// Call use case
	output, err := h.authUseCase.Login(c.Request.Context(), &authDomain.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	response := dto.LoginResponse{
		AccessToken: output.AccessToken,
		TokenType:   "bearer",
		ExpiresAt:   output.ExpiresAt,
	}

	c.JSON(http.StatusOK, response)
}

// LogoutHandler revokes the access token used on this request.
// POST /v1/auth/logout - Requires authentication.
// Returns 204 No Content. An already revoked token never reaches this handler;
// the authentication middleware rejects it with 401.
func (h *AuthHandler) LogoutHandler(c *gin.Context) {
	plainToken, ok := GetToken(c.Request.Context())
	if !ok || plainToken == "" {
		// Should never happen if the authentication middleware ran
		httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, h.logger)
		return
	}

	if err := h.authUseCase.Logout(c.Request.Context(), plainToken); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.Status(http.StatusNoContent)
}
