package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	authDomain "github.com/allisson/notes/internal/auth/domain"
	"github.com/allisson/notes/internal/auth/http/dto"
	userDomain "github.com/allisson/notes/internal/user/domain"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// mockAuthUseCase is a testify mock for usecase.AuthUseCase.
type mockAuthUseCase struct {
	mock.Mock
}

func (m *mockAuthUseCase) Register(
	ctx context.Context,
	input *authDomain.RegisterInput,
) (*authDomain.RegisterOutput, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*authDomain.RegisterOutput), args.Error(1)
}

func (m *mockAuthUseCase) Login(
	ctx context.Context,
	input *authDomain.LoginInput,
) (*authDomain.LoginOutput, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*authDomain.LoginOutput), args.Error(1)
}

func (m *mockAuthUseCase) AuthenticateToken(
	ctx context.Context,
	plainToken string,
) (*userDomain.User, error) {
	args := m.Called(ctx, plainToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*userDomain.User), args.Error(1)
}

func (m *mockAuthUseCase) Logout(ctx context.Context, plainToken string) error {
	args := m.Called(ctx, plainToken)
	return args.Error(0)
}

func performJSONRequest(router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		payload, _ := json.Marshal(body)
		reader = bytes.NewReader(payload)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

func newAuthRouter(useCase *mockAuthUseCase) *gin.Engine {
	handler := NewAuthHandler(useCase, testLogger())

	router := gin.New()
	router.POST("/v1/auth/register", handler.RegisterHandler)
	router.POST("/v1/auth/login", handler.LoginHandler)
	router.POST("/v1/auth/logout", AuthenticationMiddleware(useCase, testLogger()), handler.LogoutHandler)
	return router
}

func TestAuthHandler_Register(t *testing.T) {
	t.Run("Success_Returns201", func(t *testing.T) {
		useCase := &mockAuthUseCase{}
		userID := uuid.Must(uuid.NewV7())

		useCase.On("Register", mock.Anything, &authDomain.RegisterInput{
			Email:    "user@example.com",
			Password: "Sup3rSecret",
		}).Return(&authDomain.RegisterOutput{
			UserID:      userID,
			Email:       "user@example.com",
			AccessToken: "signed-token",
			ExpiresAt:   time.Now().UTC().Add(time.Hour).Truncate(time.Second),
		}, nil)

		w := performJSONRequest(newAuthRouter(useCase), http.MethodPost, "/v1/auth/register", dto.RegisterRequest{
			Email:    "user@example.com",
			Password: "Sup3rSecret",
		})

		assert.Equal(t, http.StatusCreated, w.Code)

		var resp dto.RegisterResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, userID, resp.ID)
		assert.Equal(t, "user@example.com", resp.Email)
		assert.Equal(t, "signed-token", resp.AccessToken)
		assert.Equal(t, "bearer", resp.TokenType)
	})

	t.Run("Error_InvalidEmailReturns422", func(t *testing.T) {
		useCase := &mockAuthUseCase{}

		w := performJSONRequest(newAuthRouter(useCase), http.MethodPost, "/v1/auth/register", dto.RegisterRequest{
			Email:    "not-an-email",
			Password: "Sup3rSecret",
		})

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		useCase.AssertNotCalled(t, "Register", mock.Anything, mock.Anything)
	})

	t.Run("Error_WeakPasswordReturns422", func(t *testing.T) {
		useCase := &mockAuthUseCase{}

		w := performJSONRequest(newAuthRouter(useCase), http.MethodPost, "/v1/auth/register", dto.RegisterRequest{
			Email:    "user@example.com",
			Password: "weak",
		})

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	t.Run("Error_DuplicateEmailReturns409", func(t *testing.T) {
		useCase := &mockAuthUseCase{}

		useCase.On("Register", mock.Anything, mock.Anything).
			Return(nil, userDomain.ErrEmailAlreadyInUse)

		w := performJSONRequest(newAuthRouter(useCase), http.MethodPost, "/v1/auth/register", dto.RegisterRequest{
			Email:    "taken@example.com",
			Password: "Sup3rSecret",
		})

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("Error_MalformedJSONReturns400", func(t *testing.T) {
		useCase := &mockAuthUseCase{}
		router := newAuthRouter(useCase)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/v1/auth/register", bytes.NewReader([]byte("{not-json")))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestAuthHandler_Login(t *testing.T) {
	t.Run("Success_Returns200WithToken", func(t *testing.T) {
		useCase := &mockAuthUseCase{}
		expiresAt := time.Now().UTC().Add(time.Hour).Truncate(time.Second)

		useCase.On("Login", mock.Anything, &authDomain.LoginInput{
			Email:    "user@example.com",
			Password: "Sup3rSecret",
		}).Return(&authDomain.LoginOutput{AccessToken: "signed-token", ExpiresAt: expiresAt}, nil)

		w := performJSONRequest(newAuthRouter(useCase), http.MethodPost, "/v1/auth/login", dto.LoginRequest{
			Email:    "user@example.com",
			Password: "Sup3rSecret",
		})

		assert.Equal(t, http.StatusOK, w.Code)

		var resp dto.LoginResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "signed-token", resp.AccessToken)
		assert.Equal(t, "bearer", resp.TokenType)
	})

	t.Run("Error_InvalidCredentialsReturns401", func(t *testing.T) {
		useCase := &mockAuthUseCase{}

		useCase.On("Login", mock.Anything, mock.Anything).
			Return(nil, authDomain.ErrInvalidCredentials)

		w := performJSONRequest(newAuthRouter(useCase), http.MethodPost, "/v1/auth/login", dto.LoginRequest{
			Email:    "user@example.com",
			Password: "WrongPassword",
		})

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Error_MissingFieldsReturns422", func(t *testing.T) {
		useCase := &mockAuthUseCase{}

		w := performJSONRequest(newAuthRouter(useCase), http.MethodPost, "/v1/auth/login", dto.LoginRequest{})

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		useCase.AssertNotCalled(t, "Login", mock.Anything, mock.Anything)
	})
}

func TestAuthHandler_Logout(t *testing.T) {
	user := &userDomain.User{ID: uuid.Must(uuid.NewV7()), Email: "user@example.com"}

	t.Run("Success_Returns204", func(t *testing.T) {
		useCase := &mockAuthUseCase{}

		useCase.On("AuthenticateToken", mock.Anything, "signed-token").Return(user, nil)
		useCase.On("Logout", mock.Anything, "signed-token").Return(nil)

		router := newAuthRouter(useCase)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/v1/auth/logout", nil)
		req.Header.Set("Authorization", "Bearer signed-token")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
		useCase.AssertExpectations(t)
	})

	t.Run("Error_RevokedTokenReturns401", func(t *testing.T) {
		useCase := &mockAuthUseCase{}

		useCase.On("AuthenticateToken", mock.Anything, "revoked-token").
			Return(nil, authDomain.ErrTokenNotAllowed)

		router := newAuthRouter(useCase)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/v1/auth/logout", nil)
		req.Header.Set("Authorization", "Bearer revoked-token")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		useCase.AssertNotCalled(t, "Logout", mock.Anything, mock.Anything)
	})

	t.Run("Error_MissingAuthorizationReturns401", func(t *testing.T) {
		useCase := &mockAuthUseCase{}

		router := newAuthRouter(useCase)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/v1/auth/logout", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
