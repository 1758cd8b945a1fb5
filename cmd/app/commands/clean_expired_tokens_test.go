package commands

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	authDomain "github.com/allisson/notes/internal/auth/domain"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// mockTokenManager is a testify mock for service.TokenManager.
type mockTokenManager struct {
	mock.Mock
}

func (m *mockTokenManager) Issue(ctx context.Context, userID uuid.UUID) (*authDomain.LoginOutput, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*authDomain.LoginOutput), args.Error(1)
}

func (m *mockTokenManager) Verify(ctx context.Context, plainToken string) (*authDomain.AccessClaims, error) {
	args := m.Called(ctx, plainToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*authDomain.AccessClaims), args.Error(1)
}

func (m *mockTokenManager) Revoke(ctx context.Context, tokenID uuid.UUID) error {
	args := m.Called(ctx, tokenID)
	return args.Error(0)
}

func (m *mockTokenManager) CleanupExpired(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func TestRunCleanExpiredTokens(t *testing.T) {
	ctx := context.Background()
	logger := testLogger()

	t.Run("text-output", func(t *testing.T) {
		mockManager := &mockTokenManager{}
		mockManager.On("CleanupExpired", ctx).Return(int64(10), nil)

		var out bytes.Buffer
		err := RunCleanExpiredTokens(ctx, mockManager, logger, &out, "text")

		require.NoError(t, err)
		require.Contains(t, out.String(), "Successfully deleted 10 expired token(s)")
		mockManager.AssertExpectations(t)
	})

	t.Run("json-output", func(t *testing.T) {
		mockManager := &mockTokenManager{}
		mockManager.On("CleanupExpired", ctx).Return(int64(5), nil)

		var out bytes.Buffer
		err := RunCleanExpiredTokens(ctx, mockManager, logger, &out, "json")

		require.NoError(t, err)
		require.Contains(t, out.String(), `"count": 5`)
		mockManager.AssertExpectations(t)
	})

	t.Run("cleanup-error", func(t *testing.T) {
		mockManager := &mockTokenManager{}
		mockManager.On("CleanupExpired", ctx).Return(int64(0), errors.New("database offline"))

		err := RunCleanExpiredTokens(ctx, mockManager, logger, &bytes.Buffer{}, "text")

		require.Error(t, err)
		require.Contains(t, err.Error(), "failed to cleanup expired tokens")
	})
}
