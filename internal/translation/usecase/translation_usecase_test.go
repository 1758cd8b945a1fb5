package usecase

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/allisson/notes/internal/cache"
	"github.com/allisson/notes/internal/translation/domain"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// mockTranslationClient is a testify mock for service.TranslationClient.
type mockTranslationClient struct {
	mock.Mock
}

func (m *mockTranslationClient) Translate(ctx context.Context, text, source, target string) (string, error) {
	args := m.Called(ctx, text, source, target)
	return args.String(0), args.Error(1)
}

func (m *mockTranslationClient) DetectLanguage(ctx context.Context, text string) (*domain.Detection, error) {
	args := m.Called(ctx, text)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Detection), args.Error(1)
}

func (m *mockTranslationClient) ListLanguages(ctx context.Context) ([]domain.Language, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Language), args.Error(1)
}

// fakeCache is an in-memory Cache for tests.
type fakeCache struct {
	mu      sync.Mutex
	entries map[string]string
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: map[string]string{}}
}

func (f *fakeCache) Get(ctx context.Context, key string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	val, ok := f.entries[key]
	if !ok {
		return "", cache.ErrCacheMiss
	}
	return val, nil
}

func (f *fakeCache) Set(ctx context.Context, key string, value string, ttl time.Duration) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.entries[key] = value
	return nil
}

func (f *fakeCache) Delete(ctx context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.entries, key)
	return nil
}

var _ cache.Cache = (*fakeCache)(nil)

func TestTranslationUseCase_Translate(t *testing.T) {
	input := &domain.TranslateInput{Text: "hello", Source: "en", Target: "pt"}

	t.Run("Success_CacheMissCallsUpstreamAndCaches", func(t *testing.T) {
		client := &mockTranslationClient{}
		cacheStore := newFakeCache()
		useCase := NewTranslationUseCase(client, cacheStore, time.Hour, testLogger())

		client.On("Translate", mock.Anything, "hello", "en", "pt").Return("olá", nil).Once()

		translated, err := useCase.Translate(context.Background(), input)
		require.NoError(t, err)
		assert.Equal(t, "olá", translated)

		cached, err := cacheStore.Get(context.Background(), "translation:en:pt:hello")
		require.NoError(t, err)
		assert.Equal(t, "olá", cached)
	})

	t.Run("Success_CacheHitSkipsUpstream", func(t *testing.T) {
		client := &mockTranslationClient{}
		cacheStore := newFakeCache()
		useCase := NewTranslationUseCase(client, cacheStore, time.Hour, testLogger())

		require.NoError(t, cacheStore.Set(context.Background(), "translation:en:pt:hello", "olá", time.Hour))

		translated, err := useCase.Translate(context.Background(), input)
		require.NoError(t, err)
		assert.Equal(t, "olá", translated)
		client.AssertNotCalled(t, "Translate", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Success_DistinctLanguagePairsUseDistinctKeys", func(t *testing.T) {
		client := &mockTranslationClient{}
		cacheStore := newFakeCache()
		useCase := NewTranslationUseCase(client, cacheStore, time.Hour, testLogger())

		client.On("Translate", mock.Anything, "hello", "en", "pt").Return("olá", nil).Once()
		client.On("Translate", mock.Anything, "hello", "en", "es").Return("hola", nil).Once()

		toPortuguese, err := useCase.Translate(context.Background(), input)
		require.NoError(t, err)
		toSpanish, err := useCase.Translate(context.Background(), &domain.TranslateInput{
			Text: "hello", Source: "en", Target: "es",
		})
		require.NoError(t, err)

		assert.Equal(t, "olá", toPortuguese)
		assert.Equal(t, "hola", toSpanish)
		client.AssertExpectations(t)
	})

	t.Run("Error_UpstreamFailureIsNotCached", func(t *testing.T) {
		client := &mockTranslationClient{}
		cacheStore := newFakeCache()
		useCase := NewTranslationUseCase(client, cacheStore, time.Hour, testLogger())

		client.On("Translate", mock.Anything, "hello", "en", "pt").
			Return("", domain.ErrTranslationUpstream)

		_, err := useCase.Translate(context.Background(), input)
		assert.ErrorIs(t, err, domain.ErrTranslationUpstream)

		_, err = cacheStore.Get(context.Background(), "translation:en:pt:hello")
		assert.ErrorIs(t, err, cache.ErrCacheMiss)
	})
}

func TestTranslationUseCase_DetectLanguage(t *testing.T) {
	t.Run("Success_DetectLanguage", func(t *testing.T) {
		client := &mockTranslationClient{}
		useCase := NewTranslationUseCase(client, newFakeCache(), time.Hour, testLogger())

		expected := &domain.Detection{Language: "en", Confidence: 0.98, IsReliable: true}
		client.On("DetectLanguage", mock.Anything, "hello world").Return(expected, nil)

		detection, err := useCase.DetectLanguage(context.Background(), "hello world")
		require.NoError(t, err)
		assert.Equal(t, expected, detection)
	})

	t.Run("Error_UpstreamFailure", func(t *testing.T) {
		client := &mockTranslationClient{}
		useCase := NewTranslationUseCase(client, newFakeCache(), time.Hour, testLogger())

		client.On("DetectLanguage", mock.Anything, "hello world").
			Return(nil, domain.ErrTranslationUpstream)

		_, err := useCase.DetectLanguage(context.Background(), "hello world")
		assert.ErrorIs(t, err, domain.ErrTranslationUpstream)
	})
}

func TestTranslationUseCase_ListLanguages(t *testing.T) {
	client := &mockTranslationClient{}
	useCase := NewTranslationUseCase(client, newFakeCache(), time.Hour, testLogger())

	expected := []domain.Language{{Language: "en", Name: "English"}}
	client.On("ListLanguages", mock.Anything).Return(expected, nil)

	languages, err := useCase.ListLanguages(context.Background())
	require.NoError(t, err)
	assert.Equal(t, expected, languages)
}
