package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/allisson/notes/internal/cache"
	apperrors "github.com/allisson/notes/internal/errors"
	"github.com/allisson/notes/internal/translation/domain"
	"github.com/allisson/notes/internal/translation/service"
)

// translationUseCase implements TranslationUseCase with a Redis side-cache
// in front of the upstream client. Only translations are cached; detection
// and language listing always hit the upstream.
type translationUseCase struct {
	client   service.TranslationClient
	cache    cache.Cache
	cacheTTL time.Duration
	logger   *slog.Logger
}

// cacheKey builds the cache key for a translation request.
func cacheKey(input *domain.TranslateInput) string {
	return fmt.Sprintf("translation:%s:%s:%s", input.Source, input.Target, input.Text)
}

// Translate returns the translation of the input text, serving repeated
// requests from the cache. Cache failures are logged and ignored so the
// upstream result still reaches the caller.
func (t *translationUseCase) Translate(ctx context.Context, input *domain.TranslateInput) (string, error) {
	key := cacheKey(input)

	cached, err := t.cache.Get(ctx, key)
	if err == nil {
		return cached, nil
	}
	if !apperrors.Is(err, cache.ErrCacheMiss) {
		t.logger.Warn("translation cache lookup failed", slog.String("error", err.Error()))
	}

	translated, err := t.client.Translate(ctx, input.Text, input.Source, input.Target)
	if err != nil {
		return "", err
	}

	if err := t.cache.Set(ctx, key, translated, t.cacheTTL); err != nil {
		t.logger.Warn("failed to cache translation", slog.String("error", err.Error()))
	}

	return translated, nil
}

// DetectLanguage returns the most likely language of the given text.
func (t *translationUseCase) DetectLanguage(ctx context.Context, text string) (*domain.Detection, error) {
	return t.client.DetectLanguage(ctx, text)
}

// ListLanguages returns the languages supported by the translation API.
func (t *translationUseCase) ListLanguages(ctx context.Context) ([]domain.Language, error) {
	return t.client.ListLanguages(ctx)
}

// NewTranslationUseCase creates a new TranslationUseCase with the provided dependencies.
func NewTranslationUseCase(
	client service.TranslationClient,
	cacheStore cache.Cache,
	cacheTTL time.Duration,
	logger *slog.Logger,
) TranslationUseCase {
	return &translationUseCase{
		client:   client,
		cache:    cacheStore,
		cacheTTL: cacheTTL,
		logger:   logger,
	}
}
