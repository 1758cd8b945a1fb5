package usecase

import (
	"context"
	"time"

	"github.com/allisson/notes/internal/metrics"
	"github.com/allisson/notes/internal/translation/domain"
)

// translationUseCaseWithMetrics decorates TranslationUseCase with metrics
// instrumentation.
type translationUseCaseWithMetrics struct {
	next    TranslationUseCase
	metrics metrics.BusinessMetrics
}

// NewTranslationUseCaseWithMetrics wraps a TranslationUseCase with metrics recording.
func NewTranslationUseCaseWithMetrics(useCase TranslationUseCase, m metrics.BusinessMetrics) TranslationUseCase {
	return &translationUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// Translate records metrics for translation operations.
func (t *translationUseCaseWithMetrics) Translate(
	ctx context.Context,
	input *domain.TranslateInput,
) (string, error) {
	start := time.Now()
	translated, err := t.next.Translate(ctx, input)

	status := "success"
	if err != nil {
		status = "error"
	}

	t.metrics.RecordOperation(ctx, "translation", "translate", status)
	t.metrics.RecordDuration(ctx, "translation", "translate", time.Since(start), status)

	return translated, err
}

// DetectLanguage records metrics for language detection operations.
func (t *translationUseCaseWithMetrics) DetectLanguage(
	ctx context.Context,
	text string,
) (*domain.Detection, error) {
	start := time.Now()
	detection, err := t.next.DetectLanguage(ctx, text)

	status := "success"
	if err != nil {
		status = "error"
	}

	t.metrics.RecordOperation(ctx, "translation", "detect_language", status)
	t.metrics.RecordDuration(ctx, "translation", "detect_language", time.Since(start), status)

	return detection, err
}

// ListLanguages records metrics for language listing operations.
func (t *translationUseCaseWithMetrics) ListLanguages(ctx context.Context) ([]domain.Language, error) {
	start := time.Now()
	languages, err := t.next.ListLanguages(ctx)

	status := "success"
	if err != nil {
		status = "error"
	}

	t.metrics.RecordOperation(ctx, "translation", "list_languages", status)
	t.metrics.RecordDuration(ctx, "translation", "list_languages", time.Since(start), status)

	return languages, err
}
