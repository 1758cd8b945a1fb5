// Package usecase defines business logic interfaces for translation operations.
package usecase

import (
	"context"

	"github.com/allisson/notes/internal/translation/domain"
)

// TranslationUseCase defines business logic operations for the translation proxy.
type TranslationUseCase interface {
	// Translate returns the translation of the input text, serving repeated
	// requests from the cache.
	Translate(ctx context.Context, input *domain.TranslateInput) (string, error)

	// DetectLanguage returns the most likely language of the given text.
	DetectLanguage(ctx context.Context, text string) (*domain.Detection, error)

	// ListLanguages returns the languages supported by the translation API.
	ListLanguages(ctx context.Context) ([]domain.Language, error)
}
