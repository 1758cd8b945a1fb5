package dto

import (
	"github.com/allisson/notes/internal/translation/domain"
)

// TranslationResponse contains the translated text.
type TranslationResponse struct {
	TranslatedText string `json:"translated_text"`
}

// DetectionResponse contains the result of a language detection.
type DetectionResponse struct {
	Language   string  `json:"language"`
	Confidence float64 `json:"confidence"`
	IsReliable bool    `json:"is_reliable"`
}

// NewDetectionResponse converts a domain detection into its API representation.
func NewDetectionResponse(detection *domain.Detection) DetectionResponse {
	return DetectionResponse{
		Language:   detection.Language,
		Confidence: detection.Confidence,
		IsReliable: detection.IsReliable,
	}
}

// LanguagesResponse contains the languages supported by the translation API.
type LanguagesResponse struct {
	Languages []domain.Language `json:"languages"`
}
