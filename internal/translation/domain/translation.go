// Package domain contains the core types for the translation proxy.
package domain

import (
	apperrors "github.com/allisson/notes/internal/errors"
)

// ErrTranslationUpstream is returned when the third-party translation API
// fails or returns an unusable response.
var ErrTranslationUpstream = apperrors.Wrap(apperrors.ErrUpstream, "translation upstream failure")

// TranslateInput contains the parameters for a translation request.
type TranslateInput struct {
	Text   string
	Source string
	Target string
}

// Detection is the result of a language detection request.
type Detection struct {
	Language   string  `json:"language"`
	Confidence float64 `json:"confidence"`
	IsReliable bool    `json:"is_reliable"`
}

// Language describes a language supported by the translation API.
type Language struct {
	Language string `json:"language"`
	Name     string `json:"name"`
}
