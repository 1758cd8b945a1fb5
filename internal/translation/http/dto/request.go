// Package dto provides data transfer objects for HTTP request and response handling.
package dto

import (
	validation "github.com/jellydator/validation"

	customValidation "github.com/allisson/notes/internal/validation"
)

// TranslateRequest contains the parameters for a translation request.
type TranslateRequest struct {
	Text   string `json:"text"`
	Source string `json:"source"`
	Target string `json:"target"`
}

// Validate checks if the translate request is valid.
func (r *TranslateRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Text,
			validation.Required,
			customValidation.NotBlank,
			validation.Length(1, 5000),
		),
		validation.Field(&r.Source,
			validation.Required,
			customValidation.LanguageCode,
		),
		validation.Field(&r.Target,
			validation.Required,
			customValidation.LanguageCode,
		),
	)
}

// DetectLanguageRequest contains the parameters for a language detection request.
type DetectLanguageRequest struct {
	Text string `json:"text"`
}

// Validate checks if the detect language request is valid.
func (r *DetectLanguageRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Text,
			validation.Required,
			customValidation.NotBlank,
			validation.Length(1, 5000),
		),
	)
}
