// Package dto provides data transfer objects for HTTP request and response handling.
package dto

import (
	validation "github.com/jellydator/validation"

	customValidation "github.com/allisson/notes/internal/validation"
)

// CreateNoteRequest contains the parameters for creating a note.
type CreateNoteRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// Validate checks if the create note request is valid.
func (r *CreateNoteRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Title,
			validation.Required,
			customValidation.NotBlank,
			validation.Length(1, 255),
		),
		validation.Field(&r.Content,
			validation.Length(0, 65535),
		),
	)
}

// UpdateNoteRequest contains a partial update for a note. Absent fields keep
// the note's current values.
type UpdateNoteRequest struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
}

// Validate checks if the update note request is valid.
func (r *UpdateNoteRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Title,
			validation.NilOrNotEmpty,
			validation.Length(1, 255),
		),
		validation.Field(&r.Content,
			validation.Length(0, 65535),
		),
	)
}
