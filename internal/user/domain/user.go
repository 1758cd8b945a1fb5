// Package domain defines the core user domain entities and types.
package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/allisson/notes/internal/errors"
)

// User represents a registered account in the system.
type User struct {
	ID        uuid.UUID
	Email     string
	Password  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Domain-specific errors for user operations.
var (
	// ErrUserNotFound indicates the requested user does not exist.
	ErrUserNotFound = errors.Wrap(errors.ErrNotFound, "user not found")

	// ErrEmailAlreadyInUse indicates a user with the same email already exists.
	ErrEmailAlreadyInUse = errors.Wrap(errors.ErrConflict, "email already in use")
)
