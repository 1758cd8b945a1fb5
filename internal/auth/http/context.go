// Package http provides HTTP middleware and handlers for authentication.
package http

import (
	"context"

	userDomain "github.com/allisson/notes/internal/user/domain"
)

// userKey is a context key type for storing authenticated users.
type userKey struct{}

// tokenKey is a context key type for storing the bearer token of the request.
type tokenKey struct{}

// WithUser stores an authenticated user in the context.
// This is typically called by the authentication middleware after successful token validation.
func WithUser(ctx context.Context, user *userDomain.User) context.Context {
	return context.WithValue(ctx, userKey{}, user)
}

// GetUser retrieves an authenticated user from the context.
// Returns (user, true) if a user is present, or (nil, false) if no user was set.
func GetUser(ctx context.Context) (*userDomain.User, bool) {
	user, ok := ctx.Value(userKey{}).(*userDomain.User)
	return user, ok
}

// WithToken stores the request's bearer token in the context.
// Handlers that operate on the token itself (logout) read it back via GetToken.
func WithToken(ctx context.Context, plainToken string) context.Context {
	return context.WithValue(ctx, tokenKey{}, plainToken)
}

// GetToken retrieves the request's bearer token from the context.
// Returns (token, true) if present, or ("", false) if not set.
func GetToken(ctx context.Context) (string, bool) {
	plainToken, ok := ctx.Value(tokenKey{}).(string)
	return plainToken, ok
}
