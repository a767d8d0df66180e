// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys, password hashing,
// HTTP response writing, HTTP client initialization, JWT token generation
// and validation, and other common operations.
package utils

import (
	"context"

	"github.com/MKhiriev/vibe-vault/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// PrincipalCtxKey is the key under which the authentication middleware stores
// the authenticated [models.Principal].
var PrincipalCtxKey = contextKey("principal")

// WithPrincipal returns a copy of ctx carrying p.
func WithPrincipal(ctx context.Context, p models.Principal) context.Context {
	return context.WithValue(ctx, PrincipalCtxKey, p)
}

// GetPrincipalFromContext retrieves the authenticated caller from the context.
//
// Returns the principal and an ok flag:
//   - ok == true : an authenticated principal is present
//   - ok == false: the request is anonymous
//
// Example usage:
//
//	principal, ok := utils.GetPrincipalFromContext(ctx)
//	if !ok {
//	    // respond with 401
//	}
func GetPrincipalFromContext(ctx context.Context) (models.Principal, bool) {
	p, ok := ctx.Value(PrincipalCtxKey).(models.Principal)
	if !ok || p.Username == "" {
		return models.Principal{}, false
	}

	return p, true
}
