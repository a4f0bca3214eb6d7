// Package utils provides general-purpose helper utilities used across
// different parts of the application: type-safe context keys, JWT token
// generation and validation, and HTTP response writing.
package utils

import (
	"context"

	"github.com/ivmikh/notes-keeper/models"
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

// UserIDCtxKey is the key used to store the authenticated user identifier in
// the request context. Set by the auth middleware after token verification;
// read via GetUserIDFromContext.
var UserIDCtxKey = contextKey("userID")

// GetUserIDFromContext retrieves the user identifier from the context.
//
// Returns the user ID of type int64 and an ok flag:
//   - ok == true  — value is found and has the correct int64 type
//   - ok == false — value is missing or has an unexpected type
func GetUserIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(UserIDCtxKey).(int64)
	return userID, ok
}

// IdentityCtxKey is the key used to store the verified identity summary in
// the request context. Set by the auth middleware alongside UserIDCtxKey so
// handlers do not need to repeat the identity lookup.
var IdentityCtxKey = contextKey("identity")

// GetIdentityFromContext retrieves the identity summary from the context.
func GetIdentityFromContext(ctx context.Context) (models.IdentitySummary, bool) {
	identity, ok := ctx.Value(IdentityCtxKey).(models.IdentitySummary)
	return identity, ok
}

// BearerTokenCtxKey is the key used to store the raw bearer token string in
// the request context, so cookie-issuing handlers can re-wrap it without
// re-reading the Authorization header.
var BearerTokenCtxKey = contextKey("bearerToken")

// GetBearerTokenFromContext retrieves the raw bearer token from the context.
func GetBearerTokenFromContext(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(BearerTokenCtxKey).(string)
	return token, ok
}
