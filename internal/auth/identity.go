// Package auth resolves the caller identity for each request from bearer
// credentials. Identity is resolved fresh on every request; nothing is
// cached across requests.
package auth

import "context"

type contextKey string

// IdentityContextKey is the context key under which the resolved caller
// identity (a plain user id string) is stored.
const IdentityContextKey contextKey = "identity"

// WithIdentity returns a context carrying the resolved caller identity.
func WithIdentity(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, IdentityContextKey, userID)
}

// IdentityFromContext retrieves the caller identity from the context.
// Returns "" if no caller is authenticated.
func IdentityFromContext(ctx context.Context) string {
	id, _ := ctx.Value(IdentityContextKey).(string)
	return id
}
