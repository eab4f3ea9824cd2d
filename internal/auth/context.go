// ABOUTME: Authentication context for tracking the signed-in user through handlers
// ABOUTME: Provides WithUser/UserFromContext for propagating identity via context

package auth

import (
	"context"

	"github.com/K25anjali/local-Konnect/internal/store"
)

// userContextKey is the key type for storing the user in context.Context.
type userContextKey struct{}

// WithUser returns a new context with the user attached.
func WithUser(ctx context.Context, user *store.User) context.Context {
	return context.WithValue(ctx, userContextKey{}, user)
}

// UserFromContext retrieves the user from the context, returning nil if not present.
func UserFromContext(ctx context.Context) *store.User {
	user, _ := ctx.Value(userContextKey{}).(*store.User)
	return user
}
