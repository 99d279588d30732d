package appctx

import (
	"context"

	"sanctyr/models"
)

// Context key for storing the session user
type contextKey string

const UserContextKey contextKey = "user"

// SetUser adds the session user to the request context
func SetUser(ctx context.Context, user *models.SessionUser) context.Context {
	return context.WithValue(ctx, UserContextKey, user)
}

// GetUser extracts the session user from the request context
func GetUser(ctx context.Context) (*models.SessionUser, bool) {
	user, ok := ctx.Value(UserContextKey).(*models.SessionUser)
	return user, ok && user != nil
}
