package http

import (
	"context"

	"github.com/google/uuid"
)

type userContextKey int

const authenticatedUserContextKey userContextKey = iota

func withAuthenticatedUser(ctx context.Context, userID uuid.UUID) context.Context {
	return context.WithValue(ctx, authenticatedUserContextKey, userID)
}

// AuthenticatedUser returns the user bound to the request by the auth
// middleware.
func AuthenticatedUser(ctx context.Context) (uuid.UUID, bool) {
	userID, ok := ctx.Value(authenticatedUserContextKey).(uuid.UUID)
	return userID, ok
}
