package event

import (
	"context"

	"github.com/google/uuid"
)

// Publisher emits session lifecycle events for operator-facing consumers.
// Publishing is best-effort: failures must never fail the user operation.
type Publisher interface {
	SessionCreated(ctx context.Context, userID uuid.UUID)
	SessionRevoked(ctx context.Context, userID uuid.UUID)
}

type nopPublisher struct{}

func NewNopPublisher() Publisher {
	return nopPublisher{}
}

func (nopPublisher) SessionCreated(context.Context, uuid.UUID) {}

func (nopPublisher) SessionRevoked(context.Context, uuid.UUID) {}
