package event

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/orbit-suite/orbit/internal/authsync/app/event"
	"github.com/orbit-suite/orbit/pkg/log"
	"github.com/orbit-suite/orbit/pkg/pulsar"
)

const sessionEventTopic = "orbit.session-events"

type (
	sessionEvent struct {
		Type       string    `json:"type"`
		UserID     uuid.UUID `json:"userId"`
		OccurredAt time.Time `json:"occurredAt"`
	}

	publisher struct {
		producer pulsar.Producer
		logger   log.Logger
	}
)

// NewPublisher emits session lifecycle events to the broker, keyed by user so
// per-user ordering survives partitioning. A failed publish is logged and
// dropped, events are observability data and never part of the operation.
func NewPublisher(producer pulsar.Producer, logger log.Logger) event.Publisher {
	return publisher{
		producer: producer,
		logger:   logger,
	}
}

func (p publisher) SessionCreated(ctx context.Context, userID uuid.UUID) {
	p.publish(ctx, "session_created", userID)
}

func (p publisher) SessionRevoked(ctx context.Context, userID uuid.UUID) {
	p.publish(ctx, "session_revoked", userID)
}

func (p publisher) publish(ctx context.Context, eventType string, userID uuid.UUID) {
	payload, err := json.Marshal(sessionEvent{
		Type:       eventType,
		UserID:     userID,
		OccurredAt: time.Now(),
	})
	if err != nil {
		p.logger.WithError(err).Error(ctx, "failed to encode session event")
		return
	}

	err = p.producer.Send(ctx, sessionEventTopic, userID.String(), payload)
	if err != nil {
		p.logger.
			WithField("eventType", eventType).
			WithError(err).
			Warn(ctx, "failed to publish session event")
	}
}
