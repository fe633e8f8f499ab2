package notify

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/orbit-suite/orbit/internal/authsync/app/notify"
	pkghttp "github.com/orbit-suite/orbit/pkg/http"
	"github.com/orbit-suite/orbit/pkg/log"
	"github.com/orbit-suite/orbit/pkg/worker"
)

const (
	defaultNotifyTimeout = 2 * time.Second
	maxParallelNotifies  = 8
)

type (
	sessionDropRequest struct {
		UserID uuid.UUID `json:"userId"`
	}

	notifier struct {
		client  pkghttp.Client
		timeout time.Duration
		logger  log.Logger
	}
)

// NewLogoutNotifier fans a logout out to the origins that established sessions
// for the user. Delivery is best effort: an unreachable origin is logged and
// skipped, its local session dies by expiry.
func NewLogoutNotifier(client pkghttp.Client, logger log.Logger) notify.LogoutNotifier {
	return notifier{
		client:  client,
		timeout: defaultNotifyTimeout,
		logger:  logger,
	}
}

func (n notifier) NotifyLogout(ctx context.Context, origins []string, userID uuid.UUID) {
	if len(origins) == 0 {
		return
	}

	// An aborted caller request must not cut short deliveries already in
	// flight; each delivery is bounded by its own timeout instead. The call
	// itself stays synchronous so logout completes with the fan-out done.
	ctx = context.WithoutCancel(ctx)

	pool := worker.NewPool(maxParallelNotifies)
	for _, origin := range origins {
		origin := origin
		pool.Do(func() {
			n.notifyOrigin(ctx, origin, userID)
		})
	}
	pool.Wait()
}

func (n notifier) notifyOrigin(ctx context.Context, origin string, userID uuid.UUID) {
	ctx, cancel := context.WithTimeout(ctx, n.timeout)
	defer cancel()

	resp, err := n.client.NewRequest(ctx).
		SetBody(sessionDropRequest{UserID: userID}).
		Post(origin + "/auth/session-drop")
	if err != nil {
		n.logger.WithField("origin", origin).WithError(err).Warn(ctx, "failed to notify origin about logout")
		return
	}
	if resp.StatusCode() != http.StatusOK && resp.StatusCode() != http.StatusNoContent {
		n.logger.
			With(log.Fields{"origin": origin, "responseCode": resp.StatusCode()}).
			Warn(ctx, "origin rejected logout notification")
	}
}
