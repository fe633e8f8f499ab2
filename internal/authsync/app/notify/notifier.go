//go:generate ${TOOLS_BIN}/mockgen -source ${GOFILE} -destination mock/${GOFILE} -package mock -mock_names "LogoutNotifier=LogoutNotifier"
package notify

import (
	"context"

	"github.com/google/uuid"
)

// LogoutNotifier tells known application origins to drop their local sessions
// of the user. Notifications are best-effort and fire-and-forget: an
// unreachable origin never blocks or fails the caller's logout.
type LogoutNotifier interface {
	NotifyLogout(ctx context.Context, origins []string, userID uuid.UUID)
}
