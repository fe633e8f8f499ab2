//go:generate ${TOOLS_BIN}/mockgen -source ${GOFILE} -destination mock/${GOFILE} -package mock -mock_names "HubService=HubService"
package external

import (
	"context"

	"github.com/google/uuid"
)

// HubService is the satellite-side client of the auth hub.
type HubService interface {
	// RegisterOrigin reports the satellite origin to the hub for logout fan-out.
	RegisterOrigin(ctx context.Context, userID uuid.UUID, origin string) error
	// SyncLogout asks the hub to collapse all sessions of the user.
	SyncLogout(ctx context.Context, userID uuid.UUID) error
}
