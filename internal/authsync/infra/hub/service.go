package hub

import (
	"context"
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"github.com/orbit-suite/orbit/internal/authsync/app/external"
	pkghttp "github.com/orbit-suite/orbit/pkg/http"
)

type (
	registerOriginRequest struct {
		UserID uuid.UUID `json:"userId"`
		Origin string    `json:"origin"`
	}

	logoutSyncRequest struct {
		UserID uuid.UUID `json:"userId"`
	}

	service struct {
		client pkghttp.Client
	}
)

// NewService is the satellite-side HTTP client of the auth hub.
func NewService(client pkghttp.Client) external.HubService {
	return service{client: client}
}

func (s service) RegisterOrigin(ctx context.Context, userID uuid.UUID, origin string) error {
	resp, err := s.client.NewRequest(ctx).
		SetBody(registerOriginRequest{UserID: userID, Origin: origin}).
		Post("/auth/origins")
	if err != nil {
		return fmt.Errorf("register origin at the hub: %w", err)
	}
	if resp.StatusCode() != http.StatusNoContent {
		return fmt.Errorf("register origin at the hub: unexpected status %d", resp.StatusCode())
	}
	return nil
}

func (s service) SyncLogout(ctx context.Context, userID uuid.UUID) error {
	resp, err := s.client.NewRequest(ctx).
		SetBody(logoutSyncRequest{UserID: userID}).
		Post("/auth/logout-sync")
	if err != nil {
		return fmt.Errorf("sync logout with the hub: %w", err)
	}
	if resp.StatusCode() != http.StatusNoContent {
		return fmt.Errorf("sync logout with the hub: unexpected status %d", resp.StatusCode())
	}
	return nil
}
