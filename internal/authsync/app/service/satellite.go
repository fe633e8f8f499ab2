package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/orbit-suite/orbit/internal/authsync/app/event"
	"github.com/orbit-suite/orbit/internal/authsync/app/external"
	"github.com/orbit-suite/orbit/internal/authsync/domain"
	"github.com/orbit-suite/orbit/pkg/log"
)

type (
	// SatelliteService keeps an application's own origin-scoped sessions in
	// sync with the hub: it mints local sessions from hub-supplied
	// credentials and collapses them when the hub fans out a logout.
	SatelliteService interface {
		SessionAuthority
		SyncSession(ctx context.Context, credential string) (SessionData, error)
		DropUserSessions(ctx context.Context, userID uuid.UUID) error
	}

	satelliteService struct {
		sessionManager
		hub    external.HubService
		origin string
		logger log.Logger
	}
)

func NewSatelliteService(
	store domain.SessionStore,
	identity external.IdentityService,
	hub external.HubService,
	events event.Publisher,
	origin string,
	config Config,
	logger log.Logger,
) SatelliteService {
	return satelliteService{
		sessionManager: sessionManager{
			store:    store,
			identity: identity,
			events:   events,
			config:   config.withDefaults(),
		},
		hub:    hub,
		origin: origin,
		logger: logger,
	}
}

// SyncSession exchanges a hub-supplied credential, either a short-lived
// custom token from the bridge frame or an issuer session cookie value, for
// a local origin-scoped session. The hub's own cookie never reaches here.
func (s satelliteService) SyncSession(ctx context.Context, credential string) (SessionData, error) {
	userID, err := s.identity.VerifyIdentityToken(ctx, credential)
	if errors.Is(err, external.ErrInvalidToken) {
		userID, err = s.identity.VerifySessionCookie(ctx, credential, true)
	}
	if err != nil {
		return SessionData{}, err
	}

	data, err := s.createSession(ctx, userID)
	if err != nil {
		return SessionData{}, err
	}

	// Best-effort: losing the registration only degrades logout fan-out.
	err = s.hub.RegisterOrigin(ctx, userID, s.origin)
	if err != nil {
		s.logger.WithError(err).Warn(ctx, "failed to register origin at the hub")
	}

	return data, nil
}

func (s satelliteService) Logout(ctx context.Context, key domain.SessionKey) error {
	record, err := s.store.Get(ctx, key)
	if errors.Is(err, domain.ErrSessionNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("get session record: %w", err)
	}

	err = s.store.Delete(ctx, key)
	if err != nil {
		return fmt.Errorf("delete session record: %w", err)
	}
	s.events.SessionRevoked(ctx, record.UserID)

	// Local logout succeeded; hub unreachability must not fail it, the
	// session expiry is the backstop.
	err = s.hub.SyncLogout(ctx, record.UserID)
	if err != nil {
		s.logger.WithError(err).Warn(ctx, "failed to sync logout with the hub")
	}

	return nil
}

func (s satelliteService) DropUserSessions(ctx context.Context, userID uuid.UUID) error {
	_, err := s.store.DeleteByUser(ctx, userID)
	if err != nil {
		return fmt.Errorf("delete user session records: %w", err)
	}
	return nil
}
