package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/orbit-suite/orbit/internal/authsync/app/event"
	"github.com/orbit-suite/orbit/internal/authsync/app/external"
	"github.com/orbit-suite/orbit/internal/authsync/app/notify"
	"github.com/orbit-suite/orbit/internal/authsync/domain"
)

type (
	SSOStatusData struct {
		Authenticated bool
		CustomToken   string
	}

	// HubService is the central point of identity verification and session
	// issuance for the suite.
	HubService interface {
		SessionAuthority
		Login(ctx context.Context, identityToken string) (SessionData, error)
		SSOStatus(ctx context.Context, key domain.SessionKey) (SSOStatusData, error)
		LogoutUser(ctx context.Context, userID uuid.UUID) error
		RegisterOrigin(ctx context.Context, userID uuid.UUID, origin string) error
	}

	hubService struct {
		sessionManager
		notifier notify.LogoutNotifier
	}
)

func NewHubService(
	store domain.SessionStore,
	identity external.IdentityService,
	notifier notify.LogoutNotifier,
	events event.Publisher,
	config Config,
) HubService {
	return hubService{
		sessionManager: sessionManager{
			store:    store,
			identity: identity,
			events:   events,
			config:   config.withDefaults(),
		},
		notifier: notifier,
	}
}

func (s hubService) Login(ctx context.Context, identityToken string) (SessionData, error) {
	userID, err := s.identity.VerifyIdentityToken(ctx, identityToken)
	if err != nil {
		return SessionData{}, err
	}

	return s.createSession(ctx, userID)
}

func (s hubService) Logout(ctx context.Context, key domain.SessionKey) error {
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

	s.notifier.NotifyLogout(ctx, record.KnownOrigins, record.UserID)
	s.events.SessionRevoked(ctx, record.UserID)
	return nil
}

func (s hubService) LogoutUser(ctx context.Context, userID uuid.UUID) error {
	records, err := s.store.DeleteByUser(ctx, userID)
	if err != nil {
		return fmt.Errorf("delete user session records: %w", err)
	}
	if len(records) == 0 {
		return nil
	}

	var origins []string
	seen := make(map[string]struct{})
	for _, record := range records {
		for _, origin := range record.KnownOrigins {
			if _, ok := seen[origin]; ok {
				continue
			}
			seen[origin] = struct{}{}
			origins = append(origins, origin)
		}
	}

	s.notifier.NotifyLogout(ctx, origins, userID)
	s.events.SessionRevoked(ctx, userID)
	return nil
}

func (s hubService) SSOStatus(ctx context.Context, key domain.SessionKey) (SSOStatusData, error) {
	if key == "" {
		return SSOStatusData{Authenticated: false}, nil
	}

	record, err := s.authenticate(ctx, key)
	if IsSignInAgainError(err) {
		return SSOStatusData{Authenticated: false}, nil
	}
	if err != nil {
		return SSOStatusData{}, err
	}

	token, err := s.identity.IssueCustomToken(ctx, record.UserID, s.config.CustomTokenTTL)
	if err != nil {
		return SSOStatusData{}, fmt.Errorf("issue custom token: %w", err)
	}

	return SSOStatusData{
		Authenticated: true,
		CustomToken:   token,
	}, nil
}

func (s hubService) RegisterOrigin(ctx context.Context, userID uuid.UUID, origin string) error {
	err := s.store.AppendOrigin(ctx, userID, origin)
	if err != nil {
		return fmt.Errorf("append known origin: %w", err)
	}
	return nil
}
