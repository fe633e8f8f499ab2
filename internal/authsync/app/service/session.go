package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/orbit-suite/orbit/internal/authsync/app/event"
	"github.com/orbit-suite/orbit/internal/authsync/app/external"
	"github.com/orbit-suite/orbit/internal/authsync/domain"
)

const (
	// DefaultSessionTTL matches the identity issuer's maximum session lifetime.
	DefaultSessionTTL = 14 * 24 * time.Hour
	// DefaultCustomTokenTTL bounds the single-purpose exchange token far
	// below the session lifetime.
	DefaultCustomTokenTTL = 5 * time.Minute
)

type (
	Config struct {
		SessionTTL     time.Duration
		CustomTokenTTL time.Duration
	}

	SessionData struct {
		Key       domain.SessionKey
		UserID    uuid.UUID
		ExpiresAt time.Time
	}

	// BootstrapData is the fast-bootstrap outcome: NewSession is set only when
	// the call established a session, so a repeated call with a valid cookie
	// returns the same user with no side effects.
	BootstrapData struct {
		UserID     uuid.UUID
		NewSession *SessionData
	}

	// SessionAuthority is the per-application session surface shared by the
	// hub and every satellite.
	SessionAuthority interface {
		Session(ctx context.Context, key domain.SessionKey) (uuid.UUID, error)
		Logout(ctx context.Context, key domain.SessionKey) error
		CustomToken(ctx context.Context, key domain.SessionKey) (string, error)
		FastBootstrap(ctx context.Context, key domain.SessionKey, identityToken string) (BootstrapData, error)
	}
)

func (c Config) withDefaults() Config {
	if c.SessionTTL <= 0 {
		c.SessionTTL = DefaultSessionTTL
	}
	if c.CustomTokenTTL <= 0 {
		c.CustomTokenTTL = DefaultCustomTokenTTL
	}
	return c
}

type sessionManager struct {
	store    domain.SessionStore
	identity external.IdentityService
	events   event.Publisher
	config   Config
}

func (m sessionManager) createSession(ctx context.Context, userID uuid.UUID) (SessionData, error) {
	issuerCookie, err := m.identity.IssueSessionCookie(ctx, userID, m.config.SessionTTL)
	if err != nil {
		return SessionData{}, fmt.Errorf("issue session cookie: %w", err)
	}

	record, err := domain.NewSessionRecord(userID, issuerCookie, time.Now(), m.config.SessionTTL)
	if err != nil {
		return SessionData{}, err
	}

	err = m.store.Put(ctx, record)
	if err != nil {
		return SessionData{}, fmt.Errorf("store session record: %w", err)
	}

	m.events.SessionCreated(ctx, userID)
	return SessionData{
		Key:       record.Key,
		UserID:    record.UserID,
		ExpiresAt: record.ExpiresAt,
	}, nil
}

// authenticate resolves the session key to a live record and confirms the
// bound identity is still valid upstream, including revocation. It never
// mutates the store, it also serves the middleware's read-only check: a
// record whose cookie the issuer rejects stays put and dies by expiry.
func (m sessionManager) authenticate(ctx context.Context, key domain.SessionKey) (domain.SessionRecord, error) {
	record, err := m.store.Get(ctx, key)
	if err != nil {
		return domain.SessionRecord{}, err
	}

	_, err = m.identity.VerifySessionCookie(ctx, record.IssuerCookie, true)
	if errors.Is(err, external.ErrInvalidToken) || errors.Is(err, external.ErrRevokedIdentity) {
		return domain.SessionRecord{}, err
	}
	if err != nil {
		return domain.SessionRecord{}, fmt.Errorf("verify session cookie: %w", err)
	}

	return record, nil
}

func (m sessionManager) Session(ctx context.Context, key domain.SessionKey) (uuid.UUID, error) {
	record, err := m.authenticate(ctx, key)
	if err != nil {
		return uuid.UUID{}, err
	}
	return record.UserID, nil
}

func (m sessionManager) CustomToken(ctx context.Context, key domain.SessionKey) (string, error) {
	record, err := m.authenticate(ctx, key)
	if err != nil {
		return "", err
	}

	token, err := m.identity.IssueCustomToken(ctx, record.UserID, m.config.CustomTokenTTL)
	if err != nil {
		return "", fmt.Errorf("issue custom token: %w", err)
	}
	return token, nil
}

func (m sessionManager) FastBootstrap(ctx context.Context, key domain.SessionKey, identityToken string) (BootstrapData, error) {
	if key != "" {
		record, err := m.authenticate(ctx, key)
		if err == nil {
			return BootstrapData{UserID: record.UserID}, nil
		}
		if !IsSignInAgainError(err) {
			return BootstrapData{}, err
		}
	}

	if identityToken == "" {
		return BootstrapData{}, domain.ErrSessionNotFound
	}

	userID, err := m.identity.VerifyIdentityToken(ctx, identityToken)
	if err != nil {
		return BootstrapData{}, err
	}

	data, err := m.createSession(ctx, userID)
	if err != nil {
		return BootstrapData{}, err
	}

	return BootstrapData{
		UserID:     userID,
		NewSession: &data,
	}, nil
}

// IsSignInAgainError reports whether the error means the user must simply
// sign in again, as opposed to a transient dependency failure. The concrete
// cause is never distinguished to the end user.
func IsSignInAgainError(err error) bool {
	return errors.Is(err, domain.ErrSessionNotFound) ||
		errors.Is(err, external.ErrInvalidToken) ||
		errors.Is(err, external.ErrRevokedIdentity)
}
