package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/orbit-suite/orbit/internal/authsync/app/event"
	"github.com/orbit-suite/orbit/internal/authsync/app/external"
	externalmock "github.com/orbit-suite/orbit/internal/authsync/app/external/mock"
	notifymock "github.com/orbit-suite/orbit/internal/authsync/app/notify/mock"
	"github.com/orbit-suite/orbit/internal/authsync/app/service"
	"github.com/orbit-suite/orbit/internal/authsync/domain"
	domainmock "github.com/orbit-suite/orbit/internal/authsync/domain/mock"
)

func liveRecord(userID uuid.UUID, origins ...string) domain.SessionRecord {
	return domain.SessionRecord{
		Key:          "someSessionKey",
		UserID:       userID,
		IssuerCookie: "issuerCookieValue",
		IssuedAt:     time.Now(),
		ExpiresAt:    time.Now().Add(time.Hour),
		KnownOrigins: origins,
	}
}

func TestHubService_Login_Returns(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name     string
		identity func(ctrl *gomock.Controller) external.IdentityService
		store    func(ctrl *gomock.Controller) domain.SessionStore
		expect   func(t *testing.T, data service.SessionData, err error)
	}{
		{
			name: "success",
			identity: func(ctrl *gomock.Controller) external.IdentityService {
				mock := externalmock.NewIdentityService(ctrl)
				mock.EXPECT().VerifyIdentityToken(gomock.Any(), "someIdentityToken").Return(userID, nil)
				mock.EXPECT().IssueSessionCookie(gomock.Any(), userID, service.DefaultSessionTTL).Return("issuerCookieValue", nil)
				return mock
			},
			store: func(ctrl *gomock.Controller) domain.SessionStore {
				mock := domainmock.NewSessionStore(ctrl)
				mock.EXPECT().Put(gomock.Any(), gomock.Any()).
					Do(func(_ context.Context, record domain.SessionRecord) {
						assert.NotEmpty(t, record.Key)
						assert.Equal(t, userID, record.UserID)
						assert.Equal(t, "issuerCookieValue", record.IssuerCookie)
					}).
					Return(nil)
				return mock
			},
			expect: func(t *testing.T, data service.SessionData, err error) {
				require.NoError(t, err)
				assert.NotEmpty(t, data.Key)
				assert.Equal(t, userID, data.UserID)
			},
		},
		{
			name: "error_when_token_invalid",
			identity: func(ctrl *gomock.Controller) external.IdentityService {
				mock := externalmock.NewIdentityService(ctrl)
				mock.EXPECT().VerifyIdentityToken(gomock.Any(), "someIdentityToken").
					Return(uuid.UUID{}, external.ErrInvalidToken)
				return mock
			},
			expect: func(t *testing.T, _ service.SessionData, err error) {
				assert.ErrorIs(t, err, external.ErrInvalidToken)
			},
		},
		{
			name: "error_when_store_fails",
			identity: func(ctrl *gomock.Controller) external.IdentityService {
				mock := externalmock.NewIdentityService(ctrl)
				mock.EXPECT().VerifyIdentityToken(gomock.Any(), "someIdentityToken").Return(userID, nil)
				mock.EXPECT().IssueSessionCookie(gomock.Any(), userID, service.DefaultSessionTTL).Return("issuerCookieValue", nil)
				return mock
			},
			store: func(ctrl *gomock.Controller) domain.SessionStore {
				mock := domainmock.NewSessionStore(ctrl)
				mock.EXPECT().Put(gomock.Any(), gomock.Any()).Return(errors.New("unexpected"))
				return mock
			},
			expect: func(t *testing.T, _ service.SessionData, err error) {
				assert.Error(t, err)
			},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			store := domain.SessionStore(domainmock.NewSessionStore(ctrl))
			if tc.store != nil {
				store = tc.store(ctrl)
			}

			srv := service.NewHubService(
				store,
				tc.identity(ctrl),
				notifymock.NewLogoutNotifier(ctrl),
				event.NewNopPublisher(),
				service.Config{},
			)

			data, err := srv.Login(context.Background(), "someIdentityToken")
			tc.expect(t, data, err)
		})
	}
}

func TestHubService_Session_Returns(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name     string
		store    func(ctrl *gomock.Controller) domain.SessionStore
		identity func(ctrl *gomock.Controller) external.IdentityService
		expect   func(t *testing.T, gotUserID uuid.UUID, err error)
	}{
		{
			name: "success",
			store: func(ctrl *gomock.Controller) domain.SessionStore {
				mock := domainmock.NewSessionStore(ctrl)
				mock.EXPECT().Get(gomock.Any(), domain.SessionKey("someSessionKey")).Return(liveRecord(userID), nil)
				return mock
			},
			identity: func(ctrl *gomock.Controller) external.IdentityService {
				mock := externalmock.NewIdentityService(ctrl)
				mock.EXPECT().VerifySessionCookie(gomock.Any(), "issuerCookieValue", true).Return(userID, nil)
				return mock
			},
			expect: func(t *testing.T, gotUserID uuid.UUID, err error) {
				require.NoError(t, err)
				assert.Equal(t, userID, gotUserID)
			},
		},
		{
			name: "error_when_session_not_found",
			store: func(ctrl *gomock.Controller) domain.SessionStore {
				mock := domainmock.NewSessionStore(ctrl)
				mock.EXPECT().Get(gomock.Any(), domain.SessionKey("someSessionKey")).
					Return(domain.SessionRecord{}, domain.ErrSessionNotFound)
				return mock
			},
			expect: func(t *testing.T, _ uuid.UUID, err error) {
				assert.ErrorIs(t, err, domain.ErrSessionNotFound)
			},
		},
		{
			name: "keeps_record_when_identity_revoked",
			store: func(ctrl *gomock.Controller) domain.SessionStore {
				mock := domainmock.NewSessionStore(ctrl)
				mock.EXPECT().Get(gomock.Any(), domain.SessionKey("someSessionKey")).Return(liveRecord(userID), nil)
				return mock
			},
			identity: func(ctrl *gomock.Controller) external.IdentityService {
				mock := externalmock.NewIdentityService(ctrl)
				mock.EXPECT().VerifySessionCookie(gomock.Any(), "issuerCookieValue", true).
					Return(uuid.UUID{}, external.ErrRevokedIdentity)
				return mock
			},
			expect: func(t *testing.T, _ uuid.UUID, err error) {
				assert.ErrorIs(t, err, external.ErrRevokedIdentity)
			},
		},
		{
			name: "keeps_record_when_identity_service_unavailable",
			store: func(ctrl *gomock.Controller) domain.SessionStore {
				mock := domainmock.NewSessionStore(ctrl)
				mock.EXPECT().Get(gomock.Any(), domain.SessionKey("someSessionKey")).Return(liveRecord(userID), nil)
				return mock
			},
			identity: func(ctrl *gomock.Controller) external.IdentityService {
				mock := externalmock.NewIdentityService(ctrl)
				mock.EXPECT().VerifySessionCookie(gomock.Any(), "issuerCookieValue", true).
					Return(uuid.UUID{}, external.ErrIdentityServiceUnavailable)
				return mock
			},
			expect: func(t *testing.T, _ uuid.UUID, err error) {
				assert.ErrorIs(t, err, external.ErrIdentityServiceUnavailable)
			},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			identity := external.IdentityService(externalmock.NewIdentityService(ctrl))
			if tc.identity != nil {
				identity = tc.identity(ctrl)
			}

			srv := service.NewHubService(
				tc.store(ctrl),
				identity,
				notifymock.NewLogoutNotifier(ctrl),
				event.NewNopPublisher(),
				service.Config{},
			)

			gotUserID, err := srv.Session(context.Background(), "someSessionKey")
			tc.expect(t, gotUserID, err)
		})
	}
}

func TestHubService_Logout_NotifiesKnownOrigins(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	record := liveRecord(userID, "https://notes.example.com", "https://calendar.example.com")

	store := domainmock.NewSessionStore(ctrl)
	store.EXPECT().Get(gomock.Any(), record.Key).Return(record, nil)
	store.EXPECT().Delete(gomock.Any(), record.Key).Return(nil)

	notifier := notifymock.NewLogoutNotifier(ctrl)
	notifier.EXPECT().NotifyLogout(gomock.Any(), record.KnownOrigins, userID)

	srv := service.NewHubService(store, externalmock.NewIdentityService(ctrl), notifier, event.NewNopPublisher(), service.Config{})
	require.NoError(t, srv.Logout(context.Background(), record.Key))
}

func TestHubService_Logout_IdempotentWhenSessionAbsent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := domainmock.NewSessionStore(ctrl)
	store.EXPECT().Get(gomock.Any(), domain.SessionKey("staleKey")).
		Return(domain.SessionRecord{}, domain.ErrSessionNotFound)

	srv := service.NewHubService(
		store,
		externalmock.NewIdentityService(ctrl),
		notifymock.NewLogoutNotifier(ctrl),
		event.NewNopPublisher(),
		service.Config{},
	)
	assert.NoError(t, srv.Logout(context.Background(), "staleKey"))
}

func TestHubService_LogoutUser_DeduplicatesOrigins(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	first := liveRecord(userID, "https://notes.example.com", "https://calendar.example.com")
	second := liveRecord(userID, "https://notes.example.com")

	store := domainmock.NewSessionStore(ctrl)
	store.EXPECT().DeleteByUser(gomock.Any(), userID).Return([]domain.SessionRecord{first, second}, nil)

	notifier := notifymock.NewLogoutNotifier(ctrl)
	notifier.EXPECT().NotifyLogout(gomock.Any(), []string{"https://notes.example.com", "https://calendar.example.com"}, userID)

	srv := service.NewHubService(store, externalmock.NewIdentityService(ctrl), notifier, event.NewNopPublisher(), service.Config{})
	require.NoError(t, srv.LogoutUser(context.Background(), userID))
}

func TestHubService_LogoutUser_SkipsNotifyWithoutSessions(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	store := domainmock.NewSessionStore(ctrl)
	store.EXPECT().DeleteByUser(gomock.Any(), userID).Return(nil, nil)

	srv := service.NewHubService(
		store,
		externalmock.NewIdentityService(ctrl),
		notifymock.NewLogoutNotifier(ctrl),
		event.NewNopPublisher(),
		service.Config{},
	)
	require.NoError(t, srv.LogoutUser(context.Background(), userID))
}

func TestHubService_SSOStatus_Returns(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name     string
		key      domain.SessionKey
		store    func(ctrl *gomock.Controller) domain.SessionStore
		identity func(ctrl *gomock.Controller) external.IdentityService
		expect   func(t *testing.T, data service.SSOStatusData, err error)
	}{
		{
			name: "unauthenticated_without_cookie",
			key:  "",
			expect: func(t *testing.T, data service.SSOStatusData, err error) {
				require.NoError(t, err)
				assert.False(t, data.Authenticated)
				assert.Empty(t, data.CustomToken)
			},
		},
		{
			name: "unauthenticated_when_session_stale",
			key:  "staleKey",
			store: func(ctrl *gomock.Controller) domain.SessionStore {
				mock := domainmock.NewSessionStore(ctrl)
				mock.EXPECT().Get(gomock.Any(), domain.SessionKey("staleKey")).
					Return(domain.SessionRecord{}, domain.ErrSessionNotFound)
				return mock
			},
			expect: func(t *testing.T, data service.SSOStatusData, err error) {
				require.NoError(t, err)
				assert.False(t, data.Authenticated)
			},
		},
		{
			name: "custom_token_when_authenticated",
			key:  "someSessionKey",
			store: func(ctrl *gomock.Controller) domain.SessionStore {
				mock := domainmock.NewSessionStore(ctrl)
				mock.EXPECT().Get(gomock.Any(), domain.SessionKey("someSessionKey")).Return(liveRecord(userID), nil)
				return mock
			},
			identity: func(ctrl *gomock.Controller) external.IdentityService {
				mock := externalmock.NewIdentityService(ctrl)
				mock.EXPECT().VerifySessionCookie(gomock.Any(), "issuerCookieValue", true).Return(userID, nil)
				mock.EXPECT().IssueCustomToken(gomock.Any(), userID, service.DefaultCustomTokenTTL).Return("someCustomToken", nil)
				return mock
			},
			expect: func(t *testing.T, data service.SSOStatusData, err error) {
				require.NoError(t, err)
				assert.True(t, data.Authenticated)
				assert.Equal(t, "someCustomToken", data.CustomToken)
			},
		},
		{
			name: "error_when_identity_service_unavailable",
			key:  "someSessionKey",
			store: func(ctrl *gomock.Controller) domain.SessionStore {
				mock := domainmock.NewSessionStore(ctrl)
				mock.EXPECT().Get(gomock.Any(), domain.SessionKey("someSessionKey")).Return(liveRecord(userID), nil)
				return mock
			},
			identity: func(ctrl *gomock.Controller) external.IdentityService {
				mock := externalmock.NewIdentityService(ctrl)
				mock.EXPECT().VerifySessionCookie(gomock.Any(), "issuerCookieValue", true).
					Return(uuid.UUID{}, external.ErrIdentityServiceUnavailable)
				return mock
			},
			expect: func(t *testing.T, _ service.SSOStatusData, err error) {
				assert.ErrorIs(t, err, external.ErrIdentityServiceUnavailable)
			},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			store := domain.SessionStore(domainmock.NewSessionStore(ctrl))
			if tc.store != nil {
				store = tc.store(ctrl)
			}
			identity := external.IdentityService(externalmock.NewIdentityService(ctrl))
			if tc.identity != nil {
				identity = tc.identity(ctrl)
			}

			srv := service.NewHubService(store, identity, notifymock.NewLogoutNotifier(ctrl), event.NewNopPublisher(), service.Config{})

			data, err := srv.SSOStatus(context.Background(), tc.key)
			tc.expect(t, data, err)
		})
	}
}

func TestHubService_FastBootstrap_Returns(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name          string
		key           domain.SessionKey
		identityToken string
		store         func(ctrl *gomock.Controller) domain.SessionStore
		identity      func(ctrl *gomock.Controller) external.IdentityService
		expect        func(t *testing.T, data service.BootstrapData, err error)
	}{
		{
			name: "existing_session_wins_without_side_effects",
			key:  "someSessionKey",
			store: func(ctrl *gomock.Controller) domain.SessionStore {
				mock := domainmock.NewSessionStore(ctrl)
				mock.EXPECT().Get(gomock.Any(), domain.SessionKey("someSessionKey")).Return(liveRecord(userID), nil)
				return mock
			},
			identity: func(ctrl *gomock.Controller) external.IdentityService {
				mock := externalmock.NewIdentityService(ctrl)
				mock.EXPECT().VerifySessionCookie(gomock.Any(), "issuerCookieValue", true).Return(userID, nil)
				return mock
			},
			identityToken: "someIdentityToken",
			expect: func(t *testing.T, data service.BootstrapData, err error) {
				require.NoError(t, err)
				assert.Equal(t, userID, data.UserID)
				assert.Nil(t, data.NewSession)
			},
		},
		{
			name:          "creates_session_from_token_without_cookie",
			key:           "",
			identityToken: "someIdentityToken",
			identity: func(ctrl *gomock.Controller) external.IdentityService {
				mock := externalmock.NewIdentityService(ctrl)
				mock.EXPECT().VerifyIdentityToken(gomock.Any(), "someIdentityToken").Return(userID, nil)
				mock.EXPECT().IssueSessionCookie(gomock.Any(), userID, service.DefaultSessionTTL).Return("issuerCookieValue", nil)
				return mock
			},
			store: func(ctrl *gomock.Controller) domain.SessionStore {
				mock := domainmock.NewSessionStore(ctrl)
				mock.EXPECT().Put(gomock.Any(), gomock.Any()).Return(nil)
				return mock
			},
			expect: func(t *testing.T, data service.BootstrapData, err error) {
				require.NoError(t, err)
				assert.Equal(t, userID, data.UserID)
				require.NotNil(t, data.NewSession)
				assert.NotEmpty(t, data.NewSession.Key)
			},
		},
		{
			name:          "falls_back_to_token_when_session_stale",
			key:           "staleKey",
			identityToken: "someIdentityToken",
			store: func(ctrl *gomock.Controller) domain.SessionStore {
				mock := domainmock.NewSessionStore(ctrl)
				mock.EXPECT().Get(gomock.Any(), domain.SessionKey("staleKey")).
					Return(domain.SessionRecord{}, domain.ErrSessionNotFound)
				mock.EXPECT().Put(gomock.Any(), gomock.Any()).Return(nil)
				return mock
			},
			identity: func(ctrl *gomock.Controller) external.IdentityService {
				mock := externalmock.NewIdentityService(ctrl)
				mock.EXPECT().VerifyIdentityToken(gomock.Any(), "someIdentityToken").Return(userID, nil)
				mock.EXPECT().IssueSessionCookie(gomock.Any(), userID, service.DefaultSessionTTL).Return("issuerCookieValue", nil)
				return mock
			},
			expect: func(t *testing.T, data service.BootstrapData, err error) {
				require.NoError(t, err)
				require.NotNil(t, data.NewSession)
			},
		},
		{
			name:          "error_without_cookie_and_token",
			key:           "",
			identityToken: "",
			expect: func(t *testing.T, _ service.BootstrapData, err error) {
				assert.ErrorIs(t, err, domain.ErrSessionNotFound)
			},
		},
		{
			name:          "error_when_identity_service_unavailable",
			key:           "someSessionKey",
			identityToken: "someIdentityToken",
			store: func(ctrl *gomock.Controller) domain.SessionStore {
				mock := domainmock.NewSessionStore(ctrl)
				mock.EXPECT().Get(gomock.Any(), domain.SessionKey("someSessionKey")).Return(liveRecord(userID), nil)
				return mock
			},
			identity: func(ctrl *gomock.Controller) external.IdentityService {
				mock := externalmock.NewIdentityService(ctrl)
				mock.EXPECT().VerifySessionCookie(gomock.Any(), "issuerCookieValue", true).
					Return(uuid.UUID{}, external.ErrIdentityServiceUnavailable)
				return mock
			},
			expect: func(t *testing.T, _ service.BootstrapData, err error) {
				assert.ErrorIs(t, err, external.ErrIdentityServiceUnavailable)
			},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			store := domain.SessionStore(domainmock.NewSessionStore(ctrl))
			if tc.store != nil {
				store = tc.store(ctrl)
			}
			identity := external.IdentityService(externalmock.NewIdentityService(ctrl))
			if tc.identity != nil {
				identity = tc.identity(ctrl)
			}

			srv := service.NewHubService(store, identity, notifymock.NewLogoutNotifier(ctrl), event.NewNopPublisher(), service.Config{})

			data, err := srv.FastBootstrap(context.Background(), tc.key, tc.identityToken)
			tc.expect(t, data, err)
		})
	}
}
