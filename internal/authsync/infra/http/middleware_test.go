package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orbit-suite/orbit/internal/authsync/app/external"
	"github.com/orbit-suite/orbit/internal/authsync/app/service"
	"github.com/orbit-suite/orbit/internal/authsync/domain"
	infrahttp "github.com/orbit-suite/orbit/internal/authsync/infra/http"
)

// stubAuthority resolves every session lookup with the configured result.
type stubAuthority struct {
	userID uuid.UUID
	err    error
}

func (s stubAuthority) Session(_ context.Context, key domain.SessionKey) (uuid.UUID, error) {
	if key == "" {
		return uuid.UUID{}, domain.ErrSessionNotFound
	}
	return s.userID, s.err
}

func (s stubAuthority) Logout(context.Context, domain.SessionKey) error {
	return nil
}

func (s stubAuthority) CustomToken(context.Context, domain.SessionKey) (string, error) {
	return "", nil
}

func (s stubAuthority) FastBootstrap(_ context.Context, key domain.SessionKey, identityToken string) (service.BootstrapData, error) {
	if key == "" && identityToken == "" {
		return service.BootstrapData{}, domain.ErrSessionNotFound
	}
	return service.BootstrapData{UserID: s.userID}, s.err
}

func TestAuthMiddleware_Serves(t *testing.T) {
	userID := uuid.New()
	config := infrahttp.MiddlewareConfig{
		LoginURL:              "https://hub.example.com/login",
		ProtectedPathPrefixes: []string{"/api/"},
	}

	tests := []struct {
		name       string
		path       string
		withCookie bool
		authority  stubAuthority
		expect     func(t *testing.T, resp *http.Response, sawUserID *uuid.UUID)
	}{
		{
			name:       "passes_authenticated_user",
			path:       "/api/notes",
			withCookie: true,
			authority:  stubAuthority{userID: userID},
			expect: func(t *testing.T, resp *http.Response, sawUserID *uuid.UUID) {
				assert.Equal(t, http.StatusOK, resp.StatusCode)
				require.NotNil(t, sawUserID)
				assert.Equal(t, userID, *sawUserID)
			},
		},
		{
			name:      "redirects_anonymous_to_login",
			path:      "/api/notes?tag=work",
			authority: stubAuthority{},
			expect: func(t *testing.T, resp *http.Response, sawUserID *uuid.UUID) {
				assert.Equal(t, http.StatusFound, resp.StatusCode)
				assert.Nil(t, sawUserID)

				location := resp.Header.Get("Location")
				assert.Contains(t, location, "https://hub.example.com/login")
				assert.Contains(t, location, "returnTo=%2Fapi%2Fnotes%3Ftag%3Dwork")
			},
		},
		{
			name:       "redirects_when_session_stale",
			path:       "/api/notes",
			withCookie: true,
			authority:  stubAuthority{err: domain.ErrSessionNotFound},
			expect: func(t *testing.T, resp *http.Response, sawUserID *uuid.UUID) {
				assert.Equal(t, http.StatusFound, resp.StatusCode)
				assert.Nil(t, sawUserID)
			},
		},
		{
			name:       "redirects_when_identity_revoked",
			path:       "/api/notes",
			withCookie: true,
			authority:  stubAuthority{err: external.ErrRevokedIdentity},
			expect: func(t *testing.T, resp *http.Response, _ *uuid.UUID) {
				assert.Equal(t, http.StatusFound, resp.StatusCode)
			},
		},
		{
			name:       "redirects_when_identity_service_down",
			path:       "/api/notes",
			withCookie: true,
			authority:  stubAuthority{err: external.ErrIdentityServiceUnavailable},
			expect: func(t *testing.T, resp *http.Response, sawUserID *uuid.UUID) {
				assert.Equal(t, http.StatusFound, resp.StatusCode)
				assert.Nil(t, sawUserID)
			},
		},
		{
			name:      "skips_unprotected_path",
			path:      "/auth/sso-status",
			authority: stubAuthority{err: external.ErrIdentityServiceUnavailable},
			expect: func(t *testing.T, resp *http.Response, sawUserID *uuid.UUID) {
				assert.Equal(t, http.StatusOK, resp.StatusCode)
				assert.Nil(t, sawUserID)
			},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			var sawUserID *uuid.UUID
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if id, ok := infrahttp.AuthenticatedUser(r.Context()); ok {
					sawUserID = &id
				}
				w.WriteHeader(http.StatusOK)
			})

			cookies := infrahttp.NewSatelliteCookieBaker()
			middleware := infrahttp.NewAuthMiddleware(tc.authority, cookies, config)

			req := httptest.NewRequest(http.MethodGet, tc.path, nil)
			if tc.withCookie {
				req.AddCookie(&http.Cookie{Name: infrahttp.AppSessionCookieName, Value: "someSessionKey"})
			}

			recorder := httptest.NewRecorder()
			middleware(next).ServeHTTP(recorder, req)

			tc.expect(t, recorder.Result(), sawUserID)
		})
	}
}
