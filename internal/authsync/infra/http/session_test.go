package http_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	infrahttp "github.com/orbit-suite/orbit/internal/authsync/infra/http"
	pkghttp "github.com/orbit-suite/orbit/pkg/http"
)

// captureResponseWriter records what a handler sets on the response.
type captureResponseWriter struct {
	statusCode int
	cookies    []*http.Cookie
	jsonBody   any
}

func (w *captureResponseWriter) SetHeader(string, string) pkghttp.ResponseWriter {
	return w
}

func (w *captureResponseWriter) SetStatusCode(statusCode int) pkghttp.ResponseWriter {
	w.statusCode = statusCode
	return w
}

func (w *captureResponseWriter) SetCookie(cookie *http.Cookie) pkghttp.ResponseWriter {
	w.cookies = append(w.cookies, cookie)
	return w
}

func (w *captureResponseWriter) SetJSONBody(data any) pkghttp.ResponseWriter {
	w.jsonBody = data
	return w
}

func assertUserResponse(t *testing.T, body any, userID uuid.UUID) {
	t.Helper()
	encoded, err := json.Marshal(body)
	require.NoError(t, err)
	assert.JSONEq(t, fmt.Sprintf(`{"userId":%q}`, userID), string(encoded))
}

func TestFastBootstrapHandler_Handle(t *testing.T) {
	userID := uuid.New()
	cookies := infrahttp.NewHubCookieBaker()
	handler := infrahttp.NewFastBootstrapHandler(stubAuthority{userID: userID}, cookies)

	tests := []struct {
		name   string
		body   string
		cookie bool
		expect func(t *testing.T, w *captureResponseWriter, err error)
	}{
		{
			name:   "bootstraps_from_cookie_without_body",
			cookie: true,
			expect: func(t *testing.T, w *captureResponseWriter, err error) {
				require.NoError(t, err)
				assertUserResponse(t, w.jsonBody, userID)
			},
		},
		{
			name: "bootstraps_from_identity_token",
			body: `{"identityToken": "someIdentityToken"}`,
			expect: func(t *testing.T, w *captureResponseWriter, err error) {
				require.NoError(t, err)
				assertUserResponse(t, w.jsonBody, userID)
			},
		},
		{
			name: "error_without_cookie_and_body",
			expect: func(t *testing.T, w *captureResponseWriter, err error) {
				assert.Error(t, err)
				assert.Nil(t, w.jsonBody)
			},
		},
		{
			name: "error_on_malformed_body",
			body: `{"identityToken":`,
			expect: func(t *testing.T, w *captureResponseWriter, err error) {
				assert.ErrorIs(t, err, pkghttp.ErrParsingError)
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/auth/fast-bootstrap", strings.NewReader(tc.body))
			if tc.cookie {
				req.AddCookie(&http.Cookie{Name: infrahttp.HubSessionCookieName, Value: "someSessionKey"})
			}

			w := &captureResponseWriter{}
			tc.expect(t, w, handler.Handle(w, req))
		})
	}
}
