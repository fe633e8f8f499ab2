package http

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/orbit-suite/orbit/internal/authsync/app/service"
	pkghttp "github.com/orbit-suite/orbit/pkg/http"
)

// MiddlewareConfig declares which paths require an authenticated session and
// where anonymous visitors are sent to sign in.
type MiddlewareConfig struct {
	LoginURL              string
	ProtectedPathPrefixes []string
}

// NewAuthMiddleware guards protected paths behind a live session. The user is
// made available to downstream handlers via AuthenticatedUser. Every failure,
// including an unreachable identity dependency, redirects to the login page
// with the original URL preserved: access is never granted unconfirmed, and a
// missing session is a recoverable condition, not an error page.
func NewAuthMiddleware(
	authority service.SessionAuthority,
	cookies CookieBaker,
	config MiddlewareConfig,
) pkghttp.ServerMiddleware {
	return func(handler http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !isProtectedPath(r.URL.Path, config.ProtectedPathPrefixes) {
				handler.ServeHTTP(w, r)
				return
			}

			userID, err := authority.Session(r.Context(), cookies.SessionKey(r))
			if err != nil {
				redirectToLogin(w, r, config.LoginURL)
				return
			}

			handler.ServeHTTP(w, r.WithContext(withAuthenticatedUser(r.Context(), userID)))
		})
	}
}

func isProtectedPath(path string, prefixes []string) bool {
	for _, prefix := range prefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

func redirectToLogin(w http.ResponseWriter, r *http.Request, loginURL string) {
	target, err := url.Parse(loginURL)
	if err != nil {
		http.Error(w, "login page is misconfigured", http.StatusInternalServerError)
		return
	}

	query := target.Query()
	query.Set("returnTo", r.URL.RequestURI())
	target.RawQuery = query.Encode()

	http.Redirect(w, r, target.String(), http.StatusFound)
}
