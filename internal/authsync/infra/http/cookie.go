package http

import (
	"net/http"
	"time"

	"github.com/orbit-suite/orbit/internal/authsync/domain"
)

const (
	HubSessionCookieName = "orbit_hub_session"
	AppSessionCookieName = "orbit_app_session"
)

// CookieBaker owns the session cookie contract of one application. The hub
// cookie travels on cross-site requests from embedded bridge frames, so it is
// SameSite=None and therefore must be Secure. Satellite cookies are first-party
// only and stay Lax.
type CookieBaker struct {
	name     string
	sameSite http.SameSite
}

func NewHubCookieBaker() CookieBaker {
	return CookieBaker{
		name:     HubSessionCookieName,
		sameSite: http.SameSiteNoneMode,
	}
}

func NewSatelliteCookieBaker() CookieBaker {
	return CookieBaker{
		name:     AppSessionCookieName,
		sameSite: http.SameSiteLaxMode,
	}
}

func (b CookieBaker) Session(key domain.SessionKey, expiresAt time.Time) *http.Cookie {
	return &http.Cookie{
		Name:     b.name,
		Value:    string(key),
		Path:     "/",
		Expires:  expiresAt,
		HttpOnly: true,
		Secure:   true,
		SameSite: b.sameSite,
	}
}

func (b CookieBaker) Expired() *http.Cookie {
	return &http.Cookie{
		Name:     b.name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   true,
		SameSite: b.sameSite,
	}
}

// SessionKey extracts the session key from the request, empty when the cookie
// is absent. Absence is a business outcome, not a parsing failure.
func (b CookieBaker) SessionKey(r *http.Request) domain.SessionKey {
	cookie, err := r.Cookie(b.name)
	if err != nil {
		return ""
	}
	return domain.SessionKey(cookie.Value)
}
