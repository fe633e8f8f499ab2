package http

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/orbit-suite/orbit/internal/authsync/app/service"
	pkghttp "github.com/orbit-suite/orbit/pkg/http"
)

type (
	sessionResponse struct {
		UserID    uuid.UUID `json:"userId"`
		ExpiresAt int64     `json:"expiresAt"`
	}

	userResponse struct {
		UserID uuid.UUID `json:"userId"`
	}

	customTokenResponse struct {
		CustomToken string `json:"customToken"`
	}

	fastBootstrapRequest struct {
		IdentityToken string `json:"identityToken,omitempty"`
	}
)

type getSessionHandler struct {
	authority service.SessionAuthority
	cookies   CookieBaker
}

// NewGetSessionHandler reports the authenticated user of the current session.
func NewGetSessionHandler(authority service.SessionAuthority, cookies CookieBaker) pkghttp.Handler {
	return getSessionHandler{authority: authority, cookies: cookies}
}

func (h getSessionHandler) Method() string {
	return http.MethodGet
}

func (h getSessionHandler) Path() string {
	return "/auth/session"
}

func (h getSessionHandler) Handle(w pkghttp.ResponseWriter, r *http.Request) error {
	userID, err := h.authority.Session(r.Context(), h.cookies.SessionKey(r))
	if err != nil {
		return err
	}

	w.SetJSONBody(userResponse{UserID: userID})
	return nil
}

type logoutHandler struct {
	authority service.SessionAuthority
	cookies   CookieBaker
}

// NewLogoutHandler ends the current session. The call is idempotent: logging
// out without a live session still succeeds and clears the cookie.
func NewLogoutHandler(authority service.SessionAuthority, cookies CookieBaker) pkghttp.Handler {
	return logoutHandler{authority: authority, cookies: cookies}
}

func (h logoutHandler) Method() string {
	return http.MethodDelete
}

func (h logoutHandler) Path() string {
	return "/auth/session"
}

func (h logoutHandler) Handle(w pkghttp.ResponseWriter, r *http.Request) error {
	err := h.authority.Logout(r.Context(), h.cookies.SessionKey(r))
	if err != nil {
		return err
	}

	w.
		SetCookie(h.cookies.Expired()).
		SetStatusCode(http.StatusNoContent)
	return nil
}

type customTokenHandler struct {
	authority service.SessionAuthority
	cookies   CookieBaker
}

// NewCustomTokenHandler mints a short-lived token bound to the session's user,
// for handing the identity over to another suite application.
func NewCustomTokenHandler(authority service.SessionAuthority, cookies CookieBaker) pkghttp.Handler {
	return customTokenHandler{authority: authority, cookies: cookies}
}

func (h customTokenHandler) Method() string {
	return http.MethodPost
}

func (h customTokenHandler) Path() string {
	return "/auth/custom-token"
}

func (h customTokenHandler) Handle(w pkghttp.ResponseWriter, r *http.Request) error {
	token, err := h.authority.CustomToken(r.Context(), h.cookies.SessionKey(r))
	if err != nil {
		return err
	}

	w.SetJSONBody(customTokenResponse{CustomToken: token})
	return nil
}

type fastBootstrapHandler struct {
	authority service.SessionAuthority
	cookies   CookieBaker
}

// NewFastBootstrapHandler authenticates in one round trip: an existing valid
// session wins, otherwise the supplied identity token establishes a new one.
func NewFastBootstrapHandler(authority service.SessionAuthority, cookies CookieBaker) pkghttp.Handler {
	return fastBootstrapHandler{authority: authority, cookies: cookies}
}

func (h fastBootstrapHandler) Method() string {
	return http.MethodPost
}

func (h fastBootstrapHandler) Path() string {
	return "/auth/fast-bootstrap"
}

// Handle accepts an empty body: a caller holding a valid session cookie needs
// no identity token to bootstrap.
func (h fastBootstrapHandler) Handle(w pkghttp.ResponseWriter, r *http.Request) error {
	body, err := pkghttp.ParseRequest(r, pkghttp.OptionalJSONBody[fastBootstrapRequest](), nil)
	if err != nil {
		return err
	}

	data, err := h.authority.FastBootstrap(r.Context(), h.cookies.SessionKey(r), body.IdentityToken)
	if err != nil {
		return err
	}

	if data.NewSession != nil {
		w.SetCookie(h.cookies.Session(data.NewSession.Key, data.NewSession.ExpiresAt))
	}
	w.SetJSONBody(userResponse{UserID: data.UserID})
	return nil
}
