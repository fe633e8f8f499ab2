package http

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/orbit-suite/orbit/internal/authsync/app/service"
	pkghttp "github.com/orbit-suite/orbit/pkg/http"
)

type (
	loginRequest struct {
		IdentityToken string `json:"identityToken"`
	}

	ssoStatusResponse struct {
		Authenticated bool   `json:"authenticated"`
		CustomToken   string `json:"customToken,omitempty"`
	}

	registerOriginRequest struct {
		UserID uuid.UUID `json:"userId"`
		Origin string    `json:"origin"`
	}

	logoutSyncRequest struct {
		UserID uuid.UUID `json:"userId"`
	}
)

type loginHandler struct {
	service service.HubService
	cookies CookieBaker
}

// NewLoginHandler exchanges an identity token for a hub session cookie.
func NewLoginHandler(service service.HubService, cookies CookieBaker) pkghttp.Handler {
	return loginHandler{service: service, cookies: cookies}
}

func (h loginHandler) Method() string {
	return http.MethodPost
}

func (h loginHandler) Path() string {
	return "/auth/session"
}

func (h loginHandler) Handle(w pkghttp.ResponseWriter, r *http.Request) error {
	body, err := pkghttp.ParseRequest(r, pkghttp.JSONBody[loginRequest](), nil)
	if err != nil {
		return err
	}

	data, err := h.service.Login(r.Context(), body.IdentityToken)
	if err != nil {
		return err
	}

	w.
		SetCookie(h.cookies.Session(data.Key, data.ExpiresAt)).
		SetStatusCode(http.StatusCreated).
		SetJSONBody(sessionResponse{
			UserID:    data.UserID,
			ExpiresAt: data.ExpiresAt.Unix(),
		})
	return nil
}

type ssoStatusHandler struct {
	service service.HubService
	cookies CookieBaker
}

// NewSSOStatusHandler is polled by satellite bridge frames: it answers whether
// a hub session exists and, if so, hands out a custom token to sync it over.
// An anonymous visitor gets a plain negative answer, never an error.
func NewSSOStatusHandler(service service.HubService, cookies CookieBaker) pkghttp.Handler {
	return ssoStatusHandler{service: service, cookies: cookies}
}

func (h ssoStatusHandler) Method() string {
	return http.MethodGet
}

func (h ssoStatusHandler) Path() string {
	return "/auth/sso-status"
}

func (h ssoStatusHandler) Handle(w pkghttp.ResponseWriter, r *http.Request) error {
	data, err := h.service.SSOStatus(r.Context(), h.cookies.SessionKey(r))
	if err != nil {
		return err
	}

	w.SetJSONBody(ssoStatusResponse{
		Authenticated: data.Authenticated,
		CustomToken:   data.CustomToken,
	})
	return nil
}

type registerOriginHandler struct {
	service service.HubService
}

// NewRegisterOriginHandler records a satellite origin for logout fan-out.
func NewRegisterOriginHandler(service service.HubService) pkghttp.Handler {
	return registerOriginHandler{service: service}
}

func (h registerOriginHandler) Method() string {
	return http.MethodPost
}

func (h registerOriginHandler) Path() string {
	return "/auth/origins"
}

func (h registerOriginHandler) Handle(w pkghttp.ResponseWriter, r *http.Request) error {
	body, err := pkghttp.ParseRequest(r, pkghttp.JSONBody[registerOriginRequest](), nil)
	if err != nil {
		return err
	}

	err = h.service.RegisterOrigin(r.Context(), body.UserID, body.Origin)
	if err != nil {
		return err
	}

	w.SetStatusCode(http.StatusNoContent)
	return nil
}

type logoutSyncHandler struct {
	service service.HubService
}

// NewLogoutSyncHandler lets a satellite propagate its local logout: the hub
// collapses every session of the user and fans the logout back out.
func NewLogoutSyncHandler(service service.HubService) pkghttp.Handler {
	return logoutSyncHandler{service: service}
}

func (h logoutSyncHandler) Method() string {
	return http.MethodPost
}

func (h logoutSyncHandler) Path() string {
	return "/auth/logout-sync"
}

func (h logoutSyncHandler) Handle(w pkghttp.ResponseWriter, r *http.Request) error {
	body, err := pkghttp.ParseRequest(r, pkghttp.JSONBody[logoutSyncRequest](), nil)
	if err != nil {
		return err
	}

	err = h.service.LogoutUser(r.Context(), body.UserID)
	if err != nil {
		return err
	}

	w.SetStatusCode(http.StatusNoContent)
	return nil
}
