package http

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/orbit-suite/orbit/internal/authsync/app/service"
	pkghttp "github.com/orbit-suite/orbit/pkg/http"
)

type (
	sessionSyncRequest struct {
		Credential string `json:"credential"`
	}

	sessionDropRequest struct {
		UserID uuid.UUID `json:"userId"`
	}
)

type sessionSyncHandler struct {
	service service.SatelliteService
	cookies CookieBaker
}

// NewSessionSyncHandler exchanges a hub-issued credential for a local session
// cookie on this application's origin.
func NewSessionSyncHandler(service service.SatelliteService, cookies CookieBaker) pkghttp.Handler {
	return sessionSyncHandler{service: service, cookies: cookies}
}

func (h sessionSyncHandler) Method() string {
	return http.MethodPost
}

func (h sessionSyncHandler) Path() string {
	return "/auth/session-sync"
}

func (h sessionSyncHandler) Handle(w pkghttp.ResponseWriter, r *http.Request) error {
	body, err := pkghttp.ParseRequest(r, pkghttp.JSONBody[sessionSyncRequest](), nil)
	if err != nil {
		return err
	}

	data, err := h.service.SyncSession(r.Context(), body.Credential)
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

type sessionDropHandler struct {
	service service.SatelliteService
}

// NewSessionDropHandler is the hub's fan-out target: it drops every local
// session of the user without calling back to the hub.
func NewSessionDropHandler(service service.SatelliteService) pkghttp.Handler {
	return sessionDropHandler{service: service}
}

func (h sessionDropHandler) Method() string {
	return http.MethodPost
}

func (h sessionDropHandler) Path() string {
	return "/auth/session-drop"
}

func (h sessionDropHandler) Handle(w pkghttp.ResponseWriter, r *http.Request) error {
	body, err := pkghttp.ParseRequest(r, pkghttp.JSONBody[sessionDropRequest](), nil)
	if err != nil {
		return err
	}

	err = h.service.DropUserSessions(r.Context(), body.UserID)
	if err != nil {
		return err
	}

	w.SetStatusCode(http.StatusNoContent)
	return nil
}
