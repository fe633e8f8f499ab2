package http

import (
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"

	authhttp "github.com/orbit-suite/orbit/internal/authsync/infra/http"
	"github.com/orbit-suite/orbit/internal/notes/app/service"
	"github.com/orbit-suite/orbit/internal/notes/domain"
	pkghttp "github.com/orbit-suite/orbit/pkg/http"
)

type (
	noteRequest struct {
		Title   string `json:"title"`
		Content string `json:"content"`
	}

	noteResponse struct {
		ID        uuid.UUID `json:"id"`
		Title     string    `json:"title"`
		Content   string    `json:"content"`
		CreatedAt time.Time `json:"createdAt"`
		UpdatedAt time.Time `json:"updatedAt"`
	}

	notesResponse struct {
		Notes []noteResponse `json:"notes"`
	}
)

// ownerFromContext requires the auth middleware upstream: notes routes are
// never reachable anonymously.
func ownerFromContext(r *http.Request) (uuid.UUID, error) {
	ownerID, ok := authhttp.AuthenticatedUser(r.Context())
	if !ok {
		return uuid.UUID{}, fmt.Errorf("request is not authenticated")
	}
	return ownerID, nil
}

type createNoteHandler struct {
	service service.NoteService
}

func NewCreateNoteHandler(service service.NoteService) pkghttp.Handler {
	return createNoteHandler{service: service}
}

func (h createNoteHandler) Method() string {
	return http.MethodPost
}

func (h createNoteHandler) Path() string {
	return "/api/notes"
}

func (h createNoteHandler) Handle(w pkghttp.ResponseWriter, r *http.Request) error {
	ownerID, err := ownerFromContext(r)
	if err != nil {
		return err
	}
	body, err := pkghttp.ParseRequest(r, pkghttp.JSONBody[noteRequest](), nil)
	if err != nil {
		return err
	}

	note, err := h.service.Create(r.Context(), ownerID, service.NoteData{
		Title:   body.Title,
		Content: body.Content,
	})
	if err != nil {
		return err
	}

	w.
		SetStatusCode(http.StatusCreated).
		SetJSONBody(toNoteResponse(note))
	return nil
}

type getNoteHandler struct {
	service service.NoteService
}

func NewGetNoteHandler(service service.NoteService) pkghttp.Handler {
	return getNoteHandler{service: service}
}

func (h getNoteHandler) Method() string {
	return http.MethodGet
}

func (h getNoteHandler) Path() string {
	return "/api/notes/{noteID}"
}

func (h getNoteHandler) Handle(w pkghttp.ResponseWriter, r *http.Request) error {
	ownerID, err := ownerFromContext(r)
	if err != nil {
		return err
	}
	noteID, err := pkghttp.ParseRequest(r, pkghttp.PathParameter[uuid.UUID]("noteID"), nil)
	if err != nil {
		return err
	}

	note, err := h.service.Get(r.Context(), ownerID, noteID)
	if err != nil {
		return err
	}

	w.SetJSONBody(toNoteResponse(note))
	return nil
}

type listNotesHandler struct {
	service service.NoteService
}

func NewListNotesHandler(service service.NoteService) pkghttp.Handler {
	return listNotesHandler{service: service}
}

func (h listNotesHandler) Method() string {
	return http.MethodGet
}

func (h listNotesHandler) Path() string {
	return "/api/notes"
}

func (h listNotesHandler) Handle(w pkghttp.ResponseWriter, r *http.Request) error {
	ownerID, err := ownerFromContext(r)
	if err != nil {
		return err
	}

	notes, err := h.service.List(r.Context(), ownerID)
	if err != nil {
		return err
	}

	result := notesResponse{Notes: make([]noteResponse, 0, len(notes))}
	for _, note := range notes {
		result.Notes = append(result.Notes, toNoteResponse(note))
	}

	w.SetJSONBody(result)
	return nil
}

type updateNoteHandler struct {
	service service.NoteService
}

func NewUpdateNoteHandler(service service.NoteService) pkghttp.Handler {
	return updateNoteHandler{service: service}
}

func (h updateNoteHandler) Method() string {
	return http.MethodPut
}

func (h updateNoteHandler) Path() string {
	return "/api/notes/{noteID}"
}

func (h updateNoteHandler) Handle(w pkghttp.ResponseWriter, r *http.Request) error {
	ownerID, err := ownerFromContext(r)
	if err != nil {
		return err
	}
	noteID, err := pkghttp.ParseRequest(r, pkghttp.PathParameter[uuid.UUID]("noteID"), nil)
	if err != nil {
		return err
	}
	body, err := pkghttp.ParseRequest(r, pkghttp.JSONBody[noteRequest](), nil)
	if err != nil {
		return err
	}

	note, err := h.service.Update(r.Context(), ownerID, noteID, service.NoteData{
		Title:   body.Title,
		Content: body.Content,
	})
	if err != nil {
		return err
	}

	w.SetJSONBody(toNoteResponse(note))
	return nil
}

type deleteNoteHandler struct {
	service service.NoteService
}

func NewDeleteNoteHandler(service service.NoteService) pkghttp.Handler {
	return deleteNoteHandler{service: service}
}

func (h deleteNoteHandler) Method() string {
	return http.MethodDelete
}

func (h deleteNoteHandler) Path() string {
	return "/api/notes/{noteID}"
}

func (h deleteNoteHandler) Handle(w pkghttp.ResponseWriter, r *http.Request) error {
	ownerID, err := ownerFromContext(r)
	if err != nil {
		return err
	}
	noteID, err := pkghttp.ParseRequest(r, pkghttp.PathParameter[uuid.UUID]("noteID"), nil)
	if err != nil {
		return err
	}

	err = h.service.Delete(r.Context(), ownerID, noteID)
	if err != nil {
		return err
	}

	w.SetStatusCode(http.StatusNoContent)
	return nil
}

func toNoteResponse(note domain.Note) noteResponse {
	return noteResponse{
		ID:        note.ID,
		Title:     note.Title,
		Content:   note.Content,
		CreatedAt: note.CreatedAt,
		UpdatedAt: note.UpdatedAt,
	}
}
