package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/orbit-suite/orbit/internal/notes/domain"
)

type (
	NoteData struct {
		Title   string
		Content string
	}

	NoteService interface {
		Create(ctx context.Context, ownerID uuid.UUID, data NoteData) (domain.Note, error)
		Get(ctx context.Context, ownerID, noteID uuid.UUID) (domain.Note, error)
		List(ctx context.Context, ownerID uuid.UUID) ([]domain.Note, error)
		Update(ctx context.Context, ownerID, noteID uuid.UUID, data NoteData) (domain.Note, error)
		Delete(ctx context.Context, ownerID, noteID uuid.UUID) error
	}

	noteService struct {
		repo domain.NoteRepository
	}
)

func NewNoteService(repo domain.NoteRepository) NoteService {
	return noteService{repo: repo}
}

func (s noteService) Create(ctx context.Context, ownerID uuid.UUID, data NoteData) (domain.Note, error) {
	now := time.Now()
	note := domain.Note{
		ID:        uuid.New(),
		OwnerID:   ownerID,
		Title:     data.Title,
		Content:   data.Content,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err := s.repo.Store(ctx, note)
	if err != nil {
		return domain.Note{}, fmt.Errorf("store note: %w", err)
	}
	return note, nil
}

func (s noteService) Get(ctx context.Context, ownerID, noteID uuid.UUID) (domain.Note, error) {
	return s.getOwned(ctx, ownerID, noteID)
}

func (s noteService) List(ctx context.Context, ownerID uuid.UUID) ([]domain.Note, error) {
	notes, err := s.repo.FindByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("find notes: %w", err)
	}
	return notes, nil
}

func (s noteService) Update(ctx context.Context, ownerID, noteID uuid.UUID, data NoteData) (domain.Note, error) {
	note, err := s.getOwned(ctx, ownerID, noteID)
	if err != nil {
		return domain.Note{}, err
	}

	note.Title = data.Title
	note.Content = data.Content
	note.UpdatedAt = time.Now()

	err = s.repo.Store(ctx, note)
	if err != nil {
		return domain.Note{}, fmt.Errorf("store note: %w", err)
	}
	return note, nil
}

func (s noteService) Delete(ctx context.Context, ownerID, noteID uuid.UUID) error {
	_, err := s.getOwned(ctx, ownerID, noteID)
	if err != nil {
		return err
	}

	err = s.repo.Delete(ctx, noteID)
	if err != nil {
		return fmt.Errorf("delete note: %w", err)
	}
	return nil
}

// getOwned hides other users' notes behind not-found so note IDs leak nothing.
func (s noteService) getOwned(ctx context.Context, ownerID, noteID uuid.UUID) (domain.Note, error) {
	note, err := s.repo.GetByID(ctx, noteID)
	if err != nil {
		return domain.Note{}, err
	}
	if note.OwnerID != ownerID {
		return domain.Note{}, domain.ErrNoteNotFound
	}
	return note, nil
}
