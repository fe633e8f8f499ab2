//go:generate ${TOOLS_BIN}/mockgen -source ${GOFILE} -destination mock/${GOFILE} -package mock -mock_names "NoteRepository=NoteRepository"
package domain

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrNoteNotFound = errors.New("note not found")

type Note struct {
	ID        uuid.UUID
	OwnerID   uuid.UUID
	Title     string
	Content   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type NoteRepository interface {
	Store(ctx context.Context, note Note) error
	GetByID(ctx context.Context, id uuid.UUID) (Note, error)
	FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]Note, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
