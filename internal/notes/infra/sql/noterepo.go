package sql

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/orbit-suite/orbit/internal/notes/domain"
	pkgsql "github.com/orbit-suite/orbit/pkg/sql"
)

type noteSqlx struct {
	ID        uuid.UUID `db:"id"`
	OwnerID   uuid.UUID `db:"owner_id"`
	Title     string    `db:"title"`
	Content   string    `db:"content"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

type noteRepo struct {
	db pkgsql.Client
}

func NewNoteRepository(db pkgsql.Client) domain.NoteRepository {
	return noteRepo{db: db}
}

func (r noteRepo) Store(ctx context.Context, note domain.Note) error {
	query, args, err := sq.
		Insert("note").
		Columns("id", "owner_id", "title", "content", "created_at", "updated_at").
		Values(note.ID, note.OwnerID, note.Title, note.Content, note.CreatedAt, note.UpdatedAt).
		Suffix(`
			ON CONFLICT (id) DO UPDATE SET
				title = excluded.title,
				content = excluded.content,
				updated_at = excluded.updated_at
		`).
		ToSql()
	if err != nil {
		return fmt.Errorf("build note query: %w", err)
	}

	_, err = r.db.ExecContext(ctx, query, args...)
	return err
}

func (r noteRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Note, error) {
	query, args, err := sq.
		Select("id", "owner_id", "title", "content", "created_at", "updated_at").
		From("note").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return domain.Note{}, fmt.Errorf("build note query: %w", err)
	}

	var row noteSqlx
	err = r.db.GetContext(ctx, &row, query, args...)
	if errors.Is(err, pkgsql.ErrNoRows) {
		return domain.Note{}, domain.ErrNoteNotFound
	}
	if err != nil {
		return domain.Note{}, err
	}

	return row.toDomain(), nil
}

func (r noteRepo) FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]domain.Note, error) {
	query, args, err := sq.
		Select("id", "owner_id", "title", "content", "created_at", "updated_at").
		From("note").
		Where(sq.Eq{"owner_id": ownerID}).
		OrderBy("updated_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build note query: %w", err)
	}

	var rows []noteSqlx
	err = r.db.SelectContext(ctx, &rows, query, args...)
	if err != nil {
		return nil, err
	}

	notes := make([]domain.Note, 0, len(rows))
	for _, row := range rows {
		notes = append(notes, row.toDomain())
	}
	return notes, nil
}

func (r noteRepo) Delete(ctx context.Context, id uuid.UUID) error {
	query, args, err := sq.
		Delete("note").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build note query: %w", err)
	}

	_, err = r.db.ExecContext(ctx, query, args...)
	return err
}

func (n noteSqlx) toDomain() domain.Note {
	return domain.Note{
		ID:        n.ID,
		OwnerID:   n.OwnerID,
		Title:     n.Title,
		Content:   n.Content,
		CreatedAt: n.CreatedAt,
		UpdatedAt: n.UpdatedAt,
	}
}
