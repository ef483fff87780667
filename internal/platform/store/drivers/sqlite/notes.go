package sqlite

import (
	"context"

	"github.com/inkwell-edu/inkwell/internal/platform/domain"
)

type notesRepo struct {
	db dbtx
}

const noteColumns = `id, novel_id, title, body, created_at, updated_at`

func (r *notesRepo) GetNoteByID(ctx context.Context, id string) (domain.Note, error) {
	var n domain.Note
	err := r.db.QueryRowContext(ctx,
		`SELECT `+noteColumns+` FROM notes WHERE id = ?`, id,
	).Scan(&n.ID, &n.NovelID, &n.Title, &n.Body, &n.CreatedAt, &n.UpdatedAt)
	if err != nil {
		return domain.Note{}, mapNotFound(err)
	}
	return n, nil
}

func (r *notesRepo) ListNotesByNovel(ctx context.Context, novelID string) ([]domain.Note, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+noteColumns+` FROM notes WHERE novel_id = ? ORDER BY created_at`, novelID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var notes []domain.Note
	for rows.Next() {
		var n domain.Note
		if err := rows.Scan(&n.ID, &n.NovelID, &n.Title, &n.Body, &n.CreatedAt, &n.UpdatedAt); err != nil {
			return nil, err
		}
		notes = append(notes, n)
	}
	return notes, rows.Err()
}

func (r *notesRepo) CreateNote(ctx context.Context, n domain.Note) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO notes (id, novel_id, title, body) VALUES (?, ?, ?, ?)`,
		n.ID, n.NovelID, n.Title, n.Body,
	)
	return mapConstraint(err)
}

func (r *notesRepo) UpdateNote(ctx context.Context, n domain.Note) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE notes SET title = ?, body = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`,
		n.Title, n.Body, n.ID,
	)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *notesRepo) DeleteNote(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM notes WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return requireRow(res)
}
