package sqlite

import (
	"context"
	"database/sql"

	"github.com/inkwell-edu/inkwell/internal/platform/domain"
	"github.com/inkwell-edu/inkwell/internal/platform/store"
)

// requireRow turns a zero-row UPDATE/DELETE into ErrNotFound so handlers
// can 404 instead of silently succeeding.
func requireRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}

type chaptersRepo struct {
	db dbtx
}

const chapterColumns = `id, novel_id, idx, title, body, created_at, updated_at`

func (r *chaptersRepo) GetChapterByID(ctx context.Context, id string) (domain.Chapter, error) {
	var c domain.Chapter
	err := r.db.QueryRowContext(ctx,
		`SELECT `+chapterColumns+` FROM chapters WHERE id = ?`, id,
	).Scan(&c.ID, &c.NovelID, &c.Index, &c.Title, &c.Body, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return domain.Chapter{}, mapNotFound(err)
	}
	return c, nil
}

func (r *chaptersRepo) ListChaptersByNovel(ctx context.Context, novelID string) ([]domain.Chapter, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+chapterColumns+` FROM chapters WHERE novel_id = ? ORDER BY idx`, novelID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var chapters []domain.Chapter
	for rows.Next() {
		var c domain.Chapter
		if err := rows.Scan(&c.ID, &c.NovelID, &c.Index, &c.Title, &c.Body, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		chapters = append(chapters, c)
	}
	return chapters, rows.Err()
}

func (r *chaptersRepo) CreateChapter(ctx context.Context, c domain.Chapter) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO chapters (id, novel_id, idx, title, body) VALUES (?, ?, ?, ?, ?)`,
		c.ID, c.NovelID, c.Index, c.Title, c.Body,
	)
	return mapConstraint(err)
}

func (r *chaptersRepo) UpdateChapter(ctx context.Context, c domain.Chapter) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE chapters SET idx = ?, title = ?, body = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`,
		c.Index, c.Title, c.Body, c.ID,
	)
	if err != nil {
		return mapConstraint(err)
	}
	return requireRow(res)
}

func (r *chaptersRepo) DeleteChapter(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM chapters WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return requireRow(res)
}
