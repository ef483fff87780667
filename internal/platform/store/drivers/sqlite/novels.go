package sqlite

import (
	"context"

	"github.com/inkwell-edu/inkwell/internal/platform/domain"
)

type novelsRepo struct {
	db dbtx
}

const novelColumns = `id, title, author, description, cover_url, published, created_at, updated_at`

func (r *novelsRepo) GetNovelByID(ctx context.Context, id string) (domain.Novel, error) {
	var n domain.Novel
	err := r.db.QueryRowContext(ctx,
		`SELECT `+novelColumns+` FROM novels WHERE id = ?`, id,
	).Scan(&n.ID, &n.Title, &n.Author, &n.Description, &n.CoverURL, &n.Published, &n.CreatedAt, &n.UpdatedAt)
	if err != nil {
		return domain.Novel{}, mapNotFound(err)
	}
	return n, nil
}

func (r *novelsRepo) ListNovels(ctx context.Context) ([]domain.Novel, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+novelColumns+` FROM novels ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var novels []domain.Novel
	for rows.Next() {
		var n domain.Novel
		if err := rows.Scan(&n.ID, &n.Title, &n.Author, &n.Description, &n.CoverURL, &n.Published, &n.CreatedAt, &n.UpdatedAt); err != nil {
			return nil, err
		}
		novels = append(novels, n)
	}
	return novels, rows.Err()
}

func (r *novelsRepo) CreateNovel(ctx context.Context, n domain.Novel) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO novels (id, title, author, description, cover_url, published)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		n.ID, n.Title, n.Author, n.Description, n.CoverURL, n.Published,
	)
	return mapConstraint(err)
}

func (r *novelsRepo) UpdateNovel(ctx context.Context, n domain.Novel) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE novels SET title = ?, author = ?, description = ?, cover_url = ?, published = ?,
		 updated_at = CURRENT_TIMESTAMP WHERE id = ?`,
		n.Title, n.Author, n.Description, n.CoverURL, n.Published, n.ID,
	)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *novelsRepo) DeleteNovel(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM novels WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return requireRow(res)
}
