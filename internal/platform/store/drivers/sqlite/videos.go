package sqlite

import (
	"context"

	"github.com/inkwell-edu/inkwell/internal/platform/domain"
)

type videosRepo struct {
	db dbtx
}

const videoColumns = `id, novel_id, title, url, duration, created_at, updated_at`

func (r *videosRepo) GetVideoByID(ctx context.Context, id string) (domain.Video, error) {
	var v domain.Video
	err := r.db.QueryRowContext(ctx,
		`SELECT `+videoColumns+` FROM videos WHERE id = ?`, id,
	).Scan(&v.ID, &v.NovelID, &v.Title, &v.URL, &v.Duration, &v.CreatedAt, &v.UpdatedAt)
	if err != nil {
		return domain.Video{}, mapNotFound(err)
	}
	return v, nil
}

func (r *videosRepo) ListVideosByNovel(ctx context.Context, novelID string) ([]domain.Video, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+videoColumns+` FROM videos WHERE novel_id = ? ORDER BY created_at`, novelID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var videos []domain.Video
	for rows.Next() {
		var v domain.Video
		if err := rows.Scan(&v.ID, &v.NovelID, &v.Title, &v.URL, &v.Duration, &v.CreatedAt, &v.UpdatedAt); err != nil {
			return nil, err
		}
		videos = append(videos, v)
	}
	return videos, rows.Err()
}

func (r *videosRepo) CreateVideo(ctx context.Context, v domain.Video) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO videos (id, novel_id, title, url, duration) VALUES (?, ?, ?, ?, ?)`,
		v.ID, v.NovelID, v.Title, v.URL, v.Duration,
	)
	return mapConstraint(err)
}

func (r *videosRepo) UpdateVideo(ctx context.Context, v domain.Video) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE videos SET title = ?, url = ?, duration = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`,
		v.Title, v.URL, v.Duration, v.ID,
	)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *videosRepo) DeleteVideo(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM videos WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return requireRow(res)
}
