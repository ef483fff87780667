package sqlite

import (
	"context"

	"github.com/inkwell-edu/inkwell/internal/platform/domain"
)

type summariesRepo struct {
	db dbtx
}

const summaryColumns = `id, novel_id, title, body, created_at, updated_at`

func (r *summariesRepo) GetSummaryByID(ctx context.Context, id string) (domain.Summary, error) {
	var s domain.Summary
	err := r.db.QueryRowContext(ctx,
		`SELECT `+summaryColumns+` FROM summaries WHERE id = ?`, id,
	).Scan(&s.ID, &s.NovelID, &s.Title, &s.Body, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return domain.Summary{}, mapNotFound(err)
	}
	return s, nil
}

func (r *summariesRepo) ListSummariesByNovel(ctx context.Context, novelID string) ([]domain.Summary, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+summaryColumns+` FROM summaries WHERE novel_id = ? ORDER BY created_at`, novelID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var summaries []domain.Summary
	for rows.Next() {
		var s domain.Summary
		if err := rows.Scan(&s.ID, &s.NovelID, &s.Title, &s.Body, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, err
		}
		summaries = append(summaries, s)
	}
	return summaries, rows.Err()
}

func (r *summariesRepo) CreateSummary(ctx context.Context, s domain.Summary) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO summaries (id, novel_id, title, body) VALUES (?, ?, ?, ?)`,
		s.ID, s.NovelID, s.Title, s.Body,
	)
	return mapConstraint(err)
}

func (r *summariesRepo) UpdateSummary(ctx context.Context, s domain.Summary) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE summaries SET title = ?, body = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`,
		s.Title, s.Body, s.ID,
	)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *summariesRepo) DeleteSummary(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM summaries WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return requireRow(res)
}
