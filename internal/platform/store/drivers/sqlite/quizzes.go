package sqlite

import (
	"context"

	"github.com/inkwell-edu/inkwell/internal/platform/domain"
)

type quizzesRepo struct {
	db dbtx
}

const quizColumns = `id, novel_id, title, questions, created_at, updated_at`

func (r *quizzesRepo) GetQuizByID(ctx context.Context, id string) (domain.Quiz, error) {
	var q domain.Quiz
	err := r.db.QueryRowContext(ctx,
		`SELECT `+quizColumns+` FROM quizzes WHERE id = ?`, id,
	).Scan(&q.ID, &q.NovelID, &q.Title, &q.Questions, &q.CreatedAt, &q.UpdatedAt)
	if err != nil {
		return domain.Quiz{}, mapNotFound(err)
	}
	return q, nil
}

func (r *quizzesRepo) ListQuizzesByNovel(ctx context.Context, novelID string) ([]domain.Quiz, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+quizColumns+` FROM quizzes WHERE novel_id = ? ORDER BY created_at`, novelID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var quizzes []domain.Quiz
	for rows.Next() {
		var q domain.Quiz
		if err := rows.Scan(&q.ID, &q.NovelID, &q.Title, &q.Questions, &q.CreatedAt, &q.UpdatedAt); err != nil {
			return nil, err
		}
		quizzes = append(quizzes, q)
	}
	return quizzes, rows.Err()
}

func (r *quizzesRepo) CreateQuiz(ctx context.Context, q domain.Quiz) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO quizzes (id, novel_id, title, questions) VALUES (?, ?, ?, ?)`,
		q.ID, q.NovelID, q.Title, q.Questions,
	)
	return mapConstraint(err)
}

func (r *quizzesRepo) UpdateQuiz(ctx context.Context, q domain.Quiz) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE quizzes SET title = ?, questions = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`,
		q.Title, q.Questions, q.ID,
	)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *quizzesRepo) DeleteQuiz(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM quizzes WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return requireRow(res)
}
