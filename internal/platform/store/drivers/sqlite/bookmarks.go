package sqlite

import (
	"context"

	"github.com/inkwell-edu/inkwell/internal/platform/domain"
)

type bookmarksRepo struct {
	db dbtx
}

func (r *bookmarksRepo) GetBookmark(
	ctx context.Context,
	userID string,
	item domain.ItemRef,
) (domain.Bookmark, error) {
	var b domain.Bookmark
	err := r.db.QueryRowContext(ctx,
		`SELECT id, user_id, item_type, item_id, created_at
		 FROM bookmarks WHERE user_id = ? AND item_type = ? AND item_id = ?`,
		userID, item.Type, item.ID,
	).Scan(&b.ID, &b.UserID, &b.Item.Type, &b.Item.ID, &b.CreatedAt)
	if err != nil {
		return domain.Bookmark{}, mapNotFound(err)
	}
	return b, nil
}

func (r *bookmarksRepo) ListBookmarksByUser(ctx context.Context, userID string) ([]domain.Bookmark, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, user_id, item_type, item_id, created_at
		 FROM bookmarks WHERE user_id = ? ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bookmarks []domain.Bookmark
	for rows.Next() {
		var b domain.Bookmark
		if err := rows.Scan(&b.ID, &b.UserID, &b.Item.Type, &b.Item.ID, &b.CreatedAt); err != nil {
			return nil, err
		}
		bookmarks = append(bookmarks, b)
	}
	return bookmarks, rows.Err()
}

func (r *bookmarksRepo) CreateBookmark(ctx context.Context, b domain.Bookmark) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO bookmarks (id, user_id, item_type, item_id) VALUES (?, ?, ?, ?)`,
		b.ID, b.UserID, b.Item.Type, b.Item.ID,
	)
	return mapConstraint(err)
}

func (r *bookmarksRepo) DeleteBookmark(ctx context.Context, userID string, item domain.ItemRef) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM bookmarks WHERE user_id = ? AND item_type = ? AND item_id = ?`,
		userID, item.Type, item.ID,
	)
	if err != nil {
		return err
	}
	return requireRow(res)
}
