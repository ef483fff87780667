package sqlite

import (
	"context"
	"database/sql"

	"github.com/inkwell-edu/inkwell/internal/platform/domain"
)

type usersRepo struct {
	db dbtx
}

const userColumns = `id, google_id, email, name, avatar_url, role, password_hash, created_at, updated_at`

func scanUser(row *sql.Row) (domain.User, error) {
	var u domain.User
	var googleID sql.NullString
	err := row.Scan(
		&u.ID,
		&googleID,
		&u.Email,
		&u.Name,
		&u.AvatarURL,
		&u.Role,
		&u.PasswordHash,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	u.GoogleID = mapNullStringPtr(googleID)
	return u, nil
}

func (r *usersRepo) GetUserByID(ctx context.Context, id string) (domain.User, error) {
	return scanUser(r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = ?`, id))
}

func (r *usersRepo) GetUserByEmail(ctx context.Context, email string) (domain.User, error) {
	return scanUser(r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE email = ?`, email))
}

func (r *usersRepo) GetUserByGoogleID(ctx context.Context, googleID string) (domain.User, error) {
	return scanUser(r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE google_id = ?`, googleID))
}

func (r *usersRepo) CreateUser(ctx context.Context, u domain.User) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO users (id, google_id, email, name, avatar_url, role, password_hash)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		u.ID, mapOptionalString(u.GoogleID), u.Email, u.Name, u.AvatarURL, u.Role, u.PasswordHash,
	)
	return mapConstraint(err)
}

func (r *usersRepo) UpdateProfile(ctx context.Context, userID, name, avatarURL string) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE users SET name = ?, avatar_url = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`,
		name, avatarURL, userID,
	)
	return err
}

func (r *usersRepo) DeleteUser(ctx context.Context, userID string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE id = ?`, userID)
	return err
}

func (r *usersRepo) IsEmpty(ctx context.Context) (bool, error) {
	var count int64
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM users`).Scan(&count)
	if err != nil {
		return false, err
	}
	return count == 0, nil
}
