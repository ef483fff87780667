package service

import (
	"context"
	"errors"

	"github.com/inkwell-edu/inkwell/internal/platform/domain"
	"github.com/inkwell-edu/inkwell/internal/platform/store"
	"github.com/inkwell-edu/inkwell/pkg/cryptox"
)

type UserService struct {
	Store store.Store
}

// GetUserByID fetches a user by id.
func (s *UserService) GetUserByID(ctx context.Context, userID string) (domain.User, error) {
	return s.Store.Users().GetUserByID(ctx, userID)
}

// AuthenticatePassword validates an email/password pair for accounts that
// carry a local credential (the bootstrap admin). Students authenticate
// through Google and have no password hash; they always fail here.
func (s *UserService) AuthenticatePassword(ctx context.Context, email, password string) (domain.User, error) {
	user, err := s.Store.Users().GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, ErrInvalidCredentials
		}
		return domain.User{}, err
	}

	if user.PasswordHash == "" {
		return domain.User{}, ErrInvalidCredentials
	}

	if err := cryptox.VerifyPassword(password, user.PasswordHash); err != nil {
		return domain.User{}, ErrInvalidCredentials
	}

	return user, nil
}
