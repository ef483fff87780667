package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/inkwell-edu/inkwell/internal/platform/domain"
	"github.com/inkwell-edu/inkwell/internal/platform/store"
	"github.com/inkwell-edu/inkwell/pkg/cryptox"
	"github.com/inkwell-edu/inkwell/pkg/idx"
	"github.com/inkwell-edu/inkwell/pkg/slogx"
)

var (
	ErrBootstrapAlready      = errors.New("system already bootstrapped")
	ErrBootstrapUnauthorized = errors.New("unauthorized bootstrap attempt")
)

// BootstrapService provisions the first admin account. It only works while
// the user table is empty and the caller presents the pre-configured
// bootstrap token; after that the endpoint is inert.
type BootstrapService struct {
	Store store.Store
	Token string // Pre-configured bootstrap token
}

func (s *BootstrapService) IsBootstrapped(ctx context.Context) (bool, error) {
	empty, err := s.Store.Users().IsEmpty(ctx)
	if err != nil {
		return false, err
	}
	return !empty, nil
}

// Bootstrap creates the initial admin user with an Argon2id password
// credential. Returns the new admin's user ID.
func (s *BootstrapService) Bootstrap(
	ctx context.Context,
	token, email, name, password string,
) (string, error) {
	l := slogx.FromContext(ctx)

	// 1. Check if already bootstrapped
	if bootstrapped, _ := s.IsBootstrapped(ctx); bootstrapped {
		l.Warn("attempted bootstrap on already-bootstrapped system")
		return "", ErrBootstrapAlready
	}

	// 2. Validate provided token
	if s.Token == "" || token != s.Token {
		l.Warn("unauthorized bootstrap attempt")
		return "", ErrBootstrapUnauthorized
	}

	// 3. Hash the admin password
	passHash, err := cryptox.HashPassword(password)
	if err != nil {
		l.Error("failed to hash admin password", slog.Any("error", err))
		return "", err
	}

	// 4. Create the admin user
	adminID := idx.New().String()
	err = s.Store.Users().CreateUser(ctx, domain.User{
		ID:           adminID,
		Email:        email,
		Name:         name,
		Role:         domain.RoleAdmin,
		PasswordHash: passHash,
	})
	if err != nil {
		l.Error("failed to create admin user", slog.Any("error", err))
		return "", err
	}

	l.Info("successfully bootstrapped system", slog.String("admin_user_id", adminID))
	return adminID, nil
}
