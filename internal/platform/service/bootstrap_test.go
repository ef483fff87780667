package service

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/inkwell-edu/inkwell/internal/platform/domain"
	"github.com/inkwell-edu/inkwell/pkg/cryptox"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	// Password hashing needs a pepper file; point it at a temp location
	pepperPath := filepath.Join(os.TempDir(), "inkwell-service-test-pepper")
	cryptox.SetPepperPath(pepperPath)

	os.Remove(pepperPath)
	defer os.Remove(pepperPath)

	os.Exit(m.Run())
}

func TestBootstrap(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := &BootstrapService{Store: st, Token: "bootstrap-secret"}

	t.Run("rejects wrong token", func(t *testing.T) {
		_, err := svc.Bootstrap(ctx, "nope", "admin@example.com", "Admin", "hunter2hunter2")
		require.ErrorIs(t, err, ErrBootstrapUnauthorized)
	})

	t.Run("creates the admin", func(t *testing.T) {
		adminID, err := svc.Bootstrap(ctx, "bootstrap-secret", "admin@example.com", "Admin", "hunter2hunter2")
		require.NoError(t, err)
		require.NotEmpty(t, adminID)

		admin, err := st.Users().GetUserByID(ctx, adminID)
		require.NoError(t, err)
		require.Equal(t, domain.RoleAdmin, admin.Role)
		require.NotEmpty(t, admin.PasswordHash)
		require.NoError(t, cryptox.VerifyPassword("hunter2hunter2", admin.PasswordHash))
	})

	t.Run("refuses a second bootstrap", func(t *testing.T) {
		_, err := svc.Bootstrap(ctx, "bootstrap-secret", "again@example.com", "Again", "password123")
		require.ErrorIs(t, err, ErrBootstrapAlready)
	})
}

func TestBootstrapRefusesEmptyToken(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	// An unset BOOTSTRAP_TOKEN must never allow bootstrap, even with an
	// empty presented token.
	svc := &BootstrapService{Store: st, Token: ""}
	_, err := svc.Bootstrap(ctx, "", "admin@example.com", "Admin", "password123")
	require.ErrorIs(t, err, ErrBootstrapUnauthorized)
}

func TestAuthenticatePassword(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	boot := &BootstrapService{Store: st, Token: "bootstrap-secret"}
	users := &UserService{Store: st}

	_, err := boot.Bootstrap(ctx, "bootstrap-secret", "admin@example.com", "Admin", "correct-horse")
	require.NoError(t, err)

	t.Run("valid credentials", func(t *testing.T) {
		user, err := users.AuthenticatePassword(ctx, "admin@example.com", "correct-horse")
		require.NoError(t, err)
		require.Equal(t, domain.RoleAdmin, user.Role)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := users.AuthenticatePassword(ctx, "admin@example.com", "battery-staple")
		require.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := users.AuthenticatePassword(ctx, "ghost@example.com", "whatever")
		require.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("google accounts have no password path", func(t *testing.T) {
		student := seedUser(t, st, domain.RoleStudent)
		_, err := users.AuthenticatePassword(ctx, student.Email, "")
		require.ErrorIs(t, err, ErrInvalidCredentials)
	})
}
