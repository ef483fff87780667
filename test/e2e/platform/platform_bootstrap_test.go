package platform_test

import (
	"testing"

	"github.com/inkwell-edu/inkwell/pkg/learnsdk"
	"github.com/stretchr/testify/require"
)

// TestBootstrap verifies the one-time admin bootstrap:
// 1. A wrong bootstrap token is rejected
// 2. The correct token creates the admin account
// 3. A second bootstrap attempt is refused even with the correct token
func TestBootstrap(t *testing.T) {
	baseURL, cleanup := setupPlatformContainer(t)
	defer cleanup()

	client := learnsdk.NewClient(baseURL)
	ctx := t.Context()

	// Wrong token first: must not create anything.
	_, err := client.Bootstrap(ctx, "wrong-token", learnsdk.BootstrapRequest{
		Email:    adminEmail,
		Name:     adminName,
		Password: adminPassword,
	})
	requireAPIError(t, err, 401)

	// Correct token creates the admin.
	adminUserID := bootstrapAdmin(t, client)
	t.Logf("Bootstrap successful, admin user ID: %s", adminUserID)

	// The admin can log in with the bootstrap password.
	session := loginAdmin(t, client)
	require.Equal(t, "admin", session.User().Role)
	require.Equal(t, adminUserID, session.User().ID)

	// Bootstrap is locked once a user exists.
	_, err = client.Bootstrap(ctx, bootstrapToken, learnsdk.BootstrapRequest{
		Email:    "second@inkwell.test",
		Name:     "Second Admin",
		Password: adminPassword,
	})
	requireAPIError(t, err, 401)
}

// TestBootstrapRejectsWeakPassword verifies the minimum password length is
// enforced before any account is created.
func TestBootstrapRejectsWeakPassword(t *testing.T) {
	baseURL, cleanup := setupPlatformContainer(t)
	defer cleanup()

	client := learnsdk.NewClient(baseURL)

	_, err := client.Bootstrap(t.Context(), bootstrapToken, learnsdk.BootstrapRequest{
		Email:    adminEmail,
		Name:     adminName,
		Password: "short",
	})
	requireAPIError(t, err, 400)

	// The failed attempt must not have consumed the bootstrap.
	bootstrapAdmin(t, client)
}
