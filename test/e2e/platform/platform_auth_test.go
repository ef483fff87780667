package platform_test

import (
	"net/http"
	"testing"

	"github.com/inkwell-edu/inkwell/pkg/learnsdk"
	"github.com/stretchr/testify/require"
)

// TestLoginAndProfile tests the basic authenticated flow:
// 1. Bootstrap the platform
// 2. Login with email/password
// 3. Fetch the profile on a protected endpoint
func TestLoginAndProfile(t *testing.T) {
	baseURL, cleanup := setupPlatformContainer(t)
	defer cleanup()

	client := learnsdk.NewClient(baseURL)
	bootstrapAdmin(t, client)

	session := loginAdmin(t, client)

	profile, err := session.Me(t.Context())
	require.NoError(t, err)
	require.Equal(t, adminEmail, profile.Email)
	require.Equal(t, adminName, profile.Name)
	require.Equal(t, "admin", profile.Role)
}

// TestLoginRejectsBadCredentials verifies wrong passwords and unknown
// accounts both return 401 without distinguishing which was wrong.
func TestLoginRejectsBadCredentials(t *testing.T) {
	baseURL, cleanup := setupPlatformContainer(t)
	defer cleanup()

	client := learnsdk.NewClient(baseURL)
	bootstrapAdmin(t, client)
	ctx := t.Context()

	_, err := client.LoginWithPassword(ctx, adminEmail, "not-the-password")
	apiErr := requireAPIError(t, err, 401)

	_, err = client.LoginWithPassword(ctx, "nobody@inkwell.test", adminPassword)
	apiErr2 := requireAPIError(t, err, 401)

	require.Equal(t, apiErr.Message, apiErr2.Message, "both failures should use the same message")
}

// TestProtectedEndpointRequiresToken verifies the middleware contract from
// outside: no token is 401, a garbage token is 403.
func TestProtectedEndpointRequiresToken(t *testing.T) {
	baseURL, cleanup := setupPlatformContainer(t)
	defer cleanup()

	httpClient := &http.Client{}

	// No Authorization header.
	resp, err := httpClient.Get(baseURL + "/v1/me")
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	// Malformed bearer token.
	req, err := http.NewRequest(http.MethodGet, baseURL+"/v1/me", nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer not-a-jwt")

	resp, err = httpClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusForbidden, resp.StatusCode)
}

// TestSnapshotResumeRotatesRefreshToken tests the session persistence flow:
// 1. Login and snapshot the session
// 2. Resume from the snapshot in a "new process"
// 3. Verify the refresh token was rotated
// 4. Verify the old snapshot is dead (rotation revoked it)
func TestSnapshotResumeRotatesRefreshToken(t *testing.T) {
	baseURL, cleanup := setupPlatformContainer(t)
	defer cleanup()

	client := learnsdk.NewClient(baseURL)
	bootstrapAdmin(t, client)
	ctx := t.Context()

	session := loginAdmin(t, client)
	snap := session.Snapshot()
	require.NotEmpty(t, snap.RefreshToken)

	resumed, err := client.ResumeSession(ctx, snap)
	require.NoError(t, err)
	require.True(t, resumed.IsAuthenticated())

	// The resumed session works against protected endpoints.
	profile, err := resumed.Me(ctx)
	require.NoError(t, err)
	require.Equal(t, adminEmail, profile.Email)

	// Rotation: the resumed session holds a different refresh token.
	rotated := resumed.Snapshot()
	require.NotEqual(t, snap.RefreshToken, rotated.RefreshToken, "refresh token should be rotated")

	// The pre-rotation token is revoked; resuming from the stale snapshot fails.
	_, err = client.ResumeSession(ctx, snap)
	require.ErrorIs(t, err, learnsdk.ErrSessionExpired)
}

// TestLogoutRevokesRefreshToken verifies logout kills the refresh token
// server-side, not just locally.
func TestLogoutRevokesRefreshToken(t *testing.T) {
	baseURL, cleanup := setupPlatformContainer(t)
	defer cleanup()

	client := learnsdk.NewClient(baseURL)
	bootstrapAdmin(t, client)
	ctx := t.Context()

	session := loginAdmin(t, client)
	snap := session.Snapshot()

	require.NoError(t, session.Logout(ctx))
	require.False(t, session.IsAuthenticated())

	// Local state is gone.
	_, err := session.Me(ctx)
	require.ErrorIs(t, err, learnsdk.ErrNotAuthenticated)

	// Server state is gone too: the snapshot cannot be resumed.
	_, err = client.ResumeSession(ctx, snap)
	require.ErrorIs(t, err, learnsdk.ErrSessionExpired)
}
