package platform_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/inkwell-edu/inkwell/pkg/learnsdk"
	"github.com/stretchr/testify/require"
)

// TestHealthEndpoints verifies /livez and /readyz respond without
// authentication and report a healthy database.
func TestHealthEndpoints(t *testing.T) {
	baseURL, cleanup := setupPlatformContainer(t)
	defer cleanup()

	client := learnsdk.NewClient(baseURL)

	health, err := client.Livez(t.Context())
	require.NoError(t, err)
	require.Equal(t, "ok", health.Status)
	require.NotEmpty(t, health.Version)

	// Readiness includes the database check.
	resp, err := http.Get(baseURL + "/readyz")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var ready learnsdk.HealthResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&ready))
	require.Equal(t, "ok", ready.Status)
	require.NotNil(t, ready.Checks)
	require.Equal(t, "ok", ready.Checks.Database)
}
