package integration_test

import (
	"encoding/json"
	"io"
	"net/http"
	"testing"
	"time"

	identityhttp "github.com/accessly/authd/internal/identity/http"
	"github.com/accessly/authd/pkg/idsdk"
	"github.com/stretchr/testify/require"
)

func TestLivez(t *testing.T) {
	env := setupService(t, identityhttp.ProfileRich, time.Hour)

	health, statusCode := getHealth(t, env, "/livez")
	require.Equal(t, http.StatusOK, statusCode)
	require.Equal(t, "ok", health.Status)
	require.Equal(t, testVersion, health.Version)
	require.NotEmpty(t, health.Uptime)
}

func TestReadyz(t *testing.T) {
	env := setupService(t, identityhttp.ProfileRich, time.Hour)

	health, statusCode := getHealth(t, env, "/readyz")
	require.Equal(t, http.StatusOK, statusCode)
	require.Equal(t, "ok", health.Status)
	require.NotNil(t, health.Checks)
	require.Equal(t, "ok", health.Checks.Database)
	require.Equal(t, "ok", health.Checks.Signer)
}

func TestReadyzDatabaseDown(t *testing.T) {
	env := setupService(t, identityhttp.ProfileRich, time.Hour)

	// Closing the store makes the database check fail while the process
	// itself keeps serving.
	require.NoError(t, env.Store.Close())

	health, statusCode := getHealth(t, env, "/readyz")
	require.Equal(t, http.StatusServiceUnavailable, statusCode)
	require.Equal(t, "degraded", health.Status)
	require.NotNil(t, health.Checks)
	require.NotEqual(t, "ok", health.Checks.Database)
	require.Equal(t, "ok", health.Checks.Signer)
}

func getHealth(t *testing.T, env *testEnv, path string) (idsdk.HealthResponse, int) {
	t.Helper()

	resp, err := http.Get(env.BaseURL + path)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var health idsdk.HealthResponse
	require.NoError(t, json.Unmarshal(body, &health))
	return health, resp.StatusCode
}
