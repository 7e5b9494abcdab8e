package integration_test

import (
	"fmt"
	"io"
	"log/slog"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	identityhttp "github.com/accessly/authd/internal/identity/http"
	"github.com/accessly/authd/internal/identity/service"
	"github.com/accessly/authd/internal/identity/store/drivers/sqlite"
	"github.com/accessly/authd/pkg/idsdk"
	"github.com/accessly/authd/pkg/jwtx"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

/*
 * Common constants and helper functions for identity service integration
 * tests. Each test gets a fresh sqlite database and a real router behind
 * an httptest server, driven through the idsdk client.
 */

const (
	testSecret  = "integration-secret-0123456789abcdef01234567"
	testIssuer  = "authd-test"
	testVersion = "test"

	accountName     = "Tester McTest"
	accountEmail    = "tester@example.com"
	accountPassword = "hunter22"
)

// testEnv bundles the running service with handles the tests need to poke
// at it from the inside (minting tokens with unusual TTLs, counting rows).
type testEnv struct {
	Client  *idsdk.Client
	BaseURL string
	Store   *sqlite.Store
	Tokens  *service.TokenService
}

// setupService stands up the full HTTP stack on a fresh database and
// returns a client pointed at it. TTL applies to every token the service
// mints; tests that need expired tokens pass a negative one.
func setupService(t *testing.T, profile identityhttp.Profile, ttl time.Duration) *testEnv {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?_busy_timeout=5000&_journal_mode=WAL",
		filepath.Join(t.TempDir(), "identity.db"))
	st, err := sqlite.NewStore(dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	signer, err := jwtx.NewSignerHS256([]byte(testSecret))
	require.NoError(t, err)
	verifier, err := jwtx.NewVerifierHS256([]byte(testSecret), testIssuer)
	require.NoError(t, err)

	tokens := &service.TokenService{
		Signer:   signer,
		Verifier: verifier,
		Issuer:   testIssuer,
		TTL:      ttl,
	}
	accounts := &service.AccountService{
		Store:      st,
		BcryptCost: bcrypt.MinCost, // keep hashing fast in tests
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	router := identityhttp.NewRouter(verifier, profile, testVersion, st, logger)
	router.AccountService = accounts
	router.TokenService = tokens
	router.ApplyRoutes()

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	return &testEnv{
		Client:  idsdk.New(srv.URL),
		BaseURL: srv.URL,
		Store:   st,
		Tokens:  tokens,
	}
}

// registerAccount creates the default test account and asserts success.
func registerAccount(t *testing.T, env *testEnv) idsdk.RegisterResponse {
	t.Helper()

	resp, err := env.Client.Register(t.Context(), idsdk.RegisterRequest{
		Name:     accountName,
		Email:    accountEmail,
		Password: accountPassword,
	})
	require.NoError(t, err)
	require.NotEmpty(t, resp.ID, "Account ID should not be empty")

	return resp
}

// requireAPIError asserts that err is the service's error envelope with the
// given status and code.
func requireAPIError(t *testing.T, err error, statusCode int, code string) *idsdk.APIError {
	t.Helper()

	require.Error(t, err)
	var apiErr *idsdk.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, statusCode, apiErr.StatusCode)
	require.Equal(t, code, apiErr.Code)

	return apiErr
}
