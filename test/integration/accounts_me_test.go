package integration_test

import (
	"net/http"
	"testing"
	"time"

	identityhttp "github.com/accessly/authd/internal/identity/http"
	"github.com/accessly/authd/pkg/idsdk"
	"github.com/stretchr/testify/require"
)

func TestMe(t *testing.T) {
	env := setupService(t, identityhttp.ProfileRich, time.Hour)

	account := registerAccount(t, env)

	me, err := env.Client.Me(t.Context(), account.Token)
	require.NoError(t, err)
	require.Equal(t, account.ID, me.ID)
	require.Equal(t, accountName, me.Name)
	require.Equal(t, accountEmail, me.Email)
}

func TestMeWithLoginToken(t *testing.T) {
	env := setupService(t, identityhttp.ProfileRich, time.Hour)

	account := registerAccount(t, env)

	token, err := env.Client.Login(t.Context(), idsdk.LoginRequest{
		Email:    accountEmail,
		Password: accountPassword,
	})
	require.NoError(t, err)

	me, err := env.Client.Me(t.Context(), token)
	require.NoError(t, err)
	require.Equal(t, account.ID, me.ID)
}

func TestMeMissingToken(t *testing.T) {
	env := setupService(t, identityhttp.ProfileRich, time.Hour)

	_, err := env.Client.Me(t.Context(), "")
	apiErr := requireAPIError(t, err, http.StatusBadRequest, idsdk.ErrorCodeMissingToken)
	require.Equal(t, "no token provided", apiErr.Description)
}

func TestMeInvalidToken(t *testing.T) {
	env := setupService(t, identityhttp.ProfileRich, time.Hour)

	_, err := env.Client.Me(t.Context(), "not.a.token")
	requireAPIError(t, err, http.StatusBadRequest, idsdk.ErrorCodeInvalidToken)
}

func TestMeExpiredToken(t *testing.T) {
	env := setupService(t, identityhttp.ProfileRich, -time.Minute)

	account := registerAccount(t, env)

	_, err := env.Client.Me(t.Context(), account.Token)
	apiErr := requireAPIError(t, err, http.StatusBadRequest, idsdk.ErrorCodeInvalidToken)
	require.Equal(t, "token has expired", apiErr.Description)
}
