package service

import (
	"context"
	"testing"
	"time"

	"github.com/accessly/authd/internal/identity/domain"
	"github.com/accessly/authd/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

func newTokenService(t *testing.T, ttl time.Duration) *TokenService {
	t.Helper()

	secret := []byte("0123456789abcdef0123456789abcdef")
	signer, err := jwtx.NewSignerHS256(secret)
	require.NoError(t, err)
	verifier, err := jwtx.NewVerifierHS256(secret, "authd")
	require.NoError(t, err)

	return &TokenService{
		Signer:   signer,
		Verifier: verifier,
		Issuer:   "authd",
		TTL:      ttl,
	}
}

func TestMintAndVerify(t *testing.T) {
	svc := newTokenService(t, time.Hour)
	ctx := context.Background()

	account := domain.Account{ID: "01J8ACCOUNTID", Name: "Alice", Email: "alice@x.com"}

	token, err := svc.Mint(ctx, account)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.Verify(ctx, token)
	require.NoError(t, err)
	require.Equal(t, account.ID, claims.Subject)
	require.Equal(t, account.Name, claims.Name)
	require.NotNil(t, claims.ExpiresAt)
	require.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, 5*time.Second)
}

func TestVerifyExpiredToken(t *testing.T) {
	// A negative TTL mints an already-expired token; verification must
	// classify it as expired, never succeed.
	svc := newTokenService(t, -time.Minute)
	ctx := context.Background()

	token, err := svc.Mint(ctx, domain.Account{ID: "id", Name: "n"})
	require.NoError(t, err)

	_, err = svc.Verify(ctx, token)
	require.ErrorIs(t, err, jwtx.ErrExpired)
}

func TestNonExpiringConfiguration(t *testing.T) {
	svc := newTokenService(t, 0)
	ctx := context.Background()

	token, err := svc.Mint(ctx, domain.Account{ID: "id", Name: "n"})
	require.NoError(t, err)

	claims, err := svc.Verify(ctx, token)
	require.NoError(t, err)
	require.Nil(t, claims.ExpiresAt)
}
