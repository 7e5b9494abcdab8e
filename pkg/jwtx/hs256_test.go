package jwtx

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var testSecret = []byte("0123456789abcdef0123456789abcdef")

func newTestPair(t *testing.T, issuer string) (Signer, Verifier) {
	t.Helper()

	signer, err := NewSignerHS256(testSecret)
	require.NoError(t, err)
	verifier, err := NewVerifierHS256(testSecret, issuer)
	require.NoError(t, err)
	return signer, verifier
}

func TestSignerRejectsShortSecret(t *testing.T) {
	_, err := NewSignerHS256([]byte("short"))
	require.ErrorIs(t, err, ErrSecretTooShort)

	_, err = NewVerifierHS256(nil, "")
	require.ErrorIs(t, err, ErrSecretTooShort)
}

func TestRoundTrip(t *testing.T) {
	signer, verifier := newTestPair(t, "authd")

	claims := NewIdentityClaims("01J8ACCOUNTID", "Alice", "authd", time.Hour, time.Now().UTC())
	token, err := signer.Sign(claims)
	require.NoError(t, err)
	require.NotEmpty(t, token)
	require.Len(t, strings.Split(token, "."), 3, "token should be a compact JWT")

	got, err := verifier.Verify(token)
	require.NoError(t, err)
	require.Equal(t, "01J8ACCOUNTID", got.Subject)
	require.Equal(t, "Alice", got.Name)
	require.Equal(t, "authd", got.Issuer)
	require.NotNil(t, got.ExpiresAt)
}

func TestVerifyExpired(t *testing.T) {
	signer, verifier := newTestPair(t, "")

	// Backdated issuance puts the expiry in the past; verification must
	// always classify this as expired, never as a success.
	claims := NewIdentityClaims("sub", "name", "", time.Minute, time.Now().UTC().Add(-2*time.Minute))

	token, err := signer.Sign(claims)
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	require.ErrorIs(t, err, ErrExpired)
}

func TestNonExpiringToken(t *testing.T) {
	signer, verifier := newTestPair(t, "")

	claims := NewIdentityClaims("sub", "name", "", 0, time.Now().UTC().Add(-24*time.Hour))
	require.Nil(t, claims.ExpiresAt, "zero ttl must omit the expiry claim")

	token, err := signer.Sign(claims)
	require.NoError(t, err)

	got, err := verifier.Verify(token)
	require.NoError(t, err)
	require.Equal(t, "sub", got.Subject)
}

func TestVerifyWrongSecret(t *testing.T) {
	signer, _ := newTestPair(t, "")
	other, err := NewVerifierHS256([]byte("ffffffffffffffffffffffffffffffff"), "")
	require.NoError(t, err)

	token, err := signer.Sign(NewIdentityClaims("sub", "name", "", time.Hour, time.Now().UTC()))
	require.NoError(t, err)

	_, err = other.Verify(token)
	require.ErrorIs(t, err, ErrInvalidSig)
}

func TestVerifyTampered(t *testing.T) {
	signer, verifier := newTestPair(t, "")

	token, err := signer.Sign(NewIdentityClaims("sub", "name", "", time.Hour, time.Now().UTC()))
	require.NoError(t, err)

	// Flip one byte in each segment. Every mutation must fail verification
	// with a signature or malformed classification, never succeed.
	for _, i := range []int{2, len(token) / 2, len(token) - 2} {
		mutated := []byte(token)
		if mutated[i] == 'A' {
			mutated[i] = 'B'
		} else {
			mutated[i] = 'A'
		}

		_, err := verifier.Verify(string(mutated))
		require.Error(t, err, "tampered token at byte %d must not verify", i)
		require.True(t,
			errorIsAny(err, ErrInvalidSig, ErrMalformed, ErrExpired, ErrInvalidClaim),
			"tampered token error should be classified, got %v", err)
	}
}

func TestVerifyMalformed(t *testing.T) {
	_, verifier := newTestPair(t, "")

	for _, tok := range []string{"", "garbage", "a.b", "a.b.c.d"} {
		_, err := verifier.Verify(tok)
		require.ErrorIs(t, err, ErrMalformed, "input %q", tok)
	}
}

func TestVerifyIssuerMismatch(t *testing.T) {
	signer, verifier := newTestPair(t, "authd")

	token, err := signer.Sign(NewIdentityClaims("sub", "name", "someone-else", time.Hour, time.Now().UTC()))
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	require.ErrorIs(t, err, ErrIssuer)
}

func errorIsAny(err error, targets ...error) bool {
	for _, target := range targets {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
