package jwtx

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// HS256Verifier validates tokens signed with HMAC-SHA256 over the same
// shared secret used to mint them.
type HS256Verifier struct {
	secret []byte
	issuer string
}

func newHS256Verifier(secret []byte, issuer string) (*HS256Verifier, error) {
	if len(secret) < MinSecretBytes {
		return nil, ErrSecretTooShort
	}
	return &HS256Verifier{secret: secret, issuer: issuer}, nil
}

// Verify validates the token string and returns its parsed Claims. The
// returned error is always one of the jwtx sentinel categories so callers
// can classify without string matching.
func (v *HS256Verifier) Verify(tokenStr string) (Claims, error) {
	// Pin the algorithm so an attacker can't downgrade to "none" or swap
	// in an asymmetric scheme.
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))

	token, err := parser.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (any, error) {
		return v.secret, nil
	})
	if err != nil {
		return Claims{}, classify(err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return Claims{}, ErrInvalidClaim
	}

	if err := claims.ValidateIssuer(v.issuer); err != nil {
		return Claims{}, err
	}
	if err := claims.ValidateExpiry(); err != nil {
		return Claims{}, err
	}

	return *claims, nil
}

// classify maps golang-jwt parse failures onto the jwtx error taxonomy.
func classify(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return fmt.Errorf("%w: %w", ErrExpired, err)
	case errors.Is(err, jwt.ErrTokenNotValidYet):
		return fmt.Errorf("%w: %w", ErrNotYetValid, err)
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return fmt.Errorf("%w: %w", ErrInvalidSig, err)
	case errors.Is(err, jwt.ErrTokenMalformed):
		return fmt.Errorf("%w: %w", ErrMalformed, err)
	default:
		// Unknown algorithm, wrong key type, and friends all land here.
		return fmt.Errorf("%w: %w", ErrInvalidSig, err)
	}
}
