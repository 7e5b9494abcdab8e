package jwtx

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultTokenTTL is the default lifetime for identity tokens. One hour,
// matching the deployment this service replaces.
const DefaultTokenTTL = time.Hour

// Claims is the identity-token payload. Subject carries the account id;
// Name is the display name embedded alongside it. Additive changes only,
// to preserve compatibility for tokens already in the wild.
type Claims struct {
	jwt.RegisteredClaims

	// Name is the account's display name.
	Name string `json:"name,omitempty"`
}

// NewIdentityClaims builds minimally-correct claims for an account.
// A ttl of exactly zero omits the expiry claim entirely, producing a
// non-expiring token. That choice belongs to configuration, never to an
// accidental zero value reaching this function. A negative ttl yields a
// token that is already expired.
func NewIdentityClaims(subject, name, issuer string, ttl time.Duration, now time.Time) Claims {
	c := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:   issuer,
			Subject:  subject,
			IssuedAt: jwt.NewNumericDate(now),
		},
		Name: name,
	}
	if ttl != 0 {
		c.ExpiresAt = jwt.NewNumericDate(now.Add(ttl))
	}
	return c
}

// ValidateExpiry ensures the token hasn't expired. Tokens without an exp
// claim never expire.
func (c *Claims) ValidateExpiry() error {
	if c.ExpiresAt != nil && time.Now().UTC().After(c.ExpiresAt.Time) {
		return ErrExpired
	}
	return nil
}

// ValidateIssuer checks the issuer claim against the expected value.
// An empty expected value enforces nothing.
func (c *Claims) ValidateIssuer(expected string) error {
	if expected == "" {
		return nil
	}
	if c.Issuer != expected {
		return ErrIssuer
	}
	return nil
}
