package jwtx

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

// MinSecretBytes is the smallest shared secret we accept. HMAC-SHA256
// secrets shorter than the hash output weaken the signature for no gain.
const MinSecretBytes = 32

// ErrSecretTooShort reports a shared secret below MinSecretBytes.
var ErrSecretTooShort = errors.New("jwtx: secret must be at least 32 bytes")

// hs256 implements Signer using HMAC-SHA256 over a shared secret.
type hs256 struct {
	secret []byte
	alg    string
}

func newHS256(secret []byte) (*hs256, error) {
	if len(secret) < MinSecretBytes {
		return nil, ErrSecretTooShort
	}
	return &hs256{
		secret: secret,
		alg:    jwt.SigningMethodHS256.Alg(),
	}, nil
}

func (s *hs256) Alg() string { return s.alg }

// Sign takes your claims and turns them into a signed, URL-safe token
// string.
func (s *hs256) Sign(claims Claims) (string, error) {
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.secret)
}

// Validate does a quick sanity check that we actually hold a usable secret.
func (s *hs256) Validate() error {
	if len(s.secret) < MinSecretBytes {
		return ErrSecretTooShort
	}
	return nil
}
