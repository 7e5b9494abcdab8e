// Package jwtx mints and verifies the signed identity tokens this service
// issues. The only scheme in play is HS256 over a single process-wide
// secret; the Signer/Verifier split exists so callers never see key
// material, only the operations.
package jwtx

// Signer is anything that can turn Claims into a signed token string.
type Signer interface {
	Alg() string
	Sign(Claims) (string, error)
	Validate() error
}

// NewSignerHS256 creates an HMAC-SHA256 signer from a shared secret.
func NewSignerHS256(secret []byte) (Signer, error) {
	return newHS256(secret)
}
