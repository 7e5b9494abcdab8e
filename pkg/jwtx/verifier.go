package jwtx

import "errors"

// Verifier validates a token string and gives you back the claims if it's
// legit.
type Verifier interface {
	Verify(token string) (Claims, error)
}

// Verification failures collapse into three client-facing categories:
// malformed, bad signature, expired. Callers classify with errors.Is.
var (
	ErrMalformed   = errors.New("jwtx: malformed token")
	ErrInvalidSig  = errors.New("jwtx: invalid signature")
	ErrExpired     = errors.New("jwtx: token expired")
	ErrNotYetValid = errors.New("jwtx: token not yet valid")

	ErrIssuer       = errors.New("jwtx: issuer mismatch")
	ErrInvalidClaim = errors.New("jwtx: invalid claims")
)

// NewVerifierHS256 creates a verifier for tokens minted with the same
// shared secret.
func NewVerifierHS256(secret []byte, issuer string) (Verifier, error) {
	return newHS256Verifier(secret, issuer)
}

// Describe returns a client-safe description of a verification failure:
// the classification only, never the underlying library detail.
func Describe(err error) string {
	switch {
	case errors.Is(err, ErrExpired):
		return "token has expired"
	case errors.Is(err, ErrNotYetValid):
		return "token is not yet valid"
	case errors.Is(err, ErrInvalidSig):
		return "token signature is invalid"
	case errors.Is(err, ErrMalformed):
		return "token is malformed"
	case errors.Is(err, ErrIssuer):
		return "token issuer is not recognised"
	default:
		return "token is invalid"
	}
}
