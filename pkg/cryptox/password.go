// Package cryptox provides the password hashing primitives for the
// identity service.
package cryptox

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// DefaultCost is the bcrypt work factor used when no cost is configured.
// Matches the deployment this service replaces.
const DefaultCost = bcrypt.DefaultCost

// MaxPasswordBytes is bcrypt's hard input limit. Anything longer must be
// rejected before hashing; bcrypt silently truncates otherwise.
const MaxPasswordBytes = 72

// HashPassword generates a salted bcrypt hash of the plaintext. The salt is
// generated per call and embedded in the returned blob, so hashing the same
// plaintext twice yields different blobs. Costs outside the bcrypt-supported
// range are clamped rather than rejected.
func HashPassword(password string, cost int) (string, error) {
	if cost < bcrypt.MinCost {
		cost = DefaultCost
	}
	if cost > bcrypt.MaxCost {
		cost = bcrypt.MaxCost
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", fmt.Errorf("cryptox: hash password: %w", err)
	}
	return string(hash), nil
}

// VerifyPassword reports whether the plaintext matches the bcrypt blob.
// A mismatch is a false return, never an error; bcrypt recomputes using the
// salt and parameters embedded in the blob and compares in constant time.
func VerifyPassword(password, encodedHash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(encodedHash), []byte(password)) == nil
}
