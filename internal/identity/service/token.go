package service

import (
	"context"
	"time"

	"github.com/accessly/authd/internal/identity/domain"
	"github.com/accessly/authd/pkg/jwtx"
	"github.com/accessly/authd/pkg/slogx"
)

// TokenService mints and verifies identity tokens. TTL of zero means
// non-expiring; that combination is only reachable when configuration
// explicitly asks for it.
type TokenService struct {
	Signer   jwtx.Signer
	Verifier jwtx.Verifier
	Issuer   string
	TTL      time.Duration
}

// Mint issues a signed token whose claims identify the account.
func (s *TokenService) Mint(ctx context.Context, account domain.Account) (string, error) {
	claims := jwtx.NewIdentityClaims(account.ID, account.Name, s.Issuer, s.TTL, time.Now().UTC())

	token, err := s.Signer.Sign(claims)
	if err != nil {
		slogx.FromContext(ctx).Error("failed to sign token", "err", err)
		return "", err
	}
	return token, nil
}

// Verify validates a presented token and returns its claims. Failures are
// jwtx sentinel categories (malformed, bad signature, expired).
func (s *TokenService) Verify(ctx context.Context, token string) (jwtx.Claims, error) {
	return s.Verifier.Verify(token)
}
