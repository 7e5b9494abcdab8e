package httpx

import (
	"context"
	"net/http"
	"strings"

	"github.com/accessly/authd/pkg/jwtx"
	"github.com/accessly/authd/pkg/slogx"
)

// TokenHeader is the header carrying the identity token, on responses that
// mint one and on requests that present one. The name is part of the wire
// contract with existing clients.
const TokenHeader = "Auth-Token"

// AuthnMiddleware verifies the Auth-Token header and attaches the token's
// claims to the request context. Verification failures are reported as a
// classification only; the underlying error goes to the server log.
func AuthnMiddleware(v jwtx.Verifier) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			log := slogx.FromContext(ctx)

			raw := strings.TrimSpace(r.Header.Get(TokenHeader))
			if raw == "" {
				writeTokenError(w, "missing_token", "no token provided")
				return
			}

			claims, err := v.Verify(raw)
			if err != nil {
				log.Warn("token verification failed", "err", err)
				writeTokenError(w, "invalid_token", jwtx.Describe(err))
				return
			}

			next.ServeHTTP(w, r.WithContext(contextWithClaims(ctx, claims)))
		})
	}
}

func contextWithClaims(ctx context.Context, c jwtx.Claims) context.Context {
	ctx = context.WithValue(ctx, CtxKeyAccountID, c.Subject)
	return context.WithValue(ctx, CtxKeyClaims, c)
}

func writeTokenError(w http.ResponseWriter, code, desc string) {
	WriteJSON(w, http.StatusBadRequest, map[string]string{
		"error":             code,
		"error_description": desc,
	})
}
