package http

import (
	"net/http"
	"strings"

	"github.com/accessly/authd/internal/identity/service"
	"github.com/accessly/authd/pkg/httpx"
	"github.com/accessly/authd/pkg/idsdk"
	"github.com/accessly/authd/pkg/jwtx"
	"github.com/accessly/authd/pkg/slogx"
)

type VerifyHandler struct {
	TokenService *service.TokenService
}

// ServeHTTP godoc
//
//	@Summary		Verify Token Endpoint
//	@Description	Validates the token in the Auth-Token header and returns the identity embedded in it.
//	@Description	Failures report the classification only (malformed, bad signature, expired); detail stays in the server log.
//	@Tags			Auth
//	@Security		TokenAuth
//	@Produce		json
//	@Success		200	{object}	idsdk.VerifyResponse	"valid, id, name"
//	@Failure		400	{object}	idsdk.ErrorResponse		"error, error_description"
//	@Router			/v1/auth/verify [post].
func (h *VerifyHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	token := strings.TrimSpace(r.Header.Get(httpx.TokenHeader))
	if token == "" {
		writeError(w, http.StatusBadRequest, idsdk.ErrorCodeMissingToken, "no token provided")
		return
	}

	claims, err := h.TokenService.Verify(ctx, token)
	if err != nil {
		log.Warn("token verification failed", "err", err)
		writeError(w, http.StatusBadRequest, idsdk.ErrorCodeInvalidToken, jwtx.Describe(err))
		return
	}

	httpx.WriteJSON(w, http.StatusOK, idsdk.VerifyResponse{
		Valid: true,
		ID:    claims.Subject,
		Name:  claims.Name,
	})
}
