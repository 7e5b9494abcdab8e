package http

import (
	"net/http"

	"github.com/accessly/authd/internal/identity/service"
	"github.com/accessly/authd/pkg/httpx"
	"github.com/accessly/authd/pkg/idsdk"
	"github.com/accessly/authd/pkg/slogx"
)

type MeHandler struct {
	AccountService *service.AccountService
}

// ServeHTTP godoc
//
//	@Summary		Current Account Endpoint
//	@Description	Returns the account identified by the presented token.
//	@Tags			Accounts
//	@Security		TokenAuth
//	@Produce		json
//	@Success		200	{object}	idsdk.AccountResponse	"id, name, email"
//	@Failure		400	{object}	idsdk.ErrorResponse		"error, error_description"
//	@Failure		500	{object}	idsdk.ErrorResponse		"error, error_description"
//	@Router			/v1/accounts/me [get].
func (h *MeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	accountID := httpx.AccountIDFromContext(ctx)
	if accountID == "" {
		writeError(w, http.StatusBadRequest, idsdk.ErrorCodeInvalidToken, "token carries no subject")
		return
	}

	account, err := h.AccountService.GetAccountByID(ctx, accountID)
	if err != nil {
		log.Warn("failed to load account", "account_id", accountID, "err", err)
		writeServerError(w)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, idsdk.AccountResponse{
		ID:    account.ID,
		Name:  account.Name,
		Email: account.Email,
	})
}
