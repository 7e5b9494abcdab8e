package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/accessly/authd/internal/identity/domain"
	"github.com/accessly/authd/internal/identity/service"
	"github.com/accessly/authd/pkg/httpx"
	"github.com/accessly/authd/pkg/idsdk"
	"github.com/accessly/authd/pkg/slogx"
)

type RegisterHandler struct {
	AccountService *service.AccountService
	TokenService   *service.TokenService
	Profile        Profile
}

// ServeHTTP godoc
//
//	@Summary		Register Endpoint
//	@Description	Creates a new account from name, email, and password. The email must not already be in use.
//	@Description	Under the rich response profile the response also carries a freshly minted identity token.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			body	body		idsdk.RegisterRequest	true	"name, email, password"
//	@Success		201		{object}	idsdk.RegisterResponse	"id (plus name, email, token under the rich profile)"
//	@Failure		400		{object}	idsdk.ErrorResponse		"error, error_description"
//	@Failure		500		{object}	idsdk.ErrorResponse		"error, error_description"
//	@Router			/v1/auth/register [post].
func (h *RegisterHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req idsdk.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, idsdk.ErrorCodeInvalidRequest, "invalid request body")
		return
	}

	account, err := h.AccountService.Register(ctx, domain.Credentials{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		var verr *service.ValidationError
		switch {
		case errors.As(err, &verr):
			writeError(w, http.StatusBadRequest, idsdk.ErrorCodeInvalidRequest, verr.Error())
		case errors.Is(err, service.ErrEmailTaken):
			writeError(w, http.StatusBadRequest, idsdk.ErrorCodeDuplicateEmail, "email already in use")
		default:
			log.Error("failed to register account", "err", err)
			writeServerError(w)
		}
		return
	}

	if h.Profile == ProfileMinimal {
		httpx.WriteJSON(w, http.StatusCreated, idsdk.RegisterResponse{ID: account.ID})
		return
	}

	token, err := h.TokenService.Mint(ctx, account)
	if err != nil {
		// The account exists at this point; minting is best-effort on top
		// of a committed registration, so this still surfaces as a server
		// fault.
		log.Error("failed to mint token after registration", "err", err)
		writeServerError(w)
		return
	}

	w.Header().Set(httpx.TokenHeader, token)
	httpx.WriteJSON(w, http.StatusCreated, idsdk.RegisterResponse{
		ID:    account.ID,
		Name:  account.Name,
		Email: account.Email,
		Token: token,
	})
}
