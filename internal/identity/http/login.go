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

type LoginHandler struct {
	AccountService *service.AccountService
	TokenService   *service.TokenService
	Profile        Profile
}

// ServeHTTP godoc
//
//	@Summary		Login Endpoint
//	@Description	Verifies email and password and issues a signed identity token.
//	@Description	The rich profile returns {token} as JSON; the minimal profile returns the bare token as text.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			body	body		idsdk.LoginRequest	true	"email, password"
//	@Success		200		{object}	idsdk.LoginResponse	"token"
//	@Failure		400		{object}	idsdk.ErrorResponse	"error, error_description"
//	@Failure		500		{object}	idsdk.ErrorResponse	"error, error_description"
//	@Router			/v1/auth/login [post].
func (h *LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req idsdk.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, idsdk.ErrorCodeInvalidRequest, "invalid request body")
		return
	}

	account, err := h.AccountService.Login(ctx, domain.Credentials{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		var verr *service.ValidationError
		switch {
		case errors.As(err, &verr):
			writeError(w, http.StatusBadRequest, idsdk.ErrorCodeInvalidRequest, verr.Error())
		case errors.Is(err, service.ErrEmailNotFound):
			// Deliberately distinguishable from a wrong password; part of
			// the wire contract this service replaces.
			writeError(w, http.StatusBadRequest, idsdk.ErrorCodeEmailNotFound, "email not found")
		case errors.Is(err, service.ErrInvalidPassword):
			writeError(w, http.StatusBadRequest, idsdk.ErrorCodeInvalidPassword, "incorrect password")
		default:
			log.Error("failed to log in", "err", err)
			writeServerError(w)
		}
		return
	}

	token, err := h.TokenService.Mint(ctx, account)
	if err != nil {
		log.Error("failed to mint token", "err", err)
		writeServerError(w)
		return
	}

	w.Header().Set(httpx.TokenHeader, token)

	if h.Profile == ProfileMinimal {
		httpx.WriteText(w, http.StatusOK, token)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, idsdk.LoginResponse{Token: token})
}
