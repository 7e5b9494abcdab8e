package http

import (
	"net/http"

	"github.com/accessly/authd/pkg/httpx"
	"github.com/accessly/authd/pkg/idsdk"
)

// writeError writes the shared error envelope.
func writeError(w http.ResponseWriter, status int, code, description string) {
	httpx.WriteJSON(w, status, idsdk.ErrorResponse{
		Error:            code,
		ErrorDescription: description,
	})
}

func writeServerError(w http.ResponseWriter) {
	writeError(w, http.StatusInternalServerError, idsdk.ErrorCodeServerError, "internal server error")
}
