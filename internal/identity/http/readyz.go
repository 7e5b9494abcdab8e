package http

import (
	"net/http"
	"time"

	"github.com/accessly/authd/internal/identity/service"
	"github.com/accessly/authd/internal/identity/store"
	"github.com/accessly/authd/pkg/httpx"
	"github.com/accessly/authd/pkg/idsdk"
)

// ReadyzHandler godoc
//
//	@Summary		Readiness Check Endpoint
//	@Description	Readiness probe checking the database connection and the token signer
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	idsdk.HealthResponse	"status, uptime, version, checks"
//	@Failure		503	{object}	idsdk.HealthResponse	"status, uptime, version, checks - service not ready"
//	@Router			/readyz [get].
func ReadyzHandler(
	startTime time.Time,
	version string,
	st store.Store,
	tokens *service.TokenService,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		checks := &idsdk.HealthChecks{
			Database: "ok",
			Signer:   "ok",
		}
		overallStatus := "ok"
		statusCode := http.StatusOK

		if err := st.Ping(r.Context()); err != nil {
			checks.Database = "error: " + err.Error()
			overallStatus = "degraded"
			statusCode = http.StatusServiceUnavailable
		}

		if err := tokens.Signer.Validate(); err != nil {
			checks.Signer = "error: signer not usable"
			overallStatus = "degraded"
			statusCode = http.StatusServiceUnavailable
		}

		httpx.WriteJSON(w, statusCode, idsdk.HealthResponse{
			Status:  overallStatus,
			Uptime:  time.Since(startTime).String(),
			Version: version,
			Checks:  checks,
		})
	}
}
