package http

import (
	"net/http"
	"time"

	"github.com/iftm/clients/internal/clients/store"
	"github.com/iftm/clients/pkg/clientsdk"
	"github.com/iftm/clients/pkg/httpx"
)

// LivezHandler godoc
//
//	@Summary		Health Check Endpoint
//	@Description	Liveness probe endpoint returning basic service health status, uptime, and version information
//	@Description	This endpoint always returns 200 OK if the service is running
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	clientsdk.HealthResponse	"status, uptime, version"
//	@Router			/livez [get].
func LivezHandler(startTime time.Time, version string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteJSON(w, http.StatusOK, clientsdk.HealthResponse{
			Status:  "ok",
			Uptime:  time.Since(startTime).String(),
			Version: version,
		})
	}
}

// ReadyzHandler godoc
//
//	@Summary		Readiness Check Endpoint
//	@Description	Readiness probe endpoint reporting whether the client store is reachable
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	clientsdk.HealthResponse	"status, uptime, version, checks"
//	@Failure		503	{object}	clientsdk.HealthResponse	"status, uptime, version, checks - service not ready"
//	@Router			/readyz [get].
func ReadyzHandler(startTime time.Time, version string, st store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		checks := &clientsdk.HealthChecks{Database: "ok"}
		status := "ok"
		code := http.StatusOK

		if err := st.Ping(r.Context()); err != nil {
			checks.Database = "error: " + err.Error()
			status = "degraded"
			code = http.StatusServiceUnavailable
		}

		httpx.WriteJSON(w, code, clientsdk.HealthResponse{
			Status:  status,
			Uptime:  time.Since(startTime).String(),
			Version: version,
			Checks:  checks,
		})
	}
}
