package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/bipsandbytes/echo-api/api"
	"github.com/bipsandbytes/echo-api/internal/server"
	"github.com/bipsandbytes/echo-api/jsonresp"
)

// healthCheckTimeout bounds the database connectivity probe.
const healthCheckTimeout = 5 * time.Second

// HealthHandler reports service and dependency health.
type HealthHandler struct {
	Handler
}

// NewHealthHandler constructs a HealthHandler.
func NewHealthHandler(s *server.Server) *HealthHandler {
	return &HealthHandler{Handler: NewHandler(s)}
}

// Check handles GET /healthz: 200 when the database answers a ping within
// the timeout, 503 otherwise.
func (h *HealthHandler) Check() echo.HandlerFunc {
	returns := api.Returns(api.Contract{
		200: "service healthy",
		503: "a dependency is unreachable",
	}, h.options()...)

	return api.Serve(returns(func(r *api.Request) *jsonresp.Response {
		ctx, cancel := context.WithTimeout(r.Request().Context(), healthCheckTimeout)
		defer cancel()

		if err := h.server.DB.Pool.Ping(ctx); err != nil {
			h.server.Logger.Error().Err(err).Msg("database health check failed")
			return jsonresp.Error(http.StatusServiceUnavailable, nil, "database unreachable", nil)
		}

		return jsonresp.New(map[string]any{
			"status":      "healthy",
			"timestamp":   time.Now().UTC(),
			"environment": h.server.Config.Primary.Env,
		})
	}))
}
