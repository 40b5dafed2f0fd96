package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/bipsandbytes/echo-api/api"
	"github.com/bipsandbytes/echo-api/internal/server"
	"github.com/bipsandbytes/echo-api/jsonresp"
	"github.com/bipsandbytes/echo-api/schema"
)

// CalcHandler serves the arithmetic endpoints.
type CalcHandler struct {
	Handler
}

// NewCalcHandler constructs a CalcHandler.
func NewCalcHandler(s *server.Server) *CalcHandler {
	return &CalcHandler{Handler: NewHandler(s)}
}

// Add handles GET /api/add?x=..&y=.. where both parameters must be
// non-negative integers. The handler already sees them coerced.
func (h *CalcHandler) Add() echo.HandlerFunc {
	endpoint := api.Endpoint(api.Spec{
		Accepts: schema.Schema{
			"x": schema.Int("min=0"),
			"y": schema.Int("min=0"),
		},
		Returns: api.Contract{
			200: "sum computed",
		},
	}, h.options()...)

	return api.Serve(endpoint(func(r *api.Request) *jsonresp.Response {
		sum := r.Query().Int("x") + r.Query().Int("y")
		return jsonresp.New(map[string]int64{"sum": sum})
	}))
}
