package handler

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"github.com/bipsandbytes/echo-api/api"
	"github.com/bipsandbytes/echo-api/internal/server"
	"github.com/bipsandbytes/echo-api/jsonresp"
)

// EventHandler serves event scheduling endpoints.
type EventHandler struct {
	Handler
}

// NewEventHandler constructs an EventHandler.
func NewEventHandler(s *server.Server) *EventHandler {
	return &EventHandler{Handler: NewHandler(s)}
}

// Create handles POST /api/events. The raw body must be JSON with at least
// "name" and "date"; an optional "amount" is parsed as a decimal and
// echoed back as a JSON number.
func (h *EventHandler) Create() echo.HandlerFunc {
	returns := api.Returns(api.Contract{
		201: "event scheduled",
		400: "malformed body or properties",
	}, h.options()...)

	create := func(r *api.Request, body map[string]any) *jsonresp.Response {
		name, _ := body["name"].(string)
		rawDate, _ := body["date"].(string)

		date, err := time.Parse(time.RFC3339, rawDate)
		if err != nil {
			return jsonresp.BadRequest("property 'date' must be an RFC3339 timestamp")
		}

		event := map[string]any{
			"name":   name,
			"date":   date,
			"status": "scheduled",
		}
		if rawAmount, ok := body["amount"].(string); ok {
			amount, err := decimal.NewFromString(rawAmount)
			if err != nil {
				return jsonresp.BadRequest("property 'amount' must be a decimal number")
			}
			event["amount"] = amount
		}

		return jsonresp.Created(event)
	}

	return api.Serve(returns(api.RequireJSON([]string{"name", "date"})(create)))
}
