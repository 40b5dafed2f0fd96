// Package handler contains the demo service's HTTP endpoints, each built
// from the api decorators: parameter schemas validate input, return-code
// contracts validate output.
package handler

import (
	"github.com/bipsandbytes/echo-api/api"
	"github.com/bipsandbytes/echo-api/internal/server"
)

// Handler holds shared application dependencies for concrete handlers.
type Handler struct {
	server *server.Server
}

// NewHandler constructs the base handler.
func NewHandler(s *server.Server) Handler {
	return Handler{server: s}
}

// options carries the service-wide validation policy and logger into every
// decorator. The policy is fixed at decoration time from config: local and
// test environments fail loud, production degrades to logged warnings.
func (h Handler) options() []api.Option {
	return []api.Option{
		api.WithPolicy(h.server.Config.Policy()),
		api.WithLogger(h.server.Logger),
	}
}

// Handlers groups all HTTP handlers for route registration.
type Handlers struct {
	Health *HealthHandler
	Calc   *CalcHandler
	Users  *UserHandler
	Events *EventHandler
}

// NewHandlers constructs the handler container.
func NewHandlers(s *server.Server) *Handlers {
	return &Handlers{
		Health: NewHealthHandler(s),
		Calc:   NewCalcHandler(s),
		Users:  NewUserHandler(s),
		Events: NewEventHandler(s),
	}
}
