// Package router registers the demo service's middleware and routes.
package router

import (
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/bipsandbytes/echo-api/internal/handler"
	"github.com/bipsandbytes/echo-api/internal/middleware"
	"github.com/bipsandbytes/echo-api/internal/server"
)

// Register attaches global middleware and all routes to the server's Echo
// instance.
func Register(s *server.Server) {
	h := handler.NewHandlers(s)

	s.Echo.Use(
		middleware.RequestID(),
		middleware.RequestLogger(s.Logger),
		echomw.Recover(),
	)

	s.Echo.GET("/healthz", h.Health.Check())

	apiGroup := s.Echo.Group("/api")
	apiGroup.GET("/add", h.Calc.Add())
	apiGroup.GET("/users", h.Users.Get())
	apiGroup.GET("/users/all", h.Users.List())
	apiGroup.POST("/events", h.Events.Create())
}
