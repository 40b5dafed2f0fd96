// Package server composes the demo service's shared dependencies and owns
// the HTTP server lifecycle.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/bipsandbytes/echo-api/internal/config"
	"github.com/bipsandbytes/echo-api/internal/database"
)

// Server is the application container: config, logger, database pool and
// the Echo instance routes are registered on.
type Server struct {
	Config *config.Config
	Logger zerolog.Logger
	DB     *database.Database
	Echo   *echo.Echo

	httpServer *http.Server
}

// New constructs the container. Routes are registered separately by the
// router package before Start is called.
func New(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*Server, error) {
	db, err := database.New(ctx, cfg, log)
	if err != nil {
		return nil, fmt.Errorf("init database: %w", err)
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	return &Server{
		Config: cfg,
		Logger: log,
		DB:     db,
		Echo:   e,
	}, nil
}

// Start runs the HTTP server. It blocks until the server stops or errors;
// a Shutdown-triggered stop is not reported as an error.
func (s *Server) Start() error {
	s.httpServer = &http.Server{
		Addr:    ":" + s.Config.Server.Port,
		Handler: s.Echo,

		// Config stores int values, interpreted here as seconds.
		ReadTimeout:  time.Duration(s.Config.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(s.Config.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(s.Config.Server.IdleTimeout) * time.Second,
	}

	s.Logger.Info().
		Str("port", s.Config.Server.Port).
		Str("env", s.Config.Primary.Env).
		Msg("starting server")

	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server: %w", err)
	}
	return nil
}

// Shutdown drains in-flight requests and releases resources.
func (s *Server) Shutdown(ctx context.Context) error {
	s.Logger.Info().Msg("shutting down")

	var err error
	if s.httpServer != nil {
		if shutdownErr := s.httpServer.Shutdown(ctx); shutdownErr != nil {
			err = fmt.Errorf("shutdown HTTP server: %w", shutdownErr)
		}
	}
	s.DB.Close()
	return err
}
