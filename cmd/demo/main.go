// Command demo runs a small service whose endpoints are all declared
// through the api decorators, against a PostgreSQL-backed user table.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/bipsandbytes/echo-api/internal/config"
	"github.com/bipsandbytes/echo-api/internal/logger"
	"github.com/bipsandbytes/echo-api/internal/router"
	"github.com/bipsandbytes/echo-api/internal/server"
)

// shutdownTimeout bounds the graceful drain on SIGINT/SIGTERM.
const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		fallback := zerolog.New(os.Stderr)
		fallback.Fatal().Err(err).Msg("loading config failed")
	}

	log := logger.New(cfg.Primary.Env, cfg.Primary.Debug)

	srv, err := server.New(context.Background(), cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("initializing server failed")
	}

	router.Register(srv)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			log.Fatal().Err(err).Msg("server failed")
		}
	case sig := <-quit:
		log.Info().Str("signal", sig.String()).Msg("received shutdown signal")

		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			log.Error().Err(err).Msg("graceful shutdown failed")
		}
	}
}
