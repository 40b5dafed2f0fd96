// Package database establishes the PostgreSQL connection pool for the demo
// service and wires query logging into the pgx driver.
package database

import (
	"context"
	"fmt"
	"net"
	"net/url"
	"strconv"
	"time"

	pgxzero "github.com/jackc/pgx-zerolog"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/tracelog"
	"github.com/rs/zerolog"

	"github.com/bipsandbytes/echo-api/internal/config"
)

// pingTimeout bounds the startup connectivity check.
const pingTimeout = 10 * time.Second

// Database wraps the pgx connection pool and a lifecycle logger.
type Database struct {
	Pool *pgxpool.Pool
	log  zerolog.Logger
}

// New builds the connection pool from config and verifies connectivity.
// In the local environment every SQL statement is logged through zerolog
// via pgx's tracelog hook.
func New(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*Database, error) {
	hostPort := net.JoinHostPort(cfg.Database.Host, strconv.Itoa(cfg.Database.Port))

	dsn := fmt.Sprintf("postgres://%s:%s@%s/%s?sslmode=%s",
		cfg.Database.User,
		url.QueryEscape(cfg.Database.Password),
		hostPort,
		cfg.Database.Name,
		cfg.Database.SSLMode,
	)

	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse pgx pool config: %w", err)
	}
	if cfg.Database.MaxConns > 0 {
		poolConfig.MaxConns = int32(cfg.Database.MaxConns)
	}

	if cfg.Primary.Env == "local" {
		poolConfig.ConnConfig.Tracer = &tracelog.TraceLog{
			Logger:   pgxzero.NewLogger(log),
			LogLevel: tracelog.LogLevelDebug,
		}
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("create pgx pool: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	log.Info().Str("host", hostPort).Str("database", cfg.Database.Name).Msg("connected to the database")

	return &Database{Pool: pool, log: log}, nil
}

// Close releases the connection pool.
func (db *Database) Close() {
	db.log.Info().Msg("closing database connection pool")
	db.Pool.Close()
}
