// Package logger builds the service-wide zerolog logger.
package logger

import (
	"os"

	"github.com/rs/zerolog"
)

// New returns the root logger for the given environment: a human-friendly
// console writer for local development, JSON lines everywhere else. Debug
// level is enabled locally and when debug is set.
func New(env string, debug bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if debug || env == "local" {
		level = zerolog.DebugLevel
	}

	if env == "local" {
		return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
			Level(level).
			With().Timestamp().Logger()
	}

	return zerolog.New(os.Stderr).
		Level(level).
		With().Timestamp().Str("service", "echo-api-demo").Logger()
}
