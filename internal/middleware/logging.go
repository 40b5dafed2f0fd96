package middleware

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
)

// RequestLogger emits one structured log line per request, leveled by
// outcome: 5xx logs as error, 4xx as warn, everything else as info.
func RequestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:     true,
		LogStatus:  true,
		LogError:   true,
		LogLatency: true,
		LogMethod:  true,

		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			var e *zerolog.Event
			switch {
			case v.Status >= 500:
				e = log.Error().Err(v.Error)
			case v.Status >= 400:
				e = log.Warn()
			default:
				e = log.Info()
			}

			if requestID := GetRequestID(c); requestID != "" {
				e = e.Str("request_id", requestID)
			}

			e.
				Dur("latency", v.Latency).
				Int("status", v.Status).
				Str("method", v.Method).
				Str("uri", v.URI).
				Str("ip", c.RealIP()).
				Msg("API")

			return nil
		},
	})
}
