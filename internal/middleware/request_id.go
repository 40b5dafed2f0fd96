package middleware

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	// RequestIDHeader is the header carrying the request correlation ID.
	RequestIDHeader = "X-Request-ID"

	// requestIDKey stores the ID in the Echo context.
	requestIDKey = "request_id"
)

// RequestID ensures every request has a correlation ID: an incoming
// X-Request-ID is reused, otherwise a UUID is generated. The ID is stored
// in the Echo context and echoed back on the response.
func RequestID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			requestID := c.Request().Header.Get(RequestIDHeader)
			if requestID == "" {
				requestID = uuid.New().String()
			}

			c.Set(requestIDKey, requestID)
			c.Response().Header().Set(RequestIDHeader, requestID)

			return next(c)
		}
	}
}

// GetRequestID returns the correlation ID of the request, or "" when the
// RequestID middleware did not run.
func GetRequestID(c echo.Context) string {
	if requestID, ok := c.Get(requestIDKey).(string); ok {
		return requestID
	}
	return ""
}
