package constants

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	// RequestIDKey is the echo context key holding the request id
	RequestIDKey = "x-req-id"

	// Header keys (in order of preference)
	HeaderRequestID     = "X-Request-ID"
	HeaderCorrelationID = "X-Correlation-ID"
)

// GetRequestIDFromHeaders returns the caller supplied request id, if any
func GetRequestIDFromHeaders(c echo.Context) string {
	if id := c.Request().Header.Get(HeaderRequestID); id != "" {
		return id
	}
	return c.Request().Header.Get(HeaderCorrelationID)
}

// NewRequestID generates a request id for requests that arrive without one
func NewRequestID() string {
	return "req-" + uuid.NewString()
}

// GetRequestID extracts request ID from Echo context
func GetRequestID(c echo.Context) string {
	rid, ok := c.Get(RequestIDKey).(string)
	if !ok {
		return ""
	}
	return rid
}
