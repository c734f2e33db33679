package middleware

import (
	"time"

	"github.com/labstack/echo/v4"

	"github.com/benedict-erwin/agency-console/internal/constants"
	"github.com/benedict-erwin/agency-console/pkg/logger"
)

// Logger middleware logs HTTP requests with timing and assigns request IDs
func Logger(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()

		// Get Request ID from header or generate it
		reqID := constants.GetRequestIDFromHeaders(c)
		if reqID == "" {
			reqID = constants.NewRequestID()
		}
		c.Set(constants.RequestIDKey, reqID)
		c.Response().Header().Set(constants.HeaderRequestID, reqID)

		err := next(c)

		status := c.Response().Status
		if err != nil {
			if he, ok := err.(*echo.HTTPError); ok {
				status = he.Code
			}
		}

		logger.WithScope("accessLog").Info().
			Str("method", c.Request().Method).
			Str("path", c.Request().URL.Path).
			Str("query", c.Request().URL.RawQuery).
			Int("status", status).
			Int64("latency", time.Since(start).Microseconds()).
			Str("request-id", reqID).
			Msg("HTTP Request")

		return err
	}
}
