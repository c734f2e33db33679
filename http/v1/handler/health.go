package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/benedict-erwin/agency-console/internal/constants"
	"github.com/benedict-erwin/agency-console/internal/services/health"
	"github.com/benedict-erwin/agency-console/pkg/response"
	"github.com/benedict-erwin/agency-console/pkg/utils"
)

// HealthLive returns basic liveness check
func HealthLive(c echo.Context) error {
	data := map[string]interface{}{
		"status":    "alive",
		"timestamp": utils.NowFormatted(),
	}

	return response.Success(c, data)
}

// HealthReady reports whether every screen dataset is loaded
func HealthReady(c echo.Context) error {
	readiness := health.CheckReadiness()
	if readiness.Status != "ready" {
		return response.FailWithCodeAndMessage(c, constants.CodeServiceUnavailable, "Datasets not loaded")
	}
	return response.Success(c, readiness)
}
