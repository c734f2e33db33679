package handler

import (
	"errors"

	"github.com/labstack/echo/v4"

	"github.com/benedict-erwin/agency-console/internal/constants"
	"github.com/benedict-erwin/agency-console/internal/services/sandbox"
	"github.com/benedict-erwin/agency-console/pkg/logger"
	"github.com/benedict-erwin/agency-console/pkg/response"
)

// ListRecords serves one page of a screen's records
func ListRecords(screen string) echo.HandlerFunc {
	return func(c echo.Context) error {
		var q sandbox.Query

		if err := c.Bind(&q); err != nil {
			return response.FailWithCodeAndMessage(c, constants.CodeInvalidParameter,
				"page and per_page must be positive integers")
		}
		if err := c.Validate(&q); err != nil {
			return response.FailWithCodeAndMessage(c, constants.CodeValidationFailed, err.Error())
		}

		page, err := sandbox.List(screen, q)
		if err != nil {
			return failSandbox(c, screen, err)
		}
		return response.Success(c, page)
	}
}

// ListStatuses serves the status choices of the screen named in the path
func ListStatuses(c echo.Context) error {
	screen := c.Param("screen")

	statuses, err := sandbox.Statuses(screen)
	if err != nil {
		return failSandbox(c, screen, err)
	}
	return response.Success(c, statuses)
}

// failSandbox maps sandbox errors onto the response envelope
func failSandbox(c echo.Context, screen string, err error) error {
	var queryErr *sandbox.QueryError
	switch {
	case errors.As(err, &queryErr):
		return response.FailWithCodeAndMessage(c, queryErr.Code, queryErr.Message)
	case errors.Is(err, sandbox.ErrUnknownScreen):
		return response.FailWithCode(c, constants.CodeScreenNotFound)
	case errors.Is(err, sandbox.ErrNotInitialized):
		return response.FailWithCode(c, constants.CodeServiceUnavailable)
	}

	logger.WithScope("ListRecords").Error().
		Err(err).
		Str("screen", screen).
		Str("request_id", constants.GetRequestID(c)).
		Msg("Sandbox query failed")
	return response.FailWithCode(c, constants.CodeInternalError)
}
