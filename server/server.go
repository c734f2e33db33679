package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/benedict-erwin/agency-console/http/middleware"
	"github.com/benedict-erwin/agency-console/http/registry"
	_ "github.com/benedict-erwin/agency-console/http/v1/route"
	"github.com/benedict-erwin/agency-console/internal/constants"
	"github.com/benedict-erwin/agency-console/pkg/logger"
	"github.com/benedict-erwin/agency-console/pkg/response"
)

// New builds the sandbox echo instance with middleware, error handler and routes
func New() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Logger)

	e.HTTPErrorHandler = func(err error, c echo.Context) {
		httpStatus := http.StatusInternalServerError
		code := constants.CodeInternalError
		message := constants.GetErrorMessage(code)

		var he *echo.HTTPError
		if errors.As(err, &he) {
			httpStatus = he.Code
			code = constants.GetCodeFromHTTPStatus(he.Code)
			if he.Message != nil {
				message = fmt.Sprintf("%v", he.Message)
			} else {
				message = constants.GetErrorMessage(code)
			}
		} else {
			logger.WithScope("httpError").Error().
				Err(err).
				Str("path", c.Request().URL.Path).
				Msg("Unhandled error")
		}

		if !c.Response().Committed {
			_ = response.Fail(c, httpStatus, code, message)
		}
	}

	registry.SetupAllRoutes(e)
	return e
}

// Start serves the sandbox on port until SIGINT or SIGTERM
func Start(port int) error {
	addr := fmt.Sprintf(":%d", port)
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", addr, err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return Serve(ctx, listener)
}

// Serve runs the sandbox on an existing listener until ctx is done, then shuts
// down gracefully
func Serve(ctx context.Context, listener net.Listener) error {
	log := logger.WithScope("startServer")

	e := New()
	e.Listener = listener
	log.Debug().Interface("routes", e.Routes()).Msg("Registered routes")

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", listener.Addr().String()).Msg("Starting sandbox server")
		if err := e.Start(""); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			log.Error().Err(err).Msg("Server failed")
			return err
		}
		return nil
	case <-ctx.Done():
	}

	log.Info().Msg("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server shutdown failed")
		return err
	}

	log.Info().Msg("Server gracefully stopped")
	return nil
}
