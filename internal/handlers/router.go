package handlers

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/simone-trubian/audience-proxy/internal/core/domain"
	applog "github.com/simone-trubian/audience-proxy/internal/logger"
)

// NewRouter mounts the generate handler on /api/generate, on the function's own
// path /api/index and on /, so it answers whichever path the platform routes to it.
func NewRouter(h *HTTPHandler, logger *zap.Logger) *echo.Echo {
	if logger == nil {
		logger = zap.NewNop()
	}
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = errorHandler(logger)

	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(applog.NewEchoRequestLogger(logger))
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		LogErrorFunc: func(c echo.Context, err error, stack []byte) error {
			logger.Error("panic recovered",
				zap.Error(err),
				zap.String("request.path", c.Request().URL.Path),
				zap.ByteString("stack", stack),
			)
			return err
		},
	}))

	e.GET("/health", h.HandleHealth)
	e.Any("/api/generate", h.HandleGenerate)
	e.Any("/api/index", h.HandleGenerate)
	e.Any("/", h.HandleGenerate)

	return e
}

// errorHandler renders router errors as {"error": ...}. Anything that is not an
// *echo.HTTPError escaped a handler and becomes the generic 500 with details.
func errorHandler(logger *zap.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var body domain.ErrorResponse
		code := http.StatusInternalServerError

		var he *echo.HTTPError
		if errors.As(err, &he) {
			code = he.Code
			body.Error = http.StatusText(code)
		} else {
			logger.Error("unhandled error",
				zap.Error(err),
				zap.String("request.method", c.Request().Method),
				zap.String("request.path", c.Request().URL.Path),
			)
			body.Error = MsgInternal
			body.Details = err.Error()
		}

		if c.Request().Method == http.MethodHead {
			err = c.NoContent(code)
		} else {
			err = c.JSON(code, body)
		}
		if err != nil {
			logger.Error("failed to send error response", zap.Error(err))
		}
	}
}
