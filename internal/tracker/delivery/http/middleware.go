package http

import (
	"context"

	"golang-portfolio-sentiment/pkg/logger"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// RequestID assigns a request id and stores it in the request context for logging.
func RequestID() echo.MiddlewareFunc {
	return middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		RequestIDHandler: func(c echo.Context, id string) {
			ctx := context.WithValue(c.Request().Context(), logger.RequestIDKey, id)
			c.SetRequest(c.Request().WithContext(ctx))
		},
	})
}
