package logging

import (
	"log/slog"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
)

// RequestLogger attaches a request-scoped logger to the context and logs one
// line per completed request, labelled by the interface that served it.
func RequestLogger(base *slog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			l := base.With(
				"method", c.Request().Method,
				"path", c.Request().URL.Path,
				"remote_ip", c.RealIP(),
			)
			if rid := c.Request().Header.Get(echo.HeaderXRequestID); rid != "" {
				l = l.With("request_id", rid)
				c.Response().Header().Set(echo.HeaderXRequestID, rid)
			}

			req := c.Request().WithContext(IntoContext(c.Request().Context(), l))
			c.SetRequest(req)

			msg := "page request"
			if strings.HasPrefix(c.Request().URL.Path, "/api/") {
				msg = "api request"
			}

			start := time.Now()
			err := next(c)
			dur := time.Since(start)
			status := c.Response().Status

			if err != nil {
				c.Echo().HTTPErrorHandler(err, c)
				status = c.Response().Status
			}

			attrs := []any{"status", status, "duration_ms", dur.Milliseconds()}
			switch {
			case err != nil || status >= 500:
				l.Error(msg, append(attrs, "error", err)...)
			case status >= 400:
				l.Warn(msg, attrs...)
			default:
				l.Info(msg, append(attrs, "bytes", c.Response().Size)...)
			}
			return nil
		}
	}
}
