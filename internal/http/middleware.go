package http

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"quill/backend/internal/logger"
	"quill/backend/internal/metrics"
)

// RequestLoggerMiddleware logs every request and counts it by route.
// Server errors log at ERROR, client errors at WARN, the rest at DEBUG.
func RequestLoggerMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			if err := next(c); err != nil {
				c.Error(err)
			}

			req := c.Request()
			status := c.Response().Status
			route := c.Path()
			if route == "" {
				route = "unmatched"
			}
			metrics.HTTPRequests.WithLabelValues(req.Method, route, strconv.Itoa(status)).Inc()

			log := logger.Debug
			result := "ok"
			switch {
			case status >= 500:
				log, result = logger.Error, "failed"
			case status >= 400:
				log, result = logger.Warn, "failed"
			}
			log("http request",
				"module", "http",
				"action", "request",
				"resource", "http",
				"result", result,
				"method", req.Method,
				"path", req.URL.Path,
				"route", route,
				"status_code", status,
				"duration_ms", time.Since(start).Milliseconds(),
				"remote_ip", c.RealIP(),
				"user_agent", req.UserAgent(),
			)
			return nil
		}
	}
}
