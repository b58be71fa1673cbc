package http

import (
	"context"
	nethttp "net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "quill/backend/docs"
	"quill/backend/internal/handler"
	"quill/backend/internal/metrics"
)

// Pinger reports whether the backing store is reachable.
type Pinger interface {
	PingContext(ctx context.Context) error
}

type healthResponse struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

func NewRouter(
	pipelineHandler *handler.PipelineHandler,
	itemsHandler *handler.ItemsHandler,
	sourcesHandler *handler.SourcesHandler,
	settingsHandler *handler.SettingsHandler,
	db Pinger,
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(middleware.Recover())
	e.Use(RequestLoggerMiddleware())

	e.GET("/healthz", healthz(db))
	e.GET("/metrics", echo.WrapHandler(metrics.Handler()))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")
	pipelineHandler.RegisterRoutes(api)
	itemsHandler.RegisterRoutes(api)
	sourcesHandler.RegisterRoutes(api)
	settingsHandler.RegisterRoutes(api)

	return e
}

func healthz(db Pinger) echo.HandlerFunc {
	return func(c echo.Context) error {
		if db != nil {
			if err := db.PingContext(c.Request().Context()); err != nil {
				return c.JSON(nethttp.StatusServiceUnavailable, healthResponse{Status: "unavailable", Error: err.Error()})
			}
		}
		return c.JSON(nethttp.StatusOK, healthResponse{Status: "ok"})
	}
}
