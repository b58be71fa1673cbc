package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"quill/backend/internal/logger"
	"quill/backend/internal/scheduler"
	"quill/backend/internal/service"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeServiceError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, service.ErrInvalid):
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	case errors.Is(err, service.ErrNotFound), errors.Is(err, scheduler.ErrUnknownJob):
		return c.JSON(http.StatusNotFound, errorResponse{Error: "resource not found"})
	case errors.Is(err, service.ErrConflict):
		return c.JSON(http.StatusConflict, errorResponse{Error: "conflict"})
	case errors.Is(err, service.ErrStatusConflict):
		return c.JSON(http.StatusConflict, errorResponse{Error: "item status does not allow this action"})
	case errors.Is(err, scheduler.ErrJobBusy):
		return c.JSON(http.StatusConflict, errorResponse{Error: "job already running"})
	case errors.Is(err, service.ErrNotPublishable):
		return c.JSON(http.StatusUnprocessableEntity, errorResponse{Error: "item is not publishable"})
	case errors.Is(err, service.ErrFeedFetch):
		return c.JSON(http.StatusBadGateway, errorResponse{Error: err.Error()})
	case errors.Is(err, service.ErrGenerationFailed):
		return c.JSON(http.StatusBadGateway, errorResponse{Error: err.Error()})
	case errors.Is(err, scheduler.ErrStopped):
		return c.JSON(http.StatusServiceUnavailable, errorResponse{Error: "shutting down"})
	case errors.Is(err, service.ErrProviderNotConfigured):
		return c.JSON(http.StatusServiceUnavailable, errorResponse{Error: "ai provider not configured"})
	default:
		logger.Error("request failed", "module", "handler", "action", "request", "resource", "http", "result", "failed",
			"method", c.Request().Method, "path", c.Request().URL.Path, "error", err)
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}
}
