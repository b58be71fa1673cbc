package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"quill/backend/internal/model"
	"quill/backend/internal/service"
)

type SourcesHandler struct {
	sources service.SourceService
	fetcher service.FetchService
}

type createSourceRequest struct {
	Name                string `json:"name"`
	URL                 string `json:"url"`
	PollIntervalSeconds int64  `json:"pollIntervalSeconds"`
	FullText            bool   `json:"fullText"`
}

type setActiveRequest struct {
	Active bool `json:"active"`
}

type sourceResponse struct {
	ID                  string           `json:"id"`
	Name                string           `json:"name"`
	URL                 string           `json:"url"`
	Kind                model.SourceKind `json:"kind"`
	Active              bool             `json:"active"`
	PollIntervalSeconds int64            `json:"pollIntervalSeconds"`
	FullText            bool             `json:"fullText"`
	LastPolledAt        *string          `json:"lastPolledAt,omitempty"`
	ErrorMessage        *string          `json:"errorMessage,omitempty"`
	CreatedAt           string           `json:"createdAt"`
	UpdatedAt           string           `json:"updatedAt"`
}

func NewSourcesHandler(sources service.SourceService, fetcher service.FetchService) *SourcesHandler {
	return &SourcesHandler{sources: sources, fetcher: fetcher}
}

func (h *SourcesHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/sources", h.List)
	g.POST("/sources", h.Create)
	g.PUT("/sources/:id/active", h.SetActive)
	g.POST("/sources/:id/fetch", h.Fetch)
}

// List returns every registered source.
// @Summary List sources
// @Tags sources
// @Produce json
// @Success 200 {array} sourceResponse
// @Router /sources [get]
func (h *SourcesHandler) List(c echo.Context) error {
	sources, err := h.sources.List(c.Request().Context())
	if err != nil {
		return writeServiceError(c, err)
	}
	response := make([]sourceResponse, 0, len(sources))
	for _, source := range sources {
		response = append(response, toSourceResponse(source))
	}
	return c.JSON(http.StatusOK, response)
}

// Create registers a new feed source.
// @Summary Add a source
// @Description Register an RSS/Atom feed to poll
// @Tags sources
// @Accept json
// @Produce json
// @Param source body createSourceRequest true "Source creation request"
// @Success 201 {object} sourceResponse
// @Failure 400 {object} errorResponse
// @Failure 409 {object} errorResponse
// @Router /sources [post]
func (h *SourcesHandler) Create(c echo.Context) error {
	var req createSourceRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	}
	source, err := h.sources.Add(c.Request().Context(), service.SourceInput{
		Name:         req.Name,
		URL:          req.URL,
		PollInterval: time.Duration(req.PollIntervalSeconds) * time.Second,
		FullText:     req.FullText,
	})
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusCreated, toSourceResponse(source))
}

// SetActive enables or disables polling of a source.
// @Summary Toggle a source
// @Tags sources
// @Accept json
// @Produce json
// @Param id path string true "Source ID"
// @Param request body setActiveRequest true "Active flag"
// @Success 200 {object} sourceResponse
// @Failure 404 {object} errorResponse
// @Router /sources/{id}/active [put]
func (h *SourcesHandler) SetActive(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	}
	var req setActiveRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	}
	source, err := h.sources.SetActive(c.Request().Context(), id, req.Active)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, toSourceResponse(source))
}

// Fetch polls one source now.
// @Summary Fetch a source
// @Description Poll a single source immediately
// @Tags sources
// @Produce json
// @Param id path string true "Source ID"
// @Success 200 {object} service.FetchSummary
// @Failure 404 {object} errorResponse
// @Failure 502 {object} errorResponse
// @Router /sources/{id}/fetch [post]
func (h *SourcesHandler) Fetch(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	}
	summary, err := h.fetcher.FetchSource(c.Request().Context(), id)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, summary)
}

func toSourceResponse(source model.FeedSource) sourceResponse {
	return sourceResponse{
		ID:                  idToString(source.ID),
		Name:                source.Name,
		URL:                 source.URL,
		Kind:                source.Kind,
		Active:              source.Active,
		PollIntervalSeconds: int64(source.PollInterval / time.Second),
		FullText:            source.FullText,
		LastPolledAt:        formatTimePtr(source.LastPolledAt),
		ErrorMessage:        source.ErrorMessage,
		CreatedAt:           formatTime(source.CreatedAt),
		UpdatedAt:           formatTime(source.UpdatedAt),
	}
}
