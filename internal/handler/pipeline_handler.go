package handler

import (
	"context"
	"net/http"
	"sort"

	"github.com/labstack/echo/v4"

	"quill/backend/internal/scheduler"
	"quill/backend/internal/task"
)

// PipelineRunner runs pipeline jobs on demand and reports their latest runs.
type PipelineRunner interface {
	RunNow(ctx context.Context, name, trigger string) (any, error)
	Tracker() *task.Tracker
}

type PipelineHandler struct {
	runner PipelineRunner
}

func NewPipelineHandler(runner PipelineRunner) *PipelineHandler {
	return &PipelineHandler{runner: runner}
}

func (h *PipelineHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/pipeline/fetch", h.Fetch)
	g.POST("/pipeline/generate", h.Generate)
	g.POST("/pipeline/autopublish", h.AutoPublish)
	g.GET("/pipeline/runs", h.Runs)
}

// Fetch polls every active source now.
// @Summary Run the feed fetcher
// @Description Poll all active sources regardless of their poll interval
// @Tags pipeline
// @Produce json
// @Success 200 {object} service.FetchSummary
// @Failure 409 {object} errorResponse
// @Router /pipeline/fetch [post]
func (h *PipelineHandler) Fetch(c echo.Context) error {
	return h.run(c, scheduler.JobFetch)
}

// Generate sweeps pending items through the AI provider.
// @Summary Run the generation sweep
// @Description Rewrite up to the configured batch of pending items
// @Tags pipeline
// @Produce json
// @Success 200 {object} service.GenerationSummary
// @Failure 409 {object} errorResponse
// @Failure 503 {object} errorResponse
// @Router /pipeline/generate [post]
func (h *PipelineHandler) Generate(c echo.Context) error {
	return h.run(c, scheduler.JobGenerate)
}

// AutoPublish publishes approved items up to the daily quota.
// @Summary Run auto-publish
// @Description Publish approved items according to the publishing settings
// @Tags pipeline
// @Produce json
// @Success 200 {object} service.PublishSummary
// @Failure 409 {object} errorResponse
// @Router /pipeline/autopublish [post]
func (h *PipelineHandler) AutoPublish(c echo.Context) error {
	return h.run(c, scheduler.JobAutoPublish)
}

// Runs lists the latest run of every job.
// @Summary List pipeline runs
// @Description Get the most recent run of each pipeline job
// @Tags pipeline
// @Produce json
// @Success 200 {array} task.RunRecord
// @Router /pipeline/runs [get]
func (h *PipelineHandler) Runs(c echo.Context) error {
	runs := h.runner.Tracker().Latest()
	sort.Slice(runs, func(i, j int) bool { return runs[i].Job < runs[j].Job })
	return c.JSON(http.StatusOK, runs)
}

func (h *PipelineHandler) run(c echo.Context, job string) error {
	summary, err := h.runner.RunNow(c.Request().Context(), job, scheduler.TriggerManual)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, summary)
}
