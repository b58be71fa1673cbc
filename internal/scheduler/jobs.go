package scheduler

import (
	"context"

	"quill/backend/internal/config"
	"quill/backend/internal/service"
)

const (
	JobFetch       = "fetch"
	JobGenerate    = "generate"
	JobAutoPublish = "autopublish"
)

// PipelineJobs wires the fetch, generate and auto-publish steps. A fetch that
// inserted new items starts a generation sweep right away.
func PipelineJobs(cfg config.Config, fetch service.FetchService, generation service.GenerationService, autoPublish service.AutoPublishService) []Job {
	return []Job{
		{
			Name:     JobFetch,
			Interval: cfg.FetchSchedule.Interval,
			Offset:   cfg.FetchSchedule.Offset,
			Timeout:  cfg.FetchSchedule.Timeout,
			Run: func(ctx context.Context, trigger string) (any, error) {
				// Manual polls ignore per-source intervals.
				return fetch.FetchAll(ctx, service.FetchOptions{Force: trigger == TriggerManual})
			},
			Next: JobGenerate,
			Cascade: func(summary any) bool {
				s, ok := summary.(service.FetchSummary)
				return ok && s.NewItemsCreated > 0
			},
		},
		{
			Name:     JobGenerate,
			Interval: cfg.GenerateSchedule.Interval,
			Offset:   cfg.GenerateSchedule.Offset,
			Timeout:  cfg.GenerateSchedule.Timeout,
			Run: func(ctx context.Context, trigger string) (any, error) {
				return generation.GenerateBatch(ctx, cfg.GenerationBatch)
			},
		},
		{
			Name:     JobAutoPublish,
			Interval: cfg.PublishSchedule.Interval,
			Offset:   cfg.PublishSchedule.Offset,
			Timeout:  cfg.PublishSchedule.Timeout,
			Run: func(ctx context.Context, trigger string) (any, error) {
				return autoPublish.Run(ctx)
			},
		},
	}
}
