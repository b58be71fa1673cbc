package service

import (
	"context"
	"fmt"
	"time"

	"quill/backend/internal/config"
	"quill/backend/internal/logger"
	"quill/backend/internal/metrics"
	"quill/backend/internal/model"
	"quill/backend/internal/repository"
)

// Skip reasons reported by an auto-publish run that published nothing on purpose.
const (
	SkipDisabled        = "disabled"
	SkipMissingDefaults = "missing_defaults"
	SkipQuotaExhausted  = "quota_exhausted"
)

const rollingWindow = 24 * time.Hour

type PublishSummary struct {
	Published  int    `json:"published"`
	Errors     int    `json:"errors"`
	SkipReason string `json:"skipReason,omitempty"`
}

type AutoPublishService interface {
	// Run loads the publishing settings once and publishes up to the quota
	// of approved items, oldest processed first.
	Run(ctx context.Context) (PublishSummary, error)
}

type autoPublishService struct {
	publishing repository.PublishingSettingsRepository
	items      repository.FetchedItemRepository
	posts      repository.PostRepository
	publisher  PublishService
	window     string
	now        func() time.Time
}

func NewAutoPublishService(
	publishing repository.PublishingSettingsRepository,
	items repository.FetchedItemRepository,
	posts repository.PostRepository,
	publisher PublishService,
	window string,
) AutoPublishService {
	if window == "" {
		window = config.QuotaWindowInvocation
	}
	return &autoPublishService{
		publishing: publishing,
		items:      items,
		posts:      posts,
		publisher:  publisher,
		window:     window,
		now:        time.Now,
	}
}

func (s *autoPublishService) Run(ctx context.Context) (PublishSummary, error) {
	settings, err := s.publishing.GetOrCreate(ctx)
	if err != nil {
		return PublishSummary{}, fmt.Errorf("load publishing settings: %w", err)
	}
	return s.apply(ctx, settings)
}

func (s *autoPublishService) apply(ctx context.Context, settings model.PublishingSettings) (PublishSummary, error) {
	if !settings.AutoPublish {
		logger.Debug("auto publish disabled", "module", "service", "action", "publish", "resource", "item", "result", "skipped")
		return PublishSummary{SkipReason: SkipDisabled}, nil
	}
	if !settings.HasDefaults() {
		logger.Warn("auto publish skipped", "module", "service", "action", "publish", "resource", "item", "result", "skipped", "reason", SkipMissingDefaults)
		return PublishSummary{SkipReason: SkipMissingDefaults}, nil
	}

	quota, err := s.remainingQuota(ctx, settings.DailyQuota)
	if err != nil {
		return PublishSummary{}, err
	}
	if quota <= 0 {
		return PublishSummary{SkipReason: SkipQuotaExhausted}, nil
	}

	candidates, err := s.items.ListByStatus(ctx, model.StatusApproved, repository.OrderProcessedAsc, quota)
	if err != nil {
		return PublishSummary{}, fmt.Errorf("list approved items: %w", err)
	}

	target := PublishTarget{AuthorID: *settings.DefaultAuthorID, CategoryID: *settings.DefaultCategoryID}
	var summary PublishSummary
	for _, item := range candidates {
		if ctx.Err() != nil {
			break
		}
		_, err := s.publisher.Publish(ctx, item, target)
		metrics.Publishes.WithLabelValues(TriggerAuto, metrics.Result(err)).Inc()
		if err != nil {
			summary.Errors++
			continue
		}
		summary.Published++
	}

	logger.Info("auto publish finished", "module", "service", "action", "publish", "resource", "item", "result", "ok",
		"quota", quota, "candidates", len(candidates), "published", summary.Published, "errors", summary.Errors)
	return summary, nil
}

// remainingQuota applies the configured window. The invocation window grants
// the full quota on every run; the rolling one subtracts the last 24 hours.
func (s *autoPublishService) remainingQuota(ctx context.Context, quota int) (int, error) {
	if s.window != config.QuotaWindowRolling || quota <= 0 {
		return quota, nil
	}
	published, err := s.posts.CountPublishedSince(ctx, s.now().Add(-rollingWindow))
	if err != nil {
		return 0, err
	}
	return quota - published, nil
}
