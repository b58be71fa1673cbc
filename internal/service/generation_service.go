package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"quill/backend/internal/content"
	"quill/backend/internal/logger"
	"quill/backend/internal/metrics"
	"quill/backend/internal/model"
	"quill/backend/internal/repository"
	"quill/backend/internal/service/ai"
	"quill/backend/internal/task"
)

// errEmptyReply marks a reply with no usable body.
var errEmptyReply = errors.New("empty provider reply")

const (
	modeSingle   = "single"
	modeCombined = "combined"
)

// ProviderFactory builds the provider for a resolved configuration.
type ProviderFactory func(cfg ai.Config) (ai.Provider, error)

type GenerationSummary struct {
	Processed int `json:"processed"`
	Errors    int `json:"errors"`
}

type GenerationService interface {
	// GenerateItem rewrites one pending item. On failure the item is back in
	// pending and the error wraps ErrGenerationFailed.
	GenerateItem(ctx context.Context, id int64) (model.FetchedItem, error)
	// GenerateCombined merges several pending items into one article stored on
	// the first id. The others become absorbed into it.
	GenerateCombined(ctx context.Context, ids []int64) (model.FetchedItem, error)
	// GenerateBatch sweeps up to limit pending items, oldest fetched first.
	GenerateBatch(ctx context.Context, limit int) (GenerationSummary, error)
}

type generationService struct {
	items        repository.FetchedItemRepository
	tx           repository.Transactor
	settings     SettingsService
	newProvider  ProviderFactory
	rateLimiter  *ai.RateLimiter
	timeout      time.Duration
	workers      int
	defaultBatch int
	now          func() time.Time
}

func NewGenerationService(
	items repository.FetchedItemRepository,
	tx repository.Transactor,
	settings SettingsService,
	rateLimiter *ai.RateLimiter,
	newProvider ProviderFactory,
	timeout time.Duration,
	workers int,
	defaultBatch int,
) GenerationService {
	if newProvider == nil {
		newProvider = ai.NewProvider
	}
	if rateLimiter == nil {
		rateLimiter = ai.NewRateLimiter(ai.DefaultRateLimit)
	}
	if timeout <= 0 {
		timeout = 120 * time.Second
	}
	return &generationService{
		items:        items,
		tx:           tx,
		settings:     settings,
		newProvider:  newProvider,
		rateLimiter:  rateLimiter,
		timeout:      timeout,
		workers:      workers,
		defaultBatch: defaultBatch,
		now:          time.Now,
	}
}

func (s *generationService) GenerateItem(ctx context.Context, id int64) (model.FetchedItem, error) {
	item, err := s.items.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.FetchedItem{}, ErrNotFound
		}
		return model.FetchedItem{}, err
	}
	if _, err := model.Transition(item.Status, model.EventGenerationStarted); err != nil {
		return model.FetchedItem{}, fmt.Errorf("%w: item %d is %s", ErrStatusConflict, id, item.Status)
	}

	provider, language, err := s.provider(ctx)
	if err != nil {
		return model.FetchedItem{}, err
	}
	if err := s.generateOne(ctx, provider, language, item); err != nil {
		return model.FetchedItem{}, err
	}
	return s.items.GetByID(ctx, id)
}

func (s *generationService) GenerateCombined(ctx context.Context, ids []int64) (model.FetchedItem, error) {
	ids = uniqueIDs(ids)
	if len(ids) < 2 {
		return model.FetchedItem{}, fmt.Errorf("%w: combine needs at least two items", ErrInvalid)
	}
	items, err := s.items.GetByIDs(ctx, ids)
	if err != nil {
		return model.FetchedItem{}, err
	}
	if len(items) != len(ids) {
		return model.FetchedItem{}, ErrNotFound
	}
	for _, item := range items {
		if item.Status != model.StatusPending {
			return model.FetchedItem{}, fmt.Errorf("%w: item %d is %s", ErrStatusConflict, item.ID, item.Status)
		}
	}

	provider, language, err := s.provider(ctx)
	if err != nil {
		return model.FetchedItem{}, err
	}

	var claimed []int64
	for _, id := range ids {
		ok, err := s.items.TransitionStatus(ctx, id, model.StatusPending, model.StatusProcessing)
		if err != nil || !ok {
			s.release(ctx, claimed)
			if err != nil {
				return model.FetchedItem{}, err
			}
			return model.FetchedItem{}, fmt.Errorf("%w: item %d", ErrStatusConflict, id)
		}
		claimed = append(claimed, id)
	}

	sources := make([]ai.SourceArticle, len(items))
	for i, item := range items {
		sources[i] = sourceArticle(item)
	}

	generated, err := s.generate(ctx, provider, language, sources)
	if err != nil {
		s.release(ctx, claimed)
		metrics.GenerationAttempts.WithLabelValues(modeCombined, metrics.ResultFailed).Inc()
		logger.Warn("combined generation failed", "module", "service", "action", "generate", "resource", "item", "result", "failed", "item_ids", ids, "provider", provider.Name(), "error", err)
		return model.FetchedItem{}, fmt.Errorf("%w: %v", ErrGenerationFailed, err)
	}

	primary, rest := ids[0], ids[1:]
	err = s.tx.WithinTx(ctx, func(repos repository.Repositories) error {
		ok, err := repos.Items.SaveGenerated(ctx, primary, generated, s.now())
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("%w: item %d", ErrStatusConflict, primary)
		}
		absorbed, err := repos.Items.MarkAbsorbed(ctx, rest, primary)
		if err != nil {
			return err
		}
		if absorbed != int64(len(rest)) {
			return fmt.Errorf("%w: absorbed %d of %d items", ErrStatusConflict, absorbed, len(rest))
		}
		return nil
	})
	if err != nil {
		// The transaction rolled back. A primary that changed hands is not
		// ours to release, the secondaries still are.
		if errors.Is(err, ErrStatusConflict) {
			s.release(ctx, rest)
		} else {
			s.release(ctx, claimed)
		}
		metrics.GenerationAttempts.WithLabelValues(modeCombined, metrics.ResultFailed).Inc()
		return model.FetchedItem{}, err
	}

	metrics.GenerationAttempts.WithLabelValues(modeCombined, metrics.ResultSuccess).Inc()
	logger.Info("combined generation saved", "module", "service", "action", "generate", "resource", "item", "result", "ok", "item_id", primary, "absorbed", len(rest))
	return s.items.GetByID(ctx, primary)
}

func (s *generationService) GenerateBatch(ctx context.Context, limit int) (GenerationSummary, error) {
	if limit <= 0 {
		limit = s.defaultBatch
	}
	pending, err := s.items.ListByStatus(ctx, model.StatusPending, repository.OrderFetchedAsc, limit)
	if err != nil {
		return GenerationSummary{}, fmt.Errorf("list pending items: %w", err)
	}
	if len(pending) == 0 {
		return GenerationSummary{}, nil
	}

	provider, language, err := s.provider(ctx)
	if err != nil {
		return GenerationSummary{}, err
	}

	report := task.Run(ctx, task.Options{Name: "generate", Concurrency: s.workers}, pending,
		func(ctx context.Context, item model.FetchedItem) error {
			return s.generateOne(ctx, provider, language, item)
		})

	var summary GenerationSummary
	for _, r := range report.Results {
		switch {
		case r.Err == nil:
			summary.Processed++
		case errors.Is(r.Err, ErrStatusConflict):
			// Claimed by a concurrent run.
		default:
			summary.Errors++
		}
	}
	logger.Info("generation sweep finished", "module", "service", "action", "generate", "resource", "item", "result", "ok", "run_id", report.RunID, "candidates", len(pending), "processed", summary.Processed, "errors", summary.Errors)
	return summary, nil
}

// generateOne claims item, calls the provider and stores the result. Failures
// return the item to pending.
func (s *generationService) generateOne(ctx context.Context, provider ai.Provider, language string, item model.FetchedItem) error {
	ok, err := s.items.TransitionStatus(ctx, item.ID, model.StatusPending, model.StatusProcessing)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: item %d", ErrStatusConflict, item.ID)
	}

	generated, err := s.generate(ctx, provider, language, []ai.SourceArticle{sourceArticle(item)})
	if err != nil {
		s.release(ctx, []int64{item.ID})
		metrics.GenerationAttempts.WithLabelValues(modeSingle, metrics.ResultFailed).Inc()
		logger.Warn("generation failed", "module", "service", "action", "generate", "resource", "item", "result", "failed", "item_id", item.ID, "provider", provider.Name(), "model", provider.Model(), "error", err)
		return fmt.Errorf("%w: %v", ErrGenerationFailed, err)
	}

	saved, err := s.items.SaveGenerated(ctx, item.ID, generated, s.now())
	if err != nil {
		s.release(ctx, []int64{item.ID})
		return fmt.Errorf("save generated item %d: %w", item.ID, err)
	}
	if !saved {
		return fmt.Errorf("%w: item %d", ErrStatusConflict, item.ID)
	}

	metrics.GenerationAttempts.WithLabelValues(modeSingle, metrics.ResultSuccess).Inc()
	logger.Info("generation saved", "module", "service", "action", "generate", "resource", "item", "result", "ok", "item_id", item.ID, "provider", provider.Name(), "model", provider.Model())
	return nil
}

func (s *generationService) generate(ctx context.Context, provider ai.Provider, language string, sources []ai.SourceArticle) (model.Generated, error) {
	if err := s.rateLimiter.Wait(ctx); err != nil {
		return model.Generated{}, fmt.Errorf("rate limit wait: %w", err)
	}

	callCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	reply, err := provider.Complete(callCtx, ai.NewGenerationRequest(provider.Model(), language, sources))
	if err != nil {
		return model.Generated{}, err
	}

	generated, ok := ai.ParseReply(reply)
	if !ok {
		return model.Generated{}, errEmptyReply
	}
	generated.Body = strings.TrimSpace(content.SanitizeHTML(generated.Body))
	if content.PlainText(generated.Body) == "" {
		return model.Generated{}, errEmptyReply
	}
	return generated, nil
}

func (s *generationService) provider(ctx context.Context) (ai.Provider, string, error) {
	cfg, language, err := s.settings.AIConfig(ctx)
	if err != nil {
		return nil, "", err
	}
	provider, err := s.newProvider(cfg)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrProviderNotConfigured, err)
	}
	return provider, language, nil
}

// release returns claimed items to pending. It runs detached from ctx so a
// cancelled run still gives its items back.
func (s *generationService) release(ctx context.Context, ids []int64) {
	ctx = context.WithoutCancel(ctx)
	for _, id := range ids {
		if _, err := s.items.TransitionStatus(ctx, id, model.StatusProcessing, model.StatusPending); err != nil {
			logger.Error("release item failed", "module", "service", "action", "generate", "resource", "item", "result", "failed", "item_id", id, "error", err)
		}
	}
}

func sourceArticle(item model.FetchedItem) ai.SourceArticle {
	src := ai.SourceArticle{}
	if item.OriginalTitle != nil {
		src.Title = *item.OriginalTitle
	}
	switch {
	case item.OriginalBody != nil && *item.OriginalBody != "":
		src.Body = *item.OriginalBody
	case item.OriginalExcerpt != nil:
		src.Body = *item.OriginalExcerpt
	}
	return src
}

func uniqueIDs(ids []int64) []int64 {
	seen := make(map[int64]bool, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if id <= 0 || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}
