package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"quill/backend/internal/logger"
	"quill/backend/internal/model"
	"quill/backend/internal/repository"
)

const (
	defaultListLimit = 50
	maxListLimit     = 200
)

// ReviewService exposes items to the operator and applies the manual moves
// between approved and rejected.
type ReviewService interface {
	List(ctx context.Context, status model.ItemStatus, limit int) ([]model.FetchedItem, error)
	Get(ctx context.Context, id int64) (model.FetchedItem, error)
	Counts(ctx context.Context) (map[model.ItemStatus]int, error)
	Reject(ctx context.Context, id int64) (model.FetchedItem, error)
	Reapprove(ctx context.Context, id int64) (model.FetchedItem, error)
}

type reviewService struct {
	items repository.FetchedItemRepository
}

func NewReviewService(items repository.FetchedItemRepository) ReviewService {
	return &reviewService{items: items}
}

func (s *reviewService) List(ctx context.Context, status model.ItemStatus, limit int) ([]model.FetchedItem, error) {
	if !status.Valid() {
		return nil, ErrInvalid
	}
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}

	// Queues list in the order the pipeline consumes them.
	order := repository.OrderFetchedDesc
	switch status {
	case model.StatusPending:
		order = repository.OrderFetchedAsc
	case model.StatusApproved:
		order = repository.OrderProcessedAsc
	}
	return s.items.ListByStatus(ctx, status, order, limit)
}

func (s *reviewService) Get(ctx context.Context, id int64) (model.FetchedItem, error) {
	item, err := s.items.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.FetchedItem{}, ErrNotFound
		}
		return model.FetchedItem{}, err
	}
	return item, nil
}

func (s *reviewService) Counts(ctx context.Context) (map[model.ItemStatus]int, error) {
	return s.items.CountByStatus(ctx)
}

func (s *reviewService) Reject(ctx context.Context, id int64) (model.FetchedItem, error) {
	return s.apply(ctx, id, model.EventRejected)
}

func (s *reviewService) Reapprove(ctx context.Context, id int64) (model.FetchedItem, error) {
	return s.apply(ctx, id, model.EventReapproved)
}

func (s *reviewService) apply(ctx context.Context, id int64, event model.Event) (model.FetchedItem, error) {
	item, err := s.Get(ctx, id)
	if err != nil {
		return model.FetchedItem{}, err
	}
	next, err := model.Transition(item.Status, event)
	if err != nil {
		return model.FetchedItem{}, fmt.Errorf("%w: cannot apply %s to %s item", ErrStatusConflict, event, item.Status)
	}

	ok, err := s.items.TransitionStatus(ctx, id, item.Status, next)
	if err != nil {
		return model.FetchedItem{}, err
	}
	if !ok {
		return model.FetchedItem{}, fmt.Errorf("%w: item %d", ErrStatusConflict, id)
	}

	logger.Info("item reviewed", "module", "service", "action", event.String(), "resource", "item", "result", "ok", "item_id", id, "from", item.Status.String(), "to", next.String())
	item.Status = next
	return item, nil
}
