package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"quill/backend/internal/content"
	"quill/backend/internal/logger"
	"quill/backend/internal/metrics"
	"quill/backend/internal/model"
	"quill/backend/internal/repository"
	"quill/backend/internal/service/ai"
)

// PostOrigin tags posts created from fetched items.
const PostOrigin = "aggregator"

const (
	TriggerManual = "manual"
	TriggerAuto   = "auto"
)

type PublishTarget struct {
	AuthorID   int64 `json:"authorId"`
	CategoryID int64 `json:"categoryId"`
}

type PublishService interface {
	// Publish turns an approved item into a published post. The post and the
	// item transition commit together or not at all.
	Publish(ctx context.Context, item model.FetchedItem, target PublishTarget) (model.Post, error)
	PublishByID(ctx context.Context, id int64, target PublishTarget) (model.Post, error)
}

type publishService struct {
	items repository.FetchedItemRepository
	tx    repository.Transactor
	now   func() time.Time
}

func NewPublishService(items repository.FetchedItemRepository, tx repository.Transactor) PublishService {
	return &publishService{items: items, tx: tx, now: time.Now}
}

func (s *publishService) PublishByID(ctx context.Context, id int64, target PublishTarget) (model.Post, error) {
	item, err := s.items.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Post{}, ErrNotFound
		}
		return model.Post{}, err
	}
	post, err := s.Publish(ctx, item, target)
	metrics.Publishes.WithLabelValues(TriggerManual, metrics.Result(err)).Inc()
	return post, err
}

func (s *publishService) Publish(ctx context.Context, item model.FetchedItem, target PublishTarget) (model.Post, error) {
	if target.AuthorID <= 0 || target.CategoryID <= 0 {
		return model.Post{}, fmt.Errorf("%w: author and category are required", ErrInvalid)
	}
	if _, err := model.Transition(item.Status, model.EventPublished); err != nil || !item.HasGeneratedBody() {
		return model.Post{}, fmt.Errorf("%w: item %d is %s", ErrNotPublishable, item.ID, item.Status)
	}

	now := s.now().UTC()
	post := buildPost(item, target, now)

	var created model.Post
	err := s.tx.WithinTx(ctx, func(repos repository.Repositories) error {
		var err error
		created, err = repos.Posts.Create(ctx, post)
		if errors.Is(err, repository.ErrSlugExists) {
			post.Slug = fmt.Sprintf("%s-%d", post.Slug, now.Unix())
			created, err = repos.Posts.Create(ctx, post)
		}
		if err != nil {
			if errors.Is(err, repository.ErrSlugExists) {
				return fmt.Errorf("%w: slug %q", ErrConflict, post.Slug)
			}
			return err
		}

		ok, err := repos.Items.MarkPublished(ctx, item.ID, created.ID)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("%w: item %d", ErrStatusConflict, item.ID)
		}
		return nil
	})
	if err != nil {
		logger.Warn("publish failed", "module", "service", "action", "publish", "resource", "item", "result", "failed", "item_id", item.ID, "error", err)
		return model.Post{}, err
	}

	logger.Info("item published", "module", "service", "action", "publish", "resource", "post", "result", "ok", "item_id", item.ID, "post_id", created.ID, "slug", created.Slug)
	return created, nil
}

func buildPost(item model.FetchedItem, target PublishTarget, now time.Time) model.Post {
	title := item.Title()
	if title == "" {
		title = ai.DefaultTitle
	}
	var excerpt string
	switch {
	case item.GeneratedExcerpt != nil && *item.GeneratedExcerpt != "":
		excerpt = *item.GeneratedExcerpt
	case item.OriginalExcerpt != nil:
		excerpt = *item.OriginalExcerpt
	}

	return model.Post{
		Title:       title,
		Slug:        content.Slugify(title),
		Excerpt:     excerpt,
		Body:        *item.GeneratedBody,
		Status:      model.PostStatusPublished,
		PublishedAt: &now,
		AuthorID:    target.AuthorID,
		CategoryID:  target.CategoryID,
		Metadata: model.PostMetadata{
			Origin:        PostOrigin,
			FetchedItemID: item.ID,
			SourceURL:     item.URL,
			Keywords:      []string{},
		},
	}
}
