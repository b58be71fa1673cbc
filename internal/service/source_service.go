package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"quill/backend/internal/model"
	"quill/backend/internal/repository"
)

// DefaultPollInterval applies to sources created without an interval.
const DefaultPollInterval = time.Hour

type SourceInput struct {
	Name         string
	URL          string
	PollInterval time.Duration
	FullText     bool
}

type SourceService interface {
	List(ctx context.Context) ([]model.FeedSource, error)
	// Add registers an active source. An already registered URL is ErrConflict.
	Add(ctx context.Context, input SourceInput) (model.FeedSource, error)
	SetActive(ctx context.Context, id int64, active bool) (model.FeedSource, error)
}

type sourceService struct {
	sources repository.FeedSourceRepository
}

func NewSourceService(sources repository.FeedSourceRepository) SourceService {
	return &sourceService{sources: sources}
}

func (s *sourceService) List(ctx context.Context) ([]model.FeedSource, error) {
	return s.sources.List(ctx)
}

func (s *sourceService) Add(ctx context.Context, input SourceInput) (model.FeedSource, error) {
	trimmedURL := strings.TrimSpace(input.URL)
	if !isValidURL(trimmedURL) {
		return model.FeedSource{}, ErrInvalid
	}
	if input.PollInterval < 0 {
		return model.FeedSource{}, fmt.Errorf("%w: poll interval must not be negative", ErrInvalid)
	}
	if existing, err := s.sources.FindByURL(ctx, trimmedURL); err != nil {
		return model.FeedSource{}, fmt.Errorf("check source url: %w", err)
	} else if existing != nil {
		return model.FeedSource{}, ErrConflict
	}

	name := strings.TrimSpace(input.Name)
	if name == "" {
		parsed, _ := url.Parse(trimmedURL)
		name = parsed.Host
	}
	interval := input.PollInterval
	if interval == 0 {
		interval = DefaultPollInterval
	}

	return s.sources.Create(ctx, model.FeedSource{
		Name:         name,
		URL:          trimmedURL,
		Kind:         model.SourceKindFeed,
		Active:       true,
		PollInterval: interval,
		FullText:     input.FullText,
	})
}

func (s *sourceService) SetActive(ctx context.Context, id int64, active bool) (model.FeedSource, error) {
	if err := s.sources.SetActive(ctx, id, active); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.FeedSource{}, ErrNotFound
		}
		return model.FeedSource{}, err
	}
	return s.sources.GetByID(ctx, id)
}

func isValidURL(value string) bool {
	parsed, err := url.ParseRequestURI(value)
	if err != nil {
		return false
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return false
	}
	return parsed.Host != ""
}
