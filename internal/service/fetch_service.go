package service

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"sync/atomic"
	"time"
	"unicode/utf8"

	readability "codeberg.org/readeck/go-readability/v2"
	"github.com/mmcdole/gofeed"

	"quill/backend/internal/content"
	"quill/backend/internal/logger"
	"quill/backend/internal/metrics"
	"quill/backend/internal/model"
	"quill/backend/internal/network"
	"quill/backend/internal/repository"
	"quill/backend/internal/task"
)

const (
	// MaxItemsPerSource caps the items taken from one source per run.
	MaxItemsPerSource = 10
	// MaxExcerptRunes bounds the stored original excerpt.
	MaxExcerptRunes = 300
	// fullTextThreshold is the body length below which full-text sources
	// fetch the original page.
	fullTextThreshold = 500
	// storeTimeout bounds each repository write made after the source deadline.
	storeTimeout = 5 * time.Second

	feedAccept = "application/rss+xml, application/atom+xml, application/xml;q=0.9, text/xml;q=0.8, */*;q=0.5"
	pageAccept = "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8"
)

type FetchOptions struct {
	// Force polls every active source. Otherwise only due sources are polled.
	Force bool
}

type FetchSummary struct {
	SourcesPolled   int `json:"sourcesPolled"`
	NewItemsCreated int `json:"newItemsCreated"`
	SourceErrors    int `json:"sourceErrors"`
}

type FetchService interface {
	FetchAll(ctx context.Context, opts FetchOptions) (FetchSummary, error)
	FetchSource(ctx context.Context, sourceID int64) (FetchSummary, error)
}

type fetchService struct {
	sources     repository.FeedSourceRepository
	items       repository.FetchedItemRepository
	clients     *network.ClientFactory
	timeout     time.Duration
	concurrency int
	now         func() time.Time
}

func NewFetchService(sources repository.FeedSourceRepository, items repository.FetchedItemRepository, clients *network.ClientFactory, timeout time.Duration, concurrency int) FetchService {
	if clients == nil {
		clients = network.NewClientFactory(nil)
	}
	if timeout <= 0 {
		timeout = 20 * time.Second
	}
	return &fetchService{
		sources:     sources,
		items:       items,
		clients:     clients,
		timeout:     timeout,
		concurrency: concurrency,
		now:         time.Now,
	}
}

func (s *fetchService) FetchAll(ctx context.Context, opts FetchOptions) (FetchSummary, error) {
	active, err := s.sources.ListActive(ctx)
	if err != nil {
		return FetchSummary{}, fmt.Errorf("list active sources: %w", err)
	}

	now := s.now()
	var due []model.FeedSource
	for _, source := range active {
		if opts.Force || source.Due(now) {
			due = append(due, source)
		}
	}

	summary := s.poll(ctx, due)
	logger.Info("fetch run finished", "module", "service", "action", "fetch", "resource", "source", "result", "ok",
		"force", opts.Force, "active", len(active), "polled", summary.SourcesPolled,
		"new_items", summary.NewItemsCreated, "source_errors", summary.SourceErrors)
	return summary, nil
}

func (s *fetchService) FetchSource(ctx context.Context, sourceID int64) (FetchSummary, error) {
	source, err := s.sources.GetByID(ctx, sourceID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return FetchSummary{}, ErrNotFound
		}
		return FetchSummary{}, err
	}

	created, err := s.fetchOne(ctx, source)
	summary := FetchSummary{SourcesPolled: 1, NewItemsCreated: created}
	if err != nil {
		summary.SourceErrors = 1
		return summary, err
	}
	return summary, nil
}

func (s *fetchService) poll(ctx context.Context, sources []model.FeedSource) FetchSummary {
	var created atomic.Int64
	report := task.Run(ctx, task.Options{Name: "fetch", Concurrency: s.concurrency, Timeout: s.timeout}, sources,
		func(ctx context.Context, source model.FeedSource) error {
			n, err := s.fetchOne(ctx, source)
			created.Add(int64(n))
			return err
		})

	return FetchSummary{
		SourcesPolled:   len(sources),
		NewItemsCreated: int(created.Load()),
		SourceErrors:    report.Failed,
	}
}

// fetchOne polls one source and returns how many items were inserted.
// Store writes outlive the source deadline so a slow page never loses the
// items already fetched. A failed write counts against the source.
func (s *fetchService) fetchOne(ctx context.Context, source model.FeedSource) (int, error) {
	resp, err := s.clients.Get(ctx, source.URL, feedAccept, s.timeout)
	if err != nil {
		return 0, s.fail(ctx, source, err.Error())
	}
	if !resp.OK() {
		return 0, s.fail(ctx, source, fmt.Sprintf("HTTP %d", resp.StatusCode))
	}

	candidates, err := parseFeedItems(resp.Body)
	if err != nil {
		logger.Warn("feed parse failed", "module", "service", "action", "parse", "resource", "source", "result", "failed", "source_id", source.ID, "url", source.URL, "error", err)
		candidates = nil
	}
	if len(candidates) > MaxItemsPerSource {
		candidates = candidates[:MaxItemsPerSource]
	}

	// Page extraction shares one budget per source. Once it is spent the
	// remaining items keep their feed body.
	extractCtx, cancelExtract := context.WithTimeout(ctx, s.timeout/2)
	defer cancelExtract()

	var storeErr error
	created := 0
	for _, item := range candidates {
		exists, err := detached(ctx, func(ctx context.Context) (bool, error) {
			return s.items.ExistsByURL(ctx, item.URL)
		})
		if err != nil {
			logger.Warn("item lookup failed", "module", "service", "action", "fetch", "resource", "item", "result", "failed", "source_id", source.ID, "url", item.URL, "error", err)
			storeErr = err
			continue
		}
		if exists {
			continue
		}

		if source.FullText && extractCtx.Err() == nil {
			s.extractFullText(extractCtx, &item)
		}

		item.SourceID = source.ID
		item.FetchedAt = s.now()
		_, err = detached(ctx, func(ctx context.Context) (model.FetchedItem, error) {
			return s.items.Create(ctx, item)
		})
		if err != nil {
			if errors.Is(err, repository.ErrDuplicateURL) {
				continue
			}
			logger.Warn("item insert failed", "module", "service", "action", "create", "resource", "item", "result", "failed", "source_id", source.ID, "url", item.URL, "error", err)
			storeErr = err
			continue
		}
		created++
	}

	if err := detachedExec(ctx, func(ctx context.Context) error {
		return s.sources.UpdateLastPolled(ctx, source.ID, s.now())
	}); err != nil {
		logger.Warn("update last polled failed", "module", "service", "action", "update", "resource", "source", "result", "failed", "source_id", source.ID, "error", err)
		storeErr = err
	}

	metrics.FetchNewItems.Add(float64(created))
	if storeErr != nil {
		metrics.FetchSources.WithLabelValues(metrics.ResultFailed).Inc()
		return created, fmt.Errorf("store items for %s: %w", source.URL, storeErr)
	}
	metrics.FetchSources.WithLabelValues(metrics.ResultSuccess).Inc()
	if created > 0 {
		logger.Info("source fetched", "module", "service", "action", "fetch", "resource", "source", "result", "ok", "source_id", source.ID, "new_items", created, "via_browser", resp.ViaBrowser)
	}
	return created, nil
}

// detached runs one repository call detached from the source deadline.
func detached[T any](ctx context.Context, fn func(ctx context.Context) (T, error)) (T, error) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), storeTimeout)
	defer cancel()
	return fn(ctx)
}

func detachedExec(ctx context.Context, fn func(ctx context.Context) error) error {
	_, err := detached(ctx, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, fn(ctx)
	})
	return err
}

func (s *fetchService) fail(ctx context.Context, source model.FeedSource, msg string) error {
	metrics.FetchSources.WithLabelValues(metrics.ResultFailed).Inc()
	logger.Warn("source fetch failed", "module", "service", "action", "fetch", "resource", "source", "result", "failed", "source_id", source.ID, "url", source.URL, "error", msg)
	if err := detachedExec(ctx, func(ctx context.Context) error {
		return s.sources.UpdateErrorMessage(ctx, source.ID, &msg)
	}); err != nil {
		logger.Warn("record source error failed", "module", "service", "action", "update", "resource", "source", "result", "failed", "source_id", source.ID, "error", err)
	}
	return fmt.Errorf("%w: %s: %s", ErrFeedFetch, source.URL, msg)
}

// extractFullText replaces a short feed body with the readable text of the
// original page. Any failure keeps the feed body.
func (s *fetchService) extractFullText(ctx context.Context, item *model.FetchedItem) {
	if item.OriginalBody != nil && utf8.RuneCountInString(*item.OriginalBody) >= fullTextThreshold {
		return
	}
	text, err := s.readablePage(ctx, item.URL)
	if err != nil {
		logger.Debug("full text extraction failed", "module", "service", "action", "extract", "resource", "item", "result", "failed", "url", item.URL, "error", err)
		return
	}
	item.OriginalBody = &text
}

func (s *fetchService) readablePage(ctx context.Context, pageURL string) (string, error) {
	parsedURL, err := url.Parse(pageURL)
	if err != nil || parsedURL.Host == "" {
		return "", fmt.Errorf("%w: page url %q", ErrInvalid, pageURL)
	}

	resp, err := s.clients.Get(ctx, pageURL, pageAccept, s.timeout)
	if err != nil {
		return "", err
	}
	if !resp.OK() {
		return "", fmt.Errorf("HTTP %d", resp.StatusCode)
	}

	// Scripts and styles confuse the readability scorer.
	sanitized := content.SanitizePage(string(resp.Body))

	parser := readability.NewParser()
	article, err := parser.Parse(strings.NewReader(sanitized), parsedURL)
	if err != nil {
		return "", fmt.Errorf("parse content failed: %w", err)
	}

	var buf bytes.Buffer
	if err := article.RenderHTML(&buf); err != nil {
		return "", fmt.Errorf("render failed: %w", err)
	}
	text := content.PlainText(buf.String())
	if text == "" {
		return "", ErrInvalid
	}
	return text, nil
}

// parseFeedItems maps a feed document to pending item candidates in document
// order. Entries are consulted only when the document yields no RSS items.
func parseFeedItems(body []byte) ([]model.FetchedItem, error) {
	parser := gofeed.NewParser()
	feed, err := parser.Parse(bytes.NewReader(body))
	if err != nil {
		return nil, err
	}

	items := feed.Items
	if len(items) == 0 && feed.FeedType == "rss" {
		if doc, ok := atomFromEntries(body); ok {
			if fallback, err := parser.Parse(bytes.NewReader(doc)); err == nil {
				items = fallback.Items
			}
		}
	}

	candidates := make([]model.FetchedItem, 0, len(items))
	for _, it := range items {
		if candidate, ok := candidateFromItem(it); ok {
			candidates = append(candidates, candidate)
		}
	}
	return candidates, nil
}

// atomFromEntries wraps the <entry> elements of a non-Atom document in an
// Atom feed element.
func atomFromEntries(body []byte) ([]byte, bool) {
	var entries [][]byte
	rest := body
	for {
		start := bytes.Index(rest, []byte("<entry"))
		if start < 0 {
			break
		}
		end := bytes.Index(rest[start:], []byte("</entry>"))
		if end < 0 {
			break
		}
		end += start + len("</entry>")
		entries = append(entries, rest[start:end])
		rest = rest[end:]
	}
	if len(entries) == 0 {
		return nil, false
	}

	var buf bytes.Buffer
	buf.WriteString(`<?xml version="1.0" encoding="utf-8"?><feed xmlns="http://www.w3.org/2005/Atom">`)
	for _, e := range entries {
		buf.Write(e)
	}
	buf.WriteString(`</feed>`)
	return buf.Bytes(), true
}

func candidateFromItem(it *gofeed.Item) (model.FetchedItem, bool) {
	title := content.Flatten(content.PlainText(it.Title))
	link := strings.TrimSpace(it.Link)
	if link == "" {
		link = strings.TrimSpace(it.GUID)
	}
	// The URL is the dedup key, so a title alone cannot be stored.
	if link == "" {
		return model.FetchedItem{}, false
	}

	rawBody := it.Content
	if strings.TrimSpace(rawBody) == "" {
		rawBody = it.Description
	}
	body := content.PlainText(rawBody)

	rawExcerpt := it.Description
	if strings.TrimSpace(rawExcerpt) == "" {
		rawExcerpt = rawBody
	}
	excerpt := content.Truncate(content.Flatten(content.PlainText(rawExcerpt)), MaxExcerptRunes)

	item := model.FetchedItem{URL: link}
	if title != "" {
		item.OriginalTitle = &title
	}
	if body != "" {
		item.OriginalBody = &body
	}
	if excerpt != "" {
		item.OriginalExcerpt = &excerpt
	}
	switch {
	case it.PublishedParsed != nil:
		published := it.PublishedParsed.UTC()
		item.OriginalPublishedAt = &published
	case it.UpdatedParsed != nil:
		updated := it.UpdatedParsed.UTC()
		item.OriginalPublishedAt = &updated
	}
	return item, true
}
