package testutil

import (
	"database/sql"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"quill/backend/internal/db"
	"quill/backend/internal/model"
	"quill/backend/internal/snowflake"
)

const timeLayout = "2006-01-02T15:04:05.000000000Z"

// NewTestDB opens a migrated sqlite database in a per-test temp dir.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()
	database, err := db.Open(filepath.Join(t.TempDir(), "quill-test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close() })
	return database
}

func SeedSource(t *testing.T, database *sql.DB, source model.FeedSource) int64 {
	t.Helper()
	if source.ID == 0 {
		source.ID = snowflake.NextID()
	}
	if source.Name == "" {
		source.Name = source.URL
	}
	now := formatTime(time.Now())
	var lastPolled interface{}
	if source.LastPolledAt != nil {
		lastPolled = formatTime(*source.LastPolledAt)
	}
	_, err := database.Exec(
		`INSERT INTO feed_sources (id, name, url, kind, active, poll_interval_minutes, full_text, last_polled_at, created_at, updated_at)
		 VALUES (?, ?, ?, 'rss', ?, ?, ?, ?, ?, ?)`,
		source.ID, source.Name, source.URL, boolInt(source.Active),
		int64(source.PollInterval/time.Minute), boolInt(source.FullText), lastPolled, now, now,
	)
	require.NoError(t, err)
	return source.ID
}

// SeedItem inserts an item with the given status and timestamps as-is.
// Zero Status means pending and a zero FetchedAt means now.
func SeedItem(t *testing.T, database *sql.DB, item model.FetchedItem) int64 {
	t.Helper()
	if item.ID == 0 {
		item.ID = snowflake.NextID()
	}
	if item.Status == 0 {
		item.Status = model.StatusPending
	}
	if item.FetchedAt.IsZero() {
		item.FetchedAt = time.Now()
	}
	if item.URL == "" {
		item.URL = "https://example.com/items/" + strconv.FormatInt(item.ID, 10)
	}
	var processedAt interface{}
	if item.ProcessedAt != nil {
		processedAt = formatTime(*item.ProcessedAt)
	}
	_, err := database.Exec(
		`INSERT INTO fetched_items (id, source_id, url, original_title, original_body, original_excerpt, status,
		   generated_title, generated_body, generated_excerpt, processed_at, fetched_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		item.ID, item.SourceID, item.URL,
		nullable(item.OriginalTitle), nullable(item.OriginalBody), nullable(item.OriginalExcerpt),
		item.Status.String(),
		nullable(item.GeneratedTitle), nullable(item.GeneratedBody), nullable(item.GeneratedExcerpt),
		processedAt, formatTime(item.FetchedAt), formatTime(time.Now()),
	)
	require.NoError(t, err)
	return item.ID
}

func Ptr[T any](v T) *T {
	return &v
}

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func nullable(s *string) interface{} {
	if s == nil {
		return nil
	}
	return *s
}
