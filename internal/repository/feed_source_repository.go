package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"quill/backend/internal/model"
	"quill/backend/internal/snowflake"
)

type FeedSourceRepository interface {
	Create(ctx context.Context, source model.FeedSource) (model.FeedSource, error)
	GetByID(ctx context.Context, id int64) (model.FeedSource, error)
	FindByURL(ctx context.Context, url string) (*model.FeedSource, error)
	List(ctx context.Context) ([]model.FeedSource, error)
	ListActive(ctx context.Context) ([]model.FeedSource, error)
	SetActive(ctx context.Context, id int64, active bool) error
	UpdateLastPolled(ctx context.Context, id int64, polledAt time.Time) error
	UpdateErrorMessage(ctx context.Context, id int64, errorMessage *string) error
}

type feedSourceRepository struct {
	db dbtx
}

func NewFeedSourceRepository(db dbtx) FeedSourceRepository {
	return &feedSourceRepository{db: db}
}

const feedSourceColumns = `id, name, url, kind, active, poll_interval_minutes, full_text, last_polled_at, error_message, created_at, updated_at`

func (r *feedSourceRepository) Create(ctx context.Context, source model.FeedSource) (model.FeedSource, error) {
	source.ID = snowflake.NextID()
	now := time.Now().UTC()
	if source.Kind == "" {
		source.Kind = model.SourceKindFeed
	}
	_, err := r.db.ExecContext(
		ctx,
		`INSERT INTO feed_sources (id, name, url, kind, active, poll_interval_minutes, full_text, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		source.ID,
		source.Name,
		source.URL,
		string(source.Kind),
		boolToInt(source.Active),
		int64(source.PollInterval/time.Minute),
		boolToInt(source.FullText),
		formatTime(now),
		formatTime(now),
	)
	if err != nil {
		return model.FeedSource{}, fmt.Errorf("create feed source: %w", err)
	}
	source.CreatedAt = now
	source.UpdatedAt = now
	return source, nil
}

func (r *feedSourceRepository) GetByID(ctx context.Context, id int64) (model.FeedSource, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+feedSourceColumns+` FROM feed_sources WHERE id = ?`, id)
	return scanFeedSource(row)
}

func (r *feedSourceRepository) FindByURL(ctx context.Context, url string) (*model.FeedSource, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+feedSourceColumns+` FROM feed_sources WHERE url = ?`, url)
	source, err := scanFeedSource(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("find feed source: %w", err)
	}
	return &source, nil
}

func (r *feedSourceRepository) List(ctx context.Context) ([]model.FeedSource, error) {
	return r.list(ctx, `SELECT `+feedSourceColumns+` FROM feed_sources ORDER BY name`)
}

func (r *feedSourceRepository) ListActive(ctx context.Context) ([]model.FeedSource, error) {
	return r.list(ctx, `SELECT `+feedSourceColumns+` FROM feed_sources WHERE active = 1 ORDER BY created_at, id`)
}

func (r *feedSourceRepository) list(ctx context.Context, query string, args ...interface{}) ([]model.FeedSource, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list feed sources: %w", err)
	}
	defer rows.Close()

	var sources []model.FeedSource
	for rows.Next() {
		source, err := scanFeedSource(rows)
		if err != nil {
			return nil, err
		}
		sources = append(sources, source)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate feed sources: %w", err)
	}
	return sources, nil
}

func (r *feedSourceRepository) SetActive(ctx context.Context, id int64, active bool) error {
	res, err := r.db.ExecContext(
		ctx,
		`UPDATE feed_sources SET active = ?, updated_at = ? WHERE id = ?`,
		boolToInt(active),
		formatTime(time.Now()),
		id,
	)
	if err != nil {
		return fmt.Errorf("set feed source active: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("set feed source active: %w", err)
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// UpdateLastPolled records a successful poll and clears any previous error.
func (r *feedSourceRepository) UpdateLastPolled(ctx context.Context, id int64, polledAt time.Time) error {
	_, err := r.db.ExecContext(
		ctx,
		`UPDATE feed_sources SET last_polled_at = ?, error_message = NULL, updated_at = ? WHERE id = ?`,
		formatTime(polledAt),
		formatTime(time.Now()),
		id,
	)
	if err != nil {
		return fmt.Errorf("update feed source last polled: %w", err)
	}
	return nil
}

func (r *feedSourceRepository) UpdateErrorMessage(ctx context.Context, id int64, errorMessage *string) error {
	_, err := r.db.ExecContext(
		ctx,
		`UPDATE feed_sources SET error_message = ?, updated_at = ? WHERE id = ?`,
		nullableString(errorMessage),
		formatTime(time.Now()),
		id,
	)
	return err
}

func scanFeedSource(scanner rowScanner) (model.FeedSource, error) {
	var source model.FeedSource
	var kind string
	var active, fullText int
	var intervalMinutes int64
	var lastPolledAt sql.NullString
	var errorMessage sql.NullString
	var createdAt, updatedAt string
	if err := scanner.Scan(
		&source.ID,
		&source.Name,
		&source.URL,
		&kind,
		&active,
		&intervalMinutes,
		&fullText,
		&lastPolledAt,
		&errorMessage,
		&createdAt,
		&updatedAt,
	); err != nil {
		return model.FeedSource{}, err
	}
	source.Kind = model.SourceKind(kind)
	source.Active = active == 1
	source.FullText = fullText == 1
	source.PollInterval = time.Duration(intervalMinutes) * time.Minute
	source.ErrorMessage = stringPtr(errorMessage)

	var err error
	if source.LastPolledAt, err = parseNullTime(lastPolledAt); err != nil {
		return model.FeedSource{}, fmt.Errorf("parse feed source last_polled_at: %w", err)
	}
	if source.CreatedAt, err = parseTime(createdAt); err != nil {
		return model.FeedSource{}, fmt.Errorf("parse feed source created_at: %w", err)
	}
	if source.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return model.FeedSource{}, fmt.Errorf("parse feed source updated_at: %w", err)
	}
	return source, nil
}
