package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"quill/backend/internal/model"
)

type PublishingSettingsRepository interface {
	// GetOrCreate returns the global row, inserting the disabled default first when absent.
	GetOrCreate(ctx context.Context) (model.PublishingSettings, error)
	Update(ctx context.Context, settings model.PublishingSettings) (model.PublishingSettings, error)
}

type publishingSettingsRepository struct {
	db dbtx
}

func NewPublishingSettingsRepository(db dbtx) PublishingSettingsRepository {
	return &publishingSettingsRepository{db: db}
}

func (r *publishingSettingsRepository) GetOrCreate(ctx context.Context) (model.PublishingSettings, error) {
	_, err := r.db.ExecContext(
		ctx,
		`INSERT INTO publishing_settings (id, auto_publish, daily_quota, updated_at)
		 VALUES (1, 0, 0, ?) ON CONFLICT(id) DO NOTHING`,
		formatTime(time.Now()),
	)
	if err != nil {
		return model.PublishingSettings{}, fmt.Errorf("ensure publishing settings: %w", err)
	}

	row := r.db.QueryRowContext(
		ctx,
		`SELECT auto_publish, daily_quota, default_author_id, default_category_id, updated_at FROM publishing_settings WHERE id = 1`,
	)
	var settings model.PublishingSettings
	var autoPublish int
	var authorID, categoryID sql.NullInt64
	var updatedAt string
	if err := row.Scan(&autoPublish, &settings.DailyQuota, &authorID, &categoryID, &updatedAt); err != nil {
		return model.PublishingSettings{}, fmt.Errorf("load publishing settings: %w", err)
	}
	settings.AutoPublish = autoPublish == 1
	settings.DefaultAuthorID = int64Ptr(authorID)
	settings.DefaultCategoryID = int64Ptr(categoryID)
	if settings.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return model.PublishingSettings{}, fmt.Errorf("parse publishing settings updated_at: %w", err)
	}
	return settings, nil
}

func (r *publishingSettingsRepository) Update(ctx context.Context, settings model.PublishingSettings) (model.PublishingSettings, error) {
	now := time.Now().UTC()
	_, err := r.db.ExecContext(
		ctx,
		`INSERT INTO publishing_settings (id, auto_publish, daily_quota, default_author_id, default_category_id, updated_at)
		 VALUES (1, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
		   auto_publish = excluded.auto_publish,
		   daily_quota = excluded.daily_quota,
		   default_author_id = excluded.default_author_id,
		   default_category_id = excluded.default_category_id,
		   updated_at = excluded.updated_at`,
		boolToInt(settings.AutoPublish),
		settings.DailyQuota,
		nullableInt64(settings.DefaultAuthorID),
		nullableInt64(settings.DefaultCategoryID),
		formatTime(now),
	)
	if err != nil {
		return model.PublishingSettings{}, fmt.Errorf("update publishing settings: %w", err)
	}
	settings.UpdatedAt = now
	return settings, nil
}
