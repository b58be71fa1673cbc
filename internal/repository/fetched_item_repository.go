package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"quill/backend/internal/model"
	"quill/backend/internal/snowflake"
)

// ItemOrder selects the timestamp a status listing is sorted by.
type ItemOrder int

const (
	OrderFetchedAsc ItemOrder = iota
	OrderProcessedAsc
	OrderFetchedDesc
)

func (o ItemOrder) clause() string {
	switch o {
	case OrderProcessedAsc:
		return "processed_at ASC, id ASC"
	case OrderFetchedDesc:
		return "fetched_at DESC, id DESC"
	default:
		return "fetched_at ASC, id ASC"
	}
}

type FetchedItemRepository interface {
	Create(ctx context.Context, item model.FetchedItem) (model.FetchedItem, error)
	ExistsByURL(ctx context.Context, url string) (bool, error)
	GetByID(ctx context.Context, id int64) (model.FetchedItem, error)
	GetByIDs(ctx context.Context, ids []int64) ([]model.FetchedItem, error)
	ListByStatus(ctx context.Context, status model.ItemStatus, order ItemOrder, limit int) ([]model.FetchedItem, error)
	CountByStatus(ctx context.Context) (map[model.ItemStatus]int, error)
	// TransitionStatus moves the item to `to` only while it is still in `from`.
	// It reports whether the row was updated.
	TransitionStatus(ctx context.Context, id int64, from, to model.ItemStatus) (bool, error)
	SaveGenerated(ctx context.Context, id int64, generated model.Generated, processedAt time.Time) (bool, error)
	MarkAbsorbed(ctx context.Context, ids []int64, primaryID int64) (int64, error)
	MarkPublished(ctx context.Context, id int64, postID int64) (bool, error)
}

type fetchedItemRepository struct {
	db dbtx
}

func NewFetchedItemRepository(db dbtx) FetchedItemRepository {
	return &fetchedItemRepository{db: db}
}

const fetchedItemColumns = `id, source_id, url, original_title, original_body, original_excerpt, original_published_at,
	status, generated_title, generated_body, generated_excerpt, processed_at, post_id, absorbed_into, fetched_at, updated_at`

func (r *fetchedItemRepository) Create(ctx context.Context, item model.FetchedItem) (model.FetchedItem, error) {
	item.ID = snowflake.NextID()
	now := time.Now().UTC()
	if item.FetchedAt.IsZero() {
		item.FetchedAt = now
	}
	item.Status = model.StatusPending
	_, err := r.db.ExecContext(
		ctx,
		`INSERT INTO fetched_items (id, source_id, url, original_title, original_body, original_excerpt, original_published_at, status, fetched_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		item.ID,
		item.SourceID,
		item.URL,
		nullableString(item.OriginalTitle),
		nullableString(item.OriginalBody),
		nullableString(item.OriginalExcerpt),
		nullableTime(item.OriginalPublishedAt),
		item.Status.String(),
		formatTime(item.FetchedAt),
		formatTime(now),
	)
	if err != nil {
		if isUniqueViolation(err, "fetched_items.url") {
			return model.FetchedItem{}, ErrDuplicateURL
		}
		return model.FetchedItem{}, fmt.Errorf("create fetched item: %w", err)
	}
	item.UpdatedAt = now
	return item, nil
}

func (r *fetchedItemRepository) ExistsByURL(ctx context.Context, url string) (bool, error) {
	var exists int
	err := r.db.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM fetched_items WHERE url = ?)`, url).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check fetched item url: %w", err)
	}
	return exists == 1, nil
}

func (r *fetchedItemRepository) GetByID(ctx context.Context, id int64) (model.FetchedItem, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+fetchedItemColumns+` FROM fetched_items WHERE id = ?`, id)
	return scanFetchedItem(row)
}

// GetByIDs returns the items in the order of ids. Unknown ids are skipped.
func (r *fetchedItemRepository) GetByIDs(ctx context.Context, ids []int64) ([]model.FetchedItem, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	args := make([]interface{}, len(ids))
	for i, id := range ids {
		args[i] = id
	}
	items, err := r.query(ctx, `SELECT `+fetchedItemColumns+` FROM fetched_items WHERE id IN (`+placeholders(len(ids))+`)`, args...)
	if err != nil {
		return nil, err
	}
	byID := make(map[int64]model.FetchedItem, len(items))
	for _, item := range items {
		byID[item.ID] = item
	}
	ordered := make([]model.FetchedItem, 0, len(items))
	for _, id := range ids {
		if item, ok := byID[id]; ok {
			ordered = append(ordered, item)
			delete(byID, id)
		}
	}
	return ordered, nil
}

func (r *fetchedItemRepository) ListByStatus(ctx context.Context, status model.ItemStatus, order ItemOrder, limit int) ([]model.FetchedItem, error) {
	query := `SELECT ` + fetchedItemColumns + ` FROM fetched_items WHERE status = ? ORDER BY ` + order.clause()
	args := []interface{}{status.String()}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}
	return r.query(ctx, query, args...)
}

func (r *fetchedItemRepository) CountByStatus(ctx context.Context) (map[model.ItemStatus]int, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT status, COUNT(*) FROM fetched_items GROUP BY status`)
	if err != nil {
		return nil, fmt.Errorf("count fetched items: %w", err)
	}
	defer rows.Close()

	counts := make(map[model.ItemStatus]int)
	for rows.Next() {
		var raw string
		var count int
		if err := rows.Scan(&raw, &count); err != nil {
			return nil, err
		}
		status, err := model.ParseItemStatus(raw)
		if err != nil {
			return nil, err
		}
		counts[status] = count
	}
	return counts, rows.Err()
}

func (r *fetchedItemRepository) TransitionStatus(ctx context.Context, id int64, from, to model.ItemStatus) (bool, error) {
	res, err := r.db.ExecContext(
		ctx,
		`UPDATE fetched_items SET status = ?, updated_at = ? WHERE id = ? AND status = ?`,
		to.String(),
		formatTime(time.Now()),
		id,
		from.String(),
	)
	if err != nil {
		return false, fmt.Errorf("transition fetched item %d %s->%s: %w", id, from, to, err)
	}
	return affectedOne(res)
}

func (r *fetchedItemRepository) SaveGenerated(ctx context.Context, id int64, generated model.Generated, processedAt time.Time) (bool, error) {
	res, err := r.db.ExecContext(
		ctx,
		`UPDATE fetched_items
		 SET status = ?, generated_title = ?, generated_body = ?, generated_excerpt = ?, processed_at = ?, updated_at = ?
		 WHERE id = ? AND status = ?`,
		model.StatusApproved.String(),
		generated.Title,
		generated.Body,
		generated.Excerpt,
		formatTime(processedAt),
		formatTime(time.Now()),
		id,
		model.StatusProcessing.String(),
	)
	if err != nil {
		return false, fmt.Errorf("save generated content: %w", err)
	}
	return affectedOne(res)
}

// MarkAbsorbed moves processing items consumed by a combined generation into
// the absorbed state and returns how many rows changed.
func (r *fetchedItemRepository) MarkAbsorbed(ctx context.Context, ids []int64, primaryID int64) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	args := []interface{}{model.StatusAbsorbed.String(), primaryID, formatTime(time.Now())}
	for _, id := range ids {
		args = append(args, id)
	}
	args = append(args, model.StatusProcessing.String())
	res, err := r.db.ExecContext(
		ctx,
		`UPDATE fetched_items SET status = ?, absorbed_into = ?, updated_at = ?
		 WHERE id IN (`+placeholders(len(ids))+`) AND status = ?`,
		args...,
	)
	if err != nil {
		return 0, fmt.Errorf("mark fetched items absorbed: %w", err)
	}
	return res.RowsAffected()
}

func (r *fetchedItemRepository) MarkPublished(ctx context.Context, id int64, postID int64) (bool, error) {
	res, err := r.db.ExecContext(
		ctx,
		`UPDATE fetched_items SET status = ?, post_id = ?, updated_at = ? WHERE id = ? AND status = ?`,
		model.StatusPublished.String(),
		postID,
		formatTime(time.Now()),
		id,
		model.StatusApproved.String(),
	)
	if err != nil {
		return false, fmt.Errorf("mark fetched item published: %w", err)
	}
	return affectedOne(res)
}

func (r *fetchedItemRepository) query(ctx context.Context, query string, args ...interface{}) ([]model.FetchedItem, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list fetched items: %w", err)
	}
	defer rows.Close()

	var items []model.FetchedItem
	for rows.Next() {
		item, err := scanFetchedItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate fetched items: %w", err)
	}
	return items, nil
}

func affectedOne(res sql.Result) (bool, error) {
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n == 1, nil
}

func scanFetchedItem(scanner rowScanner) (model.FetchedItem, error) {
	var item model.FetchedItem
	var originalTitle, originalBody, originalExcerpt, originalPublishedAt sql.NullString
	var status string
	var generatedTitle, generatedBody, generatedExcerpt, processedAt sql.NullString
	var postID, absorbedInto sql.NullInt64
	var fetchedAt, updatedAt string
	if err := scanner.Scan(
		&item.ID,
		&item.SourceID,
		&item.URL,
		&originalTitle,
		&originalBody,
		&originalExcerpt,
		&originalPublishedAt,
		&status,
		&generatedTitle,
		&generatedBody,
		&generatedExcerpt,
		&processedAt,
		&postID,
		&absorbedInto,
		&fetchedAt,
		&updatedAt,
	); err != nil {
		return model.FetchedItem{}, err
	}

	var err error
	if item.Status, err = model.ParseItemStatus(status); err != nil {
		return model.FetchedItem{}, fmt.Errorf("fetched item %d: %w", item.ID, err)
	}
	item.OriginalTitle = stringPtr(originalTitle)
	item.OriginalBody = stringPtr(originalBody)
	item.OriginalExcerpt = stringPtr(originalExcerpt)
	item.GeneratedTitle = stringPtr(generatedTitle)
	item.GeneratedBody = stringPtr(generatedBody)
	item.GeneratedExcerpt = stringPtr(generatedExcerpt)
	item.PostID = int64Ptr(postID)
	item.AbsorbedInto = int64Ptr(absorbedInto)

	if item.OriginalPublishedAt, err = parseNullTime(originalPublishedAt); err != nil {
		return model.FetchedItem{}, fmt.Errorf("parse fetched item original_published_at: %w", err)
	}
	if item.ProcessedAt, err = parseNullTime(processedAt); err != nil {
		return model.FetchedItem{}, fmt.Errorf("parse fetched item processed_at: %w", err)
	}
	if item.FetchedAt, err = parseTime(fetchedAt); err != nil {
		return model.FetchedItem{}, fmt.Errorf("parse fetched item fetched_at: %w", err)
	}
	if item.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return model.FetchedItem{}, fmt.Errorf("parse fetched item updated_at: %w", err)
	}
	return item, nil
}
