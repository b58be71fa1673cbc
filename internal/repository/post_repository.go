package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"quill/backend/internal/model"
	"quill/backend/internal/snowflake"
)

type PostRepository interface {
	// Create returns ErrSlugExists when the slug is taken.
	Create(ctx context.Context, post model.Post) (model.Post, error)
	GetByID(ctx context.Context, id int64) (model.Post, error)
	CountPublishedSince(ctx context.Context, since time.Time) (int, error)
}

type postRepository struct {
	db dbtx
}

func NewPostRepository(db dbtx) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(ctx context.Context, post model.Post) (model.Post, error) {
	post.ID = snowflake.NextID()
	now := time.Now().UTC()
	metadata, err := json.Marshal(post.Metadata)
	if err != nil {
		return model.Post{}, fmt.Errorf("encode post metadata: %w", err)
	}
	excerpt := post.Excerpt
	_, err = r.db.ExecContext(
		ctx,
		`INSERT INTO posts (id, title, slug, excerpt, body, status, published_at, author_id, category_id, metadata, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		post.ID,
		post.Title,
		post.Slug,
		nullableString(&excerpt),
		post.Body,
		string(post.Status),
		nullableTime(post.PublishedAt),
		post.AuthorID,
		post.CategoryID,
		string(metadata),
		formatTime(now),
		formatTime(now),
	)
	if err != nil {
		if isUniqueViolation(err, "posts.slug") {
			return model.Post{}, ErrSlugExists
		}
		return model.Post{}, fmt.Errorf("create post: %w", err)
	}
	post.CreatedAt = now
	post.UpdatedAt = now
	return post, nil
}

func (r *postRepository) GetByID(ctx context.Context, id int64) (model.Post, error) {
	row := r.db.QueryRowContext(
		ctx,
		`SELECT id, title, slug, excerpt, body, status, published_at, author_id, category_id, metadata, created_at, updated_at
		 FROM posts WHERE id = ?`,
		id,
	)
	var post model.Post
	var excerpt, publishedAt, metadata sql.NullString
	var status, createdAt, updatedAt string
	if err := row.Scan(
		&post.ID,
		&post.Title,
		&post.Slug,
		&excerpt,
		&post.Body,
		&status,
		&publishedAt,
		&post.AuthorID,
		&post.CategoryID,
		&metadata,
		&createdAt,
		&updatedAt,
	); err != nil {
		return model.Post{}, err
	}
	post.Excerpt = excerpt.String
	post.Status = model.PostStatus(status)
	if metadata.Valid && metadata.String != "" {
		if err := json.Unmarshal([]byte(metadata.String), &post.Metadata); err != nil {
			return model.Post{}, fmt.Errorf("decode post metadata: %w", err)
		}
	}
	var err error
	if post.PublishedAt, err = parseNullTime(publishedAt); err != nil {
		return model.Post{}, fmt.Errorf("parse post published_at: %w", err)
	}
	if post.CreatedAt, err = parseTime(createdAt); err != nil {
		return model.Post{}, fmt.Errorf("parse post created_at: %w", err)
	}
	if post.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return model.Post{}, fmt.Errorf("parse post updated_at: %w", err)
	}
	return post, nil
}

func (r *postRepository) CountPublishedSince(ctx context.Context, since time.Time) (int, error) {
	var count int
	err := r.db.QueryRowContext(
		ctx,
		`SELECT COUNT(*) FROM posts WHERE status = ? AND published_at >= ?`,
		string(model.PostStatusPublished),
		formatTime(since),
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count published posts: %w", err)
	}
	return count, nil
}
