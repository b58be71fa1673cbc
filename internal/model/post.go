package model

import "time"

type PostStatus string

const (
	PostStatusDraft     PostStatus = "draft"
	PostStatusPublished PostStatus = "published"
)

type Post struct {
	ID          int64
	Title       string
	Slug        string
	Excerpt     string
	Body        string
	Status      PostStatus
	PublishedAt *time.Time
	AuthorID    int64
	CategoryID  int64
	Metadata    PostMetadata
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// PostMetadata is the structured metadata stub attached to generated posts.
type PostMetadata struct {
	Origin        string   `json:"origin"`
	FetchedItemID int64    `json:"fetchedItemId,omitempty"`
	SourceURL     string   `json:"sourceUrl,omitempty"`
	Keywords      []string `json:"keywords"`
}
