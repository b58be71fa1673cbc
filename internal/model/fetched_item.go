package model

import "time"

type FetchedItem struct {
	ID                  int64
	SourceID            int64
	URL                 string
	OriginalTitle       *string
	OriginalBody        *string
	OriginalExcerpt     *string
	OriginalPublishedAt *time.Time
	Status              ItemStatus
	GeneratedTitle      *string
	GeneratedBody       *string
	GeneratedExcerpt    *string
	ProcessedAt         *time.Time
	PostID              *int64
	AbsorbedInto        *int64
	FetchedAt           time.Time
	UpdatedAt           time.Time
}

// Generated is the parsed provider output stored on an item.
type Generated struct {
	Title   string
	Excerpt string
	Body    string
}

// Title returns the generated title, falling back to the original one.
func (i FetchedItem) Title() string {
	if i.GeneratedTitle != nil && *i.GeneratedTitle != "" {
		return *i.GeneratedTitle
	}
	if i.OriginalTitle != nil {
		return *i.OriginalTitle
	}
	return ""
}

func (i FetchedItem) HasGeneratedBody() bool {
	return i.GeneratedBody != nil && *i.GeneratedBody != ""
}
