package model

import "time"

// SourceKind names the markup a source publishes. Only syndication feeds exist today.
type SourceKind string

const SourceKindFeed SourceKind = "rss"

type FeedSource struct {
	ID           int64
	Name         string
	URL          string
	Kind         SourceKind
	Active       bool
	PollInterval time.Duration
	FullText     bool // fetch and extract the original page when the feed body is short
	LastPolledAt *time.Time
	ErrorMessage *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Due reports whether the source should be polled by a scheduled run at now.
func (s FeedSource) Due(now time.Time) bool {
	if s.LastPolledAt == nil || s.PollInterval <= 0 {
		return true
	}
	return !s.LastPolledAt.Add(s.PollInterval).After(now)
}
