package model

import "time"

// Setting represents a key-value setting stored in the database.
type Setting struct {
	Key       string
	Value     string
	UpdatedAt time.Time
}

// PublishingSettings is the single global row driving auto-publish.
// The zero value is the safe default: disabled with no quota.
type PublishingSettings struct {
	AutoPublish       bool
	DailyQuota        int
	DefaultAuthorID   *int64
	DefaultCategoryID *int64
	UpdatedAt         time.Time
}

// HasDefaults reports whether both publish targets are configured.
func (s PublishingSettings) HasDefaults() bool {
	return s.DefaultAuthorID != nil && *s.DefaultAuthorID > 0 &&
		s.DefaultCategoryID != nil && *s.DefaultCategoryID > 0
}
