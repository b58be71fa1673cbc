package service

import "errors"

var (
	ErrNotFound  = errors.New("not found")
	ErrConflict  = errors.New("conflict")
	ErrInvalid   = errors.New("invalid")
	ErrFeedFetch = errors.New("feed fetch failed")

	// ErrGenerationFailed covers provider errors, timeouts and empty replies.
	// The item is back in pending when it is returned.
	ErrGenerationFailed = errors.New("generation failed")
	// ErrNotPublishable is returned for items that are not approved or have no body.
	ErrNotPublishable = errors.New("item not publishable")
	// ErrStatusConflict means a concurrent run moved the item first.
	ErrStatusConflict = errors.New("item status changed concurrently")

	ErrProviderNotConfigured = errors.New("ai provider not configured")
)
