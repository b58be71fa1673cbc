package repository

import (
	"context"
	"database/sql"
	"fmt"
)

// Repositories groups the stores bound to one connection or transaction.
type Repositories struct {
	Sources    FeedSourceRepository
	Items      FetchedItemRepository
	Posts      PostRepository
	Publishing PublishingSettingsRepository
	Settings   SettingsRepository
}

func NewRepositories(db dbtx) Repositories {
	return Repositories{
		Sources:    NewFeedSourceRepository(db),
		Items:      NewFetchedItemRepository(db),
		Posts:      NewPostRepository(db),
		Publishing: NewPublishingSettingsRepository(db),
		Settings:   NewSettingsRepository(db),
	}
}

// Transactor runs fn against repositories bound to a single transaction.
// A non-nil error from fn rolls the transaction back.
type Transactor interface {
	WithinTx(ctx context.Context, fn func(repos Repositories) error) error
}

type sqlTransactor struct {
	db *sql.DB
}

func NewTransactor(db *sql.DB) Transactor {
	return &sqlTransactor{db: db}
}

func (t *sqlTransactor) WithinTx(ctx context.Context, fn func(repos Repositories) error) (err error) {
	tx, err := t.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if err = fn(NewRepositories(tx)); err != nil {
		return err
	}
	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}
