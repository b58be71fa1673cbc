package repository_test

import (
	"context"
	"testing"
	"time"

	"quill/backend/internal/model"
	"quill/backend/internal/repository"
	"quill/backend/internal/repository/testutil"

	"github.com/stretchr/testify/require"
)

func TestPostRepository_CreateAndGet(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewPostRepository(db)
	ctx := context.Background()

	now := time.Now().UTC()
	created, err := repo.Create(ctx, model.Post{
		Title:       "Hello",
		Slug:        "hello",
		Excerpt:     "Short",
		Body:        "<p>Body</p>",
		Status:      model.PostStatusPublished,
		PublishedAt: &now,
		AuthorID:    3,
		CategoryID:  9,
		Metadata:    model.PostMetadata{Origin: "aggregator", FetchedItemID: 77, Keywords: []string{}},
	})
	require.NoError(t, err)

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, "hello", got.Slug)
	require.Equal(t, "Short", got.Excerpt)
	require.Equal(t, model.PostStatusPublished, got.Status)
	require.Equal(t, int64(77), got.Metadata.FetchedItemID)
	require.Equal(t, "aggregator", got.Metadata.Origin)
}

func TestPostRepository_SlugExists(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewPostRepository(db)
	ctx := context.Background()

	post := model.Post{Title: "Hello", Slug: "hello", Body: "b", Status: model.PostStatusPublished, AuthorID: 1, CategoryID: 1}
	_, err := repo.Create(ctx, post)
	require.NoError(t, err)

	_, err = repo.Create(ctx, post)
	require.ErrorIs(t, err, repository.ErrSlugExists)
}

func TestPostRepository_CountPublishedSince(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewPostRepository(db)
	ctx := context.Background()

	now := time.Now().UTC()
	old := now.Add(-48 * time.Hour)
	for i, at := range []time.Time{old, now.Add(-time.Hour), now} {
		publishedAt := at
		_, err := repo.Create(ctx, model.Post{
			Title: "p", Slug: "p-" + string(rune('a'+i)), Body: "b",
			Status: model.PostStatusPublished, PublishedAt: &publishedAt, AuthorID: 1, CategoryID: 1,
		})
		require.NoError(t, err)
	}

	count, err := repo.CountPublishedSince(ctx, now.Add(-24*time.Hour))
	require.NoError(t, err)
	require.Equal(t, 2, count)
}
