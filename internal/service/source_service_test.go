package service_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"quill/backend/internal/model"
	"quill/backend/internal/repository/mock"
	"quill/backend/internal/service"
)

func TestSourceService_Add(t *testing.T) {
	ctrl := gomock.NewController(t)
	sources := mock.NewMockFeedSourceRepository(ctrl)
	svc := service.NewSourceService(sources)
	ctx := context.Background()

	sources.EXPECT().FindByURL(ctx, "https://news.example.com/rss").Return(nil, nil)
	sources.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, s model.FeedSource) (model.FeedSource, error) {
		require.Equal(t, "news.example.com", s.Name)
		require.True(t, s.Active)
		require.Equal(t, service.DefaultPollInterval, s.PollInterval)
		require.Equal(t, model.SourceKindFeed, s.Kind)
		s.ID = 10
		return s, nil
	})

	created, err := svc.Add(ctx, service.SourceInput{URL: "  https://news.example.com/rss "})
	require.NoError(t, err)
	require.Equal(t, int64(10), created.ID)
}

func TestSourceService_AddValidation(t *testing.T) {
	ctrl := gomock.NewController(t)
	sources := mock.NewMockFeedSourceRepository(ctrl)
	svc := service.NewSourceService(sources)
	ctx := context.Background()

	_, err := svc.Add(ctx, service.SourceInput{URL: "ftp://example.com/rss"})
	require.ErrorIs(t, err, service.ErrInvalid)
	_, err = svc.Add(ctx, service.SourceInput{URL: "https://example.com/rss", PollInterval: -time.Minute})
	require.ErrorIs(t, err, service.ErrInvalid)

	sources.EXPECT().FindByURL(ctx, "https://example.com/rss").Return(&model.FeedSource{ID: 1}, nil)
	_, err = svc.Add(ctx, service.SourceInput{URL: "https://example.com/rss"})
	require.ErrorIs(t, err, service.ErrConflict)
}

func TestSourceService_SetActive(t *testing.T) {
	ctrl := gomock.NewController(t)
	sources := mock.NewMockFeedSourceRepository(ctrl)
	svc := service.NewSourceService(sources)
	ctx := context.Background()

	sources.EXPECT().SetActive(ctx, int64(3), false).Return(nil)
	sources.EXPECT().GetByID(ctx, int64(3)).Return(model.FeedSource{ID: 3}, nil)
	got, err := svc.SetActive(ctx, 3, false)
	require.NoError(t, err)
	require.False(t, got.Active)

	sources.EXPECT().SetActive(ctx, int64(4), true).Return(sql.ErrNoRows)
	_, err = svc.SetActive(ctx, 4, true)
	require.ErrorIs(t, err, service.ErrNotFound)
}
