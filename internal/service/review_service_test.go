package service_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"quill/backend/internal/model"
	"quill/backend/internal/repository"
	"quill/backend/internal/repository/mock"
	"quill/backend/internal/service"
)

func TestReviewService_Reject(t *testing.T) {
	ctrl := gomock.NewController(t)
	items := mock.NewMockFetchedItemRepository(ctrl)
	svc := service.NewReviewService(items)
	ctx := context.Background()

	items.EXPECT().GetByID(ctx, int64(1)).Return(model.FetchedItem{ID: 1, Status: model.StatusApproved}, nil)
	items.EXPECT().TransitionStatus(ctx, int64(1), model.StatusApproved, model.StatusRejected).Return(true, nil)

	item, err := svc.Reject(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, model.StatusRejected, item.Status)
}

func TestReviewService_Reapprove(t *testing.T) {
	ctrl := gomock.NewController(t)
	items := mock.NewMockFetchedItemRepository(ctrl)
	svc := service.NewReviewService(items)
	ctx := context.Background()

	items.EXPECT().GetByID(ctx, int64(2)).Return(model.FetchedItem{ID: 2, Status: model.StatusRejected}, nil)
	items.EXPECT().TransitionStatus(ctx, int64(2), model.StatusRejected, model.StatusApproved).Return(true, nil)

	item, err := svc.Reapprove(ctx, 2)
	require.NoError(t, err)
	require.Equal(t, model.StatusApproved, item.Status)
}

func TestReviewService_RejectInvalidState(t *testing.T) {
	ctrl := gomock.NewController(t)
	items := mock.NewMockFetchedItemRepository(ctrl)
	svc := service.NewReviewService(items)
	ctx := context.Background()

	for _, status := range []model.ItemStatus{model.StatusPending, model.StatusProcessing, model.StatusPublished, model.StatusAbsorbed, model.StatusRejected} {
		items.EXPECT().GetByID(ctx, int64(3)).Return(model.FetchedItem{ID: 3, Status: status}, nil)
		_, err := svc.Reject(ctx, 3)
		require.ErrorIs(t, err, service.ErrStatusConflict, status.String())
	}
}

func TestReviewService_RejectLostRace(t *testing.T) {
	ctrl := gomock.NewController(t)
	items := mock.NewMockFetchedItemRepository(ctrl)
	svc := service.NewReviewService(items)
	ctx := context.Background()

	items.EXPECT().GetByID(ctx, int64(4)).Return(model.FetchedItem{ID: 4, Status: model.StatusApproved}, nil)
	items.EXPECT().TransitionStatus(ctx, int64(4), model.StatusApproved, model.StatusRejected).Return(false, nil)

	_, err := svc.Reject(ctx, 4)
	require.ErrorIs(t, err, service.ErrStatusConflict)
}

func TestReviewService_GetNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	items := mock.NewMockFetchedItemRepository(ctrl)
	svc := service.NewReviewService(items)

	items.EXPECT().GetByID(gomock.Any(), int64(5)).Return(model.FetchedItem{}, sql.ErrNoRows)

	_, err := svc.Get(context.Background(), 5)
	require.ErrorIs(t, err, service.ErrNotFound)
}

func TestReviewService_ListOrderAndLimit(t *testing.T) {
	ctrl := gomock.NewController(t)
	items := mock.NewMockFetchedItemRepository(ctrl)
	svc := service.NewReviewService(items)
	ctx := context.Background()

	items.EXPECT().ListByStatus(ctx, model.StatusPending, repository.OrderFetchedAsc, 50).Return(nil, nil)
	items.EXPECT().ListByStatus(ctx, model.StatusApproved, repository.OrderProcessedAsc, 200).Return(nil, nil)
	items.EXPECT().ListByStatus(ctx, model.StatusPublished, repository.OrderFetchedDesc, 10).Return(nil, nil)

	_, err := svc.List(ctx, model.StatusPending, 0)
	require.NoError(t, err)
	_, err = svc.List(ctx, model.StatusApproved, 1000)
	require.NoError(t, err)
	_, err = svc.List(ctx, model.StatusPublished, 10)
	require.NoError(t, err)

	_, err = svc.List(ctx, model.ItemStatus(0), 10)
	require.ErrorIs(t, err, service.ErrInvalid)
}
