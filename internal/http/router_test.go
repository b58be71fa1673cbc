package http_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"quill/backend/internal/handler"
	transport "quill/backend/internal/http"
	"quill/backend/internal/model"
	"quill/backend/internal/scheduler"
	"quill/backend/internal/service/mock"
)

type pingerFunc func(ctx context.Context) error

func (f pingerFunc) PingContext(ctx context.Context) error { return f(ctx) }

func newRouter(t *testing.T, db transport.Pinger) (*mock.MockSourceService, http.Handler) {
	ctrl := gomock.NewController(t)
	sources := mock.NewMockSourceService(ctrl)
	settings := mock.NewMockSettingsService(ctrl)
	e := transport.NewRouter(
		handler.NewPipelineHandler(scheduler.New(nil, nil)),
		handler.NewItemsHandler(mock.NewMockReviewService(ctrl), mock.NewMockGenerationService(ctrl), mock.NewMockPublishService(ctrl), settings),
		handler.NewSourcesHandler(sources, mock.NewMockFetchService(ctrl)),
		handler.NewSettingsHandler(settings),
		db,
	)
	return sources, e
}

func get(h http.Handler, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestRouter_Healthz(t *testing.T) {
	_, h := newRouter(t, pingerFunc(func(context.Context) error { return nil }))
	rec := get(h, "/healthz")
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"status":"ok"}`, rec.Body.String())

	_, h = newRouter(t, pingerFunc(func(context.Context) error { return errors.New("database is locked") }))
	rec = get(h, "/healthz")
	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
	require.Contains(t, rec.Body.String(), "database is locked")
}

func TestRouter_MetricsCountRequests(t *testing.T) {
	sources, h := newRouter(t, nil)
	sources.EXPECT().List(gomock.Any()).Return([]model.FeedSource{}, nil)

	require.Equal(t, http.StatusOK, get(h, "/api/sources").Code)
	require.Equal(t, http.StatusNotFound, get(h, "/api/nothing-here").Code)

	rec := get(h, "/metrics")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `quill_http_requests_total{code="200",method="GET",route="/api/sources"}`)
}

func TestRouter_UnregisteredJob(t *testing.T) {
	_, h := newRouter(t, nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/pipeline/fetch", nil))
	// The scheduler here has no jobs registered.
	require.Equal(t, http.StatusNotFound, rec.Code)
}
