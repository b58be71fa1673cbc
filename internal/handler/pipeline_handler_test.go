package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"quill/backend/internal/handler"
	"quill/backend/internal/scheduler"
	"quill/backend/internal/service"
	"quill/backend/internal/task"
)

func TestPipelineHandler(t *testing.T) {
	started := make(chan struct{})
	unblock := make(chan struct{})
	sched := scheduler.New(nil, nil,
		scheduler.Job{
			Name:     scheduler.JobFetch,
			Interval: time.Hour,
			Run: func(ctx context.Context, trigger string) (any, error) {
				require.Equal(t, scheduler.TriggerManual, trigger)
				return service.FetchSummary{SourcesPolled: 3, NewItemsCreated: 2, SourceErrors: 1}, nil
			},
		},
		scheduler.Job{
			Name:     scheduler.JobGenerate,
			Interval: time.Hour,
			Run: func(ctx context.Context, trigger string) (any, error) {
				return service.GenerationSummary{}, service.ErrProviderNotConfigured
			},
		},
		scheduler.Job{
			Name:     scheduler.JobAutoPublish,
			Interval: time.Hour,
			Run: func(ctx context.Context, trigger string) (any, error) {
				close(started)
				<-unblock
				return service.PublishSummary{SkipReason: service.SkipDisabled}, nil
			},
		},
	)
	e := newServer(handler.NewPipelineHandler(sched))

	rec := do(t, e, http.MethodPost, "/api/pipeline/fetch", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, map[string]any{"sourcesPolled": float64(3), "newItemsCreated": float64(2), "sourceErrors": float64(1)}, decode(t, rec))

	rec = do(t, e, http.MethodPost, "/api/pipeline/generate", "")
	require.Equal(t, http.StatusServiceUnavailable, rec.Code)

	done := make(chan int, 1)
	go func() {
		done <- do(t, e, http.MethodPost, "/api/pipeline/autopublish", "").Code
	}()
	<-started
	rec = do(t, e, http.MethodPost, "/api/pipeline/autopublish", "")
	require.Equal(t, http.StatusConflict, rec.Code)
	close(unblock)
	require.Equal(t, http.StatusOK, <-done)

	rec = do(t, e, http.MethodGet, "/api/pipeline/runs", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var runs []task.RunRecord
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &runs))
	require.Len(t, runs, 3)
	require.Equal(t, scheduler.JobAutoPublish, runs[0].Job)
	require.Equal(t, task.RunDone, runs[0].Status)
	require.Equal(t, scheduler.JobFetch, runs[1].Job)
	require.Equal(t, scheduler.JobGenerate, runs[2].Job)
	require.Equal(t, task.RunFailed, runs[2].Status)
}
