package scheduler_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"quill/backend/internal/config"
	"quill/backend/internal/lock"
	"quill/backend/internal/scheduler"
	"quill/backend/internal/service"
	servicemock "quill/backend/internal/service/mock"
	"quill/backend/internal/task"
)

func TestScheduler_RunNowRecordsRun(t *testing.T) {
	s := scheduler.New(nil, nil, scheduler.Job{
		Name:     "echo",
		Interval: time.Hour,
		Run: func(ctx context.Context, trigger string) (any, error) {
			return trigger, nil
		},
	})

	summary, err := s.RunNow(context.Background(), "echo", scheduler.TriggerManual)
	require.NoError(t, err)
	require.Equal(t, scheduler.TriggerManual, summary)

	run, ok := s.Tracker().Get("echo")
	require.True(t, ok)
	require.Equal(t, task.RunDone, run.Status)
	require.Equal(t, scheduler.TriggerManual, run.Trigger)
	require.NotNil(t, run.FinishedAt)

	_, err = s.RunNow(context.Background(), "missing", scheduler.TriggerManual)
	require.ErrorIs(t, err, scheduler.ErrUnknownJob)
}

func TestScheduler_OverlappingRunIsSkipped(t *testing.T) {
	started := make(chan struct{})
	unblock := make(chan struct{})
	s := scheduler.New(lock.NewLocalLocker(), nil, scheduler.Job{
		Name:     "slow",
		Interval: time.Hour,
		Timeout:  5 * time.Second,
		Run: func(ctx context.Context, trigger string) (any, error) {
			close(started)
			<-unblock
			return nil, nil
		},
	})

	done := make(chan error, 1)
	go func() {
		_, err := s.RunNow(context.Background(), "slow", scheduler.TriggerManual)
		done <- err
	}()
	<-started

	_, err := s.RunNow(context.Background(), "slow", scheduler.TriggerManual)
	require.ErrorIs(t, err, scheduler.ErrJobBusy)

	close(unblock)
	require.NoError(t, <-done)
}

func TestScheduler_RecoversPanics(t *testing.T) {
	s := scheduler.New(nil, nil, scheduler.Job{
		Name:     "boom",
		Interval: time.Hour,
		Run: func(ctx context.Context, trigger string) (any, error) {
			panic("kaput")
		},
	})

	_, err := s.RunNow(context.Background(), "boom", scheduler.TriggerManual)
	require.ErrorIs(t, err, task.ErrPanic)

	run, ok := s.Tracker().Get("boom")
	require.True(t, ok)
	require.Equal(t, task.RunFailed, run.Status)

	// The lease was released.
	_, err = s.RunNow(context.Background(), "boom", scheduler.TriggerManual)
	require.ErrorIs(t, err, task.ErrPanic)
}

func TestScheduler_RunTimeout(t *testing.T) {
	s := scheduler.New(nil, nil, scheduler.Job{
		Name:     "stuck",
		Interval: time.Hour,
		Timeout:  20 * time.Millisecond,
		Run: func(ctx context.Context, trigger string) (any, error) {
			<-ctx.Done()
			return nil, ctx.Err()
		},
	})

	_, err := s.RunNow(context.Background(), "stuck", scheduler.TriggerManual)
	require.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestScheduler_Cascade(t *testing.T) {
	var nextRuns atomic.Int32
	s := scheduler.New(nil, nil,
		scheduler.Job{
			Name:     "first",
			Interval: time.Hour,
			Run: func(ctx context.Context, trigger string) (any, error) {
				return trigger == scheduler.TriggerManual, nil
			},
			Next:    "second",
			Cascade: func(summary any) bool { return summary.(bool) },
		},
		scheduler.Job{
			Name:     "second",
			Interval: time.Hour,
			Run: func(ctx context.Context, trigger string) (any, error) {
				require.Equal(t, scheduler.TriggerCascade, trigger)
				nextRuns.Add(1)
				return nil, nil
			},
		},
	)

	_, err := s.RunNow(context.Background(), "first", scheduler.TriggerManual)
	require.NoError(t, err)
	require.Equal(t, int32(1), nextRuns.Load())

	_, err = s.RunNow(context.Background(), "first", scheduler.TriggerSchedule)
	require.NoError(t, err)
	require.Equal(t, int32(1), nextRuns.Load())
}

func TestScheduler_StartRunsJobsAndStopCancels(t *testing.T) {
	var runs atomic.Int32
	cancelled := make(chan struct{})
	s := scheduler.New(nil, nil,
		scheduler.Job{
			Name:     "tick",
			Interval: 10 * time.Millisecond,
			Run: func(ctx context.Context, trigger string) (any, error) {
				runs.Add(1)
				return nil, nil
			},
		},
		scheduler.Job{
			Name:     "long",
			Interval: time.Hour,
			Timeout:  time.Hour,
			Run: func(ctx context.Context, trigger string) (any, error) {
				<-ctx.Done()
				close(cancelled)
				return nil, ctx.Err()
			},
		},
		scheduler.Job{
			Name:     "later",
			Interval: time.Hour,
			Offset:   time.Hour,
			Run: func(ctx context.Context, trigger string) (any, error) {
				return nil, errors.New("must not run")
			},
		},
	)

	s.Start()
	require.Eventually(t, func() bool { return runs.Load() >= 2 }, 2*time.Second, 5*time.Millisecond)
	require.Eventually(t, func() bool {
		run, ok := s.Tracker().Get("long")
		return ok && run.Status == task.RunRunning
	}, 2*time.Second, 5*time.Millisecond)
	s.Stop()

	<-cancelled
	_, ok := s.Tracker().Get("later")
	require.False(t, ok)
}

func TestPipelineJobs_FetchCascadesIntoGeneration(t *testing.T) {
	ctrl := gomock.NewController(t)
	fetch := servicemock.NewMockFetchService(ctrl)
	generation := servicemock.NewMockGenerationService(ctrl)
	autoPublish := servicemock.NewMockAutoPublishService(ctrl)

	cfg := config.Config{
		GenerationBatch:  7,
		FetchSchedule:    config.Schedule{Interval: time.Hour, Timeout: time.Minute},
		GenerateSchedule: config.Schedule{Interval: time.Hour, Timeout: time.Minute},
		PublishSchedule:  config.Schedule{Interval: time.Hour, Timeout: time.Minute},
	}
	s := scheduler.New(nil, nil, scheduler.PipelineJobs(cfg, fetch, generation, autoPublish)...)
	ctx := context.Background()

	gomock.InOrder(
		fetch.EXPECT().FetchAll(gomock.Any(), service.FetchOptions{Force: true}).Return(service.FetchSummary{SourcesPolled: 2, NewItemsCreated: 3}, nil),
		generation.EXPECT().GenerateBatch(gomock.Any(), 7).Return(service.GenerationSummary{Processed: 3}, nil),
	)
	summary, err := s.RunNow(ctx, scheduler.JobFetch, scheduler.TriggerManual)
	require.NoError(t, err)
	require.Equal(t, service.FetchSummary{SourcesPolled: 2, NewItemsCreated: 3}, summary)

	// Nothing new on a scheduled poll: no sweep.
	fetch.EXPECT().FetchAll(gomock.Any(), service.FetchOptions{Force: false}).Return(service.FetchSummary{SourcesPolled: 1}, nil)
	_, err = s.RunNow(ctx, scheduler.JobFetch, scheduler.TriggerSchedule)
	require.NoError(t, err)

	autoPublish.EXPECT().Run(gomock.Any()).Return(service.PublishSummary{Published: 1}, nil)
	summary, err = s.RunNow(ctx, scheduler.JobAutoPublish, scheduler.TriggerManual)
	require.NoError(t, err)
	require.Equal(t, service.PublishSummary{Published: 1}, summary)
}

func TestScheduler_StopSkipsCascadeOfCancelledRun(t *testing.T) {
	var cascaded atomic.Bool
	s := scheduler.New(nil, nil,
		scheduler.Job{
			Name:     "poll",
			Interval: time.Hour,
			Timeout:  time.Hour,
			Run: func(ctx context.Context, trigger string) (any, error) {
				<-ctx.Done()
				// Reports what it stored before the cancellation.
				return 1, nil
			},
			Next:    "sweep",
			Cascade: func(summary any) bool { return summary.(int) > 0 },
		},
		scheduler.Job{
			Name:     "sweep",
			Interval: time.Hour,
			Offset:   time.Hour,
			Timeout:  3 * time.Second,
			Run: func(ctx context.Context, trigger string) (any, error) {
				cascaded.Store(true)
				<-ctx.Done()
				return nil, ctx.Err()
			},
		},
	)

	s.Start()
	require.Eventually(t, func() bool {
		run, ok := s.Tracker().Get("poll")
		return ok && run.Status == task.RunRunning
	}, 2*time.Second, 5*time.Millisecond)

	start := time.Now()
	s.Stop()
	require.Less(t, time.Since(start), time.Second)
	require.False(t, cascaded.Load())

	_, err := s.RunNow(context.Background(), "sweep", scheduler.TriggerManual)
	require.ErrorIs(t, err, scheduler.ErrStopped)
}

func TestScheduler_StopTwice(t *testing.T) {
	s := scheduler.New(nil, nil, scheduler.Job{
		Name:     "noop",
		Interval: time.Hour,
		Run:      func(ctx context.Context, trigger string) (any, error) { return nil, nil },
	})
	s.Start()
	s.Stop()
	require.NotPanics(t, s.Stop)
}
