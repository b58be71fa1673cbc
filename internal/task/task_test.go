package task_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"quill/backend/internal/task"
)

func TestRun_IsolatesFailures(t *testing.T) {
	inputs := []int{1, 2, 3, 4, 5}
	boom := errors.New("boom")

	report := task.Run(context.Background(), task.Options{Name: "test", Concurrency: 3}, inputs, func(ctx context.Context, in int) error {
		if in == 3 {
			return boom
		}
		return nil
	})

	require.NotEmpty(t, report.RunID)
	require.Equal(t, 4, report.Succeeded)
	require.Equal(t, 1, report.Failed)
	require.ErrorIs(t, report.Results[2].Err, boom)
	require.NoError(t, report.Results[0].Err)
}

func TestRun_TimeoutPerUnit(t *testing.T) {
	report := task.Run(context.Background(), task.Options{Concurrency: 2, Timeout: 20 * time.Millisecond}, []time.Duration{0, time.Second}, func(ctx context.Context, d time.Duration) error {
		select {
		case <-time.After(d):
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	})

	require.Equal(t, 1, report.Succeeded)
	require.ErrorIs(t, report.Results[1].Err, context.DeadlineExceeded)
}

func TestRun_RecoversPanic(t *testing.T) {
	report := task.Run(context.Background(), task.Options{}, []string{"ok", "panic"}, func(ctx context.Context, in string) error {
		if in == "panic" {
			panic("bad unit")
		}
		return nil
	})

	require.Equal(t, 1, report.Failed)
	require.ErrorIs(t, report.Results[1].Err, task.ErrPanic)
}

func TestRun_RespectsConcurrency(t *testing.T) {
	var inFlight, peak int32
	inputs := make([]int, 10)
	task.Run(context.Background(), task.Options{Concurrency: 2}, inputs, func(ctx context.Context, _ int) error {
		n := atomic.AddInt32(&inFlight, 1)
		for {
			p := atomic.LoadInt32(&peak)
			if n <= p || atomic.CompareAndSwapInt32(&peak, p, n) {
				break
			}
		}
		time.Sleep(5 * time.Millisecond)
		atomic.AddInt32(&inFlight, -1)
		return nil
	})
	require.LessOrEqual(t, atomic.LoadInt32(&peak), int32(2))
}

func TestRun_CancelledParent(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var called int32
	report := task.Run(ctx, task.Options{}, []int{1, 2}, func(ctx context.Context, _ int) error {
		atomic.AddInt32(&called, 1)
		return nil
	})
	require.Equal(t, 2, report.Failed)
	require.Zero(t, atomic.LoadInt32(&called))
}

func TestRun_Empty(t *testing.T) {
	report := task.Run(context.Background(), task.Options{}, []int(nil), func(context.Context, int) error { return nil })
	require.Zero(t, report.Succeeded)
	require.Empty(t, report.Results)
}

func TestTracker(t *testing.T) {
	tr := task.NewTracker()
	_, ok := tr.Get("fetch")
	require.False(t, ok)

	first := tr.Start("fetch", "manual")
	second := tr.Start("fetch", "schedule")
	tr.Finish("fetch", first, "stale", nil)

	run, ok := tr.Get("fetch")
	require.True(t, ok)
	require.Equal(t, second, run.ID)
	require.Equal(t, task.RunRunning, run.Status)

	tr.Finish("fetch", second, map[string]int{"sourcesPolled": 1}, errors.New("partial"))
	run, _ = tr.Get("fetch")
	require.Equal(t, task.RunFailed, run.Status)
	require.Equal(t, "partial", run.Error)
	require.NotNil(t, run.FinishedAt)
	require.Len(t, tr.Latest(), 1)
}
