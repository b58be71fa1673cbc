// Package task runs batches of independent units with bounded concurrency,
// a per-unit timeout and failure isolation.
package task

import (
	"context"
	"errors"
	"fmt"
	"runtime/debug"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"quill/backend/internal/logger"
)

// ErrPanic wraps a panic recovered from a unit.
var ErrPanic = errors.New("task panicked")

type Options struct {
	// Name labels log records, e.g. "fetch" or "generate".
	Name string
	// Concurrency caps in-flight units. Values below 1 run sequentially.
	Concurrency int
	// Timeout bounds each unit. Zero means only the parent context applies.
	Timeout time.Duration
}

type Result struct {
	Index    int
	Err      error
	Duration time.Duration
}

type Report struct {
	RunID     string
	Results   []Result
	Succeeded int
	Failed    int
}

// Run calls fn once per input. A failing, timing out or panicking unit is
// recorded in the report and never stops the others.
func Run[T any](ctx context.Context, opts Options, inputs []T, fn func(ctx context.Context, in T) error) Report {
	report := Report{
		RunID:   uuid.NewString(),
		Results: make([]Result, len(inputs)),
	}
	if len(inputs) == 0 {
		return report
	}

	limit := opts.Concurrency
	if limit < 1 {
		limit = 1
	}

	var g errgroup.Group
	g.SetLimit(limit)
	for i, in := range inputs {
		g.Go(func() error {
			started := time.Now()
			err := runUnit(ctx, opts.Timeout, in, fn)
			report.Results[i] = Result{Index: i, Err: err, Duration: time.Since(started)}
			if err != nil {
				logger.Debug("task unit failed", "module", "task", "action", opts.Name, "resource", "unit", "result", "failed", "run_id", report.RunID, "index", i, "error", err)
			}
			return nil
		})
	}
	_ = g.Wait()

	for _, r := range report.Results {
		if r.Err != nil {
			report.Failed++
		} else {
			report.Succeeded++
		}
	}
	return report
}

func runUnit[T any](ctx context.Context, timeout time.Duration, in T, fn func(ctx context.Context, in T) error) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	defer func() {
		if p := recover(); p != nil {
			logger.Error("task unit panic", "module", "task", "action", "run", "resource", "unit", "result", "failed", "panic", p, "stack", string(debug.Stack()))
			err = fmt.Errorf("%w: %v", ErrPanic, p)
		}
	}()
	return fn(ctx, in)
}
