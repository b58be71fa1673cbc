package scheduler

import (
	"context"
	"errors"
	"fmt"
	"runtime/debug"
	"sync"
	"time"

	"quill/backend/internal/lock"
	"quill/backend/internal/logger"
	"quill/backend/internal/metrics"
	"quill/backend/internal/task"
)

const (
	TriggerSchedule = "schedule"
	TriggerManual   = "manual"
	TriggerCascade  = "cascade"
)

var (
	// ErrJobBusy is returned when a run of the same job holds the lease.
	ErrJobBusy    = errors.New("job already running")
	ErrUnknownJob = errors.New("unknown job")
	// ErrStopped is returned for runs requested after Stop.
	ErrStopped = errors.New("scheduler stopped")
)

// leaseMargin extends a lease past the run timeout so it never expires
// while the run is still being cancelled.
const leaseMargin = time.Minute

// Job is one recurring pipeline step.
type Job struct {
	Name     string
	Interval time.Duration
	Offset   time.Duration
	Timeout  time.Duration
	Run      func(ctx context.Context, trigger string) (any, error)

	// Next names the job started after a successful run for which Cascade
	// reports true.
	Next    string
	Cascade func(summary any) bool
}

type Scheduler struct {
	jobs    map[string]Job
	order   []string
	locker  lock.Locker
	tracker *task.Tracker

	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup

	mu      sync.Mutex
	stopped bool
	cancels map[string]context.CancelFunc // in-flight runs by run id
}

func New(locker lock.Locker, tracker *task.Tracker, jobs ...Job) *Scheduler {
	if locker == nil {
		locker = lock.NewLocalLocker()
	}
	if tracker == nil {
		tracker = task.NewTracker()
	}
	s := &Scheduler{
		jobs:    make(map[string]Job, len(jobs)),
		locker:  locker,
		tracker: tracker,
		stopCh:  make(chan struct{}),
		cancels: make(map[string]context.CancelFunc),
	}
	for _, job := range jobs {
		s.jobs[job.Name] = job
		s.order = append(s.order, job.Name)
	}
	return s
}

func (s *Scheduler) Tracker() *task.Tracker {
	return s.tracker
}

func (s *Scheduler) Start() {
	for _, name := range s.order {
		job := s.jobs[name]
		s.wg.Add(1)
		go s.loop(job)
		logger.Info("scheduler job started", "module", "scheduler", "action", "start", "resource", job.Name, "result", "ok",
			"interval_ms", job.Interval.Milliseconds(), "offset_ms", job.Offset.Milliseconds())
	}
}

// Stop cancels in-flight runs and waits for the job loops to exit.
// Runs requested afterwards, cascades included, fail with ErrStopped. Calling
// Stop again is a no-op.
func (s *Scheduler) Stop() {
	first := false
	s.stopOnce.Do(func() {
		first = true
		close(s.stopCh)

		s.mu.Lock()
		s.stopped = true
		for _, cancel := range s.cancels {
			cancel()
		}
		s.mu.Unlock()
	})
	s.wg.Wait()
	if !first {
		return
	}
	logger.Info("scheduler stopped", "module", "scheduler", "action", "stop", "resource", "job", "result", "ok")
}

// RunNow runs the named job immediately under the same lease as scheduled runs.
func (s *Scheduler) RunNow(ctx context.Context, name, trigger string) (any, error) {
	job, ok := s.jobs[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownJob, name)
	}
	return s.execute(ctx, job, trigger)
}

func (s *Scheduler) loop(job Job) {
	defer s.wg.Done()

	if job.Offset > 0 {
		timer := time.NewTimer(job.Offset)
		select {
		case <-timer.C:
		case <-s.stopCh:
			timer.Stop()
			return
		}
	}

	s.scheduled(job)

	ticker := time.NewTicker(job.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.scheduled(job)
		case <-s.stopCh:
			return
		}
	}
}

func (s *Scheduler) scheduled(job Job) {
	// A stop may race the tick.
	select {
	case <-s.stopCh:
		return
	default:
	}
	if _, err := s.execute(context.Background(), job, TriggerSchedule); err != nil && !errors.Is(err, ErrJobBusy) && !errors.Is(err, ErrStopped) {
		logger.Error("scheduled job failed", "module", "scheduler", "action", job.Name, "resource", "job", "result", "failed", "error", err)
	}
}

// execute holds the job lease for the whole run, cascade excluded.
func (s *Scheduler) execute(parent context.Context, job Job, trigger string) (any, error) {
	timeout := job.Timeout
	if timeout <= 0 {
		timeout = job.Interval
	}

	if s.isStopped() {
		return nil, ErrStopped
	}

	release, err := s.locker.Acquire(parent, job.Name, timeout+leaseMargin)
	if err != nil {
		metrics.ObserveJob(job.Name, metrics.ResultSkipped, 0)
		if errors.Is(err, lock.ErrNotAcquired) {
			logger.Info("job skipped, previous run still active", "module", "scheduler", "action", job.Name, "resource", "job", "result", "skipped", "trigger", trigger)
			return nil, ErrJobBusy
		}
		return nil, fmt.Errorf("acquire %s lease: %w", job.Name, err)
	}

	ctx, cancel := context.WithTimeout(parent, timeout)
	// Registered under mu together with Start so Stop sees every run the
	// tracker reports as running.
	s.mu.Lock()
	if s.stopped {
		s.mu.Unlock()
		cancel()
		release()
		return nil, ErrStopped
	}
	runID := s.tracker.Start(job.Name, trigger)
	s.cancels[runID] = cancel
	s.mu.Unlock()

	started := time.Now()
	summary, err := s.invoke(ctx, job, trigger)
	elapsed := time.Since(started)
	// A run cut short by Stop or its timeout never cascades, even when the
	// job swallowed the cancellation and reported success.
	interrupted := ctx.Err() != nil

	s.mu.Lock()
	delete(s.cancels, runID)
	s.mu.Unlock()
	cancel()
	release()

	s.tracker.Finish(job.Name, runID, summary, err)
	metrics.ObserveJob(job.Name, metrics.Result(err), elapsed)
	if err != nil {
		logger.Warn("job run failed", "module", "scheduler", "action", job.Name, "resource", "job", "result", "failed", "run_id", runID, "trigger", trigger, "duration_ms", elapsed.Milliseconds(), "error", err)
		return summary, err
	}
	logger.Info("job run finished", "module", "scheduler", "action", job.Name, "resource", "job", "result", "ok", "run_id", runID, "trigger", trigger, "duration_ms", elapsed.Milliseconds(), "summary", summary)

	if interrupted || s.isStopped() {
		return summary, nil
	}
	if job.Next != "" && job.Cascade != nil && job.Cascade(summary) {
		if next, ok := s.jobs[job.Next]; ok {
			if _, err := s.execute(parent, next, TriggerCascade); err != nil && !errors.Is(err, ErrJobBusy) && !errors.Is(err, ErrStopped) {
				logger.Warn("cascaded job failed", "module", "scheduler", "action", next.Name, "resource", "job", "result", "failed", "parent", job.Name, "error", err)
			}
		}
	}
	return summary, nil
}

func (s *Scheduler) isStopped() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stopped
}

func (s *Scheduler) invoke(ctx context.Context, job Job, trigger string) (summary any, err error) {
	defer func() {
		if p := recover(); p != nil {
			logger.Error("job panic", "module", "scheduler", "action", job.Name, "resource", "job", "result", "failed", "panic", p, "stack", string(debug.Stack()))
			err = fmt.Errorf("%w: %v", task.ErrPanic, p)
		}
	}()
	return job.Run(ctx, trigger)
}
