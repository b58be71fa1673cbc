package task

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

type RunStatus string

const (
	RunRunning RunStatus = "running"
	RunDone    RunStatus = "done"
	RunFailed  RunStatus = "error"
)

// RunRecord is one pipeline job execution.
type RunRecord struct {
	ID         string     `json:"id"`
	Job        string     `json:"job"`
	Trigger    string     `json:"trigger"`
	Status     RunStatus  `json:"status"`
	Summary    any        `json:"summary,omitempty"`
	Error      string     `json:"error,omitempty"`
	StartedAt  time.Time  `json:"startedAt"`
	FinishedAt *time.Time `json:"finishedAt,omitempty"`
}

// Tracker keeps the latest run of each job in memory.
type Tracker struct {
	mu   sync.RWMutex
	runs map[string]*RunRecord
}

func NewTracker() *Tracker {
	return &Tracker{runs: make(map[string]*RunRecord)}
}

// Start records a running execution of job and returns its id.
func (t *Tracker) Start(job, trigger string) string {
	id := uuid.NewString()
	t.mu.Lock()
	defer t.mu.Unlock()
	t.runs[job] = &RunRecord{
		ID:        id,
		Job:       job,
		Trigger:   trigger,
		Status:    RunRunning,
		StartedAt: time.Now().UTC(),
	}
	return id
}

// Finish closes the run id. Stale ids, replaced by a newer Start, are ignored.
func (t *Tracker) Finish(job, id string, summary any, err error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	run, ok := t.runs[job]
	if !ok || run.ID != id {
		return
	}
	now := time.Now().UTC()
	run.FinishedAt = &now
	run.Summary = summary
	if err != nil {
		run.Status = RunFailed
		run.Error = err.Error()
		return
	}
	run.Status = RunDone
}

// Latest returns a copy of every job's most recent run.
func (t *Tracker) Latest() []RunRecord {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make([]RunRecord, 0, len(t.runs))
	for _, run := range t.runs {
		out = append(out, *run)
	}
	return out
}

func (t *Tracker) Get(job string) (RunRecord, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	run, ok := t.runs[job]
	if !ok {
		return RunRecord{}, false
	}
	return *run, true
}
