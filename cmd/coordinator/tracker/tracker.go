// Package tracker owns the coordinator's bookkeeping: registered workers,
// jobs, and each job's state machine.
package tracker

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"linecount/utils"
)

// JobState is one stage of a job's lifecycle.
type JobState string

const (
	StateSubmitted JobState = "SUBMITTED"
	StateMapping   JobState = "MAPPING"
	StateShuffled  JobState = "SHUFFLED"
	StateReducing  JobState = "REDUCING"
	StateCompleted JobState = "COMPLETED"
	StateFailed    JobState = "FAILED"
)

// validNext lists the legal forward transitions. Failed is reachable from
// every non-terminal state and, like Completed, is terminal: there is no
// retry or partial success inside the job.
var validNext = map[JobState][]JobState{
	StateSubmitted: {StateMapping, StateCompleted, StateFailed},
	StateMapping:   {StateShuffled, StateFailed},
	StateShuffled:  {StateReducing, StateFailed},
	StateReducing:  {StateCompleted, StateFailed},
	StateCompleted: {},
	StateFailed:    {},
}

var (
	ErrUnknownJob    = errors.New("unknown job")
	ErrUnknownWorker = errors.New("unknown worker")
)

// Job is one submitted run. The spill list is ordered so the reduce task
// always sees its inputs in the same order regardless of map completion
// order.
type Job struct {
	ID         string
	InputDir   string
	OutputPath string

	mutex    sync.Mutex
	state    JobState
	errMsg   string
	checksum string
	spills   *utils.OrderedList[string]
}

// Transition moves the job to next if the state machine allows it.
func (j *Job) Transition(next JobState) error {
	j.mutex.Lock()
	defer j.mutex.Unlock()
	for _, allowed := range validNext[j.state] {
		if allowed == next {
			j.state = next
			return nil
		}
	}
	return fmt.Errorf("job %s: illegal transition %s -> %s", j.ID, j.state, next)
}

// Fail moves the job to Failed and records the reason. Failing a job that
// already reached a terminal state is ignored.
func (j *Job) Fail(reason error) {
	j.mutex.Lock()
	defer j.mutex.Unlock()
	if j.state == StateCompleted || j.state == StateFailed {
		return
	}
	j.state = StateFailed
	j.errMsg = reason.Error()
}

// Complete marks the job done and records the report artifact's checksum.
func (j *Job) Complete(checksum string) error {
	if err := j.Transition(StateCompleted); err != nil {
		return err
	}
	j.mutex.Lock()
	j.checksum = checksum
	j.mutex.Unlock()
	return nil
}

// AddSpills records intermediate files produced by a finished map task.
func (j *Job) AddSpills(files []string) {
	j.mutex.Lock()
	defer j.mutex.Unlock()
	for _, f := range files {
		j.spills.Add(f)
	}
}

// Spills returns the ordered intermediate file list.
func (j *Job) Spills() []string {
	j.mutex.Lock()
	defer j.mutex.Unlock()
	return j.spills.Items()
}

// Status returns the current state, failure message, and artifact checksum.
func (j *Job) Status() (JobState, string, string) {
	j.mutex.Lock()
	defer j.mutex.Unlock()
	return j.state, j.errMsg, j.checksum
}

// Tracker is the coordinator's registry of jobs and workers.
type Tracker struct {
	mutex    sync.Mutex
	jobs     map[string]*Job
	nextJob  uint64
	workers  *utils.OrderedList[string]
	lastSeen map[string]time.Time
}

func NewTracker() *Tracker {
	return &Tracker{
		jobs:     make(map[string]*Job),
		workers:  utils.NewOrderedList[string](),
		lastSeen: make(map[string]time.Time),
	}
}

// AddWorker registers (or refreshes) a worker by its listen address.
func (t *Tracker) AddWorker(addr string) {
	t.mutex.Lock()
	defer t.mutex.Unlock()
	t.workers.Add(addr)
	t.lastSeen[addr] = time.Now()
}

// Heartbeat refreshes a worker's liveness.
func (t *Tracker) Heartbeat(addr string) error {
	t.mutex.Lock()
	defer t.mutex.Unlock()
	if !t.workers.Contains(addr) {
		return fmt.Errorf("%w: %s", ErrUnknownWorker, addr)
	}
	t.lastSeen[addr] = time.Now()
	return nil
}

// PruneWorkers drops workers not heard from within expiry and returns the
// removed addresses.
func (t *Tracker) PruneWorkers(expiry time.Duration) []string {
	t.mutex.Lock()
	defer t.mutex.Unlock()
	cutoff := time.Now().Add(-expiry)
	removed := make([]string, 0)
	for _, addr := range t.workers.Items() {
		if t.lastSeen[addr].Before(cutoff) {
			removed = append(removed, addr)
		}
	}
	for _, addr := range removed {
		t.workers.Remove(addr)
		delete(t.lastSeen, addr)
	}
	return removed
}

// Workers returns the sorted addresses of live workers. The order is what
// makes task assignment deterministic.
func (t *Tracker) Workers() []string {
	t.mutex.Lock()
	defer t.mutex.Unlock()
	items := t.workers.Items()
	out := make([]string, len(items))
	copy(out, items)
	return out
}

// CreateJob registers a new job in the Submitted state and assigns its run
// number.
func (t *Tracker) CreateJob(inputDir, outputPath string) *Job {
	t.mutex.Lock()
	defer t.mutex.Unlock()
	t.nextJob++
	j := &Job{
		ID:         fmt.Sprintf("job-%d", t.nextJob),
		InputDir:   inputDir,
		OutputPath: outputPath,
		state:      StateSubmitted,
		spills:     utils.NewOrderedList[string](),
	}
	t.jobs[j.ID] = j
	return j
}

// GetJob looks a job up by ID.
func (t *Tracker) GetJob(id string) (*Job, error) {
	t.mutex.Lock()
	defer t.mutex.Unlock()
	j, ok := t.jobs[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownJob, id)
	}
	return j, nil
}
