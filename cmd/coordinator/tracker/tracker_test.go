package tracker

import (
	"errors"
	"reflect"
	"testing"
	"time"
)

func TestJobLifecycle(t *testing.T) {
	tr := NewTracker()
	j := tr.CreateJob("/in", "/out/report.txt")
	if j.ID != "job-1" {
		t.Errorf("first job ID = %s, want job-1", j.ID)
	}

	for _, next := range []JobState{StateMapping, StateShuffled, StateReducing} {
		if err := j.Transition(next); err != nil {
			t.Fatalf("Transition(%s): %v", next, err)
		}
	}
	if err := j.Complete("d41d8cd98f00b204e9800998ecf8427e"); err != nil {
		t.Fatalf("Complete: %v", err)
	}
	state, errMsg, checksum := j.Status()
	if state != StateCompleted || errMsg != "" {
		t.Errorf("Status() = %s/%q, want COMPLETED with no error", state, errMsg)
	}
	if checksum != "d41d8cd98f00b204e9800998ecf8427e" {
		t.Errorf("checksum = %s", checksum)
	}
}

func TestJobIllegalTransition(t *testing.T) {
	tr := NewTracker()
	j := tr.CreateJob("/in", "/out")
	// Submitted cannot jump straight to Reducing.
	if err := j.Transition(StateReducing); err == nil {
		t.Error("expected error for SUBMITTED -> REDUCING")
	}
}

func TestJobEmptyInputCompletesDirectly(t *testing.T) {
	tr := NewTracker()
	j := tr.CreateJob("/in", "/out")
	// An empty input set skips mapping entirely.
	if err := j.Complete("d41d8cd98f00b204e9800998ecf8427e"); err != nil {
		t.Fatalf("Complete from SUBMITTED: %v", err)
	}
}

func TestJobFailIsTerminalAndIdempotent(t *testing.T) {
	tr := NewTracker()
	j := tr.CreateJob("/in", "/out")
	j.Fail(errors.New("worker lost"))
	j.Fail(errors.New("second reason"))
	state, errMsg, _ := j.Status()
	if state != StateFailed {
		t.Fatalf("state = %s, want FAILED", state)
	}
	if errMsg != "worker lost" {
		t.Errorf("errMsg = %q, want the first recorded reason", errMsg)
	}
	if err := j.Transition(StateMapping); err == nil {
		t.Error("expected error transitioning out of FAILED")
	}

	done := tr.CreateJob("/in", "/out")
	if err := done.Complete("abc"); err != nil {
		t.Fatal(err)
	}
	done.Fail(errors.New("too late"))
	state, _, _ = done.Status()
	if state != StateCompleted {
		t.Errorf("Fail after Complete changed state to %s", state)
	}
}

func TestJobSpillsOrderedDeduplicated(t *testing.T) {
	tr := NewTracker()
	j := tr.CreateJob("/in", "/out")
	j.AddSpills([]string{"spill-job-1-2.jsonl", "spill-job-1-0.jsonl"})
	j.AddSpills([]string{"spill-job-1-1.jsonl", "spill-job-1-0.jsonl"})
	want := []string{"spill-job-1-0.jsonl", "spill-job-1-1.jsonl", "spill-job-1-2.jsonl"}
	if !reflect.DeepEqual(j.Spills(), want) {
		t.Errorf("Spills() = %v, want %v", j.Spills(), want)
	}
}

func TestTrackerWorkers(t *testing.T) {
	tr := NewTracker()
	tr.AddWorker("localhost:9002")
	tr.AddWorker("localhost:9001")
	if !reflect.DeepEqual(tr.Workers(), []string{"localhost:9001", "localhost:9002"}) {
		t.Errorf("Workers() = %v, want sorted addresses", tr.Workers())
	}
	if err := tr.Heartbeat("localhost:9001"); err != nil {
		t.Errorf("Heartbeat for registered worker: %v", err)
	}
	if err := tr.Heartbeat("localhost:9999"); !errors.Is(err, ErrUnknownWorker) {
		t.Errorf("Heartbeat for unknown worker = %v, want ErrUnknownWorker", err)
	}
}

func TestTrackerPruneWorkers(t *testing.T) {
	tr := NewTracker()
	tr.AddWorker("localhost:9001")
	tr.AddWorker("localhost:9002")
	time.Sleep(20 * time.Millisecond)
	tr.AddWorker("localhost:9002") // refresh

	removed := tr.PruneWorkers(10 * time.Millisecond)
	if !reflect.DeepEqual(removed, []string{"localhost:9001"}) {
		t.Errorf("removed = %v, want only the stale worker", removed)
	}
	if !reflect.DeepEqual(tr.Workers(), []string{"localhost:9002"}) {
		t.Errorf("Workers() = %v after prune", tr.Workers())
	}
}

func TestTrackerGetJob(t *testing.T) {
	tr := NewTracker()
	j := tr.CreateJob("/in", "/out")
	got, err := tr.GetJob(j.ID)
	if err != nil || got != j {
		t.Errorf("GetJob(%s) = %v, %v", j.ID, got, err)
	}
	if _, err := tr.GetJob("job-404"); !errors.Is(err, ErrUnknownJob) {
		t.Errorf("GetJob(unknown) = %v, want ErrUnknownJob", err)
	}
}
