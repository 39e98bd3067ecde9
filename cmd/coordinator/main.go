package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"net"
	"os"
	"path/filepath"
	"time"

	"google.golang.org/protobuf/proto"

	"linecount/cmd/coordinator/dispatch"
	"linecount/cmd/coordinator/tracker"
	"linecount/mapreduce/engine"
	"linecount/protogen/job"
	rpcClient "linecount/rpc/client"
	"linecount/rpc/server"
	"linecount/utils"
)

const (
	workerExpiry  = 30 * time.Second
	pruneInterval = 10 * time.Second
)

type mux struct {
	t               *tracker.Tracker
	scratchRoot     string
	disableCombiner bool
}

func main() {
	listenAddr := flag.String("listenAddr", "localhost:8080", "Listen address")
	scratchRoot := flag.String("scratchRoot", os.TempDir(), "Directory for intermediate spill files (must be shared with workers)")
	noCombiner := flag.Bool("no-combiner", false, "Disable per-worker pre-aggregation for all jobs")
	flag.Parse()

	m := mux{
		t:               tracker.NewTracker(),
		scratchRoot:     *scratchRoot,
		disableCombiner: *noCombiner,
	}

	s := server.NewServer()
	s.SetLogPrefix("[coordinator]")
	s.SetRecoverFromPanic(true)
	s.RegisterByMessage(&job.RegisterWorker{}, m.registerWorkerRequest)
	s.RegisterByMessage(&job.Heartbeat{}, m.heartbeatRequest)
	s.RegisterByMessage(&job.SubmitJob{}, m.submitJobRequest)
	s.RegisterByMessage(&job.JobStatusRequest{}, m.jobStatusRequest)

	listener, err := net.Listen("tcp", *listenAddr)
	if err != nil {
		panic(err)
	}
	log.Printf("[coordinator] listening at %s, scratch root: %s", *listenAddr, *scratchRoot)

	go m.pruneWorkers()
	s.Serve(listener)
}

// pruneWorkers drops workers that stopped heartbeating. A pruned worker is
// simply not assigned further tasks; tasks already sent to it fail the job
// when their RPC fails.
func (m *mux) pruneWorkers() {
	for timer := time.NewTimer(pruneInterval); true; timer.Reset(pruneInterval) {
		<-timer.C
		for _, addr := range m.t.PruneWorkers(workerExpiry) {
			log.Printf("[coordinator] worker %s expired, removed", addr)
		}
	}
}

// registerWorkerRequest handles the RegisterWorker RPC from a worker.
func (m *mux) registerWorkerRequest(ctx server.Context, req proto.Message) (proto.Message, error) {
	reg := req.(*job.RegisterWorker)
	m.t.AddWorker(reg.ListenAddr)
	log.Printf("[coordinator] worker %s registered, freespace: %d", reg.ListenAddr, reg.Freespace)
	return &job.Ack{}, nil
}

// heartbeatRequest handles the Heartbeat RPC from a worker.
func (m *mux) heartbeatRequest(ctx server.Context, req proto.Message) (proto.Message, error) {
	hb := req.(*job.Heartbeat)
	if err := m.t.Heartbeat(hb.WorkerId); err != nil {
		// The worker was pruned; let it register again.
		m.t.AddWorker(hb.WorkerId)
	}
	return &job.Ack{}, nil
}

// submitJobRequest handles the SubmitJob RPC. The job runs asynchronously;
// the caller polls JobStatusRequest for the outcome.
func (m *mux) submitJobRequest(ctx server.Context, req proto.Message) (proto.Message, error) {
	submit := req.(*job.SubmitJob)
	if submit.InputDir == "" || submit.OutputPath == "" {
		return nil, errors.New("submit requires input_dir and output_path")
	}
	j := m.t.CreateJob(submit.InputDir, submit.OutputPath)
	log.Printf("[coordinator] job %s submitted: input=%s output=%s", j.ID, j.InputDir, j.OutputPath)
	go m.runJob(j)
	return &job.SubmitJobResponse{JobId: j.ID}, nil
}

// jobStatusRequest handles the JobStatusRequest RPC.
func (m *mux) jobStatusRequest(ctx server.Context, req proto.Message) (proto.Message, error) {
	statusReq := req.(*job.JobStatusRequest)
	j, err := m.t.GetJob(statusReq.JobId)
	if err != nil {
		return nil, err
	}
	state, errMsg, checksum := j.Status()
	return &job.JobStatusResponse{
		JobId:            j.ID,
		State:            string(state),
		ErrorMessage:     errMsg,
		ArtifactChecksum: checksum,
	}, nil
}

type mapAssignment struct {
	taskID    uint32
	inputFile string
}

// runJob drives one job through its state machine: fan map tasks out over
// the registered workers, wait for all of them (the shuffle barrier), then
// hand the single reduce partition to one worker.
func (m *mux) runJob(j *tracker.Job) {
	names, err := engine.ListInputs(j.InputDir)
	if err != nil {
		m.failJob(j, err)
		return
	}

	// Zero input files is success with an empty report.
	if len(names) == 0 {
		if err := os.WriteFile(j.OutputPath, []byte{}, 0644); err != nil {
			m.failJob(j, err)
			return
		}
		if err := j.Complete(utils.Checksum(nil)); err != nil {
			m.failJob(j, err)
			return
		}
		log.Printf("[coordinator] job %s completed with empty input", j.ID)
		return
	}

	workers := m.t.Workers()
	if len(workers) == 0 {
		m.failJob(j, errors.New("no workers registered"))
		return
	}

	scratchDir := filepath.Join(m.scratchRoot, j.ID)
	if err := os.MkdirAll(scratchDir, 0755); err != nil {
		m.failJob(j, err)
		return
	}
	defer os.RemoveAll(scratchDir)

	if err := j.Transition(tracker.StateMapping); err != nil {
		m.failJob(j, err)
		return
	}

	d := dispatch.NewDispatcher(m.handleMapTask(j, scratchDir))
	clients := make([]*rpcClient.Client, 0, len(workers))
	defer func() {
		for _, cli := range clients {
			cli.Close()
		}
	}()
	for _, addr := range workers {
		conn, err := net.Dial("tcp", addr)
		if err != nil {
			m.failJob(j, fmt.Errorf("dial worker %s: %w", addr, err))
			return
		}
		cli := rpcClient.NewClient(conn)
		clients = append(clients, cli)
		d.AddContext(addr, cli)
	}
	for i, name := range names {
		d.AddTask(workers[i%len(workers)], &mapAssignment{
			taskID:    uint32(i),
			inputFile: filepath.Join(j.InputDir, name),
		})
	}

	// Run returns only when every map task has completed; no reducer may
	// see a key before that.
	if err := d.Run(); err != nil {
		m.failJob(j, err)
		return
	}
	if err := j.Transition(tracker.StateShuffled); err != nil {
		m.failJob(j, err)
		return
	}

	if err := j.Transition(tracker.StateReducing); err != nil {
		m.failJob(j, err)
		return
	}
	// Reduce parallelism is fixed to one so the report lands in a single
	// totally ordered file with no merge step.
	reduceWorker := workers[0]
	resp, err := utils.SendSingleRequest(reduceWorker, &job.ReduceTask{
		JobId:             j.ID,
		TaskId:            uint32(len(names)),
		IntermediateFiles: j.Spills(),
		OutputPath:        j.OutputPath,
	})
	if err != nil {
		m.failJob(j, fmt.Errorf("reduce task on %s: %w", reduceWorker, err))
		return
	}
	done, ok := resp.(*job.TaskDone)
	if !ok {
		m.failJob(j, fmt.Errorf("unexpected reduce response type %T", resp))
		return
	}
	if !done.Success {
		m.failJob(j, fmt.Errorf("reduce task failed: %s", done.ErrorMessage))
		return
	}
	if err := j.Complete(done.ArtifactChecksum); err != nil {
		m.failJob(j, err)
		return
	}
	log.Printf("[coordinator] job %s completed, report %s (md5 %s)", j.ID, j.OutputPath, done.ArtifactChecksum)
}

// handleMapTask returns the dispatch handler that sends one map task to a
// worker and records its spill files.
func (m *mux) handleMapTask(j *tracker.Job, scratchDir string) dispatch.HandlerFunc {
	return func(ctx any, taskContext any) error {
		cli := ctx.(*rpcClient.Client)
		task := taskContext.(*mapAssignment)
		resp, err := cli.SendRequest(&job.MapTask{
			JobId:           j.ID,
			TaskId:          task.taskID,
			InputFile:       task.inputFile,
			ScratchDir:      scratchDir,
			DisableCombiner: m.disableCombiner,
		})
		if err != nil {
			return fmt.Errorf("map task %d (%s): %w", task.taskID, task.inputFile, err)
		}
		done, ok := resp.(*job.TaskDone)
		if !ok {
			return fmt.Errorf("unexpected map response type %T", resp)
		}
		if !done.Success {
			return fmt.Errorf("map task %d (%s) failed: %s", task.taskID, task.inputFile, done.ErrorMessage)
		}
		j.AddSpills(done.OutputFiles)
		return nil
	}
}

func (m *mux) failJob(j *tracker.Job, reason error) {
	log.Printf("[coordinator] job %s failed: %v", j.ID, reason)
	j.Fail(reason)
}
