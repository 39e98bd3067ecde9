package main

import (
	"flag"
	"fmt"
	"log"
	"net"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/sys/unix"
	"google.golang.org/protobuf/proto"

	"linecount/mapreduce/engine"
	"linecount/mapreduce/types"
	"linecount/protogen/job"
	rpcClient "linecount/rpc/client"
	"linecount/rpc/server"
	"linecount/utils"
)

const heartbeatInterval = 10 * time.Second

type mux struct {
	id      string
	workDir string
	cli     *rpcClient.Client
}

func main() {
	coordinatorAddr := flag.String("coordinatorAddr", "localhost:8080", "Coordinator address")
	listenAddr := flag.String("listenAddr", "localhost:9000", "Listen address")
	workDir := flag.String("workDir", os.TempDir(), "Directory whose free space is reported in heartbeats")
	flag.Parse()

	conn, err := net.Dial("tcp", *coordinatorAddr)
	if err != nil {
		panic(err)
	}
	cli := rpcClient.NewClient(conn)

	listener, err := net.Listen("tcp", *listenAddr)
	if err != nil {
		panic(err)
	}

	m := mux{
		id:      *listenAddr,
		workDir: *workDir,
		cli:     cli,
	}

	s := server.NewServer()
	s.SetLogPrefix("[worker]")
	s.SetRecoverFromPanic(true)
	s.RegisterByMessage(&job.MapTask{}, m.mapTaskRequest)
	s.RegisterByMessage(&job.ReduceTask{}, m.reduceTaskRequest)
	go s.Serve(listener)

	log.Printf("[worker %s] started, work dir: %s", m.id, m.workDir)
	if err := m.register(); err != nil {
		panic(err)
	}
	m.sendHeartbeat()
}

// getFreespace returns the free space of the work dir. Unix-like systems
// only.
func (m *mux) getFreespace() (uint64, error) {
	var stat unix.Statfs_t
	if err := unix.Statfs(m.workDir, &stat); err != nil {
		return 0, err
	}
	return stat.Bavail * uint64(stat.Bsize), nil
}

// register announces this worker to the coordinator.
func (m *mux) register() error {
	freespace, err := m.getFreespace()
	if err != nil {
		return err
	}
	_, err = m.cli.SendRequest(&job.RegisterWorker{
		ListenAddr: m.id,
		Freespace:  freespace,
	})
	return err
}

// sendHeartbeat reports liveness and free space to the coordinator every 10
// seconds. It never returns.
func (m *mux) sendHeartbeat() {
	for timer := time.NewTimer(heartbeatInterval); true; timer.Reset(heartbeatInterval) {
		<-timer.C
		freespace, err := m.getFreespace()
		if err != nil {
			log.Printf("[worker %s] heartbeat error: %v", m.id, err)
			continue
		}
		if _, err := m.cli.SendRequest(&job.Heartbeat{
			WorkerId:  m.id,
			Freespace: freespace,
		}); err != nil {
			log.Printf("[worker %s] heartbeat error: %v", m.id, err)
		}
	}
}

// mapTaskRequest executes one map task: split the input file into line
// records, map and combine them, and spill the emissions to the shared
// scratch dir. Task failure is reported in-band so the coordinator can tell
// it apart from transport failure.
func (m *mux) mapTaskRequest(ctx server.Context, req proto.Message) (proto.Message, error) {
	task := req.(*job.MapTask)
	log.Printf("[worker %s] map task: job=%s task=%d input=%s", m.id, task.JobId, task.TaskId, task.InputFile)

	fail := func(err error) (proto.Message, error) {
		log.Printf("[worker %s] map task %d failed: %v", m.id, task.TaskId, err)
		return &job.TaskDone{
			JobId:        task.JobId,
			TaskId:       task.TaskId,
			IsMapTask:    true,
			ErrorMessage: err.Error(),
		}, nil
	}

	kvs, err := engine.MapFile(task.InputFile, task.DisableCombiner)
	if err != nil {
		return fail(err)
	}
	spill := filepath.Join(task.ScratchDir, fmt.Sprintf("spill-%s-%d.jsonl", task.JobId, task.TaskId))
	if err := engine.WriteSpill(spill, kvs); err != nil {
		return fail(err)
	}

	log.Printf("[worker %s] map task %d done: %d emissions -> %s", m.id, task.TaskId, len(kvs), spill)
	return &job.TaskDone{
		JobId:       task.JobId,
		TaskId:      task.TaskId,
		IsMapTask:   true,
		Success:     true,
		OutputFiles: []string{spill},
	}, nil
}

// reduceTaskRequest executes the job's single reduce partition: read every
// spill, group by key, reduce each key once, and write the report. The
// coordinator only sends this after all map tasks completed, so every value
// for every key is present.
func (m *mux) reduceTaskRequest(ctx server.Context, req proto.Message) (proto.Message, error) {
	task := req.(*job.ReduceTask)
	log.Printf("[worker %s] reduce task: job=%s task=%d spills=%d output=%s",
		m.id, task.JobId, task.TaskId, len(task.IntermediateFiles), task.OutputPath)

	fail := func(err error) (proto.Message, error) {
		log.Printf("[worker %s] reduce task %d failed: %v", m.id, task.TaskId, err)
		return &job.TaskDone{
			JobId:        task.JobId,
			TaskId:       task.TaskId,
			ErrorMessage: err.Error(),
		}, nil
	}

	all := make([]types.KeyValue, 0)
	for _, spill := range task.IntermediateFiles {
		kvs, err := engine.ReadSpill(spill)
		if err != nil {
			return fail(err)
		}
		all = append(all, kvs...)
	}

	report, err := engine.BuildReport(all, engine.SortGrouper{})
	if err != nil {
		return fail(err)
	}
	if err := os.WriteFile(task.OutputPath, report, 0644); err != nil {
		return fail(err)
	}

	checksum := utils.Checksum(report)
	log.Printf("[worker %s] reduce task %d done: report %s (md5 %s)", m.id, task.TaskId, task.OutputPath, checksum)
	return &job.TaskDone{
		JobId:            task.JobId,
		TaskId:           task.TaskId,
		Success:          true,
		OutputFiles:      []string{task.OutputPath},
		ArtifactChecksum: checksum,
	}, nil
}
