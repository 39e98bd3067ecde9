package server

import (
	"errors"
	"fmt"
	"net"
	"strings"
	"sync"
	"testing"

	"google.golang.org/protobuf/proto"

	"linecount/protogen/job"
	"linecount/rpc/client"
)

// startServer serves s on a loopback listener and returns a connected client.
func startServer(t *testing.T, s *Server) *client.Client {
	t.Helper()
	listener, err := net.Listen("tcp", "localhost:0")
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { listener.Close() })
	go s.Serve(listener)

	conn, err := net.Dial("tcp", listener.Addr().String())
	if err != nil {
		t.Fatal(err)
	}
	c := client.NewClient(conn)
	t.Cleanup(func() { c.Close() })
	return c
}

func TestServerDispatchesByMessageType(t *testing.T) {
	s := NewServer()
	err := s.RegisterByMessage(&job.SubmitJob{}, func(ctx Context, req proto.Message) (proto.Message, error) {
		submit := req.(*job.SubmitJob)
		if submit.InputDir != "/data/input" {
			return nil, fmt.Errorf("unexpected input dir %s", submit.InputDir)
		}
		return &job.SubmitJobResponse{JobId: "job-1"}, nil
	})
	if err != nil {
		t.Fatal(err)
	}

	c := startServer(t, s)
	resp, err := c.SendRequest(&job.SubmitJob{InputDir: "/data/input", OutputPath: "/data/report.txt"})
	if err != nil {
		t.Fatalf("SendRequest: %v", err)
	}
	got, ok := resp.(*job.SubmitJobResponse)
	if !ok {
		t.Fatalf("response = %T, want *job.SubmitJobResponse", resp)
	}
	if got.JobId != "job-1" {
		t.Errorf("JobId = %s, want job-1", got.JobId)
	}
}

func TestServerHandlerErrorComesBackAsError(t *testing.T) {
	s := NewServer()
	s.RegisterByMessage(&job.JobStatusRequest{}, func(ctx Context, req proto.Message) (proto.Message, error) {
		return nil, errors.New("unknown job: job-404")
	})

	c := startServer(t, s)
	if _, err := c.SendRequest(&job.JobStatusRequest{JobId: "job-404"}); err == nil {
		t.Fatal("expected the handler's error")
	} else if !strings.Contains(err.Error(), "job-404") {
		t.Errorf("error = %v, want the handler's message", err)
	}
}

func TestServerUnregisteredTypeIsAnError(t *testing.T) {
	s := NewServer()
	c := startServer(t, s)
	_, err := c.SendRequest(&job.Heartbeat{WorkerId: "localhost:9001"})
	if err == nil {
		t.Fatal("expected error for unregistered request type")
	}
	if !strings.Contains(err.Error(), "no handler") {
		t.Errorf("error = %v, want a no-handler error", err)
	}
}

func TestServerRecoversFromHandlerPanic(t *testing.T) {
	s := NewServer()
	s.SetRecoverFromPanic(true)
	s.RegisterByMessage(&job.Heartbeat{}, func(ctx Context, req proto.Message) (proto.Message, error) {
		panic("handler exploded")
	})
	s.RegisterByMessage(&job.RegisterWorker{}, func(ctx Context, req proto.Message) (proto.Message, error) {
		return &job.Ack{}, nil
	})

	c := startServer(t, s)
	_, err := c.SendRequest(&job.Heartbeat{WorkerId: "localhost:9001"})
	if err == nil || !strings.Contains(err.Error(), "handler exploded") {
		t.Errorf("error = %v, want the recovered panic", err)
	}
	// The connection survives the panic.
	if _, err := c.SendRequest(&job.RegisterWorker{ListenAddr: "localhost:9001"}); err != nil {
		t.Errorf("request after recovered panic: %v", err)
	}
}

func TestServerRegisterByTypeUrl(t *testing.T) {
	s := NewServer()
	if err := s.RegisterByTypeUrl("job.Ack", func(ctx Context, req proto.Message) (proto.Message, error) {
		return &job.Ack{}, nil
	}); err != nil {
		t.Fatalf("RegisterByTypeUrl: %v", err)
	}
	if err := s.RegisterByTypeUrl("job.DoesNotExist", nil); err == nil {
		t.Error("expected error for unknown type URL")
	}
}

func TestServerConcurrentClients(t *testing.T) {
	s := NewServer()
	s.RegisterByMessage(&job.JobStatusRequest{}, func(ctx Context, req proto.Message) (proto.Message, error) {
		return &job.JobStatusResponse{
			JobId: req.(*job.JobStatusRequest).JobId,
			State: "COMPLETED",
		}, nil
	})

	listener, err := net.Listen("tcp", "localhost:0")
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { listener.Close() })
	go s.Serve(listener)

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			conn, err := net.Dial("tcp", listener.Addr().String())
			if err != nil {
				t.Errorf("dial: %v", err)
				return
			}
			c := client.NewClient(conn)
			defer c.Close()
			id := fmt.Sprintf("job-%d", i)
			resp, err := c.SendRequest(&job.JobStatusRequest{JobId: id})
			if err != nil {
				t.Errorf("SendRequest: %v", err)
				return
			}
			if got := resp.(*job.JobStatusResponse).JobId; got != id {
				t.Errorf("JobId = %s, want %s", got, id)
			}
		}(i)
	}
	wg.Wait()
}
