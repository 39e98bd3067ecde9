// Package dispatch runs tasks against a set of workers: one serial queue
// per worker, all queues in parallel. A handler that fails a task may
// requeue it on another worker's queue before returning nil.
package dispatch

import (
	"container/list"
	"errors"
	"sync"
)

type HandlerFunc func(ctx any, taskContext any) error

type queue struct {
	running      bool
	taskContexts list.List
}

type Dispatcher struct {
	contexts  map[string]any
	mutex     sync.Mutex
	queues    map[string]*queue
	handler   HandlerFunc
	running   bool
	sendError func(error)
	wg        sync.WaitGroup
}

func NewDispatcher(handler HandlerFunc) *Dispatcher {
	return &Dispatcher{
		contexts: make(map[string]any),
		queues:   make(map[string]*queue),
		handler:  handler,
	}
}

// AddContext associates a worker key with the context handed to the handler
// for every task on that worker's queue.
func (d *Dispatcher) AddContext(key string, ctx any) {
	d.mutex.Lock()
	defer d.mutex.Unlock()
	d.contexts[key] = ctx
}

func (d *Dispatcher) GetContext(key string) any {
	d.mutex.Lock()
	defer d.mutex.Unlock()
	return d.contexts[key]
}

// AddTask appends a task to the worker's queue. If the dispatcher is
// already running and the queue is idle, a goroutine is started for it.
func (d *Dispatcher) AddTask(key string, taskContext any) {
	d.mutex.Lock()
	defer d.mutex.Unlock()
	q, ok := d.queues[key]
	if !ok {
		q = &queue{}
		d.queues[key] = q
	}
	q.taskContexts.PushBack(taskContext)
	if d.running && !q.running {
		d.wg.Add(1)
		go d.drain(key)
	}
}

func (d *Dispatcher) drain(key string) {
	defer d.wg.Done()
	d.mutex.Lock()
	q := d.queues[key]
	q.running = true
	ctx := d.contexts[key]
	for {
		if q.taskContexts.Len() == 0 {
			q.running = false
			d.mutex.Unlock()
			return
		}
		taskContext := q.taskContexts.Remove(q.taskContexts.Front())
		d.mutex.Unlock()
		if err := d.handler(ctx, taskContext); err != nil {
			d.sendError(err)
		}
		d.mutex.Lock()
	}
}

// Run drains every queue and blocks until all of them are empty, returning
// the joined errors. Completion of Run is the caller's barrier: no task is
// still in flight once it returns.
func (d *Dispatcher) Run() error {
	errs := make([]error, 0)
	d.sendError = func(err error) {
		if err == nil {
			return
		}
		d.mutex.Lock()
		errs = append(errs, err)
		d.mutex.Unlock()
	}
	d.mutex.Lock()
	d.running = true
	for key := range d.queues {
		d.wg.Add(1)
		go d.drain(key)
	}
	d.mutex.Unlock()

	d.wg.Wait()
	d.mutex.Lock()
	defer d.mutex.Unlock()
	d.running = false
	return errors.Join(errs...)
}
