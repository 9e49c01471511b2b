// Package batch groups submitted tasks into batches that are run together, and delivers each task's
// outcome through its own futures.Future.
package batch

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/abevier/trycatch"
	"github.com/abevier/trycatch/futures"
	"github.com/abevier/trycatch/results"
)

var (
	ErrBatchResultMismatch = errors.New("batch run returned a different number of results than tasks")
	ErrStopped             = errors.New("batch executor has been stopped")
	// ErrNilFailure fails a task whose result is a Failure holding a nil error.
	ErrNilFailure = errors.New("batch run returned a failure without an error")
)

// RunBatchFunction runs a batch of tasks. It must return one result per task, in task order.
// An error fails every task in the batch, as does a panic.
type RunBatchFunction[T any, R any] func(tasks []T) ([]results.Result[R, error], error)

type batch[T any, R any] struct {
	id      int
	tasks   []T
	futures []*futures.Future[R]
}

func (b *batch[T, R]) add(task T, f *futures.Future[R]) {
	b.tasks = append(b.tasks, task)
	b.futures = append(b.futures, f)
}

type Executor[T any, R any] struct {
	m            sync.Mutex
	sequenceNum  int
	currentBatch *batch[T, R]
	isClosed     bool
	running      sync.WaitGroup

	run       RunBatchFunction[T, R]
	maxSize   int
	maxLinger time.Duration
}

// NewExecutor creates an Executor. It panics if opts are invalid.
func NewExecutor[T any, R any](opts Opts, run RunBatchFunction[T, R]) *Executor[T, R] {
	opts.validate()

	return &Executor[T, R]{
		run:       run,
		maxSize:   opts.MaxSize,
		maxLinger: opts.MaxLinger,
	}
}

// Submit adds a task to the current batch and blocks until the batch has run or ctx is done.
func (be *Executor[T, R]) Submit(ctx context.Context, task T) (R, error) {
	return be.SubmitF(ctx, task).Get(ctx)
}

// SubmitF adds a task to the current batch and returns a Future for the task's outcome.
func (be *Executor[T, R]) SubmitF(ctx context.Context, task T) *futures.Future[R] {
	f := futures.NewWithContext[R](ctx)
	be.addTask(task, f)
	return f
}

// SubmitResult adds a task to the current batch and returns a Future that always completes with the task's
// outcome as a Result.
func (be *Executor[T, R]) SubmitResult(ctx context.Context, task T) *futures.Future[results.Result[R, error]] {
	return trycatch.Future(be.SubmitF(ctx, task))
}

func (be *Executor[T, R]) addTask(task T, f *futures.Future[R]) {
	be.m.Lock()
	defer be.m.Unlock()

	if be.isClosed {
		f.Fail(ErrStopped)
		return
	}

	if be.currentBatch == nil {
		be.currentBatch = be.newBatch()
	}
	be.currentBatch.add(task, f)

	if len(be.currentBatch.tasks) >= be.maxSize {
		be.dispatch()
	}
}

func (be *Executor[T, R]) newBatch() *batch[T, R] {
	be.sequenceNum++

	b := &batch[T, R]{
		id:      be.sequenceNum,
		tasks:   make([]T, 0, be.maxSize),
		futures: make([]*futures.Future[R], 0, be.maxSize),
	}

	time.AfterFunc(be.maxLinger, func() { be.expireBatch(b.id) })
	return b
}

func (be *Executor[T, R]) expireBatch(batchID int) {
	be.m.Lock()
	defer be.m.Unlock()

	if be.currentBatch != nil && be.currentBatch.id == batchID {
		be.dispatch()
	}
}

// dispatch must be called with be.m held.
func (be *Executor[T, R]) dispatch() {
	b := be.currentBatch
	be.currentBatch = nil

	be.running.Add(1)
	go func() {
		defer be.running.Done()
		be.runBatch(b)
	}()
}

func (be *Executor[T, R]) runBatch(b *batch[T, R]) {
	res := trycatch.Do(func() ([]results.Result[R, error], error) {
		return be.run(b.tasks)
	})

	if res.IsFailure() {
		b.failAll(res.Error())
		return
	}

	rs := res.Data()
	if len(rs) != len(b.tasks) {
		b.failAll(ErrBatchResultMismatch)
		return
	}

	for i, r := range rs {
		if r.IsFailure() {
			err := r.Error()
			if err == nil {
				err = ErrNilFailure
			}
			b.futures[i].Fail(err)
			continue
		}
		b.futures[i].Complete(r.Data())
	}
}

func (b *batch[T, R]) failAll(err error) {
	for _, f := range b.futures {
		f.Fail(err)
	}
}

// Close runs the pending partial batch immediately, stops accepting tasks and waits for running batches to
// finish. Tasks submitted after Close fail with ErrStopped.
func (be *Executor[T, R]) Close() {
	be.m.Lock()
	if !be.isClosed {
		be.isClosed = true
		if be.currentBatch != nil {
			be.dispatch()
		}
	}
	be.m.Unlock()

	be.running.Wait()
}
