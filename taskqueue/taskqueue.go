// Package taskqueue runs submitted tasks on a fixed pool of workers and delivers each outcome through a
// futures.Future.
package taskqueue

import (
	"context"
	"sync"

	"github.com/abevier/trycatch"
	"github.com/abevier/trycatch/closewaiter"
	"github.com/abevier/trycatch/futures"
	"github.com/abevier/trycatch/internal/submit"
	"github.com/abevier/trycatch/results"
)

// RunFunction is invoked by a worker for every submitted task.
// A panic inside a RunFunction fails the task's future and leaves the worker running.
type RunFunction[T any, R any] func(ctx context.Context, task T) (R, error)

type TaskQueue[T any, R any] struct {
	run      RunFunction[T, R]
	taskChan chan submit.TaskFuture[T, R]

	submit submit.SubmitFunction[T, R]
	cw     *closewaiter.CloseWaiter

	waitStop sync.WaitGroup
}

// New creates a TaskQueue and starts its workers. It panics if opts are invalid.
func New[T any, R any](opts Opts, run RunFunction[T, R]) *TaskQueue[T, R] {
	opts.validate()

	tq := &TaskQueue[T, R]{
		run:      run,
		taskChan: make(chan submit.TaskFuture[T, R], opts.MaxQueueDepth),
		submit:   submit.GetSubmitFunction[T, R](submit.FullQueueStrategy(opts.FullQueueStrategy)),
		cw:       closewaiter.New(),
	}

	for i := 0; i < opts.MaxWorkers; i++ {
		tq.waitStop.Add(1)
		go tq.worker(i)
	}

	return tq
}

func (tq *TaskQueue[T, R]) worker(workerNum int) {
	defer tq.waitStop.Done()

	for tf := range tq.taskChan {
		if err := tf.Ctx.Err(); err != nil {
			tf.Future.Fail(err)
			continue
		}

		ctx := withTaskID(withWorkerID(tf.Ctx, workerNum), tf.ID)
		tf.Run(ctx, tq.run)
	}
}

// Submit submits a task and blocks until it has been run or ctx is done.
func (tq *TaskQueue[T, R]) Submit(ctx context.Context, task T) (R, error) {
	return tq.SubmitF(ctx, task).Get(ctx)
}

// SubmitF submits a task and returns a Future for its outcome. Submission errors such as ErrQueueFull or
// ErrStopped are reported by failing the returned Future.
func (tq *TaskQueue[T, R]) SubmitF(ctx context.Context, task T) *futures.Future[R] {
	tf := submit.NewTaskFuture[T, R](ctx, task)

	err := tq.cw.Do(func() {
		if err := tq.submit(tq.taskChan, tf); err != nil {
			tf.Future.Fail(err)
		}
	})
	if err != nil {
		tf.Future.Fail(ErrStopped)
	}

	return tf.Future
}

// SubmitResult submits a task and returns a Future that always completes with the task's outcome as a
// Result, including submission errors.
func (tq *TaskQueue[T, R]) SubmitResult(ctx context.Context, task T) *futures.Future[results.Result[R, error]] {
	return trycatch.Future(tq.SubmitF(ctx, task))
}

// Close stops accepting tasks, lets the workers drain the queue and waits for them to exit.
// It is safe to call Close more than once.
func (tq *TaskQueue[T, R]) Close() {
	tq.cw.Close(func() {
		close(tq.taskChan)
	})

	tq.waitStop.Wait()
}
