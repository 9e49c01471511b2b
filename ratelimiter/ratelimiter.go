// Package ratelimiter runs submitted tasks no faster than a configured rate and delivers each outcome
// through a futures.Future.
package ratelimiter

import (
	"context"
	"errors"

	"github.com/abevier/trycatch"
	"github.com/abevier/trycatch/closewaiter"
	"github.com/abevier/trycatch/futures"
	"github.com/abevier/trycatch/internal/submit"
	"github.com/abevier/trycatch/results"
	"golang.org/x/time/rate"
)

var (
	ErrStopped = errors.New("rate limiter has been stopped")
)

// RunFunction is invoked for every submitted task once the rate limiter admits it.
// A panic inside a RunFunction fails the task's future.
type RunFunction[T any, R any] func(ctx context.Context, task T) (R, error)

type RateLimiter[T any, R any] struct {
	limiter  *rate.Limiter
	taskChan chan submit.TaskFuture[T, R]
	stopped  chan struct{}

	submit submit.SubmitFunction[T, R]
	run    RunFunction[T, R]
	cw     *closewaiter.CloseWaiter
}

// New creates a RateLimiter and starts dispatching. It panics if opts are invalid.
func New[T any, R any](opts Opts, run RunFunction[T, R]) *RateLimiter[T, R] {
	opts.validate()

	rl := &RateLimiter[T, R]{
		limiter:  rate.NewLimiter(opts.Limit, opts.Burst),
		taskChan: make(chan submit.TaskFuture[T, R], opts.MaxQueueDepth),
		stopped:  make(chan struct{}),
		submit:   submit.GetSubmitFunction[T, R](submit.FullQueueStrategy(opts.FullQueueStrategy)),
		run:      run,
		cw:       closewaiter.New(),
	}

	rl.startWorker()

	return rl
}

func (rl *RateLimiter[T, R]) startWorker() {
	go func() {
		defer close(rl.stopped)

		for tf := range rl.taskChan {
			if err := rl.limiter.Wait(tf.Ctx); err != nil {
				tf.Future.Fail(err)
				continue
			}

			go tf.Run(tf.Ctx, rl.run)
		}
	}()
}

// Submit submits a task and blocks until it has been run or ctx is done.
func (rl *RateLimiter[T, R]) Submit(ctx context.Context, task T) (R, error) {
	return rl.SubmitF(ctx, task).Get(ctx)
}

// SubmitF submits a task and returns a Future for its outcome. Submission errors are reported by failing the
// returned Future.
func (rl *RateLimiter[T, R]) SubmitF(ctx context.Context, task T) *futures.Future[R] {
	tf := submit.NewTaskFuture[T, R](ctx, task)

	err := rl.cw.Do(func() {
		if err := rl.submit(rl.taskChan, tf); err != nil {
			tf.Future.Fail(err)
		}
	})
	if err != nil {
		tf.Future.Fail(ErrStopped)
	}

	return tf.Future
}

// SubmitResult submits a task and returns a Future that always completes with the task's outcome as a Result.
func (rl *RateLimiter[T, R]) SubmitResult(ctx context.Context, task T) *futures.Future[results.Result[R, error]] {
	return trycatch.Future(rl.SubmitF(ctx, task))
}

// Close stops accepting tasks and waits until every queued task has been admitted. Tasks that are already
// running are not waited for. It is safe to call Close more than once.
func (rl *RateLimiter[T, R]) Close() {
	rl.cw.Close(func() {
		close(rl.taskChan)
	})

	<-rl.stopped
}
