package submit

import (
	"context"

	"github.com/abevier/trycatch"
	"github.com/abevier/trycatch/futures"
	"github.com/google/uuid"
)

// TaskFuture pairs a submitted task with the future its outcome is delivered to.
type TaskFuture[T any, R any] struct {
	ID     uuid.UUID
	Ctx    context.Context
	Task   T
	Future *futures.Future[R]
}

func NewTaskFuture[T any, R any](ctx context.Context, task T) TaskFuture[T, R] {
	return TaskFuture[T, R]{
		ID:     uuid.New(),
		Ctx:    ctx,
		Task:   task,
		Future: futures.New[R](),
	}
}

// Run calls run with the task and settles the future with the outcome. A panic in run fails the future
// instead of escaping to the caller.
func (tf TaskFuture[T, R]) Run(ctx context.Context, run func(ctx context.Context, task T) (R, error)) {
	res := trycatch.Do(func() (R, error) {
		return run(ctx, tf.Task)
	})

	if res.IsFailure() {
		tf.Future.Fail(res.Error())
		return
	}
	tf.Future.Complete(res.Data())
}
