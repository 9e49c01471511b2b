package taskqueue

import (
	"context"
	"strconv"

	"github.com/google/uuid"
)

type workerIDKey struct{}

type taskIDKey struct{}

func withWorkerID(ctx context.Context, id int) context.Context {
	return context.WithValue(ctx, workerIDKey{}, "worker-"+strconv.Itoa(id))
}

func withTaskID(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, taskIDKey{}, id)
}

// WorkerIDFromContext attempts to retrieve a worker id string from the current context.
// The worker id string is added to the current context by the TaskQueue before invoking the run
// function. This id can be useful for logging.
func WorkerIDFromContext(ctx context.Context) (string, bool) {
	v, ok := ctx.Value(workerIDKey{}).(string)
	return v, ok
}

// TaskIDFromContext retrieves the id assigned to the task when it was submitted.
func TaskIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	v, ok := ctx.Value(taskIDKey{}).(uuid.UUID)
	return v, ok
}
