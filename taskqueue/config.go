package taskqueue

import "github.com/abevier/trycatch/internal/submit"

// FullQueueStrategy is the behavior of Submit when MaxQueueDepth tasks are already waiting for a worker.
type FullQueueStrategy submit.FullQueueStrategy

const (
	// BlockWhenFull blocks the caller until there is room in the queue or its context is done.
	BlockWhenFull FullQueueStrategy = FullQueueStrategy(submit.BlockWhenFull)
	// ErrorWhenFull fails the submission with ErrQueueFull.
	ErrorWhenFull FullQueueStrategy = FullQueueStrategy(submit.ErrorWhenFull)
)

// Opts is used to configure a TaskQueue via the New function.
type Opts struct {
	// MaxWorkers is the number of tasks that run concurrently.
	MaxWorkers int
	// MaxQueueDepth is the number of submitted tasks that may wait for a worker.
	MaxQueueDepth int
	// FullQueueStrategy defaults to BlockWhenFull.
	FullQueueStrategy FullQueueStrategy
}

func (o Opts) validate() {
	if o.MaxWorkers < 1 {
		panic("task queue max workers must be 1 or greater")
	}

	if o.MaxQueueDepth < 0 {
		panic("task queue max queue depth must be 0 or greater")
	}
}
