package ratelimiter

import (
	"time"

	"github.com/abevier/trycatch/internal/submit"
	"golang.org/x/time/rate"
)

var (
	ErrQueueFull = submit.ErrQueueFull
)

// FullQueueStrategy is the behavior of Submit when too many tasks are waiting for the rate limiter.
type FullQueueStrategy submit.FullQueueStrategy

const (
	// BlockWhenFull exerts back pressure by blocking the caller when too many items have been submitted.
	BlockWhenFull FullQueueStrategy = FullQueueStrategy(submit.BlockWhenFull)
	// ErrorWhenFull immediately returns an error when too many items have been submitted.
	ErrorWhenFull FullQueueStrategy = FullQueueStrategy(submit.ErrorWhenFull)
)

// Limit is a rate limit expressed as N requests per second.
type Limit = rate.Limit

// Every converts the interval between requests into a Limit,
// Every(100 * time.Millisecond) is 10 requests per second.
func Every(interval time.Duration) Limit {
	return rate.Every(interval)
}

// Opts is used to configure a RateLimiter via the New function.
type Opts struct {
	// Limit is the rate limit expressed in requests per second.
	Limit Limit
	// Burst is the size of the Token Bucket
	Burst int
	// MaxQueueDepth controls the number of outstanding tasks that can be submitted to the rate limiter.
	MaxQueueDepth int
	// FullQueueStrategy determines the behavior when MaxQueueDepth is exceeded.
	// Defaults to BlockWhenFull.
	FullQueueStrategy FullQueueStrategy
}

func (o Opts) validate() {
	if o.Limit < 0 {
		panic("rate limiter limit must be 0 or greater")
	}

	if o.Burst < 1 {
		panic("rate limiter burst must be 1 or greater")
	}

	if o.MaxQueueDepth < 0 {
		panic("rate limiter max queue depth must be 0 or greater")
	}
}
