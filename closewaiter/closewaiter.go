// Package closewaiter guards a resource, such as a channel, that must not be closed while callers are
// still using it.
package closewaiter

import (
	"errors"
	"sync"
)

var (
	ErrClosed = errors.New("closed")
)

type CloseWaiter struct {
	mu     sync.RWMutex
	closed bool
}

func New() *CloseWaiter {
	return &CloseWaiter{}
}

// Do runs f unless Close has been called, in which case it returns ErrClosed without running f.
// Any number of Do calls may run concurrently.
func (c *CloseWaiter) Do(f func()) error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.closed {
		return ErrClosed
	}

	f()
	return nil
}

// Close waits for all in-flight calls to Do to return and then runs f. Only the first call runs f;
// later calls return once the first one has finished.
func (c *CloseWaiter) Close(f func()) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}

	c.closed = true
	f()
}

func (c *CloseWaiter) IsClosed() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.closed
}
