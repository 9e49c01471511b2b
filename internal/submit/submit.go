// Package submit holds what the queueing executors share: the envelope a task travels in and the
// strategies for handing it to a bounded queue.
package submit

import (
	"context"
	"errors"
	"log"
)

var (
	ErrQueueFull = errors.New("task queue is full")
)

type FullQueueStrategy int

const (
	BlockWhenFull FullQueueStrategy = iota
	ErrorWhenFull
)

func (s FullQueueStrategy) String() string {
	switch s {
	case BlockWhenFull:
		return "block"
	case ErrorWhenFull:
		return "error"
	}
	return "unknown"
}

// SubmitFunction enqueues tf. A non-nil error means tf was not enqueued and its future was left untouched.
type SubmitFunction[T any, R any] func(taskChan chan<- TaskFuture[T, R], tf TaskFuture[T, R]) error

// GetSubmitFunction panics on an unknown strategy.
func GetSubmitFunction[T any, R any](s FullQueueStrategy) SubmitFunction[T, R] {
	switch s {
	case BlockWhenFull:
		return blockWhenFullStrategy[T, R]
	case ErrorWhenFull:
		return errorWhenFullStrategy[T, R]
	}

	log.Panicf("invalid submit strategy value %d", s)
	return nil
}

func blockWhenFullStrategy[T any, R any](taskChan chan<- TaskFuture[T, R], tf TaskFuture[T, R]) error {
	select {
	case taskChan <- tf:
		return nil
	case <-tf.Ctx.Done():
		return context.Canceled
	}
}

func errorWhenFullStrategy[T any, R any](taskChan chan<- TaskFuture[T, R], tf TaskFuture[T, R]) error {
	select {
	case taskChan <- tf:
		return nil
	default:
		return ErrQueueFull
	}
}
