// Package trycatch converts failures into results.Result values so callers can inspect the outcome of an
// operation instead of handling a panic or a failed future.
//
// Synchronous callables are converted with Do or Catch. Asynchronous computations represented by a
// futures.Future are converted with Future or Await. None of these functions panic or return an error of
// their own: every failure of the wrapped operation is returned as the error of a Failure result, unchanged.
package trycatch

import (
	"context"
	"fmt"

	"github.com/abevier/trycatch/futures"
	"github.com/abevier/trycatch/results"
)

// PanicError carries a panic value that does not implement error so it can be returned by Do.
type PanicError struct {
	Value any
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("panic: %v", e.Value)
}

// Future returns a Future that completes with the outcome of f once f completes.
// A value v becomes a Success holding v and an error e becomes a Failure holding e.
// The returned Future is never failed; the wrapped Future is observed but never completed, canceled or retried.
func Future[T any](f *futures.Future[T]) *futures.Future[results.Result[T, error]] {
	out := futures.New[results.Result[T, error]]()

	f.OnComplete(func(v T, err error) {
		out.Complete(results.New(v, err))
	})

	return out
}

// Await blocks until f completes and returns its outcome as a Result.
func Await[T any](f *futures.Future[T]) results.Result[T, error] {
	v, err := f.Get(context.Background())
	return results.New(v, err)
}

// Catch calls fn once and returns its value as a Success. If fn panics the panic is recovered and the
// panic value, whatever its type, is returned as the error of a Failure.
func Catch[T any](fn func() T) (res results.Result[T, any]) {
	defer func() {
		if r := recover(); r != nil {
			res = results.Failure[T](r)
		}
	}()

	return results.Success[T, any](fn())
}

// Do calls fn once and converts its return values into a Result. A non-nil error yields a Failure holding
// that error. A panic is recovered: an error panic value is returned as is and any other value is returned
// inside a *PanicError.
func Do[T any](fn func() (T, error)) (res results.Result[T, error]) {
	defer func() {
		if r := recover(); r != nil {
			res = results.Failure[T](asError(r))
		}
	}()

	v, err := fn()
	return results.New(v, err)
}

func asError(r any) error {
	if err, ok := r.(error); ok {
		return err
	}
	return &PanicError{Value: r}
}
