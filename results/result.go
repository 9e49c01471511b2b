// Package results provides Result, a value that holds either the data produced by an operation or the
// error it failed with, but never both.
package results

// Result is a tagged union of a Success carrying data of type T and a Failure carrying an error of type E.
//
// The variant is decided by the tag alone: a Success may carry a zero or nil T and a Failure may carry
// any E, including values that do not implement the error interface. The field that does not belong to
// the variant is always the zero value of its type.
//
// A Result is immutable and is meant to be passed and compared by value.
type Result[T any, E any] struct {
	data T
	err  E
	ok   bool
}

// Success creates a Result that holds val.
func Success[T any, E any](val T) Result[T, E] {
	return Result[T, E]{data: val, ok: true}
}

// Failure creates a Result that holds err. err is stored as is.
func Failure[T any, E any](err E) Result[T, E] {
	return Result[T, E]{err: err}
}

// New converts a Go (value, error) pair into a Result. A nil err yields a Success holding val,
// otherwise val is dropped and the Result is a Failure holding err.
func New[T any](val T, err error) Result[T, error] {
	if err != nil {
		return Failure[T](err)
	}
	return Success[T, error](val)
}

// Data returns the value of a Success, or the zero T for a Failure.
func (r Result[T, E]) Data() T {
	return r.data
}

// Error returns the error of a Failure, or the zero E for a Success.
func (r Result[T, E]) Error() E {
	return r.err
}

func (r Result[T, E]) IsSuccess() bool {
	return r.ok
}

func (r Result[T, E]) IsFailure() bool {
	return !r.ok
}

// Get returns both fields so a Result can be unpacked like a function returning (T, error).
func (r Result[T, E]) Get() (T, E) {
	return r.data, r.err
}
