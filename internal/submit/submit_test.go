package submit

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/abevier/trycatch"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestGetSubmitFunction(t *testing.T) {
	req := require.New(t)

	f := GetSubmitFunction[int, int](BlockWhenFull)
	req.NotNil(f)

	f = GetSubmitFunction[int, int](ErrorWhenFull)
	req.NotNil(f)
}

func TestGetSubmitFunctionPanic(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("GetSubmitFunction did not panic")
		}
	}()

	GetSubmitFunction[int, int](-1)
}

func TestBlockWhenFullStrategy(t *testing.T) {
	req := require.New(t)

	c := make(chan TaskFuture[int, int])

	// Test cancellation
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	tf := NewTaskFuture[int, int](ctx, 1)
	err := blockWhenFullStrategy(c, tf)
	req.ErrorIs(err, context.Canceled)

	// Test consumption
	wg := sync.WaitGroup{}
	wg.Add(1)

	go func() {
		defer wg.Done()

		for {
			v, ok := <-c
			if !ok {
				return
			}
			v.Future.Complete(42)
		}
	}()

	ctx = context.Background()
	tf = NewTaskFuture[int, int](ctx, 1)

	err = blockWhenFullStrategy(c, tf)
	req.NoError(err)

	v, err := tf.Future.Get(ctx)
	req.NoError(err)
	req.Equal(42, v)

	close(c)
	wg.Wait()
}

func TestErrorWhenFull(t *testing.T) {
	req := require.New(t)

	c := make(chan TaskFuture[int, int])

	tf := NewTaskFuture[int, int](context.Background(), 1)
	err := errorWhenFullStrategy(c, tf)
	req.ErrorIs(err, ErrQueueFull)

	buffered := make(chan TaskFuture[int, int], 1)
	err = errorWhenFullStrategy(buffered, tf)
	req.NoError(err)

	err = errorWhenFullStrategy(buffered, NewTaskFuture[int, int](context.Background(), 2))
	req.ErrorIs(err, ErrQueueFull)
}

func TestNewTaskFuture(t *testing.T) {
	req := require.New(t)

	a := NewTaskFuture[int, int](context.Background(), 1)
	b := NewTaskFuture[int, int](context.Background(), 1)

	req.NotEqual(uuid.Nil, a.ID)
	req.NotEqual(a.ID, b.ID)
	req.NotNil(a.Future)
}

func TestRun(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()

	tf := NewTaskFuture[int, int](ctx, 21)
	tf.Run(ctx, func(ctx context.Context, n int) (int, error) {
		return n * 2, nil
	})

	v, err := tf.Future.Get(ctx)
	req.NoError(err)
	req.Equal(42, v)

	errTest := errors.New("test error")
	tf = NewTaskFuture[int, int](ctx, 21)
	tf.Run(ctx, func(ctx context.Context, n int) (int, error) {
		return n, errTest
	})

	_, err = tf.Future.Get(ctx)
	req.ErrorIs(err, errTest)
}

func TestRunPanic(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()

	tf := NewTaskFuture[int, int](ctx, 0)
	tf.Run(ctx, func(ctx context.Context, n int) (int, error) {
		panic("task exploded")
	})

	_, err := tf.Future.Get(ctx)

	var pe *trycatch.PanicError
	req.ErrorAs(err, &pe)
	req.Equal("task exploded", pe.Value)
}

func TestFullQueueStrategyString(t *testing.T) {
	req := require.New(t)

	req.Equal("block", BlockWhenFull.String())
	req.Equal("error", ErrorWhenFull.String())
	req.Equal("unknown", FullQueueStrategy(9).String())
}
