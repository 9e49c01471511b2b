package closewaiter

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCloseWaiter(t *testing.T) {
	cw := New()

	testChan := make(chan int)
	shutdownSignal := make(chan struct{})

	wg := sync.WaitGroup{}

	// start 3 writers
	for i := 0; i < 3; i++ {
		wg.Add(1)
		go func() {
			var err error
			for err == nil {
				err = cw.Do(func() {
					testChan <- 1
				})
			}
			wg.Done()
		}()
	}

	// single reader
	go func() {
		cnt := 0
		for range testChan {
			cnt++
			if cnt == 100 {
				// keep reading after the signal or the writers block in Do
				close(shutdownSignal)
			}
		}
	}()

	<-shutdownSignal

	// should not panic with a send on a closed channel
	cw.Close(func() {
		close(testChan)
	})

	wg.Wait()
}

func TestCloseRunsOnce(t *testing.T) {
	req := require.New(t)

	cw := New()
	calls := 0

	for i := 0; i < 3; i++ {
		cw.Close(func() { calls++ })
	}

	req.Equal(1, calls)
	req.True(cw.IsClosed())
}

func TestDoAfterClose(t *testing.T) {
	req := require.New(t)

	cw := New()
	req.False(cw.IsClosed())

	ran := false
	req.NoError(cw.Do(func() { ran = true }))
	req.True(ran)

	cw.Close(func() {})

	ran = false
	req.ErrorIs(cw.Do(func() { ran = true }), ErrClosed)
	req.False(ran)
}
