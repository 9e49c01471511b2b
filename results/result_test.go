package results

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResult(t *testing.T) {
	require := require.New(t)

	r := New(1, nil)
	require.True(r.IsSuccess())
	require.False(r.IsFailure())
	require.Equal(1, r.Data())
	require.NoError(r.Error())

	r = Success[int, error](2)
	require.True(r.IsSuccess())
	require.Equal(2, r.Data())
	require.NoError(r.Error())

	errTest := errors.New("test err")
	r = Failure[int](errTest)
	require.True(r.IsFailure())
	require.Equal(0, r.Data())
	require.ErrorIs(r.Error(), errTest)

	r = New(5, errTest)
	require.True(r.IsFailure())
	require.Equal(0, r.Data())
	require.Same(errTest, r.Error())
}

func TestSuccessWithZeroData(t *testing.T) {
	req := require.New(t)

	r := Success[*int, error](nil)
	req.True(r.IsSuccess())
	req.Nil(r.Data())
	req.Nil(r.Error())

	s := Success[string, error]("")
	req.True(s.IsSuccess())
}

func TestFailureWithNonErrorValue(t *testing.T) {
	req := require.New(t)

	r := Failure[int, any]("Division by zero")
	req.True(r.IsFailure())
	req.Equal("Division by zero", r.Error())
	req.Equal(0, r.Data())

	n := Failure[string, any](7)
	req.Equal(7, n.Error())
	req.Equal("", n.Data())
}

func TestGet(t *testing.T) {
	req := require.New(t)

	v, err := Success[string, error]("ok").Get()
	req.NoError(err)
	req.Equal("ok", v)

	errTest := errors.New("test err")
	v, err = Failure[string](errTest).Get()
	req.ErrorIs(err, errTest)
	req.Equal("", v)
}

func TestStructuralEquality(t *testing.T) {
	req := require.New(t)

	req.Equal(Success[int, error](3), New(3, nil))
	req.NotEqual(Success[int, error](0), Failure[int, error](nil))
}
