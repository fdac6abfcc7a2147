package xtest

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestManyTimesCleanupOrder(t *testing.T) {
	var (
		runs  int
		order []int
	)
	TestManyTimes(t, func(t testing.TB) {
		runs++
		t.Cleanup(func() { order = append(order, 1) })
		t.Cleanup(func() { order = append(order, 2) })
	}, WithDuration(0))

	require.Equal(t, 1, runs)
	require.Equal(t, []int{2, 1}, order)
}

func TestManyTimesRepeats(t *testing.T) {
	var runs int
	TestManyTimes(t, func(t testing.TB) {
		runs++
		time.Sleep(time.Millisecond)
	}, WithDuration(20*time.Millisecond))

	require.Greater(t, runs, 1)
}

func TestContextCancelledOnCleanup(t *testing.T) {
	var ctx interface{ Err() error }
	t.Run("inner", func(t *testing.T) {
		ctx = Context(t)
		require.NoError(t, ctx.Err())
	})
	require.Error(t, ctx.Err())
}
