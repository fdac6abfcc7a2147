package xtest

import (
	"sync"
	"testing"
	"time"
)

type TestFunc func(t testing.TB)

type manyTimesOptions struct {
	duration time.Duration
}

type ManyTimesOption func(o *manyTimesOptions)

// WithDuration limits total time of repeats, one second by default
func WithDuration(d time.Duration) ManyTimesOption {
	return func(o *manyTimesOptions) {
		o.duration = d
	}
}

// TestManyTimes repeats test until duration is over. Test runs at least once.
// Cleanups registered by test run after each repeat.
func TestManyTimes(t testing.TB, test TestFunc, opts ...ManyTimesOption) {
	t.Helper()

	o := manyTimesOptions{duration: time.Second}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	start := time.Now()
	for {
		runTest(t, test)

		if t.Failed() || time.Since(start) > o.duration {
			return
		}
	}
}

func runTest(t testing.TB, test TestFunc) {
	t.Helper()

	tw := &testWrapper{
		TB: t,
	}

	defer tw.doCleanup()

	test(tw)
}

type testWrapper struct {
	testing.TB

	m       sync.Mutex
	cleanup []func()
}

func (tw *testWrapper) Cleanup(f func()) {
	tw.Helper()

	tw.m.Lock()
	defer tw.m.Unlock()

	tw.cleanup = append(tw.cleanup, f)
}

func (tw *testWrapper) doCleanup() {
	tw.Helper()

	for len(tw.cleanup) > 0 {
		last := tw.cleanup[len(tw.cleanup)-1]
		tw.cleanup = tw.cleanup[:len(tw.cleanup)-1]

		last()
	}
}
