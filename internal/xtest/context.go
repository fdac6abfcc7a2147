package xtest

import (
	"context"
	"runtime/pprof"
	"testing"
)

// Context is cancelled on test cleanup. Goroutines started with it are
// labeled by test name in goroutine profiles.
func Context(t testing.TB) context.Context {
	ctx, cancel := context.WithCancel(context.Background())
	ctx = pprof.WithLabels(ctx, pprof.Labels("test", t.Name()))
	pprof.SetGoroutineLabels(ctx)

	t.Cleanup(func() {
		pprof.SetGoroutineLabels(context.Background())
		cancel()
	})

	return ctx
}
