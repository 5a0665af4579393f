// Package leaktest flags goroutines that outlive a test
package leaktest

import (
	"runtime"
	"testing"
	"time"
)

const (
	settleDelay  = 10 * time.Millisecond
	drainTimeout = 2 * time.Second
)

// GoroutineChecker compares goroutine counts before and after a block of work
type GoroutineChecker struct {
	before int
	t      testing.TB
}

// NewGoroutineChecker records the current goroutine count
func NewGoroutineChecker(t testing.TB) *GoroutineChecker {
	t.Helper()

	runtime.Gosched()
	time.Sleep(settleDelay)

	return &GoroutineChecker{
		before: runtime.NumGoroutine(),
		t:      t,
	}
}

// Check waits up to drainTimeout for the count to settle within tolerance of the baseline
func (g *GoroutineChecker) Check(tolerance int) {
	g.t.Helper()

	deadline := time.Now().Add(drainTimeout)
	after := runtime.NumGoroutine()
	for after-g.before > tolerance && time.Now().Before(deadline) {
		runtime.Gosched()
		time.Sleep(settleDelay)
		after = runtime.NumGoroutine()
	}

	if leaked := after - g.before; leaked > tolerance {
		g.t.Errorf("Potential goroutine leak: before=%d, after=%d, leaked=%d (tolerance=%d)",
			g.before, after, leaked, tolerance)
	}
}

// Track checks for leaked goroutines when the test finishes
func Track(t testing.TB, tolerance int) {
	t.Helper()
	checker := NewGoroutineChecker(t)
	t.Cleanup(func() { checker.Check(tolerance) })
}
