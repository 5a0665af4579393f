package leaktest

import (
	"sync"
	"testing"
	"time"
)

func TestGoroutineChecker_NoLeak(t *testing.T) {
	checker := NewGoroutineChecker(t)
	checker.Check(0)
}

func TestGoroutineChecker_WaitsForFinishingWork(t *testing.T) {
	checker := NewGoroutineChecker(t)

	var wg sync.WaitGroup
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			time.Sleep(30 * time.Millisecond)
		}()
	}

	// Not waiting on wg: Check must give the workers time to exit
	checker.Check(0)
	wg.Wait()
}

func TestGoroutineChecker_WithTolerance(t *testing.T) {
	checker := NewGoroutineChecker(t)

	done := make(chan struct{})
	go func() {
		<-done
	}()

	checker.Check(1)
	close(done)
}

func TestTrack(t *testing.T) {
	Track(t, 0)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
	}()
	wg.Wait()
}
