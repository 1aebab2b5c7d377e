package loop

import (
	"sync/atomic"
	"testing"
	"time"
)

type countingStepper struct {
	calls atomic.Int64
	limit int64 // 0 = never ends on its own
}

func (c *countingStepper) Tick() bool {
	n := c.calls.Add(1)
	return c.limit == 0 || n < c.limit
}

func TestRunUnthrottledStopsWhenStepperEnds(t *testing.T) {
	s := &countingStepper{limit: 3600}
	got := NewGameLoop(s, 0).Run()

	if got != 3600 {
		t.Fatalf("Run() = %d ticks, want 3600", got)
	}
	if s.calls.Load() != 3600 {
		t.Fatalf("stepper called %d times, want 3600", s.calls.Load())
	}
}

func TestRunTickerStopsWhenStepperEnds(t *testing.T) {
	s := &countingStepper{limit: 5}
	got := NewGameLoop(s, 1000).Run()

	if got != 5 {
		t.Fatalf("Run() = %d ticks, want 5", got)
	}
}

func TestStopEndsRun(t *testing.T) {
	s := &countingStepper{}
	g := NewGameLoop(s, 1000)

	done := make(chan int)
	go func() { done <- g.Run() }()

	time.Sleep(20 * time.Millisecond)
	g.Stop()
	g.Stop() // second call must not panic

	select {
	case ticks := <-done:
		if int64(ticks) != s.calls.Load() {
			t.Fatalf("Run() = %d, stepper saw %d", ticks, s.calls.Load())
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after Stop")
	}
}

func TestStopBeforeRun(t *testing.T) {
	s := &countingStepper{}
	g := NewGameLoop(s, 0)
	g.Stop()

	if got := g.Run(); got != 0 {
		t.Fatalf("Run() after Stop = %d ticks, want 0", got)
	}
}
