package terminal

import (
	"testing"
	"time"
)

// TestRequestFrameKeepsOneSlot verifies a second request replaces the first
func TestRequestFrameKeepsOneSlot(t *testing.T) {
	s := NewFrameScheduler(4)
	var ran []string
	s.RequestFrame(func(time.Time) { ran = append(ran, "first") })
	s.RequestFrame(func(time.Time) { ran = append(ran, "second") })

	if !s.Pending() {
		t.Fatal("expected a pending frame")
	}
	if !s.Tick(time.Now()) {
		t.Fatal("tick should run the pending frame")
	}
	if s.Tick(time.Now()) {
		t.Error("second tick should find nothing pending")
	}
	if len(ran) != 1 || ran[0] != "second" {
		t.Errorf("ran = %v, want [second]", ran)
	}
}

// TestTickPassesTime verifies the frame receives the tick timestamp
func TestTickPassesTime(t *testing.T) {
	s := NewFrameScheduler(1)
	want := time.Unix(42, 0)
	var got time.Time
	s.RequestFrame(func(now time.Time) { got = now })
	s.Tick(want)
	if !got.Equal(want) {
		t.Errorf("frame got %v, want %v", got, want)
	}
}

// TestFrameCanRescheduleItself verifies the loop pattern used by the engine
func TestFrameCanRescheduleItself(t *testing.T) {
	s := NewFrameScheduler(1)
	count := 0
	var loop func(time.Time)
	loop = func(time.Time) {
		count++
		if count < 3 {
			s.RequestFrame(loop)
		}
	}
	s.RequestFrame(loop)
	for i := 0; i < 5; i++ {
		s.Tick(time.Now())
	}
	if count != 3 {
		t.Errorf("loop ran %d times, want 3", count)
	}
}

// TestAfterFuncDeliversOnChannel verifies timers are marshalled, not run
func TestAfterFuncDeliversOnChannel(t *testing.T) {
	s := NewFrameScheduler(1)
	defer s.Stop()

	ran := false
	s.AfterFunc(5*time.Millisecond, func() { ran = true })

	select {
	case fn := <-s.Timers():
		if ran {
			t.Fatal("callback ran before the host invoked it")
		}
		fn()
	case <-time.After(2 * time.Second):
		t.Fatal("timer never delivered")
	}
	if !ran {
		t.Error("callback did not run")
	}
}

// TestStopCancelsTimers verifies nothing is delivered after Stop
func TestStopCancelsTimers(t *testing.T) {
	s := NewFrameScheduler(1)
	s.AfterFunc(20*time.Millisecond, func() {})
	s.RequestFrame(func(time.Time) {})
	s.Stop()
	s.Stop()

	if s.Pending() {
		t.Error("stop should drop the pending frame")
	}
	s.AfterFunc(time.Millisecond, func() {})

	select {
	case <-s.Timers():
		t.Error("timer delivered after stop")
	case <-time.After(60 * time.Millisecond):
	}
}
