package terminal

import (
	"sync"
	"time"
)

// FrameScheduler implements the engine's scheduling contract for a select
// loop. Frames run when the host calls Tick from its frame ticker; timers
// fire on their own goroutines but only hand their callback to Timers, and
// the host runs it. Nothing here calls engine code concurrently.
type FrameScheduler struct {
	pending func(now time.Time)

	timers chan func()
	done   chan struct{}

	mu      sync.Mutex
	active  map[*time.Timer]struct{}
	stopped bool
}

// NewFrameScheduler creates a scheduler whose timer channel holds buffer callbacks
func NewFrameScheduler(buffer int) *FrameScheduler {
	return &FrameScheduler{
		timers: make(chan func(), buffer),
		done:   make(chan struct{}),
		active: make(map[*time.Timer]struct{}),
	}
}

// RequestFrame sets the callback for the next Tick, replacing any pending one
func (s *FrameScheduler) RequestFrame(fn func(now time.Time)) {
	s.pending = fn
}

// Pending reports whether a frame is waiting for Tick
func (s *FrameScheduler) Pending() bool {
	return s.pending != nil
}

// Tick runs the pending frame, if any, and reports whether one ran
func (s *FrameScheduler) Tick(now time.Time) bool {
	fn := s.pending
	if fn == nil {
		return false
	}
	s.pending = nil
	fn(now)
	return true
}

// AfterFunc delivers fn on Timers once d has elapsed
func (s *FrameScheduler) AfterFunc(d time.Duration, fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stopped {
		return
	}

	var t *time.Timer
	t = time.AfterFunc(d, func() {
		s.mu.Lock()
		delete(s.active, t)
		s.mu.Unlock()

		select {
		case s.timers <- fn:
		case <-s.done:
		}
	})
	s.active[t] = struct{}{}
}

// Timers yields due timer callbacks; the host must run each one
func (s *FrameScheduler) Timers() <-chan func() {
	return s.timers
}

// Stop cancels outstanding timers and drops any pending frame
func (s *FrameScheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stopped {
		return
	}
	s.stopped = true
	for t := range s.active {
		t.Stop()
	}
	clear(s.active)
	close(s.done)
	s.pending = nil
}
