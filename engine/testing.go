package engine

import (
	"sort"
	"time"
)

// ManualScheduler is a Scheduler and TimeProvider driven by the caller.
// Time only moves when Step or Advance is called, so tests can replay a run
// frame by frame.
type ManualScheduler struct {
	now    time.Time
	frame  func(now time.Time)
	timers []manualTimer
	seq    int
}

type manualTimer struct {
	at  time.Time
	seq int
	fn  func()
}

// NewManualScheduler creates a scheduler whose clock starts at start
func NewManualScheduler(start time.Time) *ManualScheduler {
	return &ManualScheduler{now: start}
}

func (s *ManualScheduler) Now() time.Time { return s.now }

// RequestFrame replaces any pending frame callback
func (s *ManualScheduler) RequestFrame(fn func(now time.Time)) {
	s.frame = fn
}

func (s *ManualScheduler) AfterFunc(d time.Duration, fn func()) {
	s.seq++
	s.timers = append(s.timers, manualTimer{at: s.now.Add(d), seq: s.seq, fn: fn})
}

// FramePending reports whether a frame callback is waiting
func (s *ManualScheduler) FramePending() bool { return s.frame != nil }

// TimersPending reports the number of timers not yet fired
func (s *ManualScheduler) TimersPending() int { return len(s.timers) }

// Advance moves the clock and fires due timers without running a frame
func (s *ManualScheduler) Advance(d time.Duration) {
	s.now = s.now.Add(d)
	s.fireDue()
}

// Step advances the clock by d, fires due timers, then runs the pending
// frame callback if there is one
func (s *ManualScheduler) Step(d time.Duration) {
	s.Advance(d)
	if fn := s.frame; fn != nil {
		s.frame = nil
		fn(s.now)
	}
}

// Run steps in increments of frame until total has elapsed
func (s *ManualScheduler) Run(total, frame time.Duration) {
	for elapsed := time.Duration(0); elapsed < total; elapsed += frame {
		s.Step(frame)
	}
}

func (s *ManualScheduler) fireDue() {
	for {
		sort.Slice(s.timers, func(i, j int) bool {
			if s.timers[i].at.Equal(s.timers[j].at) {
				return s.timers[i].seq < s.timers[j].seq
			}
			return s.timers[i].at.Before(s.timers[j].at)
		})
		if len(s.timers) == 0 || s.timers[0].at.After(s.now) {
			return
		}
		t := s.timers[0]
		s.timers = s.timers[1:]
		t.fn()
	}
}

// RecordedToken is a token visual tracked by RecordingRenderer
type RecordedToken struct {
	ID    string
	Glyph string
	X, Y  float64
}

// RecordedFlash is one FlashToken call
type RecordedFlash struct {
	Handle  Handle
	ID      string
	Success bool
}

// RecordedFloat is one FloatText call
type RecordedFloat struct {
	X, Y float64
	Text string
	Kind FloatKind
}

// RecordingRenderer is a Renderer that records every call for assertions
type RecordingRenderer struct {
	Field     Playfield
	Live      map[Handle]*RecordedToken
	Flashes   []RecordedFlash
	Floats    []RecordedFloat
	Destroyed []Handle
	next      Handle
}

// NewRecordingRenderer creates a renderer reporting the given playfield
func NewRecordingRenderer(field Playfield) *RecordingRenderer {
	return &RecordingRenderer{
		Field: field,
		Live:  make(map[Handle]*RecordedToken),
	}
}

func (r *RecordingRenderer) CreateToken(id, glyph string) Handle {
	r.next++
	r.Live[r.next] = &RecordedToken{ID: id, Glyph: glyph}
	return r.next
}

func (r *RecordingRenderer) DestroyToken(h Handle) {
	delete(r.Live, h)
	r.Destroyed = append(r.Destroyed, h)
}

func (r *RecordingRenderer) MoveToken(h Handle, x, y float64) {
	if t, ok := r.Live[h]; ok {
		t.X, t.Y = x, y
	}
}

func (r *RecordingRenderer) FlashToken(h Handle, success bool) {
	flash := RecordedFlash{Handle: h, Success: success}
	if t, ok := r.Live[h]; ok {
		flash.ID = t.ID
	}
	delete(r.Live, h)
	r.Flashes = append(r.Flashes, flash)
}

func (r *RecordingRenderer) FloatText(x, y float64, text string, kind FloatKind) {
	r.Floats = append(r.Floats, RecordedFloat{X: x, Y: y, Text: text, Kind: kind})
}

func (r *RecordingRenderer) Playfield() Playfield { return r.Field }

// FloatsOf filters recorded floating texts by kind
func (r *RecordingRenderer) FloatsOf(kind FloatKind) []RecordedFloat {
	var out []RecordedFloat
	for _, f := range r.Floats {
		if f.Kind == kind {
			out = append(out, f)
		}
	}
	return out
}
