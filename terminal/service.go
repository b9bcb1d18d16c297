package terminal

import (
	"fmt"
	"os"
	"runtime/debug"
	"sync"

	"github.com/gdamore/tcell/v2"
)

// Service manages the screen lifecycle and input polling
type Service struct {
	screen  tcell.Screen
	eventCh chan tcell.Event
	stopCh  chan struct{}
	doneCh  chan struct{}
	mu       sync.Mutex
	running  bool
	finished bool
}

// NewService wraps screen; a nil screen is replaced by the real terminal on Init
func NewService(screen tcell.Screen) *Service {
	return &Service{
		screen:  screen,
		eventCh: make(chan tcell.Event, 256),
		stopCh:  make(chan struct{}),
		doneCh:  make(chan struct{}),
	}
}

// Init creates and initializes the screen
func (s *Service) Init() error {
	if s.screen == nil {
		screen, err := tcell.NewScreen()
		if err != nil {
			return fmt.Errorf("terminal create: %w", err)
		}
		s.screen = screen
	}
	if err := s.screen.Init(); err != nil {
		return fmt.Errorf("terminal init: %w", err)
	}
	s.screen.SetStyle(tcell.StyleDefault)
	s.screen.HideCursor()
	s.screen.Clear()
	return nil
}

// Start launches the input polling goroutine
func (s *Service) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running || s.finished {
		return
	}
	s.running = true
	go s.pollLoop()
}

// pollLoop forwards screen events until stopped or the screen closes
func (s *Service) pollLoop() {
	defer close(s.doneCh)

	defer func() {
		if r := recover(); r != nil {
			EmergencyReset(os.Stdout)
			fmt.Fprintf(os.Stderr, "\r\n\x1b[31mEVENT POLLER CRASHED: %v\x1b[0m\r\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
			os.Exit(1)
		}
	}()

	for {
		ev := s.screen.PollEvent()
		if ev == nil {
			return
		}

		select {
		case <-s.stopCh:
			return
		default:
		}

		select {
		case s.eventCh <- ev:
		case <-s.stopCh:
			return
		}
	}
}

// Stop ends polling and restores the terminal. Safe to call more than once.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.finished || s.screen == nil {
		return
	}
	s.finished = true

	if s.running {
		s.running = false
		close(s.stopCh)
		// Wake PollEvent so the loop sees the stop signal
		_ = s.screen.PostEvent(tcell.NewEventInterrupt(nil))
		<-s.doneCh
	}
	s.screen.Fini()
}

// Screen returns the wrapped screen
func (s *Service) Screen() tcell.Screen {
	return s.screen
}

// Events returns the input event channel
func (s *Service) Events() <-chan tcell.Event {
	return s.eventCh
}
