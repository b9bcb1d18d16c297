// Package session runs one player's sequence of games: it fans engine
// events out to the HUD, the speaker and the score store, and owns the
// pause and restart controls.
package session

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/charazer/kana-game-sub000/audio"
	"github.com/charazer/kana-game-sub000/constants"
	"github.com/charazer/kana-game-sub000/content"
	"github.com/charazer/kana-game-sub000/engine"
	"github.com/charazer/kana-game-sub000/render"
	"github.com/charazer/kana-game-sub000/store"
)

// SaveTimeout bounds how long game over waits on the score store
const SaveTimeout = 3 * time.Second

// Display is the HUD surface the session updates
type Display interface {
	UpdateHUD(fn func(h *render.HUD))
	SetOverlay(lines ...string)
}

// Sounds plays audio cues
type Sounds interface {
	Play(cue audio.Cue) error
}

// Option customizes a Session
type Option func(*Session)

func WithSounds(s Sounds) Option             { return func(ss *Session) { ss.sounds = s } }
func WithStore(s store.Store) Option         { return func(ss *Session) { ss.store = s } }
func WithLogger(l logrus.FieldLogger) Option { return func(ss *Session) { ss.log = l } }
func WithPlayer(name string) Option          { return func(ss *Session) { ss.player = name } }
func WithClock(c engine.TimeProvider) Option { return func(ss *Session) { ss.clock = c } }
func WithSaveHook(fn func(store.Record, error)) Option {
	return func(ss *Session) { ss.onSaved = fn }
}

// Session binds an engine to its peripherals for one player
type Session struct {
	engine  *engine.Engine
	display Display
	sounds  Sounds
	store   store.Store
	log     logrus.FieldLogger
	clock   engine.TimeProvider
	player  string
	onSaved func(store.Record, error)

	runID    string
	maxCombo int
	misses   int
	paused   bool
	last     *store.Record
	runs     int
}

// New wires the engine callbacks; it does not start a run
func New(e *engine.Engine, display Display, opts ...Option) *Session {
	s := &Session{engine: e, display: display}
	for _, opt := range opts {
		opt(s)
	}
	if s.log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		s.log = l
	}
	s.log = s.log.WithField("component", "session")
	if s.clock == nil {
		s.clock = engine.NewMonotonicTimeProvider()
	}

	e.SetCallbacks(engine.Callbacks{
		OnScore:       s.onScore,
		OnLivesChange: s.onLivesChange,
		OnCombo:       s.onCombo,
		OnSpeedChange: s.onSpeedChange,
		OnGameOver:    s.onGameOver,
		OnMatch:       func(content.Entry, int) { s.play(audio.CueCorrect) },
		OnMiss:        s.onMiss,
		OnUnlock:      s.onUnlock,
	})
	return s
}

// Start begins a new run from the engine's current (reset) state
func (s *Session) Start() {
	s.runID = store.NewRunID()
	s.maxCombo = 0
	s.misses = 0
	s.paused = false
	s.runs++

	preset := s.engine.Mode().Preset()
	s.display.UpdateHUD(func(h *render.HUD) {
		h.Score = s.engine.Score()
		h.Lives = s.engine.Lives()
		h.MaxLives = constants.InitialLives
		h.Combo = s.engine.Combo()
		h.Speed = s.engine.SpeedMultiplier()
		h.Mode = string(s.engine.Mode())
		h.Set = string(s.engine.KanaSet())
		h.Player = s.player
		h.LosesLives = preset.LosesLives
		h.Dakuten = false
		h.Yoon = false
	})
	s.display.SetOverlay()
	s.engine.Start()

	s.log.WithFields(logrus.Fields{"run_id": s.runID, "mode": s.engine.Mode(), "set": s.engine.KanaSet()}).Info("session run started")
}

// TogglePause pauses a running game or resumes a paused one.
// It does nothing after game over.
func (s *Session) TogglePause() {
	if s.engine.GameOver() {
		return
	}
	if s.paused {
		s.paused = false
		s.display.SetOverlay()
		s.engine.Resume()
		return
	}
	if !s.engine.Running() {
		return
	}
	s.paused = true
	s.engine.Pause()
	s.display.SetOverlay("PAUSED", "Esc to resume  Ctrl-Q to quit")
}

// Restart resets the engine and begins a new run
func (s *Session) Restart() {
	s.engine.Reset()
	s.Start()
}

func (s *Session) Paused() bool   { return s.paused }
func (s *Session) RunID() string  { return s.runID }
func (s *Session) MaxCombo() int  { return s.maxCombo }
func (s *Session) Misses() int    { return s.misses }
func (s *Session) Runs() int      { return s.runs }
func (s *Session) Player() string { return s.player }

// LastRecord returns the most recent finished run
func (s *Session) LastRecord() (store.Record, bool) {
	if s.last == nil {
		return store.Record{}, false
	}
	return *s.last, true
}

// Snapshot builds a record of the run so far; used when quitting mid-run
func (s *Session) Snapshot() store.Record {
	return store.Record{
		RunID:    s.runID,
		Player:   s.player,
		Mode:     string(s.engine.Mode()),
		Set:      string(s.engine.KanaSet()),
		Score:    s.engine.Score(),
		Correct:  s.engine.CorrectAnswers(),
		MaxCombo: s.maxCombo,
		Duration: time.Duration(s.engine.GameTime() * float64(time.Second)),
		PlayedAt: s.clock.Now(),
	}
}

func (s *Session) onScore(total int) {
	s.display.UpdateHUD(func(h *render.HUD) { h.Score = total })
}

func (s *Session) onLivesChange(lives, previous int) {
	s.display.UpdateHUD(func(h *render.HUD) { h.Lives = lives })
	if lives < previous {
		s.play(audio.CueLifeLost)
	}
}

func (s *Session) onCombo(combo int) {
	s.maxCombo = max(s.maxCombo, combo)
	s.display.UpdateHUD(func(h *render.HUD) { h.Combo = combo })
}

func (s *Session) onSpeedChange(multiplier float64) {
	s.display.UpdateHUD(func(h *render.HUD) { h.Speed = multiplier })
	s.play(audio.CueSpeedUp)
}

func (s *Session) onMiss(content.Entry) {
	s.misses++
	s.play(audio.CueMiss)
}

func (s *Session) onUnlock(tier content.Tier) {
	s.display.UpdateHUD(func(h *render.HUD) {
		switch tier {
		case content.TierDakuten:
			h.Dakuten = true
		case content.TierYoon:
			h.Yoon = true
		}
	})
	s.log.WithField("tier", tier).Info("tier unlocked")
}

func (s *Session) onGameOver() {
	s.play(audio.CueGameOver)

	rec := s.Snapshot()
	s.last = &rec

	var err error
	if s.store != nil {
		ctx, cancel := context.WithTimeout(context.Background(), SaveTimeout)
		err = s.store.Save(ctx, rec)
		cancel()
		if err != nil {
			s.log.WithError(err).WithField("run_id", rec.RunID).Error("save run failed")
		}
	}
	if s.onSaved != nil {
		s.onSaved(rec, err)
	}

	s.display.SetOverlay(
		"GAME OVER",
		fmt.Sprintf("score %d  correct %d  best combo %d", rec.Score, rec.Correct, rec.MaxCombo),
		"Enter to play again  Ctrl-Q to quit",
	)
}

func (s *Session) play(cue audio.Cue) {
	if s.sounds == nil {
		return
	}
	if err := s.sounds.Play(cue); err != nil {
		s.log.WithError(err).WithField("cue", cue).Debug("cue not played")
	}
}
