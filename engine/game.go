package engine

import (
	"io"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/charazer/kana-game-sub000/constants"
	"github.com/charazer/kana-game-sub000/content"
	"github.com/charazer/kana-game-sub000/selection"
	"github.com/charazer/kana-game-sub000/vmath"
)

// Mode selects the rule preset
type Mode string

const (
	ModePractice  Mode = "practice"
	ModeChallenge Mode = "challenge"
)

// ParseMode validates a mode name from flags or config
func ParseMode(s string) (Mode, bool) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case ModePractice:
		return ModePractice, true
	case ModeChallenge:
		return ModeChallenge, true
	}
	return "", false
}

// Preset returns the tunables for the mode; unknown modes get practice
func (m Mode) Preset() constants.ModePreset {
	if m == ModeChallenge {
		return constants.ChallengePreset
	}
	return constants.PracticePreset
}

// Callbacks are the engine's outbound events. Every field is optional and
// each fires synchronously inside the call that caused it.
type Callbacks struct {
	OnScore       func(total int)
	OnLivesChange func(lives, previous int)
	OnCombo       func(combo int)
	OnSpeedChange func(multiplier float64)
	OnGameOver    func()

	// Peripheral hooks (audio, stats)
	OnMatch  func(entry content.Entry, points int)
	OnMiss   func(entry content.Entry)
	OnUnlock func(tier content.Tier)
}

// Option customizes an Engine at construction
type Option func(*Engine)

// WithLogger routes engine diagnostics
func WithLogger(log logrus.FieldLogger) Option {
	return func(e *Engine) { e.log = log }
}

// WithRand injects the random source used for selection and placement
func WithRand(rng vmath.Rand) Option {
	return func(e *Engine) { e.rng = rng }
}

// WithClock replaces the clock used to seed frame timing
func WithClock(clock TimeProvider) Option {
	return func(e *Engine) { e.clock = clock }
}

// WithLibrary replaces the built-in kana catalogs
func WithLibrary(lib content.Library) Option {
	return func(e *Engine) { e.library = lib }
}

// Engine owns all mutable game state for one play session.
// It is single-threaded: every method, frame and timer callback must run
// on the same goroutine.
type Engine struct {
	renderer Renderer
	input    InputSource
	sched    Scheduler
	clock    TimeProvider
	log      logrus.FieldLogger
	rng      vmath.Rand
	cb       Callbacks

	selector *selection.Selector
	library  content.Library
	kana     content.Catalog
	kanaSet  content.Set

	includeDakuten bool
	includeYoon    bool

	mode          Mode
	baseSpeed     float64
	speed         float64
	spawnInterval float64
	maxTokens     int

	tokens []*Token

	score           int
	lives           int
	combo           int
	correctAnswers  int
	gameTime        float64
	speedMultiplier float64
	spawnAccum      float64

	running   bool
	over      bool
	lastFrame time.Time

	// bound once so scheduling never allocates a new closure
	frameFn func(now time.Time)
}

// New creates an engine in practice mode with the hiragana set loaded.
// The engine registers itself as the input's commit handler.
func New(renderer Renderer, input InputSource, sched Scheduler, opts ...Option) *Engine {
	e := &Engine{
		renderer:        renderer,
		input:           input,
		sched:           sched,
		lives:           constants.InitialLives,
		speedMultiplier: 1,
		library:         content.Builtin(),
	}
	for _, opt := range opts {
		opt(e)
	}

	if e.clock == nil {
		e.clock = NewMonotonicTimeProvider()
	}
	if e.rng == nil {
		e.rng = vmath.NewTimeSeededRand()
	}
	if e.log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		e.log = l
	}
	e.log = e.log.WithField("component", "engine")

	e.selector = selection.New(e.rng)
	e.frameFn = e.loop

	e.SetGameMode(ModePractice)
	e.LoadKana(content.SetHiragana)
	input.OnCommit(e.HandleCommit)
	return e
}

// SetCallbacks replaces the outbound event handlers
func (e *Engine) SetCallbacks(cb Callbacks) {
	e.cb = cb
}

// SetGameMode applies the mode preset without touching session state
func (e *Engine) SetGameMode(mode Mode) {
	if mode != ModeChallenge {
		mode = ModePractice
	}
	p := mode.Preset()
	e.mode = mode
	e.baseSpeed = p.BaseSpeed
	e.speed = p.BaseSpeed
	e.spawnInterval = p.SpawnInterval.Seconds()
	e.maxTokens = p.MaxTokens
	e.log.WithFields(logrus.Fields{"mode": mode, "speed": e.speed, "max_tokens": e.maxTokens}).Debug("mode set")
}

// SetLibrary swaps the catalogs sets are drawn from; the active set is reloaded
func (e *Engine) SetLibrary(lib content.Library) {
	e.library = lib
	e.LoadKana(e.kanaSet)
}

// LoadKana replaces the active catalog; tokens and state are kept
func (e *Engine) LoadKana(set content.Set) {
	e.kana = e.library.ForSet(set)
	e.kanaSet = set
	if len(e.kana) == 0 {
		e.log.WithField("set", set).Warn("kana set is empty, spawning disabled")
	}
}

// SetTierOptions applies the user's optional tier toggles
func (e *Engine) SetTierOptions(includeDakuten, includeYoon bool) {
	e.includeDakuten = includeDakuten
	e.includeYoon = includeYoon
}

func (e *Engine) Score() int               { return e.score }
func (e *Engine) Lives() int               { return e.lives }
func (e *Engine) Combo() int               { return e.combo }
func (e *Engine) CorrectAnswers() int      { return e.correctAnswers }
func (e *Engine) GameTime() float64        { return e.gameTime }
func (e *Engine) Speed() float64           { return e.speed }
func (e *Engine) SpeedMultiplier() float64 { return e.speedMultiplier }
func (e *Engine) Mode() Mode               { return e.mode }
func (e *Engine) KanaSet() content.Set     { return e.kanaSet }
func (e *Engine) Running() bool            { return e.running }
func (e *Engine) GameOver() bool           { return e.over }
func (e *Engine) MaxTokens() int           { return e.maxTokens }

// TierOptions reports the optional tier toggles
func (e *Engine) TierOptions() (includeDakuten, includeYoon bool) {
	return e.includeDakuten, e.includeYoon
}

// Tokens returns a snapshot of the active tokens in spawn order
func (e *Engine) Tokens() []Token {
	out := make([]Token, len(e.tokens))
	for i, t := range e.tokens {
		out[i] = *t
	}
	return out
}
