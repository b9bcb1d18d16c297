package render

import (
	"sort"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/charazer/kana-game-sub000/constants"
	"github.com/charazer/kana-game-sub000/engine"
)

type sprite struct {
	id    string
	glyph string
	x, y  float64
}

type flash struct {
	sprite
	success bool
	until   time.Time
}

type floatText struct {
	x, y float64
	text string
	kind engine.FloatKind
	born time.Time
}

// Renderer draws the game onto a tcell screen. Engine calls only record
// state; nothing reaches the terminal until Draw.
type Renderer struct {
	screen tcell.Screen
	clock  engine.TimeProvider

	next    engine.Handle
	tokens  map[engine.Handle]*sprite
	flashes []flash
	floats  []floatText

	hud     HUD
	echo    string
	overlay []string
}

// NewRenderer creates a renderer bound to an initialized screen
func NewRenderer(screen tcell.Screen, clock engine.TimeProvider) *Renderer {
	if clock == nil {
		clock = engine.NewMonotonicTimeProvider()
	}
	return &Renderer{
		screen: screen,
		clock:  clock,
		tokens: make(map[engine.Handle]*sprite),
		hud:    HUD{Lives: constants.InitialLives, MaxLives: constants.InitialLives},
	}
}

func (r *Renderer) CreateToken(id, glyph string) engine.Handle {
	r.next++
	r.tokens[r.next] = &sprite{id: id, glyph: glyph}
	return r.next
}

func (r *Renderer) DestroyToken(h engine.Handle) {
	delete(r.tokens, h)
}

func (r *Renderer) MoveToken(h engine.Handle, x, y float64) {
	if s, ok := r.tokens[h]; ok {
		s.x, s.y = x, y
	}
}

// FlashToken replaces the token with a short-lived colored copy
func (r *Renderer) FlashToken(h engine.Handle, success bool) {
	s, ok := r.tokens[h]
	if !ok {
		return
	}
	delete(r.tokens, h)
	r.flashes = append(r.flashes, flash{
		sprite:  *s,
		success: success,
		until:   r.clock.Now().Add(constants.FlashDuration),
	})
}

func (r *Renderer) FloatText(x, y float64, text string, kind engine.FloatKind) {
	r.floats = append(r.floats, floatText{x: x, y: y, text: text, kind: kind, born: r.clock.Now()})
}

// Playfield is the screen minus header and footer rows
func (r *Renderer) Playfield() engine.Playfield {
	w, h := r.screen.Size()
	height := h - constants.HeaderRows - constants.FooterRows
	if height < 1 {
		height = 1
	}
	return engine.Playfield{
		Width:      float64(w),
		Height:     float64(height),
		DangerZone: constants.DangerZoneHeight,
	}
}

// UpdateHUD applies fn to the header state
func (r *Renderer) UpdateHUD(fn func(h *HUD)) {
	fn(&r.hud)
}

// HUD returns a copy of the header state
func (r *Renderer) HUD() HUD { return r.hud }

// SetEcho sets the typed buffer shown in the footer
func (r *Renderer) SetEcho(buffer string) { r.echo = buffer }

// SetOverlay shows centered lines over the playfield; no lines clears it
func (r *Renderer) SetOverlay(lines ...string) { r.overlay = lines }

// ActiveTokens reports the number of live token visuals
func (r *Renderer) ActiveTokens() int { return len(r.tokens) }

// expire drops flashes and floats whose time is up
func (r *Renderer) expire(now time.Time) {
	flashes := r.flashes[:0]
	for _, f := range r.flashes {
		if now.Before(f.until) {
			flashes = append(flashes, f)
		}
	}
	r.flashes = flashes

	floats := r.floats[:0]
	for _, f := range r.floats {
		if now.Sub(f.born) < constants.FloatTextDuration {
			floats = append(floats, f)
		}
	}
	r.floats = floats
}

// sortedHandles gives a stable draw order, oldest token first
func (r *Renderer) sortedHandles() []engine.Handle {
	handles := make([]engine.Handle, 0, len(r.tokens))
	for h := range r.tokens {
		handles = append(handles, h)
	}
	sort.Slice(handles, func(i, j int) bool { return handles[i] < handles[j] })
	return handles
}
