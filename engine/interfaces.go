package engine

import "time"

// Handle is an opaque renderer reference to one token visual
type Handle uint64

// FloatKind tags floating feedback text
type FloatKind uint8

const (
	FloatPoints FloatKind = iota
	FloatCombo
	FloatLife
	FloatSpeed
)

func (k FloatKind) String() string {
	switch k {
	case FloatPoints:
		return "points"
	case FloatCombo:
		return "combo"
	case FloatLife:
		return "life"
	case FloatSpeed:
		return "speed"
	default:
		return "unknown"
	}
}

// Playfield reports the play area in the unit token positions use
type Playfield struct {
	Width      float64
	Height     float64
	DangerZone float64
}

// DangerLine is the vertical position at which a token counts as missed
func (p Playfield) DangerLine() float64 {
	return p.Height - p.DangerZone
}

// Renderer draws tokens and feedback. FlashToken hands the visual over to
// an exit animation; the renderer disposes of it afterwards, so the engine
// never destroys a flashed handle.
type Renderer interface {
	CreateToken(id, glyph string) Handle
	DestroyToken(h Handle)
	MoveToken(h Handle, x, y float64)
	FlashToken(h Handle, success bool)
	FloatText(x, y float64, text string, kind FloatKind)
	Playfield() Playfield
}

// InputSource is the typed-buffer owner the engine drives
type InputSource interface {
	Enable()
	Disable()
	Buffer() string
	SetBuffer(s string)
	Refresh()
	OnCommit(fn func(buffer string))
}

// Scheduler is the host's frame and timer primitive. Callbacks must run on
// the engine's goroutine. RequestFrame keeps at most one pending callback.
type Scheduler interface {
	RequestFrame(fn func(now time.Time))
	AfterFunc(d time.Duration, fn func())
}
