package engine

import (
	"github.com/sirupsen/logrus"

	"github.com/charazer/kana-game-sub000/constants"
	"github.com/charazer/kana-game-sub000/vmath"
)

// SpawnToken adds one token at the spawn line. It does nothing when no
// kana are loaded or the mode's token cap is reached.
func (e *Engine) SpawnToken() {
	if len(e.kana) == 0 || len(e.tokens) >= e.maxTokens {
		return
	}

	entry, ok := e.selector.Next(e.AvailableKana())
	if !ok {
		return
	}

	x := e.spawnX()
	h := e.renderer.CreateToken(entry.ID, entry.Kana)
	t := &Token{
		ID:        entry.ID,
		Entry:     entry,
		Handle:    h,
		Glyph:     entry.Kana,
		X:         x,
		Y:         0,
		SpawnTime: e.gameTime,
	}
	e.renderer.MoveToken(h, t.X, t.Y)
	e.tokens = append(e.tokens, t)

	e.log.WithFields(logrus.Fields{"kana": entry.Key().String(), "x": x, "active": len(e.tokens)}).Debug("spawn")
}

// tokenWidth is the horizontal footprint of a token, reduced on narrow playfields
func tokenWidth(pf Playfield) float64 {
	if pf.Width < constants.NarrowViewportWidth {
		return constants.NarrowTokenWidth
	}
	return constants.TokenWidth
}

// spawnX picks a column inside the safe band, retrying to avoid tokens still
// near the spawn line. The last candidate is used if every attempt overlaps.
func (e *Engine) spawnX() float64 {
	pf := e.renderer.Playfield()
	width := tokenWidth(pf)
	lo := float64(constants.SpawnMargin)
	hi := pf.Width - constants.SpawnMargin - width

	if hi <= lo {
		return vmath.Clamp((pf.Width-width)/2, 0, pf.Width)
	}

	var x float64
	for attempt := 0; attempt < constants.SpawnMaxAttempts; attempt++ {
		x = lo + e.rng.Float64()*(hi-lo)
		if !e.overlapsSpawn(x, width) {
			break
		}
	}
	return x
}

func (e *Engine) overlapsSpawn(x, width float64) bool {
	for _, t := range e.tokens {
		if t.Y < constants.SpawnOverlapHeight && vmath.Abs(t.X-x) < width {
			return true
		}
	}
	return false
}
