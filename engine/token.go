package engine

import "github.com/charazer/kana-game-sub000/content"

// Token is one falling kana awaiting a match
type Token struct {
	ID     string
	Entry  content.Entry
	Handle Handle
	Glyph  string
	X, Y   float64

	// SpawnTime is the engine game time (seconds) at spawn, so pauses do not
	// count against the time bonus
	SpawnTime float64
}

func (e *Engine) removeToken(t *Token) {
	for i, cur := range e.tokens {
		if cur == t {
			e.tokens = append(e.tokens[:i], e.tokens[i+1:]...)
			return
		}
	}
}

func (e *Engine) entries() []content.Entry {
	out := make([]content.Entry, len(e.tokens))
	for i, t := range e.tokens {
		out[i] = t.Entry
	}
	return out
}
