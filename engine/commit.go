package engine

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/charazer/kana-game-sub000/constants"
	"github.com/charazer/kana-game-sub000/content"
	"github.com/charazer/kana-game-sub000/matcher"
)

// HandleCommit resolves the typed buffer against the active tokens. On a
// match the token is scored and removed and only the matched romaji is
// consumed from the buffer; otherwise nothing changes.
func (e *Engine) HandleCommit(value string) {
	if value == "" || !e.running {
		return
	}

	idx, consumed, ok := e.findMatch(value)
	if !ok {
		return
	}

	t := e.tokens[idx]
	e.removeToken(t)
	e.renderer.FlashToken(t.Handle, true)

	e.correctAnswers++
	points := e.CalculateScore(t)
	e.combo++
	e.score += points

	if e.cb.OnScore != nil {
		e.cb.OnScore(e.score)
	}
	if e.cb.OnCombo != nil {
		e.cb.OnCombo(e.combo)
	}
	if e.cb.OnMatch != nil {
		e.cb.OnMatch(t.Entry, points)
	}

	e.renderer.FloatText(t.X, t.Y, fmt.Sprintf("+%d", points), FloatPoints)
	if e.combo > 1 {
		e.renderer.FloatText(t.X, t.Y+1, fmt.Sprintf("%d combo", e.combo), FloatCombo)
	}
	e.checkUnlocks()

	e.log.WithFields(logrus.Fields{
		"kana":   t.Entry.Key().String(),
		"points": points,
		"combo":  e.combo,
		"buffer": value,
	}).Debug("match")

	remaining := value[consumed:]
	e.input.SetBuffer(remaining)

	if len(e.tokens) == 0 {
		e.SpawnToken()
		e.spawnAccum = 0
	}

	// keys typed while this commit was in flight already emitted their own
	// echo; only refresh if the buffer is still what we left behind
	e.sched.AfterFunc(constants.EchoRefreshDelay, func() {
		if e.input.Buffer() == remaining {
			e.input.Refresh()
		}
	})
}

// findMatch picks the token a buffer resolves to: the longest romaji prefix
// across tokens in spawn order, else an exact glyph or spelling match.
// consumed is the byte length to drop from the front of the buffer.
func (e *Engine) findMatch(buffer string) (idx, consumed int, ok bool) {
	if m, found := matcher.LongestRomajiMatch(e.entries(), buffer); found {
		if m.Suffix {
			return m.Index, len(buffer), true
		}
		return m.Index, len(m.Romaji), true
	}

	for i, t := range e.tokens {
		if matcher.ExactMatch(t.Entry, buffer) {
			return i, len(buffer), true
		}
	}
	return 0, 0, false
}

// checkUnlocks announces a tier the moment its threshold is crossed
func (e *Engine) checkUnlocks() {
	if e.cb.OnUnlock == nil {
		return
	}
	if e.includeDakuten && e.correctAnswers == constants.UnlockDakutenThreshold {
		e.cb.OnUnlock(content.TierDakuten)
	}
	if e.includeYoon && e.correctAnswers == constants.UnlockYoonThreshold {
		e.cb.OnUnlock(content.TierYoon)
	}
}
