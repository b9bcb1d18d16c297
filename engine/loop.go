package engine

import (
	"fmt"
	"math"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/charazer/kana-game-sub000/constants"
)

// Start begins a run: input is enabled, one token spawns immediately and the
// frame loop is scheduled. Starting a running or finished engine is a no-op;
// call Reset first to begin a new run.
func (e *Engine) Start() {
	if e.running || e.over {
		return
	}
	e.running = true
	e.input.Enable()
	e.lastFrame = e.clock.Now()
	e.SpawnToken()
	e.sched.RequestFrame(e.frameFn)
	e.log.WithFields(logrus.Fields{"mode": e.mode, "set": e.kanaSet}).Info("run started")
}

// Pause stops the loop and clears the typed buffer; tokens and score stay
func (e *Engine) Pause() {
	e.running = false
	e.input.Disable()
	e.input.SetBuffer("")
}

// Resume restarts the loop after Pause. No-op while running or after game over.
func (e *Engine) Resume() {
	if e.running || e.over {
		return
	}
	e.running = true
	e.input.Enable()
	e.lastFrame = e.clock.Now()
	e.sched.RequestFrame(e.frameFn)
}

// Reset returns the session to its initial state and notifies the UI
func (e *Engine) Reset() {
	previousLives := e.lives

	e.running = false
	e.over = false
	e.score = 0
	e.lives = constants.InitialLives
	e.combo = 0
	e.correctAnswers = 0
	e.gameTime = 0
	e.speedMultiplier = 1
	e.speed = e.baseSpeed
	e.spawnAccum = 0
	e.selector.Reset()

	for _, t := range e.tokens {
		e.renderer.DestroyToken(t.Handle)
	}
	e.tokens = nil

	e.input.Disable()
	e.input.SetBuffer("")

	if e.cb.OnScore != nil {
		e.cb.OnScore(e.score)
	}
	if e.cb.OnLivesChange != nil {
		e.cb.OnLivesChange(e.lives, previousLives)
	}
	if e.cb.OnCombo != nil {
		e.cb.OnCombo(e.combo)
	}
}

// loop advances the simulation by the time since the previous frame
func (e *Engine) loop(now time.Time) {
	if !e.running {
		return
	}

	dt := now.Sub(e.lastFrame).Seconds()
	if dt < 0 {
		dt = 0
	}
	e.lastFrame = now
	e.gameTime += dt

	if e.mode.Preset().SpeedRamp {
		e.rampSpeed()
	}

	e.spawnAccum += dt
	if e.spawnAccum >= e.spawnInterval {
		e.spawnAccum = 0
		e.SpawnToken()
	}

	dangerLine := e.renderer.Playfield().DangerLine()
	var failed []*Token
	for _, t := range e.tokens {
		t.Y += e.speed * dt
		e.renderer.MoveToken(t.Handle, t.X, t.Y)
		if t.Y >= dangerLine {
			failed = append(failed, t)
		}
	}

	for _, t := range failed {
		if e.fail(t) {
			return
		}
	}

	if e.running {
		e.sched.RequestFrame(e.frameFn)
	}
}

// rampSpeed compounds the challenge speed every SpeedIncreaseInterval
func (e *Engine) rampSpeed() {
	intervals := math.Floor(e.gameTime / constants.SpeedIncreaseInterval)
	multiplier := math.Pow(constants.SpeedBaseExponent, intervals)

	if multiplier > e.speedMultiplier && e.gameTime > constants.SpeedChangeDelay {
		if e.cb.OnSpeedChange != nil {
			e.cb.OnSpeedChange(multiplier)
		}
		pf := e.renderer.Playfield()
		e.renderer.FloatText(pf.Width/2, 0, fmt.Sprintf("speed x%.2f", multiplier), FloatSpeed)
		e.log.WithField("multiplier", multiplier).Info("speed increased")
	}

	e.speedMultiplier = multiplier
	e.speed = e.baseSpeed * multiplier
}

// fail processes a token that reached the danger line. It reports true when
// the miss ended the game.
func (e *Engine) fail(t *Token) bool {
	e.removeToken(t)
	e.renderer.FlashToken(t.Handle, false)
	if e.cb.OnMiss != nil {
		e.cb.OnMiss(t.Entry)
	}
	e.log.WithField("kana", t.Entry.Key().String()).Debug("miss")

	if e.mode.Preset().LosesLives {
		previous := e.lives
		e.lives--
		if e.cb.OnLivesChange != nil {
			e.cb.OnLivesChange(e.lives, previous)
		}
		e.renderer.FloatText(t.X, t.Y, "-1 life", FloatLife)

		if e.lives <= 0 {
			e.lives = 0
			e.running = false
			e.over = true
			e.input.SetBuffer("")
			e.input.Disable()
			e.log.WithFields(logrus.Fields{"score": e.score, "correct": e.correctAnswers, "game_time": e.gameTime}).Info("game over")
			if e.cb.OnGameOver != nil {
				e.cb.OnGameOver()
			}
			return true
		}
	}

	e.combo = 0
	if e.cb.OnCombo != nil {
		e.cb.OnCombo(0)
	}
	return false
}
