package constants

import "time"

// ModePreset groups the tunables that differ between practice and challenge
type ModePreset struct {
	// BaseSpeed is the fall speed in rows per second before any ramp
	BaseSpeed float64

	// SpawnInterval is the game time between timed spawns
	SpawnInterval time.Duration

	// MaxTokens caps concurrently falling tokens
	MaxTokens int

	// LosesLives enables life loss on misses
	LosesLives bool

	// SpeedRamp enables the exponential speed increase over time
	SpeedRamp bool
}

var (
	// PracticePreset is forgiving: slow fall, few tokens, no life loss
	PracticePreset = ModePreset{
		BaseSpeed:     1.2,
		SpawnInterval: 2500 * time.Millisecond,
		MaxTokens:     4,
	}

	// ChallengePreset is the scored mode
	ChallengePreset = ModePreset{
		BaseSpeed:     2.0,
		SpawnInterval: 1600 * time.Millisecond,
		MaxTokens:     7,
		LosesLives:    true,
		SpeedRamp:     true,
	}
)
