package constants

// Scoring
const (
	// BasePoints is awarded for every correct answer before bonuses
	BasePoints = 10

	// MaxTimeBonus is the bonus for an instant answer; it falls linearly to
	// zero as the token approaches the danger line
	MaxTimeBonus = 10

	// ComboMultiplier is the per-combo step added to the 1.0 base multiplier
	ComboMultiplier = 0.05

	// MixedSetMultiplier scales scores when hiragana and katakana are mixed
	MixedSetMultiplier = 1.25
)

// Difficulty multipliers by number of optional tiers enabled
const (
	DifficultyNoTiers  = 0.5
	DifficultyOneTier  = 0.75
	DifficultyAllTiers = 1.0
)

// Challenge Speed Ramp
const (
	// SpeedIncreaseInterval is the game time (seconds) between speed steps
	SpeedIncreaseInterval = 30.0

	// SpeedBaseExponent is the compounding factor applied per step
	SpeedBaseExponent = 1.08

	// SpeedChangeDelay suppresses speed notifications right after start (seconds)
	SpeedChangeDelay = 1.0
)
