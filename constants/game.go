package constants

import "time"

// Game Loop Timing Constants
const (
	// FrameUpdateInterval is the rendering frame rate interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// EchoRefreshDelay is how long after a match the input echo is refreshed
	// so keys typed ahead of the match are not hidden by the consumed buffer
	EchoRefreshDelay = 50 * time.Millisecond
)

// Session Constants
const (
	// InitialLives is the life count at the start of every run
	InitialLives = 3

	// UnlockDakutenThreshold is the correct-answer count that unlocks voiced kana
	UnlockDakutenThreshold = 20

	// UnlockYoonThreshold is the correct-answer count that unlocks contracted kana
	UnlockYoonThreshold = 40
)
