package audio

import "errors"

// Cue identifies a game sound
type Cue int

const (
	CueCorrect  Cue = iota // token matched
	CueMiss                // token reached the danger line
	CueLifeLost            // a miss cost a life
	CueSpeedUp             // challenge speed step
	CueGameOver            // run ended
	cueCount
)

func (c Cue) String() string {
	switch c {
	case CueCorrect:
		return "correct"
	case CueMiss:
		return "miss"
	case CueLifeLost:
		return "life_lost"
	case CueSpeedUp:
		return "speed_up"
	case CueGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// ParseCue maps a cue name back to its Cue
func ParseCue(name string) (Cue, bool) {
	for c := Cue(0); c < cueCount; c++ {
		if c.String() == name {
			return c, true
		}
	}
	return 0, false
}

// Sentinel errors
var (
	ErrNotInitialized = errors.New("audio not initialized")
	ErrUnknownCue     = errors.New("unknown audio cue")
)
