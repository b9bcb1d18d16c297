package constants

import "time"

// Audio Output
const (
	// AudioSampleRate is the speaker sample rate in Hz
	AudioSampleRate = 48000

	// AudioBufferDuration is the speaker buffer length
	AudioBufferDuration = 100 * time.Millisecond
)

// Cue Timing
const (
	CorrectSoundDuration  = 90 * time.Millisecond
	MissSoundDuration     = 150 * time.Millisecond
	LifeLostSoundDuration = 300 * time.Millisecond
	SpeedUpSoundDuration  = 400 * time.Millisecond
	GameOverNoteDuration  = 220 * time.Millisecond
)
