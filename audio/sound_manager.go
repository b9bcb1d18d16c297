package audio

import (
	"fmt"
	"io"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	"github.com/sirupsen/logrus"

	"github.com/charazer/kana-game-sub000/constants"
)

// SoundManager plays short cues through one shared mixer
type SoundManager struct {
	mu          sync.Mutex
	cfg         Config
	sr          beep.SampleRate
	mixer       *beep.Mixer
	log         logrus.FieldLogger
	seed        uint64
	initialized bool
}

// NewSoundManager creates a sound manager; Initialize opens the device
func NewSoundManager(cfg Config, log logrus.FieldLogger) *SoundManager {
	if cfg.SampleRate <= 0 {
		cfg.SampleRate = constants.AudioSampleRate
	}
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}
	return &SoundManager{
		cfg:   cfg,
		sr:    beep.SampleRate(cfg.SampleRate),
		mixer: &beep.Mixer{},
		log:   log.WithField("component", "audio"),
		seed:  uint64(time.Now().UnixNano()),
	}
}

// Initialize sets up the speaker. Calling it twice is a no-op.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if err := speaker.Init(sm.sr, sm.sr.N(constants.AudioBufferDuration)); err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	sm.log.WithField("sample_rate", sm.cfg.SampleRate).Info("audio initialized")
	return nil
}

// Cleanup stops all sounds and releases the device
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	sm.initialized = false
}

// Play mixes in one cue
func (sm *SoundManager) Play(cue Cue) error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return ErrNotInitialized
	}
	s, err := sm.cueStreamer(cue)
	if err != nil {
		return err
	}

	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
	return nil
}

// cueStreamer builds a finite, volume-scaled streamer for cue
func (sm *SoundManager) cueStreamer(cue Cue) (beep.Streamer, error) {
	var s beep.Streamer
	switch cue {
	case CueCorrect:
		s = beep.Take(sm.sr.N(constants.CorrectSoundDuration),
			NewChimeGenerator(sm.sr, 880, 1320, constants.CorrectSoundDuration))
	case CueMiss:
		s = beep.Take(sm.sr.N(constants.MissSoundDuration), NewBuzzGenerator(sm.sr, 120))
	case CueLifeLost:
		sm.seed++
		s = beep.Take(sm.sr.N(constants.LifeLostSoundDuration), NewThudGenerator(sm.sr, sm.seed))
	case CueSpeedUp:
		s = beep.Take(sm.sr.N(constants.SpeedUpSoundDuration),
			NewSweepGenerator(sm.sr, 300, 900, constants.SpeedUpSoundDuration))
	case CueGameOver:
		notes := make([]beep.Streamer, 0, 3)
		for _, freq := range []float64{440, 349.23, 261.63} {
			tone, err := generators.SineTone(sm.sr, freq)
			if err != nil {
				return nil, fmt.Errorf("game over tone %.2fHz: %w", freq, err)
			}
			notes = append(notes, beep.Take(sm.sr.N(constants.GameOverNoteDuration), tone))
		}
		s = beep.Seq(notes...)
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownCue, cue)
	}
	return withVolume(s, sm.cfg.Volume(cue)), nil
}

// withVolume scales s linearly by vol, muting at zero
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

func (sm *SoundManager) PlayCorrect() error  { return sm.Play(CueCorrect) }
func (sm *SoundManager) PlayMiss() error     { return sm.Play(CueMiss) }
func (sm *SoundManager) PlayLifeLost() error { return sm.Play(CueLifeLost) }
func (sm *SoundManager) PlaySpeedUp() error  { return sm.Play(CueSpeedUp) }
func (sm *SoundManager) PlayGameOver() error { return sm.Play(CueGameOver) }
