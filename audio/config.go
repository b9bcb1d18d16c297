package audio

import (
	"os"
	"strconv"

	"github.com/tidwall/gjson"

	"github.com/charazer/kana-game-sub000/constants"
	"github.com/charazer/kana-game-sub000/vmath"
)

// Config holds audio settings
type Config struct {
	Enabled      bool
	MasterVolume float64 // 0.0 to 1.0
	SampleRate   int
	CueVolumes   map[Cue]float64
}

// DefaultConfig returns the shipped audio settings
func DefaultConfig() Config {
	return Config{
		Enabled:      true,
		MasterVolume: 0.5,
		SampleRate:   constants.AudioSampleRate,
		CueVolumes: map[Cue]float64{
			CueCorrect:  0.6,
			CueMiss:     0.8,
			CueLifeLost: 1.0,
			CueSpeedUp:  0.7,
			CueGameOver: 0.9,
		},
	}
}

// Volume is the effective level for a cue
func (c Config) Volume(cue Cue) float64 {
	v, ok := c.CueVolumes[cue]
	if !ok {
		v = 1
	}
	return vmath.Clamp(c.MasterVolume*v, 0, 1)
}

// ApplyEnv overrides cfg from KANADROP_* environment variables.
// Malformed values are ignored.
func ApplyEnv(cfg Config) Config {
	if enabled := os.Getenv("KANADROP_AUDIO_ENABLED"); enabled != "" {
		if val, err := strconv.ParseBool(enabled); err == nil {
			cfg.Enabled = val
		}
	}

	// Master volume is given as 0-100
	if volume := os.Getenv("KANADROP_MASTER_VOLUME"); volume != "" {
		if val, err := strconv.Atoi(volume); err == nil {
			cfg.MasterVolume = vmath.Clamp(float64(val)/100.0, 0, 1)
		}
	}

	// Per-cue volumes as a JSON object, e.g. {"miss":0.5}
	if vols := os.Getenv("KANADROP_CUE_VOLUMES"); vols != "" && gjson.Valid(vols) {
		volumes := make(map[Cue]float64, len(cfg.CueVolumes))
		for k, v := range cfg.CueVolumes {
			volumes[k] = v
		}
		gjson.Parse(vols).ForEach(func(key, value gjson.Result) bool {
			if cue, ok := ParseCue(key.String()); ok && value.Type == gjson.Number {
				volumes[cue] = vmath.Clamp(value.Float(), 0, 1)
			}
			return true
		})
		cfg.CueVolumes = volumes
	}

	if rate := os.Getenv("KANADROP_SAMPLE_RATE"); rate != "" {
		if val, err := strconv.Atoi(rate); err == nil && val > 0 {
			cfg.SampleRate = val
		}
	}

	return cfg
}
