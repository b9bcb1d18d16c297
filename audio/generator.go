package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"

	"github.com/charazer/kana-game-sub000/vmath"
)

// ChimeGenerator plays two rising sine partials with a fast decay
type ChimeGenerator struct {
	sr   beep.SampleRate
	low  float64
	high float64
	pos  int
	half int
}

// NewChimeGenerator creates a chime stepping from low to high halfway through d
func NewChimeGenerator(sr beep.SampleRate, low, high float64, d time.Duration) *ChimeGenerator {
	return &ChimeGenerator{sr: sr, low: low, high: high, half: max(sr.N(d)/2, 1)}
}

func (g *ChimeGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		freq := g.low
		local := g.pos
		if g.pos >= g.half {
			freq = g.high
			local = g.pos - g.half
		}
		envelope := math.Exp(-float64(local) / float64(g.half) * 4)
		sample := 0.35 * envelope * (math.Sin(2*math.Pi*freq*t) + 0.3*math.Sin(4*math.Pi*freq*t))

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ChimeGenerator) Err() error {
	return nil
}

// BuzzGenerator generates a low-pitch buzz
type BuzzGenerator struct {
	sr   beep.SampleRate
	freq float64
	pos  int
}

// NewBuzzGenerator creates a buzz generator
func NewBuzzGenerator(sr beep.SampleRate, freq float64) *BuzzGenerator {
	return &BuzzGenerator{sr: sr, freq: freq}
}

func (g *BuzzGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		// odd harmonics approximate a square wave
		sample := 0.3*math.Sin(2*math.Pi*g.freq*t) +
			0.15*math.Sin(2*math.Pi*g.freq*2*t) +
			0.075*math.Sin(2*math.Pi*g.freq*3*t)

		envelope := math.Min(t/0.02, 1.0)
		sample *= envelope * 0.4

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *BuzzGenerator) Err() error {
	return nil
}

// ThudGenerator is a decaying low rumble mixed with noise
type ThudGenerator struct {
	sr  beep.SampleRate
	pos int
	rng *vmath.FastRand
}

// NewThudGenerator creates a thud generator with deterministic noise
func NewThudGenerator(sr beep.SampleRate, seed uint64) *ThudGenerator {
	return &ThudGenerator{sr: sr, rng: vmath.NewFastRand(seed)}
}

func (g *ThudGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		envelope := math.Exp(-t * 10)
		noise := g.rng.Float64()*2 - 1
		rumble := 0.5 * math.Sin(2*math.Pi*70*t)
		sample := envelope * (0.2*noise + rumble)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ThudGenerator) Err() error {
	return nil
}

// SweepGenerator glides from one frequency to another over its duration
type SweepGenerator struct {
	sr       beep.SampleRate
	from, to float64
	total    int
	pos      int
	phase    float64
}

// NewSweepGenerator creates a sweep lasting d
func NewSweepGenerator(sr beep.SampleRate, from, to float64, d time.Duration) *SweepGenerator {
	return &SweepGenerator{sr: sr, from: from, to: to, total: max(sr.N(d), 1)}
}

func (g *SweepGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		progress := math.Min(float64(g.pos)/float64(g.total), 1)
		freq := g.from + (g.to-g.from)*progress

		// phase accumulation keeps the glide click-free
		g.phase += 2 * math.Pi * freq / float64(g.sr)
		envelope := math.Sin(math.Pi * progress)
		sample := 0.3 * envelope * math.Sin(g.phase)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *SweepGenerator) Err() error {
	return nil
}
