package vmath

import "time"

// Rand is the random source consumed by selection and placement
// Implementations need not be safe for concurrent use
type Rand interface {
	// Intn returns a value in [0, n); n <= 0 yields 0
	Intn(n int) int
	// Float64 returns a value in [0, 1)
	Float64() float64
}

// FastRand is a xorshift64 generator, seedable for deterministic replays
type FastRand struct {
	state uint64
}

// NewFastRand creates a generator; a zero seed is replaced with 1
func NewFastRand(seed uint64) *FastRand {
	if seed == 0 {
		seed = 1
	}
	return &FastRand{state: seed}
}

// NewTimeSeededRand seeds from the wall clock
func NewTimeSeededRand() *FastRand {
	return NewFastRand(uint64(time.Now().UnixNano()))
}

func (r *FastRand) Next() uint64 {
	x := r.state
	x ^= x << 13
	x ^= x >> 7
	x ^= x << 17
	r.state = x
	return x
}

func (r *FastRand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Next() % uint64(n))
}

func (r *FastRand) Float64() float64 {
	// top 53 bits give a uniformly spaced mantissa
	return float64(r.Next()>>11) / (1 << 53)
}

// SequenceRand replays fixed values, for tests that need exact choices
// Intn returns the next value modulo n; Float64 maps it into [0,1) by /1000
type SequenceRand struct {
	Values []int
	pos    int
}

func (s *SequenceRand) next() int {
	if len(s.Values) == 0 {
		return 0
	}
	v := s.Values[s.pos%len(s.Values)]
	s.pos++
	if v < 0 {
		v = -v
	}
	return v
}

func (s *SequenceRand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return s.next() % n
}

func (s *SequenceRand) Float64() float64 {
	return float64(s.next()%1000) / 1000
}
