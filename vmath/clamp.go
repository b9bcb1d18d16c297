package vmath

// Clamp restricts v to [lo, hi]
func Clamp[T int | float64](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Abs returns the absolute value of v
func Abs[T int | float64](v T) T {
	if v < 0 {
		return -v
	}
	return v
}
