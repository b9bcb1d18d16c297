package engine

import "time"

// TimeProvider supplies the clock used to seed frame timing
type TimeProvider interface {
	Now() time.Time
}

// MonotonicTimeProvider returns wall time with its monotonic reading
type MonotonicTimeProvider struct{}

// NewMonotonicTimeProvider creates a monotonic time provider
func NewMonotonicTimeProvider() *MonotonicTimeProvider {
	return &MonotonicTimeProvider{}
}

func (p *MonotonicTimeProvider) Now() time.Time {
	return time.Now()
}
