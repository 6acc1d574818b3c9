package engine

import (
	"sync/atomic"
	"time"
)

// MockTimeProvider is a manually driven time source for clock and scheduler tests
// Time is kept as an offset from a fixed base so the input goroutine and the loop can read it without locking
type MockTimeProvider struct {
	base   time.Time
	offset atomic.Int64
}

// NewMockTimeProvider creates a mock reading start until advanced
func NewMockTimeProvider(start time.Time) *MockTimeProvider {
	return &MockTimeProvider{base: start}
}

// Now returns base plus the accumulated offset
func (m *MockTimeProvider) Now() time.Time {
	return m.base.Add(time.Duration(m.offset.Load()))
}

// SetTime jumps to t, which may lie before the start
func (m *MockTimeProvider) SetTime(t time.Time) {
	m.offset.Store(int64(t.Sub(m.base)))
}

// Advance moves time forward by d
func (m *MockTimeProvider) Advance(d time.Duration) {
	m.offset.Add(int64(d))
}
