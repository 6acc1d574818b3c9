package status

import (
	"math"
	"sync/atomic"
)

// AtomicFloat stores a float64 in an atomic uint64, zero value reads 0.0
type AtomicFloat struct {
	bits atomic.Uint64
}

// Set stores val
func (f *AtomicFloat) Set(val float64) {
	f.bits.Store(math.Float64bits(val))
}

// Get loads the current value
func (f *AtomicFloat) Get() float64 {
	return math.Float64frombits(f.bits.Load())
}

// Smooth blends sample into the value with weight alpha, for moving averages
func (f *AtomicFloat) Smooth(sample, alpha float64) float64 {
	for {
		old := f.bits.Load()
		cur := math.Float64frombits(old)
		next := cur + (sample-cur)*alpha
		if f.bits.CompareAndSwap(old, math.Float64bits(next)) {
			return next
		}
	}
}
