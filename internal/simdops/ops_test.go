package simdops

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMean(t *testing.T) {
	assert.InDelta(t, 2.5, Mean([]float64{1, 2, 3, 4}), 1e-12)
	assert.InDelta(t, float32(-1), Mean([]float32{-2, 0, -1}), 1e-6)
	assert.Zero(t, Mean[float32](nil))
}

func TestRMS(t *testing.T) {
	assert.InDelta(t, 5.0, RMS([]float64{5, -5}), 1e-9)
	assert.InDelta(t, float32(3), RMS([]float32{3, 3, 3, 3, 3}), 1e-5)
	assert.Zero(t, RMS[float64](nil))
}

func TestFor(t *testing.T) {
	a := []float64{1, 2, 3}
	assert.InDelta(t, 14.0, For[float64]().DotProductUnsafe(a, a), 1e-12)
	assert.InDelta(t, float32(6), For[float32]().Sum([]float32{1, 2, 3}), 1e-6)
}

// BenchmarkRMS32 measures the trace step reduction on a typical trace length.
func BenchmarkRMS32(b *testing.B) {
	a := make([]float32, 4096)
	for i := range a {
		a[i] = float32(i%17) * 0.5
	}

	b.ReportAllocs()
	for b.Loop() {
		_ = RMS(a)
	}
}
