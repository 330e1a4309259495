package polymouse

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLowPassFilter_FirstSamplePassesThrough(t *testing.T) {
	tests := []struct {
		name  string
		x     float64
		alpha float64
	}{
		{"Positive", 0.1, 0.3},
		{"Negative", -1234.5678, 0.01},
		{"Alpha zero", 42, 0},
		{"Alpha one", 7, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewLowPassFilter[float64]()
			assert.Equal(t, tt.x, f.Filter(tt.x, tt.alpha))

			last, ok := f.Last()
			assert.True(t, ok)
			assert.Equal(t, tt.x, last)
		})
	}
}

// TestLowPassFilter_GeometricConvergence checks the error shrinks by (1-alpha) per sample.
func TestLowPassFilter_GeometricConvergence(t *testing.T) {
	const (
		target = 10.0
		alpha  = 0.25
	)

	f := NewLowPassFilter[float64]()
	f.Filter(0, alpha)

	prevErr := target
	for i := range 40 {
		y := f.Filter(target, alpha)
		err := target - y
		assert.InDelta(t, 1-alpha, err/prevErr, 1e-9, "step %d", i)
		prevErr = err
	}
}

func TestLowPassFilter_Float32(t *testing.T) {
	f := NewLowPassFilter[float32]()
	f.Filter(2, 0.5)
	assert.InDelta(t, float32(3), f.Filter(4, 0.5), 1e-6)
	assert.InDelta(t, float32(3.5), f.Filter(4, 0.5), 1e-6)
}

func TestLowPassFilter_AlphaOutsideRangeExtrapolates(t *testing.T) {
	f := NewLowPassFilter[float64]()
	f.Filter(0, 2)
	// 2*1 + (1-2)*0 overshoots the input instead of smoothing it.
	assert.InDelta(t, 2.0, f.Filter(1, 2), 1e-12)
}

func TestLowPassFilter_Reset(t *testing.T) {
	f := NewLowPassFilter[float64]()
	f.Filter(5, 0.5)
	f.Filter(9, 0.5)

	f.Reset()
	_, ok := f.Last()
	assert.False(t, ok)
	assert.Equal(t, 3.0, f.Filter(3, 0.5), "first sample after reset should pass through")
}
