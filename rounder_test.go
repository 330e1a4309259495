package polymouse

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccumulatingRounder_ConstantFraction(t *testing.T) {
	var r AccumulatingRounder
	got := make([]int32, 10)
	for i := range got {
		got[i] = r.Round(0.3)
	}

	// 0.3 per call carries over a full unit on calls 4, 7 and 10.
	assert.Equal(t, []int32{0, 0, 0, 1, 0, 0, 1}, got[:7])
	assert.Equal(t, int32(0), got[7])

	var sum int64
	for _, v := range got {
		sum += int64(v)
	}
	assert.InDelta(t, 3, sum, 1)
}

func TestAccumulatingRounder_LongRunAverage(t *testing.T) {
	tests := []struct {
		name string
		x    float32
	}{
		{"Positive fraction", 0.3},
		{"Negative fraction", -0.45},
		{"Mixed whole and fraction", 2.7},
		{"Small", 0.01},
	}

	const n = 10000
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var r AccumulatingRounder
			var sum int64
			for range n {
				sum += int64(r.Round(tt.x))
			}
			assert.InDelta(t, float64(tt.x), float64(sum)/n, 1e-3)
		})
	}
}

func TestAccumulatingRounder_BoundedError(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	var r AccumulatingRounder

	var truth float64
	var emitted int64
	for i := range 5000 {
		x := float32(rng.NormFloat64() * 3)
		truth += float64(x)
		emitted += int64(r.Round(x))

		require.Less(t, math.Abs(truth-float64(emitted)), 1.0+1e-3, "step %d", i)
		require.Less(t, math.Abs(float64(r.Carry())), 1.0, "carry out of range at step %d", i)
	}
}

func TestAccumulatingRounder_Nudge(t *testing.T) {
	var r AccumulatingRounder
	assert.Equal(t, int32(2), r.Round(2.5))
	assert.Equal(t, int32(3), r.Round(2.5), "two halves make a whole unit")
	assert.Zero(t, r.Carry())

	assert.Equal(t, int32(-1), r.Round(-1.5))
	assert.Equal(t, int32(-2), r.Round(-1.5))
	assert.Zero(t, r.Carry())
}

func TestAccumulatingRounder_Reset(t *testing.T) {
	var r AccumulatingRounder
	r.Round(0.9)
	r.Reset()
	assert.Zero(t, r.Carry())
	assert.Equal(t, int32(0), r.Round(0.9))
}
