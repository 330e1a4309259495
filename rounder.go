package polymouse

import "math"

// AccumulatingRounder converts continuous deltas into whole-unit steps,
// carrying the fractional remainder forward so that sub-unit motion adds up
// over several frames instead of being truncated away.
//
// The emitted integers never drift more than one unit from the running sum
// of the inputs.
type AccumulatingRounder struct {
	carry float32
}

// Round returns the whole-unit step for x.
func (r *AccumulatingRounder) Round(x float32) int32 {
	whole := float32(math.Trunc(float64(x)))
	r.carry += x - whole

	if r.carry >= 1 {
		whole++
		r.carry--
	} else if r.carry <= -1 {
		whole--
		r.carry++
	}
	return int32(whole)
}

// Carry returns the fractional remainder not yet emitted, in (-1, 1).
func (r *AccumulatingRounder) Carry() float32 {
	return r.carry
}

// Reset drops the carried remainder.
func (r *AccumulatingRounder) Reset() {
	r.carry = 0
}
