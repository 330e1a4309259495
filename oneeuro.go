package polymouse

import (
	"math"
)

// OneEuroFilter is an adaptive low-pass filter (the 1€ filter).
// Its cutoff rises with the estimated speed of the signal: still input is
// smoothed heavily, fast input follows with little lag.
type OneEuroFilter[F Float] struct {
	firstCall        bool
	minCutoff        F
	beta             F
	derivativeCutoff F
	cutoff           F

	signal     LowPassFilter[F]
	derivative LowPassFilter[F]
}

// NewOneEuroFilter creates a 1€ filter.
// Cutoffs are in Hz and must be positive.
func NewOneEuroFilter[F Float](minCutoff, beta, derivativeCutoff F) *OneEuroFilter[F] {
	return &OneEuroFilter[F]{
		firstCall:        true,
		minCutoff:        minCutoff,
		beta:             beta,
		derivativeCutoff: derivativeCutoff,
		cutoff:           minCutoff,
	}
}

// NewOneEuroFilterFromParams creates a 1€ filter from a parameter set.
func NewOneEuroFilterFromParams[F Float](p OneEuroParams) *OneEuroFilter[F] {
	return NewOneEuroFilter(F(p.MinCutoff), F(p.Beta), F(p.DerivativeCutoff))
}

// Filter advances the filter by one sample taken dt seconds after the
// previous one. dt must be positive.
func (f *OneEuroFilter[F]) Filter(x, dt F) F {
	rate := 1 / dt

	var dx F
	if f.firstCall {
		f.firstCall = false
	} else {
		prev, _ := f.signal.Last()
		dx = (x - prev) * rate
	}

	edx := f.derivative.Filter(dx, smoothingAlpha(rate, f.derivativeCutoff))
	f.cutoff = f.minCutoff + f.beta*abs(edx)
	return f.signal.Filter(x, smoothingAlpha(rate, f.cutoff))
}

// Cutoff returns the adaptive cutoff used for the most recent sample.
func (f *OneEuroFilter[F]) Cutoff() F {
	return f.cutoff
}

// Reset clears internal state. Tuning constants are kept.
func (f *OneEuroFilter[F]) Reset() {
	f.firstCall = true
	f.cutoff = f.minCutoff
	f.signal.Reset()
	f.derivative.Reset()
}

// smoothingAlpha converts a cutoff frequency into the low-pass weight for a
// sample rate: 1 / (1 + tau/te), tau = 1/(2*pi*cutoff), te = 1/rate.
func smoothingAlpha[F Float](rate, cutoff F) F {
	tau := 1 / (2 * math.Pi * cutoff)
	te := 1 / rate
	return 1 / (1 + tau/te)
}

func abs[F Float](x F) F {
	if x < 0 {
		return -x
	}
	return x
}

// VecOneEuroFilter applies an independent 1€ filter to each axis of a point.
type VecOneEuroFilter struct {
	x *OneEuroFilter[float32]
	y *OneEuroFilter[float32]
}

// NewVecOneEuroFilter creates a 2D 1€ filter; both axes share the tuning.
func NewVecOneEuroFilter(minCutoff, beta, derivativeCutoff float32) *VecOneEuroFilter {
	return &VecOneEuroFilter{
		x: NewOneEuroFilter(minCutoff, beta, derivativeCutoff),
		y: NewOneEuroFilter(minCutoff, beta, derivativeCutoff),
	}
}

// NewVecOneEuroFilterFromParams creates a 2D 1€ filter from a parameter set.
func NewVecOneEuroFilterFromParams(p OneEuroParams) *VecOneEuroFilter {
	return NewVecOneEuroFilter(p.MinCutoff, p.Beta, p.DerivativeCutoff)
}

// Filter smooths p, sampled dt seconds after the previous point.
func (f *VecOneEuroFilter) Filter(p Vec2, dt float32) Vec2 {
	return Vec2{X: f.x.Filter(p.X, dt), Y: f.y.Filter(p.Y, dt)}
}

// Reset clears both axis filters.
func (f *VecOneEuroFilter) Reset() {
	f.x.Reset()
	f.y.Reset()
}
