package polymouse

// LowPassFilter is a first-order exponential smoother.
// The first sample passes through unchanged and seeds the state, so the
// output never starts with a transient toward zero.
type LowPassFilter[F Float] struct {
	initialized bool
	prev        F
}

// NewLowPassFilter creates an empty low-pass filter.
func NewLowPassFilter[F Float]() *LowPassFilter[F] {
	return &LowPassFilter[F]{}
}

// Filter smooths x with weight alpha for the new sample:
// y = alpha*x + (1-alpha)*prev.
//
// alpha should be in [0, 1]. Values outside extrapolate instead of smoothing;
// they are not rejected.
func (f *LowPassFilter[F]) Filter(x, alpha F) F {
	if !f.initialized {
		f.initialized = true
		f.prev = x
		return x
	}
	y := alpha*x + (1-alpha)*f.prev
	f.prev = y
	return y
}

// Last returns the previous output and whether any sample has been seen.
func (f *LowPassFilter[F]) Last() (F, bool) {
	return f.prev, f.initialized
}

// Reset clears internal state.
func (f *LowPassFilter[F]) Reset() {
	f.initialized = false
	f.prev = 0
}
