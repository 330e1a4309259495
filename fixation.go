package polymouse

import (
	"math"

	"github.com/tphakala/go-polymouse/internal/ring"
)

// FixationFilter is a dispersion-based (I-DT) fixation detector.
//
// It keeps the most recent gaze samples and exposes a sticky point that only
// follows the input while the samples of the last MinFixationSeconds are
// tightly clustered. Saccades and tracker noise leave the point in place.
type FixationFilter struct {
	history            *ring.Buffer[Vec2]
	minFixationSeconds float32
	maxVelocity        float32
	point              Vec2
}

// NewFixationFilter creates a fixation filter.
// A window of samples counts as a fixation when its dispersion is below
// maxVelocity*minFixationSeconds.
func NewFixationFilter(minFixationSeconds, maxVelocity float32) *FixationFilter {
	return &FixationFilter{
		history:            ring.New[Vec2](fixationHistorySize),
		minFixationSeconds: minFixationSeconds,
		maxVelocity:        maxVelocity,
	}
}

// NewFixationFilterFromParams creates a fixation filter from a parameter set.
func NewFixationFilterFromParams(p FixationParams) *FixationFilter {
	return NewFixationFilter(p.MinFixationSeconds, p.MaxVelocity)
}

// Transform records p, sampled dt seconds after the previous point, and
// returns the current fixation point.
//
// With dt == 0 there is no window to measure, so p is returned unchanged and
// the fixation point is left as it was.
func (f *FixationFilter) Transform(p Vec2, dt float32) Vec2 {
	f.history.Push(p)

	if dt == 0 {
		return p
	}

	if f.dispersion(p, f.windowSize(dt)) < f.maxVelocity*f.minFixationSeconds {
		f.point = p
	}
	return f.point
}

// windowSize returns how many of the newest samples span the minimum
// fixation time at this sample interval.
func (f *FixationFilter) windowSize(dt float32) int {
	n := math.Round(float64(f.minFixationSeconds / dt))
	if !(n > 0) {
		return 0
	}
	if n > float64(f.history.Len()) {
		return f.history.Len()
	}
	return int(n)
}

// dispersion returns the sum of the per-axis ranges of the newest n samples
// together with p.
func (f *FixationFilter) dispersion(p Vec2, n int) float32 {
	lo, hi := p, p
	for i := range n {
		s := f.history.Newest(i)
		lo.X = min(lo.X, s.X)
		lo.Y = min(lo.Y, s.Y)
		hi.X = max(hi.X, s.X)
		hi.Y = max(hi.Y, s.Y)
	}
	return (hi.X - lo.X) + (hi.Y - lo.Y)
}

// Point returns the current fixation point without advancing the filter.
func (f *FixationFilter) Point() Vec2 {
	return f.point
}

// Len returns the number of samples in the history.
func (f *FixationFilter) Len() int {
	return f.history.Len()
}

// Reset clears the history and the fixation point.
func (f *FixationFilter) Reset() {
	f.history.Clear()
	f.point = Vec2{}
}
