package polymouse

import (
	"fmt"
	"math"
)

// Acceleration is a sigmoid pointer transfer function.
// Small motions get a gain near CDMin for precision, large motions a gain
// near CDMax for reach. The curve follows the control-display gain model of
// Nancel's mid-air pointing work; the zero value is not useful.
type Acceleration[F Float] struct {
	CDMin  F `toml:"cd_min"` // Gain for the slowest motion
	CDMax  F `toml:"cd_max"` // Gain for the fastest motion
	VMin   F `toml:"v_min"`  // Lower end of the input range
	VMax   F `toml:"v_max"`  // Upper end of the input range
	Lambda F `toml:"lambda"` // Slope of the sigmoid
	Ratio  F `toml:"ratio"`  // Position of the sigmoid midpoint in [VMin, VMax]
}

// DefaultAcceleration returns a curve suited to head deltas in pixels.
func DefaultAcceleration[F Float]() Acceleration[F] {
	return Acceleration[F]{
		CDMin:  defaultCDMin,
		CDMax:  defaultCDMax,
		VMin:   defaultVMin,
		VMax:   defaultVMax,
		Lambda: defaultLambda,
		Ratio:  defaultRatio,
	}
}

// Transform returns diff scaled by the gain for this frame.
//
// The curve input is diff*dt. It is a displacement scaled by the frame time
// rather than a velocity; curve constants are tuned against that input.
func (a Acceleration[F]) Transform(diff, dt F) F {
	return diff * a.Gain(diff, dt)
}

// Gain returns the control-display gain in [CDMin, CDMax] for diff.
func (a Acceleration[F]) Gain(diff, dt F) F {
	vInf := a.Ratio*(a.VMax-a.VMin) + a.VMin
	rawVel := diff * dt
	exponent := -a.Lambda * (abs(rawVel) - vInf)
	return (a.CDMax-a.CDMin)/(1+F(math.Exp(float64(exponent)))) + a.CDMin
}

// Validate checks that the curve is increasing and well defined.
func (a Acceleration[F]) Validate() error {
	if a.CDMin < 0 || a.CDMax < a.CDMin {
		return fmt.Errorf("%w: acceleration gains must satisfy 0 <= cd_min <= cd_max", ErrInvalidConfig)
	}
	if a.VMax < a.VMin {
		return fmt.Errorf("%w: acceleration v_max must be >= v_min", ErrInvalidConfig)
	}
	if a.Lambda <= 0 {
		return fmt.Errorf("%w: acceleration lambda must be positive", ErrInvalidConfig)
	}
	if a.Ratio < 0 || a.Ratio > 1 {
		return fmt.Errorf("%w: acceleration ratio must be in [0, 1]", ErrInvalidConfig)
	}
	return nil
}

// TransformVec applies a per-axis curve to a 2D displacement.
func TransformVec(a Acceleration[float32], diff Vec2, dt float32) Vec2 {
	return Vec2{X: a.Transform(diff.X, dt), Y: a.Transform(diff.Y, dt)}
}
