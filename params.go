package polymouse

import (
	"errors"
	"fmt"
	"math"
)

// Float is the type constraint for the scalar filter stages.
type Float interface {
	float32 | float64
}

// Common errors returned at the package boundary.
var (
	// ErrInvalidConfig indicates invalid tuning parameters.
	ErrInvalidConfig = errors.New("invalid polymouse configuration")

	// ErrInvalidFrame indicates a frame that the stages cannot process,
	// such as a non-positive or NaN time step.
	ErrInvalidFrame = errors.New("invalid input frame")
)

// OneEuroParams holds the tuning constants of a 1€ filter.
type OneEuroParams struct {
	// MinCutoff is the cutoff frequency in Hz used when the signal is still.
	// Lower values remove more jitter at the cost of lag.
	MinCutoff float32 `toml:"min_cutoff"`

	// Beta scales how fast the cutoff rises with estimated speed.
	Beta float32 `toml:"beta"`

	// DerivativeCutoff is the cutoff in Hz for the derivative estimate.
	DerivativeCutoff float32 `toml:"derivative_cutoff"`
}

// DefaultOneEuroParams returns tuning suited to gaze points in screen pixels.
func DefaultOneEuroParams() OneEuroParams {
	return OneEuroParams{
		MinCutoff:        defaultGazeMinCutoff,
		Beta:             defaultGazeBeta,
		DerivativeCutoff: defaultGazeDerivativeCutoff,
	}
}

// Validate checks that the cutoff frequencies are usable.
func (p *OneEuroParams) Validate() error {
	if !positive(p.MinCutoff) {
		return fmt.Errorf("%w: min cutoff must be positive", ErrInvalidConfig)
	}
	if !positive(p.DerivativeCutoff) {
		return fmt.Errorf("%w: derivative cutoff must be positive", ErrInvalidConfig)
	}
	if p.Beta < 0 || isNaN(p.Beta) {
		return fmt.Errorf("%w: beta must be non-negative", ErrInvalidConfig)
	}
	return nil
}

// FixationParams holds the tuning of a [FixationFilter].
type FixationParams struct {
	// MinFixationSeconds is the shortest gaze dwell treated as a fixation.
	MinFixationSeconds float32 `toml:"min_fixation_seconds"`

	// MaxVelocity bounds the gaze speed (units per second) inside a fixation.
	// The dispersion threshold is MaxVelocity * MinFixationSeconds.
	MaxVelocity float32 `toml:"max_velocity"`
}

// DefaultFixationParams returns tuning suited to gaze points in screen pixels.
func DefaultFixationParams() FixationParams {
	return FixationParams{
		MinFixationSeconds: defaultMinFixationSeconds,
		MaxVelocity:        defaultMaxFixationSpeed,
	}
}

// Validate checks the fixation window and threshold.
func (p *FixationParams) Validate() error {
	if !positive(p.MinFixationSeconds) {
		return fmt.Errorf("%w: min fixation time must be positive", ErrInvalidConfig)
	}
	if !positive(p.MaxVelocity) {
		return fmt.Errorf("%w: max fixation velocity must be positive", ErrInvalidConfig)
	}
	return nil
}

// PolyMouseParams configures a [PolyMouseTransform].
type PolyMouseParams struct {
	// MinJump is the base jump radius and the distance a throw stops short
	// of its target.
	MinJump float32 `toml:"min_jump"`

	// SpeedExpandFactor grows the jump radius with smoothed head speed.
	SpeedExpandFactor float32 `toml:"speed_expand_factor"`

	// HeadSmoothingFactor is the weight of the newest head speed sample in
	// the exponential moving average. 1 disables smoothing.
	HeadSmoothingFactor float32 `toml:"head_smoothing_factor"`

	// ThrowThreshSpeed is the smoothed head speed a throw requires.
	ThrowThreshSpeed float32 `toml:"throw_thresh_speed"`

	// ThrowSpeed is the cursor speed while throwing, in units per second.
	ThrowSpeed float32 `toml:"throw_speed"`

	// SmallJumpFactor scales the jump radius around the last throw target
	// inside which no new throw starts.
	SmallJumpFactor float32 `toml:"small_jump_factor"`
}

// DefaultPolyMouseParams returns blending parameters for a desktop display.
func DefaultPolyMouseParams() PolyMouseParams {
	return PolyMouseParams{
		MinJump:             defaultMinJump,
		SpeedExpandFactor:   defaultSpeedExpandFactor,
		HeadSmoothingFactor: defaultHeadSmoothingFactor,
		ThrowThreshSpeed:    defaultThrowThreshSpeed,
		ThrowSpeed:          defaultThrowSpeed,
		SmallJumpFactor:     defaultSmallJumpFactor,
	}
}

// Validate checks the blending parameters.
func (p *PolyMouseParams) Validate() error {
	if p.MinJump < 0 || isNaN(p.MinJump) {
		return fmt.Errorf("%w: min jump must be non-negative", ErrInvalidConfig)
	}
	if p.SpeedExpandFactor < 0 || isNaN(p.SpeedExpandFactor) {
		return fmt.Errorf("%w: speed expand factor must be non-negative", ErrInvalidConfig)
	}
	if p.HeadSmoothingFactor <= 0 || p.HeadSmoothingFactor > 1 || isNaN(p.HeadSmoothingFactor) {
		return fmt.Errorf("%w: head smoothing factor must be in (0, 1]", ErrInvalidConfig)
	}
	if p.ThrowThreshSpeed < 0 || isNaN(p.ThrowThreshSpeed) {
		return fmt.Errorf("%w: throw threshold speed must be non-negative", ErrInvalidConfig)
	}
	if !positive(p.ThrowSpeed) {
		return fmt.Errorf("%w: throw speed must be positive", ErrInvalidConfig)
	}
	if p.SmallJumpFactor < 0 || isNaN(p.SmallJumpFactor) {
		return fmt.Errorf("%w: small jump factor must be non-negative", ErrInvalidConfig)
	}
	return nil
}

func positive(v float32) bool {
	return v > 0 && !math.IsInf(float64(v), 1)
}

func isNaN(v float32) bool {
	return v != v
}
