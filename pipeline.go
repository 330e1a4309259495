package polymouse

import (
	"fmt"
	"math"
)

// PipelineConfig selects and tunes the stages of a [Pipeline].
type PipelineConfig struct {
	// Gaze tunes the 1€ filter applied to raw gaze points.
	Gaze OneEuroParams

	// Fixation tunes the fixation detector applied after the gaze filter.
	Fixation FixationParams

	// Head is the acceleration curve applied to head deltas per axis.
	Head Acceleration[float32]

	// PolyMouse configures the blending transform.
	PolyMouse PolyMouseParams

	// EnableGazeFilter runs gaze points through the 1€ filter.
	EnableGazeFilter bool

	// EnableFixation runs gaze points through the fixation detector.
	EnableFixation bool

	// EnableHeadAcceleration applies the Head curve to head deltas.
	EnableHeadAcceleration bool
}

// DefaultPipelineConfig returns a configuration with every stage enabled.
func DefaultPipelineConfig() PipelineConfig {
	return PipelineConfig{
		Gaze:                   DefaultOneEuroParams(),
		Fixation:               DefaultFixationParams(),
		Head:                   DefaultAcceleration[float32](),
		PolyMouse:              DefaultPolyMouseParams(),
		EnableGazeFilter:       true,
		EnableFixation:         true,
		EnableHeadAcceleration: true,
	}
}

// Validate checks the parameters of every enabled stage.
func (c *PipelineConfig) Validate() error {
	if c.EnableGazeFilter {
		if err := c.Gaze.Validate(); err != nil {
			return fmt.Errorf("gaze filter: %w", err)
		}
	}
	if c.EnableFixation {
		if err := c.Fixation.Validate(); err != nil {
			return fmt.Errorf("fixation: %w", err)
		}
	}
	if c.EnableHeadAcceleration {
		if err := c.Head.Validate(); err != nil {
			return fmt.Errorf("head acceleration: %w", err)
		}
	}
	if err := c.PolyMouse.Validate(); err != nil {
		return fmt.Errorf("polymouse: %w", err)
	}
	return nil
}

// Frame is one tick of input to a [Pipeline].
type Frame struct {
	Gaze      Vec2    // Raw gaze point
	Mouse     IntVec2 // Current cursor position
	HeadDelta Vec2    // Raw head motion since the previous frame
	DT        float32 // Seconds since the previous frame
}

// Output is the result of one [Pipeline.Step].
type Output struct {
	Mouse         IntVec2 // Next cursor position
	State         State   // Blending mode after this frame
	FilteredGaze  Vec2    // Gaze after the 1€ filter
	FixationPoint Vec2    // Gaze after fixation detection, as fed to the transform
	HeadDelta     Vec2    // Head delta after acceleration, as fed to the transform
}

// Pipeline chains the gaze filter, fixation detector, head acceleration and
// blending transform into one per-frame operation.
type Pipeline struct {
	config    PipelineConfig
	gaze      *VecOneEuroFilter
	fixation  *FixationFilter
	transform *PolyMouseTransform
	frames    int64
}

// NewPipeline creates a pipeline with the specified configuration.
func NewPipeline(config *PipelineConfig) (*Pipeline, error) {
	if config == nil {
		return nil, fmt.Errorf("%w: config is nil", ErrInvalidConfig)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &Pipeline{
		config:    *config,
		gaze:      NewVecOneEuroFilterFromParams(config.Gaze),
		fixation:  NewFixationFilterFromParams(config.Fixation),
		transform: NewPolyMouseTransform(config.PolyMouse),
	}, nil
}

// Step processes one frame. Frames with a non-positive or non-finite DT, or
// with a non-finite gaze point or head delta, are rejected with
// [ErrInvalidFrame] and leave all stage state untouched.
func (p *Pipeline) Step(frame Frame) (Output, error) {
	if err := checkFrame(&frame); err != nil {
		return Output{}, err
	}

	gaze := frame.Gaze
	if p.config.EnableGazeFilter {
		gaze = p.gaze.Filter(gaze, frame.DT)
	}
	filtered := gaze

	if p.config.EnableFixation {
		gaze = p.fixation.Transform(gaze, frame.DT)
	}

	head := frame.HeadDelta
	if p.config.EnableHeadAcceleration {
		head = TransformVec(p.config.Head, head, frame.DT)
	}

	mouse := p.transform.Transform(gaze, frame.Mouse, head, frame.DT)
	p.frames++

	return Output{
		Mouse:         mouse,
		State:         p.transform.State(),
		FilteredGaze:  filtered,
		FixationPoint: gaze,
		HeadDelta:     head,
	}, nil
}

func checkFrame(f *Frame) error {
	dt := float64(f.DT)
	if !(dt > 0) || math.IsInf(dt, 1) {
		return fmt.Errorf("%w: dt must be positive and finite, got %v", ErrInvalidFrame, f.DT)
	}
	if !finite(f.Gaze) {
		return fmt.Errorf("%w: gaze point must be finite, got %v", ErrInvalidFrame, f.Gaze)
	}
	if !finite(f.HeadDelta) {
		return fmt.Errorf("%w: head delta must be finite, got %v", ErrInvalidFrame, f.HeadDelta)
	}
	return nil
}

func finite(v Vec2) bool {
	x, y := float64(v.X), float64(v.Y)
	return !math.IsNaN(x) && !math.IsInf(x, 0) && !math.IsNaN(y) && !math.IsInf(y, 0)
}

// Config returns the pipeline's configuration.
func (p *Pipeline) Config() PipelineConfig {
	return p.config
}

// Transform returns the blending transform for inspection.
func (p *Pipeline) Transform() *PolyMouseTransform {
	return p.transform
}

// Frames returns the number of frames processed since creation or Reset.
func (p *Pipeline) Frames() int64 {
	return p.frames
}

// Reset clears the state of every stage.
func (p *Pipeline) Reset() {
	p.gaze.Reset()
	p.fixation.Reset()
	p.transform.Reset()
	p.frames = 0
}
