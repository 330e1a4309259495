package polymouse

// PolyMouseTransform blends gaze and head input into cursor positions.
//
// While tracking, head deltas move the cursor relatively, with sub-pixel
// remainders carried between frames. When the head moves fast and gaze is far
// from the cursor, the transform throws the cursor toward gaze at constant
// speed and lands just short of it.
type PolyMouseTransform struct {
	params            PolyMouseParams
	state             State
	smoothedHeadSpeed float32
	lastJump          Vec2
	throws            int64
	xRound            AccumulatingRounder
	yRound            AccumulatingRounder
}

// NewPolyMouseTransform creates a transform in the Tracking state.
func NewPolyMouseTransform(params PolyMouseParams) *PolyMouseTransform {
	return &PolyMouseTransform{
		params: params,
		state:  Tracking,
	}
}

// Transform computes the next cursor position from the gaze point, the
// current cursor position, the head delta for this frame and the frame time
// in seconds. dt must be positive.
func (t *PolyMouseTransform) Transform(gaze Vec2, mouse IntVec2, headDelta Vec2, dt float32) IntVec2 {
	p := &t.params
	mouseF := mouse.Float()

	headSpeed := headDelta.Len() / dt
	t.smoothedHeadSpeed = t.smoothedHeadSpeed*(1-p.HeadSmoothingFactor) +
		headSpeed*p.HeadSmoothingFactor

	if t.state == Tracking && shouldThrow(p, t.smoothedHeadSpeed, gaze, mouseF, t.lastJump) {
		t.state = Throwing
		t.throws++
	}

	if t.state == Throwing {
		dest, landed := throwStep(p, gaze, mouseF, dt)
		if landed {
			t.lastJump = gaze
			t.state = Tracking
		}
		return dest.Trunc()
	}

	move := IntVec2{X: t.xRound.Round(headDelta.X), Y: t.yRound.Round(headDelta.Y)}
	return mouse.Add(move)
}

// State returns the current blending mode.
func (t *PolyMouseTransform) State() State {
	return t.state
}

// SmoothedHeadSpeed returns the moving average of head speed.
func (t *PolyMouseTransform) SmoothedHeadSpeed() float32 {
	return t.smoothedHeadSpeed
}

// LastJumpDestination returns the gaze point the last throw landed on.
func (t *PolyMouseTransform) LastJumpDestination() Vec2 {
	return t.lastJump
}

// Throws returns the number of throws started since creation or Reset.
func (t *PolyMouseTransform) Throws() int64 {
	return t.throws
}

// Params returns the transform's configuration.
func (t *PolyMouseTransform) Params() PolyMouseParams {
	return t.params
}

// Reset returns the transform to its initial state. Params are kept.
func (t *PolyMouseTransform) Reset() {
	t.state = Tracking
	t.smoothedHeadSpeed = 0
	t.lastJump = Vec2{}
	t.throws = 0
	t.xRound.Reset()
	t.yRound.Reset()
}
