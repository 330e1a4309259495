package polymouse

// State is the blending mode of a [PolyMouseTransform].
type State int

const (
	// Tracking applies head motion as fine relative cursor moves.
	Tracking State = iota

	// Throwing moves the cursor toward gaze at constant speed.
	Throwing
)

// String implements fmt.Stringer.
func (s State) String() string {
	switch s {
	case Tracking:
		return "tracking"
	case Throwing:
		return "throwing"
	default:
		return "unknown"
	}
}

// jumpRadius is the distance from the cursor beyond which gaze counts as a
// new target. It widens with head speed.
func jumpRadius(p *PolyMouseParams, headSpeed float32) float32 {
	return p.MinJump + headSpeed*p.SpeedExpandFactor
}

// lookingFarAway reports whether gaze is outside the jump radius around the
// cursor and outside the small-jump radius around the last throw target.
func lookingFarAway(p *PolyMouseParams, headSpeed float32, gaze, mouse, lastJump Vec2) bool {
	radius := jumpRadius(p, headSpeed)
	return mouse.Dist(gaze) > radius &&
		lastJump.Dist(gaze) > radius*p.SmallJumpFactor
}

// shouldThrow is the Tracking -> Throwing guard.
func shouldThrow(p *PolyMouseParams, headSpeed float32, gaze, mouse, lastJump Vec2) bool {
	return lookingFarAway(p, headSpeed, gaze, mouse, lastJump) &&
		headSpeed > p.ThrowThreshSpeed
}

// throwStep advances a throw by one frame. It returns the new cursor
// position and whether the throw has landed.
//
// A landing stops MinJump short of gaze along the throw direction. With the
// cursor already on gaze the direction is zero and the landing is gaze.
func throwStep(p *PolyMouseParams, gaze, mouse Vec2, dt float32) (Vec2, bool) {
	dist := p.ThrowSpeed * dt
	dirn := gaze.Sub(mouse).Unit()

	if mouse.Dist(gaze) > dist+p.MinJump {
		return mouse.Add(dirn.Scale(dist)), false
	}
	return gaze.Sub(dirn.Scale(p.MinJump)), true
}
