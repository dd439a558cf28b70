package warior

// Tilt is the player's directional pose.
type Tilt int

const (
	TiltIdle Tilt = iota
	TiltSlightLeft
	TiltLeft
	TiltSlightRight
	TiltRight
)

// Animation returns the sprite animation name for the pose.
func (t Tilt) Animation() string {
	switch t {
	case TiltSlightLeft:
		return "slight-left"
	case TiltLeft:
		return "left"
	case TiltSlightRight:
		return "slight-right"
	case TiltRight:
		return "right"
	default:
		return "idle"
	}
}

// tiltTracker debounces the full tilt: the ship leans slightly as soon as it
// moves sideways and only banks fully after the direction is held for delay.
type tiltTracker struct {
	delay float64
	dir   float64
	held  float64
	pose  Tilt
}

func (t *tiltTracker) reset() {
	t.dir, t.held, t.pose = 0, 0, TiltIdle
}

// update feeds the horizontal input axis for one frame.
func (t *tiltTracker) update(dx, dt float64) Tilt {
	switch {
	case dx == 0:
		t.reset()
		return t.pose
	case dx != t.dir:
		t.dir = dx
		t.held = 0
	default:
		t.held += dt
	}

	full := t.held >= t.delay
	switch {
	case dx < 0 && full:
		t.pose = TiltLeft
	case dx < 0:
		t.pose = TiltSlightLeft
	case full:
		t.pose = TiltRight
	default:
		t.pose = TiltSlightRight
	}
	return t.pose
}
