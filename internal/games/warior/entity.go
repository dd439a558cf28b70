package warior

import "github.com/vovakirdan/space-warior/internal/core"

// Entity is any positioned, sized, moving object on the field.
// (X, Y) is the centre; the speed direction is implied by the owning collection.
type Entity struct {
	X, Y     float64
	W, H     float64
	Speed    float64
	Collided bool    // set once when destroyed, cleared only by removal
	Sprite   string  // asset id
	Born     float64 // session clock at creation, phases the animation
}

// Rect returns the entity's bounding box.
func (e Entity) Rect() core.Rect {
	return core.RectAround(e.X, e.Y, e.W, e.H)
}

// Overlaps reports whether two entities' boxes intersect.
func (e Entity) Overlaps(other Entity) bool {
	return e.Rect().Overlaps(other.Rect())
}

// Size returns the larger extent, used for scoring and effects.
func (e Entity) Size() float64 {
	return max(e.W, e.H)
}
