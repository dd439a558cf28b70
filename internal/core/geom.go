// Package core provides fundamental types and utilities for Space Warior.
// It contains no external dependencies (especially no Bubble Tea or ebiten)
// to keep game logic pure and testable.
package core

// Rect represents an axis-aligned bounding box used for collision detection.
// Coordinates are in field units with Y growing downwards.
type Rect struct {
	X, Y float64 // Top-left corner position
	W, H float64 // Width and height
}

// RectAround creates a rectangle of the given size centred on (cx, cy).
func RectAround(cx, cy, w, h float64) Rect {
	return Rect{X: cx - w/2, Y: cy - h/2, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

// Overlaps returns true if this rectangle overlaps with another.
// Edges are closed intervals: rectangles that only touch along an edge or
// share a single corner point overlap.
func (r Rect) Overlaps(other Rect) bool {
	if r.Right() < other.X || other.Right() < r.X {
		return false
	}
	if r.Bottom() < other.Y || other.Bottom() < r.Y {
		return false
	}
	return true
}

// CircleHitsSquare is the approximate circle-vs-square test used for round
// players against square enemies. The circle centre (cx, cy) is clamped into
// the square of the given size centred on (sx, sy); the hit holds when the
// squared distance to that closest point is within (size/2)^2.
func CircleHitsSquare(cx, cy, sx, sy, size float64) bool {
	half := size / 2
	closestX := ClampF(cx, sx-half, sx+half)
	closestY := ClampF(cy, sy-half, sy+half)
	dx := cx - closestX
	dy := cy - closestY
	return dx*dx+dy*dy <= half*half
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
