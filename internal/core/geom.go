// Package core provides fundamental types and utilities shared by the simulation
// and its frontends. It contains no external dependencies (especially no Bubble Tea
// or Ebiten) to keep simulation logic pure and testable.
package core

// Point is an integer position in world (screen pixel) coordinates.
type Point struct {
	X, Y int
}

// Pt is shorthand for constructing a Point.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// Vec is a continuous position, used for geometry derived from the tilt angle.
type Vec struct {
	X, Y float64
}

// Rect represents an axis-aligned bounding box used for hit-testing.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Intersects returns true if this rectangle overlaps with another.
// Rectangles that only share an edge do not intersect.
func (r Rect) Intersects(other Rect) bool {
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// ContainsPoint is Contains for a Point.
func (r Rect) ContainsPoint(p Point) bool {
	return r.Contains(p.X, p.Y)
}

// Center returns the center point of the rectangle.
func (r Rect) Center() (int, int) {
	return r.X + r.W/2, r.Y + r.H/2
}

// CenterX returns the x-coordinate of the center.
func (r Rect) CenterX() int {
	return r.X + r.W/2
}

// WithCenter returns a copy of r moved so that its center is at p.
func (r Rect) WithCenter(p Point) Rect {
	r.X = p.X - r.W/2
	r.Y = p.Y - r.H/2
	return r
}

// Inflate grows the rectangle by dw, dh around its center.
func (r Rect) Inflate(dw, dh int) Rect {
	return Rect{X: r.X - dw/2, Y: r.Y - dh/2, W: r.W + dw, H: r.H + dh}
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

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
