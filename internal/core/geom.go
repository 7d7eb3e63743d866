// Package core provides fundamental types and utilities shared by the palace
// engine and its front-ends. It contains no external dependencies (especially
// no Bubble Tea) to keep game logic pure and testable.
package core

// Rect is an axis-aligned box in room coordinates. Y grows upward, so
// (X, Y) is the bottom-left corner and Top() is Y+H.
type Rect struct {
	X, Y float64
	W, H float64
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.X + r.W
}

// Top returns the y-coordinate of the top edge.
func (r Rect) Top() float64 {
	return r.Y + r.H
}

// Intersects reports strict overlap: rectangles that only share an edge do
// not intersect.
func (r Rect) Intersects(other Rect) bool {
	return other.X < r.Right() && other.Right() > r.X &&
		other.Y < r.Top() && other.Top() > r.Y
}

// Inset shrinks the rectangle by the given margins on each side.
func (r Rect) Inset(dx, dy float64) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, W: r.W - 2*dx, H: r.H - 2*dy}
}
