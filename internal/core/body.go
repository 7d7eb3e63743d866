package core

// Body is the part of an actor that support objects may read and write:
// its position and its signed vertical velocity (positive is upward).
type Body struct {
	X, Y     float64
	Velocity float64
}

// Pixel returns the position truncated toward zero, the unit collision
// checks are performed in.
func (b Body) Pixel() (int, int) {
	return int(b.X), int(b.Y)
}
