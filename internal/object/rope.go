package object

import (
	"github.com/vovakirdan/tui-palace/internal/core"
	"github.com/vovakirdan/tui-palace/internal/tile"
)

// RopeLeft is the rope's offset inside its tile.
const RopeLeft = 14

// DropRope pays out and reels in from the top of its tile down to the
// matching rope end code. It can be climbed but never stood on.
type DropRope struct {
	X, Y   float64 // Y is the fixed top of the rope
	Width  float64
	limit  float64
	height float64
	rate   float64
}

// NewDropRope hangs a rope from the cell at (x, y). The rope reaches the
// bottom of the first rope end cell below it.
func NewDropRope(g *tile.Grid, x, y float64, p Params) *DropRope {
	_, ey := g.ScanForCode(x, y, 0, 1, CodeRopeEnd)
	top := y + tile.Size
	return &DropRope{
		X:     x + RopeLeft,
		Y:     top,
		Width: p.RopeWidth,
		limit: max(top-ey, 0),
		rate:  p.RopeRate,
	}
}

func (r *DropRope) Caps() Caps { return Caps{Climbable: true} }

// Height returns how much rope is currently paid out.
func (r *DropRope) Height() float64 { return r.height }

// Limit returns the full rope length.
func (r *DropRope) Limit() float64 { return r.limit }

// Rate returns the signed pay-out speed.
func (r *DropRope) Rate() float64 { return r.rate }

// HitTest checks the paid-out part of the rope.
func (r *DropRope) HitTest(q core.Rect) bool {
	return q.Intersects(core.NewRect(r.X, r.Y-r.height, r.Width, r.height))
}

func (r *DropRope) Bounds() core.Rect {
	return core.NewRect(r.X, r.Y-r.limit, r.Width, r.limit)
}

// Update moves the rope end and reflects it off either bound. Reaching a
// bound exactly also reverses direction.
func (r *DropRope) Update(dt float64) {
	if r.limit <= 0 {
		r.height = 0
		return
	}
	r.height += r.rate * dt
	for {
		switch {
		case r.rate > 0 && r.height >= r.limit:
			r.height = 2*r.limit - r.height
			r.rate = -r.rate
		case r.rate < 0 && r.height <= 0:
			r.height = -r.height
			r.rate = -r.rate
		default:
			return
		}
	}
}
