package object

import (
	"github.com/vovakirdan/tui-palace/internal/core"
	"github.com/vovakirdan/tui-palace/internal/tile"
)

const torchFrameTime = 0.2

// Torch is a wall fixture. It only animates.
type Torch struct {
	X, Y  float64
	clock float64
	frame int
}

func NewTorch(x, y float64) *Torch {
	return &Torch{X: x, Y: y}
}

func (t *Torch) Caps() Caps { return Caps{} }

func (t *Torch) HitTest(core.Rect) bool { return false }

func (t *Torch) Bounds() core.Rect {
	return core.NewRect(t.X, t.Y, tile.Size, tile.Size)
}

// Frame returns the flame animation frame.
func (t *Torch) Frame() int { return t.frame }

func (t *Torch) Update(dt float64) {
	t.clock += dt
	for t.clock >= torchFrameTime {
		t.clock -= torchFrameTime
		t.frame = (t.frame + 1) % 4
	}
}
