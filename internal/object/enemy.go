package object

import (
	"github.com/vovakirdan/tui-palace/internal/core"
	"github.com/vovakirdan/tui-palace/internal/tile"
)

// enemyBox is the conservative hit box shared by every enemy: the frame
// inset by 4 on each side.
func enemyBox(q core.Rect, x, y float64) bool {
	return q.Intersects(core.NewRect(x, y, tile.Size, tile.Size).Inset(4, 4))
}

// Patroller walks left and right between two blocker codes.
type Patroller struct {
	X, Y        float64
	left, right float64
	rate        float64
}

func newPatroller(g *tile.Grid, x, y float64, p Params) Patroller {
	sx, _ := g.ScanForCode(x, y, -1, 0, CodeBlocker)
	ex, _ := g.ScanForCode(x, y, 1, 0, CodeBlocker)
	return Patroller{
		X:     x,
		Y:     y,
		left:  sx + tile.Size,
		right: ex - tile.Size,
		rate:  -p.PatrolRate,
	}
}

func (e *Patroller) Caps() Caps { return Caps{Hurtful: true} }

func (e *Patroller) HitTest(q core.Rect) bool { return enemyBox(q, e.X, e.Y) }

func (e *Patroller) Bounds() core.Rect {
	return core.NewRect(e.X, e.Y, tile.Size, tile.Size)
}

// Range returns the patrol limits.
func (e *Patroller) Range() (float64, float64) { return e.left, e.right }

// Heading is -1 while walking left and +1 while walking right.
func (e *Patroller) Heading() int {
	if e.rate < 0 {
		return -1
	}
	return 1
}

func (e *Patroller) Update(dt float64) {
	e.X += e.rate * dt
	if e.X > e.right {
		e.X = e.right
		e.rate = -e.rate
	} else if e.X < e.left {
		e.X = e.left
		e.rate = -e.rate
	}
}

// Crawler creeps along the floor.
type Crawler struct{ Patroller }

func NewCrawler(g *tile.Grid, x, y float64, p Params) *Crawler {
	return &Crawler{newPatroller(g, x, y, p)}
}

// Bat flies back and forth.
type Bat struct{ Patroller }

func NewBat(g *tile.Grid, x, y float64, p Params) *Bat {
	return &Bat{newPatroller(g, x, y, p)}
}

// Spider drops from the spider top code down to its spawn cell and climbs
// back up its thread.
type Spider struct {
	X, Y   float64
	top    float64
	bottom float64
	rate   float64
}

func NewSpider(g *tile.Grid, x, y float64, p Params) *Spider {
	_, sy := g.ScanForCode(x, y, 0, -1, CodeSpiderTop)
	return &Spider{
		X:      x,
		Y:      sy,
		top:    sy,
		bottom: y,
		rate:   p.SpiderRate,
	}
}

func (s *Spider) Caps() Caps { return Caps{Hurtful: true} }

func (s *Spider) HitTest(q core.Rect) bool { return enemyBox(q, s.X, s.Y) }

func (s *Spider) Bounds() core.Rect {
	return core.NewRect(s.X, s.Y, tile.Size, tile.Size)
}

// Top returns where the thread is anchored.
func (s *Spider) Top() float64 { return s.top }

func (s *Spider) Update(dt float64) {
	s.Y += s.rate * dt
	if s.Y > s.top {
		s.Y = s.top
		s.rate = -s.rate
	} else if s.Y < s.bottom {
		s.Y = s.bottom
		s.rate = -s.rate
	}
}
