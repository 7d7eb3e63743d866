package object

import (
	"github.com/vovakirdan/tui-palace/internal/core"
	"github.com/vovakirdan/tui-palace/internal/tile"
)

// SpringBoard is a platform on a spring. Landing hard stores kinetic
// energy, which lowers the platform and is released into the next jump.
type SpringBoard struct {
	X, Y    float64
	Width   float64
	kinetic float64
	level   float64
	steps   int

	maxLevel float64
	step     float64
	maxSteps int
	decay    float64
	absorb   float64
}

// NewSpringBoard places an uncompressed spring.
func NewSpringBoard(x, y float64, p Params) *SpringBoard {
	return &SpringBoard{
		X:        x,
		Y:        y,
		Width:    tile.Size,
		level:    p.SpringMaxLevel,
		maxLevel: p.SpringMaxLevel,
		step:     p.SpringStep,
		maxSteps: p.SpringMaxSteps,
		decay:    p.SpringDecay,
		absorb:   p.SpringAbsorb,
	}
}

func (s *SpringBoard) Caps() Caps { return Caps{Supports: true} }

func (s *SpringBoard) Anchor() float64 { return s.Y }

func (s *SpringBoard) Level() float64 { return s.level }

// Kinetic returns the stored energy.
func (s *SpringBoard) Kinetic() float64 { return s.kinetic }

// Step returns the compression step, 0 for a relaxed spring.
func (s *SpringBoard) Step() int { return s.steps }

// HitTest checks the platform at its current height.
func (s *SpringBoard) HitTest(r core.Rect) bool {
	return r.Intersects(core.NewRect(s.X+8, s.Y, s.Width-12, s.level))
}

func (s *SpringBoard) Bounds() core.Rect {
	return core.NewRect(s.X, s.Y, s.Width, s.maxLevel)
}

// Update drains kinetic energy and recomputes the rest level.
func (s *SpringBoard) Update(dt float64) {
	if s.kinetic > 0 {
		s.kinetic -= s.decay * dt
		if s.kinetic < 0 {
			s.kinetic = 0
		}
	}
	s.steps = min(int(s.kinetic), s.maxSteps)
	s.level = s.maxLevel - float64(s.steps)*s.step
}

// GainActor soaks up the landing and banks the excess speed.
func (s *SpringBoard) GainActor(b *core.Body) {
	if b.Velocity >= 0 {
		return
	}
	force := max(int(-b.Velocity-s.absorb), 0)
	s.kinetic += float64(force)
	s.Update(0)
	b.Velocity = 0
}

// SupportActor pins the actor to the platform.
func (s *SpringBoard) SupportActor(b *core.Body) {
	b.Y = s.Y + s.level
	b.Velocity = 0
}

// ActorJump releases all stored energy into the jump.
func (s *SpringBoard) ActorJump(b *core.Body) {
	b.Velocity += s.kinetic
	s.kinetic = 0
	s.Update(0)
}
