// Package object defines the dynamic things that live in a room: what an
// actor can stand on, climb or get hurt by, and the callbacks a support
// receives while it carries an actor.
package object

import (
	"github.com/vovakirdan/tui-palace/internal/core"
)

// Caps are the capability flags the movement code checks before using an
// object. An object without a capability is skipped, never probed.
type Caps struct {
	Supports  bool // can be landed on
	Climbable bool // lets the actor climb while overlapping it
	Hurtful   bool // drains health on contact
}

// Object is anything spawned into a room.
type Object interface {
	Caps() Caps
	// HitTest reports whether r overlaps the object's current shape.
	HitTest(r core.Rect) bool
	// Bounds covers every shape HitTest can currently report.
	Bounds() core.Rect
	Update(dt float64)
}

// Surface is implemented by supports. An actor resting on it sits at
// Anchor()+Level().
type Surface interface {
	Anchor() float64
	Level() float64
}

// Gainer is notified when an actor lands on it.
type Gainer interface {
	GainActor(b *core.Body)
}

// Loser is notified when an actor leaves it.
type Loser interface {
	LostActor(b *core.Body)
}

// Carrier repositions the actor every frame it stays supported.
type Carrier interface {
	SupportActor(b *core.Body)
}

// Booster adds to the actor's jump when it jumps off.
type Booster interface {
	ActorJump(b *core.Body)
}

// RestHeight is the y an actor supported by o should be placed at.
func RestHeight(o Object) float64 {
	if s, ok := o.(Surface); ok {
		return s.Anchor() + s.Level()
	}
	return o.Bounds().Top()
}

// Gain delivers a landing notification if o wants one.
func Gain(o Object, b *core.Body) {
	if g, ok := o.(Gainer); ok {
		g.GainActor(b)
	}
}

// Lose delivers a departure notification if o wants one.
func Lose(o Object, b *core.Body) {
	if l, ok := o.(Loser); ok {
		l.LostActor(b)
	}
}

// Carry runs the per-frame repositioning callback if o has one.
func Carry(o Object, b *core.Body) {
	if c, ok := o.(Carrier); ok {
		c.SupportActor(b)
	}
}

// Boost lets o add energy to a jump leaving it.
func Boost(o Object, b *core.Body) {
	if j, ok := o.(Booster); ok {
		j.ActorJump(b)
	}
}
