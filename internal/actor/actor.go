// Package actor implements the player's movement against a room: tile
// collision, climbing, jumping, riding support objects, fall damage and the
// slow health drain.
package actor

import (
	"github.com/yohamta/donburi"

	"github.com/vovakirdan/tui-palace/internal/core"
)

// Params tunes movement and damage.
type Params struct {
	Speed     float64 // units per second of horizontal and climbing motion
	JumpForce float64 // initial upward velocity of a jump
	Gravity   float64 // velocity lost per second

	FallThreshold float64 // landing speed that starts to hurt
	FallScale     float64 // deficit per unit of speed past the threshold

	Width, Height float64 // sprite frame
	InsetX        float64 // collision rect inset from the frame's left edge

	DamageInset    float64 // hazard rect inset on each side
	DamageHeight   float64
	ContactDeficit int // deficit added per health tick in contact with a hazard

	StartHealth int
}

// DefaultParams returns the classic tuning.
func DefaultParams() Params {
	return Params{
		Speed:          180,
		JumpForce:      4.9,
		Gravity:        10,
		FallThreshold:  8,
		FallScale:      3,
		Width:          32,
		Height:         32,
		InsetX:         2,
		DamageInset:    6,
		DamageHeight:   28,
		ContactDeficit: 1,
		StartHealth:    100,
	}
}

// SupportKind tells what the actor stands on.
type SupportKind int

const (
	Unsupported SupportKind = iota
	Ground                  // a solid tile
	Carried                 // a support object
)

// Support is what the actor rests on. Handle is only meaningful for
// Carried and may go stale if the object is removed.
type Support struct {
	Kind   SupportKind
	Handle donburi.Entity
}

func (s Support) same(o Support) bool {
	if s.Kind != o.Kind {
		return false
	}
	return s.Kind != Carried || s.Handle == o.Handle
}

// Input is one frame of intent. DX and DY are -dt, 0 or +dt.
type Input struct {
	DX, DY float64
	Jump   bool
}

// Actor is the player character.
type Actor struct {
	core.Body

	Health  int
	Deficit int // damage banked but not yet taken from Health

	support Support
	facing  Facing
	pose    Pose
	p       Params
}

// New places an actor with full health at (x, y).
func New(x, y float64, p Params) *Actor {
	a := &Actor{p: p}
	a.Reset(x, y)
	return a
}

// Reset restores full health and places the actor standing still at (x, y).
func (a *Actor) Reset(x, y float64) {
	a.Place(x, y)
	a.Health = a.p.StartHealth
	a.Deficit = 0
	a.facing = FacingRight
	a.pose = Pose{Facing: FacingRight, Motion: Idle}
}

// Place moves the actor without touching health.
func (a *Actor) Place(x, y float64) {
	a.X, a.Y = x, y
	a.Velocity = 0
	a.support = Support{}
}

// Support returns what the actor stood on at the end of the last frame.
func (a *Actor) Support() Support { return a.support }

// Pose returns the pose chosen by the last frame.
func (a *Actor) Pose() Pose { return a.pose }

// Params returns the tuning the actor was built with.
func (a *Actor) Params() Params { return a.p }

// Dead reports whether health has run out.
func (a *Actor) Dead() bool { return a.Health <= 0 }

// collision rect offsets: inset from the left, then inclusive width and
// height in whole units.
func (a *Actor) rect() (ox, rw, rh float64) {
	return a.p.InsetX, a.p.Width - 2*a.p.InsetX - 1, a.p.Height - 1
}
