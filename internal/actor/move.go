package actor

import (
	"github.com/vovakirdan/tui-palace/internal/core"
	"github.com/vovakirdan/tui-palace/internal/object"
	"github.com/vovakirdan/tui-palace/internal/room"
	"github.com/vovakirdan/tui-palace/internal/tile"
)

// Move runs one frame of movement. The steps run in a fixed order and each
// one sees the result of the previous: climb probe, horizontal move,
// vertical move, vertical collision and support search, jump, support
// change callbacks, support carry, pose.
//
// Known behaviour kept on purpose: falling onto a climbable tile sinks
// into it by the speed at impact, and an actor can bounce at the top of a
// ladder.
func (a *Actor) Move(rm *room.Room, in Input, dt float64) Events {
	var ev Events
	g := rm.Grid
	ox, rw, rh := a.rect()
	wasAirborne := a.pose.Motion == Airborne

	if a.support.Kind == Carried {
		if _, ok := rm.Resolve(a.support.Handle); !ok {
			a.support = Support{}
			ev |= LostSupport
		}
	}

	oldx, oldy := a.Pixel()
	fx, fy := float64(oldx), float64(oldy)
	moved := false

	// Climb probe. Tiles are checked from one unit below the feet, objects
	// only against the body.
	qx, qy := fx+ox, fy
	canClimb := g.TileTest(core.NewRect(qx, qy-1, rw, rh+1), tile.Climbable).OK
	if !canClimb {
		canClimb = rm.AnyClimbable(core.NewRect(qx, qy, rw, rh))
	}

	// Horizontal motion accumulates until it crosses a whole unit; only
	// then is the covered span tested.
	adjx := a.X + a.p.Speed*in.DX
	newx := int(adjx)
	switch {
	case newx > oldx:
		hit := g.HitTest(fx+ox+rw, fy, float64(newx)+ox+rw, fy+rh, tile.Solid)
		if hit.OK {
			a.X = float64(hit.Col*tile.Size) - (rw + 1) - ox
		} else {
			a.X = adjx
		}
		a.facing = FacingRight
		moved = true
	case newx < oldx:
		hit := g.HitTest(float64(newx)+ox, fy, fx+ox, fy+rh, tile.Solid)
		if hit.OK {
			a.X = float64((hit.Col+1)*tile.Size) - ox
		} else {
			a.X = adjx
		}
		a.facing = FacingLeft
		moved = true
	default:
		a.X = adjx
	}

	// Ground support is proven again by collision every frame; only an
	// object support carries over.
	support := a.support
	if support.Kind == Ground {
		support = Support{}
	}

	climbed := false
	adjy := a.Y
	if canClimb {
		if in.DY != 0 {
			adjy = a.Y + a.p.Speed*in.DY
			a.facing = FacingClimb
			moved = true
			climbed = true
			a.stopFalling(rm)
		} else {
			// Jumping off a ladder keeps its arc, but nothing slides down.
			a.Velocity += dt * -a.p.Gravity
			if a.Velocity > 0 {
				adjy = a.Y + a.Velocity
			} else {
				a.stopFalling(rm)
			}
		}
	} else {
		a.Velocity += dt * -a.p.Gravity
		adjy = a.Y + a.Velocity
	}

	supported := canClimb
	newy := int(adjy)
	nx := float64(int(a.X)) + ox
	switch {
	case newy > oldy:
		support = Support{}
		hit := g.HitTest(nx, fy+rh, nx+rw, float64(newy)+rh, tile.Solid)
		if hit.OK {
			a.Y = float64(hit.Row*tile.Size) - (rh + 1)
			if a.Velocity > 0 {
				a.Velocity = 0
			}
		} else {
			a.Y = adjy
		}
	case newy < oldy:
		support = Support{}
		hit := g.HitTest(nx, float64(newy), nx+rw, fy, tile.Solid)
		if hit.OK {
			a.Y = float64((hit.Row + 1) * tile.Size)
			supported = true
			support = Support{Kind: Ground}
			a.stopFalling(rm)
		} else if best, ok := a.findSupport(rm, core.NewRect(nx, float64(newy), rw, fy-float64(newy))); ok {
			support = best
		} else {
			a.Y = adjy
		}
	default:
		a.Y = adjy
	}

	if support.Kind != Unsupported {
		supported = true
	}

	// A rising actor cannot jump again; this stops the jump from firing
	// every frame while climbing up a ladder.
	if in.Jump && supported && !climbed && a.Velocity <= 0 {
		a.Velocity = a.p.JumpForce
		if obj, ok := a.resolve(rm, support); ok {
			object.Boost(obj, &a.Body)
		}
		support = Support{}
		ev |= Jumped
	}

	if !support.same(a.support) {
		if obj, ok := a.resolve(rm, a.support); ok {
			object.Lose(obj, &a.Body)
			ev |= LostSupport
		}
		a.support = support
		if obj, ok := a.resolve(rm, support); ok {
			object.Gain(obj, &a.Body)
			ev |= GainedSupport
		}
	}

	if obj, ok := a.resolve(rm, a.support); ok {
		object.Carry(obj, &a.Body)
	}

	switch {
	case a.Velocity != 0:
		a.pose = Pose{Facing: a.facing, Motion: Airborne}
	case moved && supported:
		a.pose = Pose{Facing: a.facing, Motion: Walk}
	default:
		a.pose = Pose{Facing: a.facing, Motion: Idle}
	}
	if wasAirborne && a.pose.Motion != Airborne && supported {
		ev |= Landed
	}
	return ev
}

// findSupport picks the support under q with the highest rest height. On a
// tie the earliest spawned object wins.
func (a *Actor) findSupport(rm *room.Room, q core.Rect) (Support, bool) {
	var best Support
	var bestHeight float64
	found := false
	for _, h := range rm.Supports(q) {
		obj, ok := rm.Resolve(h)
		if !ok {
			continue
		}
		height := object.RestHeight(obj)
		if !found || height > bestHeight {
			best = Support{Kind: Carried, Handle: h}
			bestHeight = height
			found = true
		}
	}
	return best, found
}

func (a *Actor) resolve(rm *room.Room, s Support) (object.Object, bool) {
	if s.Kind != Carried {
		return nil, false
	}
	return rm.Resolve(s.Handle)
}

// stopFalling zeroes the velocity, banking damage for a hard landing.
func (a *Actor) stopFalling(rm *room.Room) {
	if a.Velocity < -a.p.FallThreshold {
		damage := (-a.Velocity - a.p.FallThreshold) * a.p.FallScale
		a.Deficit += int(damage)
		rm.ShakeFromDamage(damage)
	}
	a.Velocity = 0
}
