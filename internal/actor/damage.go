package actor

import (
	"github.com/vovakirdan/tui-palace/internal/core"
	"github.com/vovakirdan/tui-palace/internal/room"
	"github.com/vovakirdan/tui-palace/internal/tile"
)

// CheckDamage adds to the deficit if the actor's inset body touches a
// damage tile or a hurtful sprite.
func (a *Actor) CheckDamage(rm *room.Room) bool {
	qx, qy := a.Pixel()
	q := core.NewRect(
		float64(qx)+a.p.DamageInset,
		float64(qy),
		a.p.Width-2*a.p.DamageInset,
		a.p.DamageHeight,
	)
	hit := rm.Grid.TileTest(q, tile.Damage).OK
	if !hit {
		hit = rm.AnyHurtful(q)
	}
	if hit {
		a.Deficit += a.p.ContactDeficit
	}
	return hit
}

// Tick runs the slow health cadence: sample hazards, then move one unit of
// banked damage into health. A dead actor is left alone.
func (a *Actor) Tick(rm *room.Room) Events {
	if a.Health <= 0 {
		return 0
	}
	a.CheckDamage(rm)

	var ev Events
	if a.Deficit > 0 {
		a.Deficit--
		a.Health--
		ev |= Hurt
		if a.Health <= 0 {
			ev |= Died
		}
	}
	return ev
}
