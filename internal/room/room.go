// Package room holds the state of the room the player is in: its tile
// grid, the objects spawned from level codes, and the fall-damage bounce.
package room

import (
	"sort"

	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"

	"github.com/vovakirdan/tui-palace/internal/core"
	"github.com/vovakirdan/tui-palace/internal/object"
	"github.com/vovakirdan/tui-palace/internal/tile"
)

// MaxBounce is the default cap on the screen shake set by a hard landing.
const MaxBounce = 4

// entryData is the arena record of one spawned object.
type entryData struct {
	Object object.Object
	Layer  object.Layer
	Seq    int
	Shape  *resolv.Object
}

var entryComp = donburi.NewComponentType[entryData]()

// Room owns the objects of the loaded room. Objects are addressed by
// donburi entities so that a removed object is detectable by anyone still
// holding its handle.
type Room struct {
	X, Y int // atlas coordinates
	Name string
	Grid *tile.Grid

	// Bounce is the vertical screen shake in rows, decayed by the health tick.
	Bounce    int
	BounceCap int

	world   donburi.World
	index   *index
	spawned []donburi.Entity
	seq     int

	params  object.Params
	codemap object.Codemap
}

// New returns an empty room. Load must be called before any query.
func New(params object.Params, codemap object.Codemap) *Room {
	if codemap == nil {
		codemap = object.DefaultCodemap()
	}
	return &Room{
		BounceCap: MaxBounce,
		world:     donburi.NewWorld(),
		params:    params,
		codemap:   codemap,
	}
}

// Load replaces the grid and every object. Handles from the previous
// layout stop resolving.
func (r *Room) Load(g *tile.Grid) {
	r.clear()
	r.Grid = g
	r.index = newIndex(g.Bounds())

	for row := 0; row < g.Height(); row++ {
		for col := 0; col < g.Width(); col++ {
			factory, ok := r.codemap[g.Code(col, row)]
			if !ok {
				continue
			}
			x, y := g.CellOrigin(col, row)
			obj, layer := factory(g, x, y, r.params)
			r.Spawn(obj, layer)
		}
	}
}

func (r *Room) clear() {
	for _, e := range r.spawned {
		if r.world.Valid(e) {
			r.world.Remove(e)
		}
	}
	r.spawned = nil
	r.seq = 0
	r.Bounce = 0
}

// Spawn adds an object to the room and returns its handle.
func (r *Room) Spawn(obj object.Object, layer object.Layer) donburi.Entity {
	e := r.world.Create(entryComp)
	r.seq++
	data := entryData{Object: obj, Layer: layer, Seq: r.seq}
	if r.index != nil {
		data.Shape = r.index.add(e, obj.Bounds(), layer)
	}
	entryComp.SetValue(r.world.Entry(e), data)
	r.spawned = append(r.spawned, e)
	return e
}

// Remove deletes an object. Its handle becomes invalid.
func (r *Room) Remove(h donburi.Entity) {
	if !r.world.Valid(h) {
		return
	}
	data := entryComp.Get(r.world.Entry(h))
	if r.index != nil && data.Shape != nil {
		r.index.remove(data.Shape)
	}
	r.world.Remove(h)
	for i, e := range r.spawned {
		if e == h {
			r.spawned = append(r.spawned[:i], r.spawned[i+1:]...)
			break
		}
	}
}

// Resolve returns the object behind a handle, or false if it was removed.
func (r *Room) Resolve(h donburi.Entity) (object.Object, bool) {
	if !r.world.Valid(h) {
		return nil, false
	}
	entry := r.world.Entry(h)
	if !entry.HasComponent(entryComp) {
		return nil, false
	}
	return entryComp.Get(entry).Object, true
}

// Objects returns the objects of a layer in spawn order.
func (r *Room) Objects(layer object.Layer) []object.Object {
	var out []object.Object
	for _, e := range r.spawned {
		data := entryComp.Get(r.world.Entry(e))
		if data.Layer == layer {
			out = append(out, data.Object)
		}
	}
	return out
}

// Len returns the number of live objects.
func (r *Room) Len() int { return len(r.spawned) }

// Update advances every object once, in spawn order, and refreshes the
// spatial index with their new bounds.
func (r *Room) Update(dt float64) {
	for _, e := range r.spawned {
		data := entryComp.Get(r.world.Entry(e))
		data.Object.Update(dt)
		if data.Shape != nil {
			r.index.move(data.Shape, data.Object.Bounds())
		}
	}
}

// DecayBounce settles the screen shake by one row.
func (r *Room) DecayBounce() {
	if r.Bounce > 0 {
		r.Bounce--
	}
}

// ShakeFromDamage sets the bounce for a landing that dealt damage.
func (r *Room) ShakeFromDamage(damage float64) {
	r.Bounce = min(int(damage/2), r.BounceCap)
}

// AnyClimbable reports whether a climbable background object overlaps q.
func (r *Room) AnyClimbable(q core.Rect) bool {
	return len(r.query(q, object.Background, func(c object.Caps) bool { return c.Climbable }, true)) > 0
}

// AnyHurtful reports whether a hurtful sprite overlaps q.
func (r *Room) AnyHurtful(q core.Rect) bool {
	return len(r.query(q, object.Sprites, func(c object.Caps) bool { return c.Hurtful }, true)) > 0
}

// Supports returns the background supports overlapping q in spawn order.
func (r *Room) Supports(q core.Rect) []donburi.Entity {
	return r.query(q, object.Background, func(c object.Caps) bool { return c.Supports }, false)
}

type candidate struct {
	entity donburi.Entity
	seq    int
}

// query narrows with the index, then runs each object's exact hit test.
func (r *Room) query(q core.Rect, layer object.Layer, want func(object.Caps) bool, first bool) []donburi.Entity {
	if r.index == nil {
		return nil
	}
	var cands []candidate
	for _, e := range r.index.near(q, layer) {
		if !r.world.Valid(e) {
			continue
		}
		data := entryComp.Get(r.world.Entry(e))
		cands = append(cands, candidate{entity: e, seq: data.Seq})
	}
	sort.Slice(cands, func(i, j int) bool { return cands[i].seq < cands[j].seq })

	var out []donburi.Entity
	for _, c := range cands {
		obj := entryComp.Get(r.world.Entry(c.entity)).Object
		if !want(obj.Caps()) || !obj.HitTest(q) {
			continue
		}
		out = append(out, c.entity)
		if first {
			break
		}
	}
	return out
}
