package room

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"

	"github.com/vovakirdan/tui-palace/internal/core"
	"github.com/vovakirdan/tui-palace/internal/object"
	"github.com/vovakirdan/tui-palace/internal/tile"
)

// indexPad extends the space past the room edges so objects and probes
// that straddle a wall still share cells.
const indexPad = 2 * tile.Size

// margin grows every shape so touching edges land in a shared cell; the
// exact hit test runs afterwards.
const margin = 1

var layerTags = map[object.Layer]string{
	object.Background: "background",
	object.Sprites:    "sprites",
}

// index is the broadphase over object bounds.
type index struct {
	space *resolv.Space
}

func newIndex(bounds core.Rect) *index {
	w := int(bounds.W) + 2*indexPad
	h := int(bounds.H) + 2*indexPad
	return &index{space: resolv.NewSpace(w, h, tile.Size, tile.Size)}
}

func (ix *index) add(e donburi.Entity, b core.Rect, layer object.Layer) *resolv.Object {
	obj := resolv.NewObject(0, 0, 1, 1, layerTags[layer])
	obj.Data = e
	ix.place(obj, b)
	ix.space.Add(obj)
	return obj
}

func (ix *index) remove(obj *resolv.Object) {
	ix.space.Remove(obj)
}

func (ix *index) move(obj *resolv.Object, b core.Rect) {
	ix.place(obj, b)
	obj.Update()
}

func (ix *index) place(obj *resolv.Object, b core.Rect) {
	g := b.Inset(-margin, -margin)
	obj.X, obj.Y = g.X+indexPad, g.Y+indexPad
	obj.W, obj.H = g.W, g.H
}

// near returns every entity in layer whose cells touch q.
func (ix *index) near(q core.Rect, layer object.Layer) []donburi.Entity {
	probe := resolv.NewObject(0, 0, 1, 1)
	ix.place(probe, q)
	ix.space.Add(probe)
	defer ix.space.Remove(probe)

	check := probe.Check(0, 0, layerTags[layer])
	if check == nil {
		return nil
	}
	out := make([]donburi.Entity, 0, len(check.Objects))
	for _, o := range check.Objects {
		if e, ok := o.Data.(donburi.Entity); ok {
			out = append(out, e)
		}
	}
	return out
}
