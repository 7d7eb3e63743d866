package level

import (
	"fmt"
	"sort"
)

// World is the atlas of rooms keyed by room coordinates.
type World struct {
	rooms map[Coord]RoomData
}

// NewWorld returns an empty atlas.
func NewWorld() *World {
	return &World{rooms: make(map[Coord]RoomData)}
}

// Add validates r and stores it. A room already at r's coordinates is an
// error.
func (w *World) Add(r RoomData) error {
	if _, ok := w.rooms[r.Coord()]; ok {
		return fmt.Errorf("room %s: %w", r.Coord(), ErrDuplicateRoom)
	}
	return w.Put(r)
}

// Put validates r and stores it, replacing any room at its coordinates.
func (w *World) Put(r RoomData) error {
	if _, err := r.Grid(); err != nil {
		return err
	}
	w.rooms[r.Coord()] = r
	return nil
}

// Room returns the room at (x, y).
func (w *World) Room(x, y int) (RoomData, error) {
	if w == nil {
		return RoomData{}, fmt.Errorf("room %d:%d: %w", x, y, ErrNoRoom)
	}
	r, ok := w.rooms[Coord{x, y}]
	if !ok {
		return RoomData{}, fmt.Errorf("room %d:%d: %w", x, y, ErrNoRoom)
	}
	return r, nil
}

// Has reports whether a room exists at (x, y).
func (w *World) Has(x, y int) bool {
	if w == nil {
		return false
	}
	_, ok := w.rooms[Coord{x, y}]
	return ok
}

// Len returns the number of rooms.
func (w *World) Len() int {
	if w == nil {
		return 0
	}
	return len(w.rooms)
}

// Rooms returns every room ordered north to south, then west to east.
func (w *World) Rooms() []RoomData {
	if w == nil {
		return nil
	}
	out := make([]RoomData, 0, len(w.rooms))
	for _, r := range w.rooms {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Y != out[j].Y {
			return out[i].Y < out[j].Y
		}
		return out[i].X < out[j].X
	})
	return out
}

// Names maps each room's coordinates to its title.
func (w *World) Names() map[Coord]string {
	names := make(map[Coord]string, w.Len())
	for _, r := range w.Rooms() {
		names[r.Coord()] = r.Title()
	}
	return names
}
