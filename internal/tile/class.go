// Package tile implements the room's static collision layer: a grid of tile
// codes classified into collision classes, and a parallel grid of level
// event codes used to place and pair objects.
package tile

// Size is the width and height of one tile in room units.
const Size = 32

// Default room dimensions in tiles.
const (
	RoomCols = 16
	RoomRows = 12
)

// Class is a bitmask of collision categories derived from a tile code.
type Class uint8

const (
	Solid Class = 1 << iota
	Climbable
	Damage
)

var classByCode = map[int]Class{
	2: Solid, 3: Solid, 4: Solid, 5: Solid,
	12: Solid, 13: Solid, 18: Solid, 19: Solid,
	34: Solid, 35: Solid,

	8: Climbable, 10: Climbable,

	1: Damage, 9: Damage, 26: Damage,
}

// ClassOf returns the collision class of a tile code. Unknown codes have no
// class and never collide.
func ClassOf(code int) Class {
	return classByCode[code]
}

// String returns a short name used in logs and tests.
func (c Class) String() string {
	switch c {
	case 0:
		return "none"
	case Solid:
		return "solid"
	case Climbable:
		return "climbable"
	case Damage:
		return "damage"
	default:
		return "mixed"
	}
}
