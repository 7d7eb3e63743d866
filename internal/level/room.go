// Package level loads room data and keeps the world atlas the game moves
// through.
package level

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-palace/internal/level/formats"
	"github.com/vovakirdan/tui-palace/internal/tile"
)

var (
	// ErrNoRoom is returned for atlas coordinates without a room.
	ErrNoRoom = errors.New("level: no room at coordinates")
	// ErrMismatchedLayers is returned when the tiles and codes layers
	// differ in size.
	ErrMismatchedLayers = errors.New("level: tiles and codes layers differ in size")
	// ErrDuplicateRoom is returned when two files define the same room.
	ErrDuplicateRoom = errors.New("level: duplicate room")
)

// DefaultName titles rooms that have no name of their own.
const DefaultName = "Belle of Nine Fables"

// Coord addresses a room in the atlas. Y grows southward.
type Coord struct{ X, Y int }

func (c Coord) String() string { return fmt.Sprintf("%d:%d", c.X, c.Y) }

// RoomData is one room's static layout. Rows are stored top row first.
type RoomData struct {
	X, Y  int
	Name  string
	Tiles [][]int
	Codes [][]int
}

// Coord returns the room's atlas position.
func (r RoomData) Coord() Coord { return Coord{r.X, r.Y} }

// Title returns the display name.
func (r RoomData) Title() string {
	if r.Name == "" {
		return DefaultName
	}
	return r.Name
}

// Grid builds the collision grid. A missing codes layer is all zeros.
func (r RoomData) Grid() (*tile.Grid, error) {
	codes := r.Codes
	if codes == nil {
		codes = make([][]int, len(r.Tiles))
		for y, row := range r.Tiles {
			codes[y] = make([]int, len(row))
		}
	}
	if len(codes) != len(r.Tiles) {
		return nil, fmt.Errorf("room %s: %w", r.Coord(), ErrMismatchedLayers)
	}
	for y := range codes {
		if len(codes[y]) != len(r.Tiles[y]) {
			return nil, fmt.Errorf("room %s row %d: %w", r.Coord(), y, ErrMismatchedLayers)
		}
	}
	g, err := tile.NewGrid(r.Tiles, codes)
	if err != nil {
		return nil, fmt.Errorf("room %s: %w", r.Coord(), err)
	}
	return g, nil
}

func fromFormat(fr formats.Room) RoomData {
	return RoomData{X: fr.X, Y: fr.Y, Name: fr.Name, Tiles: fr.Tiles, Codes: fr.Codes}
}

// Format converts back to the parser representation.
func (r RoomData) Format() formats.Room {
	return formats.Room{X: r.X, Y: r.Y, Name: r.Name, Tiles: r.Tiles, Codes: r.Codes}
}
