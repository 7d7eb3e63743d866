package tile

import (
	"errors"
	"fmt"
	"math"

	"github.com/vovakirdan/tui-palace/internal/core"
)

// ErrBadDimensions is returned when the tile and code layers are empty,
// ragged or differ in size.
var ErrBadDimensions = errors.New("tile: bad grid dimensions")

// Grid holds one room's tile and code layers. Rows are stored in map order
// (row 0 is the top of the room) while room coordinates grow upward, so
// every query inverts rows with height-1-row.
type Grid struct {
	w, h    int
	tiles   [][]int
	codes   [][]int
	classes [][]Class
}

// NewGrid validates the two layers and derives the class layer. The slices
// are referenced, not copied; callers must not mutate them afterwards.
func NewGrid(tiles, codes [][]int) (*Grid, error) {
	h := len(tiles)
	if h == 0 || len(codes) != h {
		return nil, fmt.Errorf("%w: %d tile rows, %d code rows", ErrBadDimensions, h, len(codes))
	}
	w := len(tiles[0])
	if w == 0 {
		return nil, fmt.Errorf("%w: empty rows", ErrBadDimensions)
	}

	classes := make([][]Class, h)
	for y := 0; y < h; y++ {
		if len(tiles[y]) != w || len(codes[y]) != w {
			return nil, fmt.Errorf("%w: row %d has %d tiles and %d codes, expected %d",
				ErrBadDimensions, y, len(tiles[y]), len(codes[y]), w)
		}
		classes[y] = make([]Class, w)
		for x, code := range tiles[y] {
			classes[y][x] = ClassOf(code)
		}
	}

	return &Grid{w: w, h: h, tiles: tiles, codes: codes, classes: classes}, nil
}

// MustGrid is NewGrid for fixtures known to be well formed.
func MustGrid(tiles, codes [][]int) *Grid {
	g, err := NewGrid(tiles, codes)
	if err != nil {
		panic(err)
	}
	return g
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.w }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.h }

// Bounds returns the room rectangle covered by the grid.
func (g *Grid) Bounds() core.Rect {
	return core.NewRect(0, 0, float64(g.w*Size), float64(g.h*Size))
}

// Tile returns the tile code at a map cell (row 0 at the top).
func (g *Grid) Tile(col, row int) int {
	if !g.inside(col, row) {
		return 0
	}
	return g.tiles[row][col]
}

// Code returns the event code at a map cell (row 0 at the top).
func (g *Grid) Code(col, row int) int {
	if !g.inside(col, row) {
		return 0
	}
	return g.codes[row][col]
}

// ClassAt returns the collision class at a map cell (row 0 at the top).
func (g *Grid) ClassAt(col, row int) Class {
	if !g.inside(col, row) {
		return 0
	}
	return g.classes[row][col]
}

// CellOrigin converts a map cell to the room coordinates of its
// bottom-left corner.
func (g *Grid) CellOrigin(col, row int) (float64, float64) {
	return float64(col * Size), float64((g.h - 1 - row) * Size)
}

func (g *Grid) inside(col, row int) bool {
	return g != nil && col >= 0 && row >= 0 && col < g.w && row < g.h
}

// Hit is the result of a tile query. Row counts from the bottom of the room.
type Hit struct {
	OK   bool
	Col  int
	Row  int
	Code int
}

// HitTest reports the first tile in mask touched by the inclusive corner
// range (x0,y0)-(x1,y1). Source rows are scanned top to bottom, columns
// left to right. Coordinates outside the grid are clamped; a range that
// lies entirely outside finds nothing.
func (g *Grid) HitTest(x0, y0, x1, y1 float64, mask Class) Hit {
	if g == nil || g.w == 0 || g.h == 0 {
		return Hit{}
	}
	ew, eh := g.w-1, g.h-1
	tx0 := max(0, cellOf(x0))
	ty0 := max(0, cellOf(y0))
	tx1 := min(ew, cellOf(x1))
	ty1 := min(eh, cellOf(y1))
	ty0, ty1 = eh-ty1, eh-ty0

	for ty := ty0; ty <= ty1; ty++ {
		row := g.classes[ty]
		for tx := tx0; tx <= tx1; tx++ {
			if row[tx]&mask != 0 {
				return Hit{OK: true, Col: tx, Row: eh - ty, Code: g.tiles[ty][tx]}
			}
		}
	}
	return Hit{}
}

// TileTest is HitTest over a rectangle given by origin and size.
func (g *Grid) TileTest(r core.Rect, mask Class) Hit {
	return g.HitTest(r.X, r.Y, r.X+r.W, r.Y+r.H, mask)
}

// ScanForCode walks the code layer from the cell containing (x, y) in steps
// of (dx, dy) until it finds code or leaves the grid. dy counts map rows, so
// +1 walks down the room. The cell it stopped on is returned as room
// coordinates, which lie outside the room when the code was not found.
func (g *Grid) ScanForCode(x, y float64, dx, dy, code int) (float64, float64) {
	if g == nil {
		return x, y
	}
	dx, dy = sign(dx), sign(dy)
	top := float64((g.h - 1) * Size)
	cx, cy := cellOf(x), cellOf(top-y)
	for g.inside(cx, cy) {
		if g.codes[cy][cx] == code {
			break
		}
		if dx == 0 && dy == 0 {
			break
		}
		cx += dx
		cy += dy
	}
	return float64(cx * Size), top - float64(cy*Size)
}

func cellOf(v float64) int {
	return int(math.Floor(v / Size))
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
