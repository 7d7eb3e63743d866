package object

import (
	"github.com/vovakirdan/tui-palace/internal/tile"
)

// Level editor event codes.
const (
	CodeTorch     = 1
	CodeRope      = 2
	CodeRopeEnd   = 4
	CodeSpring    = 5
	CodeCrawler   = 8
	CodeBat       = 9
	CodeSpiderTop = 10
	CodeSpider    = 12
	CodeBlocker   = 16
)

// Layer is the room list an object is kept in. Climb and support probes
// look only at the background; hazard checks look only at sprites.
type Layer int

const (
	Background Layer = iota
	Sprites
)

func (l Layer) String() string {
	if l == Sprites {
		return "sprites"
	}
	return "background"
}

// Params tunes the built-in objects.
type Params struct {
	SpringMaxLevel float64
	SpringStep     float64
	SpringMaxSteps int
	SpringDecay    float64 // kinetic units lost per second
	SpringAbsorb   float64 // landing speed soaked up before energy is stored

	RopeRate  float64
	RopeWidth float64

	PatrolRate float64
	SpiderRate float64
}

// DefaultParams returns the classic tuning.
func DefaultParams() Params {
	return Params{
		SpringMaxLevel: 24,
		SpringStep:     4,
		SpringMaxSteps: 3,
		SpringDecay:    5,
		SpringAbsorb:   2,
		RopeRate:       120,
		RopeWidth:      4,
		PatrolRate:     120,
		SpiderRate:     60,
	}
}

// Factory builds the object for a level code placed at the bottom-left
// corner (x, y) of its cell.
type Factory func(g *tile.Grid, x, y float64, p Params) (Object, Layer)

// Codemap selects a factory by level code.
type Codemap map[int]Factory

// DefaultCodemap spawns every built-in object.
func DefaultCodemap() Codemap {
	return Codemap{
		CodeTorch: func(_ *tile.Grid, x, y float64, _ Params) (Object, Layer) {
			return NewTorch(x, y), Background
		},
		CodeRope: func(g *tile.Grid, x, y float64, p Params) (Object, Layer) {
			return NewDropRope(g, x, y, p), Background
		},
		CodeSpring: func(_ *tile.Grid, x, y float64, p Params) (Object, Layer) {
			return NewSpringBoard(x, y, p), Background
		},
		CodeCrawler: func(g *tile.Grid, x, y float64, p Params) (Object, Layer) {
			return NewCrawler(g, x, y, p), Sprites
		},
		CodeBat: func(g *tile.Grid, x, y float64, p Params) (Object, Layer) {
			return NewBat(g, x, y, p), Sprites
		},
		CodeSpider: func(g *tile.Grid, x, y float64, p Params) (Object, Layer) {
			return NewSpider(g, x, y, p), Sprites
		},
	}
}
