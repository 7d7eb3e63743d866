package game

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/tui-palace/internal/actor"
	"github.com/vovakirdan/tui-palace/internal/core"
	"github.com/vovakirdan/tui-palace/internal/object"
	"github.com/vovakirdan/tui-palace/internal/tile"
)

// Each tile is drawn CellsPerTile characters wide and one row tall.
const CellsPerTile = 2

// HUDRows is the space above the room for the health bar and room name.
const HUDRows = 1

// healthBarCells is the width of a full health bar.
const healthBarCells = 20

// Render draws the room, its objects, the player and the HUD. The room is
// pushed down by the current bounce.
func (g *Game) Render(dst *core.Screen) {
	grid := g.room.Grid
	if grid == nil {
		return
	}
	ox := max((dst.Width()-grid.Width()*CellsPerTile)/2, 0)
	oy := HUDRows + g.room.Bounce

	if !g.Entering() {
		DrawTiles(dst, grid, ox, oy)
		g.drawObjects(dst, ox, oy)
		g.drawPlayer(dst, ox, oy)
	}
	g.drawHUD(dst, ox)

	mid := oy + grid.Height()/2
	switch {
	case g.player.Dead():
		dst.DrawTextCentered(mid, " THE PALACE CLAIMS YOU ", core.ColorBrightRed)
		dst.DrawTextCentered(mid+1, " press R to rise again ", core.ColorWhite)
	case g.paused:
		dst.DrawTextCentered(mid, " PAUSED ", core.ColorBrightYellow)
	}
}

// DrawTiles draws a room layout with its top-left tile at (ox, oy).
func DrawTiles(dst *core.Screen, grid *tile.Grid, ox, oy int) {
	for row := 0; row < grid.Height(); row++ {
		for col := 0; col < grid.Width(); col++ {
			r, c := tileGlyph(grid.Tile(col, row), grid.ClassAt(col, row))
			if r == ' ' {
				continue
			}
			for i := 0; i < CellsPerTile; i++ {
				dst.SetColored(ox+col*CellsPerTile+i, oy+row, r, c)
			}
		}
	}
}

func tileGlyph(code int, class tile.Class) (rune, core.Color) {
	switch {
	case code == 0:
		return ' ', core.ColorDefault
	case class&tile.Solid != 0:
		if code == 2 {
			return '█', core.ColorGray
		}
		return '▓', core.ColorBrown
	case class&tile.Climbable != 0:
		return '╫', core.ColorBrown
	case class&tile.Damage != 0:
		return '▲', core.ColorRed
	default:
		return '░', core.ColorGray
	}
}

// cell converts room coordinates to a screen cell. Room y points up.
func (g *Game) cell(x, y float64, ox, oy int) (int, int) {
	col := int(math.Round(x / tile.Size * CellsPerTile))
	row := g.room.Grid.Height() - 1 - int(math.Round(y/tile.Size))
	return ox + col, oy + row
}

func (g *Game) drawObjects(dst *core.Screen, ox, oy int) {
	for _, obj := range g.room.Objects(object.Background) {
		switch o := obj.(type) {
		case *object.Torch:
			c := core.ColorOrange
			if o.Frame()%2 == 1 {
				c = core.ColorBrightYellow
			}
			x, y := g.cell(o.X, o.Y, ox, oy)
			dst.SetColored(x, y, '¥', c)
		case *object.DropRope:
			// one row per tile of rope paid out, from the top down
			x, top := g.cell(o.X-object.RopeLeft, o.Y-tile.Size, ox, oy)
			n := int(math.Round(o.Height() / tile.Size))
			for i := 0; i < n; i++ {
				dst.SetColored(x, top+i, '│', core.ColorBrown)
			}
		case *object.SpringBoard:
			x, y := g.cell(o.X, o.Y, ox, oy)
			r := '≡'
			if o.Step() > 0 {
				r = '='
			}
			dst.SetColored(x, y, r, core.ColorCyan)
			dst.SetColored(x+1, y, r, core.ColorCyan)
		}
	}
	for _, obj := range g.room.Objects(object.Sprites) {
		switch o := obj.(type) {
		case *object.Crawler:
			x, y := g.cell(o.X, o.Y, ox, oy)
			dst.SetColored(x, y, 'ж', core.ColorGreen)
		case *object.Bat:
			x, y := g.cell(o.X, o.Y, ox, oy)
			dst.SetColored(x, y, 'w', core.ColorMagenta)
		case *object.Spider:
			x, y := g.cell(o.X, o.Y, ox, oy)
			_, top := g.cell(o.X, o.Top(), ox, oy)
			for row := top; row < y; row++ {
				dst.SetColored(x, row, '┆', core.ColorGray)
			}
			dst.SetColored(x, y, '*', core.ColorBrightRed)
		}
	}
}

func (g *Game) drawPlayer(dst *core.Screen, ox, oy int) {
	x, y := g.cell(g.player.X, g.player.Y, ox, oy)
	pose := g.player.Pose()
	var glyph string
	switch pose.Facing {
	case actor.FacingLeft:
		glyph = "◄@"
	case actor.FacingClimb:
		glyph = "@@"
	default:
		glyph = "@►"
	}
	c := core.ColorBrightWhite
	if g.player.Deficit > 0 {
		c = core.ColorBrightRed
	}
	dst.DrawText(x, y, glyph, c)
}

func (g *Game) drawHUD(dst *core.Screen, ox int) {
	health := max(g.player.Health, 0)
	start := max(g.player.Params().StartHealth, 1)
	filled := min(health*healthBarCells/start, healthBarCells)
	if health > 0 && filled == 0 {
		filled = 1
	}
	bar := strings.Repeat("█", filled) + strings.Repeat("░", healthBarCells-filled)
	dst.DrawText(ox, 0, bar, core.ColorBrightGreen)
	dst.DrawText(ox+healthBarCells+1, 0, fmt.Sprintf("%3d", health), core.ColorWhite)

	name := g.data.Title()
	x := ox + healthBarCells + 5
	dst.DrawText(x, 0, name, core.ColorBrightYellow)
	dst.DrawText(x+len([]rune(name))+2, 0, g.RoomLabel(), core.ColorGray)
}
