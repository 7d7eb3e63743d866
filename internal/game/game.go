// Package game drives the palace: it turns held actions into movement,
// moves the player between rooms at the edges, runs the room's objects and
// the slow health tick, and draws the result into a screen buffer.
//
// Like the rest of the gameplay code it knows nothing about Bubble Tea.
package game

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-palace/internal/actor"
	"github.com/vovakirdan/tui-palace/internal/config"
	"github.com/vovakirdan/tui-palace/internal/core"
	"github.com/vovakirdan/tui-palace/internal/level"
	"github.com/vovakirdan/tui-palace/internal/object"
	"github.com/vovakirdan/tui-palace/internal/room"
	"github.com/vovakirdan/tui-palace/internal/tile"
)

// Where a new game puts the player, in tiles from the room's bottom-left.
const (
	StartCol = 8
	StartRow = 1
)

// EnterDelay is how long a freshly entered room stays frozen, in seconds.
const EnterDelay = 0.25

// Axis names the edge a boundary crossing went through.
type Axis int

const (
	AxisX Axis = iota
	AxisY
)

func (a Axis) String() string {
	if a == AxisY {
		return "y"
	}
	return "x"
}

// BoundaryEvent is one edge crossing. Dir is the change in room
// coordinates along Axis; room y grows southward.
type BoundaryEvent struct {
	Axis Axis
	Dir  int
}

// Step is the result of one frame.
type Step struct {
	Events      actor.Events
	Crossings   []BoundaryEvent
	RoomChanged bool
}

// Options configures a new game. Zero values fall back to defaults.
type Options struct {
	Config  config.PalaceConfig
	Runtime core.RuntimeConfig
	World   *level.World
	Logger  *log.Logger
}

// Game is one play session.
type Game struct {
	cfg     config.PalaceConfig
	rt      core.RuntimeConfig
	world   *level.World
	log     *log.Logger
	codemap object.Codemap

	room   *room.Room
	data   level.RoomData
	player *actor.Actor

	roomX, roomY int
	entering     float64
	paused       bool
	frames       int
}

// New builds a game and starts it in the runtime's start room.
func New(opts Options) (*Game, error) {
	g := &Game{
		cfg:     opts.Config,
		rt:      opts.Runtime,
		world:   opts.World,
		log:     opts.Logger,
		codemap: object.DefaultCodemap(),
	}
	if g.cfg == (config.PalaceConfig{}) {
		g.cfg = config.DefaultPalaceConfig()
	}
	if g.rt == (core.RuntimeConfig{}) {
		g.rt = core.DefaultConfig()
	}
	if g.log == nil {
		g.log = log.New(io.Discard)
	}
	if g.world == nil {
		w, err := level.Default()
		if err != nil {
			return nil, fmt.Errorf("game: %w", err)
		}
		g.world = w
	}

	g.room = room.New(g.cfg.ObjectParams(), g.codemap)
	g.room.BounceCap = g.cfg.Damage.BounceCap
	g.player = actor.New(0, 0, g.cfg.ActorParams())

	if err := g.Reset(); err != nil {
		return nil, err
	}
	return g, nil
}

// Reset starts over in the start room with full health.
func (g *Game) Reset() error {
	g.roomX, g.roomY = g.rt.StartRoomX, g.rt.StartRoomY
	if err := g.loadRoom(); err != nil {
		return err
	}
	g.player.Reset(StartCol*tile.Size, StartRow*tile.Size)
	g.paused = false
	g.frames = 0
	g.log.Info("game started", "room", g.coord(), "name", g.data.Title())
	return nil
}

func (g *Game) loadRoom() error {
	data, err := g.world.Room(g.roomX, g.roomY)
	if err != nil {
		return fmt.Errorf("game: %w", err)
	}
	grid, err := data.Grid()
	if err != nil {
		return fmt.Errorf("game: %w", err)
	}
	g.room.Load(grid)
	g.room.X, g.room.Y, g.room.Name = data.X, data.Y, data.Title()
	g.data = data
	g.entering = EnterDelay
	g.log.Debug("room loaded", "room", g.coord(), "name", data.Title(), "objects", g.room.Len())
	return nil
}

// Advance runs one frame: movement, then edge crossing, then the room's
// objects. Nothing moves while paused, dead, or just after entering a room.
func (g *Game) Advance(in core.InputFrame, dt float64) Step {
	if in.Has(core.ActionRestart) && g.player.Dead() {
		if err := g.Reset(); err != nil {
			g.log.Error("restart failed", "err", err)
		}
		return Step{RoomChanged: true}
	}
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused || g.player.Dead() {
		return Step{}
	}
	if g.entering > 0 {
		g.entering -= dt
		return Step{}
	}
	g.frames++

	var step Step
	step.Events = g.player.Move(g.room, intent(in, dt), dt)
	if step.Events.Has(actor.Landed | actor.GainedSupport) {
		g.log.Debug("landed on object", "room", g.coord())
	}

	step.Crossings = g.crossEdges()
	if len(step.Crossings) > 0 {
		step.RoomChanged = g.changeRoom(step.Crossings)
	}

	g.room.Update(dt)
	return step
}

// intent maps held actions to movement. Right wins over left and down
// wins over up when both are held.
func intent(in core.InputFrame, dt float64) actor.Input {
	var mi actor.Input
	if in.Has(core.ActionLeft) {
		mi.DX = -dt
	}
	if in.Has(core.ActionRight) {
		mi.DX = dt
	}
	if in.Has(core.ActionUp) {
		mi.DY = dt
	}
	if in.Has(core.ActionDown) {
		mi.DY = -dt
	}
	mi.Jump = in.Has(core.ActionJump)
	return mi
}

// crossEdges wraps the player to the opposite edge when it leaves the
// room. Both axes can cross in the same frame.
func (g *Game) crossEdges() []BoundaryEvent {
	w := float64(g.room.Grid.Width() * tile.Size)
	h := float64(g.room.Grid.Height() * tile.Size)
	var out []BoundaryEvent

	switch {
	case g.player.X < 0:
		g.player.X = w - tile.Size
		out = append(out, BoundaryEvent{Axis: AxisX, Dir: -1})
	case g.player.X > w-tile.Size:
		g.player.X = 0
		out = append(out, BoundaryEvent{Axis: AxisX, Dir: 1})
	}
	switch {
	case g.player.Y < 0:
		g.player.Y = h - tile.Size
		out = append(out, BoundaryEvent{Axis: AxisY, Dir: 1})
	case g.player.Y > h-tile.Size:
		g.player.Y = 0
		out = append(out, BoundaryEvent{Axis: AxisY, Dir: -1})
	}
	return out
}

// changeRoom moves to the neighbouring room. Room coordinates never go
// below zero. If the atlas has no room there the player stays in the
// current room, held at the edge it tried to leave through.
func (g *Game) changeRoom(crossings []BoundaryEvent) bool {
	nx, ny := g.roomX, g.roomY
	for _, c := range crossings {
		if c.Axis == AxisX {
			nx = max(nx+c.Dir, 0)
		} else {
			ny = max(ny+c.Dir, 0)
		}
	}
	if nx == g.roomX && ny == g.roomY {
		g.undoCrossings(crossings)
		return false
	}
	if !g.world.Has(nx, ny) {
		g.log.Warn("no room beyond edge", "from", g.coord(), "to", level.Coord{X: nx, Y: ny})
		g.undoCrossings(crossings)
		return false
	}

	from := g.coord()
	g.roomX, g.roomY = nx, ny
	if err := g.loadRoom(); err != nil {
		g.log.Error("room load failed", "room", g.coord(), "err", err)
		g.roomX, g.roomY = from.X, from.Y
		g.undoCrossings(crossings)
		return false
	}
	g.log.Debug("room changed", "from", from, "to", g.coord())
	return true
}

func (g *Game) undoCrossings(crossings []BoundaryEvent) {
	w := float64(g.room.Grid.Width() * tile.Size)
	h := float64(g.room.Grid.Height() * tile.Size)
	for _, c := range crossings {
		switch {
		case c.Axis == AxisX && c.Dir < 0:
			g.player.X = 0
		case c.Axis == AxisX:
			g.player.X = w - tile.Size
		case c.Dir > 0:
			g.player.Y = 0
			g.player.Velocity = 0
		default:
			g.player.Y = h - tile.Size
			g.player.Velocity = min(g.player.Velocity, 0)
		}
	}
}

// Tick runs the health cadence: the screen shake settles by a row and the
// player takes one unit of banked damage.
func (g *Game) Tick() actor.Events {
	g.room.DecayBounce()
	if g.paused {
		return 0
	}
	ev := g.player.Tick(g.room)
	if ev.Has(actor.Hurt) {
		g.log.Debug("hurt", "health", g.player.Health, "deficit", g.player.Deficit)
	}
	if ev.Has(actor.Died) {
		g.log.Info("player died", "room", g.coord(), "frames", g.frames)
	}
	return ev
}

// Reload swaps in a new atlas and reloads the current room from it. The
// player keeps its position and health; a room that disappeared sends the
// game back to the start.
func (g *Game) Reload(w *level.World) error {
	if w == nil {
		return errors.New("game: reload with no world")
	}
	old := g.world
	g.world = w
	if !w.Has(g.roomX, g.roomY) {
		g.log.Warn("current room removed by reload", "room", g.coord())
		if err := g.Reset(); err != nil {
			g.world = old
			return err
		}
		return nil
	}
	x, y, health, deficit := g.player.X, g.player.Y, g.player.Health, g.player.Deficit
	if err := g.loadRoom(); err != nil {
		g.world = old
		return err
	}
	g.entering = 0
	g.player.Place(x, y)
	g.player.Health, g.player.Deficit = health, deficit
	g.log.Info("world reloaded", "rooms", w.Len())
	return nil
}

// State returns the snapshot the platform uses for its chrome.
func (g *Game) State() core.GameState {
	return core.GameState{
		Health:   g.player.Health,
		GameOver: g.player.Dead(),
		Paused:   g.paused,
		RoomName: g.data.Title(),
		RoomX:    g.roomX,
		RoomY:    g.roomY,
	}
}

// Player returns the player actor.
func (g *Game) Player() *actor.Actor { return g.player }

// Room returns the loaded room.
func (g *Game) Room() *room.Room { return g.room }

// World returns the atlas in use.
func (g *Game) World() *level.World { return g.world }

// Entering reports whether the room is still frozen after a transition.
func (g *Game) Entering() bool { return g.entering > 0 }

// RoomLabel is the room number shown next to the name, relative to the
// start room.
func (g *Game) RoomLabel() string {
	return fmt.Sprintf("%d:%d", abs(g.roomX-g.rt.StartRoomX), abs(g.roomY-g.rt.StartRoomY))
}

func (g *Game) coord() level.Coord { return level.Coord{X: g.roomX, Y: g.roomY} }

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
