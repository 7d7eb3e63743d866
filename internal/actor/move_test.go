package actor

import (
	"testing"

	"github.com/yohamta/donburi"

	"github.com/vovakirdan/tui-palace/internal/core"
	"github.com/vovakirdan/tui-palace/internal/object"
	"github.com/vovakirdan/tui-palace/internal/room"
	"github.com/vovakirdan/tui-palace/internal/tile"
)

// frame is a power-of-two step so per-frame motion stays exact.
const frame = 1.0 / 64

// layout builds a room from rows of characters, top row first:
// '#' solid, 'H' ladder, '^' spikes, 's' spring, 'r' rope, 'e' rope end,
// anything else empty.
func layout(t *testing.T, rows ...string) *room.Room {
	t.Helper()
	tiles := make([][]int, len(rows))
	codes := make([][]int, len(rows))
	for y, row := range rows {
		for _, ch := range row {
			tileCode, code := 0, 0
			switch ch {
			case '#':
				tileCode = 2
			case 'H':
				tileCode = 8
			case '^':
				tileCode = 1
			case 's':
				code = object.CodeSpring
			case 'r':
				code = object.CodeRope
			case 'e':
				code = object.CodeRopeEnd
			}
			tiles[y] = append(tiles[y], tileCode)
			codes[y] = append(codes[y], code)
		}
	}
	g, err := tile.NewGrid(tiles, codes)
	if err != nil {
		t.Fatalf("NewGrid() error = %v", err)
	}
	rm := room.New(object.DefaultParams(), nil)
	rm.Load(g)
	return rm
}

func flatRoom(t *testing.T) *room.Room {
	return layout(t,
		"......",
		"......",
		"......",
		"......",
		"......",
		"######",
	)
}

func TestGravityAcceleratesFall(t *testing.T) {
	rm := layout(t,
		"......",
		"......",
		"......",
		"......",
	)
	a := New(32, 100, DefaultParams())

	lastV, lastY := a.Velocity, a.Y
	for i := 0; i < 10; i++ {
		a.Move(rm, Input{}, frame)
		if a.Velocity >= lastV {
			t.Fatalf("frame %d: Velocity = %v, expected below %v", i, a.Velocity, lastV)
		}
		if a.Y > lastY {
			t.Fatalf("frame %d: Y = %v, expected at most %v", i, a.Y, lastY)
		}
		lastV, lastY = a.Velocity, a.Y
	}
	if a.Pose().Motion != Airborne {
		t.Errorf("Pose().Motion = %v, expected airborne", a.Pose().Motion)
	}
}

func TestFallDamage(t *testing.T) {
	tests := []struct {
		name        string
		y, v        float64
		wantDeficit int
		wantBounce  int
	}{
		{name: "at threshold", y: 36, v: -8, wantDeficit: 0, wantBounce: 0},
		{name: "one past threshold", y: 40, v: -9, wantDeficit: 3, wantBounce: 1},
		{name: "hard landing", y: 40, v: -12, wantDeficit: 12, wantBounce: 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rm := flatRoom(t)
			a := New(32, tt.y, DefaultParams())
			a.Velocity = tt.v

			a.Move(rm, Input{}, 0)

			if a.Y != 32 {
				t.Errorf("Y = %v, expected 32", a.Y)
			}
			if a.Velocity != 0 {
				t.Errorf("Velocity = %v, expected 0", a.Velocity)
			}
			if a.Deficit != tt.wantDeficit {
				t.Errorf("Deficit = %d, expected %d", a.Deficit, tt.wantDeficit)
			}
			if rm.Bounce != tt.wantBounce {
				t.Errorf("Bounce = %d, expected %d", rm.Bounce, tt.wantBounce)
			}
			if a.Support().Kind != Ground {
				t.Errorf("Support().Kind = %v, expected ground", a.Support().Kind)
			}
		})
	}
}

func TestFallLandsOnFloor(t *testing.T) {
	rm := flatRoom(t)
	a := New(32, 100, DefaultParams())

	var landed bool
	for i := 0; i < 200 && !landed; i++ {
		landed = a.Move(rm, Input{}, frame).Has(Landed)
	}
	if !landed {
		t.Fatal("never landed")
	}
	if a.Y != 32 {
		t.Errorf("Y = %v, expected 32", a.Y)
	}
	if a.Pose().Motion == Airborne {
		t.Error("still airborne after landing")
	}
	if a.Deficit != 0 {
		t.Errorf("Deficit = %d, expected 0 for a short fall", a.Deficit)
	}
}

func TestStandingStaysOnFloor(t *testing.T) {
	rm := flatRoom(t)
	a := New(32, 32, DefaultParams())

	for i := 0; i < 30; i++ {
		a.Move(rm, Input{}, frame)
	}
	if a.Y != 32 || a.Velocity != 0 {
		t.Errorf("(Y, Velocity) = (%v, %v), expected (32, 0)", a.Y, a.Velocity)
	}
	if a.Pose() != (Pose{Facing: FacingRight, Motion: Idle}) {
		t.Errorf("Pose() = %+v, expected idle right", a.Pose())
	}
}

func TestNoDoubleJump(t *testing.T) {
	rm := flatRoom(t)
	p := DefaultParams()
	a := New(32, 32, p)

	ev := a.Move(rm, Input{Jump: true}, frame)
	if !ev.Has(Jumped) {
		t.Fatalf("first jump events = %v, expected jumped", ev)
	}
	if a.Velocity != p.JumpForce {
		t.Fatalf("Velocity = %v, expected %v", a.Velocity, p.JumpForce)
	}

	for i := 0; i < 5; i++ {
		ev = a.Move(rm, Input{Jump: true}, frame)
		if ev.Has(Jumped) {
			t.Fatalf("frame %d: jumped again in the air", i)
		}
	}
	if a.Velocity >= p.JumpForce {
		t.Errorf("Velocity = %v, expected gravity to slow the jump", a.Velocity)
	}
}

func TestHorizontalSnapsToWall(t *testing.T) {
	rm := layout(t,
		"......",
		"......",
		"...#..",
		"######",
	)
	tests := []struct {
		name       string
		x, dx      float64
		wantX      float64
		wantFacing Facing
	}{
		{name: "right into wall", x: 65, dx: frame, wantX: 66, wantFacing: FacingRight},
		{name: "left into wall", x: 128, dx: -frame, wantX: 126, wantFacing: FacingLeft},
		{name: "right in the open", x: 0, dx: frame, wantX: 2.8125, wantFacing: FacingRight},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := New(tt.x, 32, DefaultParams())
			a.Move(rm, Input{DX: tt.dx}, frame)

			if a.X != tt.wantX {
				t.Errorf("X = %v, expected %v", a.X, tt.wantX)
			}
			if a.Pose().Facing != tt.wantFacing {
				t.Errorf("Facing = %v, expected %v", a.Pose().Facing, tt.wantFacing)
			}
			if a.Pose().Motion != Walk {
				t.Errorf("Motion = %v, expected walk", a.Pose().Motion)
			}
		})
	}
}

func TestSnappedEdgeMeetsWall(t *testing.T) {
	rm := layout(t,
		"......",
		"...#..",
		"######",
	)
	a := New(60, 32, DefaultParams())
	ox, rw, _ := a.rect()

	for i := 0; i < 10; i++ {
		a.Move(rm, Input{DX: frame}, frame)
	}
	if right := a.X + ox + rw + 1; right != 96 {
		t.Errorf("right edge = %v, expected the wall's left side 96", right)
	}
}

func TestSpringGainedOnceAndCarried(t *testing.T) {
	rm := layout(t,
		"......",
		"......",
		"......",
		"......",
		".s....",
		"######",
	)
	a := New(32, 57, DefaultParams())
	a.Velocity = -2

	gained := 0
	for i := 0; i < 3; i++ {
		ev := a.Move(rm, Input{}, frame)
		if ev.Has(GainedSupport) {
			gained++
		}
		if a.Support().Kind != Carried {
			t.Fatalf("frame %d: Support().Kind = %v, expected carried", i, a.Support().Kind)
		}
		if a.Y != 56 {
			t.Errorf("frame %d: Y = %v, expected 56", i, a.Y)
		}
	}
	if gained != 1 {
		t.Errorf("gained support %d times, expected 1", gained)
	}
}

func TestSpringBoostsJump(t *testing.T) {
	rm := layout(t,
		"......",
		"......",
		"......",
		"......",
		".s....",
		"######",
	)
	p := DefaultParams()
	a := New(32, 57, p)
	a.Velocity = -6

	a.Move(rm, Input{}, 0)
	spring, ok := rm.Resolve(a.Support().Handle)
	if !ok {
		t.Fatal("support does not resolve")
	}
	sb := spring.(*object.SpringBoard)
	if sb.Kinetic() != 4 {
		t.Fatalf("Kinetic() = %v, expected 4", sb.Kinetic())
	}
	if a.Y != 44 {
		t.Fatalf("Y = %v, expected the compressed rest height 44", a.Y)
	}

	ev := a.Move(rm, Input{Jump: true}, 0)
	if !ev.Has(Jumped | LostSupport) {
		t.Errorf("events = %v, expected jumped and lost-support", ev)
	}
	if want := p.JumpForce + 4; a.Velocity != want {
		t.Errorf("Velocity = %v, expected %v", a.Velocity, want)
	}
	if sb.Kinetic() != 0 {
		t.Errorf("Kinetic() = %v, expected 0 after release", sb.Kinetic())
	}
	if a.Support().Kind != Unsupported {
		t.Errorf("Support().Kind = %v, expected unsupported", a.Support().Kind)
	}
}

func TestDanglingSupportIsDropped(t *testing.T) {
	rm := layout(t,
		"......",
		"......",
		"......",
		"......",
		".s....",
		"######",
	)
	a := New(32, 57, DefaultParams())
	a.Velocity = -2
	a.Move(rm, Input{}, frame)
	if a.Support().Kind != Carried {
		t.Fatalf("Support().Kind = %v, expected carried", a.Support().Kind)
	}

	rm.Remove(a.Support().Handle)
	ev := a.Move(rm, Input{}, frame)

	if !ev.Has(LostSupport) {
		t.Errorf("events = %v, expected lost-support", ev)
	}
	if ev.Has(GainedSupport) {
		t.Errorf("events = %v, expected no gained-support", ev)
	}
	if a.Support().Kind != Unsupported {
		t.Errorf("Support().Kind = %v, expected unsupported", a.Support().Kind)
	}
	if a.Y >= 56 {
		t.Errorf("Y = %v, expected to start falling", a.Y)
	}
}

func TestClimb(t *testing.T) {
	rm := layout(t,
		"......",
		"......",
		".H....",
		".H....",
		"######",
	)

	t.Run("up", func(t *testing.T) {
		a := New(32, 32, DefaultParams())
		ev := a.Move(rm, Input{DY: frame, Jump: true}, frame)

		if want := 32 + a.Params().Speed*frame; a.Y != want {
			t.Errorf("Y = %v, expected %v", a.Y, want)
		}
		if ev.Has(Jumped) {
			t.Error("jumped while climbing")
		}
		if a.Pose() != (Pose{Facing: FacingClimb, Motion: Walk}) {
			t.Errorf("Pose() = %+v, expected climbing walk", a.Pose())
		}
	})

	t.Run("hang", func(t *testing.T) {
		a := New(32, 40, DefaultParams())
		for i := 0; i < 10; i++ {
			a.Move(rm, Input{}, frame)
		}
		if a.Y != 40 || a.Velocity != 0 {
			t.Errorf("(Y, Velocity) = (%v, %v), expected (40, 0)", a.Y, a.Velocity)
		}
	})

	t.Run("jump off", func(t *testing.T) {
		a := New(32, 40, DefaultParams())
		ev := a.Move(rm, Input{Jump: true}, frame)
		if !ev.Has(Jumped) {
			t.Errorf("events = %v, expected jumped", ev)
		}
	})
}

// ledge is a flat support whose rest height is Anchor()+Level().
type ledge struct {
	rect    core.Rect
	level   float64
	carried int
}

func (l *ledge) Caps() object.Caps         { return object.Caps{Supports: true} }
func (l *ledge) HitTest(q core.Rect) bool  { return q.Intersects(l.rect) }
func (l *ledge) Bounds() core.Rect         { return l.rect }
func (l *ledge) Update(float64)            {}
func (l *ledge) Anchor() float64           { return l.rect.Y }
func (l *ledge) Level() float64            { return l.level }
func (l *ledge) SupportActor(b *core.Body) { l.carried++; b.Y = l.rect.Y + l.level; b.Velocity = 0 }

func TestSupportSearchPicksHighestRest(t *testing.T) {
	low := func() *ledge { return &ledge{rect: core.NewRect(32, 40, 32, 10), level: 10} }
	high := func() *ledge { return &ledge{rect: core.NewRect(32, 44, 32, 16), level: 16} }

	tests := []struct {
		name   string
		ledges []*ledge
		winner int
	}{
		{"higher spawned first", []*ledge{high(), low()}, 0},
		{"higher spawned last", []*ledge{low(), high()}, 1},
		{"tie goes to the first spawned", []*ledge{high(), high()}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rm := layout(t,
				"......",
				"......",
				"......",
				"......",
				"......",
				"......",
			)
			var handles []donburi.Entity
			for _, l := range tt.ledges {
				handles = append(handles, rm.Spawn(l, object.Background))
			}
			a := New(32, 70, DefaultParams())
			a.Velocity = -20

			ev := a.Move(rm, Input{}, frame)

			if !ev.Has(GainedSupport) {
				t.Errorf("events = %v, expected gained-support", ev)
			}
			if a.Support().Kind != Carried || a.Support().Handle != handles[tt.winner] {
				t.Errorf("Support() = %+v, expected ledge %d", a.Support(), tt.winner)
			}
			if a.Y != 60 || a.Velocity != 0 {
				t.Errorf("(Y, Velocity) = (%v, %v), expected (60, 0)", a.Y, a.Velocity)
			}
			for i, l := range tt.ledges {
				want := 0
				if i == tt.winner {
					want = 1
				}
				if l.carried != want {
					t.Errorf("ledge %d carried %d times, expected %d", i, l.carried, want)
				}
			}
		})
	}
}

func TestClimbRope(t *testing.T) {
	tests := []struct {
		name   string
		x      float64
		in     Input
		wantY  float64
		falls  bool
		motion Motion
	}{
		{"up", 32, Input{DY: frame}, 140 + 180*frame, false, Walk},
		{"down", 32, Input{DY: -frame}, 140 - 180*frame, false, Walk},
		{"hang", 32, Input{}, 140, false, Idle},
		{"beside the rope", 128, Input{DY: frame}, 0, true, Airborne},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rm := layout(t,
				".r....",
				"......",
				"......",
				".e....",
				"......",
				"######",
			)
			rm.Update(0.5) // 60 units of rope out, covering y 132..192
			a := New(tt.x, 140, DefaultParams())

			a.Move(rm, tt.in, frame)

			if tt.falls {
				if a.Y >= 140 || a.Velocity >= 0 {
					t.Errorf("(Y, Velocity) = (%v, %v), expected a fall", a.Y, a.Velocity)
				}
			} else {
				if a.Y != tt.wantY {
					t.Errorf("Y = %v, expected %v", a.Y, tt.wantY)
				}
				if a.Velocity != 0 {
					t.Errorf("Velocity = %v, expected 0 on the rope", a.Velocity)
				}
			}
			if a.Pose().Motion != tt.motion {
				t.Errorf("Pose().Motion = %v, expected %v", a.Pose().Motion, tt.motion)
			}
			if tt.in.DY != 0 && !tt.falls && a.Pose().Facing != FacingClimb {
				t.Errorf("Pose().Facing = %v, expected climbing", a.Pose().Facing)
			}
		})
	}
}

func TestHeadBump(t *testing.T) {
	p := DefaultParams()
	tests := []struct {
		name     string
		rows     []string
		wantY    float64
		wantVel  float64
		bumpHead bool
	}{
		{
			name:     "low ceiling",
			rows:     []string{"......", "######", "......", "######"},
			wantY:    32,
			wantVel:  0,
			bumpHead: true,
		},
		{
			name:    "open above",
			rows:    []string{"......", "......", "......", "######"},
			wantY:   32 + (p.JumpForce - p.Gravity*frame),
			wantVel: p.JumpForce - p.Gravity*frame,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rm := layout(t, tt.rows...)
			a := New(32, 32, p)

			a.Move(rm, Input{}, frame)
			if a.Support().Kind != Ground {
				t.Fatalf("Support().Kind = %v, expected ground before the jump", a.Support().Kind)
			}
			if ev := a.Move(rm, Input{Jump: true}, frame); !ev.Has(Jumped) {
				t.Fatalf("events = %v, expected a jump", ev)
			}

			a.Move(rm, Input{}, frame)

			if a.Y != tt.wantY || a.Velocity != tt.wantVel {
				t.Errorf("(Y, Velocity) = (%v, %v), expected (%v, %v)", a.Y, a.Velocity, tt.wantY, tt.wantVel)
			}
			if a.Support().Kind != Unsupported {
				t.Errorf("Support().Kind = %v, expected unsupported", a.Support().Kind)
			}
			if tt.bumpHead && a.Y+p.Height > 64 {
				t.Errorf("top = %v, expected to stay below the ceiling at 64", a.Y+p.Height)
			}
		})
	}
}
