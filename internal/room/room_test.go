package room

import (
	"testing"

	"github.com/vovakirdan/tui-palace/internal/core"
	"github.com/vovakirdan/tui-palace/internal/object"
	"github.com/vovakirdan/tui-palace/internal/tile"
)

// pole is a static climbable used to exercise the arena directly.
type pole struct{ rect core.Rect }

func (p *pole) Caps() object.Caps        { return object.Caps{Climbable: true} }
func (p *pole) HitTest(q core.Rect) bool { return p.rect.Intersects(q) }
func (p *pole) Bounds() core.Rect        { return p.rect }
func (p *pole) Update(float64)           {}

func loadedRoom(t *testing.T) *Room {
	t.Helper()
	tiles := [][]int{
		{0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0},
		{2, 2, 2, 2, 2, 2},
	}
	codes := [][]int{
		{0, 0, 0, 0, 0, 0},
		{object.CodeBlocker, object.CodeSpring, 0, object.CodeCrawler, 0, object.CodeBlocker},
		{0, 0, 0, 0, 0, 0},
	}
	g, err := tile.NewGrid(tiles, codes)
	if err != nil {
		t.Fatalf("NewGrid() error = %v", err)
	}
	r := New(object.DefaultParams(), nil)
	r.Load(g)
	return r
}

func TestLoadSpawnsFromCodes(t *testing.T) {
	r := loadedRoom(t)

	if r.Len() != 2 {
		t.Fatalf("Len() = %d, expected 2", r.Len())
	}
	bg := r.Objects(object.Background)
	if len(bg) != 1 {
		t.Fatalf("background has %d objects, expected 1", len(bg))
	}
	spring, ok := bg[0].(*object.SpringBoard)
	if !ok {
		t.Fatalf("background[0] is %T, expected *object.SpringBoard", bg[0])
	}
	if spring.X != 32 || spring.Y != 32 {
		t.Errorf("spring at (%v, %v), expected (32, 32)", spring.X, spring.Y)
	}
	if sprites := r.Objects(object.Sprites); len(sprites) != 1 {
		t.Errorf("sprites has %d objects, expected 1", len(sprites))
	}
}

func TestSupportsRunsExactHitTest(t *testing.T) {
	r := loadedRoom(t)

	hits := r.Supports(core.NewRect(44, 40, 10, 10))
	if len(hits) != 1 {
		t.Fatalf("Supports() returned %d handles, expected 1", len(hits))
	}
	obj, ok := r.Resolve(hits[0])
	if !ok {
		t.Fatal("Resolve() failed for a live handle")
	}
	if _, isSpring := obj.(*object.SpringBoard); !isSpring {
		t.Errorf("support is %T, expected the spring", obj)
	}

	// Inside the spring's bounds but left of its platform.
	if hits := r.Supports(core.NewRect(34, 40, 4, 4)); len(hits) != 0 {
		t.Errorf("Supports() = %v, expected the exact test to reject the probe", hits)
	}
}

func TestSupportsKeepSpawnOrder(t *testing.T) {
	r := loadedRoom(t)
	a := r.Spawn(object.NewSpringBoard(64, 32, object.DefaultParams()), object.Background)
	b := r.Spawn(object.NewSpringBoard(64, 32, object.DefaultParams()), object.Background)

	hits := r.Supports(core.NewRect(72, 40, 4, 4))
	if len(hits) != 2 || hits[0] != a || hits[1] != b {
		t.Errorf("Supports() = %v, expected [%v %v]", hits, a, b)
	}
}

func TestHazardsFollowUpdatedObjects(t *testing.T) {
	r := loadedRoom(t)

	if !r.AnyHurtful(core.NewRect(104, 40, 4, 4)) {
		t.Fatal("crawler should be hurtful at its spawn cell")
	}
	r.Update(0.5)
	if r.AnyHurtful(core.NewRect(104, 40, 4, 4)) {
		t.Error("crawler moved away, spawn cell should be safe")
	}
	if !r.AnyHurtful(core.NewRect(44, 40, 4, 4)) {
		t.Error("crawler should be found at its new position")
	}
	if r.AnyClimbable(core.NewRect(44, 40, 4, 4)) {
		t.Error("nothing climbable was spawned")
	}
}

func TestRemovedHandleNoLongerResolves(t *testing.T) {
	r := loadedRoom(t)
	h := r.Spawn(&pole{rect: core.NewRect(160, 32, 4, 64)}, object.Background)

	if !r.AnyClimbable(core.NewRect(150, 40, 20, 10)) {
		t.Fatal("pole should be climbable")
	}
	r.Remove(h)
	if _, ok := r.Resolve(h); ok {
		t.Error("Resolve() succeeded for a removed handle")
	}
	if r.AnyClimbable(core.NewRect(150, 40, 20, 10)) {
		t.Error("removed pole is still climbable")
	}
	r.Remove(h) // second removal is a no-op
}

func TestReloadInvalidatesHandles(t *testing.T) {
	r := loadedRoom(t)
	old := r.Supports(core.NewRect(44, 40, 10, 10))
	if len(old) != 1 {
		t.Fatalf("Supports() returned %d handles, expected 1", len(old))
	}

	r.Load(r.Grid)

	if _, ok := r.Resolve(old[0]); ok {
		t.Error("handle from the previous layout still resolves")
	}
	if r.Len() != 2 {
		t.Errorf("Len() = %d after reload, expected 2", r.Len())
	}
}

func TestBounce(t *testing.T) {
	r := New(object.DefaultParams(), nil)

	r.ShakeFromDamage(3)
	if r.Bounce != 1 {
		t.Errorf("Bounce = %d, expected 1", r.Bounce)
	}
	r.ShakeFromDamage(30)
	if r.Bounce != MaxBounce {
		t.Errorf("Bounce = %d, expected cap %d", r.Bounce, MaxBounce)
	}
	for i := 0; i < 10; i++ {
		r.DecayBounce()
	}
	if r.Bounce != 0 {
		t.Errorf("Bounce = %d, expected to settle at 0", r.Bounce)
	}
}

func TestQueriesBeforeLoadFindNothing(t *testing.T) {
	r := New(object.DefaultParams(), nil)
	if r.AnyClimbable(core.NewRect(0, 0, 100, 100)) || len(r.Supports(core.NewRect(0, 0, 100, 100))) != 0 {
		t.Error("an unloaded room should report no objects")
	}
}
