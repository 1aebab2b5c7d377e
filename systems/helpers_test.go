package systems

import (
	"testing"

	"github.com/automoto/survivor/components"
	cfg "github.com/automoto/survivor/config"
	"github.com/automoto/survivor/systems/factory"
	"github.com/automoto/survivor/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/filter"
)

const (
	testWidth  = 800
	testHeight = 600
)

// stubRand replays queued values, then falls back to fixed defaults.
// The default Float64 is high enough that no spawn, drop or melee roll passes.
type stubRand struct {
	floats []float64
	ints   []int
}

func (r *stubRand) Float64() float64 {
	if len(r.floats) == 0 {
		return 0.99
	}
	f := r.floats[0]
	r.floats = r.floats[1:]
	return f
}

func (r *stubRand) Intn(n int) int {
	if len(r.ints) == 0 {
		return 0
	}
	i := r.ints[0]
	r.ints = r.ints[1:]
	return i % n
}

// newTestArena returns a running level-0 arena with the player centered.
func newTestArena(t *testing.T, rng components.Rand) *ecs.ECS {
	t.Helper()
	if rng == nil {
		rng = &stubRand{}
	}
	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateArena(e, testWidth, testHeight, rng)
	if !StartSession(e) {
		t.Fatal("StartSession on a new arena returned false")
	}
	return e
}

// press replaces the held action set for the next frame.
func press(e *ecs.ECS, actions ...cfg.ActionID) {
	input := GetOrCreateInput(e)
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}
	for _, a := range actions {
		input.Current[a] = true
	}
}

func aimAt(e *ecs.ECS, x, y float64) {
	input := GetOrCreateInput(e)
	input.CursorX = x
	input.CursorY = y
}

func playerObject(t *testing.T, e *ecs.ECS) *components.ObjectData {
	t.Helper()
	entry, ok := tags.Player.First(e.World)
	if !ok {
		t.Fatal("no player in world")
	}
	return components.Object.Get(entry)
}

func count(e *ecs.ECS, tag donburi.IComponentType) int {
	return donburi.NewQuery(filter.Contains(tag)).Count(e.World)
}
