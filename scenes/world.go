package scenes

import (
	"image/color"
	"sync"

	cfg "github.com/automoto/survivor/config"
	"github.com/automoto/survivor/systems"
	"github.com/automoto/survivor/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ArenaScene runs one session: play, level complete overlay and game over screen.
type ArenaScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	once         sync.Once
}

// NewArenaScene creates a new arena scene starting at level 0
func NewArenaScene(sc SceneChanger) *ArenaScene {
	return &ArenaScene{sceneChanger: sc}
}

func (as *ArenaScene) Update() {
	as.once.Do(as.configure)
	as.ecs.Update()
}

func (as *ArenaScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if as.ecs == nil {
		return
	}
	as.ecs.Draw(screen)
}

func (as *ArenaScene) configure() {
	as.ecs = ecs.NewECS(donburi.NewWorld())

	// A new game from the menu starts at level 0 with god mode off. Retry keeps both.
	factory.CreateArena(as.ecs, float64(cfg.C.Width), float64(cfg.C.Height), systems.NewRand(cfg.Debug.Seed))

	createMenuScene := func() interface{} {
		return NewMenuScene(as.sceneChanger)
	}

	// Input snapshot first so every simulation phase sees the same frame
	as.ecs.AddSystem(systems.UpdateInput)
	as.ecs.AddSystem(systems.Step)
	as.ecs.AddSystem(systems.WithRunningCheck(systems.UpdateEffects))

	// Overlays handle their own state checks
	as.ecs.AddSystem(systems.NewUpdateLevelComplete(as.sceneChanger, createMenuScene))
	as.ecs.AddSystem(systems.NewUpdateGameOver(as.sceneChanger, createMenuScene))

	as.ecs.AddRenderer(cfg.Default, systems.DrawArena)
	as.ecs.AddRenderer(cfg.Default, systems.DrawHUD)
	as.ecs.AddRenderer(cfg.Default, systems.DrawLevelComplete)
	as.ecs.AddRenderer(cfg.Default, systems.DrawGameOver)
	as.ecs.AddRenderer(cfg.Default, systems.DrawDebug)

	systems.StartSession(as.ecs)
}
