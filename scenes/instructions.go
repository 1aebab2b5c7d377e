package scenes

import (
	"log"
	"sync"

	cfg "github.com/automoto/survivor/config"
	"github.com/automoto/survivor/systems"
	"github.com/automoto/survivor/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// InstructionsScene shows the controls page built with ebitenui
type InstructionsScene struct {
	ecs            *ecs.ECS
	sceneChanger   SceneChanger
	instructionsUI *ui.InstructionsUI
	once           sync.Once
	shouldGoBack   bool
}

// NewInstructionsScene creates a new instructions scene
func NewInstructionsScene(sc SceneChanger) *InstructionsScene {
	return &InstructionsScene{sceneChanger: sc}
}

func (is *InstructionsScene) Update() {
	is.once.Do(is.configure)

	is.ecs.Update()
	if is.instructionsUI != nil {
		is.instructionsUI.UI.Update()
	}

	input := systems.GetOrCreateInput(is.ecs)
	if systems.GetAction(input, cfg.ActionMenuBack).JustPressed {
		is.shouldGoBack = true
	}

	if is.shouldGoBack {
		is.sceneChanger.ChangeScene(NewMenuScene(is.sceneChanger))
	}
}

func (is *InstructionsScene) Draw(screen *ebiten.Image) {
	screen.Fill(cfg.Menu.BackgroundColor)

	if is.instructionsUI == nil {
		return
	}
	is.instructionsUI.UI.Draw(screen)
}

func (is *InstructionsScene) configure() {
	is.ecs = ecs.NewECS(donburi.NewWorld())
	is.ecs.AddSystem(systems.UpdateInput)

	iui, err := ui.NewInstructionsUI(func() { is.shouldGoBack = true })
	if err != nil {
		// Keyboard back still works without the page
		log.Printf("Warning: Could not build instructions page: %v", err)
		return
	}
	is.instructionsUI = iui
}
