package systems

import (
	"fmt"

	"github.com/automoto/survivor/components"
	cfg "github.com/automoto/survivor/config"
	"github.com/automoto/survivor/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// NewUpdateLevelComplete creates the system that handles input on the level
// complete overlay: select advances, back leaves for the menu.
func NewUpdateLevelComplete(sceneChanger SceneChanger, createMenuScene func() interface{}) ecs.System {
	return func(e *ecs.ECS) {
		if !IsLevelComplete(e) {
			return
		}

		input := GetOrCreateInput(e)

		if GetAction(input, cfg.ActionMenuSelect).JustPressed {
			AdvanceLevel(e)
			return
		}
		if GetAction(input, cfg.ActionMenuBack).JustPressed {
			ReturnToMenu(e)
			sceneChanger.ChangeScene(createMenuScene())
		}
	}
}

// IsLevelComplete checks if the level is complete
func IsLevelComplete(e *ecs.ECS) bool {
	return GetOrCreateSession(e).State == cfg.SessionLevelComplete
}

// DrawLevelComplete renders the level complete overlay
func DrawLevelComplete(e *ecs.ECS, screen *ebiten.Image) {
	if !IsLevelComplete(e) {
		return
	}
	s := GetOrCreateSession(e)

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	// Semi-transparent overlay
	vector.FillRect(
		screen,
		0, 0,
		float32(width), float32(height),
		cfg.LevelComplete.OverlayColor,
		false,
	)

	titleFont := fonts.Title.Get()
	title := cfg.LevelComplete.Title
	text.Draw(screen, title, titleFont, centerTextX(title, titleFont, width), int(cfg.LevelComplete.TitleY), cfg.LevelComplete.TitleColor)

	msgFont := fonts.Bold.Get()
	msg := cfg.LevelComplete.Message
	text.Draw(screen, msg, msgFont, centerTextX(msg, msgFont, width), int(cfg.LevelComplete.MessageY), cfg.LevelComplete.TextColor)

	score := fmt.Sprintf("Score %d   Next: %s", s.Score, DifficultyLabel(s.Level+1))
	text.Draw(screen, score, msgFont, centerTextX(score, msgFont, width), int(cfg.LevelComplete.MessageY+cfg.HUD.LineHeight*2), cfg.LevelComplete.TextColor)

	hintFont := fonts.Small.Get()
	hint := getLevelCompleteHint(GetOrCreateInput(e).LastInputMethod)
	text.Draw(screen, hint, hintFont, centerTextX(hint, hintFont, width), int(cfg.LevelComplete.HintY), cfg.LevelComplete.HintColor)
}

// getLevelCompleteHint returns the appropriate hint for level complete screen
func getLevelCompleteHint(method components.InputMethod) string {
	switch method {
	case components.InputPlayStation:
		return "Cross: next level   Circle: menu"
	case components.InputXbox:
		return "A: next level   B: menu"
	}
	return cfg.LevelComplete.ContinueHint
}
