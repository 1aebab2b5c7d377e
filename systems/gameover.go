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

// NewUpdateGameOver creates the game over menu system. Retry restarts the
// level in place; Main Menu parks the session and leaves the scene.
func NewUpdateGameOver(sceneChanger SceneChanger, createMenuScene func() interface{}) ecs.System {
	return func(e *ecs.ECS) {
		if !IsGameOver(e) {
			return
		}

		gameOver := GetOrCreateGameOver(e)
		input := GetOrCreateInput(e)

		// Navigate menu with wrap-around using modulo arithmetic
		numOptions := int(components.GameOverMenu) + 1
		if GetAction(input, cfg.ActionMenuUp).JustPressed {
			gameOver.SelectedOption = components.GameOverOption(
				(int(gameOver.SelectedOption) - 1 + numOptions) % numOptions,
			)
		}
		if GetAction(input, cfg.ActionMenuDown).JustPressed {
			gameOver.SelectedOption = components.GameOverOption(
				(int(gameOver.SelectedOption) + 1) % numOptions,
			)
		}

		if GetAction(input, cfg.ActionMenuSelect).JustPressed {
			switch gameOver.SelectedOption {
			case components.GameOverRetry:
				StartSession(e)
			case components.GameOverMenu:
				ReturnToMenu(e)
				sceneChanger.ChangeScene(createMenuScene())
			}
			gameOver.SelectedOption = components.GameOverRetry
		}
	}
}

// IsGameOver checks if the session ended in a loss
func IsGameOver(e *ecs.ECS) bool {
	return GetOrCreateSession(e).State == cfg.SessionGameOver
}

// DrawGameOver renders the game over screen
func DrawGameOver(e *ecs.ECS, screen *ebiten.Image) {
	if !IsGameOver(e) {
		return
	}
	gameOver := GetOrCreateGameOver(e)
	s := GetOrCreateSession(e)

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	vector.FillRect(
		screen,
		0, 0,
		float32(width), float32(height),
		cfg.GameOver.BackgroundColor,
		false,
	)

	titleFont := fonts.Title.Get()
	title := "GAME OVER"
	text.Draw(screen, title, titleFont, centerTextX(title, titleFont, width), int(cfg.GameOver.TitleY), cfg.GameOver.TitleColor)

	menuFont := fonts.Bold.Get()
	score := fmt.Sprintf("Final score: %d", s.FinalScore)
	text.Draw(screen, score, menuFont, centerTextX(score, menuFont, width), int(cfg.GameOver.ScoreY), cfg.GameOver.TextColorNormal)

	for i, option := range cfg.GameOver.MenuOptions {
		y := cfg.GameOver.MenuStartY + float64(i)*(cfg.GameOver.MenuItemHeight+cfg.GameOver.MenuItemGap)

		textColor := cfg.GameOver.TextColorNormal
		if components.GameOverOption(i) == gameOver.SelectedOption {
			textColor = cfg.GameOver.TextColorSelected
		}

		text.Draw(screen, option, menuFont, centerTextX(option, menuFont, width), int(y)+int(cfg.GameOver.MenuItemHeight), textColor)
	}
}

// GetOrCreateGameOver returns the singleton GameOver component, creating if needed
func GetOrCreateGameOver(e *ecs.ECS) *components.GameOverData {
	if _, ok := components.GameOver.First(e.World); !ok {
		ent := e.World.Entry(e.World.Create(components.GameOver))
		components.GameOver.SetValue(ent, components.GameOverData{
			SelectedOption: components.GameOverRetry,
		})
	}

	ent, _ := components.GameOver.First(e.World)
	return components.GameOver.Get(ent)
}
