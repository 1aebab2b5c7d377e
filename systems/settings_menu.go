package systems

import (
	"image/color"

	"github.com/automoto/survivor/components"
	cfg "github.com/automoto/survivor/config"
	"github.com/automoto/survivor/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

const numSettingsOptions = int(components.SettingsOptBack) + 1

// UpdateSettingsMenu handles settings navigation and value changes.
func UpdateSettingsMenu(e *ecs.ECS) {
	settings := GetOrCreateSettingsMenu(e)

	if !settings.IsOpen {
		return
	}

	input := GetOrCreateInput(e)

	if GetAction(input, cfg.ActionMenuUp).JustPressed {
		navigateUp(settings)
	}
	if GetAction(input, cfg.ActionMenuDown).JustPressed {
		navigateDown(settings)
	}
	if GetAction(input, cfg.ActionMenuLeft).JustPressed {
		adjustValue(settings, -1)
	}
	if GetAction(input, cfg.ActionMenuRight).JustPressed {
		adjustValue(settings, +1)
	}
	if GetAction(input, cfg.ActionMenuSelect).JustPressed {
		handleSelect(settings)
	}
	if GetAction(input, cfg.ActionMenuBack).JustPressed {
		closeSettings(settings)
	}
}

// navigateUp moves selection up, skipping hidden options
func navigateUp(s *components.SettingsMenuData) {
	for {
		s.SelectedOption = components.SettingsMenuOption(
			(int(s.SelectedOption) - 1 + numSettingsOptions) % numSettingsOptions,
		)
		if !isOptionHidden(s, s.SelectedOption) {
			break
		}
	}
}

// navigateDown moves selection down, skipping hidden options
func navigateDown(s *components.SettingsMenuData) {
	for {
		s.SelectedOption = components.SettingsMenuOption(
			(int(s.SelectedOption) + 1) % numSettingsOptions,
		)
		if !isOptionHidden(s, s.SelectedOption) {
			break
		}
	}
}

// isOptionHidden returns true if the option should be hidden
func isOptionHidden(s *components.SettingsMenuData, opt components.SettingsMenuOption) bool {
	// Resolution has no effect in fullscreen
	return opt == components.SettingsOptResolution && s.Fullscreen
}

// adjustValue changes the value for the selected option
func adjustValue(s *components.SettingsMenuData, direction int) {
	switch s.SelectedOption {
	case components.SettingsOptFullscreen:
		toggleFullscreen(s)
	case components.SettingsOptResolution:
		cycleResolution(s, direction)
	}
}

// toggleFullscreen toggles fullscreen mode
func toggleFullscreen(s *components.SettingsMenuData) {
	s.Fullscreen = !s.Fullscreen
	ebiten.SetFullscreen(s.Fullscreen)
}

// cycleResolution cycles through available resolutions
func cycleResolution(s *components.SettingsMenuData, direction int) {
	numResolutions := len(cfg.SettingsMenu.Resolutions)
	s.ResolutionIndex = (s.ResolutionIndex + direction + numResolutions) % numResolutions

	res := cfg.SettingsMenu.Resolutions[s.ResolutionIndex]
	ebiten.SetWindowSize(res.Width, res.Height)
}

// handleSelect handles the select/enter action
func handleSelect(s *components.SettingsMenuData) {
	switch s.SelectedOption {
	case components.SettingsOptFullscreen:
		toggleFullscreen(s)
	case components.SettingsOptResolution:
		cycleResolution(s, +1)
	case components.SettingsOptBack:
		closeSettings(s)
	}
}

// closeSettings closes the settings menu and saves settings
func closeSettings(s *components.SettingsMenuData) {
	s.IsOpen = false
	SaveCurrentSettings(s)
}

// DrawSettingsMenu renders the settings overlay.
func DrawSettingsMenu(e *ecs.ECS, screen *ebiten.Image) {
	settings := GetOrCreateSettingsMenu(e)

	if !settings.IsOpen {
		return
	}

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	oc := cfg.SettingsMenu.OverlayColor
	vector.FillRect(
		screen,
		0, 0,
		float32(width), float32(height),
		color.RGBA{R: oc[0], G: oc[1], B: oc[2], A: oc[3]},
		false,
	)

	fontFace := fonts.Bold.Get()
	titleFont := fonts.Title.Get()

	title := "SETTINGS"
	text.Draw(screen, title, titleFont, centerTextX(title, titleFont, width), int(cfg.Menu.TitleY), cfg.Menu.TitleColor)

	optionIndex := 0
	for opt := components.SettingsOptFullscreen; opt <= components.SettingsOptBack; opt++ {
		if isOptionHidden(settings, opt) {
			continue
		}

		y := cfg.SettingsMenu.MenuStartY + float64(optionIndex)*(cfg.SettingsMenu.MenuItemHeight+cfg.SettingsMenu.MenuItemGap)

		textColor := cfg.Menu.TextColorNormal
		if opt == settings.SelectedOption {
			textColor = cfg.Menu.TextColorSelected
		}

		label, value := getOptionDisplay(settings, opt)
		baseline := int(y) + int(cfg.SettingsMenu.MenuItemHeight)
		text.Draw(screen, label, fontFace, int(width/2)-160, baseline, textColor)
		if value != "" {
			text.Draw(screen, value, fontFace, int(width/2)+40, baseline, textColor)
		}

		optionIndex++
	}

	hint := "Arrows: Navigate   Left/Right: Change   Enter: Select   Esc: Back"
	hintFont := fonts.Small.Get()
	text.Draw(screen, hint, hintFont, centerTextX(hint, hintFont, width), int(height)-12, cfg.Menu.TextColorNormal)
}

// getOptionDisplay returns the label and value display for an option
func getOptionDisplay(s *components.SettingsMenuData, opt components.SettingsMenuOption) (string, string) {
	switch opt {
	case components.SettingsOptFullscreen:
		return "Fullscreen", formatToggle(s.Fullscreen)
	case components.SettingsOptResolution:
		if s.ResolutionIndex < len(cfg.SettingsMenu.Resolutions) {
			return "Resolution", cfg.SettingsMenu.Resolutions[s.ResolutionIndex].Label
		}
		return "Resolution", "Unknown"
	case components.SettingsOptBack:
		return "< Back", ""
	default:
		return "", ""
	}
}

// formatToggle formats a boolean as On/Off
func formatToggle(value bool) string {
	if value {
		return "[X] On"
	}
	return "[ ] Off"
}

// GetOrCreateSettingsMenu returns the singleton SettingsMenu component, creating if needed.
func GetOrCreateSettingsMenu(e *ecs.ECS) *components.SettingsMenuData {
	if _, ok := components.SettingsMenu.First(e.World); !ok {
		ent := e.World.Entry(e.World.Create(components.SettingsMenu))
		components.SettingsMenu.SetValue(ent, components.SettingsMenuData{
			SelectedOption:  components.SettingsOptFullscreen,
			Fullscreen:      currentSettings.Fullscreen,
			ResolutionIndex: currentSettings.ResolutionIndex,
		})
	}

	ent, _ := components.SettingsMenu.First(e.World)
	return components.SettingsMenu.Get(ent)
}

// OpenSettings opens the settings overlay
func OpenSettings(e *ecs.ECS) {
	settings := GetOrCreateSettingsMenu(e)
	settings.IsOpen = true
	settings.SelectedOption = components.SettingsOptFullscreen
	settings.Fullscreen = ebiten.IsFullscreen()
}

// IsSettingsOpen returns true if the settings menu is currently open
func IsSettingsOpen(e *ecs.ECS) bool {
	return GetOrCreateSettingsMenu(e).IsOpen
}
