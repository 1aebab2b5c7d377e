package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/survivor/components"
	cfg "github.com/automoto/survivor/config"
	"github.com/automoto/survivor/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// HealthBand is the color class of the health readout.
type HealthBand int

const (
	BandHigh HealthBand = iota
	BandMid
	BandLow
)

// Color returns the configured color for the band.
func (b HealthBand) Color() color.RGBA {
	switch b {
	case BandHigh:
		return cfg.HUD.HighColor
	case BandMid:
		return cfg.HUD.MidColor
	}
	return cfg.HUD.LowColor
}

// HUDValues is everything the HUD shows, already clamped for display.
type HUDValues struct {
	Timer         int
	Score         int
	HealthPercent int
	Band          HealthBand
	Level         int
	Difficulty    string
	GodMode       bool
}

// HUDSnapshot derives display values from the session. Clamping here never
// feeds back into the simulation.
func HUDSnapshot(s *components.SessionData) HUDValues {
	health := max(s.Health, 0)
	return HUDValues{
		Timer:         max(s.Timer, 0),
		Score:         s.Score,
		HealthPercent: health,
		Band:          healthBand(health),
		Level:         s.Level,
		Difficulty:    DifficultyLabel(s.Level),
		GodMode:       s.GodMode,
	}
}

func healthBand(percent int) HealthBand {
	switch {
	case percent > cfg.HUD.HighThreshold:
		return BandHigh
	case percent > cfg.HUD.MidThreshold:
		return BandMid
	}
	return BandLow
}

// DrawHUD renders timer, score, level and the health bar in the top-left corner.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	v := HUDSnapshot(GetOrCreateSession(ecs))
	face := fonts.Regular.Get()

	x := cfg.HUD.Margin
	y := cfg.HUD.Margin

	// Background
	vector.FillRect(screen,
		float32(x), float32(y),
		float32(cfg.HUD.HealthBarWidth), float32(cfg.HUD.HealthBarHeight),
		cfg.HUD.HealthBarBg, false)

	ratio := float32(v.HealthPercent) / float32(cfg.Level.MaxHealth)
	if ratio > 1 {
		ratio = 1
	}
	vector.FillRect(screen,
		float32(x), float32(y),
		float32(cfg.HUD.HealthBarWidth)*ratio, float32(cfg.HUD.HealthBarHeight),
		v.Band.Color(), false)

	text.Draw(screen, fmt.Sprintf("%d%%", v.HealthPercent), face,
		int(x+cfg.HUD.HealthBarWidth+8), int(y+cfg.HUD.HealthBarHeight), cfg.HUD.TextColor)

	lines := []string{
		fmt.Sprintf("Time %d", v.Timer),
		fmt.Sprintf("Score %d", v.Score),
		fmt.Sprintf("Level %d - %s", v.Level+1, v.Difficulty),
	}
	for i, line := range lines {
		lineY := y + cfg.HUD.HealthBarHeight + float64(i+1)*cfg.HUD.LineHeight
		text.Draw(screen, line, face, int(x), int(lineY), cfg.HUD.TextColor)
	}

	if v.GodMode {
		lineY := y + cfg.HUD.HealthBarHeight + float64(len(lines)+1)*cfg.HUD.LineHeight
		text.Draw(screen, "GOD MODE", face, int(x), int(lineY), cfg.HUD.GodModeColor)
	}
}
