package systems

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/automoto/survivor/components"
	cfg "github.com/automoto/survivor/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/quasilyte/gdata"
)

const settingsKey = "settings"

// SavedSettings represents the settings data stored on disk
type SavedSettings struct {
	Fullscreen      bool `json:"fullscreen"`
	ResolutionIndex int  `json:"resolutionIndex"`
}

// settingsStore is the part of *gdata.Manager the game uses.
type settingsStore interface {
	LoadItem(itemKey string) ([]byte, error)
	SaveItem(itemKey string, data []byte) error
}

var store settingsStore

// currentSettings seeds new settings menus with the last applied values.
var currentSettings = SavedSettings{
	ResolutionIndex: cfg.SettingsMenu.DefaultResolutionIndex,
}

// InitPersistence initializes the gdata manager for settings storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "arena_survivor",
	})
	if err != nil {
		return fmt.Errorf("open settings storage: %w", err)
	}
	store = m
	return nil
}

// LoadSettings loads settings from disk. A missing or unreadable item yields nil.
func LoadSettings() (*SavedSettings, error) {
	if store == nil {
		return nil, nil
	}

	data, err := store.LoadItem(settingsKey)
	if err != nil {
		log.Printf("Warning: Could not load settings: %v", err)
		return nil, nil
	}
	if len(data) == 0 {
		// No saved settings yet, use defaults
		return nil, nil
	}

	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("parse saved settings: %w", err)
	}
	if settings.ResolutionIndex < 0 || settings.ResolutionIndex >= len(cfg.SettingsMenu.Resolutions) {
		settings.ResolutionIndex = cfg.SettingsMenu.DefaultResolutionIndex
	}

	return &settings, nil
}

// SaveSettings saves settings to disk
func SaveSettings(s *SavedSettings) error {
	if store == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("serialize settings: %w", err)
	}

	if err := store.SaveItem(settingsKey, data); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}

// SaveCurrentSettings saves the current settings from the SettingsMenuData component
func SaveCurrentSettings(s *components.SettingsMenuData) {
	currentSettings = SavedSettings{
		Fullscreen:      s.Fullscreen,
		ResolutionIndex: s.ResolutionIndex,
	}
	if err := SaveSettings(&currentSettings); err != nil {
		log.Printf("Warning: %v", err)
	}
}

// ApplySavedSettings applies loaded settings to the window.
// Used during startup before any scene exists.
func ApplySavedSettings(saved *SavedSettings) {
	if saved == nil {
		return
	}
	currentSettings = *saved

	ebiten.SetFullscreen(saved.Fullscreen)

	// Window size only matters outside fullscreen
	if !saved.Fullscreen && saved.ResolutionIndex < len(cfg.SettingsMenu.Resolutions) {
		res := cfg.SettingsMenu.Resolutions[saved.ResolutionIndex]
		ebiten.SetWindowSize(res.Width, res.Height)
	}
}
