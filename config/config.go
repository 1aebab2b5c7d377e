package config

import (
	"image/color"

	"github.com/yohamta/donburi/ecs"
)

// Default is the only render layer used by the scenes.
const Default ecs.LayerID = 0

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	Radius          float64
	Speed           float64
	DashSpeed       float64
	DashCooldownMax int // frames
	Color           color.RGBA
	GodModeColor    color.RGBA
	DamageColor     color.RGBA

	// Triangle drawn around the player center, in local (unrotated) space
	NoseLength float64
	TailLength float64
	HalfWidth  float64
}

// BulletConfig contains projectile configuration
type BulletConfig struct {
	Speed  float64
	Radius float64
	Color  color.RGBA
}

// EnemyTypeConfig contains configuration for one enemy behavior
type EnemyTypeConfig struct {
	Name  string
	Color color.RGBA
}

// EnemyConfig contains enemy stats and their per-level scaling
type EnemyConfig struct {
	Radius         float64
	BaseSpeed      float64
	SpeedPerLevel  float64
	BaseHealth     int
	HealthPerLevel int
	ContactDamage  int
	KillScore      int
	MeleeChance    float64 // probability a spawned enemy is melee
	PowerupChance  float64 // probability a killed enemy drops a powerup
	MinChaseDist   float64 // melee enemies stop stepping inside this distance
	Types          map[string]EnemyTypeConfig
}

// PowerupConfig contains pickup configuration
type PowerupConfig struct {
	Radius     float64
	HealAmount int
	Color      color.RGBA
	Duration   int // frames, carried on the pickup but never counted down
	Lifetime   int // frames, carried on the pickup but never counted down

	// Cosmetic pulse
	PulseScale    float32
	PulseDuration float32 // seconds per half cycle
}

// LevelConfig contains run rules: timer, health, spawn rates
type LevelConfig struct {
	StartHealth       int
	MaxHealth         int
	TimerSeconds      int
	FramesPerSecond   int
	DamageFlashFrames int
	SpawnBaseChance   float64
	SpawnPerLevel     float64

	// Labels shown next to the level number. Purely cosmetic.
	DifficultyLabels []string
}

// HUDConfig contains HUD layout and the health color bands
type HUDConfig struct {
	Margin          float64
	LineHeight      float64
	HealthBarWidth  float64
	HealthBarHeight float64
	HealthBarBg     color.RGBA
	TextColor       color.RGBA
	GodModeColor    color.RGBA

	// Health percent above HighThreshold uses HighColor, above MidThreshold MidColor, else LowColor
	HighThreshold int
	MidThreshold  int
	HighColor     color.RGBA
	MidColor      color.RGBA
	LowColor      color.RGBA
}

// MenuConfig contains main menu configuration values
type MenuConfig struct {
	Title             string
	BackgroundColor   color.RGBA
	TitleColor        color.RGBA
	TextColorNormal   color.RGBA
	TextColorSelected color.RGBA
	TitleY            float64
	MenuStartY        float64
	MenuItemHeight    float64
	MenuItemGap       float64
}

// GameOverConfig contains game over screen configuration values
type GameOverConfig struct {
	BackgroundColor   color.RGBA
	TitleColor        color.RGBA
	TextColorNormal   color.RGBA
	TextColorSelected color.RGBA
	TitleY            float64
	ScoreY            float64
	MenuStartY        float64
	MenuItemHeight    float64
	MenuItemGap       float64
	MenuOptions       []string
}

// LevelCompleteConfig contains level complete overlay configuration
type LevelCompleteConfig struct {
	OverlayColor color.RGBA
	TitleColor   color.RGBA
	TextColor    color.RGBA
	HintColor    color.RGBA
	TitleY       float64
	MessageY     float64
	HintY        float64
	Title        string
	Message      string
	ContinueHint string
}

// InstructionsConfig contains the text of the instructions screen
type InstructionsConfig struct {
	Title    string
	Lines    []string
	BackHint string
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	SkipMenu  bool  // Skip menu and go directly to game
	ShowStats bool  // Draw TPS/FPS and entity counts
	Seed      int64 // 0 = seed from the clock
}

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
}

// Global configuration instances
var C *Config
var Player PlayerConfig
var Bullet BulletConfig
var Enemy EnemyConfig
var Powerup PowerupConfig
var Level LevelConfig
var HUD HUDConfig
var Menu MenuConfig
var GameOver GameOverConfig
var LevelComplete LevelCompleteConfig
var Instructions InstructionsConfig
var Debug DebugConfig

// Enemy type keys
const (
	EnemyMelee  = "melee"
	EnemyRanged = "ranged"
)

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Orange       = color.RGBA{R: 255, G: 165, B: 0, A: 255}
	BrightOrange = color.RGBA{R: 255, G: 180, B: 50, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Green        = color.RGBA{R: 0, G: 128, B: 0, A: 255}
	BrightGreen  = color.RGBA{R: 0, G: 255, B: 60, A: 255}
	Cyan         = color.RGBA{R: 0, G: 255, B: 255, A: 255}
	LightRed     = color.RGBA{R: 255, G: 60, B: 60, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
	SkyBlue      = color.RGBA{R: 0x33, G: 0xaa, B: 0xff, A: 255}
	MeleeRed     = color.RGBA{R: 0xff, G: 0x44, B: 0x44, A: 255}
	RangedGold   = color.RGBA{R: 0xff, G: 0xcc, B: 0x00, A: 255}
	HealGreen    = color.RGBA{R: 0x66, G: 0xff, B: 0x66, A: 255}
)

func init() {
	C = &Config{
		Width:  1280,
		Height: 720,
	}

	Player = PlayerConfig{
		Radius:          20,
		Speed:           4,
		DashSpeed:       12,
		DashCooldownMax: 120,
		Color:           SkyBlue,
		GodModeColor:    Cyan,
		DamageColor:     Red,

		NoseLength: 20,
		TailLength: 15,
		HalfWidth:  15,
	}

	Bullet = BulletConfig{
		Speed:  10,
		Radius: 5,
		Color:  Yellow,
	}

	Enemy = EnemyConfig{
		Radius:         20,
		BaseSpeed:      1,
		SpeedPerLevel:  0.5,
		BaseHealth:     1,
		HealthPerLevel: 1,
		ContactDamage:  5,
		KillScore:      10,
		MeleeChance:    0.5,
		PowerupChance:  0.3,
		MinChaseDist:   1,
		Types: map[string]EnemyTypeConfig{
			EnemyMelee:  {Name: EnemyMelee, Color: MeleeRed},
			EnemyRanged: {Name: EnemyRanged, Color: RangedGold},
		},
	}

	Powerup = PowerupConfig{
		Radius:     10,
		HealAmount: 20,
		Color:      HealGreen,
		Duration:   5 * 60,
		Lifetime:   5 * 60,

		PulseScale:    1.25,
		PulseDuration: 0.5,
	}

	Level = LevelConfig{
		StartHealth:       100,
		MaxHealth:         100,
		TimerSeconds:      60,
		FramesPerSecond:   60,
		DamageFlashFrames: 10,
		SpawnBaseChance:   0.02,
		SpawnPerLevel:     0.01,
		DifficultyLabels:  []string{"Normal", "Medium", "Difficult", "Extreme"},
	}

	HUD = HUDConfig{
		Margin:          16,
		LineHeight:      22,
		HealthBarWidth:  200,
		HealthBarHeight: 14,
		HealthBarBg:     color.RGBA{R: 40, G: 40, B: 40, A: 255},
		TextColor:       White,
		GodModeColor:    Cyan,

		HighThreshold: 60,
		MidThreshold:  30,
		HighColor:     Green,
		MidColor:      Orange,
		LowColor:      Red,
	}

	Menu = MenuConfig{
		Title:             "ARENA SURVIVOR",
		BackgroundColor:   color.RGBA{R: 15, G: 25, B: 50, A: 255},
		TitleColor:        SkyBlue,
		TextColorNormal:   White,
		TextColorSelected: BrightOrange,
		TitleY:            180,
		MenuStartY:        280,
		MenuItemHeight:    30,
		MenuItemGap:       16,
	}

	GameOver = GameOverConfig{
		BackgroundColor:   color.RGBA{R: 40, G: 10, B: 10, A: 255},
		TitleColor:        LightRed,
		TextColorNormal:   White,
		TextColorSelected: BrightOrange,
		TitleY:            220,
		ScoreY:            280,
		MenuStartY:        340,
		MenuItemHeight:    30,
		MenuItemGap:       15,
		MenuOptions:       []string{"Retry", "Main Menu"},
	}

	LevelComplete = LevelCompleteConfig{
		OverlayColor: BlackOverlay,
		TitleColor:   BrightGreen,
		TextColor:    White,
		HintColor:    White,
		TitleY:       260,
		MessageY:     320,
		HintY:        420,
		Title:        "Level Complete!",
		Message:      "You survived. The next wave is faster and tougher.",
		ContinueHint: "Press ENTER for the next level, ESC for the menu",
	}

	Instructions = InstructionsConfig{
		Title: "HOW TO PLAY",
		Lines: []string{
			"W A S D or arrows - move",
			"Mouse - aim",
			"Left click - shoot",
			"Shift - dash toward the cursor",
			"G - toggle invulnerability",
			"Survive until the timer runs out.",
			"Green pickups restore health.",
		},
		BackHint: "Back",
	}

	// Debug Config (defaults, can be overridden by CLI flags)
	Debug = DebugConfig{
		SkipMenu:  false,
		ShowStats: false,
	}
}
