package main

import (
	"flag"
	"image"
	"log"

	"github.com/automoto/survivor/config"
	"github.com/automoto/survivor/fonts"
	"github.com/automoto/survivor/scenes"
	"github.com/automoto/survivor/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame() *Game {
	g := &Game{
		bounds: image.Rectangle{},
	}

	if config.Debug.SkipMenu {
		g.scene = scenes.NewArenaScene(g)
	} else {
		g.scene = scenes.NewMenuScene(g)
	}

	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	flag.BoolVar(&config.Debug.SkipMenu, "skip-menu", config.Debug.SkipMenu, "Start directly in the arena")
	flag.BoolVar(&config.Debug.ShowStats, "debug", config.Debug.ShowStats, "Show TPS/FPS and entity counts")
	flag.IntVar(&config.C.Width, "width", config.C.Width, "Logical playfield width")
	flag.IntVar(&config.C.Height, "height", config.C.Height, "Logical playfield height")
	flag.Int64Var(&config.Debug.Seed, "seed", config.Debug.Seed, "Random seed (0 = seed from the clock)")
	flag.Parse()

	if config.C.Width <= 0 || config.C.Height <= 0 {
		log.Fatalf("Invalid playfield size %dx%d", config.C.Width, config.C.Height)
	}

	if err := fonts.LoadDefaults(); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.Menu.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)

	// Initialize persistence and load saved settings
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	saved, err := systems.LoadSettings()
	if err != nil {
		log.Printf("Warning: %v", err)
	}
	systems.ApplySavedSettings(saved)

	if err := ebiten.RunGame(NewGame()); err != nil {
		log.Fatal(err)
	}
}
