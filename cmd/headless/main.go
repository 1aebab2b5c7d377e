package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/automoto/survivor/components"
	"github.com/automoto/survivor/config"
	"github.com/automoto/survivor/loop"
	"github.com/automoto/survivor/systems"
	"github.com/automoto/survivor/systems/factory"
	"github.com/google/uuid"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func main() {
	tickRate := flag.Int("tickrate", 0, "Simulation ticks per second (0 = as fast as possible)")
	levels := flag.Int("levels", 1, "Levels to clear before stopping")
	maxFrames := flag.Int("max-frames", 0, "Stop after this many frames (0 = unlimited)")
	seed := flag.Int64("seed", 1, "Random seed (0 = seed from the clock)")
	width := flag.Int("width", config.C.Width, "Playfield width")
	height := flag.Int("height", config.C.Height, "Playfield height")
	flag.Parse()

	if *levels < 1 {
		log.Fatalf("Invalid -levels %d: must be at least 1", *levels)
	}

	runID := uuid.NewString()
	log.SetPrefix("[run " + runID[:8] + "] ")
	log.Printf("Starting headless run %s (seed=%d levels=%d)", runID, *seed, *levels)

	world := ecs.NewECS(donburi.NewWorld())
	factory.CreateArena(world, float64(*width), float64(*height), systems.NewRand(*seed))
	systems.StartSession(world)

	pilot := newAutopilot(world, *levels, *maxFrames)
	gameLoop := loop.NewGameLoop(pilot, *tickRate)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		log.Println("Interrupted, stopping...")
		gameLoop.Stop()
	}()

	ticks := gameLoop.Run()

	s := components.Session.Get(components.Session.MustFirst(world.World))
	log.Printf("Run ended: state=%s level=%d score=%d health=%d timer=%d ticks=%d cleared=%d",
		s.State, s.Level, s.Score, s.Health, s.Timer, ticks, pilot.cleared)

	if s.State == config.SessionGameOver {
		os.Exit(1)
	}
}
