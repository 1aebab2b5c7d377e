package loop

import (
	"log"
	"sync"
	"time"
)

// Stepper advances a simulation by one frame.
type Stepper interface {
	// Tick runs one frame and reports whether another frame should follow.
	Tick() bool
}

// GameLoop drives a Stepper from a fixed-rate ticker, off the display thread.
type GameLoop struct {
	stepper  Stepper
	tickRate int
	ticks    int
	stopChan chan struct{}
	stopOnce sync.Once
}

// NewGameLoop creates a loop at tickRate frames per second.
// A tickRate of 0 or less runs frames back to back.
func NewGameLoop(stepper Stepper, tickRate int) *GameLoop {
	return &GameLoop{
		stepper:  stepper,
		tickRate: tickRate,
		stopChan: make(chan struct{}),
	}
}

// Run blocks until the stepper ends the run or Stop is called.
// It returns the number of frames executed.
func (g *GameLoop) Run() int {
	if g.tickRate <= 0 {
		log.Printf("Game loop started unthrottled")
		return g.runUnthrottled()
	}

	ticker := time.NewTicker(time.Second / time.Duration(g.tickRate))
	defer ticker.Stop()

	log.Printf("Game loop started at %d ticks/second", g.tickRate)

	for {
		select {
		case <-g.stopChan:
			log.Printf("Game loop stopped after %d ticks", g.ticks)
			return g.ticks
		case <-ticker.C:
			if !g.tick() {
				log.Printf("Game loop finished after %d ticks", g.ticks)
				return g.ticks
			}
		}
	}
}

func (g *GameLoop) runUnthrottled() int {
	for {
		select {
		case <-g.stopChan:
			log.Printf("Game loop stopped after %d ticks", g.ticks)
			return g.ticks
		default:
		}
		if !g.tick() {
			log.Printf("Game loop finished after %d ticks", g.ticks)
			return g.ticks
		}
	}
}

// Stop ends Run before its next frame. Safe to call more than once.
func (g *GameLoop) Stop() {
	g.stopOnce.Do(func() {
		close(g.stopChan)
	})
}

func (g *GameLoop) tick() bool {
	g.ticks++
	return g.stepper.Tick()
}
