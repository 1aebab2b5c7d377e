package main

import (
	"math"

	"github.com/automoto/survivor/components"
	cfg "github.com/automoto/survivor/config"
	"github.com/automoto/survivor/systems"
	"github.com/automoto/survivor/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// autopilot plays the arena without a window. It aims at the nearest enemy,
// fires every other frame and backs away from melee enemies that get close.
type autopilot struct {
	ecs       *ecs.ECS
	maxLevels int // levels to clear before stopping
	maxFrames int // 0 = unlimited
	frames    int
	cleared   int
}

func newAutopilot(e *ecs.ECS, maxLevels, maxFrames int) *autopilot {
	return &autopilot{ecs: e, maxLevels: maxLevels, maxFrames: maxFrames}
}

// Tick feeds one input snapshot, steps the simulation and handles level transitions.
func (a *autopilot) Tick() bool {
	a.frames++
	a.feedInput()
	systems.Step(a.ecs)

	s := systems.GetOrCreateSession(a.ecs)
	switch s.State {
	case cfg.SessionLevelComplete:
		a.cleared++
		if a.cleared >= a.maxLevels {
			return false
		}
		systems.AdvanceLevel(a.ecs)
	case cfg.SessionGameOver:
		return false
	}

	return a.maxFrames == 0 || a.frames < a.maxFrames
}

func (a *autopilot) feedInput() {
	input := systems.GetOrCreateInput(a.ecs)
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}

	playerEntry, ok := tags.Player.First(a.ecs.World)
	if !ok {
		return
	}
	pObj := components.Object.Get(playerEntry)

	target, dist := nearestEnemy(a.ecs, pObj)
	if target == nil {
		return
	}

	input.CursorX = target.X
	input.CursorY = target.Y
	input.Current[cfg.ActionShoot] = a.frames%2 == 0

	// Keep a melee enemy at arm's length
	if dist < (pObj.Radius+target.Radius)*3 {
		if target.X > pObj.X {
			input.Current[cfg.ActionMoveLeft] = true
		} else {
			input.Current[cfg.ActionMoveRight] = true
		}
		if target.Y > pObj.Y {
			input.Current[cfg.ActionMoveUp] = true
		} else {
			input.Current[cfg.ActionMoveDown] = true
		}
	}
}

// nearestEnemy returns the closest enemy object and its distance, or nil.
func nearestEnemy(e *ecs.ECS, from *components.ObjectData) (*components.ObjectData, float64) {
	var nearest *components.ObjectData
	best := math.Inf(1)
	tags.Enemy.Each(e.World, func(entry *donburi.Entry) {
		obj := components.Object.Get(entry)
		if d := from.DistanceTo(obj); d < best {
			best = d
			nearest = obj
		}
	})
	return nearest, best
}
