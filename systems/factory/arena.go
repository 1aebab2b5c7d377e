package factory

import (
	"github.com/automoto/survivor/archetypes"
	"github.com/automoto/survivor/components"
	cfg "github.com/automoto/survivor/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateArena spawns the world scalar entity for a playfield of the given size.
// The session starts Idle at level 0; StartSession puts it into play.
func CreateArena(ecs *ecs.ECS, width, height float64, rng components.Rand) *donburi.Entry {
	arena := archetypes.Arena.Spawn(ecs)

	components.Session.SetValue(arena, components.SessionData{
		State:  cfg.SessionIdle,
		Health: cfg.Level.StartHealth,
		Timer:  cfg.Level.TimerSeconds,
	})
	components.Playfield.SetValue(arena, components.PlayfieldData{
		Width:  width,
		Height: height,
	})
	components.RNG.SetValue(arena, components.RNGData{Rand: rng})

	return arena
}
