package factory

import (
	"github.com/automoto/survivor/archetypes"
	"github.com/automoto/survivor/components"
	cfg "github.com/automoto/survivor/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePowerup drops a heal pickup at (x, y).
func CreatePowerup(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	p := archetypes.Powerup.Spawn(ecs)

	components.Object.SetValue(p, components.ObjectData{
		X:      x,
		Y:      y,
		Radius: cfg.Powerup.Radius,
		Color:  cfg.Powerup.Color,
	})
	components.Powerup.SetValue(p, components.PowerupData{
		Effect:   components.EffectHeal,
		Duration: cfg.Powerup.Duration,
		Lifetime: cfg.Powerup.Lifetime,
	})
	components.Pulse.SetValue(p, components.PulseData{
		Grow:   gween.New(1, cfg.Powerup.PulseScale, cfg.Powerup.PulseDuration, ease.InOutSine),
		Shrink: gween.New(cfg.Powerup.PulseScale, 1, cfg.Powerup.PulseDuration, ease.InOutSine),
		Scale:  1,
	})

	return p
}
