package systems

import (
	"github.com/automoto/survivor/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// tickSeconds is the tween time advanced per simulation tick.
const tickSeconds = float32(1.0 / 60.0)

// UpdateEffects advances cosmetic effects. Nothing here touches collision state.
func UpdateEffects(ecs *ecs.ECS) {
	updatePulseEffects(ecs)
}

// updatePulseEffects ping-pongs each pickup between its grow and shrink tweens
func updatePulseEffects(ecs *ecs.ECS) {
	components.Pulse.Each(ecs.World, func(e *donburi.Entry) {
		stepPulse(components.Pulse.Get(e), tickSeconds)
	})
}

func stepPulse(p *components.PulseData, dt float32) {
	if p.Grow == nil || p.Shrink == nil {
		p.Scale = 1
		return
	}

	tw, next := p.Grow, p.Shrink
	if p.Shrinking {
		tw, next = p.Shrink, p.Grow
	}

	scale, done := tw.Update(dt)
	p.Scale = scale
	if done {
		tw.Reset()
		next.Reset()
		p.Shrinking = !p.Shrinking
	}
}
