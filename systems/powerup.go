package systems

import (
	"github.com/automoto/survivor/components"
	cfg "github.com/automoto/survivor/config"
	"github.com/automoto/survivor/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePowerups applies and removes every pickup the player touches.
func UpdatePowerups(e *ecs.ECS) {
	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	pObj := components.Object.Get(playerEntry)
	s := GetOrCreateSession(e)

	var toRemove []*donburi.Entry
	tags.Powerup.Each(e.World, func(entry *donburi.Entry) {
		if !components.Object.Get(entry).Overlaps(pObj) {
			return
		}
		applyPowerup(s, components.Powerup.Get(entry))
		toRemove = append(toRemove, entry)
	})

	for _, entry := range toRemove {
		entry.Remove()
	}
}

func applyPowerup(s *components.SessionData, p *components.PowerupData) {
	switch p.Effect {
	case components.EffectHeal:
		s.Health = min(s.Health+cfg.Powerup.HealAmount, cfg.Level.MaxHealth)
	}
}
