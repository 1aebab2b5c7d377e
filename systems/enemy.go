package systems

import (
	"math"

	"github.com/automoto/survivor/components"
	cfg "github.com/automoto/survivor/config"
	"github.com/automoto/survivor/systems/factory"
	"github.com/automoto/survivor/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateEnemies moves melee enemies toward the player and resolves player
// contact and bullet hits.
//
// Removals are collected during the pass and applied after it. An enemy taken
// out by contact is not tested against bullets, a bullet is spent on the first
// enemy it hits, and a dead enemy stops absorbing bullets.
func UpdateEnemies(e *ecs.ECS) {
	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	pObj := components.Object.Get(playerEntry)

	s := GetOrCreateSession(e)
	rng := getRand(e)

	var toRemove []*donburi.Entry
	spent := make(map[donburi.Entity]bool)
	var drops []components.Vector

	tags.Enemy.Each(e.World, func(enemyEntry *donburi.Entry) {
		enemy := components.Enemy.Get(enemyEntry)
		obj := components.Object.Get(enemyEntry)
		health := components.Health.Get(enemyEntry)

		if enemy.IsMelee() {
			dx := pObj.X - obj.X
			dy := pObj.Y - obj.Y
			dist := math.Hypot(dx, dy)
			if dist > cfg.Enemy.MinChaseDist {
				obj.X += dx / dist * enemy.Speed
				obj.Y += dy / dist * enemy.Speed
			}
		}

		// Contact always kills the enemy; god mode only spares the player's health
		if obj.Overlaps(pObj) {
			if !s.GodMode {
				s.Health -= cfg.Enemy.ContactDamage
				s.DamageFlash = cfg.Level.DamageFlashFrames
			}
			toRemove = append(toRemove, enemyEntry)
			return
		}

		tags.Bullet.Each(e.World, func(bulletEntry *donburi.Entry) {
			if health.Current <= 0 || spent[bulletEntry.Entity()] {
				return
			}
			if !components.Object.Get(bulletEntry).Overlaps(obj) {
				return
			}

			health.Current--
			spent[bulletEntry.Entity()] = true
			toRemove = append(toRemove, bulletEntry)

			if health.Current <= 0 {
				toRemove = append(toRemove, enemyEntry)
				s.Score += cfg.Enemy.KillScore
				if rng.Float64() < cfg.Enemy.PowerupChance {
					drops = append(drops, components.Vector{X: obj.X, Y: obj.Y})
				}
			}
		})
	})

	for _, entry := range toRemove {
		entry.Remove()
	}
	for _, pos := range drops {
		factory.CreatePowerup(e, pos.X, pos.Y)
	}
}
