package factory

import (
	"github.com/automoto/survivor/archetypes"
	"github.com/automoto/survivor/components"
	cfg "github.com/automoto/survivor/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateEnemy spawns an enemy of the given type with stats scaled by level.
func CreateEnemy(ecs *ecs.ECS, x, y float64, enemyType string, level int) *donburi.Entry {
	enemy := archetypes.Enemy.Spawn(ecs)

	typeCfg, ok := cfg.Enemy.Types[enemyType]
	if !ok {
		typeCfg = cfg.Enemy.Types[cfg.EnemyMelee]
		enemyType = cfg.EnemyMelee
	}

	components.Object.SetValue(enemy, components.ObjectData{
		X:      x,
		Y:      y,
		Radius: cfg.Enemy.Radius,
		Color:  typeCfg.Color,
	})
	components.Enemy.SetValue(enemy, components.EnemyData{
		TypeName: enemyType,
		Speed:    cfg.Enemy.BaseSpeed + float64(level)*cfg.Enemy.SpeedPerLevel,
	})

	hp := cfg.Enemy.BaseHealth + level*cfg.Enemy.HealthPerLevel
	components.Health.SetValue(enemy, components.HealthData{
		Current: hp,
		Max:     hp,
	})

	return enemy
}
