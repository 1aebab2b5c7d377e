package systems

import (
	"github.com/automoto/survivor/components"
	cfg "github.com/automoto/survivor/config"
	"github.com/automoto/survivor/systems/factory"
	"github.com/yohamta/donburi/ecs"
)

// Playfield edges enemies enter from
const (
	edgeTop = iota
	edgeRight
	edgeBottom
	edgeLeft
	edgeCount
)

// UpdateSpawner rolls once per frame for a new enemy. The chance grows with level.
func UpdateSpawner(e *ecs.ECS) {
	s := GetOrCreateSession(e)
	rng := getRand(e)

	if rng.Float64() < SpawnChance(s.Level) {
		SpawnEnemyAtEdge(e, rng, getPlayfield(e), s.Level)
	}
}

// SpawnChance is the per-frame probability of an enemy spawn at a level.
func SpawnChance(level int) float64 {
	return cfg.Level.SpawnBaseChance + float64(level)*cfg.Level.SpawnPerLevel
}

// SpawnEnemyAtEdge places one enemy at a random point on a random playfield edge.
func SpawnEnemyAtEdge(e *ecs.ECS, rng components.Rand, field *components.PlayfieldData, level int) {
	var x, y float64
	switch rng.Intn(edgeCount) {
	case edgeTop:
		x, y = rng.Float64()*field.Width, 0
	case edgeRight:
		x, y = field.Width, rng.Float64()*field.Height
	case edgeBottom:
		x, y = rng.Float64()*field.Width, field.Height
	default:
		x, y = 0, rng.Float64()*field.Height
	}

	enemyType := cfg.EnemyRanged
	if rng.Float64() < cfg.Enemy.MeleeChance {
		enemyType = cfg.EnemyMelee
	}

	factory.CreateEnemy(e, x, y, enemyType, level)
}
