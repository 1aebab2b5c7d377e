package components

import (
	"github.com/automoto/survivor/config"
	"github.com/yohamta/donburi"
)

type EnemyData struct {
	TypeName string  // config.EnemyMelee or config.EnemyRanged
	Speed    float64 // pixels per frame, scaled by level at spawn
}

// IsMelee reports whether the enemy chases the player.
func (e *EnemyData) IsMelee() bool {
	return e.TypeName == config.EnemyMelee
}

var Enemy = donburi.NewComponentType[EnemyData]()
