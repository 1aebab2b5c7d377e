package factory

import (
	"math"

	"github.com/automoto/survivor/archetypes"
	"github.com/automoto/survivor/components"
	cfg "github.com/automoto/survivor/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateBullet spawns a projectile at (x, y) travelling toward the target.
// A target on top of the origin fires along +X.
func CreateBullet(ecs *ecs.ECS, x, y, targetX, targetY float64) *donburi.Entry {
	b := archetypes.Bullet.Spawn(ecs)

	angle := math.Atan2(targetY-y, targetX-x)

	components.Object.SetValue(b, components.ObjectData{
		X:      x,
		Y:      y,
		Radius: cfg.Bullet.Radius,
		Color:  cfg.Bullet.Color,
	})
	components.Bullet.SetValue(b, components.BulletData{
		DX: math.Cos(angle) * cfg.Bullet.Speed,
		DY: math.Sin(angle) * cfg.Bullet.Speed,
	})

	return b
}
