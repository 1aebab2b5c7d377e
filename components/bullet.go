package components

import (
	"github.com/yohamta/donburi"
)

// BulletData is the per-frame velocity of a projectile.
type BulletData struct {
	DX, DY float64
}

var Bullet = donburi.NewComponentType[BulletData]()
