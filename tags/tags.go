package tags

import "github.com/yohamta/donburi"

var (
	Player  = donburi.NewTag().SetName("Player")
	Bullet  = donburi.NewTag().SetName("Bullet")
	Enemy   = donburi.NewTag().SetName("Enemy")
	Powerup = donburi.NewTag().SetName("Powerup")
)
