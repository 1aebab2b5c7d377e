package components

import (
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	Speed           float64
	DashSpeed       float64
	DashCooldownMax int     // frames between dashes
	Angle           float64 // facing, radians toward the cursor
}

var Player = donburi.NewComponentType[PlayerData]()
