package components

import "github.com/yohamta/donburi"

// PowerupEffect identifies what a pickup does when collected.
type PowerupEffect string

const (
	EffectHeal PowerupEffect = "heal"
)

// PowerupData describes a pickup. Duration and Lifetime are carried with the
// pickup but nothing counts them down; pickups stay until collected.
type PowerupData struct {
	Effect   PowerupEffect
	Duration int
	Lifetime int
}

var Powerup = donburi.NewComponentType[PowerupData]()
