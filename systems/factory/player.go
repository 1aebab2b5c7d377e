package factory

import (
	"github.com/automoto/survivor/archetypes"
	"github.com/automoto/survivor/components"
	cfg "github.com/automoto/survivor/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreatePlayer(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	components.Object.SetValue(player, components.ObjectData{
		X:      x,
		Y:      y,
		Radius: cfg.Player.Radius,
		Color:  cfg.Player.Color,
	})
	components.Player.SetValue(player, components.PlayerData{
		Speed:           cfg.Player.Speed,
		DashSpeed:       cfg.Player.DashSpeed,
		DashCooldownMax: cfg.Player.DashCooldownMax,
	})

	return player
}
