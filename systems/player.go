package systems

import (
	"math"

	"github.com/automoto/survivor/components"
	cfg "github.com/automoto/survivor/config"
	"github.com/automoto/survivor/systems/factory"
	"github.com/automoto/survivor/tags"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePlayer applies this frame's input to the player: god mode toggle,
// movement, dash, counters, facing and fire.
func UpdatePlayer(e *ecs.ECS) {
	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}

	s := GetOrCreateSession(e)
	input := GetOrCreateInput(e)
	player := components.Player.Get(playerEntry)
	obj := components.Object.Get(playerEntry)

	if GetAction(input, cfg.ActionToggleGodMode).JustPressed {
		s.GodMode = !s.GodMode
	}

	// Diagonals are not normalized
	if GetAction(input, cfg.ActionMoveUp).Pressed {
		obj.Y -= player.Speed
	}
	if GetAction(input, cfg.ActionMoveDown).Pressed {
		obj.Y += player.Speed
	}
	if GetAction(input, cfg.ActionMoveLeft).Pressed {
		obj.X -= player.Speed
	}
	if GetAction(input, cfg.ActionMoveRight).Pressed {
		obj.X += player.Speed
	}

	if GetAction(input, cfg.ActionDash).Pressed && s.DashCooldown <= 0 {
		angle := math.Atan2(input.CursorY-obj.Y, input.CursorX-obj.X)
		obj.X += math.Cos(angle) * player.DashSpeed
		obj.Y += math.Sin(angle) * player.DashSpeed
		s.DashCooldown = player.DashCooldownMax
	}
	if s.DashCooldown > 0 {
		s.DashCooldown--
	}
	if s.DamageFlash > 0 {
		s.DamageFlash--
	}

	player.Angle = math.Atan2(input.CursorY-obj.Y, input.CursorX-obj.X)

	if GetAction(input, cfg.ActionShoot).JustPressed {
		factory.CreateBullet(e, obj.X, obj.Y, input.CursorX, input.CursorY)
	}
}
