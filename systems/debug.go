package systems

import (
	"fmt"

	cfg "github.com/automoto/survivor/config"
	"github.com/automoto/survivor/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/filter"
)

var (
	enemyQuery   = donburi.NewQuery(filter.Contains(tags.Enemy))
	bulletQuery  = donburi.NewQuery(filter.Contains(tags.Bullet))
	powerupQuery = donburi.NewQuery(filter.Contains(tags.Powerup))
)

// DrawDebug prints loop rates, entity counts and session state in the bottom-left corner.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.ShowStats {
		return
	}

	s := GetOrCreateSession(ecs)
	msg := fmt.Sprintf(
		"TPS %.1f  FPS %.1f\nenemies %d  bullets %d  powerups %d\nstate %s  frame %d  dash %d  god %t",
		ebiten.ActualTPS(), ebiten.ActualFPS(),
		enemyQuery.Count(ecs.World), bulletQuery.Count(ecs.World), powerupQuery.Count(ecs.World),
		s.State, s.Frame, s.DashCooldown, s.GodMode,
	)
	ebitenutil.DebugPrintAt(screen, msg, 4, screen.Bounds().Dy()-52)
}
