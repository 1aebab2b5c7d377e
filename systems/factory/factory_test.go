package factory

import (
	"math"
	"testing"

	"github.com/automoto/survivor/components"
	cfg "github.com/automoto/survivor/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func newWorld() *ecs.ECS {
	return ecs.NewECS(donburi.NewWorld())
}

func TestCreateBulletAimsAtTarget(t *testing.T) {
	tests := []struct {
		name           string
		tx, ty         float64
		wantDX, wantDY float64
	}{
		{"right", 110, 10, cfg.Bullet.Speed, 0},
		{"up", 10, -90, 0, -cfg.Bullet.Speed},
		{"diagonal", 20, 20, cfg.Bullet.Speed / math.Sqrt2, cfg.Bullet.Speed / math.Sqrt2},
		{"on top of origin", 10, 10, cfg.Bullet.Speed, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := CreateBullet(newWorld(), 10, 10, tt.tx, tt.ty)
			v := components.Bullet.Get(b)
			if math.Abs(v.DX-tt.wantDX) > 1e-9 || math.Abs(v.DY-tt.wantDY) > 1e-9 {
				t.Fatalf("velocity = (%v, %v), want (%v, %v)", v.DX, v.DY, tt.wantDX, tt.wantDY)
			}
			if r := components.Object.Get(b).Radius; r != cfg.Bullet.Radius {
				t.Fatalf("radius = %v, want %v", r, cfg.Bullet.Radius)
			}
		})
	}
}

func TestCreateEnemyStats(t *testing.T) {
	enemy := CreateEnemy(newWorld(), 0, 0, cfg.EnemyRanged, 2)

	if got := components.Health.Get(enemy); got.Current != 3 || got.Max != 3 {
		t.Errorf("health = %+v, want 3/3", *got)
	}
	if got := components.Enemy.Get(enemy).Speed; got != 2 {
		t.Errorf("speed = %v, want 2", got)
	}
	if got := components.Object.Get(enemy).Color; got != cfg.RangedGold {
		t.Errorf("color = %v, want ranged gold", got)
	}
	if components.Enemy.Get(enemy).IsMelee() {
		t.Error("ranged enemy reports melee")
	}
}

func TestCreateEnemyUnknownTypeIsMelee(t *testing.T) {
	enemy := CreateEnemy(newWorld(), 0, 0, "sniper", 0)

	if !components.Enemy.Get(enemy).IsMelee() {
		t.Fatalf("type = %q, want melee fallback", components.Enemy.Get(enemy).TypeName)
	}
}

func TestCreatePowerupCarriesTimers(t *testing.T) {
	p := CreatePowerup(newWorld(), 5, 6)
	data := components.Powerup.Get(p)

	if data.Effect != components.EffectHeal {
		t.Errorf("effect = %q, want heal", data.Effect)
	}
	if data.Duration != 300 || data.Lifetime != 300 {
		t.Errorf("duration/lifetime = %d/%d, want 300/300", data.Duration, data.Lifetime)
	}
	if pulse := components.Pulse.Get(p); pulse.Scale != 1 || pulse.Grow == nil || pulse.Shrink == nil {
		t.Errorf("pulse not initialised: %+v", *pulse)
	}
}

func TestCreateArenaStartsIdle(t *testing.T) {
	w := newWorld()
	arena := CreateArena(w, 640, 480, nil)

	s := components.Session.Get(arena)
	if s.State != cfg.SessionIdle || s.Level != 0 || s.Health != 100 || s.Timer != 60 {
		t.Errorf("session = %+v", *s)
	}
	if f := components.Playfield.Get(arena); f.Width != 640 || f.Height != 480 {
		t.Errorf("playfield = %+v", *f)
	}
}
