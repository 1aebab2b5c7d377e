package systems

import (
	"testing"

	"github.com/automoto/survivor/components"
	cfg "github.com/automoto/survivor/config"
	"github.com/automoto/survivor/systems/factory"
	"github.com/automoto/survivor/tags"
	"github.com/yohamta/donburi"
)

func TestUpdateEnemiesMeleeChasesRangedHolds(t *testing.T) {
	e := newTestArena(t, nil)
	p := playerObject(t, e)

	melee := factory.CreateEnemy(e, p.X+100, p.Y, cfg.EnemyMelee, 0)
	ranged := factory.CreateEnemy(e, p.X, p.Y+100, cfg.EnemyRanged, 0)

	UpdateEnemies(e)

	if got := components.Object.Get(melee).X; got != p.X+99 {
		t.Errorf("melee x = %v, want %v", got, p.X+99)
	}
	if got := components.Object.Get(ranged).Y; got != p.Y+100 {
		t.Errorf("ranged y = %v, want %v", got, p.Y+100)
	}
}

func TestUpdateEnemiesMeleeLevelSpeed(t *testing.T) {
	e := newTestArena(t, nil)
	p := playerObject(t, e)

	melee := factory.CreateEnemy(e, p.X-200, p.Y, cfg.EnemyMelee, 2)
	UpdateEnemies(e)

	if got := components.Object.Get(melee).X; got != p.X-198 {
		t.Errorf("level 2 melee x = %v, want %v", got, p.X-198)
	}
}

func TestUpdateEnemiesContact(t *testing.T) {
	tests := []struct {
		name       string
		godMode    bool
		wantHealth int
		wantFlash  int
	}{
		{"damages player", false, 95, 10},
		{"god mode spares health", true, 100, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestArena(t, nil)
			s := GetOrCreateSession(e)
			s.GodMode = tt.godMode
			p := playerObject(t, e)

			enemy := factory.CreateEnemy(e, p.X+30, p.Y, cfg.EnemyRanged, 0)
			UpdateEnemies(e)

			if enemy.Valid() {
				t.Error("enemy survived contact")
			}
			if s.Health != tt.wantHealth {
				t.Errorf("health = %d, want %d", s.Health, tt.wantHealth)
			}
			if s.DamageFlash != tt.wantFlash {
				t.Errorf("flash = %d, want %d", s.DamageFlash, tt.wantFlash)
			}
		})
	}
}

func TestUpdateEnemiesContactSkipsBulletChecks(t *testing.T) {
	e := newTestArena(t, nil)
	p := playerObject(t, e)
	s := GetOrCreateSession(e)

	factory.CreateEnemy(e, p.X+30, p.Y, cfg.EnemyRanged, 0)
	bullet := factory.CreateBullet(e, p.X+30, p.Y, p.X+100, p.Y)

	UpdateEnemies(e)

	if !bullet.Valid() {
		t.Error("bullet spent on an enemy removed by contact")
	}
	if s.Score != 0 {
		t.Errorf("score = %d, want 0", s.Score)
	}
}

func TestUpdateEnemiesBulletKill(t *testing.T) {
	tests := []struct {
		name        string
		dropRoll    float64
		wantPowerup bool
	}{
		{"drops powerup", 0.1, true},
		{"no drop", 0.5, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestArena(t, &stubRand{floats: []float64{tt.dropRoll}})
			s := GetOrCreateSession(e)

			enemy := factory.CreateEnemy(e, 100, 100, cfg.EnemyRanged, 0)
			bullet := factory.CreateBullet(e, 110, 100, 200, 100)

			UpdateEnemies(e)

			if enemy.Valid() || bullet.Valid() {
				t.Fatal("enemy and bullet should both be removed")
			}
			if s.Score != cfg.Enemy.KillScore {
				t.Errorf("score = %d, want %d", s.Score, cfg.Enemy.KillScore)
			}

			gotPowerup := count(e, tags.Powerup) == 1
			if gotPowerup != tt.wantPowerup {
				t.Fatalf("powerup spawned = %v, want %v", gotPowerup, tt.wantPowerup)
			}
			if gotPowerup {
				entry, _ := tags.Powerup.First(e.World)
				obj := components.Object.Get(entry)
				if obj.X != 100 || obj.Y != 100 {
					t.Errorf("powerup at (%v, %v), want (100, 100)", obj.X, obj.Y)
				}
			}
		})
	}
}

func TestUpdateEnemiesBulletSpentOnFirstHit(t *testing.T) {
	e := newTestArena(t, nil)

	// Two enemies stacked on one bullet
	a := factory.CreateEnemy(e, 100, 100, cfg.EnemyRanged, 1)
	b := factory.CreateEnemy(e, 102, 100, cfg.EnemyRanged, 1)
	factory.CreateBullet(e, 101, 100, 200, 100)

	UpdateEnemies(e)

	total := components.Health.Get(a).Current + components.Health.Get(b).Current
	if total != 3 {
		t.Fatalf("combined enemy health = %d, want 3 (one bullet, one hit)", total)
	}
	if n := count(e, tags.Bullet); n != 0 {
		t.Fatalf("bullets = %d, want 0", n)
	}
}

func TestUpdateEnemiesDeadEnemyStopsAbsorbingBullets(t *testing.T) {
	e := newTestArena(t, nil)
	s := GetOrCreateSession(e)

	// Level 1 enemy has 2 health; three bullets overlap it
	factory.CreateEnemy(e, 100, 100, cfg.EnemyRanged, 1)
	for i := 0; i < 3; i++ {
		factory.CreateBullet(e, 100+float64(i), 100, 200, 100)
	}

	UpdateEnemies(e)

	if n := count(e, tags.Enemy); n != 0 {
		t.Fatalf("enemies = %d, want 0", n)
	}
	if n := count(e, tags.Bullet); n != 1 {
		t.Fatalf("bullets = %d, want 1 left over", n)
	}
	if s.Score != cfg.Enemy.KillScore {
		t.Fatalf("score = %d, want %d (one kill)", s.Score, cfg.Enemy.KillScore)
	}
}

func TestUpdateEnemiesWoundsWithoutKilling(t *testing.T) {
	e := newTestArena(t, nil)

	enemy := factory.CreateEnemy(e, 100, 100, cfg.EnemyRanged, 2)
	factory.CreateBullet(e, 100, 100, 200, 100)

	UpdateEnemies(e)

	if !enemy.Valid() {
		t.Fatal("enemy with health left was removed")
	}
	if got := components.Health.Get(enemy).Current; got != 2 {
		t.Fatalf("health = %d, want 2", got)
	}

	var alive int
	tags.Enemy.Each(e.World, func(*donburi.Entry) { alive++ })
	if alive != 1 {
		t.Fatalf("enemies = %d, want 1", alive)
	}
}
