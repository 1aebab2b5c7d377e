package systems

import (
	"math"
	"testing"

	"github.com/automoto/survivor/components"
	cfg "github.com/automoto/survivor/config"
	"github.com/automoto/survivor/tags"
	"github.com/yohamta/donburi"
)

func TestUpdatePlayerMovesFourWayWithoutNormalizing(t *testing.T) {
	e := newTestArena(t, nil)
	obj := playerObject(t, e)
	startX, startY := obj.X, obj.Y

	press(e, cfg.ActionMoveRight, cfg.ActionMoveUp)
	UpdatePlayer(e)

	if obj.X != startX+cfg.Player.Speed || obj.Y != startY-cfg.Player.Speed {
		t.Fatalf("position = (%v, %v), want (%v, %v)", obj.X, obj.Y, startX+cfg.Player.Speed, startY-cfg.Player.Speed)
	}
}

func TestUpdatePlayerDashCooldown(t *testing.T) {
	e := newTestArena(t, nil)
	obj := playerObject(t, e)
	s := GetOrCreateSession(e)
	aimAt(e, obj.X+1000, obj.Y)

	startX := obj.X
	press(e, cfg.ActionDash)
	UpdatePlayer(e)

	if got := obj.X - startX; math.Abs(got-cfg.Player.DashSpeed) > 1e-9 {
		t.Fatalf("dash moved %v, want %v", got, cfg.Player.DashSpeed)
	}
	if s.DashCooldown != cfg.Player.DashCooldownMax-1 {
		t.Fatalf("cooldown = %d, want %d", s.DashCooldown, cfg.Player.DashCooldownMax-1)
	}

	// Holding dash does nothing until the cooldown runs out
	afterDash := obj.X
	for i := 1; i < cfg.Player.DashCooldownMax; i++ {
		press(e, cfg.ActionDash)
		UpdatePlayer(e)
		if obj.X != afterDash {
			t.Fatalf("dashed again %d frames after the first dash", i)
		}
	}

	press(e, cfg.ActionDash)
	UpdatePlayer(e)
	if obj.X <= afterDash {
		t.Fatalf("no dash %d frames after the first dash", cfg.Player.DashCooldownMax)
	}
}

func TestUpdatePlayerTogglesGodModeOncePerPress(t *testing.T) {
	e := newTestArena(t, nil)
	s := GetOrCreateSession(e)

	press(e, cfg.ActionToggleGodMode)
	UpdatePlayer(e)
	if !s.GodMode {
		t.Fatal("god mode not enabled by press")
	}

	press(e, cfg.ActionToggleGodMode) // still held
	UpdatePlayer(e)
	if !s.GodMode {
		t.Fatal("holding the toggle flipped god mode again")
	}

	press(e)
	UpdatePlayer(e)
	press(e, cfg.ActionToggleGodMode)
	UpdatePlayer(e)
	if s.GodMode {
		t.Fatal("second press did not disable god mode")
	}
}

func TestUpdatePlayerFiresOneBulletPerClick(t *testing.T) {
	e := newTestArena(t, nil)
	obj := playerObject(t, e)
	aimAt(e, obj.X, obj.Y+100)

	press(e, cfg.ActionShoot)
	UpdatePlayer(e)
	press(e, cfg.ActionShoot)
	UpdatePlayer(e)

	if n := count(e, tags.Bullet); n != 1 {
		t.Fatalf("bullets = %d, want 1", n)
	}

	tags.Bullet.Each(e.World, func(entry *donburi.Entry) {
		b := components.Bullet.Get(entry)
		bObj := components.Object.Get(entry)
		if math.Abs(b.DX) > 1e-9 || math.Abs(b.DY-cfg.Bullet.Speed) > 1e-9 {
			t.Errorf("velocity = (%v, %v), want (0, %v)", b.DX, b.DY, cfg.Bullet.Speed)
		}
		if bObj.X != obj.X || bObj.Y != obj.Y {
			t.Errorf("bullet spawned at (%v, %v), want player position (%v, %v)", bObj.X, bObj.Y, obj.X, obj.Y)
		}
	})
}

func TestUpdatePlayerFacesCursorAndDecaysFlash(t *testing.T) {
	e := newTestArena(t, nil)
	obj := playerObject(t, e)
	s := GetOrCreateSession(e)
	s.DamageFlash = 2
	aimAt(e, obj.X, obj.Y-50)

	press(e)
	UpdatePlayer(e)

	entry, _ := tags.Player.First(e.World)
	if got := components.Player.Get(entry).Angle; math.Abs(got+math.Pi/2) > 1e-9 {
		t.Fatalf("angle = %v, want %v", got, -math.Pi/2)
	}
	if s.DamageFlash != 1 {
		t.Fatalf("damage flash = %d, want 1", s.DamageFlash)
	}
}
