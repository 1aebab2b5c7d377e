package systems

import (
	"image/color"
	"math"
	"testing"

	"github.com/automoto/survivor/components"
	cfg "github.com/automoto/survivor/config"
)

func TestPlayerColor(t *testing.T) {
	tests := []struct {
		name    string
		session components.SessionData
		want    color.RGBA
	}{
		{"normal", components.SessionData{}, cfg.Player.Color},
		{"god mode", components.SessionData{GodMode: true}, cfg.Player.GodModeColor},
		{"flash wins over god mode", components.SessionData{GodMode: true, DamageFlash: 3}, cfg.Player.DamageColor},
		{"flash", components.SessionData{DamageFlash: 1}, cfg.Player.DamageColor},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PlayerColor(&tt.session); got != tt.want {
				t.Fatalf("PlayerColor() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTrianglePointsRotate(t *testing.T) {
	pts := TrianglePoints(100, 100, math.Pi/2)

	nose := pts[0]
	if math.Abs(nose.X-100) > 1e-9 || math.Abs(nose.Y-(100+cfg.Player.NoseLength)) > 1e-9 {
		t.Fatalf("nose = %+v, want (100, %v)", nose, 100+cfg.Player.NoseLength)
	}

	pts = TrianglePoints(0, 0, 0)
	if pts[1].X != -cfg.Player.TailLength || pts[1].Y != -cfg.Player.HalfWidth {
		t.Fatalf("tail corner = %+v", pts[1])
	}
}

func TestEnemyColorFadesWithDamage(t *testing.T) {
	base := color.RGBA{R: 255, G: 68, B: 68, A: 255}

	tests := []struct {
		name   string
		health components.HealthData
		want   color.RGBA
	}{
		{"full health", components.HealthData{Current: 3, Max: 3}, base},
		{"no max", components.HealthData{Current: 1, Max: 0}, base},
		{"half health", components.HealthData{Current: 2, Max: 4}, color.RGBA{R: 255, G: 114, B: 114, A: 255}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EnemyColor(base, &tt.health); got != tt.want {
				t.Fatalf("EnemyColor() = %v, want %v", got, tt.want)
			}
		})
	}
}
