package systems

import (
	"testing"

	"github.com/automoto/survivor/components"
	cfg "github.com/automoto/survivor/config"
)

func TestHUDSnapshot(t *testing.T) {
	tests := []struct {
		name        string
		session     components.SessionData
		wantTimer   int
		wantPercent int
		wantBand    HealthBand
	}{
		{"full health", components.SessionData{Health: 100, Timer: 60}, 60, 100, BandHigh},
		{"just above high", components.SessionData{Health: 61, Timer: 30}, 30, 61, BandHigh},
		{"at high threshold", components.SessionData{Health: 60, Timer: 30}, 30, 60, BandMid},
		{"just above mid", components.SessionData{Health: 31, Timer: 30}, 30, 31, BandMid},
		{"at mid threshold", components.SessionData{Health: 30, Timer: 30}, 30, 30, BandLow},
		{"negative health clamps", components.SessionData{Health: -5, Timer: 1}, 1, 0, BandLow},
		{"negative timer clamps", components.SessionData{Health: 50, Timer: -1}, 0, 50, BandMid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := HUDSnapshot(&tt.session)
			if v.Timer != tt.wantTimer {
				t.Errorf("Timer = %d, want %d", v.Timer, tt.wantTimer)
			}
			if v.HealthPercent != tt.wantPercent {
				t.Errorf("HealthPercent = %d, want %d", v.HealthPercent, tt.wantPercent)
			}
			if v.Band != tt.wantBand {
				t.Errorf("Band = %v, want %v", v.Band, tt.wantBand)
			}
		})
	}
}

func TestHUDSnapshotLeavesSessionAlone(t *testing.T) {
	s := components.SessionData{Health: -20, Timer: -3, Level: 5, Score: 40, GodMode: true}
	v := HUDSnapshot(&s)

	if s.Health != -20 || s.Timer != -3 {
		t.Fatalf("snapshot mutated the session: %+v", s)
	}
	if v.Level != 5 || v.Score != 40 || !v.GodMode || v.Difficulty != "Extreme" {
		t.Fatalf("snapshot = %+v", v)
	}
}

func TestHealthBandColor(t *testing.T) {
	if BandHigh.Color() != cfg.HUD.HighColor || BandMid.Color() != cfg.HUD.MidColor || BandLow.Color() != cfg.HUD.LowColor {
		t.Fatal("band colors do not match the HUD config")
	}
}
