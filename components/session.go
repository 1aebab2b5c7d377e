package components

import (
	cfg "github.com/automoto/survivor/config"
	"github.com/yohamta/donburi"
)

// SessionData is the world scalar state of one level run.
// This is a singleton component - only one session exists per arena.
type SessionData struct {
	State        cfg.SessionStateID
	Score        int
	Health       int // may go below zero before the loss check runs
	Level        int
	Timer        int // seconds remaining
	Frame        int // simulation steps since the level started
	DashCooldown int // frames until the next dash is allowed
	DamageFlash  int // frames of red tint left on the player
	GodMode      bool
	FinalScore   int // score captured on game over
}

// Running reports whether the simulation should advance this tick.
func (s *SessionData) Running() bool {
	return s.State == cfg.SessionRunning
}

var Session = donburi.NewComponentType[SessionData]()
