package systems

import (
	"log"
	"math/rand"
	"time"

	"github.com/automoto/survivor/components"
	cfg "github.com/automoto/survivor/config"
	"github.com/automoto/survivor/systems/factory"
	"github.com/automoto/survivor/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/filter"
)

// levelEntities matches everything resetLevel clears.
var levelEntities = donburi.NewQuery(filter.Or(
	filter.Contains(tags.Player),
	filter.Contains(tags.Bullet),
	filter.Contains(tags.Enemy),
	filter.Contains(tags.Powerup),
))

// GetOrCreateSession returns the singleton Session component. A world without
// an arena gets one sized to the logical screen.
func GetOrCreateSession(e *ecs.ECS) *components.SessionData {
	entry, ok := components.Session.First(e.World)
	if !ok {
		entry = factory.CreateArena(e, float64(cfg.C.Width), float64(cfg.C.Height), NewRand(cfg.Debug.Seed))
	}
	return components.Session.Get(entry)
}

// NewRand returns a seeded source. Seed 0 seeds from the clock.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

func getPlayfield(e *ecs.ECS) *components.PlayfieldData {
	GetOrCreateSession(e)
	return components.Playfield.Get(components.Playfield.MustFirst(e.World))
}

func getRand(e *ecs.ECS) components.Rand {
	GetOrCreateSession(e)
	return components.RNG.Get(components.RNG.MustFirst(e.World)).Rand
}

// IsRunning reports whether the simulation advances this tick.
func IsRunning(e *ecs.ECS) bool {
	return GetOrCreateSession(e).Running()
}

// WithRunningCheck wraps a system to skip execution unless the session is running
func WithRunningCheck(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if !IsRunning(e) {
			return
		}
		system(e)
	}
}

// StartSession puts an idle or finished session into play at its current level.
func StartSession(e *ecs.ECS) bool {
	s := GetOrCreateSession(e)
	if s.State != cfg.SessionIdle && s.State != cfg.SessionGameOver {
		return false
	}
	resetLevel(e)
	s.State = cfg.SessionRunning
	log.Printf("Level %d started (%s)", s.Level, DifficultyLabel(s.Level))
	return true
}

// AdvanceLevel moves a completed session to the next level.
func AdvanceLevel(e *ecs.ECS) bool {
	s := GetOrCreateSession(e)
	if s.State != cfg.SessionLevelComplete {
		return false
	}
	s.Level++
	resetLevel(e)
	s.State = cfg.SessionRunning
	log.Printf("Level %d started (%s)", s.Level, DifficultyLabel(s.Level))
	return true
}

// ReturnToMenu parks a finished session. The scene decides where to go next.
func ReturnToMenu(e *ecs.ECS) bool {
	s := GetOrCreateSession(e)
	if s.State != cfg.SessionGameOver && s.State != cfg.SessionLevelComplete {
		return false
	}
	s.State = cfg.SessionIdle
	return true
}

// resetLevel clears every level entity and restores the per-level scalars.
// Level and god mode survive the reset.
func resetLevel(e *ecs.ECS) {
	s := GetOrCreateSession(e)
	field := getPlayfield(e)

	var toRemove []*donburi.Entry
	levelEntities.Each(e.World, func(entry *donburi.Entry) {
		toRemove = append(toRemove, entry)
	})
	for _, entry := range toRemove {
		entry.Remove()
	}

	s.Score = 0
	s.Health = cfg.Level.StartHealth
	s.Timer = cfg.Level.TimerSeconds
	s.Frame = 0
	s.DashCooldown = 0
	s.DamageFlash = 0
	s.FinalScore = 0

	factory.CreatePlayer(e, field.Width/2, field.Height/2)
}

// Step advances the simulation by one frame. It does nothing unless running.
func Step(e *ecs.ECS) {
	if !IsRunning(e) {
		return
	}
	UpdatePlayer(e)
	UpdateBullets(e)
	UpdateEnemies(e)
	UpdatePowerups(e)
	UpdateSpawner(e)
	UpdateCountdown(e)
}

// UpdateCountdown ticks the level clock and fires the terminal transitions.
// Timer expiry wins over health depletion on the same frame.
func UpdateCountdown(e *ecs.ECS) {
	s := GetOrCreateSession(e)

	s.Frame++
	if s.Frame%cfg.Level.FramesPerSecond == 0 {
		s.Timer--
	}

	switch {
	case s.Timer <= 0:
		s.State = cfg.SessionLevelComplete
		log.Printf("Level %d complete, score %d", s.Level, s.Score)
	case s.Health <= 0 && !s.GodMode:
		s.State = cfg.SessionGameOver
		s.FinalScore = s.Score
		log.Printf("Game over on level %d, final score %d", s.Level, s.FinalScore)
	}
}

// DifficultyLabel names a level for display. Levels past the list keep the last label.
func DifficultyLabel(level int) string {
	labels := cfg.Level.DifficultyLabels
	if len(labels) == 0 {
		return ""
	}
	if level < 0 {
		level = 0
	}
	if level >= len(labels) {
		level = len(labels) - 1
	}
	return labels[level]
}
