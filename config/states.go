package config

// SessionStateID is the state of the frame driver for one level run.
type SessionStateID int

const (
	SessionIdle SessionStateID = iota
	SessionRunning
	SessionLevelComplete
	SessionGameOver
)

func (s SessionStateID) String() string {
	switch s {
	case SessionIdle:
		return "idle"
	case SessionRunning:
		return "running"
	case SessionLevelComplete:
		return "level-complete"
	case SessionGameOver:
		return "game-over"
	}
	return "unknown"
}
