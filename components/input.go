package components

import (
	cfg "github.com/automoto/survivor/config"
	"github.com/yohamta/donburi"
)

// InputMethod represents the type of input device being used
type InputMethod int

const (
	InputKeyboard InputMethod = iota
	InputXbox
	InputPlayStation
)

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// InputData is the per-tick input snapshot every simulation phase reads.
// JustPressed/JustReleased are computed on-demand by comparing frames.
type InputData struct {
	Current         [cfg.ActionCount]bool // Current frame's Pressed state
	Previous        [cfg.ActionCount]bool // Previous frame's Pressed state
	CursorX         float64               // Aim point in logical screen coordinates
	CursorY         float64
	LastInputMethod InputMethod // Most recently used input method

	// Mouse position seen on the previous poll. A still mouse does not
	// override stick aiming.
	LastMouseX, LastMouseY int

	// Set after the first poll. Keys already held when a scene starts are
	// not reported as JustPressed, and the cursor adopts the pointer.
	Primed bool
}

var Input = donburi.NewComponentType[InputData]()
