package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// PulseData drives the cosmetic size pulse of pickups. It never changes the
// collision radius.
type PulseData struct {
	Grow      *gween.Tween
	Shrink    *gween.Tween
	Shrinking bool
	Scale     float32 // current draw scale (1 = collision radius)
}

var Pulse = donburi.NewComponentType[PulseData]()
