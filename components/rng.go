package components

import "github.com/yohamta/donburi"

// Rand is the subset of *rand.Rand the simulation rolls against.
type Rand interface {
	Float64() float64
	Intn(n int) int
}

type RNGData struct {
	Rand Rand
}

var RNG = donburi.NewComponentType[RNGData]()
