package components

import "github.com/yohamta/donburi"

// PlayfieldData is the rectangle [0,Width]x[0,Height] entities are culled against.
type PlayfieldData struct {
	Width  float64
	Height float64
}

// Contains reports whether the point lies inside the playfield, edges included.
func (p *PlayfieldData) Contains(x, y float64) bool {
	return x >= 0 && x <= p.Width && y >= 0 && y <= p.Height
}

var Playfield = donburi.NewComponentType[PlayfieldData]()
