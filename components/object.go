package components

import (
	"image/color"
	"math"

	"github.com/yohamta/donburi"
)

// Vector represents a 2D vector.
type Vector struct {
	X, Y float64
}

// ObjectData is the circle every arena entity occupies: center, radius and draw color.
type ObjectData struct {
	X, Y   float64
	Radius float64
	Color  color.RGBA
}

// DistanceTo returns the distance between the centers of two objects.
func (o *ObjectData) DistanceTo(other *ObjectData) float64 {
	return math.Hypot(other.X-o.X, other.Y-o.Y)
}

// Overlaps reports whether two circles intersect (strictly closer than the sum of radii).
func (o *ObjectData) Overlaps(other *ObjectData) bool {
	return o.DistanceTo(other) < o.Radius+other.Radius
}

var Object = donburi.NewComponentType[ObjectData]()
