package systems

import (
	"image"
	"image/color"
	"math"

	"github.com/automoto/survivor/components"
	cfg "github.com/automoto/survivor/config"
	"github.com/automoto/survivor/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	whiteImage    *ebiten.Image
	whiteSubImage *ebiten.Image
	triVertices   = make([]ebiten.Vertex, 3)
	triIndices    = []uint16{0, 1, 2}
	triOp         = &ebiten.DrawTrianglesOptions{}
)

var arenaBackground = color.RGBA{R: 10, G: 10, B: 20, A: 255}

// DrawArena renders the playfield: powerups, enemies, bullets, then the player on top.
func DrawArena(ecs *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(arenaBackground)

	tags.Powerup.Each(ecs.World, func(e *donburi.Entry) {
		obj := components.Object.Get(e)
		scale := float32(1)
		if e.HasComponent(components.Pulse) {
			scale = components.Pulse.Get(e).Scale
		}
		drawCircle(screen, obj, float32(obj.Radius)*scale)
	})

	tags.Enemy.Each(ecs.World, func(e *donburi.Entry) {
		obj := components.Object.Get(e)
		vector.FillCircle(screen, float32(obj.X), float32(obj.Y), float32(obj.Radius),
			EnemyColor(obj.Color, components.Health.Get(e)), true)
	})

	tags.Bullet.Each(ecs.World, func(e *donburi.Entry) {
		obj := components.Object.Get(e)
		drawCircle(screen, obj, float32(obj.Radius))
	})

	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	s := GetOrCreateSession(ecs)
	drawPlayer(screen, components.Object.Get(playerEntry), components.Player.Get(playerEntry), PlayerColor(s))
}

// PlayerColor picks the player tint: damage flash first, then god mode, then the base color.
func PlayerColor(s *components.SessionData) color.RGBA {
	switch {
	case s.DamageFlash > 0:
		return cfg.Player.DamageColor
	case s.GodMode:
		return cfg.Player.GodModeColor
	}
	return cfg.Player.Color
}

// EnemyColor fades a wounded enemy toward white, halfway at zero health.
func EnemyColor(base color.RGBA, h *components.HealthData) color.RGBA {
	if h.Max <= 0 || h.Current >= h.Max {
		return base
	}
	lost := float64(h.Max-max(h.Current, 0)) / float64(h.Max) / 2
	fade := func(c uint8) uint8 {
		return c + uint8(float64(255-c)*lost)
	}
	return color.RGBA{R: fade(base.R), G: fade(base.G), B: fade(base.B), A: base.A}
}

func drawCircle(screen *ebiten.Image, obj *components.ObjectData, radius float32) {
	vector.FillCircle(screen, float32(obj.X), float32(obj.Y), radius, obj.Color, true)
}

// drawPlayer draws the ship triangle rotated to face the cursor.
func drawPlayer(screen *ebiten.Image, obj *components.ObjectData, player *components.PlayerData, c color.RGBA) {
	if whiteImage == nil {
		whiteImage = ebiten.NewImage(3, 3)
		whiteImage.Fill(color.White)
		whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}

	points := TrianglePoints(obj.X, obj.Y, player.Angle)
	r, g, b, a := float32(c.R)/255, float32(c.G)/255, float32(c.B)/255, float32(c.A)/255
	for i, p := range points {
		triVertices[i] = ebiten.Vertex{
			DstX:   float32(p.X),
			DstY:   float32(p.Y),
			SrcX:   1,
			SrcY:   1,
			ColorR: r,
			ColorG: g,
			ColorB: b,
			ColorA: a,
		}
	}
	screen.DrawTriangles(triVertices, triIndices, whiteSubImage, triOp)
}

// TrianglePoints returns the nose and the two tail corners of the player ship
// centered at (x, y) and rotated by angle.
func TrianglePoints(x, y, angle float64) [3]components.Vector {
	local := [3]components.Vector{
		{X: cfg.Player.NoseLength, Y: 0},
		{X: -cfg.Player.TailLength, Y: -cfg.Player.HalfWidth},
		{X: -cfg.Player.TailLength, Y: cfg.Player.HalfWidth},
	}

	sin, cos := math.Sincos(angle)
	var out [3]components.Vector
	for i, p := range local {
		out[i] = components.Vector{
			X: x + p.X*cos - p.Y*sin,
			Y: y + p.X*sin + p.Y*cos,
		}
	}
	return out
}
