package systems

import (
	"github.com/automoto/survivor/components"
	"github.com/automoto/survivor/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateBullets culls bullets outside the playfield, then moves the rest.
// A bullet is tested before it moves, so it can sit one step past the edge for a frame.
func UpdateBullets(e *ecs.ECS) {
	field := getPlayfield(e)

	var toRemove []*donburi.Entry
	tags.Bullet.Each(e.World, func(entry *donburi.Entry) {
		obj := components.Object.Get(entry)
		if !field.Contains(obj.X, obj.Y) {
			toRemove = append(toRemove, entry)
		}
	})
	for _, entry := range toRemove {
		entry.Remove()
	}

	tags.Bullet.Each(e.World, func(entry *donburi.Entry) {
		obj := components.Object.Get(entry)
		b := components.Bullet.Get(entry)
		obj.X += b.DX
		obj.Y += b.DY
	})
}
