package systems

import (
	"github.com/carlos2058/ganho/components"
	"github.com/carlos2058/ganho/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateBullets moves every bullet and drops the ones that expired or left
// the arena.
func UpdateBullets(ecs *ecs.ECS) {
	var toRemove []*donburi.Entry

	tags.Bullet.Each(ecs.World, func(e *donburi.Entry) {
		bullet := components.Bullet.Get(e)
		pos := components.Position.Get(e)
		vel := components.Velocity.Get(e)

		pos.X += vel.X
		pos.Y += vel.Y
		bullet.Life--

		if bullet.Life <= 0 || !inArena(*pos) {
			toRemove = append(toRemove, e)
		}
	})

	for _, bullet := range toRemove {
		removeEntity(ecs, bullet)
	}
}
