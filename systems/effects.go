package systems

import (
	"github.com/carlos2058/ganho/components"
	"github.com/carlos2058/ganho/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateParticles drifts hit sparks with drag and removes the spent ones.
func UpdateParticles(ecs *ecs.ECS) {
	var toDestroy []*donburi.Entry

	components.Particle.Each(ecs.World, func(e *donburi.Entry) {
		particle := components.Particle.Get(e)
		pos := components.Position.Get(e)
		vel := components.Velocity.Get(e)

		pos.X += vel.X
		pos.Y += vel.Y
		vel.X *= config.Particles.Damping
		vel.Y *= config.Particles.Damping

		particle.Life--
		if particle.Life <= 0 {
			toDestroy = append(toDestroy, e)
		}
	})

	for _, e := range toDestroy {
		e.Remove()
	}
}
