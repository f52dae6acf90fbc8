package factory

import (
	"image/color"
	"math"

	"github.com/carlos2058/ganho/archetypes"
	"github.com/carlos2058/ganho/components"
	cfg "github.com/carlos2058/ganho/config"
	"github.com/carlos2058/ganho/random"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// SpawnHitEffect emits a burst of particles at pos flying out in random
// directions. Each particle draws its angle, speed and lifetime from src.
func SpawnHitEffect(ecs *ecs.ECS, src random.Source, pos dmath.Vec2, c color.RGBA) {
	for i := 0; i < cfg.Particles.BurstCount; i++ {
		angle := random.Angle(src)
		speed := random.Range(src, cfg.Particles.MinSpeed, cfg.Particles.MaxSpeed)
		life := cfg.Particles.MinLife + random.IntRange(src, 0, cfg.Particles.LifeSpread)

		p := archetypes.Particle.Spawn(ecs)
		components.Position.SetValue(p, pos)
		components.Velocity.SetValue(p, dmath.Vec2{
			X: math.Cos(angle) * speed,
			Y: math.Sin(angle) * speed,
		})
		components.Particle.SetValue(p, components.ParticleData{
			Life:  life,
			Color: c,
		})
	}
}
