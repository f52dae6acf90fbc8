package factory

import (
	"math"

	"github.com/carlos2058/ganho/archetypes"
	"github.com/carlos2058/ganho/components"
	cfg "github.com/carlos2058/ganho/config"
	"github.com/carlos2058/ganho/random"
	"github.com/carlos2058/ganho/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

func CreateEnemy(ecs *ecs.ECS, x, y, speed float64, shootTimer, ordinal int) *donburi.Entry {
	enemy := archetypes.Enemy.Spawn(ecs)

	pos := dmath.Vec2{X: x, Y: y}
	components.Position.SetValue(enemy, pos)
	components.Enemy.SetValue(enemy, components.EnemyData{
		Speed:      speed,
		ShootTimer: shootTimer,
		Ordinal:    ordinal,
	})
	components.Health.SetValue(enemy, components.HealthData{
		Current: cfg.Enemy.Health,
		Max:     cfg.Enemy.Health,
	})
	newBody(ecs, enemy, pos, cfg.Enemy.Radius, tags.ResolvEnemy)

	return enemy
}

// SpawnEnemies places count enemies around center. Each one draws, in order,
// its angle, distance, speed and initial shoot timer from src.
func SpawnEnemies(ecs *ecs.ECS, src random.Source, center dmath.Vec2, count int) []*donburi.Entry {
	enemies := make([]*donburi.Entry, 0, count)
	for i := 0; i < count; i++ {
		angle := random.Angle(src)
		dist := random.Range(src, cfg.Enemy.MinSpawnDistance, cfg.Enemy.MaxSpawnDistance)
		speed := random.Range(src, cfg.Enemy.MinSpeed, cfg.Enemy.MaxSpeed)
		timer := random.IntRange(src, 0, cfg.Enemy.InitialShootWindow)

		enemies = append(enemies, CreateEnemy(
			ecs,
			center.X+math.Cos(angle)*dist,
			center.Y+math.Sin(angle)*dist,
			speed,
			timer,
			i,
		))
	}
	return enemies
}
