package systems

import (
	"math"

	"github.com/carlos2058/ganho/components"
	cfg "github.com/carlos2058/ganho/config"
	"github.com/carlos2058/ganho/random"
	"github.com/carlos2058/ganho/systems/factory"
	"github.com/carlos2058/ganho/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	math2 "github.com/yohamta/donburi/features/math"
)

type enemyShot struct {
	from  math2.Vec2
	angle float64
}

// UpdateEnemies runs the enemy AI: every live enemy walks straight at the
// player, fires when its timer has run out and the player is in range, and
// takes zone damage while outside the zone.
func UpdateEnemies(ecs *ecs.ECS) {
	playerEntry, ok := GetPlayer(ecs)
	if !ok {
		return
	}
	target := *components.Position.Get(playerEntry)
	zone := GetZone(ecs)
	src := GetRandom(ecs)

	// Bullets are spawned after the walk so the enemy query is not modified
	// while it is being iterated.
	var shots []enemyShot
	tags.Enemy.Each(ecs.World, func(e *donburi.Entry) {
		health := components.Health.Get(e)
		if health.Current <= 0 {
			return
		}
		enemy := components.Enemy.Get(e)
		pos := components.Position.Get(e)

		heading := math.Atan2(target.Y-pos.Y, target.X-pos.X)
		pos.X += math.Cos(heading) * enemy.Speed
		pos.Y += math.Sin(heading) * enemy.Speed

		enemy.ShootTimer--
		if enemy.ShootTimer <= 0 && distance(*pos, target) < cfg.Enemy.FireRange {
			shots = append(shots, enemyShot{
				from:  *pos,
				angle: heading + random.Jitter(src, cfg.Enemy.AimJitter),
			})
			enemy.ShootTimer = random.IntRange(src, cfg.Enemy.ShootCooldownMin, cfg.Enemy.ShootCooldownMax)
		}

		if !zone.Contains(*pos) {
			health.Current -= cfg.Enemy.ZoneDamage
		}
	})

	for _, shot := range shots {
		factory.CreateBullet(ecs, shot.from, shot.angle, factory.EnemyBullet())
	}
	if len(shots) > 0 {
		PlaySFX(ecs, cfg.SoundEnemyShot)
	}
}

// PruneEnemies removes every enemy whose health has run out.
func PruneEnemies(ecs *ecs.ECS) {
	var toRemove []*donburi.Entry
	tags.Enemy.Each(ecs.World, func(e *donburi.Entry) {
		if components.Health.Get(e).Current <= 0 {
			toRemove = append(toRemove, e)
		}
	})
	for _, e := range toRemove {
		removeEntity(ecs, e)
	}
}
