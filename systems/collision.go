package systems

import (
	"image/color"

	"github.com/carlos2058/ganho/components"
	cfg "github.com/carlos2058/ganho/config"
	"github.com/carlos2058/ganho/systems/factory"
	"github.com/carlos2058/ganho/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	math2 "github.com/yohamta/donburi/features/math"
)

type hitEffect struct {
	at    math2.Vec2
	color color.RGBA
}

// UpdateCollisions resolves bullet hits. A friendly bullet damages the first
// live enemy within reach, a hostile bullet damages the player. Either way
// the bullet is spent and removed in the same tick, so it scores at most one
// hit.
func UpdateCollisions(ecs *ecs.ECS) {
	var toRemove []*donburi.Entry
	var effects []hitEffect
	playerHit, enemyHit := false, false

	tags.Bullet.Each(ecs.World, func(e *donburi.Entry) {
		bullet := components.Bullet.Get(e)
		if bullet.Life <= 0 {
			return
		}
		pos := *components.Position.Get(e)
		obj := components.Object.Get(e)

		var target *donburi.Entry
		var hitColor color.RGBA
		if bullet.Friendly {
			target = firstEnemyHit(obj, pos)
			hitColor = cfg.Enemy.HitColor
			enemyHit = enemyHit || target != nil
		} else {
			target = playerHitBy(obj, pos)
			hitColor = cfg.Player.HitColor
			playerHit = playerHit || target != nil
		}
		if target == nil {
			return
		}

		components.Health.Get(target).Current -= bullet.Damage
		bullet.Life = 0
		toRemove = append(toRemove, e)
		effects = append(effects, hitEffect{
			at:    *components.Position.Get(target),
			color: hitColor,
		})
	})

	for _, bullet := range toRemove {
		removeEntity(ecs, bullet)
	}

	src := GetRandom(ecs)
	for _, fx := range effects {
		factory.SpawnHitEffect(ecs, src, fx.at, fx.color)
	}
	if playerHit {
		PlaySFX(ecs, cfg.SoundPlayerHit)
	}
	if enemyHit {
		PlaySFX(ecs, cfg.SoundHit)
	}
}

// firstEnemyHit returns the live enemy with the lowest spawn ordinal within
// hit range of pos, or nil. The broadphase only narrows the candidates; the
// distance test decides.
func firstEnemyHit(obj *components.ObjectData, pos math2.Vec2) *donburi.Entry {
	check := obj.Check(0, 0, tags.ResolvEnemy)
	if check == nil {
		return nil
	}

	var first *donburi.Entry
	firstOrdinal := 0
	for _, o := range check.ObjectsByTags(tags.ResolvEnemy) {
		entry, ok := o.Data.(*donburi.Entry)
		if !ok || entry == nil || !entry.Valid() {
			continue
		}
		if components.Health.Get(entry).Current <= 0 {
			continue
		}
		if distance(pos, *components.Position.Get(entry)) >= cfg.Enemy.HitRadius {
			continue
		}
		ordinal := components.Enemy.Get(entry).Ordinal
		if first == nil || ordinal < firstOrdinal {
			first = entry
			firstOrdinal = ordinal
		}
	}
	return first
}

// playerHitBy returns the player if pos is within its hit radius, or nil.
func playerHitBy(obj *components.ObjectData, pos math2.Vec2) *donburi.Entry {
	check := obj.Check(0, 0, tags.ResolvPlayer)
	if check == nil {
		return nil
	}
	for _, o := range check.ObjectsByTags(tags.ResolvPlayer) {
		entry, ok := o.Data.(*donburi.Entry)
		if !ok || entry == nil || !entry.Valid() {
			continue
		}
		if distance(pos, *components.Position.Get(entry)) < cfg.Player.HitRadius {
			return entry
		}
	}
	return nil
}
