package factory

import (
	"image/color"
	"math"

	"github.com/carlos2058/ganho/archetypes"
	"github.com/carlos2058/ganho/components"
	cfg "github.com/carlos2058/ganho/config"
	"github.com/carlos2058/ganho/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// BulletSpec describes a shot independent of who fired it.
type BulletSpec struct {
	Speed    float64
	Damage   float64
	Life     int
	Friendly bool
	Color    color.RGBA
}

// PlayerBullet is the player's gun.
func PlayerBullet() BulletSpec {
	return BulletSpec{
		Speed:    cfg.Weapon.BulletSpeed,
		Damage:   cfg.Weapon.BulletDamage,
		Life:     cfg.Weapon.BulletLife,
		Friendly: true,
		Color:    cfg.Weapon.BulletColor,
	}
}

// EnemyBullet is the gun every enemy carries.
func EnemyBullet() BulletSpec {
	return BulletSpec{
		Speed:  cfg.Enemy.BulletSpeed,
		Damage: cfg.Enemy.BulletDamage,
		Life:   cfg.Enemy.BulletLife,
		Color:  cfg.Enemy.BulletColor,
	}
}

// CreateBullet spawns a projectile at from travelling along angle.
func CreateBullet(ecs *ecs.ECS, from dmath.Vec2, angle float64, spec BulletSpec) *donburi.Entry {
	b := archetypes.Bullet.Spawn(ecs)

	components.Position.SetValue(b, from)
	components.Velocity.SetValue(b, dmath.Vec2{
		X: math.Cos(angle) * spec.Speed,
		Y: math.Sin(angle) * spec.Speed,
	})
	components.Bullet.SetValue(b, components.BulletData{
		Life:     spec.Life,
		Damage:   spec.Damage,
		Friendly: spec.Friendly,
		Color:    spec.Color,
	})

	// The body is as wide as the hit radius of whatever the bullet can hit,
	// so the broadphase never misses a contact the distance test accepts.
	if spec.Friendly {
		newBody(ecs, b, from, cfg.Enemy.HitRadius, tags.ResolvBullet)
	} else {
		newBody(ecs, b, from, cfg.Player.HitRadius, tags.ResolvBullet, tags.ResolvHostileBullet)
	}

	return b
}
