package systems

import (
	"math"

	"github.com/carlos2058/ganho/components"
	cfg "github.com/carlos2058/ganho/config"
	"github.com/carlos2058/ganho/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DrawArena renders the ground and the zone boundary.
func DrawArena(ecs *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.Arena.BackgroundColor)

	zone := GetZone(ecs)
	vector.StrokeCircle(screen,
		float32(zone.Center.X), float32(zone.Center.Y), float32(zone.Radius),
		cfg.Zone.StrokeWidth, cfg.Zone.Color, true)
}

// DrawEntities renders the player, enemies with their health bars, bullets
// and particles. Drawing never mutates the world.
func DrawEntities(ecs *ecs.ECS, screen *ebiten.Image) {
	if entry, ok := GetPlayer(ecs); ok {
		pos := components.Position.Get(entry)
		player := components.Player.Get(entry)
		x, y := float32(pos.X), float32(pos.Y)

		vector.FillCircle(screen, x, y, float32(cfg.Player.DrawRadius), cfg.Player.Color, true)
		aimX := x + float32(math.Cos(player.Angle)*cfg.Player.AimLineLength)
		aimY := y + float32(math.Sin(player.Angle)*cfg.Player.AimLineLength)
		vector.StrokeLine(screen, x, y, aimX, aimY, 2, cfg.White, true)
	}

	tags.Enemy.Each(ecs.World, func(e *donburi.Entry) {
		pos := components.Position.Get(e)
		health := components.Health.Get(e)
		x, y := float32(pos.X), float32(pos.Y)

		vector.FillCircle(screen, x, y, float32(cfg.Enemy.Radius), cfg.Enemy.Color, true)

		barW := float32(cfg.Enemy.HealthBarWidth)
		barX := x - barW/2
		barY := y - float32(cfg.Enemy.HealthBarY)
		barH := float32(cfg.Enemy.HealthBarH)
		vector.FillRect(screen, barX, barY, barW, barH, cfg.Enemy.HealthBarBg, false)
		vector.FillRect(screen, barX, barY, barW*float32(health.Fraction()), barH, cfg.Enemy.HealthBarFg, false)
	})

	tags.Bullet.Each(ecs.World, func(e *donburi.Entry) {
		pos := components.Position.Get(e)
		bullet := components.Bullet.Get(e)
		vector.FillCircle(screen, float32(pos.X), float32(pos.Y), float32(cfg.Weapon.BulletRadius), bullet.Color, true)
	})

	components.Particle.Each(ecs.World, func(e *donburi.Entry) {
		pos := components.Position.Get(e)
		particle := components.Particle.Get(e)
		vector.FillCircle(screen, float32(pos.X), float32(pos.Y), float32(cfg.Particles.DrawRadius), particle.Color, true)
	})
}
