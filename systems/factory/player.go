package factory

import (
	"github.com/carlos2058/ganho/archetypes"
	"github.com/carlos2058/ganho/components"
	cfg "github.com/carlos2058/ganho/config"
	"github.com/carlos2058/ganho/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// CreatePlayer spawns the player at (x, y) with full health, a full clip and
// the starting reserve.
func CreatePlayer(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	pos := math.Vec2{X: x, Y: y}
	components.Position.SetValue(player, pos)
	components.Player.SetValue(player, components.PlayerData{
		Speed:   cfg.Player.Speed,
		Clip:    cfg.Weapon.ClipSize,
		Reserve: cfg.Weapon.StartingReserve,
	})
	components.Health.SetValue(player, components.HealthData{
		Current: cfg.Player.Health,
		Max:     cfg.Player.Health,
	})
	newBody(ecs, player, pos, cfg.Player.Radius, tags.ResolvPlayer)

	return player
}
