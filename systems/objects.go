package systems

import (
	"github.com/carlos2058/ganho/components"
	cfg "github.com/carlos2058/ganho/config"
	"github.com/yohamta/donburi/ecs"
)

// UpdateObjects moves every broadphase body onto its entity's position.
func UpdateObjects(ecs *ecs.ECS) {
	for e := range components.Object.Iter(ecs.World) {
		if !e.HasComponent(components.Position) {
			continue
		}
		obj := components.Object.Get(e)
		obj.CenterOn(*components.Position.Get(e), cfg.Arena.SpaceMargin)
	}
}
