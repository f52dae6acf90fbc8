package factory

import (
	"github.com/carlos2058/ganho/archetypes"
	"github.com/carlos2058/ganho/components"
	cfg "github.com/carlos2058/ganho/config"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// CreateSpace creates the broadphase grid. The grid extends SpaceMargin past
// every arena edge, so object coordinates are arena coordinates shifted by
// the margin.
func CreateSpace(ecs *ecs.ECS) *donburi.Entry {
	space := archetypes.Space.Spawn(ecs)
	margin := int(cfg.Arena.SpaceMargin)
	spaceData := resolv.NewSpace(
		int(cfg.Arena.Width)+margin*2,
		int(cfg.Arena.Height)+margin*2,
		cfg.Arena.CellSize,
		cfg.Arena.CellSize,
	)
	components.Space.Set(space, spaceData)
	return space
}

// newBody creates a square collision object of the given half extent centred
// on pos and adds it to the space.
func newBody(ecs *ecs.ECS, entry *donburi.Entry, pos math.Vec2, half float64, tags ...string) {
	obj := resolv.NewObject(0, 0, half*2, half*2, tags...)
	obj.Data = entry
	components.Object.Set(entry, &components.ObjectData{Object: obj})

	components.Space.Get(components.Space.MustFirst(ecs.World)).Add(obj)
	components.Object.Get(entry).CenterOn(pos, cfg.Arena.SpaceMargin)
}
