package systems

import (
	"math"

	"github.com/carlos2058/ganho/archetypes"
	"github.com/carlos2058/ganho/components"
	cfg "github.com/carlos2058/ganho/config"
	"github.com/carlos2058/ganho/random"
	"github.com/carlos2058/ganho/systems/factory"
	"github.com/carlos2058/ganho/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// InitArena creates the singletons a round needs and places an idle player
// in the middle of the arena. No round is running afterwards.
func InitArena(e *ecs.ECS, src random.Source) {
	factory.CreateSpace(e)

	center := ArenaCenter()
	zone := archetypes.Zone.Spawn(e)
	components.Zone.SetValue(zone, components.ZoneData{
		Center:        center,
		Radius:        cfg.Zone.InitialRadius,
		InitialRadius: cfg.Zone.InitialRadius,
		MinRadius:     cfg.Zone.MinRadius,
		ShrinkRate:    cfg.Zone.ShrinkRate,
	})

	session := archetypes.Session.Spawn(e)
	components.Session.SetValue(session, components.SessionData{
		Pointer: center,
	})
	components.Random.SetValue(session, components.RandomData{Source: src})

	factory.CreatePlayer(e, center.X, center.Y)
}

// ArenaCenter is the spawn point of the player and the centre of the zone.
func ArenaCenter() dmath.Vec2 {
	return dmath.Vec2{X: cfg.Arena.Width / 2, Y: cfg.Arena.Height / 2}
}

// GetSession returns the singleton session state.
func GetSession(e *ecs.ECS) *components.SessionData {
	return components.Session.Get(components.Session.MustFirst(e.World))
}

// GetZone returns the singleton zone.
func GetZone(e *ecs.ECS) *components.ZoneData {
	return components.Zone.Get(components.Zone.MustFirst(e.World))
}

// GetRandom returns the source all gameplay randomness is drawn from.
func GetRandom(e *ecs.ECS) random.Source {
	return components.Random.Get(components.Random.MustFirst(e.World)).Source
}

// GetPlayer returns the player entry, if one exists.
func GetPlayer(e *ecs.ECS) (*donburi.Entry, bool) {
	return tags.Player.First(e.World)
}

// CountEnemies returns the number of enemies still in the world.
func CountEnemies(e *ecs.ECS) int {
	count := 0
	tags.Enemy.Each(e.World, func(entry *donburi.Entry) {
		count++
	})
	return count
}

// removeEntity deletes an entry and, if it has a body, takes it out of the space.
func removeEntity(e *ecs.ECS, entry *donburi.Entry) {
	if !entry.Valid() {
		return
	}
	if entry.HasComponent(components.Object) {
		obj := components.Object.Get(entry)
		if obj.Space != nil {
			obj.Space.Remove(obj.Object)
		}
	}
	e.World.Remove(entry.Entity())
}

// removeAll deletes every entry carrying the tag.
func removeAll(e *ecs.ECS, tag *donburi.ComponentType[donburi.Tag]) {
	var toRemove []*donburi.Entry
	tag.Each(e.World, func(entry *donburi.Entry) {
		toRemove = append(toRemove, entry)
	})
	for _, entry := range toRemove {
		removeEntity(e, entry)
	}
}

func distance(a, b dmath.Vec2) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

func inArena(p dmath.Vec2) bool {
	return p.X >= 0 && p.X <= cfg.Arena.Width && p.Y >= 0 && p.Y <= cfg.Arena.Height
}
