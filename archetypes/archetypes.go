package archetypes

import (
	"github.com/carlos2058/ganho/components"
	cfg "github.com/carlos2058/ganho/config"
	"github.com/carlos2058/ganho/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Position,
		components.Health,
		components.Object,
	)
	Enemy = newArchetype(
		tags.Enemy,
		components.Enemy,
		components.Position,
		components.Health,
		components.Object,
	)
	Bullet = newArchetype(
		tags.Bullet,
		components.Bullet,
		components.Position,
		components.Velocity,
		components.Object,
	)
	Particle = newArchetype(
		tags.Particle,
		components.Particle,
		components.Position,
		components.Velocity,
	)
	Space = newArchetype(
		components.Space,
	)
	Zone = newArchetype(
		components.Zone,
	)
	Session = newArchetype(
		components.Session,
		components.Random,
	)
	Input = newArchetype(
		components.Input,
	)
	Pause = newArchetype(
		components.Pause,
	)
	Audio = newArchetype(
		components.Audio,
	)
	Banner = newArchetype(
		components.Banner,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
