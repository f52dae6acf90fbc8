package systems

import (
	"testing"

	"github.com/carlos2058/ganho/components"
	"github.com/carlos2058/ganho/random"
	"github.com/carlos2058/ganho/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	math2 "github.com/yohamta/donburi/features/math"
)

// newArena builds an idle arena drawing randomness from src.
func newArena(t *testing.T, src random.Source) *ecs.ECS {
	t.Helper()
	e := ecs.NewECS(donburi.NewWorld())
	InitArena(e, src)
	return e
}

// newRound builds an arena and starts a round.
func newRound(t *testing.T, src random.Source) *ecs.ECS {
	t.Helper()
	e := newArena(t, src)
	ResetGame(e)
	return e
}

func mustPlayer(t *testing.T, e *ecs.ECS) *donburi.Entry {
	t.Helper()
	entry, ok := GetPlayer(e)
	if !ok {
		t.Fatal("no player in the world")
	}
	return entry
}

func entries(e *ecs.ECS, tag *donburi.ComponentType[donburi.Tag]) []*donburi.Entry {
	var out []*donburi.Entry
	tag.Each(e.World, func(entry *donburi.Entry) {
		out = append(out, entry)
	})
	return out
}

func countParticles(e *ecs.ECS) int {
	return len(entries(e, tags.Particle))
}

// clearEnemies removes every enemy so a test can place its own.
func clearEnemies(e *ecs.ECS) {
	removeAll(e, tags.Enemy)
}

func setPosition(entry *donburi.Entry, x, y float64) {
	components.Position.SetValue(entry, math2.Vec2{X: x, Y: y})
}

func almostEqual(a, b float64) bool {
	const eps = 1e-9
	d := a - b
	return d < eps && d > -eps
}
