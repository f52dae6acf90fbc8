package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// Position is an entity's centre in arena coordinates.
var Position = donburi.NewComponentType[math.Vec2]()

// Velocity is the per-tick displacement of bullets and particles.
var Velocity = donburi.NewComponentType[math.Vec2]()
