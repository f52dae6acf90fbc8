package systems

import (
	"math"

	"github.com/yohamta/donburi/ecs"
)

// UpdateZone advances the round clock and shrinks the zone, never below its
// minimum radius.
func UpdateZone(e *ecs.ECS) {
	GetSession(e).Tick++

	zone := GetZone(e)
	zone.Radius = math.Max(zone.Radius-zone.ShrinkRate, zone.MinRadius)
}
