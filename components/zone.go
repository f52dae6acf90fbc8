package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// ZoneData is the shrinking circular safe area (singleton component).
type ZoneData struct {
	Center        math.Vec2
	Radius        float64
	InitialRadius float64
	MinRadius     float64
	ShrinkRate    float64
}

// Contains reports whether p is inside or on the zone boundary.
func (z *ZoneData) Contains(p math.Vec2) bool {
	dx, dy := p.X-z.Center.X, p.Y-z.Center.Y
	return dx*dx+dy*dy <= z.Radius*z.Radius
}

// Percent is the current radius as a percentage of the initial radius.
func (z *ZoneData) Percent() float64 {
	if z.InitialRadius <= 0 {
		return 0
	}
	return z.Radius / z.InitialRadius * 100
}

var Zone = donburi.NewComponentType[ZoneData]()
