package components

import (
	"github.com/yohamta/donburi"
)

type EnemyData struct {
	Speed      float64
	ShootTimer int // ticks until the enemy may fire again
	// Ordinal is the spawn order. Lower ordinals are hit first when a bullet
	// overlaps several enemies in the same tick.
	Ordinal int
}

var Enemy = donburi.NewComponentType[EnemyData]()
