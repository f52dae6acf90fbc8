package components

import (
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	Speed        float64
	Angle        float64 // aim, radians
	Clip         int
	Reserve      int
	FireCooldown int // ticks until the next shot is allowed
	ReloadTime   int // ticks until the pending reload completes, 0 = idle
}

// Reloading reports whether a reload is in progress.
func (p *PlayerData) Reloading() bool {
	return p.ReloadTime > 0
}

var Player = donburi.NewComponentType[PlayerData]()
