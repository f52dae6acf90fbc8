package components

import (
	"image/color"

	"github.com/yohamta/donburi"
)

type BulletData struct {
	Life     int // ticks remaining, removed at <= 0
	Damage   float64
	Friendly bool // fired by the player
	Color    color.RGBA
}

var Bullet = donburi.NewComponentType[BulletData]()
