package components

import (
	"image/color"

	"github.com/yohamta/donburi"
)

// ParticleData is a cosmetic spark from a hit burst.
type ParticleData struct {
	Life  int // frames remaining
	Color color.RGBA
}

var Particle = donburi.NewComponentType[ParticleData]()
