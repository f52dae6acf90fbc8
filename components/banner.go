package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// BannerKind selects the overlay text shown while no round is running.
type BannerKind int

const (
	BannerNone BannerKind = iota
	BannerIdle
	BannerDefeat
	BannerVictory
)

// BannerData drives the overlay fade-in (singleton component).
type BannerData struct {
	Kind BannerKind
	// Fade eases Progress from 0 to 1 whenever Kind changes.
	Fade     *gween.Tween
	Progress float32
}

var Banner = donburi.NewComponentType[BannerData]()
