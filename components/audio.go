package components

import (
	cfg "github.com/carlos2058/ganho/config"
	"github.com/yohamta/donburi"
)

// AudioData queues sound effects raised by gameplay systems (singleton component).
// The audio system drains the queue once per frame.
type AudioData struct {
	PendingSFX []cfg.SoundID
}

var Audio = donburi.NewComponentType[AudioData]()
