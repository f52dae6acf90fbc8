package components

import (
	"github.com/carlos2058/ganho/random"
	"github.com/yohamta/donburi"
)

// RandomData holds the single source every randomized spawn and aim
// parameter is drawn from (singleton component).
type RandomData struct {
	Source random.Source
}

var Random = donburi.NewComponentType[RandomData]()
