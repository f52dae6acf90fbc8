package systems

import (
	"fmt"
	"math"

	"github.com/carlos2058/ganho/components"
	cfg "github.com/carlos2058/ganho/config"
	"github.com/yohamta/donburi/ecs"
)

// Status is the read-only snapshot shown in the status panel.
type Status struct {
	Health      int // rounded, never negative
	Clip        int
	Reserve     int
	Enemies     int
	ZonePercent int // zone radius as a percentage of its initial radius
	Reloading   bool
}

// ReadStatus captures the status panel values. It never mutates the world.
func ReadStatus(ecs *ecs.ECS) Status {
	var s Status
	if entry, ok := GetPlayer(ecs); ok {
		player := components.Player.Get(entry)
		s.Health = int(math.Max(0, math.Round(components.Health.Get(entry).Current)))
		s.Clip = player.Clip
		s.Reserve = player.Reserve
		s.Reloading = player.Reloading()
	}
	s.Enemies = CountEnemies(ecs)
	s.ZonePercent = int(math.Round(GetZone(ecs).Percent()))
	return s
}

func (s Status) HealthText() string {
	return fmt.Sprintf(cfg.HUD.HealthFormat, s.Health)
}

func (s Status) AmmoText() string {
	return fmt.Sprintf(cfg.HUD.AmmoFormat, s.Clip, s.Reserve)
}

func (s Status) EnemiesText() string {
	return fmt.Sprintf(cfg.HUD.EnemiesFormat, s.Enemies)
}

func (s Status) ZoneText() string {
	return fmt.Sprintf(cfg.HUD.ZoneFormat, s.ZonePercent)
}
