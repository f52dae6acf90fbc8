package systems

import (
	"math"

	"github.com/carlos2058/ganho/components"
	cfg "github.com/carlos2058/ganho/config"
	"github.com/carlos2058/ganho/random"
	"github.com/carlos2058/ganho/systems/factory"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePlayerMovement moves the player along the held directions and
// points the aim at the cursor. Diagonals are normalized so every direction
// covers the same distance per tick.
func UpdatePlayerMovement(ecs *ecs.ECS) {
	entry, ok := GetPlayer(ecs)
	if !ok {
		return
	}
	session := GetSession(ecs)
	player := components.Player.Get(entry)
	pos := components.Position.Get(entry)

	dx, dy := moveVector(session.Keys)
	if dx != 0 || dy != 0 {
		length := math.Hypot(dx, dy)
		pos.X += dx / length * player.Speed
		pos.Y += dy / length * player.Speed
	}

	r := cfg.Player.Radius
	pos.X = clamp(pos.X, r, cfg.Arena.Width-r)
	pos.Y = clamp(pos.Y, r, cfg.Arena.Height-r)

	player.Angle = math.Atan2(session.Pointer.Y-pos.Y, session.Pointer.X-pos.X)
}

// UpdatePlayerHazard drains the player's health while outside the zone.
func UpdatePlayerHazard(ecs *ecs.ECS) {
	entry, ok := GetPlayer(ecs)
	if !ok {
		return
	}
	if !GetZone(ecs).Contains(*components.Position.Get(entry)) {
		components.Health.Get(entry).Current -= cfg.Player.ZoneDamage
	}
}

// UpdatePlayerTimers counts down the fire cooldown and the reload. A
// finished reload tops the clip up from the reserve.
func UpdatePlayerTimers(ecs *ecs.ECS) {
	entry, ok := GetPlayer(ecs)
	if !ok {
		return
	}
	player := components.Player.Get(entry)

	if player.FireCooldown > 0 {
		player.FireCooldown--
	}
	if player.ReloadTime > 0 {
		player.ReloadTime--
		if player.ReloadTime <= 0 {
			gained := min(cfg.Weapon.ClipSize-player.Clip, player.Reserve)
			player.Clip += gained
			player.Reserve -= gained
		}
	}
}

// Fire shoots one bullet along the player's aim. It does nothing and
// returns false unless a round is running, the gun is cooled down, no reload
// is in progress and the clip is not empty.
func Fire(ecs *ecs.ECS) bool {
	if !GetSession(ecs).Running {
		return false
	}
	entry, ok := GetPlayer(ecs)
	if !ok {
		return false
	}
	player := components.Player.Get(entry)
	if player.FireCooldown > 0 || player.ReloadTime > 0 || player.Clip <= 0 {
		return false
	}

	angle := player.Angle + random.Jitter(GetRandom(ecs), cfg.Weapon.AimJitter)
	factory.CreateBullet(ecs, *components.Position.Get(entry), angle, factory.PlayerBullet())
	player.Clip--
	player.FireCooldown = cfg.Weapon.FireCooldown

	PlaySFX(ecs, cfg.SoundShot)
	return true
}

// Reload starts refilling the clip. The ammo moves when the timer runs out,
// and a reload in progress cannot be cancelled or restarted.
func Reload(ecs *ecs.ECS) bool {
	if !GetSession(ecs).Running {
		return false
	}
	entry, ok := GetPlayer(ecs)
	if !ok {
		return false
	}
	player := components.Player.Get(entry)
	if player.Clip >= cfg.Weapon.ClipSize || player.Reserve <= 0 || player.ReloadTime > 0 {
		return false
	}

	player.ReloadTime = cfg.Weapon.ReloadTime
	PlaySFX(ecs, cfg.SoundReload)
	return true
}

// moveVector converts held directions into an unnormalized step.
// Opposite directions cancel out.
func moveVector(keys components.Direction) (dx, dy float64) {
	if keys.Has(components.DirUp) {
		dy--
	}
	if keys.Has(components.DirDown) {
		dy++
	}
	if keys.Has(components.DirLeft) {
		dx--
	}
	if keys.Has(components.DirRight) {
		dx++
	}
	return dx, dy
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

