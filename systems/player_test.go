package systems

import (
	"math"
	"testing"

	"github.com/carlos2058/ganho/components"
	cfg "github.com/carlos2058/ganho/config"
	"github.com/carlos2058/ganho/random"
	"github.com/carlos2058/ganho/tags"
)

func TestFireOnceScenario(t *testing.T) {
	e := newRound(t, random.Fixed(0.5))

	if !Fire(e) {
		t.Fatal("Fire = false, want true")
	}

	player := components.Player.Get(mustPlayer(t, e))
	if player.Clip != 23 || player.Reserve != 96 {
		t.Fatalf("ammo = %d / %d, want 23 / 96", player.Clip, player.Reserve)
	}
	if player.FireCooldown != 9 {
		t.Fatalf("cooldown = %d, want 9", player.FireCooldown)
	}

	bullets := entries(e, tags.Bullet)
	if len(bullets) != 1 {
		t.Fatalf("bullets = %d, want 1", len(bullets))
	}
	bullet := components.Bullet.Get(bullets[0])
	if !bullet.Friendly || bullet.Damage != 26 || bullet.Life != 80 {
		t.Fatalf("bullet = %+v, want friendly, damage 26, life 80", *bullet)
	}
	vel := components.Velocity.Get(bullets[0])
	if speed := math.Hypot(vel.X, vel.Y); !almostEqual(speed, 8.8) {
		t.Fatalf("bullet speed = %v, want 8.8", speed)
	}
}

func TestFireRejected(t *testing.T) {
	tests := []struct {
		name  string
		setup func(*components.PlayerData, *components.SessionData)
	}{
		{"empty clip", func(p *components.PlayerData, _ *components.SessionData) { p.Clip = 0 }},
		{"cooling down", func(p *components.PlayerData, _ *components.SessionData) { p.FireCooldown = 3 }},
		{"reloading", func(p *components.PlayerData, _ *components.SessionData) { p.ReloadTime = 10 }},
		{"not running", func(_ *components.PlayerData, s *components.SessionData) { s.Running = false }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newRound(t, random.Fixed(0.5))
			player := components.Player.Get(mustPlayer(t, e))
			tt.setup(player, GetSession(e))
			before := *player

			if Fire(e) {
				t.Fatal("Fire = true, want false")
			}
			if *player != before {
				t.Fatalf("player changed: %+v -> %+v", before, *player)
			}
			if n := len(entries(e, tags.Bullet)); n != 0 {
				t.Fatalf("bullets = %d, want 0", n)
			}
		})
	}
}

func TestFireCooldownGatesNextShot(t *testing.T) {
	e := newRound(t, random.Fixed(0.5))
	Fire(e)

	for i := 0; i < 8; i++ {
		UpdatePlayerTimers(e)
		if Fire(e) {
			t.Fatalf("fired %d ticks after the last shot", i+1)
		}
	}
	UpdatePlayerTimers(e)
	if !Fire(e) {
		t.Fatal("cannot fire once the cooldown ran out")
	}
}

func TestReload(t *testing.T) {
	e := newRound(t, random.Fixed(0.5))
	player := components.Player.Get(mustPlayer(t, e))
	player.Clip = 10
	player.Reserve = 5

	if !Reload(e) {
		t.Fatal("Reload = false, want true")
	}
	if player.ReloadTime != 70 {
		t.Fatalf("reload time = %d, want 70", player.ReloadTime)
	}
	if Reload(e) {
		t.Fatal("Reload restarted a reload in progress")
	}

	for i := 0; i < 69; i++ {
		UpdatePlayerTimers(e)
	}
	if player.Clip != 10 || player.Reserve != 5 {
		t.Fatalf("ammo moved early: %d / %d", player.Clip, player.Reserve)
	}

	UpdatePlayerTimers(e)
	if player.Clip != 15 || player.Reserve != 0 {
		t.Fatalf("ammo = %d / %d after reload, want 15 / 0", player.Clip, player.Reserve)
	}
	if player.Reloading() {
		t.Fatal("still reloading after the timer ran out")
	}
}

func TestReloadCapsAtClipSize(t *testing.T) {
	e := newRound(t, random.Fixed(0.5))
	player := components.Player.Get(mustPlayer(t, e))
	player.Clip = 20

	Reload(e)
	for i := 0; i < 70; i++ {
		UpdatePlayerTimers(e)
	}

	if player.Clip != 24 || player.Reserve != 92 {
		t.Fatalf("ammo = %d / %d, want 24 / 92", player.Clip, player.Reserve)
	}
}

func TestReloadRejected(t *testing.T) {
	tests := []struct {
		name  string
		setup func(*components.PlayerData, *components.SessionData)
	}{
		{"full clip", func(p *components.PlayerData, _ *components.SessionData) {}},
		{"empty reserve", func(p *components.PlayerData, _ *components.SessionData) { p.Clip = 3; p.Reserve = 0 }},
		{"already reloading", func(p *components.PlayerData, _ *components.SessionData) { p.Clip = 3; p.ReloadTime = 1 }},
		{"not running", func(p *components.PlayerData, s *components.SessionData) { p.Clip = 3; s.Running = false }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newRound(t, random.Fixed(0.5))
			player := components.Player.Get(mustPlayer(t, e))
			tt.setup(player, GetSession(e))
			before := *player

			if Reload(e) {
				t.Fatal("Reload = true, want false")
			}
			if *player != before {
				t.Fatalf("player changed: %+v -> %+v", before, *player)
			}
		})
	}
}

func TestDiagonalMovementIsNormalized(t *testing.T) {
	e := newRound(t, random.Fixed(0.5))
	entry := mustPlayer(t, e)
	start := *components.Position.Get(entry)

	GetSession(e).Keys = components.DirUp | components.DirRight
	UpdatePlayerMovement(e)

	end := *components.Position.Get(entry)
	if d := distance(start, end); !almostEqual(d, 3) {
		t.Fatalf("moved %v, want 3", d)
	}
	if end.X <= start.X || end.Y >= start.Y {
		t.Fatalf("moved from %+v to %+v, want up and right", start, end)
	}
}

func TestOppositeKeysCancel(t *testing.T) {
	e := newRound(t, random.Fixed(0.5))
	entry := mustPlayer(t, e)
	start := *components.Position.Get(entry)

	GetSession(e).Keys = components.DirLeft | components.DirRight
	UpdatePlayerMovement(e)

	if end := *components.Position.Get(entry); end != start {
		t.Fatalf("moved from %+v to %+v, want no movement", start, end)
	}
}

func TestAimFollowsPointer(t *testing.T) {
	e := newRound(t, random.Fixed(0.5))
	entry := mustPlayer(t, e)
	pos := *components.Position.Get(entry)

	GetSession(e).Pointer.X = pos.X
	GetSession(e).Pointer.Y = pos.Y + 100
	UpdatePlayerMovement(e)

	if a := components.Player.Get(entry).Angle; !almostEqual(a, math.Pi/2) {
		t.Fatalf("angle = %v, want π/2", a)
	}
}

func TestPlayerStaysInBounds(t *testing.T) {
	moves := []components.Direction{
		components.DirUp | components.DirLeft,
		components.DirDown | components.DirRight,
		components.DirUp,
		components.DirLeft,
	}
	r := cfg.Player.Radius

	for _, keys := range moves {
		e := newRound(t, random.NewPRNG(3))
		entry := mustPlayer(t, e)
		GetSession(e).Keys = keys

		for i := 0; i < 400; i++ {
			Step(e)
			pos := components.Position.Get(entry)
			if pos.X < r || pos.X > cfg.Arena.Width-r || pos.Y < r || pos.Y > cfg.Arena.Height-r {
				t.Fatalf("keys %b tick %d: player at (%v, %v) outside the arena", keys, i, pos.X, pos.Y)
			}
		}
	}
}

func TestPlayerHazardOnlyOutsideZone(t *testing.T) {
	e := newRound(t, random.Fixed(0.5))
	entry := mustPlayer(t, e)
	health := components.Health.Get(entry)

	UpdatePlayerHazard(e)
	if health.Current != 100 {
		t.Fatalf("hp = %v inside the zone, want 100", health.Current)
	}

	setPosition(entry, 15, 15)
	UpdatePlayerHazard(e)
	if !almostEqual(health.Current, 99.88) {
		t.Fatalf("hp = %v outside the zone, want 99.88", health.Current)
	}
}
