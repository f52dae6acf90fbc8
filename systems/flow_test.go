package systems

import (
	"testing"

	"github.com/carlos2058/ganho/components"
	cfg "github.com/carlos2058/ganho/config"
	"github.com/carlos2058/ganho/random"
	"github.com/yohamta/donburi/ecs"
)

// press sets the held actions for one frame, keeping the previous frame for
// edge detection the way UpdateInput does.
func press(e *ecs.ECS, actions ...cfg.ActionID) {
	input := getOrCreateInput(e)
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}
	for _, a := range actions {
		input.Current[a] = true
	}
}

func TestStartActionBeginsRound(t *testing.T) {
	e := newArena(t, random.Fixed(0.5))

	press(e, cfg.ActionStart)
	UpdateActions(e)

	s := GetSession(e)
	if !s.Running || s.Over {
		t.Fatalf("session = %+v, want a running round", *s)
	}
	if n := CountEnemies(e); n != cfg.Enemy.SpawnCount {
		t.Fatalf("enemies = %d, want %d", n, cfg.Enemy.SpawnCount)
	}

	// Holding start does not restart the round.
	s.Tick = 42
	press(e, cfg.ActionStart)
	UpdateActions(e)
	if s.Tick != 42 {
		t.Fatalf("tick = %d, holding start reset the round", s.Tick)
	}
}

func TestHeldMovementBecomesKeys(t *testing.T) {
	e := newRound(t, random.Fixed(0.5))

	press(e, cfg.ActionMoveUp, cfg.ActionMoveLeft)
	UpdateActions(e)

	keys := GetSession(e).Keys
	if !keys.Has(components.DirUp | components.DirLeft) {
		t.Fatalf("keys = %b, want up and left", keys)
	}
	if keys.Has(components.DirDown) || keys.Has(components.DirRight) {
		t.Fatalf("keys = %b, want only up and left", keys)
	}

	press(e)
	UpdateActions(e)
	if keys := GetSession(e).Keys; keys != 0 {
		t.Fatalf("keys = %b after release, want none", keys)
	}
}

func TestFireActionShootsOncePerPress(t *testing.T) {
	e := newRound(t, random.Fixed(0.5))
	player := components.Player.Get(mustPlayer(t, e))

	press(e, cfg.ActionFire)
	UpdateActions(e)
	if player.Clip != cfg.Weapon.ClipSize-1 {
		t.Fatalf("clip = %d, want %d", player.Clip, cfg.Weapon.ClipSize-1)
	}

	// Held through the cooldown: no second shot.
	player.FireCooldown = 0
	press(e, cfg.ActionFire)
	UpdateActions(e)
	if player.Clip != cfg.Weapon.ClipSize-1 {
		t.Fatalf("clip = %d, holding fire shot again", player.Clip)
	}
}

func TestReloadAction(t *testing.T) {
	e := newRound(t, random.Fixed(0.5))
	player := components.Player.Get(mustPlayer(t, e))
	player.Clip = 3

	press(e, cfg.ActionReload)
	UpdateActions(e)

	if !player.Reloading() {
		t.Fatal("reload action did not start a reload")
	}
}

func TestPauseOnlyWhileRunning(t *testing.T) {
	e := newArena(t, random.Fixed(0.5))

	press(e, cfg.ActionPause)
	UpdatePause(e)
	if GetOrCreatePause(e).IsPaused {
		t.Fatal("idle arena was paused")
	}

	ResetGame(e)
	press(e)
	press(e, cfg.ActionPause)
	UpdatePause(e)
	if !GetOrCreatePause(e).IsPaused {
		t.Fatal("running round did not pause")
	}

	ticks := 0
	WithGameplayChecks(func(*ecs.ECS) { ticks++ })(e)
	if ticks != 0 {
		t.Fatal("gameplay system ran while paused")
	}

	press(e)
	press(e, cfg.ActionPause)
	UpdatePause(e)
	WithGameplayChecks(func(*ecs.ECS) { ticks++ })(e)
	if ticks != 1 {
		t.Fatal("gameplay system did not run after unpausing")
	}
}

func TestBannerFor(t *testing.T) {
	tests := []struct {
		name    string
		session components.SessionData
		want    components.BannerKind
	}{
		{"idle", components.SessionData{}, components.BannerIdle},
		{"running", components.SessionData{Running: true}, components.BannerNone},
		{"defeat", components.SessionData{Over: true}, components.BannerDefeat},
		{"victory", components.SessionData{Over: true, Win: true}, components.BannerVictory},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := bannerFor(&tt.session); got != tt.want {
				t.Fatalf("bannerFor = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBannerTitles(t *testing.T) {
	if got := bannerTitle(components.BannerVictory); got != "Booyah!" {
		t.Fatalf("victory title = %q", got)
	}
	if got := bannerTitle(components.BannerDefeat); got != "Eliminado" {
		t.Fatalf("defeat title = %q", got)
	}
	if got := bannerTitle(components.BannerIdle); got != "Mini FF Arena" {
		t.Fatalf("idle title = %q", got)
	}
}

func TestFadeScalesColor(t *testing.T) {
	c := cfg.White
	if got := fade(c, 1); got != c {
		t.Fatalf("fade(1) = %v", got)
	}
	if got := fade(c, 0); got.A != 0 {
		t.Fatalf("fade(0) = %v", got)
	}
	if got := fade(c, 0.5); got.A != 127 || got.R != 127 {
		t.Fatalf("fade(0.5) = %v", got)
	}
}
