package systems

import (
	"log"

	"github.com/carlos2058/ganho/components"
	cfg "github.com/carlos2058/ganho/config"
	"github.com/carlos2058/ganho/systems/factory"
	"github.com/carlos2058/ganho/tags"
	"github.com/yohamta/donburi/ecs"
)

// Step advances a running round by one tick. The phases run in a fixed
// order and the whole step is a no-op while no round is running.
func Step(e *ecs.ECS) {
	if !GetSession(e).Running {
		return
	}

	UpdateZone(e)
	UpdatePlayerMovement(e)
	UpdatePlayerHazard(e)
	UpdatePlayerTimers(e)
	UpdateBullets(e)
	UpdateEnemies(e)
	UpdateObjects(e)
	UpdateCollisions(e)
	PruneEnemies(e)
	UpdateParticles(e)
	UpdateOutcome(e)
}

// ResetGame clears the arena and starts a fresh round.
func ResetGame(e *ecs.ECS) {
	session := GetSession(e)
	session.Running = true
	session.Over = false
	session.Win = false
	session.Tick = 0

	removeAll(e, tags.Bullet)
	removeAll(e, tags.Particle)
	removeAll(e, tags.Enemy)
	removeAll(e, tags.Player)

	zone := GetZone(e)
	zone.Radius = zone.InitialRadius

	center := ArenaCenter()
	factory.CreatePlayer(e, center.X, center.Y)
	factory.SpawnEnemies(e, GetRandom(e), zone.Center, cfg.Enemy.SpawnCount)

	GetOrCreatePause(e).IsPaused = false
	log.Printf("Round started with %d enemies", cfg.Enemy.SpawnCount)
}

// StartGame resets the arena if no round is running. It reports whether a
// new round was started.
func StartGame(e *ecs.ECS) bool {
	if GetSession(e).Running {
		return false
	}
	ResetGame(e)
	PlaySFX(e, cfg.SoundStart)
	return true
}

// UpdateOutcome ends the round when the player is dead or no enemies remain.
// Defeat is checked first, so a round can never end in both.
func UpdateOutcome(e *ecs.ECS) {
	session := GetSession(e)

	dead := true
	if player, ok := GetPlayer(e); ok {
		dead = components.Health.Get(player).Current <= 0
	}

	switch {
	case dead:
		endRound(e, session, false)
	case CountEnemies(e) == 0 && !session.Over:
		endRound(e, session, true)
	}
}

func endRound(e *ecs.ECS, session *components.SessionData, win bool) {
	session.Over = true
	session.Running = false
	session.Win = win

	if win {
		PlaySFX(e, cfg.SoundVictory)
		log.Printf("Round won after %d ticks", session.Tick)
	} else {
		PlaySFX(e, cfg.SoundDefeat)
		log.Printf("Round lost after %d ticks", session.Tick)
	}
}
