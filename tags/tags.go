package tags

import "github.com/yohamta/donburi"

var (
	Player   = donburi.NewTag().SetName("Player")
	Enemy    = donburi.NewTag().SetName("Enemy")
	Bullet   = donburi.NewTag().SetName("Bullet")
	Particle = donburi.NewTag().SetName("Particle")
)

// Resolv tags for broadphase queries
const (
	ResolvPlayer        = "Player"
	ResolvEnemy         = "Enemy"
	ResolvBullet        = "Bullet"
	ResolvHostileBullet = "HostileBullet"
)
