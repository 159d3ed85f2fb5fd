package tags

import "github.com/yohamta/donburi"

var (
	Player     = donburi.NewTag().SetName("Player")
	Enemy      = donburi.NewTag().SetName("Enemy")
	Projectile = donburi.NewTag().SetName("Projectile")
	PowerUp    = donburi.NewTag().SetName("PowerUp")
	Burst      = donburi.NewTag().SetName("Burst")
)

// Resolv tags for contact categories. Every collidable object carries exactly one.
const (
	ResolvPlayer           = "player"
	ResolvEnemy            = "enemy"
	ResolvPlayerProjectile = "playerProjectile"
	ResolvEnemyProjectile  = "enemyProjectile"
	ResolvPowerUp          = "powerUp"
)
