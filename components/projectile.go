package components

import (
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

// ProjectileOwner is the side that fired a projectile. It never changes after creation.
type ProjectileOwner int

const (
	OwnerPlayer ProjectileOwner = iota
	OwnerEnemy
)

func (o ProjectileOwner) String() string {
	if o == OwnerPlayer {
		return "player"
	}
	return "enemy"
}

type ProjectileData struct {
	Owner     ProjectileOwner
	Direction dmath.Vec2 // unit vector, or zero for a stationary projectile
	Speed     float64
	Damage    int
}

var Projectile = donburi.NewComponentType[ProjectileData]()
