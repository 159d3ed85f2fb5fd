package systems

import (
	"github.com/automoto/pixelstrike/components"
	cfg "github.com/automoto/pixelstrike/config"
	"github.com/automoto/pixelstrike/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateProjectiles moves projectiles in a straight line and removes those that leave the arena.
func UpdateProjectiles(ecs *ecs.ECS) {
	session := getSession(ecs.World)
	if session == nil {
		return
	}

	var toRemove []*donburi.Entry
	components.Projectile.Each(ecs.World, func(e *donburi.Entry) {
		obj := components.Object.Get(e)
		MoveProjectile(components.Projectile.Get(e), obj)

		c := obj.Center()
		if gamemath.OutOfBounds(c.X, c.Y, session.Width, session.Height, cfg.Arena.CullMargin) {
			toRemove = append(toRemove, e)
		}
	})

	destroyAll(ecs.World, toRemove)
}

// MoveProjectile translates by direction × speed. A zero direction leaves it in place.
func MoveProjectile(p *components.ProjectileData, obj *components.ObjectData) {
	if gamemath.IsZero(p.Direction) {
		return
	}
	obj.SetCenter(gamemath.Add(obj.Center(), gamemath.Scale(p.Direction, p.Speed)))
}
