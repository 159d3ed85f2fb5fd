package factory

import (
	"github.com/automoto/pixelstrike/archetypes"
	"github.com/automoto/pixelstrike/components"
	"github.com/automoto/pixelstrike/config"
	"github.com/automoto/pixelstrike/shared/gamemath"
	"github.com/automoto/pixelstrike/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// CreateProjectile spawns a projectile at start aimed at target.
// When start and target coincide the projectile has a zero direction and never moves.
func CreateProjectile(ecs *ecs.ECS, owner components.ProjectileOwner, start, target dmath.Vec2, damage int) *donburi.Entry {
	p := archetypes.Projectile.Spawn(ecs)

	tag := tags.ResolvPlayerProjectile
	tint := config.Yellow
	if owner == components.OwnerEnemy {
		tag = tags.ResolvEnemyProjectile
		tint = config.Orange
	}

	w, h := config.Projectile.Width, config.Projectile.Height
	obj := resolv.NewObject(start.X-w/2, start.Y-h/2, w, h, tag)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = p
	components.Object.SetValue(p, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	dir := gamemath.Direction(start, target)
	components.Projectile.SetValue(p, components.ProjectileData{
		Owner:     owner,
		Direction: dir,
		Speed:     config.Projectile.Speed,
		Damage:    damage,
	})

	rotation := 0.0
	if !gamemath.IsZero(dir) {
		rotation = gamemath.HeadingAngle(dir)
	}
	components.Sprite.SetValue(p, components.SpriteData{
		Width:    w,
		Height:   h,
		Color:    tint,
		Rotation: rotation,
	})

	return p
}
