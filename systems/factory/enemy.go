package factory

import (
	"github.com/automoto/pixelstrike/archetypes"
	"github.com/automoto/pixelstrike/components"
	cfg "github.com/automoto/pixelstrike/config"
	"github.com/automoto/pixelstrike/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateEnemy spawns an enemy centred on (x, y) with the given stats.
func CreateEnemy(ecs *ecs.ECS, x, y float64, health int, speed float64) *donburi.Entry {
	enemy := archetypes.Enemy.Spawn(ecs)

	w, h := cfg.Enemy.CollisionWidth, cfg.Enemy.CollisionHeight
	obj := resolv.NewObject(x-w/2, y-h/2, w, h, tags.ResolvEnemy)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = enemy
	components.Object.SetValue(enemy, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	components.Enemy.SetValue(enemy, components.EnemyData{
		Speed: speed,
		Alive: true,
	})
	components.Health.SetValue(enemy, components.HealthData{
		Current: health,
		Max:     health,
	})
	components.Sprite.SetValue(enemy, components.SpriteData{
		Width:  cfg.Enemy.Size,
		Height: cfg.Enemy.Size,
		Color:  cfg.LightRed,
	})
	components.Flash.SetValue(enemy, components.FlashData{
		Duration: 0,
		R:        1, G: 1, B: 1,
	})

	return enemy
}
