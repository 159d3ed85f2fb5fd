package factory

import (
	"image/color"

	"github.com/automoto/pixelstrike/archetypes"
	"github.com/automoto/pixelstrike/components"
	"github.com/automoto/pixelstrike/config"
	"github.com/automoto/pixelstrike/tags"
	"github.com/solarlune/resolv"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var powerUpColors = map[config.PowerUpType]color.RGBA{
	config.PowerUpHealthBoost: config.Green,
	config.PowerUpRapidFire:   config.Orange,
	config.PowerUpShield:      config.Cyan,
}

// CreatePowerUp spawns a collectible centred on (x, y) at session tick now.
func CreatePowerUp(ecs *ecs.ECS, t config.PowerUpType, x, y float64, now int) *donburi.Entry {
	pu := archetypes.PowerUp.Spawn(ecs)

	size := config.PowerUp.Size
	obj := resolv.NewObject(x-size/2, y-size/2, size, size, tags.ResolvPowerUp)
	obj.SetShape(resolv.NewRectangle(0, 0, size, size))
	obj.Data = pu
	components.Object.SetValue(pu, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	components.PowerUp.SetValue(pu, components.PowerUpData{
		Type:      t,
		SpawnedAt: now,
		Scale:     0.1,
	})

	components.Sprite.SetValue(pu, components.SpriteData{
		Width:  size,
		Height: size,
		Color:  powerUpColors[t],
	})

	// Pop in past full size, then settle.
	components.Tween.Set(pu, NewPowerUpPopTween())

	return pu
}

// NewPowerUpPopTween scales from a speck up past full size and back.
func NewPowerUpPopTween() *gween.Sequence {
	c := config.PowerUp
	seq := gween.NewSequence()
	seq.Add(
		gween.New(0.1, 1.2, float32(c.PopDuration), ease.OutQuad),
		gween.New(1.2, 1.0, float32(c.SettleDuration), ease.InQuad),
	)
	return seq
}

// NewPowerUpPulseTween grows to PulseScale and back over two pulse durations.
func NewPowerUpPulseTween() *gween.Sequence {
	c := config.PowerUp
	seq := gween.NewSequence()
	seq.Add(
		gween.New(1.0, float32(c.PulseScale), float32(c.PulseDuration), ease.InOutSine),
		gween.New(float32(c.PulseScale), 1.0, float32(c.PulseDuration), ease.InOutSine),
	)
	return seq
}
