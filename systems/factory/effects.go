package factory

import (
	"image/color"

	"github.com/automoto/pixelstrike/archetypes"
	"github.com/automoto/pixelstrike/components"
	cfg "github.com/automoto/pixelstrike/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SpawnBurst leaves an expanding ring at (x, y) for a few frames.
func SpawnBurst(ecs *ecs.ECS, x, y float64, c color.RGBA) *donburi.Entry {
	b := archetypes.Burst.Spawn(ecs)
	components.Burst.SetValue(b, components.BurstData{
		X:               x,
		Y:               y,
		FramesRemaining: cfg.Effects.BurstDuration,
		Color:           c,
	})
	return b
}
