package systems

import (
	"github.com/automoto/pixelstrike/components"
	"github.com/automoto/pixelstrike/config"
	"github.com/automoto/pixelstrike/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateEffects advances visual feedback: hit flashes, power-up tweens, kill bursts and HUD timers.
func UpdateEffects(ecs *ecs.ECS) {
	updateFlashEffects(ecs)
	updatePowerUpTweens(ecs)
	updateBursts(ecs)
	updateHUDTimers(ecs)
}

// updateFlashEffects decrements flash timers
func updateFlashEffects(ecs *ecs.ECS) {
	components.Flash.Each(ecs.World, func(e *donburi.Entry) {
		flash := components.Flash.Get(e)
		if flash.Duration > 0 {
			flash.Duration--
		}
	})
}

// updatePowerUpTweens plays the pop-in once, then loops the idle pulse.
func updatePowerUpTweens(ecs *ecs.ECS) {
	dt := float32(1) / float32(config.C.TPS)
	components.PowerUp.Each(ecs.World, func(e *donburi.Entry) {
		pu := components.PowerUp.Get(e)
		seq := components.Tween.Get(e)
		scale, _, done := seq.Update(dt)
		pu.Scale = float64(scale)
		if !done {
			return
		}
		pu.Pulsing = true
		components.Tween.Set(e, factory.NewPowerUpPulseTween())
	})
}

// updateBursts ages kill bursts and removes finished ones
func updateBursts(ecs *ecs.ECS) {
	var toRemove []*donburi.Entry
	components.Burst.Each(ecs.World, func(e *donburi.Entry) {
		b := components.Burst.Get(e)
		b.FramesRemaining--
		if b.FramesRemaining <= 0 {
			toRemove = append(toRemove, e)
		}
	})
	destroyAll(ecs.World, toRemove)
}

func updateHUDTimers(ecs *ecs.ECS) {
	hud := getHUD(ecs.World)
	if hud == nil {
		return
	}
	if hud.BannerFrames > 0 {
		hud.BannerFrames--
		if hud.BannerFrames == 0 {
			hud.Banner = ""
		}
	}

	kept := hud.Popups[:0]
	for _, p := range hud.Popups {
		p.FramesRemaining--
		p.Y -= 0.5
		if p.FramesRemaining > 0 {
			kept = append(kept, p)
		}
	}
	hud.Popups = kept
}

// TriggerDamageFlash tints the entity red for a few frames
func TriggerDamageFlash(entry *donburi.Entry) {
	if !entry.HasComponent(components.Flash) {
		return
	}
	components.Flash.SetValue(entry, components.FlashData{
		Duration: config.Effects.FlashDuration,
		R:        1,
		G:        0.4,
		B:        0.4,
	})
}
