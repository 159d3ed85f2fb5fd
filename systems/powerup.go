package systems

import (
	"math"
	"math/rand"

	"github.com/automoto/pixelstrike/components"
	cfg "github.com/automoto/pixelstrike/config"
	"github.com/automoto/pixelstrike/shared/gamemath"
	"github.com/automoto/pixelstrike/systems/factory"
	"github.com/rs/zerolog/log"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// UpdatePowerUpSpawner drops a weighted-random power-up when its scheduled time arrives
// and reschedules the next one uniformly within the spawner's interval range.
func UpdatePowerUpSpawner(ecs *ecs.ECS) {
	session := getSession(ecs.World)
	spawner := getSpawner(ecs.World)
	if session == nil || spawner == nil {
		return
	}

	now := session.Seconds()
	if now < spawner.NextPowerUp {
		return
	}
	spawner.NextPowerUp = now + spawner.PowerUpMin + session.Rand.Float64()*(spawner.PowerUpMax-spawner.PowerUpMin)

	var p dmath.Vec2
	switch spawner.PowerUpPlacement {
	case cfg.PlacementRegions:
		if len(spawner.PowerUpRegions) == 0 {
			return
		}
		p = PlaceInRegions(session.Rand, spawner.PowerUpRegions)
	default:
		center, ok := getPlayerCenter(ecs.World)
		if !ok {
			return
		}
		p = PlaceAroundPlayer(session.Rand, center, session.Width, session.Height)
	}

	t := ChoosePowerUpType(session.Rand)
	factory.CreatePowerUp(ecs, t, p.X, p.Y, session.Tick)
	spawner.PowerUpSpawned++
	log.Debug().Stringer("type", t).Float64("x", p.X).Float64("y", p.Y).Msg("power-up spawned")
}

// ChoosePowerUpType draws a type with probability weight / total weight.
func ChoosePowerUpType(r *rand.Rand) cfg.PowerUpType {
	total := 0
	for _, t := range cfg.PowerUpTypes {
		total += cfg.PowerUp.Weights[t]
	}
	if total <= 0 {
		return cfg.PowerUpHealthBoost
	}

	roll := r.Intn(total)
	for _, t := range cfg.PowerUpTypes {
		w := cfg.PowerUp.Weights[t]
		if roll < w {
			return t
		}
		roll -= w
	}
	return cfg.PowerUpTypes[len(cfg.PowerUpTypes)-1]
}

// PlaceAroundPlayer picks a point at a random angle and distance from the player, kept inside the arena margin.
func PlaceAroundPlayer(r *rand.Rand, player dmath.Vec2, width, height float64) dmath.Vec2 {
	c := cfg.PowerUp
	dist := c.MinDistance + r.Float64()*(c.MaxDistance-c.MinDistance)
	theta := r.Float64() * 2 * math.Pi
	p := gamemath.PolarOffset(player, dist, theta)
	p.X = gamemath.Clamp(p.X, c.EdgeMargin, width-c.EdgeMargin)
	p.Y = gamemath.Clamp(p.Y, c.EdgeMargin, height-c.EdgeMargin)
	return p
}

// PlaceInRegions picks a uniform point inside a uniformly chosen region.
func PlaceInRegions(r *rand.Rand, regions []cfg.Rect) dmath.Vec2 {
	reg := regions[r.Intn(len(regions))]
	return dmath.Vec2{
		X: reg.X + r.Float64()*reg.W,
		Y: reg.Y + r.Float64()*reg.H,
	}
}

// UpdatePowerUps despawns power-ups left uncollected past their lifetime.
func UpdatePowerUps(ecs *ecs.ECS) {
	session := getSession(ecs.World)
	if session == nil {
		return
	}
	lifetime := cfg.Seconds(cfg.PowerUp.Lifetime)

	var toRemove []*donburi.Entry
	components.PowerUp.Each(ecs.World, func(e *donburi.Entry) {
		if session.Tick-components.PowerUp.Get(e).SpawnedAt >= lifetime {
			toRemove = append(toRemove, e)
		}
	})

	destroyAll(ecs.World, toRemove)
}

// ApplyPowerUp gives the player the effect of a collected power-up.
// Health boosts heal at once; timed types register an active buff.
func ApplyPowerUp(w donburi.World, playerEntry *donburi.Entry, t cfg.PowerUpType) {
	session := getSession(w)
	effects := getEffects(w)
	if session == nil || effects == nil {
		return
	}

	if t.Timed() {
		effects.Activate(t, session.Tick)
	} else if playerEntry != nil && playerEntry.Valid() {
		hp := components.Health.Get(playerEntry)
		hp.Heal(cfg.PowerUp.HealAmount)
		session.HealthChanged(max(0, hp.Current), hp.Max)
	}

	log.Debug().Stringer("type", t).Msg("power-up collected")
	session.PowerUpCollected(t)
}

// UpdatePowerUpEffects ends buffs whose expiry tick has been reached.
func UpdatePowerUpEffects(ecs *ecs.ECS) {
	session := getSession(ecs.World)
	effects := getEffects(ecs.World)
	if session == nil || effects == nil {
		return
	}

	for _, a := range effects.Expire(session.Tick) {
		log.Debug().Stringer("type", a.Type).Msg("power-up expired")
		session.PowerUpExpired(a.Type)
	}
}
