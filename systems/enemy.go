package systems

import (
	"math"
	"math/rand"

	"github.com/automoto/pixelstrike/components"
	cfg "github.com/automoto/pixelstrike/config"
	"github.com/automoto/pixelstrike/shared/gamemath"
	"github.com/automoto/pixelstrike/systems/factory"
	"github.com/automoto/pixelstrike/tags"
	"github.com/rs/zerolog/log"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// UpdateEnemySpawner creates an enemy at a screen edge once the spawn interval has passed.
// The effective interval is the shorter of the session ramp and the level's interval.
func UpdateEnemySpawner(ecs *ecs.ECS) {
	session := getSession(ecs.World)
	spawner := getSpawner(ecs.World)
	difficulty := getDifficulty(ecs.World)
	if session == nil || spawner == nil || difficulty == nil {
		return
	}

	now := session.Seconds()
	interval := math.Min(spawner.EnemyInterval, difficulty.EnemySpawnInterval())
	if now-spawner.LastEnemySpawn <= interval {
		return
	}
	spawner.LastEnemySpawn = now

	if CountAliveEnemies(ecs.World) >= difficulty.MaxEnemyCount() {
		return
	}

	p := EnemySpawnPoint(session.Rand, session.Width, session.Height)
	speed := math.Min(cfg.Enemy.MaxSpeed, difficulty.EnemySpeed())
	factory.CreateEnemy(ecs, p.X, p.Y, difficulty.EnemyHealth(), speed)

	spawner.EnemyInterval = math.Max(cfg.Enemy.MinSpawnInterval, spawner.EnemyInterval*cfg.Enemy.SpawnDecay)
	log.Debug().
		Float64("x", p.X).Float64("y", p.Y).
		Int("level", difficulty.Level).
		Float64("interval", spawner.EnemyInterval).
		Msg("enemy spawned")
}

// EnemySpawnPoint picks a point on one of the four bands just outside the arena.
func EnemySpawnPoint(r *rand.Rand, width, height float64) dmath.Vec2 {
	margin := cfg.Arena.SpawnMargin
	along := func(size float64) float64 {
		lo := math.Min(margin, size*cfg.Arena.EdgeFraction)
		hi := math.Max(size-margin, size*(1-cfg.Arena.EdgeFraction))
		return lo + r.Float64()*(hi-lo)
	}

	switch r.Intn(4) {
	case 0: // top
		return dmath.Vec2{X: along(width), Y: -margin}
	case 1: // right
		return dmath.Vec2{X: width + margin, Y: along(height)}
	case 2: // bottom
		return dmath.Vec2{X: along(width), Y: height + margin}
	default: // left
		return dmath.Vec2{X: -margin, Y: along(height)}
	}
}

// CountAliveEnemies returns the number of live enemies.
func CountAliveEnemies(w donburi.World) int {
	n := 0
	tags.Enemy.Each(w, func(e *donburi.Entry) {
		if components.Enemy.Get(e).Alive {
			n++
		}
	})
	return n
}

// UpdateEnemyShots gives every live enemy an independent chance to fire at the player each shot interval.
func UpdateEnemyShots(ecs *ecs.ECS) {
	session := getSession(ecs.World)
	spawner := getSpawner(ecs.World)
	difficulty := getDifficulty(ecs.World)
	if session == nil || spawner == nil || difficulty == nil {
		return
	}

	now := session.Seconds()
	interval := math.Min(spawner.ShotInterval, difficulty.EnemyShotInterval())
	if now-spawner.LastShot <= interval {
		return
	}
	spawner.LastShot = now

	target, ok := getPlayerCenter(ecs.World)
	if !ok {
		return
	}

	var origins []dmath.Vec2
	tags.Enemy.Each(ecs.World, func(e *donburi.Entry) {
		if !components.Enemy.Get(e).Alive {
			return
		}
		if session.Rand.Float64() < cfg.Enemy.ShotChance {
			origins = append(origins, components.Object.Get(e).Center())
		}
	})

	for _, o := range origins {
		factory.CreateProjectile(ecs, components.OwnerEnemy, o, target, cfg.Enemy.ProjectileDamage)
	}

	spawner.ShotInterval = math.Max(cfg.Enemy.MinShotInterval, spawner.ShotInterval*cfg.Enemy.ShotDecay)
}

// UpdateEnemies steers every enemy toward the player and prunes dead or escaped ones.
func UpdateEnemies(ecs *ecs.ECS) {
	session := getSession(ecs.World)
	if session == nil {
		return
	}
	target, hasTarget := getPlayerCenter(ecs.World)

	var toRemove []*donburi.Entry
	tags.Enemy.Each(ecs.World, func(e *donburi.Entry) {
		enemy := components.Enemy.Get(e)
		obj := components.Object.Get(e)

		if enemy.Alive && hasTarget {
			MoveEnemy(enemy, obj, target)
			components.Sprite.Get(e).Rotation = enemy.Rotation
		}

		c := obj.Center()
		if !enemy.Alive || gamemath.OutOfBounds(c.X, c.Y, session.Width, session.Height, cfg.Arena.CullMargin) {
			toRemove = append(toRemove, e)
		}
	})

	destroyAll(ecs.World, toRemove)
}

// MoveEnemy advances one step toward target and eases the facing toward the travel direction.
func MoveEnemy(enemy *components.EnemyData, obj *components.ObjectData, target dmath.Vec2) {
	c := obj.Center()
	dir := gamemath.Direction(c, target)
	if gamemath.IsZero(dir) {
		return
	}
	obj.SetCenter(gamemath.Add(c, gamemath.Scale(dir, enemy.Speed)))
	enemy.Rotation = gamemath.Steer(enemy.Rotation, gamemath.FacingAngle(dir), cfg.Enemy.RotationFactor)
}
