package systems

import (
	"math"

	"github.com/automoto/pixelstrike/components"
	cfg "github.com/automoto/pixelstrike/config"
	"github.com/automoto/pixelstrike/shared/gamemath"
	"github.com/automoto/pixelstrike/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// UpdatePlayer moves the player by the joystick, keeps it inside the arena and handles the fire command.
func UpdatePlayer(ecs *ecs.ECS) {
	input := getInput(ecs.World)
	session := getSession(ecs.World)
	playerEntry, ok := getPlayer(ecs.World)
	if input == nil || session == nil || !ok {
		return
	}

	movePlayer(playerEntry, input.Joystick, session.Width, session.Height)

	player := components.Player.Get(playerEntry)
	if player.FireCooldown > 0 {
		player.FireCooldown--
	}

	// The fire command is consumed once per tick whether or not a shot goes out.
	if input.Fire {
		input.Fire = false
		firePlayerProjectile(ecs, playerEntry, input.FireTarget)
	}
}

func movePlayer(playerEntry *donburi.Entry, joystick dmath.Vec2, width, height float64) {
	obj := components.Object.Get(playerEntry)
	step := gamemath.Scale(gamemath.ClampLength(joystick, 1), cfg.Player.MoveSpeed)
	c := gamemath.Add(obj.Center(), step)

	half := cfg.Player.Size / 2
	c.X = gamemath.Clamp(c.X, half, width-half)
	c.Y = gamemath.Clamp(c.Y, half, height-half)
	obj.SetCenter(c)
}

// firePlayerProjectile shoots toward target if the cooldown allows.
func firePlayerProjectile(ecs *ecs.ECS, playerEntry *donburi.Entry, target dmath.Vec2) {
	player := components.Player.Get(playerEntry)
	if player.FireCooldown > 0 {
		return
	}
	origin := components.Object.Get(playerEntry).Center()
	if gamemath.IsZero(gamemath.Sub(target, origin)) {
		return
	}

	effects := getEffects(ecs.World)
	session := getSession(ecs.World)

	damage := cfg.Player.ProjectileDamage
	rate := 1.0
	if effects != nil {
		damage = int(math.Round(float64(damage) * effects.DamageMultiplier()))
		rate = effects.FireRateMultiplier
	}

	factory.CreateProjectile(ecs, components.OwnerPlayer, origin, target, damage)
	session.ShotsFired++
	player.FireCooldown = int(math.Round(cfg.Player.FireCooldown * float64(cfg.C.TPS) / rate))
}
