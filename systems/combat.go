package systems

import (
	"github.com/automoto/pixelstrike/components"
	cfg "github.com/automoto/pixelstrike/config"
	"github.com/automoto/pixelstrike/shared/messages"
	"github.com/automoto/pixelstrike/systems/factory"
	"github.com/rs/zerolog/log"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// hitPlayer applies an enemy projectile to the player. The projectile is always
// consumed; the shield may reduce the damage to zero.
func hitPlayer(w donburi.World, playerEntry, projectileEntry *donburi.Entry) {
	session := getSession(w)
	if session == nil {
		return
	}
	damage := components.Projectile.Get(projectileEntry).Damage
	destroyEntity(w, projectileEntry)

	if effects := getEffects(w); effects != nil {
		damage = effects.ModifyDamage(damage)
	}

	hp := components.Health.Get(playerEntry)
	wasAlive := !hp.Dead()
	hp.Current -= damage
	if damage > 0 {
		TriggerDamageFlash(playerEntry)
	}
	session.HealthChanged(max(0, hp.Current), hp.Max)

	log.Debug().Int("damage", damage).Int("health", hp.Current).Msg("player hit")

	if wasAlive && hp.Dead() {
		triggerGameOver(w)
	}
}

// hitEnemy applies a player projectile to an enemy and scores the kill when
// health first drops to zero or below.
func hitEnemy(ecs *ecs.ECS, enemyEntry, projectileEntry *donburi.Entry) {
	w := ecs.World
	session := getSession(w)
	difficulty := getDifficulty(w)
	if session == nil || difficulty == nil {
		return
	}
	damage := components.Projectile.Get(projectileEntry).Damage
	destroyEntity(w, projectileEntry)
	session.ShotsHit++

	enemy := components.Enemy.Get(enemyEntry)
	hp := components.Health.Get(enemyEntry)
	hp.Current -= damage
	TriggerDamageFlash(enemyEntry)
	if !enemy.Alive || !hp.Dead() {
		return
	}
	enemy.Alive = false

	points := difficulty.ScoreForKill(session.Kills)
	session.Kills++
	session.Score += points

	c := components.Object.Get(enemyEntry).Center()
	factory.SpawnBurst(ecs, c.X, c.Y, cfg.Orange)
	destroyEntity(w, enemyEntry)

	log.Debug().Int("points", points).Int("score", session.Score).Int("kills", session.Kills).Msg("enemy destroyed")
	session.ScoreChanged(points)
	session.EnemyDestroyed(messages.KillEvent{Kills: session.Kills, Points: points, X: c.X, Y: c.Y})
}

// triggerGameOver ends the session once: the survival bonus is added, the high
// score is raised if beaten, and listeners receive the final results.
func triggerGameOver(w donburi.World) {
	session := getSession(w)
	difficulty := getDifficulty(w)
	if session == nil || difficulty == nil || session.GameOverFired {
		return
	}
	session.GameOverFired = true
	session.State = cfg.StateGameOver

	seconds := session.Seconds()
	bonus := difficulty.SurvivalBonus(seconds)
	if bonus > 0 {
		session.Score += bonus
		session.ScoreChanged(bonus)
	}

	newHigh := session.Score > session.HighScore
	if newHigh {
		session.HighScore = session.Score
	}

	ev := messages.GameOverEvent{
		Score:         session.Score,
		SurvivalBonus: bonus,
		HighScore:     session.HighScore,
		NewHighScore:  newHigh,
		Level:         difficulty.Level,
		Kills:         session.Kills,
		Seconds:       seconds,
	}
	log.Info().
		Int("score", ev.Score).
		Int("level", ev.Level).
		Int("kills", ev.Kills).
		Float64("seconds", ev.Seconds).
		Bool("newHighScore", ev.NewHighScore).
		Msg("game over")
	session.GameOver(ev)
}
