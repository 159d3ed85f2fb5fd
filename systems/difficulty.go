package systems

import (
	"github.com/automoto/pixelstrike/config"
	"github.com/rs/zerolog/log"
	"github.com/yohamta/donburi/ecs"
)

// UpdateDifficulty feeds the session totals to the difficulty controller,
// announces level ups and periodically adapts the pacing to the player's kill rate.
func UpdateDifficulty(ecs *ecs.ECS) {
	session := getSession(ecs.World)
	difficulty := getDifficulty(ecs.World)
	if session == nil || difficulty == nil {
		return
	}

	seconds := session.Seconds()
	if difficulty.Update(session.Score, seconds, session.Kills) {
		log.Info().
			Int("level", difficulty.Level).
			Str("band", difficulty.Description()).
			Float64("spawnInterval", difficulty.EnemySpawnInterval()).
			Float64("enemySpeed", difficulty.EnemySpeed()).
			Int("enemyHealth", difficulty.EnemyHealth()).
			Int("enemyDamage", difficulty.EnemyDamage()).
			Int("maxEnemies", difficulty.MaxEnemyCount()).
			Msg("level up")
		session.LevelUp(difficulty.Level)
	}

	if seconds-difficulty.LastAdjustment >= config.Difficulty.AdaptiveInterval {
		difficulty.LastAdjustment = seconds
		difficulty.AdjustForPerformance(session.Kills, seconds)
		log.Debug().
			Float64("spawnBase", difficulty.BaseSpawnInterval).
			Float64("shotBase", difficulty.BaseShotInterval).
			Msg("difficulty adjusted")
	}
}
