package components

import (
	"math"

	"github.com/automoto/pixelstrike/config"
	"github.com/yohamta/donburi"
)

// DifficultyData derives a monotonic level from score, time and kills and
// exposes the gameplay parameters scaled by it.
type DifficultyData struct {
	Level int

	Score   int
	Seconds float64
	Kills   int

	// Adaptive bases start at the configured values and drift with performance.
	BaseSpawnInterval float64
	BaseShotInterval  float64
	LastAdjustment    float64 // seconds
}

// NewDifficulty returns level 1 state with configured bases.
func NewDifficulty() DifficultyData {
	return DifficultyData{
		Level:             1,
		BaseSpawnInterval: config.Difficulty.BaseSpawnInterval,
		BaseShotInterval:  config.Difficulty.BaseShotInterval,
	}
}

// LevelFor returns the level implied by the given totals, ignoring the current level.
func LevelFor(score int, seconds float64, kills int) int {
	d := config.Difficulty
	byScore := score/d.ScorePerLevel + 1
	byTime := int(seconds/d.SecondsPerLevel) + 1
	byKills := kills/d.KillsPerLevel + 1
	return max(byScore, byTime, byKills)
}

// Update records the totals and advances the level if they imply a higher one.
// It returns true when the level went up.
func (d *DifficultyData) Update(score int, seconds float64, kills int) bool {
	d.Score = score
	d.Seconds = seconds
	d.Kills = kills
	if l := LevelFor(score, seconds, kills); l > d.Level {
		d.Level = l
		return true
	}
	return false
}

func (d *DifficultyData) steps() float64 {
	return float64(d.Level - 1)
}

// EnemySpawnInterval is the level's seconds between enemy spawns.
func (d *DifficultyData) EnemySpawnInterval() float64 {
	c := config.Difficulty
	return math.Max(c.MinSpawnInterval, d.BaseSpawnInterval*(1-c.SpawnStep*d.steps()))
}

// EnemyShotInterval is the level's seconds between enemy volleys.
func (d *DifficultyData) EnemyShotInterval() float64 {
	c := config.Difficulty
	return math.Max(c.MinShotInterval, d.BaseShotInterval*(1-c.ShotStep*d.steps()))
}

// EnemySpeed is the level's enemy movement per tick.
func (d *DifficultyData) EnemySpeed() float64 {
	c := config.Difficulty
	return math.Min(c.MaxEnemySpeed, c.BaseEnemySpeed*(1+c.SpeedStep*d.steps()))
}

// EnemyHealth is the starting health of enemies spawned at this level.
func (d *DifficultyData) EnemyHealth() int {
	c := config.Difficulty
	return c.BaseEnemyHealth + c.HealthPerLevel*(d.Level-1)
}

// EnemyDamage is the level's enemy contact damage.
func (d *DifficultyData) EnemyDamage() int {
	c := config.Difficulty
	return min(c.MaxEnemyDamage, c.BaseEnemyDamage+c.DamagePerLevel*(d.Level-1))
}

// MaxEnemyCount is how many enemies may be alive at once.
func (d *DifficultyData) MaxEnemyCount() int {
	c := config.Difficulty
	return min(c.MaxEnemies, c.BaseMaxEnemies+(d.Level-1)/c.LevelsPerEnemy)
}

// ScoreForKill is the points for a kill given kills already made this session.
func (d *DifficultyData) ScoreForKill(killsSoFar int) int {
	c := config.Difficulty
	combo := math.Min(c.MaxCombo, 1+float64(killsSoFar%c.KillsPerLevel)*c.ComboStep)
	return int(float64(c.KillScore*d.Level) * combo)
}

// SurvivalBonus is the points awarded for surviving the given time.
func (d *DifficultyData) SurvivalBonus(seconds float64) int {
	return int(seconds * float64(config.Difficulty.SurvivalPerSecond))
}

// PerformanceRatio compares the kill rate to the expected rate. Zero time yields 1.
func PerformanceRatio(kills int, seconds float64) float64 {
	if seconds <= 0 {
		return 1
	}
	return (float64(kills) / seconds) / config.Difficulty.ExpectedKillRate
}

// AdjustForPerformance nudges the base intervals: faster for strong players, slower for struggling ones.
func (d *DifficultyData) AdjustForPerformance(kills int, seconds float64) {
	c := config.Difficulty
	ratio := PerformanceRatio(kills, seconds)
	switch {
	case ratio > c.HighPerformance:
		d.BaseSpawnInterval *= c.FasterFactor
		d.BaseShotInterval *= c.FasterFactor
	case ratio < c.LowPerformance:
		d.BaseSpawnInterval *= c.SlowerFactor
		d.BaseShotInterval *= c.SlowerFactor
	}
}

// Description names the level band.
func (d *DifficultyData) Description() string {
	switch {
	case d.Level <= 3:
		return "Easy"
	case d.Level <= 6:
		return "Medium"
	case d.Level <= 10:
		return "Hard"
	case d.Level <= 15:
		return "Very Hard"
	}
	return "Insane"
}

// NextLevelScore is the score at which the score track alone reaches the next level.
func (d *DifficultyData) NextLevelScore() int {
	return d.Level * config.Difficulty.ScorePerLevel
}

// ProgressToNextLevel is the fraction of the score needed for the next level already earned.
// It can exceed 1 or go negative when time or kills drove the level.
func (d *DifficultyData) ProgressToNextLevel() float64 {
	per := config.Difficulty.ScorePerLevel
	if per <= 0 {
		return 1
	}
	return float64(d.Score-(d.Level-1)*per) / float64(per)
}

var Difficulty = donburi.NewComponentType[DifficultyData]()
