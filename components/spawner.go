package components

import (
	"github.com/automoto/pixelstrike/config"
	"github.com/yohamta/donburi"
)

// SpawnerData holds the session-long spawn ramps and the power-up schedule. Times are in seconds.
type SpawnerData struct {
	LastEnemySpawn float64
	EnemyInterval  float64 // ramps down by SpawnDecay after each spawn
	LastShot       float64
	ShotInterval   float64 // ramps down by ShotDecay after each volley

	NextPowerUp      float64
	PowerUpMin       float64
	PowerUpMax       float64
	PowerUpSpawned   int
	PowerUpRegions   []config.Rect
	PowerUpPlacement config.PlacementMode
}

// NewSpawner returns the initial ramps with power-up pacing scaled by multiplier.
func NewSpawner(multiplier float64) SpawnerData {
	s := SpawnerData{
		EnemyInterval:    config.Enemy.SpawnInterval,
		ShotInterval:     config.Enemy.ShotInterval,
		NextPowerUp:      config.PowerUp.InitialDelay,
		PowerUpRegions:   config.PowerUp.Regions,
		PowerUpPlacement: config.PowerUp.Placement,
	}
	s.SetPowerUpMultiplier(multiplier)
	return s
}

// SetPowerUpMultiplier rescales the power-up interval range. Higher multipliers spawn more often.
func (s *SpawnerData) SetPowerUpMultiplier(m float64) {
	c := config.PowerUp
	if m <= 0 {
		m = 1
	}
	s.PowerUpMin = max(c.MinIntervalFloor, c.MinInterval/m)
	s.PowerUpMax = max(c.MaxIntervalFloor, c.MaxInterval/m)
}

var Spawner = donburi.NewComponentType[SpawnerData]()
