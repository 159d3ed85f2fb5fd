// Package messages defines the notifications a play session sends to its observers.
package messages

import "github.com/automoto/pixelstrike/config"

// ScoreEvent is sent whenever points are added
type ScoreEvent struct {
	Delta int
	Total int
}

// HealthEvent carries the player's health after a change
type HealthEvent struct {
	Current int
	Max     int
}

// KillEvent is sent once per destroyed enemy
type KillEvent struct {
	Kills  int // total kills including this one
	Points int
	X, Y   float64
}

// LevelUpEvent carries the new difficulty level
type LevelUpEvent struct {
	Level int
}

// GameOverEvent is sent exactly once per session
type GameOverEvent struct {
	Score         int
	SurvivalBonus int
	HighScore     int
	NewHighScore  bool
	Level         int
	Kills         int
	Seconds       float64
}

// PowerUpEvent is sent when a power-up is collected or a timed one runs out
type PowerUpEvent struct {
	Type config.PowerUpType
}
