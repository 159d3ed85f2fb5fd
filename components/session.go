package components

import (
	"math/rand"

	"github.com/automoto/pixelstrike/config"
	"github.com/automoto/pixelstrike/shared/messages"
	"github.com/google/uuid"
	"github.com/yohamta/donburi"
)

// SessionData is the singleton holding the clock, score and observers of one play session.
type SessionData struct {
	ID    uuid.UUID
	Tick  int
	State config.GameStateID
	Mode  config.GameMode

	Score     int
	Kills     int
	HighScore int

	ShotsFired int
	ShotsHit   int

	GameOverFired bool

	Width, Height float64
	Rand          *rand.Rand
	Listeners     []messages.Listener
}

// Seconds is the elapsed simulated time.
func (s *SessionData) Seconds() float64 {
	return float64(s.Tick) / float64(config.C.TPS)
}

// Accuracy is the fraction of player shots that hit an enemy.
func (s *SessionData) Accuracy() float64 {
	if s.ShotsFired == 0 {
		return 0
	}
	return float64(s.ShotsHit) / float64(s.ShotsFired)
}

// Playing reports whether the simulation should advance.
func (s *SessionData) Playing() bool {
	return s.State == config.StatePlaying
}

func (s *SessionData) ScoreChanged(delta int) {
	e := messages.ScoreEvent{Delta: delta, Total: s.Score}
	for _, l := range s.Listeners {
		l.ScoreChanged(e)
	}
}

func (s *SessionData) HealthChanged(current, max int) {
	e := messages.HealthEvent{Current: current, Max: max}
	for _, l := range s.Listeners {
		l.HealthChanged(e)
	}
}

func (s *SessionData) EnemyDestroyed(e messages.KillEvent) {
	for _, l := range s.Listeners {
		l.EnemyDestroyed(e)
	}
}

func (s *SessionData) LevelUp(level int) {
	e := messages.LevelUpEvent{Level: level}
	for _, l := range s.Listeners {
		l.LevelUp(e)
	}
}

func (s *SessionData) GameOver(e messages.GameOverEvent) {
	for _, l := range s.Listeners {
		l.GameOver(e)
	}
}

func (s *SessionData) PowerUpCollected(t config.PowerUpType) {
	e := messages.PowerUpEvent{Type: t}
	for _, l := range s.Listeners {
		l.PowerUpCollected(e)
	}
}

func (s *SessionData) PowerUpExpired(t config.PowerUpType) {
	e := messages.PowerUpEvent{Type: t}
	for _, l := range s.Listeners {
		l.PowerUpExpired(e)
	}
}

var Session = donburi.NewComponentType[SessionData]()
