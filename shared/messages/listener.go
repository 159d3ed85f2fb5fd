package messages

//go:generate go tool mockgen -destination=./mocks/listener_mock.go -package=mocks . Listener

// Listener observes a play session. Calls are synchronous and made from the simulation tick.
type Listener interface {
	ScoreChanged(ScoreEvent)
	HealthChanged(HealthEvent)
	EnemyDestroyed(KillEvent)
	LevelUp(LevelUpEvent)
	GameOver(GameOverEvent)
	PowerUpCollected(PowerUpEvent)
	PowerUpExpired(PowerUpEvent)
}

// NopListener ignores every event. Embed it to observe only some of them.
type NopListener struct{}

func (NopListener) ScoreChanged(ScoreEvent)       {}
func (NopListener) HealthChanged(HealthEvent)     {}
func (NopListener) EnemyDestroyed(KillEvent)      {}
func (NopListener) LevelUp(LevelUpEvent)          {}
func (NopListener) GameOver(GameOverEvent)        {}
func (NopListener) PowerUpCollected(PowerUpEvent) {}
func (NopListener) PowerUpExpired(PowerUpEvent)   {}
