package systems

import (
	"math/rand"
	"testing"

	"github.com/automoto/pixelstrike/components"
	"github.com/automoto/pixelstrike/shared/messages"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
	dmath "github.com/yohamta/donburi/features/math"
)

// recorder collects every event it receives.
type recorder struct {
	scores    []messages.ScoreEvent
	health    []messages.HealthEvent
	kills     []messages.KillEvent
	levels    []messages.LevelUpEvent
	gameOvers []messages.GameOverEvent
	collected []messages.PowerUpEvent
	expired   []messages.PowerUpEvent
}

func (r *recorder) ScoreChanged(e messages.ScoreEvent)       { r.scores = append(r.scores, e) }
func (r *recorder) HealthChanged(e messages.HealthEvent)     { r.health = append(r.health, e) }
func (r *recorder) EnemyDestroyed(e messages.KillEvent)      { r.kills = append(r.kills, e) }
func (r *recorder) LevelUp(e messages.LevelUpEvent)          { r.levels = append(r.levels, e) }
func (r *recorder) GameOver(e messages.GameOverEvent)        { r.gameOvers = append(r.gameOvers, e) }
func (r *recorder) PowerUpCollected(e messages.PowerUpEvent) { r.collected = append(r.collected, e) }
func (r *recorder) PowerUpExpired(e messages.PowerUpEvent)   { r.expired = append(r.expired, e) }

func newTestSim(t *testing.T, opts ...Option) *Simulation {
	t.Helper()
	opts = append([]Option{WithRand(rand.New(rand.NewSource(1)))}, opts...)
	sim := NewSimulation(800, 600, opts...)
	sim.Start()
	return sim
}

func mustPlayer(t *testing.T, sim *Simulation) *donburi.Entry {
	t.Helper()
	p, ok := sim.Player()
	if !ok {
		t.Fatal("no player in world")
	}
	return p
}

func center(e *donburi.Entry) dmath.Vec2 {
	return components.Object.Get(e).Center()
}

func step(sim *Simulation, ticks int) {
	for i := 0; i < ticks; i++ {
		sim.Update()
	}
}

func count(sim *Simulation, c donburi.IComponentType) int {
	return donburi.NewQuery(filter.Contains(c)).Count(sim.ECS().World)
}
