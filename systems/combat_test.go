package systems

import (
	"testing"

	"github.com/automoto/pixelstrike/components"
	cfg "github.com/automoto/pixelstrike/config"
	"github.com/automoto/pixelstrike/shared/messages"
	"github.com/automoto/pixelstrike/shared/messages/mocks"
	"github.com/automoto/pixelstrike/systems/factory"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
	"go.uber.org/mock/gomock"
)

func TestPlayerHitByEnemyProjectile(t *testing.T) {
	ctrl := gomock.NewController(t)
	listener := mocks.NewMockListener(ctrl)
	listener.EXPECT().HealthChanged(messages.HealthEvent{Current: 80, Max: 100}).Times(1)

	sim := newTestSim(t, WithListener(listener))
	player := mustPlayer(t, sim)
	p := center(player)
	factory.CreateProjectile(sim.ECS(), components.OwnerEnemy, p, dmath.Vec2{X: p.X, Y: p.Y + 100}, 20)

	step(sim, 1)

	if hp := components.Health.Get(player).Current; hp != 80 {
		t.Errorf("health = %d, want 80", hp)
	}
	if n := count(sim, components.Projectile); n != 0 {
		t.Errorf("%d projectiles left, want 0", n)
	}
	if components.Flash.Get(player).Duration == 0 {
		t.Error("damage flash not triggered")
	}
}

func TestShieldAbsorbsDamage(t *testing.T) {
	rec := &recorder{}
	sim := newTestSim(t, WithListener(rec))
	player := mustPlayer(t, sim)
	sim.Effects().Activate(cfg.PowerUpShield, 0)

	p := center(player)
	factory.CreateProjectile(sim.ECS(), components.OwnerEnemy, p, dmath.Vec2{X: p.X, Y: p.Y + 100}, 20)
	step(sim, 1)

	if hp := components.Health.Get(player).Current; hp != 100 {
		t.Errorf("health = %d, want 100", hp)
	}
	if n := count(sim, components.Projectile); n != 0 {
		t.Error("shielded hit should still consume the projectile")
	}
	if len(rec.health) != 1 || rec.health[0].Current != 100 {
		t.Errorf("health events = %+v", rec.health)
	}
}

func TestGameOverFiresOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	listener := mocks.NewMockListener(ctrl)
	gomock.InOrder(
		listener.EXPECT().HealthChanged(messages.HealthEvent{Current: 10, Max: 100}),
		listener.EXPECT().HealthChanged(messages.HealthEvent{Current: 0, Max: 100}),
		listener.EXPECT().GameOver(gomock.Any()).Times(1),
	)

	sim := newTestSim(t, WithListener(listener))
	player := mustPlayer(t, sim)
	components.Health.Get(player).Current = 30

	p := center(player)
	for i := 0; i < 2; i++ {
		factory.CreateProjectile(sim.ECS(), components.OwnerEnemy, p, dmath.Vec2{X: p.X, Y: p.Y + 100}, 20)
	}

	step(sim, 1)
	step(sim, 30)

	session := sim.Session()
	if session.State != cfg.StateGameOver {
		t.Fatalf("state = %s, want game over", session.State)
	}
	if hp := components.Health.Get(player).Current; hp != -10 {
		t.Errorf("internal health = %d, want -10", hp)
	}
	if session.Tick != 1 {
		t.Errorf("clock advanced after game over: tick %d", session.Tick)
	}
}

func TestKillScoresAndRemovesEnemy(t *testing.T) {
	rec := &recorder{}
	sim := newTestSim(t, WithListener(rec))
	player := mustPlayer(t, sim)
	p := center(player)

	enemy := factory.CreateEnemy(sim.ECS(), p.X, p.Y-100, 20, 0)
	sim.FireAt(center(enemy))

	step(sim, 15)

	session := sim.Session()
	if session.Kills != 1 || session.Score != 10 {
		t.Fatalf("kills/score = %d/%d, want 1/10", session.Kills, session.Score)
	}
	if enemy.Valid() {
		t.Error("dead enemy still in world")
	}
	if session.ShotsFired != 1 || session.ShotsHit != 1 || session.Accuracy() != 1 {
		t.Errorf("shots fired/hit = %d/%d", session.ShotsFired, session.ShotsHit)
	}
	if len(rec.scores) != 1 || rec.scores[0] != (messages.ScoreEvent{Delta: 10, Total: 10}) {
		t.Errorf("score events = %+v", rec.scores)
	}
	if len(rec.kills) != 1 || rec.kills[0].Kills != 1 || rec.kills[0].Points != 10 {
		t.Errorf("kill events = %+v", rec.kills)
	}
	if count(sim, components.Burst) != 1 {
		t.Error("no burst left at the kill position")
	}
}

func TestEnemySurvivesPartialDamage(t *testing.T) {
	rec := &recorder{}
	sim := newTestSim(t, WithListener(rec))
	p := center(mustPlayer(t, sim))

	enemy := factory.CreateEnemy(sim.ECS(), p.X, p.Y-100, 40, 0)
	sim.FireAt(center(enemy))
	step(sim, 15)

	if !enemy.Valid() {
		t.Fatal("enemy removed after one hit")
	}
	if hp := components.Health.Get(enemy).Current; hp != 20 {
		t.Errorf("enemy health = %d, want 20", hp)
	}
	if len(rec.kills) != 0 || sim.Session().Score != 0 {
		t.Error("partial damage scored a kill")
	}
}

func TestRapidFireRaisesProjectileDamage(t *testing.T) {
	sim := newTestSim(t)
	p := center(mustPlayer(t, sim))
	sim.Effects().Activate(cfg.PowerUpRapidFire, 0)

	sim.FireAt(dmath.Vec2{X: p.X + 100, Y: p.Y})
	step(sim, 1)

	var damage int
	components.Projectile.Each(sim.ECS().World, func(e *donburi.Entry) {
		damage = components.Projectile.Get(e).Damage
	})
	if damage != 30 {
		t.Errorf("projectile damage = %d, want 30", damage)
	}
	if cd := components.Player.Get(mustPlayer(t, sim)).FireCooldown; cd != 10 {
		t.Errorf("fire cooldown = %d ticks, want 10", cd)
	}
}

func TestFireAtOwnPositionIsIgnored(t *testing.T) {
	sim := newTestSim(t)
	p := center(mustPlayer(t, sim))
	sim.FireAt(p)
	step(sim, 1)
	if n := count(sim, components.Projectile); n != 0 {
		t.Errorf("%d projectiles fired at own position", n)
	}
	if sim.Session().ShotsFired != 0 {
		t.Error("ignored shot counted")
	}
}

func TestEnemyKilledByRepeatedHits(t *testing.T) {
	tests := []struct {
		name        string
		health      int
		hits        int
		wantKills   int
		wantHealth  int
		wantShotHit int
	}{
		{name: "one hit leaves it standing", health: 40, hits: 1, wantKills: 0, wantHealth: 20, wantShotHit: 1},
		{name: "second hit kills", health: 40, hits: 2, wantKills: 1, wantShotHit: 2},
		{name: "hits after death are stale", health: 40, hits: 3, wantKills: 1, wantShotHit: 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := &recorder{}
			sim := newTestSim(t, WithListener(rec))
			enemy := factory.CreateEnemy(sim.ECS(), 100, 100, tt.health, 0)

			for i := 0; i < tt.hits; i++ {
				shot := factory.CreateProjectile(sim.ECS(), components.OwnerPlayer, dmath.Vec2{X: 100, Y: 100}, dmath.Vec2{X: 100, Y: 0}, 20)
				HandleContact(sim.ECS(), ContactEvent{A: enemy, B: shot})
			}

			session := sim.Session()
			if session.Kills != tt.wantKills || len(rec.kills) != tt.wantKills {
				t.Errorf("kills = %d, events = %d, want %d", session.Kills, len(rec.kills), tt.wantKills)
			}
			if len(rec.scores) != tt.wantKills {
				t.Errorf("score events = %+v, want %d", rec.scores, tt.wantKills)
			}
			if tt.wantKills == 1 && session.Score != 10 {
				t.Errorf("score = %d, want 10", session.Score)
			}
			if session.ShotsHit != tt.wantShotHit {
				t.Errorf("shots hit = %d, want %d", session.ShotsHit, tt.wantShotHit)
			}
			if tt.wantKills == 0 {
				if hp := components.Health.Get(enemy).Current; hp != tt.wantHealth {
					t.Errorf("enemy health = %d, want %d", hp, tt.wantHealth)
				}
			} else if enemy.Valid() {
				t.Error("dead enemy still in world")
			}
		})
	}
}
