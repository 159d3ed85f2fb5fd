package systems

import (
	"testing"

	"github.com/automoto/pixelstrike/components"
	cfg "github.com/automoto/pixelstrike/config"
	"github.com/automoto/pixelstrike/systems/factory"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

func TestClassify(t *testing.T) {
	sim := newTestSim(t)
	e := sim.ECS()
	player := mustPlayer(t, sim)
	enemy := factory.CreateEnemy(e, 100, 100, 40, 0)
	enemy2 := factory.CreateEnemy(e, 120, 100, 40, 0)
	shot := factory.CreateProjectile(e, components.OwnerPlayer, dmath.Vec2{X: 10, Y: 10}, dmath.Vec2{X: 10, Y: 0}, 20)
	enemyShot := factory.CreateProjectile(e, components.OwnerEnemy, dmath.Vec2{X: 10, Y: 10}, dmath.Vec2{X: 10, Y: 0}, 20)
	powerUp := factory.CreatePowerUp(e, cfg.PowerUpShield, 50, 50, 0)

	tests := []struct {
		name  string
		c     Collision
		check func(Collision) bool
		str   string
	}{
		{"player hit", Classify(enemyShot, player), Collision.IsPlayerHitByEnemyProjectile, "player+enemyProjectile"},
		{"enemy hit", Classify(enemy, shot), Collision.IsEnemyHitByPlayerProjectile, "enemy+playerProjectile"},
		{"body contact", Classify(player, enemy), Collision.IsPlayerEnemyContact, "player+enemy"},
		{"clash", Classify(shot, enemyShot), Collision.IsProjectileClash, "playerProjectile+enemyProjectile"},
		{"pickup", Classify(player, powerUp), Collision.IsPowerUpCollection, "player+powerUp"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !tt.check(tt.c) {
				t.Errorf("predicate false for %s", tt.c)
			}
			if got := tt.c.String(); got != tt.str {
				t.Errorf("String() = %q, want %q", got, tt.str)
			}
		})
	}

	same := Classify(enemy, enemy2)
	if same.Enemy != enemy {
		t.Error("first enemy should fill the slot")
	}
	if same.IsPlayerEnemyContact() || same.IsEnemyHitByPlayerProjectile() {
		t.Error("two enemies must not match any rule")
	}

	if got := Classify(nil, nil).String(); got != "none" {
		t.Errorf("empty collision String() = %q", got)
	}
}

func TestCategoryOf(t *testing.T) {
	sim := newTestSim(t)
	player := mustPlayer(t, sim)
	if got := CategoryOf(player); got != CategoryPlayer {
		t.Errorf("player category = %s", got)
	}
	shot := factory.CreateProjectile(sim.ECS(), components.OwnerEnemy, dmath.Vec2{}, dmath.Vec2{X: 1}, 1)
	if got := CategoryOf(shot); got != CategoryEnemyProjectile {
		t.Errorf("enemy shot category = %s", got)
	}
	destroyEntity(sim.ECS().World, shot)
	if got := CategoryOf(shot); got != CategoryNone {
		t.Errorf("removed entity category = %s, want none", got)
	}
}

func TestContactReportedOnlyWhenOverlapBegins(t *testing.T) {
	sim := newTestSim(t)
	player := mustPlayer(t, sim)
	p := center(player)

	// Stationary enemy sitting on the player: body contact has no rule but must be tracked.
	factory.CreateEnemy(sim.ECS(), p.X, p.Y, 40, 0)

	var seen int
	ContactQueue.Subscribe(sim.ECS().World, func(_ donburi.World, _ ContactEvent) { seen++ })

	step(sim, 1)
	if seen != 1 {
		t.Fatalf("first tick saw %d contacts, want 1", seen)
	}
	step(sim, 5)
	if seen != 1 {
		t.Errorf("persistent overlap re-reported: %d contacts", seen)
	}
}
