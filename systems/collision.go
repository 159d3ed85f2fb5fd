package systems

import (
	"strings"

	"github.com/automoto/pixelstrike/components"
	"github.com/automoto/pixelstrike/tags"
	"github.com/rs/zerolog/log"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Category is the contact class of a body.
type Category int

const (
	CategoryNone Category = iota
	CategoryPlayer
	CategoryEnemy
	CategoryPlayerProjectile
	CategoryEnemyProjectile
	CategoryPowerUp
)

func (c Category) String() string {
	switch c {
	case CategoryPlayer:
		return "player"
	case CategoryEnemy:
		return "enemy"
	case CategoryPlayerProjectile:
		return "playerProjectile"
	case CategoryEnemyProjectile:
		return "enemyProjectile"
	case CategoryPowerUp:
		return "powerUp"
	}
	return "none"
}

// CategoryOf returns the single category of e. Categories are tested in a fixed
// order (player, enemy, player projectile, enemy projectile, power-up) and the
// first match wins, so a body can never count as two categories.
func CategoryOf(e *donburi.Entry) Category {
	if e == nil || !e.Valid() {
		return CategoryNone
	}
	switch {
	case e.HasComponent(tags.Player):
		return CategoryPlayer
	case e.HasComponent(tags.Enemy):
		return CategoryEnemy
	case e.HasComponent(components.Projectile):
		if components.Projectile.Get(e).Owner == components.OwnerPlayer {
			return CategoryPlayerProjectile
		}
		return CategoryEnemyProjectile
	case e.HasComponent(tags.PowerUp):
		return CategoryPowerUp
	}
	return CategoryNone
}

// Collision is the typed view of a contact: at most one entity per category.
type Collision struct {
	Player           *donburi.Entry
	Enemy            *donburi.Entry
	PlayerProjectile *donburi.Entry
	EnemyProjectile  *donburi.Entry
	PowerUp          *donburi.Entry
}

// Classify maps the two bodies of a contact to a Collision. If both bodies share
// a category the second is dropped.
func Classify(a, b *donburi.Entry) Collision {
	var c Collision
	for _, e := range []*donburi.Entry{a, b} {
		cat := CategoryOf(e)
		slot := c.slot(cat)
		if slot == nil {
			continue
		}
		if *slot != nil {
			log.Warn().Stringer("category", cat).Msg("contact between two bodies of the same category")
			continue
		}
		*slot = e
	}
	return c
}

func (c *Collision) slot(cat Category) **donburi.Entry {
	switch cat {
	case CategoryPlayer:
		return &c.Player
	case CategoryEnemy:
		return &c.Enemy
	case CategoryPlayerProjectile:
		return &c.PlayerProjectile
	case CategoryEnemyProjectile:
		return &c.EnemyProjectile
	case CategoryPowerUp:
		return &c.PowerUp
	}
	return nil
}

func (c Collision) IsPlayerHitByEnemyProjectile() bool {
	return c.Player != nil && c.EnemyProjectile != nil
}

func (c Collision) IsEnemyHitByPlayerProjectile() bool {
	return c.Enemy != nil && c.PlayerProjectile != nil
}

func (c Collision) IsPlayerEnemyContact() bool {
	return c.Player != nil && c.Enemy != nil
}

func (c Collision) IsProjectileClash() bool {
	return c.PlayerProjectile != nil && c.EnemyProjectile != nil
}

func (c Collision) IsPowerUpCollection() bool {
	return c.Player != nil && c.PowerUp != nil
}

// String lists the categories present, e.g. "player+enemyProjectile".
func (c Collision) String() string {
	var parts []string
	for _, p := range []struct {
		e   *donburi.Entry
		cat Category
	}{
		{c.Player, CategoryPlayer},
		{c.Enemy, CategoryEnemy},
		{c.PlayerProjectile, CategoryPlayerProjectile},
		{c.EnemyProjectile, CategoryEnemyProjectile},
		{c.PowerUp, CategoryPowerUp},
	} {
		if p.e != nil {
			parts = append(parts, p.cat.String())
		}
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, "+")
}

// valid reports whether every populated handle still refers to a live entity.
func (c Collision) valid() bool {
	for _, e := range []*donburi.Entry{c.Player, c.Enemy, c.PlayerProjectile, c.EnemyProjectile, c.PowerUp} {
		if e != nil && !e.Valid() {
			return false
		}
	}
	return true
}

// HandleContact classifies a contact and applies the matching game rule.
// Contacts whose bodies were already removed earlier in the tick are ignored,
// as are contacts still queued when the session ends.
func HandleContact(ecs *ecs.ECS, ev ContactEvent) {
	if s := getSession(ecs.World); s == nil || !s.Playing() {
		return
	}
	c := Classify(ev.A, ev.B)
	if !c.valid() {
		return
	}

	switch {
	case c.IsPlayerHitByEnemyProjectile():
		hitPlayer(ecs.World, c.Player, c.EnemyProjectile)
	case c.IsEnemyHitByPlayerProjectile():
		hitEnemy(ecs, c.Enemy, c.PlayerProjectile)
	case c.IsPowerUpCollection():
		collectPowerUp(ecs.World, c.Player, c.PowerUp)
	case c.IsPlayerEnemyContact(), c.IsProjectileClash():
		log.Trace().Stringer("collision", c).Msg("contact has no rule")
	}
}

func collectPowerUp(w donburi.World, playerEntry, powerUpEntry *donburi.Entry) {
	t := components.PowerUp.Get(powerUpEntry).Type
	destroyEntity(w, powerUpEntry)
	ApplyPowerUp(w, playerEntry, t)
}
