package components

import (
	"math"

	"github.com/automoto/pixelstrike/config"
	"github.com/yohamta/donburi"
)

// ActivePowerUp is a collected timed buff that ends at ExpiresAt.
type ActivePowerUp struct {
	Type      config.PowerUpType
	StartedAt int // session tick
	ExpiresAt int // session tick
}

// Remaining returns the seconds left at tick now, never negative.
func (a ActivePowerUp) Remaining(now int) float64 {
	left := a.ExpiresAt - now
	if left < 0 {
		return 0
	}
	return float64(left) / float64(config.C.TPS)
}

// Progress is the elapsed fraction of the buff at tick now, in 0..1.
func (a ActivePowerUp) Progress(now int) float64 {
	total := a.ExpiresAt - a.StartedAt
	if total <= 0 {
		return 1
	}
	return math.Min(1, math.Max(0, float64(now-a.StartedAt)/float64(total)))
}

// PowerUpEffectsData owns the active buffs and the aggregate modifiers folded from them.
type PowerUpEffectsData struct {
	Active []ActivePowerUp

	FireRateMultiplier float64
	DamageReduction    float64
	ExtraDamage        float64
	HasShield          bool
}

// NewPowerUpEffects returns an empty set with neutral modifiers.
func NewPowerUpEffects() PowerUpEffectsData {
	e := PowerUpEffectsData{}
	e.Recompute()
	return e
}

// Activate registers a timed buff starting at now. Re-collecting an active type refreshes its expiry.
func (e *PowerUpEffectsData) Activate(t config.PowerUpType, now int) {
	expires := now + config.Seconds(t.Duration())
	for i := range e.Active {
		if e.Active[i].Type == t {
			e.Active[i].StartedAt = now
			e.Active[i].ExpiresAt = expires
			e.Recompute()
			return
		}
	}
	e.Active = append(e.Active, ActivePowerUp{Type: t, StartedAt: now, ExpiresAt: expires})
	e.Recompute()
}

// Expire removes every buff whose expiry tick has been reached and returns them.
// Each buff is returned exactly once.
func (e *PowerUpEffectsData) Expire(now int) []ActivePowerUp {
	var expired []ActivePowerUp
	kept := e.Active[:0]
	for _, a := range e.Active {
		if now >= a.ExpiresAt {
			expired = append(expired, a)
			continue
		}
		kept = append(kept, a)
	}
	e.Active = kept
	if len(expired) > 0 {
		e.Recompute()
	}
	return expired
}

// Recompute folds every active buff into the aggregate modifiers from scratch.
func (e *PowerUpEffectsData) Recompute() {
	e.FireRateMultiplier = 1
	e.DamageReduction = 0
	e.ExtraDamage = 0
	e.HasShield = false
	for _, a := range e.Active {
		switch a.Type {
		case config.PowerUpRapidFire:
			e.FireRateMultiplier = config.PowerUp.RapidFireRate
			e.ExtraDamage = config.PowerUp.RapidFireExtraDamage
		case config.PowerUpShield:
			e.DamageReduction = config.PowerUp.ShieldReduction
			e.HasShield = true
		}
	}
}

// IsActive reports whether a buff of type t is running.
func (e *PowerUpEffectsData) IsActive(t config.PowerUpType) bool {
	for _, a := range e.Active {
		if a.Type == t {
			return true
		}
	}
	return false
}

// ModifyDamage applies the shield reduction to incoming damage. Without a shield d is returned unchanged.
func (e *PowerUpEffectsData) ModifyDamage(d int) int {
	if !e.HasShield {
		return d
	}
	reduced := float64(d) - float64(d)*e.DamageReduction
	return max(0, int(reduced))
}

// DamageMultiplier scales outgoing player damage.
func (e *PowerUpEffectsData) DamageMultiplier() float64 {
	return 1 + e.ExtraDamage
}

var PowerUpEffects = donburi.NewComponentType[PowerUpEffectsData]()
