package systems

import (
	"github.com/automoto/pixelstrike/components"
	"github.com/automoto/pixelstrike/shared/gamemath"
	"github.com/automoto/pixelstrike/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/events"
)

// ContactEvent reports that two bodies began overlapping. A is the probing body.
type ContactEvent struct {
	A, B *donburi.Entry
}

// ContactQueue is filled by DetectContacts and drained once per tick by ResolveContacts.
var ContactQueue = events.NewEventType[ContactEvent]()

// DetectContacts finds overlapping bodies of interacting categories and queues a
// contact for each pair that was not already overlapping on the previous tick.
func DetectContacts(ecs *ecs.ECS) {
	entry, ok := getSessionEntry(ecs.World)
	if !ok {
		return
	}
	contacts := components.Contacts.Get(entry)
	current := make(map[components.ContactPair]struct{}, len(contacts.Overlapping))

	probe := func(e *donburi.Entry, targets ...string) {
		obj := components.Object.Get(e)
		check := obj.Check(0, 0, targets...)
		if check == nil {
			return
		}
		for _, other := range check.Objects {
			if !gamemath.Overlaps(obj.X, obj.Y, obj.W, obj.H, other.X, other.Y, other.W, other.H) {
				continue
			}
			otherEntry, ok := other.Data.(*donburi.Entry)
			if !ok || otherEntry == nil || !otherEntry.Valid() {
				continue
			}
			pair := components.ContactPair{A: e.Entity(), B: otherEntry.Entity()}
			if _, seen := current[pair]; seen {
				continue
			}
			current[pair] = struct{}{}
			if _, was := contacts.Overlapping[pair]; !was {
				ContactQueue.Publish(ecs.World, ContactEvent{A: e, B: otherEntry})
			}
		}
	}

	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		probe(e, tags.ResolvEnemyProjectile, tags.ResolvEnemy, tags.ResolvPowerUp)
	})
	tags.Enemy.Each(ecs.World, func(e *donburi.Entry) {
		probe(e, tags.ResolvPlayerProjectile)
	})
	components.Projectile.Each(ecs.World, func(e *donburi.Entry) {
		if components.Projectile.Get(e).Owner == components.OwnerPlayer {
			probe(e, tags.ResolvEnemyProjectile)
		}
	})

	contacts.Overlapping = current
}

// ResolveContacts drains the contact queue, applying each contact's reaction exactly once.
func ResolveContacts(ecs *ecs.ECS) {
	ContactQueue.ProcessEvents(ecs.World)
}
