package systems

import (
	"github.com/automoto/pixelstrike/components"
	"github.com/yohamta/donburi"
)

// destroyEntity removes an entity and its collision object. Stale entries are ignored.
func destroyEntity(w donburi.World, e *donburi.Entry) {
	if e == nil || !e.Valid() {
		return
	}
	if e.HasComponent(components.Object) {
		if spaceEntry, ok := components.Space.First(w); ok {
			obj := components.Object.Get(e)
			if obj != nil && obj.Object != nil {
				components.Space.Get(spaceEntry).Remove(obj.Object)
			}
		}
	}
	w.Remove(e.Entity())
}

// destroyAll removes every entry in the list.
func destroyAll(w donburi.World, entries []*donburi.Entry) {
	for _, e := range entries {
		destroyEntity(w, e)
	}
}
