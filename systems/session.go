package systems

import (
	"github.com/automoto/pixelstrike/components"
	cfg "github.com/automoto/pixelstrike/config"
	"github.com/automoto/pixelstrike/tags"
	"github.com/rs/zerolog/log"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

func getSessionEntry(w donburi.World) (*donburi.Entry, bool) {
	return components.Session.First(w)
}

// getSession returns the session singleton or nil when the world has none.
func getSession(w donburi.World) *components.SessionData {
	e, ok := getSessionEntry(w)
	if !ok {
		return nil
	}
	return components.Session.Get(e)
}

func getInput(w donburi.World) *components.InputData {
	e, ok := getSessionEntry(w)
	if !ok {
		return nil
	}
	return components.Input.Get(e)
}

func getDifficulty(w donburi.World) *components.DifficultyData {
	e, ok := getSessionEntry(w)
	if !ok {
		return nil
	}
	return components.Difficulty.Get(e)
}

func getEffects(w donburi.World) *components.PowerUpEffectsData {
	e, ok := getSessionEntry(w)
	if !ok {
		return nil
	}
	return components.PowerUpEffects.Get(e)
}

func getSpawner(w donburi.World) *components.SpawnerData {
	e, ok := getSessionEntry(w)
	if !ok {
		return nil
	}
	return components.Spawner.Get(e)
}

func getHUD(w donburi.World) *components.HUDData {
	e, ok := getSessionEntry(w)
	if !ok {
		return nil
	}
	return components.HUD.Get(e)
}

func getPlayer(w donburi.World) (*donburi.Entry, bool) {
	e, ok := tags.Player.First(w)
	if !ok || !e.Valid() {
		return nil, false
	}
	return e, true
}

func getPlayerCenter(w donburi.World) (dmath.Vec2, bool) {
	e, ok := getPlayer(w)
	if !ok {
		return dmath.Vec2{}, false
	}
	return components.Object.Get(e).Center(), true
}

// UpdateClock advances the session by one tick.
func UpdateClock(ecs *ecs.ECS) {
	if s := getSession(ecs.World); s != nil {
		s.Tick++
	}
}

// WithPlayingCheck wraps a system so it only runs while the session is playing.
func WithPlayingCheck(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		s := getSession(e.World)
		if s == nil || !s.Playing() {
			return
		}
		system(e)
	}
}

// TogglePause flips between playing and paused. A finished session stays over.
func TogglePause(w donburi.World) {
	s := getSession(w)
	if s == nil {
		return
	}
	switch s.State {
	case cfg.StatePlaying:
		s.State = cfg.StatePaused
	case cfg.StatePaused:
		s.State = cfg.StatePlaying
	default:
		return
	}
	log.Debug().Stringer("state", s.State).Msg("pause toggled")
}
