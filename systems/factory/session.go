package factory

import (
	"math/rand"

	"github.com/automoto/pixelstrike/archetypes"
	"github.com/automoto/pixelstrike/components"
	cfg "github.com/automoto/pixelstrike/config"
	"github.com/automoto/pixelstrike/shared/messages"
	"github.com/google/uuid"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SessionOptions configure a new play session.
type SessionOptions struct {
	Width, Height float64
	Mode          cfg.GameMode
	HighScore     int
	Rand          *rand.Rand
	Listeners     []messages.Listener
	Regions       []cfg.Rect
}

// CreateSession spawns the singleton entity carrying clock, score, difficulty, buffs and spawn timers.
func CreateSession(ecs *ecs.ECS, opts SessionOptions) *donburi.Entry {
	s := archetypes.Session.Spawn(ecs)

	r := opts.Rand
	if r == nil {
		r = rand.New(rand.NewSource(rand.Int63()))
	}

	components.Session.SetValue(s, components.SessionData{
		ID:        uuid.New(),
		State:     cfg.StatePlaying,
		Mode:      opts.Mode,
		HighScore: opts.HighScore,
		Width:     opts.Width,
		Height:    opts.Height,
		Rand:      r,
		Listeners: opts.Listeners,
	})
	components.Input.SetValue(s, components.InputData{})
	components.Difficulty.SetValue(s, components.NewDifficulty())
	components.PowerUpEffects.SetValue(s, components.NewPowerUpEffects())

	spawner := components.NewSpawner(opts.Mode.Multiplier())
	if len(opts.Regions) > 0 {
		spawner.PowerUpRegions = opts.Regions
	}
	components.Spawner.SetValue(s, spawner)
	components.Contacts.SetValue(s, components.ContactsData{
		Overlapping: map[components.ContactPair]struct{}{},
	})
	components.HUD.SetValue(s, components.HUDData{})

	return s
}
