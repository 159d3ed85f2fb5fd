package scenes

import (
	"errors"
	"image/color"
	"sync"

	cfg "github.com/automoto/pixelstrike/config"
	"github.com/automoto/pixelstrike/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog/log"
	dmath "github.com/yohamta/donburi/features/math"
)

// ArenaScene runs a play session until the player dies.
type ArenaScene struct {
	sim          *systems.Simulation
	sceneChanger SceneChanger
	ctx          Context
	once         sync.Once
}

// NewArenaScene creates a new arena scene
func NewArenaScene(sc SceneChanger, ctx Context) *ArenaScene {
	return &ArenaScene{sceneChanger: sc, ctx: ctx}
}

func (as *ArenaScene) Update() {
	as.once.Do(as.configure)
	as.sim.Update()

	as.handleSaveLoad()

	if session := as.sim.Session(); session != nil && session.State == cfg.StateGameOver {
		as.sceneChanger.ChangeScene(NewGameOverScene(as.sceneChanger, as.ctx, systems.GameOverResults(as.sim)))
	}
}

func (as *ArenaScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if as.sim == nil {
		return
	}
	as.sim.Draw(screen)
}

func (as *ArenaScene) configure() {
	width, height := float64(cfg.C.Width), float64(cfg.C.Height)

	opts := []systems.Option{
		systems.WithMode(as.ctx.Mode),
		systems.WithPersistence(as.ctx.Persistence),

		// Input runs even when paused so the pause toggle keeps working
		systems.WithPreSystem(systems.UpdateControls),
		systems.WithPreSystem(systems.UpdateCommands),
	}

	var background *ebiten.Image
	if a := as.ctx.Arena; a != nil {
		background = a.Background
		width, height = float64(a.Data.MapWidth), float64(a.Data.MapHeight)
		if regions := a.Regions(); len(regions) > 0 {
			opts = append(opts, systems.WithRegions(regions))
		}
		if sp := a.Data.PlayerSpawn; sp != nil {
			opts = append(opts, systems.WithPlayerSpawn(dmath.Vec2{X: sp.X, Y: sp.Y}))
		}
	}

	opts = append(opts,
		systems.WithRenderer(systems.NewDrawArena(background)),
		systems.WithRenderer(systems.DrawSprites),
		systems.WithRenderer(systems.DrawBursts),
		systems.WithRenderer(systems.DrawHUD),
	)

	as.sim = systems.NewSimulation(width, height, opts...)
	as.sim.Start()
	as.sim.AnnounceSavedGame()
}

func (as *ArenaScene) handleSaveLoad() {
	e := as.sim.ECS()
	switch {
	case systems.ActionJustPressed(e, cfg.ActionSave):
		if err := as.sim.SaveGame(); err != nil {
			log.Warn().Err(err).Msg("could not save game")
			return
		}
		log.Info().Msg("game saved")
	case systems.ActionJustPressed(e, cfg.ActionLoad):
		if err := as.sim.LoadGame(); err != nil {
			if errors.Is(err, systems.ErrNoSavedState) {
				log.Info().Msg("no saved game to load")
				return
			}
			log.Warn().Err(err).Msg("could not load game")
		}
	}
}
