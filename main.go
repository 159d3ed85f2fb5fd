package main

import (
	"errors"
	"image"
	"os"
	"time"

	"github.com/automoto/pixelstrike/assets"
	"github.com/automoto/pixelstrike/config"
	"github.com/automoto/pixelstrike/fonts"
	"github.com/automoto/pixelstrike/scenes"
	"github.com/automoto/pixelstrike/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// errQuit ends the run loop cleanly when the player chooses to quit.
var errQuit = errors.New("quit")

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
	quit   bool
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

// Quit stops the game after the current frame
func (g *Game) Quit() {
	g.quit = true
}

func NewGame(ctx scenes.Context) *Game {
	g := &Game{
		bounds: image.Rectangle{},
	}
	g.scene = scenes.NewArenaScene(g, ctx)
	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	if g.quit {
		return errQuit
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if os.Getenv("PIXELSTRIKE_DEBUG") != "" {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	if err := fonts.LoadDefaults(); err != nil {
		log.Fatal().Err(err).Msg("failed to load fonts")
	}

	ebiten.SetWindowTitle("pixelstrike")
	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)
	ebiten.SetTPS(config.C.TPS)

	// Initialize persistence and load saved settings
	persistence, err := systems.OpenPersistence()
	if err != nil {
		log.Warn().Err(err).Msg("could not initialize persistence")
	}
	saved, err := persistence.LoadSettings()
	if err != nil {
		log.Warn().Err(err).Msg("could not load settings")
	}
	if saved == nil {
		saved = &systems.SavedSettings{
			ResolutionIndex: config.Settings.DefaultResolutionIndex,
			Mode:            config.Settings.DefaultMode,
		}
		if err := persistence.SaveSettings(saved); err != nil {
			log.Warn().Err(err).Msg("could not save default settings")
		}
	}
	mode := systems.ApplySavedSettings(saved)

	arena, err := assets.LoadArena()
	if err != nil {
		log.Warn().Err(err).Msg("could not load arena map, using defaults")
	}

	ctx := scenes.Context{
		Persistence: persistence,
		Arena:       arena,
		Mode:        mode,
	}
	if err := ebiten.RunGame(NewGame(ctx)); err != nil && !errors.Is(err, errQuit) {
		log.Fatal().Err(err).Msg("game exited")
	}
}
