package scenes

import (
	"image/color"
	"sync"

	"github.com/automoto/pixelstrike/components"
	cfg "github.com/automoto/pixelstrike/config"
	"github.com/automoto/pixelstrike/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// GameOverScene displays the final results
type GameOverScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	ctx          Context
	results      components.GameOverData
	once         sync.Once
}

// NewGameOverScene creates a new game over scene
func NewGameOverScene(sc SceneChanger, ctx Context, results components.GameOverData) *GameOverScene {
	return &GameOverScene{sceneChanger: sc, ctx: ctx, results: results}
}

func (gs *GameOverScene) Update() {
	gs.once.Do(gs.configure)
	gs.ecs.Update()
}

func (gs *GameOverScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if gs.ecs == nil {
		return
	}
	gs.ecs.Draw(screen)
}

func (gs *GameOverScene) configure() {
	gs.ecs = ecs.NewECS(donburi.NewWorld())

	onRetry := func() {
		gs.sceneChanger.ChangeScene(NewArenaScene(gs.sceneChanger, gs.ctx))
	}
	onQuit := func() {
		gs.sceneChanger.Quit()
	}

	gs.ecs.AddSystem(systems.UpdateControls)
	gs.ecs.AddSystem(systems.NewUpdateGameOver(onRetry, onQuit))

	gs.ecs.AddRenderer(cfg.Default, systems.DrawGameOver)

	*systems.GetOrCreateGameOver(gs.ecs) = gs.results
}
