package systems

import (
	"fmt"

	"github.com/automoto/pixelstrike/components"
	cfg "github.com/automoto/pixelstrike/config"
	"github.com/automoto/pixelstrike/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

var gameOverOptions = []string{"Retry", "Quit"}

// NewUpdateGameOver creates the game over menu system. onRetry and onQuit run when an option is chosen.
func NewUpdateGameOver(onRetry, onQuit func()) ecs.System {
	return func(e *ecs.ECS) {
		gameOver := GetOrCreateGameOver(e)
		controls := getOrCreateControls(e)

		// Navigate menu with wrap-around using modulo arithmetic
		numOptions := int(components.GameOverQuit) + 1
		if GetAction(controls, cfg.ActionMoveUp).JustPressed {
			gameOver.SelectedOption = components.GameOverOption(
				(int(gameOver.SelectedOption) - 1 + numOptions) % numOptions,
			)
		}
		if GetAction(controls, cfg.ActionMoveDown).JustPressed {
			gameOver.SelectedOption = components.GameOverOption(
				(int(gameOver.SelectedOption) + 1) % numOptions,
			)
		}

		if GetAction(controls, cfg.ActionRestart).JustPressed {
			switch gameOver.SelectedOption {
			case components.GameOverRetry:
				onRetry()
			case components.GameOverQuit:
				onQuit()
			}
		}
	}
}

// DrawGameOver renders the final results and the menu
func DrawGameOver(e *ecs.ECS, screen *ebiten.Image) {
	gameOver := GetOrCreateGameOver(e)

	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	vector.FillRect(screen, 0, 0, float32(w), float32(h), cfg.BlackOverlay, false)

	title := "GAME OVER"
	titleFont := fonts.Title.Get()
	text.Draw(screen, title, titleFont, (w-textWidth(title, titleFont))/2, 140, cfg.LightRed)

	lines := []string{
		fmt.Sprintf("Score     %d", gameOver.Score),
		fmt.Sprintf("Best      %d", gameOver.HighScore),
		fmt.Sprintf("Level     %d", gameOver.Level),
		fmt.Sprintf("Kills     %d", gameOver.Kills),
		fmt.Sprintf("Time      %.0fs", gameOver.Seconds),
		fmt.Sprintf("Accuracy  %.0f%%", gameOver.Accuracy*100),
	}
	face := fonts.Regular.Get()
	y := 200
	for _, l := range lines {
		text.Draw(screen, l, face, w/2-90, y, cfg.White)
		y += 24
	}
	if gameOver.NewHighScore {
		msg := "NEW HIGH SCORE!"
		text.Draw(screen, msg, face, (w-textWidth(msg, face))/2, y+8, cfg.Yellow)
	}

	menuFont := fonts.Bold.Get()
	for i, option := range gameOverOptions {
		textColor := cfg.White
		if components.GameOverOption(i) == gameOver.SelectedOption {
			textColor = cfg.Yellow
		}
		text.Draw(screen, option, menuFont, (w-textWidth(option, menuFont))/2, h-140+i*32, textColor)
	}
}

// GetOrCreateGameOver returns the singleton GameOver component, creating if needed
func GetOrCreateGameOver(e *ecs.ECS) *components.GameOverData {
	if _, ok := components.GameOver.First(e.World); !ok {
		ent := e.World.Entry(e.World.Create(components.GameOver))
		components.GameOver.SetValue(ent, components.GameOverData{
			SelectedOption: components.GameOverRetry,
		})
	}

	ent, _ := components.GameOver.First(e.World)
	return components.GameOver.Get(ent)
}

// GameOverResults collects the final statistics of a finished simulation.
func GameOverResults(s *Simulation) components.GameOverData {
	r := components.GameOverData{SelectedOption: components.GameOverRetry, HighScore: s.HighScore()}
	if session := s.Session(); session != nil {
		r.Score = session.Score
		r.Kills = session.Kills
		r.Seconds = session.Seconds()
		r.Accuracy = session.Accuracy()
	}
	if d := s.Difficulty(); d != nil {
		r.Level = d.Level
	}
	if ev, ok := s.Result(); ok {
		r.NewHighScore = ev.NewHighScore
	}
	return r
}
