package components

import "github.com/yohamta/donburi"

// GameOverOption represents the available game over menu selections
type GameOverOption int

const (
	GameOverRetry GameOverOption = iota
	GameOverQuit
)

// GameOverData stores the final results and the current menu selection
type GameOverData struct {
	SelectedOption GameOverOption
	Score          int
	HighScore      int
	NewHighScore   bool
	Level          int
	Kills          int
	Seconds        float64
	Accuracy       float64
}

// GameOver is the component type for game over menu state
var GameOver = donburi.NewComponentType[GameOverData]()
