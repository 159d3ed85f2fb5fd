package scenes

import (
	"github.com/automoto/pixelstrike/assets"
	cfg "github.com/automoto/pixelstrike/config"
	"github.com/automoto/pixelstrike/systems"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
	Quit()
}

// Context carries what every scene of a run shares.
type Context struct {
	Persistence *systems.Persistence
	Arena       *assets.Arena // nil plays on a bare grid
	Mode        cfg.GameMode
}
