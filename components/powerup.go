package components

import (
	"github.com/automoto/pixelstrike/config"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

type PowerUpData struct {
	Type      config.PowerUpType
	SpawnedAt int     // session tick
	Scale     float64 // visual scale driven by the tween
	Pulsing   bool    // spawn pop finished, looping pulse active
}

var PowerUp = donburi.NewComponentType[PowerUpData]()
var Tween = donburi.NewComponentType[gween.Sequence]()
