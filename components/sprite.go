package components

import (
	"image/color"

	"github.com/yohamta/donburi"
)

// SpriteData describes the flat shape drawn for an entity, centred on its collision box.
type SpriteData struct {
	Width    float64
	Height   float64
	Color    color.RGBA
	Rotation float64
}

var Sprite = donburi.NewComponentType[SpriteData]()
